package middleware

import (
	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/utils/jwt"
)

func isAdmin(claims *jwt.Claims) bool {
	var user model.User
	if err := database.GetDB().First(&user, claims.UserID).Error; err != nil {
		return false
	}
	return user.Role == model.RoleAdmin
}
