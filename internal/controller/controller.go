package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estatehub_backend/pkg/errs"
	"estatehub_backend/pkg/slugify"
)

// respondErr maps domain errors to status codes. Everything the stores raise
// funnels through here.
func respondErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errs.IsValidation(err):
		status = fiber.StatusBadRequest
	case errs.IsNotFound(err):
		status = fiber.StatusNotFound
	case errs.IsConflict(err):
		status = fiber.StatusConflict
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

// tenantScope bounds slug uniqueness for owning entities to their tenant.
func tenantScope(tenantID uint) slugify.Scope {
	return func(q *gorm.DB) *gorm.DB {
		return q.Where("tenant_id = ?", tenantID)
	}
}

// allocateSlug derives and resolves a tenant-scoped slug for an owning
// entity table (properties, blog posts, jobs, carousels...).
func allocateSlug(db *gorm.DB, table interface{}, tenantID uint, title string, excludeID uint) (string, error) {
	base, err := slugify.Make(title)
	if err != nil {
		return "", err
	}
	return slugify.Resolve(db, table, tenantScope(tenantID), base, excludeID)
}
