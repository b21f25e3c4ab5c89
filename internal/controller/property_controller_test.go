package controller

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"estatehub_backend/internal/model"
	"estatehub_backend/internal/testutil"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/utils/jwt"
)

// newTestApp swaps the global DB for an in-memory one and pre-fills the auth
// claims, so handlers can be exercised without the middleware chain.
func newTestApp(t *testing.T, tenantID uint) *fiber.App {
	t.Helper()
	database.DB = testutil.NewTestDB(t)

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", &jwt.Claims{UserID: 1, TenantID: tenantID, Email: "admin@example.com"})
		return c.Next()
	})
	return app
}

func TestUpdatePropertyKeepsTitleWhenOmitted(t *testing.T) {
	app := newTestApp(t, 1)
	app.Put("/properties/:id", UpdateProperty)

	property := model.Property{TenantID: 1, Title: "Lakeview Villa", Slug: "lakeview-villa", IsActive: true}
	require.NoError(t, database.DB.Create(&property).Error)

	// A body without a title parses as ""; that means "keep the current one",
	// not "rename to nothing".
	req := httptest.NewRequest("PUT", fmt.Sprintf("/properties/%d", property.ID),
		strings.NewReader(`{"price": 950000}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated model.Property
	require.NoError(t, database.DB.First(&updated, property.ID).Error)
	assert.Equal(t, "Lakeview Villa", updated.Title)
	assert.Equal(t, "lakeview-villa", updated.Slug)
	assert.Equal(t, 950000.0, updated.Price)
}

func TestUpdatePropertyRenameRegeneratesSlug(t *testing.T) {
	app := newTestApp(t, 1)
	app.Put("/properties/:id", UpdateProperty)

	property := model.Property{TenantID: 1, Title: "Lakeview Villa", Slug: "lakeview-villa", IsActive: true}
	require.NoError(t, database.DB.Create(&property).Error)

	req := httptest.NewRequest("PUT", fmt.Sprintf("/properties/%d", property.ID),
		strings.NewReader(`{"title": "Hilltop Villa"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated model.Property
	require.NoError(t, database.DB.First(&updated, property.ID).Error)
	assert.Equal(t, "Hilltop Villa", updated.Title)
	assert.Equal(t, "hilltop-villa", updated.Slug)
}
