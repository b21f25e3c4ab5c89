package testutil

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"estatehub_backend/internal/model"
)

// NewTestDB opens an in-memory database migrated with the full schema.
// Each call gets an isolated instance.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&model.Tenant{},
		&model.User{},
		&model.Category{},
		&model.DropdownValue{},
		&model.Property{},
		&model.PropertyAmenity{},
		&model.PropertyConfiguration{},
		&model.PropertyPriceRange{},
		&model.BlogPost{},
		&model.ContentCategory{},
		&model.ContentTag{},
		&model.Video{},
		&model.BlogPostCategory{},
		&model.BlogPostTag{},
		&model.BlogPostVideo{},
		&model.CareerJob{},
		&model.ContentItem{},
		&model.FaqCategory{},
		&model.FaqItem{},
		&model.ProjectCarousel{},
		&model.ProjectCarouselItem{},
		&model.SeoMetadata{},
		&model.CustomFieldKey{},
		&model.CustomFieldValue{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
