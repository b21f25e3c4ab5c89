package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estatehub_backend/internal/attachment"
	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/slugify"
	"estatehub_backend/pkg/utils/jwt"
)

type ContentItemInput struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
	Kind  string `json:"kind"`
}

func CreateContentItem(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(ContentItemInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	slug, err := allocateSlug(database.GetDB(), &model.ContentItem{}, claims.TenantID, input.Title, 0)
	if err != nil {
		return respondErr(c, err)
	}

	kind := input.Kind
	if kind == "" {
		kind = "page"
	}
	item := model.ContentItem{
		TenantID: claims.TenantID,
		Title:    input.Title,
		Slug:     slug,
		Body:     input.Body,
		Kind:     kind,
		IsActive: true,
	}
	if err := database.GetDB().Create(&item).Error; err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func DeleteContentItem(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	var item model.ContentItem
	if err := database.GetDB().First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Content item not found",
		})
	}
	if item.TenantID != claims.TenantID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to delete this item",
		})
	}

	entityType := model.EntityContent
	if item.Kind == "page" {
		entityType = model.EntityPage
	}
	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := attachment.NewDefaultResolver(tx).DeleteFor(entityType, item.ID); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&item).Error
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type FaqCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

func CreateFaqCategory(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(FaqCategoryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	slug, err := allocateSlug(database.GetDB(), &model.FaqCategory{}, claims.TenantID, input.Name, 0)
	if err != nil {
		return respondErr(c, err)
	}

	category := model.FaqCategory{
		TenantID: claims.TenantID,
		Name:     input.Name,
		Slug:     slug,
		IsActive: true,
	}
	if err := database.GetDB().Create(&category).Error; err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

type FaqItemInput struct {
	FaqCategoryID uint   `json:"faq_category_id" validate:"required"`
	Question      string `json:"question" validate:"required"`
	Answer        string `json:"answer"`
	SortOrder     int    `json:"sort_order"`
}

func CreateFaqItem(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(FaqItemInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var category model.FaqCategory
	if err := database.GetDB().First(&category, input.FaqCategoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "FAQ category not found",
		})
	}
	if category.TenantID != claims.TenantID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized for this FAQ category",
		})
	}

	// Item slugs are scoped to (tenant, faq category), not just tenant.
	base, err := slugify.Make(input.Question)
	if err != nil {
		return respondErr(c, err)
	}
	slug, err := slugify.Resolve(database.GetDB(), &model.FaqItem{}, func(q *gorm.DB) *gorm.DB {
		return q.Where("tenant_id = ? AND faq_category_id = ?", claims.TenantID, input.FaqCategoryID)
	}, base, 0)
	if err != nil {
		return respondErr(c, err)
	}

	item := model.FaqItem{
		TenantID:      claims.TenantID,
		FaqCategoryID: input.FaqCategoryID,
		Question:      input.Question,
		Slug:          slug,
		Answer:        input.Answer,
		SortOrder:     input.SortOrder,
		IsActive:      true,
	}
	if err := database.GetDB().Create(&item).Error; err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func ListFaqs(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var categories []model.FaqCategory
	if err := database.GetDB().
		Where("tenant_id = ? AND is_active = ?", claims.TenantID, true).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("faq_items.sort_order ASC")
		}).
		Order("sort_order asc, name asc").
		Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch FAQs",
		})
	}
	return c.JSON(categories)
}
