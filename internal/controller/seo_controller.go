package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"estatehub_backend/internal/attachment"
	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/utils/jwt"
)

func entityKey(c *fiber.Ctx) (model.EntityType, uint, error) {
	entityType := model.EntityType(c.Params("entity_type"))
	entityID, err := c.ParamsInt("entity_id")
	if err != nil {
		return "", 0, err
	}
	return entityType, uint(entityID), nil
}

func GetSeo(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	entityType, entityID, err := entityKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entity_id",
		})
	}

	seo, err := attachment.NewDefaultResolver(database.GetDB()).
		GetSeo(claims.TenantID, entityType, entityID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(seo)
}

func UpsertSeo(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	entityType, entityID, err := entityKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entity_id",
		})
	}

	input := new(attachment.SeoInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	seo, err := attachment.NewDefaultResolver(database.GetDB()).
		UpsertSeo(claims.TenantID, entityType, entityID, *input)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(seo)
}

func DeleteSeo(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	entityType, entityID, err := entityKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entity_id",
		})
	}

	if err := attachment.NewDefaultResolver(database.GetDB()).
		DeleteSeo(claims.TenantID, entityType, entityID); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type FieldKeyInput struct {
	FieldKey   string `json:"field_key" validate:"required"`
	Label      string `json:"label" validate:"required"`
	FieldType  string `json:"field_type"`
	CategoryID *uint  `json:"category_id"`
}

func CreateFieldKey(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(FieldKeyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	fieldType := input.FieldType
	if fieldType == "" {
		fieldType = "text"
	}
	key := model.CustomFieldKey{
		TenantID:   claims.TenantID,
		FieldKey:   input.FieldKey,
		Label:      input.Label,
		FieldType:  fieldType,
		CategoryID: input.CategoryID,
	}
	if err := database.GetDB().Create(&key).Error; err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Field key already exists",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(key)
}

type FieldValueInput struct {
	FieldKeyID uint           `json:"field_key_id" validate:"required"`
	Value      datatypes.JSON `json:"value"`
}

func SetCustomField(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	entityType, entityID, err := entityKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entity_id",
		})
	}

	input := new(FieldValueInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	record, err := attachment.NewDefaultResolver(database.GetDB()).
		SetCustomField(claims.TenantID, entityType, entityID, input.FieldKeyID, input.Value)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(record)
}

func ListCustomFields(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	entityType, entityID, err := entityKey(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid entity_id",
		})
	}

	records, err := attachment.NewDefaultResolver(database.GetDB()).
		ListCustomFields(claims.TenantID, entityType, entityID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(records)
}
