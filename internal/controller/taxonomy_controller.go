package controller

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"estatehub_backend/internal/taxonomy"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/utils/jwt"
)

type CategoryInput struct {
	Name           string `json:"name" validate:"required"`
	ParentID       *uint  `json:"parent_id"`
	IsCustomizable bool   `json:"is_customizable"`
}

func CreateCategory(c *fiber.Ctx) error {
	input := new(CategoryInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	store := taxonomy.NewStore(database.GetDB())
	category, err := store.CreateCategory(input.Name, input.ParentID, input.IsCustomizable)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

func ListCategories(c *fiber.Ctx) error {
	filter := taxonomy.CategoryFilter{
		ActiveOnly: c.Query("active") != "false",
	}
	if levelStr := c.Query("level"); levelStr != "" {
		level, err := strconv.Atoi(levelStr)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid level",
			})
		}
		filter.Level = &level
	}
	if parentStr := c.Query("parent_id"); parentStr != "" {
		parent, err := strconv.ParseUint(parentStr, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid parent_id",
			})
		}
		pid := uint(parent)
		filter.ParentID = &pid
	}

	store := taxonomy.NewStore(database.GetDB())
	categories, err := store.ListCategories(filter)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(categories)
}

func DeactivateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	store := taxonomy.NewStore(database.GetDB())
	cascade := c.Query("cascade") == "true"
	if err := store.DeactivateCategory(uint(id), cascade); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type ValueInput struct {
	CategoryID uint   `json:"category_id" validate:"required"`
	ParentID   *uint  `json:"parent_id"`
	Value      string `json:"value" validate:"required"`
	TenantOwn  bool   `json:"tenant_own"` // true = scope to the caller's tenant
}

func CreateValue(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(ValueInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var tenantID *uint
	if input.TenantOwn {
		tenantID = &claims.TenantID
	}

	store := taxonomy.NewStore(database.GetDB())
	value, err := store.CreateValue(input.CategoryID, tenantID, input.ParentID, input.Value)
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(value)
}

func ListValues(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	categoryID, err := strconv.ParseUint(c.Params("category_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid category_id",
		})
	}

	filter := taxonomy.ValueFilter{
		CategoryID: uint(categoryID),
		TenantID:   &claims.TenantID,
		ActiveOnly: c.Query("active") != "false",
	}
	if parentStr := c.Query("parent_id"); parentStr != "" {
		parent, err := strconv.ParseUint(parentStr, 10, 32)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid parent_id",
			})
		}
		pid := uint(parent)
		filter.ParentID = &pid
	}

	store := taxonomy.NewStore(database.GetDB())
	values, err := store.ListValues(filter)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(values)
}

type RenameValueInput struct {
	Value string `json:"value" validate:"required"`
}

func RenameValue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}
	input := new(RenameValueInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	store := taxonomy.NewStore(database.GetDB())
	value, err := store.RenameValue(uint(id), input.Value)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(value)
}

func DeactivateValue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	store := taxonomy.NewStore(database.GetDB())
	if err := store.DeactivateValue(uint(id)); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ReactivateValue(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	store := taxonomy.NewStore(database.GetDB())
	value, err := store.ReactivateValue(uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(value)
}

// GetValuePath renders the root-to-leaf chain ("Hyderabad > Gachibowli").
func GetValuePath(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	store := taxonomy.NewStore(database.GetDB())
	path, err := store.ResolvePath(uint(id))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(path)
}
