package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estatehub_backend/internal/assoc"
	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/errs"
	"estatehub_backend/pkg/utils/jwt"
)

type CarouselInput struct {
	Title string `json:"title" validate:"required"`
}

func CreateCarousel(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(CarouselInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	slug, err := allocateSlug(database.GetDB(), &model.ProjectCarousel{}, claims.TenantID, input.Title, 0)
	if err != nil {
		return respondErr(c, err)
	}

	carousel := model.ProjectCarousel{
		TenantID: claims.TenantID,
		Title:    input.Title,
		Slug:     slug,
		IsActive: true,
	}
	if err := database.GetDB().Create(&carousel).Error; err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(carousel)
}

type CarouselItemInput struct {
	PropertyID uint `json:"property_id" validate:"required"`
	SortOrder  int  `json:"sort_order"`
}

// AddCarouselItem upserts the (carousel, property) link; re-adding an
// existing property just moves it to the new position.
func AddCarouselItem(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	carouselID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}
	input := new(CarouselItemInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	if err := ownCarousel(claims.TenantID, uint(carouselID)); err != nil {
		return respondErr(c, err)
	}

	item, err := assoc.CarouselItems(database.GetDB()).
		UpsertLink(uint(carouselID), input.PropertyID, assoc.Metadata{"sort_order": input.SortOrder})
	if err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func RemoveCarouselItem(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	carouselID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}
	propertyID, err := c.ParamsInt("property_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid property_id",
		})
	}

	if err := ownCarousel(claims.TenantID, uint(carouselID)); err != nil {
		return respondErr(c, err)
	}

	if err := assoc.CarouselItems(database.GetDB()).Unlink(uint(carouselID), uint(propertyID)); err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func ListCarouselItems(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	carouselID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	if err := ownCarousel(claims.TenantID, uint(carouselID)); err != nil {
		return respondErr(c, err)
	}

	items, err := assoc.CarouselItems(database.GetDB()).ListRight(uint(carouselID))
	if err != nil {
		return respondErr(c, err)
	}

	// Attach the property payloads in display order.
	var result []model.ProjectCarouselItem
	for _, item := range items {
		var property model.Property
		if err := database.GetDB().First(&property, item.PropertyID).Error; err == nil {
			item.Property = property
		}
		result = append(result, item)
	}
	return c.JSON(result)
}

func DeleteCarousel(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	carouselID, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	if err := ownCarousel(claims.TenantID, uint(carouselID)); err != nil {
		return respondErr(c, err)
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := assoc.CarouselItems(tx).UnlinkAll(uint(carouselID)); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&model.ProjectCarousel{}, carouselID).Error
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ownCarousel hides other tenants' carousels behind a not-found.
func ownCarousel(tenantID, carouselID uint) error {
	var carousel model.ProjectCarousel
	if err := database.GetDB().First(&carousel, carouselID).Error; err != nil {
		return errs.NotFound("carousel", carouselID)
	}
	if carousel.TenantID != tenantID {
		return errs.NotFound("carousel", carouselID)
	}
	return nil
}
