package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estatehub_backend/internal/assoc"
	"estatehub_backend/internal/attachment"
	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/utils/jwt"
)

type PropertyInput struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Address     string  `json:"address"`

	PropertyTypeID *uint `json:"property_type_id"`
	StatusID       *uint `json:"status_id"`
	CityID         *uint `json:"city_id"`
	AreaID         *uint `json:"area_id"`

	AmenityIDs       []uint `json:"amenity_ids"`
	ConfigurationIDs []uint `json:"configuration_ids"`
	PriceRangeIDs    []uint `json:"price_range_ids"`

	Seo *attachment.SeoInput `json:"seo"`
}

// CreateProperty creates the listing, links its taxonomy values and upserts
// its SEO record in a single transaction, so a failure cannot leave a
// property without its links.
func CreateProperty(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	slug, err := allocateSlug(database.GetDB(), &model.Property{}, claims.TenantID, input.Title, 0)
	if err != nil {
		return respondErr(c, err)
	}

	property := model.Property{
		TenantID:       claims.TenantID,
		Title:          input.Title,
		Slug:           slug,
		Description:    input.Description,
		Price:          input.Price,
		Address:        input.Address,
		PropertyTypeID: input.PropertyTypeID,
		StatusID:       input.StatusID,
		CityID:         input.CityID,
		AreaID:         input.AreaID,
		IsActive:       true,
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}

		amenities := assoc.PropertyAmenities(tx)
		for _, valueID := range input.AmenityIDs {
			if _, err := amenities.UpsertLink(property.ID, valueID, nil); err != nil {
				return err
			}
		}
		configurations := assoc.PropertyConfigurations(tx)
		for _, valueID := range input.ConfigurationIDs {
			if _, err := configurations.UpsertLink(property.ID, valueID, nil); err != nil {
				return err
			}
		}
		priceRanges := assoc.PropertyPriceRanges(tx)
		for _, valueID := range input.PriceRangeIDs {
			if _, err := priceRanges.UpsertLink(property.ID, valueID, nil); err != nil {
				return err
			}
		}

		if input.Seo != nil {
			resolver := attachment.NewDefaultResolver(tx)
			if _, err := resolver.UpsertSeo(claims.TenantID, model.EntityProperty, property.ID, *input.Seo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return respondErr(c, err)
	}

	database.GetDB().
		Preload("Amenities.Value").
		Preload("Configurations.Value").
		Preload("PriceRanges.Value").
		First(&property, property.ID)

	return c.Status(fiber.StatusCreated).JSON(property)
}

// UpdateProperty is the explicit rename path: the slug is only regenerated
// when the title actually changed.
func UpdateProperty(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}
	input := new(PropertyInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	var property model.Property
	if err := database.GetDB().First(&property, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	if property.TenantID != claims.TenantID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to update this property",
		})
	}

	// An omitted title parses as "", which means "keep the current one".
	if input.Title != "" && input.Title != property.Title {
		slug, err := allocateSlug(database.GetDB(), &model.Property{}, claims.TenantID, input.Title, property.ID)
		if err != nil {
			return respondErr(c, err)
		}
		property.Slug = slug
		property.Title = input.Title
	}
	property.Description = input.Description
	property.Price = input.Price
	property.Address = input.Address
	property.PropertyTypeID = input.PropertyTypeID
	property.StatusID = input.StatusID
	property.CityID = input.CityID
	property.AreaID = input.AreaID

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&property).Error; err != nil {
			return err
		}

		// Replace link sets wholesale; UpsertLink keeps re-sent pairs.
		amenities := assoc.PropertyAmenities(tx)
		if err := amenities.UnlinkAll(property.ID); err != nil {
			return err
		}
		for _, valueID := range input.AmenityIDs {
			if _, err := amenities.UpsertLink(property.ID, valueID, nil); err != nil {
				return err
			}
		}
		configurations := assoc.PropertyConfigurations(tx)
		if err := configurations.UnlinkAll(property.ID); err != nil {
			return err
		}
		for _, valueID := range input.ConfigurationIDs {
			if _, err := configurations.UpsertLink(property.ID, valueID, nil); err != nil {
				return err
			}
		}
		priceRanges := assoc.PropertyPriceRanges(tx)
		if err := priceRanges.UnlinkAll(property.ID); err != nil {
			return err
		}
		for _, valueID := range input.PriceRangeIDs {
			if _, err := priceRanges.UpsertLink(property.ID, valueID, nil); err != nil {
				return err
			}
		}

		if input.Seo != nil {
			resolver := attachment.NewDefaultResolver(tx)
			if _, err := resolver.UpsertSeo(claims.TenantID, model.EntityProperty, property.ID, *input.Seo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return respondErr(c, err)
	}

	database.GetDB().
		Preload("Amenities.Value").
		Preload("Configurations.Value").
		Preload("PriceRanges.Value").
		First(&property, property.ID)

	return c.JSON(property)
}

func ListProperties(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var properties []model.Property
	if err := database.GetDB().Where("tenant_id = ?", claims.TenantID).
		Preload("PropertyType").
		Preload("Status").
		Preload("City").
		Preload("Area").
		Order("sort_order asc, created_at desc").
		Find(&properties).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch properties",
		})
	}
	return c.JSON(properties)
}

// GetPropertyBySlug is the public detail endpoint, addressed by tenant slug.
func GetPropertyBySlug(c *fiber.Ctx) error {
	tenantSlug := c.Params("tenant")
	propertySlug := c.Params("property_slug")

	var tenant model.Tenant
	if err := database.GetDB().Where("slug = ? AND is_active = ?", tenantSlug, true).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Tenant not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch tenant",
		})
	}

	var property model.Property
	if err := database.GetDB().
		Where("tenant_id = ? AND slug = ? AND is_active = ?", tenant.ID, propertySlug, true).
		Preload("Amenities.Value").
		Preload("Configurations.Value").
		Preload("PriceRanges.Value").
		Preload("PropertyType").
		Preload("Status").
		Preload("City").
		Preload("Area").
		First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Property not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch property",
		})
	}

	seo, _ := attachment.NewDefaultResolver(database.GetDB()).
		GetSeo(tenant.ID, model.EntityProperty, property.ID)

	return c.JSON(fiber.Map{
		"property": property,
		"seo":      seo,
	})
}

// DeleteProperty hard-deletes the listing so the junction cascades fire, and
// removes its polymorphic attachments in the same transaction.
func DeleteProperty(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	var property model.Property
	if err := database.GetDB().First(&property, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Property not found",
		})
	}
	if property.TenantID != claims.TenantID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to delete this property",
		})
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := attachment.NewDefaultResolver(tx).DeleteFor(model.EntityProperty, property.ID); err != nil {
			return err
		}
		if err := assoc.CarouselItems(tx).UnlinkAllRight(property.ID); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&property).Error
	})
	if err != nil {
		return respondErr(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
