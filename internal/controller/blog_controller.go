package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"estatehub_backend/internal/assoc"
	"estatehub_backend/internal/attachment"
	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/utils/jwt"
)

type BlogPostInput struct {
	Title      string `json:"title" validate:"required"`
	Excerpt    string `json:"excerpt"`
	Body       string `json:"body"`
	CoverImage string `json:"cover_image"`
	Publish    bool   `json:"publish"`

	CategoryIDs []uint `json:"category_ids"`
	TagIDs      []uint `json:"tag_ids"`
	VideoIDs    []uint `json:"video_ids"` // playlist order = slice order

	Seo *attachment.SeoInput `json:"seo"`
}

func CreateBlogPost(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(BlogPostInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	slug, err := allocateSlug(database.GetDB(), &model.BlogPost{}, claims.TenantID, input.Title, 0)
	if err != nil {
		return respondErr(c, err)
	}

	post := model.BlogPost{
		TenantID:   claims.TenantID,
		Title:      input.Title,
		Slug:       slug,
		Excerpt:    input.Excerpt,
		Body:       input.Body,
		CoverImage: input.CoverImage,
		IsActive:   true,
	}
	if input.Publish {
		now := time.Now()
		post.PublishedAt = &now
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
			return err
		}

		categories := assoc.BlogPostCategories(tx)
		for _, categoryID := range input.CategoryIDs {
			if _, err := categories.UpsertLink(post.ID, categoryID, nil); err != nil {
				return err
			}
		}
		tags := assoc.BlogPostTags(tx)
		for _, tagID := range input.TagIDs {
			if _, err := tags.UpsertLink(post.ID, tagID, nil); err != nil {
				return err
			}
		}
		videos := assoc.BlogPostVideos(tx)
		for i, videoID := range input.VideoIDs {
			if _, err := videos.UpsertLink(post.ID, videoID, assoc.Metadata{"sort_order": i}); err != nil {
				return err
			}
		}

		if input.Seo != nil {
			resolver := attachment.NewDefaultResolver(tx)
			if _, err := resolver.UpsertSeo(claims.TenantID, model.EntityPost, post.ID, *input.Seo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return respondErr(c, err)
	}

	database.GetDB().
		Preload("Categories.Category").
		Preload("Tags.Tag").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("blog_post_videos.sort_order ASC")
		}).
		Preload("Videos.Video").
		First(&post, post.ID)

	return c.Status(fiber.StatusCreated).JSON(post)
}

func ListBlogPosts(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)

	var posts []model.BlogPost
	if err := database.GetDB().Where("tenant_id = ?", claims.TenantID).
		Preload("Categories.Category").
		Preload("Tags.Tag").
		Order("created_at desc").
		Find(&posts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch posts",
		})
	}
	return c.JSON(posts)
}

func GetBlogPostBySlug(c *fiber.Ctx) error {
	tenantSlug := c.Params("tenant")
	postSlug := c.Params("post_slug")

	var tenant model.Tenant
	if err := database.GetDB().Where("slug = ? AND is_active = ?", tenantSlug, true).First(&tenant).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Tenant not found",
		})
	}

	var post model.BlogPost
	err := database.GetDB().
		Where("tenant_id = ? AND slug = ? AND is_active = ?", tenant.ID, postSlug, true).
		Preload("Categories.Category").
		Preload("Tags.Tag").
		Preload("Videos", func(db *gorm.DB) *gorm.DB {
			return db.Order("blog_post_videos.sort_order ASC")
		}).
		Preload("Videos.Video").
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Post not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not fetch post",
		})
	}

	seo, _ := attachment.NewDefaultResolver(database.GetDB()).
		GetSeo(tenant.ID, model.EntityPost, post.ID)

	return c.JSON(fiber.Map{
		"post": post,
		"seo":  seo,
	})
}

func DeleteBlogPost(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid id",
		})
	}

	var post model.BlogPost
	if err := database.GetDB().First(&post, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Post not found",
		})
	}
	if post.TenantID != claims.TenantID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Not authorized to delete this post",
		})
	}

	err = database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := attachment.NewDefaultResolver(tx).DeleteFor(model.EntityPost, post.ID); err != nil {
			return err
		}
		return tx.Unscoped().Delete(&post).Error
	})
	if err != nil {
		return respondErr(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type NamedInput struct {
	Name string `json:"name" validate:"required"`
}

func CreateContentCategory(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(NamedInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	slug, err := allocateSlug(database.GetDB(), &model.ContentCategory{}, claims.TenantID, input.Name, 0)
	if err != nil {
		return respondErr(c, err)
	}

	category := model.ContentCategory{
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

func CreateContentTag(c *fiber.Ctx) error {
	claims := c.Locals("user").(*jwt.Claims)
	input := new(NamedInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid input",
		})
	}

	slug, err := allocateSlug(database.GetDB(), &model.ContentTag{}, claims.TenantID, input.Name, 0)
	if err != nil {
		return respondErr(c, err)
	}

	tag := model.ContentTag{
		TenantID: claims.TenantID,
		Name:     input.Name,
		Slug:     slug,
		IsActive: true,
	}
	if err := database.GetDB().Create(&tag).Error; err != nil {
		return respondErr(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(tag)
}
