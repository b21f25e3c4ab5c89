package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"estatehub_backend/internal/controller"
	"estatehub_backend/internal/middleware"
	"estatehub_backend/internal/model"
	"estatehub_backend/pkg/config"
	"estatehub_backend/pkg/cron"
	"estatehub_backend/pkg/database"
	"estatehub_backend/pkg/seed"
)

func setupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Auth Routes
	auth := api.Group("/auth")
	auth.Post("/register", controller.Register)
	auth.Post("/login", controller.Login)

	// Public Routes
	public := api.Group("/p")
	public.Get("/:tenant/properties/:property_slug", controller.GetPropertyBySlug)
	public.Get("/:tenant/blog/:post_slug", controller.GetBlogPostBySlug)

	// Protected Routes
	protected := api.Group("/", middleware.AuthMiddleware())
	protected.Get("/me", controller.GetMe)

	// Taxonomy admin routes
	taxonomy := protected.Group("/taxonomy")
	taxonomy.Post("/categories", middleware.AdminOnly(), controller.CreateCategory)
	taxonomy.Get("/categories", controller.ListCategories)
	taxonomy.Delete("/categories/:id", middleware.AdminOnly(), controller.DeactivateCategory)
	taxonomy.Post("/values", controller.CreateValue)
	taxonomy.Get("/categories/:category_id/values", controller.ListValues)
	taxonomy.Put("/values/:id", controller.RenameValue)
	taxonomy.Delete("/values/:id", controller.DeactivateValue)
	taxonomy.Post("/values/:id/reactivate", middleware.AdminOnly(), controller.ReactivateValue)
	taxonomy.Get("/values/:id/path", controller.GetValuePath)

	// Property routes
	properties := protected.Group("/properties")
	properties.Get("/", controller.ListProperties)
	properties.Post("/", controller.CreateProperty)
	properties.Put("/:id", controller.UpdateProperty)
	properties.Delete("/:id", controller.DeleteProperty)

	// Blog routes
	blog := protected.Group("/blog")
	blog.Get("/posts", controller.ListBlogPosts)
	blog.Post("/posts", controller.CreateBlogPost)
	blog.Delete("/posts/:id", controller.DeleteBlogPost)
	blog.Post("/categories", controller.CreateContentCategory)
	blog.Post("/tags", controller.CreateContentTag)

	// Carousel routes
	carousels := protected.Group("/carousels")
	carousels.Post("/", controller.CreateCarousel)
	carousels.Get("/:id/items", controller.ListCarouselItems)
	carousels.Post("/:id/items", controller.AddCarouselItem)
	carousels.Delete("/:id/items/:property_id", controller.RemoveCarouselItem)
	carousels.Delete("/:id", controller.DeleteCarousel)

	// Career routes
	careers := protected.Group("/careers")
	careers.Get("/jobs", controller.ListCareerJobs)
	careers.Post("/jobs", controller.CreateCareerJob)
	careers.Delete("/jobs/:id", controller.DeleteCareerJob)

	// Content + FAQ routes
	content := protected.Group("/content")
	content.Post("/items", controller.CreateContentItem)
	content.Delete("/items/:id", controller.DeleteContentItem)
	content.Post("/faq-categories", controller.CreateFaqCategory)
	content.Post("/faq-items", controller.CreateFaqItem)
	content.Get("/faqs", controller.ListFaqs)

	// SEO + custom field routes (polymorphic, keyed by entity type + id)
	seoRoutes := protected.Group("/seo")
	seoRoutes.Get("/:entity_type/:entity_id", controller.GetSeo)
	seoRoutes.Put("/:entity_type/:entity_id", controller.UpsertSeo)
	seoRoutes.Delete("/:entity_type/:entity_id", controller.DeleteSeo)

	fields := protected.Group("/custom-fields")
	fields.Post("/keys", controller.CreateFieldKey)
	fields.Put("/:entity_type/:entity_id", controller.SetCustomField)
	fields.Get("/:entity_type/:entity_id", controller.ListCustomFields)
}

func main() {
	cfg := config.Load()

	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL is not set in .env")
	}

	database.InitDB(cfg.Database.URL)
	err := database.MigrateDatabase(
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
		log.Printf("Migration warning: %v", err)
	}

	seed.SeedDefaultTaxonomies(database.GetDB())
	cron.InitAttachmentCleanupCron()

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(cors.New())

	setupRoutes(app)

	log.Printf("Server is running on port %s", cfg.Server.Port)
	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
