package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"catalog/internal/cache"
	"catalog/internal/handlers"
	"catalog/internal/middleware"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DATABASE_DSN", "catalog.db")
	viper.SetDefault("JWT_SECRET", "change-me-in-production")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("REDIS_ADDR", "")
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase(viper.GetString("DB_DRIVER"), viper.GetString("DATABASE_DSN"))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	err = db.AutoMigrate(&models.Category{}, &models.Brand{}, &models.Product{}, &models.Role{}, &models.User{})
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if rabbitMQURL := viper.GetString("RABBITMQ_URL"); rabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	} else {
		log.Println("RABBITMQ_URL not set, catalog events disabled")
	}

	// --- Redis product cache (optional) ---
	var productCache *cache.ProductCache
	if redisAddr := viper.GetString("REDIS_ADDR"); redisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: redisAddr})
		productCache = cache.NewProductCache(rdb, 5*time.Minute)
		defer rdb.Close()
	} else {
		log.Println("REDIS_ADDR not set, product cache disabled")
	}

	// --- Repositories ---
	productRepo := repositories.NewGORMProductRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	brandRepo := repositories.NewGORMBrandRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	roleRepo := repositories.NewGORMRoleRepository(db)

	if err := roleRepo.EnsureExists(services.DefaultRole, "ROLE_ADMIN"); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	// --- Services ---
	productService := services.NewProductService(productRepo, categoryRepo, brandRepo, productCache, mqClient)
	categoryService := services.NewCategoryService(categoryRepo)
	brandService := services.NewBrandService(brandRepo)
	authService := services.NewAuthService(userRepo, roleRepo, viper.GetString("JWT_SECRET"))

	// --- Handlers ---
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	brandHandler := handlers.NewBrandHandler(brandService)
	authHandler := handlers.NewAuthHandler(authService)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(logger.New())
	app.Use(recover.New())

	api := app.Group("/api", middleware.Authenticate(authService))
	requireAuth := middleware.RequireAuth()

	authHandler.RegisterRoutes(api)
	productHandler.RegisterRoutes(api, requireAuth)
	categoryHandler.RegisterRoutes(api, requireAuth)
	brandHandler.RegisterRoutes(api, requireAuth)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Catalog Event Consumer ---
	if mqClient != nil {
		go func() {
			log.Println("Starting RabbitMQ consumer for catalog events...")
			handler := func(msg amqp.Delivery) error {
				log.Printf("Received catalog event %s: %s", msg.Type, string(msg.Body))
				return nil
			}
			if consumerErr := mqClient.ConsumeCatalogEvents(handler); consumerErr != nil {
				log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
			}
		}()
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase opens a GORM connection for the configured driver. SQLite is
// the local development default; production runs on PostgreSQL.
func openDatabase(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "postgres":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	}
}
