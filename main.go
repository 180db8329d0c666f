package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/template/html/v2"
	amqp "github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ecsite/internal/config"
	"ecsite/internal/handlers"
	"ecsite/internal/middleware"
	"ecsite/internal/repositories"
	"ecsite/internal/services"
	"ecsite/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	// Schema and seed data are owned by the benchmark harness; the app only
	// ever reads and writes the existing tables.
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// --- RabbitMQ (optional) ---
	// Purchase events are best-effort; the site runs fine without a broker.
	var mqClient *rabbitmq.Client
	if cfg.RabbitMQURL != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			log.Printf("Warning: RabbitMQ unavailable, purchase events disabled: %v", err)
		} else {
			defer mqClient.Close()
		}
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	historyRepo := repositories.NewGORMHistoryRepository(db)
	commentRepo := repositories.NewGORMCommentRepository(db)

	// --- Services ---
	authService := services.NewAuthService(userRepo, cfg.SessionSecret)
	catalogService := services.NewCatalogService(productRepo, commentRepo, historyRepo)
	purchaseService := services.NewPurchaseService(historyRepo, mqClient)
	commentService := services.NewCommentService(commentRepo)
	resetService := services.NewResetService(userRepo, productRepo, commentRepo, historyRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, purchaseService, commentService)
	userHandler := handlers.NewUserHandler(userRepo, purchaseService)
	initializeHandler := handlers.NewInitializeHandler(resetService)

	// --- Fiber app ---
	engine := html.New("./views", ".html")
	app := fiber.New(fiber.Config{Views: engine})

	app.Use(logger.New())
	app.Use(middleware.LoadSession(authService))

	authHandler.RegisterRoutes(app)
	productHandler.RegisterRoutes(app)
	userHandler.RegisterRoutes(app)
	initializeHandler.RegisterRoutes(app)

	// --- Purchase event consumer ---
	if mqClient != nil {
		if consumerErr := mqClient.ConsumePurchaseEvents(func(msg amqp.Delivery) error {
			log.Printf("Purchase event (tag %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}); consumerErr != nil {
			log.Printf("Failed to start purchase event consumer: %v", consumerErr)
		}
	}

	// --- Start HTTP server ---
	log.Printf("Starting server on %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server stopped")
}
