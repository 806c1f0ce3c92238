package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"

	"allupro/internal/database"
	"allupro/internal/handlers"
	"allupro/internal/middleware"
	"allupro/internal/repositories"
	"allupro/internal/services"
	"allupro/internal/session"
	"allupro/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_DSN", "portal_allupro.db")
	viper.SetDefault("SESSION_BACKEND", "memory")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("SESSION_TTL", "24h")
	viper.SetDefault("COOKIE_SECURE", false)
	// With strict mode off, updating or deleting a nonexistent id still
	// reports success, matching the historical API behavior.
	viper.SetDefault("API_STRICT_NOT_FOUND", false)
	viper.SetDefault("RABBITMQ_URL", "") // empty disables event publication
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	strict := viper.GetBool("API_STRICT_NOT_FOUND")
	sessionTTL := viper.GetDuration("SESSION_TTL")
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}

	// --- Database ---
	db, err := database.Open(database.Config{
		Driver: viper.GetString("DB_DRIVER"),
		DSN:    viper.GetString("DB_DSN"),
	})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// --- Session store ---
	var sessions session.Store
	switch backend := viper.GetString("SESSION_BACKEND"); backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASSWORD"),
		})
		sessions = session.NewRedisStore(client, sessionTTL)
	case "memory":
		sessions = session.NewMemoryStore(sessionTTL)
	default:
		log.Fatalf("Unknown session backend %q", backend)
	}

	// --- RabbitMQ (optional) ---
	var mqClient *rabbitmq.Client
	if url := viper.GetString("RABBITMQ_URL"); url != "" {
		mqClient, err = rabbitmq.NewClient(rabbitmq.Config{URL: url})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
	}

	// --- Repositories ---
	usuarioRepo := repositories.NewGORMUsuarioRepository(db)
	projetoRepo := repositories.NewGORMProjetoRepository(db, strict)
	materialRepo := repositories.NewGORMMaterialRepository(db, strict)
	itemRepo := repositories.NewGORMProjetoMaterialRepository(db, strict)

	// --- Services ---
	authService := services.NewAuthService(usuarioRepo)
	projetoService := services.NewProjetoService(projetoRepo, mqClient)
	materialService := services.NewMaterialService(materialRepo)
	dashboardService := services.NewDashboardService(projetoRepo, materialRepo)
	itemService := services.NewProjetoMaterialService(itemRepo, materialRepo)

	// --- Handlers ---
	authHandler := handlers.NewAuthHandler(authService, sessions, sessionTTL, viper.GetBool("COOKIE_SECURE"))
	projetoHandler := handlers.NewProjetoHandler(projetoService)
	materialHandler := handlers.NewMaterialHandler(materialService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	itemHandler := handlers.NewProjetoMaterialHandler(itemService)

	// --- Fiber app ---
	app := fiber.New()
	app.Use(logger.New())

	api := app.Group("/api")

	// Session lifecycle routes stay open; everything else is gated.
	authHandler.RegisterRoutes(api)

	protected := api.Group("", middleware.SessionRequired(sessions))
	dashboardHandler.RegisterRoutes(protected)
	projetoHandler.RegisterRoutes(protected)
	materialHandler.RegisterRoutes(protected)
	itemHandler.RegisterRoutes(protected)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP server ---
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
