package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"outfitrental/internal/auth"
	"outfitrental/internal/config"
	"outfitrental/internal/database"
	"outfitrental/internal/handlers"
	"outfitrental/internal/logging"
	"outfitrental/internal/metrics"
	"outfitrental/internal/middleware"
	"outfitrental/internal/repositories"
	"outfitrental/internal/services"
	"outfitrental/pkg/rabbitmq"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logging.Setup(cfg.LogLevel)

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Error("failed to open database", "driver", cfg.DatabaseDriver, "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	// Events are optional: without a reachable broker the services skip publishing.
	var events services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			slog.Warn("RabbitMQ unavailable, event publishing disabled", "error", err)
		} else {
			defer mqClient.Close()
			events = mqClient

			if err := mqClient.Consume(rabbitmq.LogEvent); err != nil {
				slog.Warn("failed to start RabbitMQ consumer", "error", err)
			}
		}
	} else {
		slog.Warn("RABBITMQ_URL not set, event publishing disabled")
	}

	app := newApp(cfg, db, events, metrics.New())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", cfg.AppPort, "env", cfg.AppEnv, "auth_required", cfg.AuthRequired)
		if err := app.Listen(cfg.AppPort); err != nil {
			slog.Error("server failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	slog.Info("shutting down server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		slog.Error("error during shutdown", "error", err)
	}
	slog.Info("server gracefully stopped")
}

// newApp wires repositories, services and handlers onto a Fiber app.
func newApp(cfg config.Config, db *gorm.DB, events services.EventPublisher, m *metrics.Metrics) *fiber.App {
	itemRepo := repositories.NewGORMItemRepository(db)
	outfitRepo := repositories.NewGORMOutfitRepository(db)
	userRepo := repositories.NewGORMUserRepository(db)
	rentalRepo := repositories.NewGORMRentalRepository(db)

	itemService := services.NewItemService(itemRepo, events, m)
	outfitService := services.NewOutfitService(outfitRepo, itemService, events, m)
	rentalService := services.NewRentalService(rentalRepo, events, m)
	authService := services.NewAuthService(userRepo, auth.NewTokenManager(cfg.JWTSecret, cfg.JWTTTL), events, m)

	app := fiber.New(fiber.Config{
		AppName:      "outfitrental",
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(logger.New())
	app.Use(middleware.Metrics(m))

	app.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "up"
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			dbStatus = "down"
		}
		mqStatus := "disabled"
		if events != nil {
			mqStatus = "enabled"
		}
		return c.JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": dbStatus,
			"rabbitmq": mqStatus,
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	var guard handlers.Guard
	if cfg.AuthRequired {
		guard = handlers.Guard(middleware.AuthRequired(authService))
	}

	handlers.NewAuthHandler(authService).RegisterRoutes(app, middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	handlers.NewItemHandler(itemService).RegisterRoutes(app, guard)
	handlers.NewOutfitHandler(outfitService).RegisterRoutes(app, guard)
	handlers.NewRentalHandler(rentalService).RegisterRoutes(app, guard)

	app.Use(handlers.NotFound)
	return app
}
