package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"sniperlink/config"
	controller "sniperlink/controllers"
	"sniperlink/middleware"
	"sniperlink/routes"
	"sniperlink/utils"
)

func main() {
	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := config.AppConfig
	utils.ConfigureLogger(cfg.LogLevel, cfg.IsProduction())

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		}); err != nil {
			logrus.Fatalf("Failed to initialize Sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Provider registry is built once and shared read-only
	registry, err := utils.NewRegistry(utils.DefaultProviders(utils.ProviderOptions{
		AndroidPlayStoreFallback: cfg.AndroidPlayStoreFallback,
	}))
	if err != nil {
		logrus.Fatalf("Invalid provider registry: %v", err)
	}

	var lookup utils.MXLookup
	switch cfg.DNS.Mode {
	case "udp":
		lookup = utils.NewWireClient(cfg.DNS.Server, cfg.DNS.Timeout)
	default:
		lookup = utils.NewDoHClient(cfg.DNS.DoHEndpoint, cfg.DNS.Timeout)
	}

	storage := middleware.NewRateLimitStorage(cfg.Redis)
	if storage != nil {
		defer storage.Close()
	}

	app := fiber.New(fiber.Config{
		AppName:      "sniperlink",
		ErrorHandler: controller.ErrorHandler,
	})
	app.Use(recover.New())

	routes.SetupRoutes(app, routes.Deps{
		Resolver:       utils.NewResolver(registry, lookup),
		PublicHost:     cfg.PublicHost,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimiter:    middleware.RateLimiter(cfg.RateLimit, storage),
		LogoDir:        cfg.LogoDir,
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logrus.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logrus.Errorf("Shutdown failed: %v", err)
		}
	}()

	logrus.Infof("🚀 Server starting on port %s", cfg.ServerPort)
	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}
