package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	controller "sniperlink/controllers"
	"sniperlink/middleware"
)

// Deps holds everything the routes need
type Deps struct {
	Resolver       controller.ProviderResolver
	PublicHost     string
	AllowedOrigins []string
	RateLimiter    fiber.Handler
	LogoDir        string
}

func SetupWidgetRoutes(app *fiber.App, deps Deps) {
	renderController := controller.NewRenderController(
		deps.Resolver,
		deps.PublicHost,
		logrus.WithField("component", "render"),
	)

	limit := deps.RateLimiter
	if limit == nil {
		limit = func(c *fiber.Ctx) error { return c.Next() }
	}

	// v1 group mirrors the hosted widget's URLs
	v1 := app.Group("/v1", logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	v1.Get("/render", limit, renderController.Render)
	v1.Post("/ping", limit, controller.Ping)

	app.Get("/render", limit, renderController.Render)

	if deps.LogoDir != "" {
		app.Static("/logos", deps.LogoDir)
	}

	logrus.Info("Widget routes initialized successfully")
}

func SetupRoutes(app *fiber.App, deps Deps) {
	// Preflight is answered here, before any route
	cors := middleware.DefaultCORSConfig()
	cors.AllowedOrigins = deps.AllowedOrigins
	app.Use(middleware.CORS(cors))

	// Setup health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupWidgetRoutes(app, deps)

	// Setup 404 handler
	app.Use(controller.NotFound)
}
