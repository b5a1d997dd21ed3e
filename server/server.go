package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/muqdisho-plus/site/config"
	h "github.com/muqdisho-plus/site/handlers"
)

// New builds the fiber application with all routes registered.
func New(cfg config.Config, handlers *h.Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.CustomErrorHandler,
		ReadTimeout:           config.ServerReadTimeout,
		WriteTimeout:          config.ServerWriteTimeout,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(handlers.RateLimiter())
	app.Use(logger.New())

	// Static files and utility
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}
	app.Get("/.well-known/appspecific/com.chrome.devtools.json", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	// Document and htmx partials
	app.Get("/", handlers.HandleHome)
	app.Get("/page/:page", handlers.HandlePage)
	app.Get("/menu", handlers.HandleMenu)

	// Sitemap
	app.Get("/sitemap.xml", handlers.HandleSitemap)

	// Health check
	app.Get("/health", handlers.HandleHealth)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	return app
}
