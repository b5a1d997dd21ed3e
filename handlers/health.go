package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HandleHealth returns the health status of the application
func (h *Handlers) HandleHealth(c *fiber.Ctx) error {
	health := fiber.Map{
		"status": "ok",
	}
	if h.fragments != nil {
		health["fragment_cache"] = h.fragments.Stats()
	}
	return c.JSON(health)
}
