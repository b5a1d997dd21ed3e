package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muqdisho-plus/site/ui"
)

// HandleHome serves the full document. Query parameters are ignored: a
// load always starts on the home page.
func (h *Handlers) HandleHome(c *fiber.Ctx) error {
	return h.renderCached(c, "document", ui.HomePage())
}
