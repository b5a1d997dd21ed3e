package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/muqdisho-plus/site/ui"
)

// HandleMenu toggles the mobile navigation panel and re-renders the header.
func (h *Handlers) HandleMenu(c *fiber.Ctx) error {
	s := restoreState(c, "page", "open")
	s.ToggleMenu()

	key := fmt.Sprintf("header:%s:menu:%t", s.Current, s.MenuOpen)
	return h.renderCached(c, key, ui.Navbar(s))
}
