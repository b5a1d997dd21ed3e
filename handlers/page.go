package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/muqdisho-plus/site/page"
	"github.com/muqdisho-plus/site/ui"
)

// parsePage maps a page identifier to a Page, answering 404 for anything
// outside the known set.
func parsePage(s string) (page.Page, error) {
	p, err := page.Parse(s)
	if err != nil {
		return "", fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return p, nil
}

// restoreState rebuilds the client's current view state from the request.
// A missing or unknown "from" page falls back to home.
func restoreState(c *fiber.Ctx, fromKey, menuKey string) page.State {
	from, err := page.Parse(getQueryParam(c, fromKey))
	if err != nil {
		from = page.Home
	}
	return page.Restore(from, getBoolParam(c, menuKey))
}

// HandlePage navigates to :page and responds with the incoming page view and
// an out-of-band header.
func (h *Handlers) HandlePage(c *fiber.Ctx) error {
	target, err := parsePage(c.Params("page"))
	if err != nil {
		return err
	}

	s := restoreState(c, "from", "menu")
	if getQueryParam(c, "via") == ui.ViaPanel {
		s.Select(target)
	} else {
		s.Navigate(target)
	}
	// The client holds the outgoing view for the exit half of the swap; what
	// we send is mounted as the entering page.
	s.Transition.ExitDone()

	h.log.Debug("navigate",
		zap.String("to", target.String()),
		zap.String("via", getQueryParam(c, "via")),
		zap.String("phase", s.Transition.Phase.String()),
	)

	key := fmt.Sprintf("page:%s:menu:%t:phase:%s", s.Current, s.MenuOpen, s.Transition.Phase)
	return h.renderCached(c, key, ui.NavigationFragment(s))
}
