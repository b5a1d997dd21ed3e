package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/muqdisho-plus/site/ui"
)

// CustomErrorHandler logs the error and renders the HTML error page.
func (h *Handlers) CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	fields := []zap.Field{
		zap.Int("status", code),
		zap.String("method", ctx.Method()),
		zap.String("path", ctx.Path()),
		zap.Error(err),
	}
	if code >= fiber.StatusInternalServerError {
		h.log.Error("request failed", fields...)
	} else {
		h.log.Info("request rejected", fields...)
	}

	ctx.Status(code)
	ctx.Vary("HX-Request")
	if isHTMX(ctx) {
		return render(ctx, ui.ErrorSection(code, err.Error()))
	}
	return render(ctx, ui.ErrorPage(code, err.Error()))
}
