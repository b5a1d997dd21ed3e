package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// getQueryParam gets a parameter from either query string or form data
func getQueryParam(ctx *fiber.Ctx, key string) string {
	// Try query parameter first (for GET requests)
	if value := ctx.Query(key); value != "" {
		return value
	}
	// Fall back to form value (for POST requests)
	return ctx.FormValue(key)
}

// getBoolParam reads a boolean parameter; anything unparsable is false.
func getBoolParam(ctx *fiber.Ctx, key string) bool {
	b, err := strconv.ParseBool(getQueryParam(ctx, key))
	return err == nil && b
}

// isHTMX reports whether the request was issued by htmx.
func isHTMX(ctx *fiber.Ctx) bool {
	return strings.EqualFold(ctx.Get("HX-Request"), "true")
}
