package handlers

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"
	g "maragu.dev/gomponents"
)

// render sets the content type to HTML and renders the component.
func render(c *fiber.Ctx, component g.Node) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return component.Render(c.Response().BodyWriter())
}

// renderCached renders the component through the fragment cache under key.
func (h *Handlers) renderCached(c *fiber.Ctx, key string, component g.Node) error {
	if h.fragments == nil {
		return render(c, component)
	}
	body, err := h.fragments.Render(key, func(w io.Writer) error {
		return component.Render(w)
	})
	if err != nil {
		return err
	}
	writeHTML(c.Response(), body)
	return nil
}

func writeHTML(resp *fasthttp.Response, body []byte) {
	resp.Header.SetContentType(fiber.MIMETextHTMLCharsetUTF8)
	resp.SetBodyRaw(body)
}
