package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/page"
)

// ---- Button Components ----

// buttonOption represents configuration options for buttons
type buttonOption func(*buttonConfig)

type buttonConfig struct {
	class      string
	attributes []g.Node
}

// withClass adds additional CSS classes
func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

// withAttributes adds additional g.Node attributes
func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

// withNavigation makes the button request a page change.
func withNavigation(s page.State, target page.Page, via string) buttonOption {
	return withAttributes(navigateAttrs(s, target, via)...)
}

// buttonStyled creates a button with the given text, base class, and options.
// Buttons are type="button" so that none of them submits a form.
func buttonStyled(text, baseClass string, options ...buttonOption) g.Node {
	config := &buttonConfig{}
	for _, option := range options {
		option(config)
	}

	class := baseClass
	if config.class != "" {
		class += " " + config.class
	}

	attrs := []g.Node{Type("button"), Class(class)}
	attrs = append(attrs, config.attributes...)
	attrs = append(attrs, g.Text(text))
	return Button(attrs...)
}

// button creates the primary call-to-action button
func button(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "primary-button", options...)
}

// buttonOutline creates a bordered button that fills on hover
func buttonOutline(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "border-2 border-primary text-primary hover:bg-primary hover:text-navy-deep transition-all", options...)
}

// buttonGhost creates a translucent button for dark backgrounds
func buttonGhost(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "bg-white/5 backdrop-blur-md text-white border border-white/20 hover:bg-white/10 transition-all", options...)
}

// navigateAttrs wires an element to GET /page/:target, carrying the current
// view state so the server can compute the next one. The panel flag comes
// from the header's hidden input.
func navigateAttrs(s page.State, target page.Page, via string) []g.Node {
	return []g.Node{
		hx.Get("/page/" + target.String()),
		hx.Target("#main"),
		hx.Swap(swapSpec),
		hx.Vals(stateVals(s, via)),
		hx.Include(menuStateSelector),
	}
}
