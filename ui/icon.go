package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Icon Components ----

// icon renders a lucide glyph placeholder that the lucide script replaces
// with the named SVG.
func icon(name string, class string) g.Node {
	return I(
		g.Attr("data-lucide", name),
		Class(class),
		Aria("hidden", "true"),
	)
}

// iconButton is an inert round button holding a single glyph.
func iconButton(name, label, class string) g.Node {
	return Button(
		Type("button"),
		Class(class),
		Aria("label", label),
		icon(name, "w-5 h-5"),
	)
}
