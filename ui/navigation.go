package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/config"
	"github.com/muqdisho-plus/site/content"
	"github.com/muqdisho-plus/site/page"
)

// Where a navigation request came from.
const (
	ViaBar   = "bar"
	ViaPanel = "panel"
	ViaHero  = "hero"
	ViaLogo  = "logo"
)

var swapSpec = page.SwapSpec(config.TransitionDuration)

// The mobile panel flag lives only in the header. Navigation controls pull it
// in with hx-include so a control outside the header never sends a stale one.
const menuStateSelector = "#menu-state"

func stateVals(s page.State, via string) string {
	return fmt.Sprintf(`{"from": %q, "via": %q}`, s.Current, via)
}

func menuState(s page.State) g.Node {
	return Input(
		Type("hidden"),
		ID("menu-state"),
		Name("menu"),
		Value(fmt.Sprintf("%t", s.MenuOpen)),
	)
}

func logo(s page.State) g.Node {
	return Div(
		Class("flex items-center gap-3 cursor-pointer"),
		g.Group(navigateAttrs(s, page.Home, ViaLogo)),
		Div(
			Class("p-2 bg-primary rounded-lg text-navy-deep"),
			icon("dumbbell", "w-6 h-6"),
		),
		H1(
			Class("text-xl font-extrabold tracking-tight text-white uppercase"),
			g.Text(content.BrandName+" "),
			Span(Class("text-primary"), g.Text(content.BrandAccent)),
		),
	)
}

func navItemClass(active bool, mobile bool) string {
	switch {
	case mobile && active:
		return "text-left text-lg font-semibold text-primary"
	case mobile:
		return "text-left text-lg font-semibold text-slate-200"
	case active:
		return "text-sm font-semibold transition-colors text-primary"
	default:
		return "text-sm font-semibold transition-colors text-slate-200 hover:text-primary"
	}
}

func navItem(s page.State, item content.NavItem, via string) g.Node {
	active := s.IsActive(item.Value)
	return Button(
		Type("button"),
		Class(navItemClass(active, via == ViaPanel)),
		g.Attr("data-nav", item.Value.String()),
		g.If(active, Aria("current", "page")),
		g.Group(navigateAttrs(s, item.Value, via)),
		g.Text(item.Label),
	)
}

func menuToggle(s page.State) g.Node {
	glyph, label := "menu", "Open menu"
	if s.MenuOpen {
		glyph, label = "x", "Close menu"
	}
	return Button(
		Type("button"),
		ID("menu-toggle"),
		Class("md:hidden text-white"),
		Aria("label", label),
		Aria("expanded", fmt.Sprintf("%t", s.MenuOpen)),
		hx.Get("/menu"),
		hx.Target("#site-header"),
		hx.Swap("outerHTML"),
		hx.Vals(fmt.Sprintf(`{"page": %q, "open": "%t"}`, s.Current, s.MenuOpen)),
		icon(glyph, "w-6 h-6"),
	)
}

// mobilePanel is always in the header. Expanding and collapsing only flips
// its is-open class, which htmx settles so the height and opacity animate.
func mobilePanel(s page.State) g.Node {
	items := content.NavItems()
	class := "mobile-panel md:hidden bg-navy-card border-b border-navy-border"
	if s.MenuOpen {
		class += " is-open"
	}
	return Div(
		ID("mobile-panel"),
		Class(class),
		g.Attr("data-open", fmt.Sprintf("%t", s.MenuOpen)),
		g.If(!s.MenuOpen, Aria("hidden", "true")),
		Div(
			Class("flex flex-col p-6 gap-4"),
			g.Map(items, func(item content.NavItem) g.Node {
				return navItem(s, item, ViaPanel)
			}),
			button("Join Now",
				withClass("w-full mt-2"),
				withNavigation(s, page.Memberships, ViaPanel),
			),
		),
	)
}

// Navbar renders the sticky site header for the given view state. Extra
// attributes are added to the header element, e.g. an out-of-band swap.
func Navbar(s page.State, attrs ...g.Node) g.Node {
	items := content.NavItems()
	return Header(
		ID("site-header"),
		Class("sticky top-0 z-50 w-full border-b border-navy-border bg-navy-deep/80 backdrop-blur-md"),
		g.Group(attrs),
		menuState(s),
		Div(
			Class("max-w-7xl mx-auto px-6 h-20 flex items-center justify-between"),
			logo(s),
			Nav(
				Class("hidden md:flex items-center gap-8"),
				g.Map(items, func(item content.NavItem) g.Node {
					return navItem(s, item, ViaBar)
				}),
			),
			Div(
				Class("flex items-center gap-4"),
				button("Join Now",
					withClass("hidden sm:block"),
					withAttributes(ID("join-now")),
					withNavigation(s, page.Memberships, ViaBar),
				),
				Div(
					Class("size-10 rounded-full border-2 border-primary/20 bg-navy-card flex items-center justify-center cursor-pointer hover:border-primary/50 transition-all"),
					icon("user", "w-5 h-5 text-primary"),
				),
				menuToggle(s),
			),
		),
		mobilePanel(s),
	)
}
