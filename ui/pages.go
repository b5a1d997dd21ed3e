package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/config"
	"github.com/muqdisho-plus/site/page"
)

// Sections renders the content sections that make up page p.
func Sections(s page.State, p page.Page) []g.Node {
	switch p {
	case page.Classes:
		return []g.Node{Classes()}
	case page.Memberships:
		return []g.Node{Memberships()}
	case page.Trainers:
		return []g.Node{Trainers()}
	case page.Shop:
		return []g.Node{Shop()}
	case page.Contact:
		return []g.Node{Contact()}
	default:
		return []g.Node{
			Hero(s, page.Memberships),
			Services(),
			Memberships(),
			Trainers(),
		}
	}
}

// PageView wraps the sections of the page being shown, tagged with the page
// and the transition phase it is rendered in.
func PageView(s page.State) g.Node {
	return Div(
		Class("page-view"),
		g.Attr("data-page", s.Transition.Shown.String()),
		g.Attr("data-phase", s.Transition.Phase.String()),
		g.Group(Sections(s, s.Transition.Shown)),
	)
}

// App renders the whole application shell for a state.
func App(s page.State) g.Node {
	return Div(
		Class("min-h-screen flex flex-col"),
		Navbar(s),
		Main(
			ID("main"),
			Class("flex-1"),
			PageView(s),
		),
		SiteFooter(),
	)
}

// HomePage is the full document. It always starts at the initial state.
func HomePage() g.Node {
	return Document(config.SiteTitle, App(page.NewState()))
}

// NavigationFragment is the response to a page change: the new page view for
// #main plus the header swapped out of band so active styling and the mobile
// panel follow the new state.
func NavigationFragment(s page.State) g.Node {
	return g.Group([]g.Node{
		PageView(s),
		Navbar(s, hx.SwapOOB("true")),
	})
}
