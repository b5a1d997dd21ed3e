package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/config"
	"github.com/muqdisho-plus/site/page"
)

// ---- Layout Components ----

// eyebrow is the small uppercase caption above section titles.
func eyebrow(text string) g.Node {
	return H3(Class("text-primary font-bold uppercase tracking-widest text-sm"), g.Text(text))
}

// ---- Message Components ----

// ErrorSection is the error message on its own, for requests that swap it
// into an existing page.
func ErrorSection(code int, message string) g.Node {
	return Section(
		Class("py-32 max-w-3xl mx-auto px-6 text-center space-y-6"),
		g.Attr("data-section", "error"),
		H1(Class("text-6xl font-black text-primary"), g.Textf("Error %d", code)),
		P(Class("text-lg text-slate-300"), g.Text(message)),
		A(Href("/"), Class("primary-button inline-block"), g.Text("Back to Home")),
	)
}

func ErrorPage(code int, message string) g.Node {
	s := page.NewState()
	return Document(
		fmt.Sprintf("Error %d | %s", code, config.SiteTitle),
		Div(
			Class("min-h-screen flex flex-col"),
			Navbar(s),
			Main(
				ID("main"),
				Class("flex-1"),
				ErrorSection(code, message),
			),
			SiteFooter(),
		),
	)
}
