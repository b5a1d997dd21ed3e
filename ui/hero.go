package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/content"
	"github.com/muqdisho-plus/site/page"
)

// Hero is the home page banner. Its primary button navigates to onStart.
func Hero(s page.State, onStart page.Page) g.Node {
	return Section(
		Class("relative h-[85vh] min-h-[650px] w-full flex items-center overflow-hidden"),
		g.Attr("data-section", "hero"),
		Div(
			Class("absolute inset-0 z-0"),
			Div(Class("absolute inset-0 bg-gradient-to-r from-navy-deep via-navy-deep/85 to-transparent z-10")),
			Div(Class("absolute inset-0 bg-black/40 z-[5]")),
			Img(
				Alt("Hero background"),
				Class("w-full h-full object-cover object-center"),
				Src(content.HeroImage),
			),
		),
		Div(
			Class("relative z-20 max-w-7xl mx-auto px-6 w-full"),
			Div(
				Class("hero-in max-w-2xl space-y-8"),
				Div(
					Class("inline-flex items-center gap-2 px-4 py-1.5 rounded-full bg-primary/10 border border-primary/30 text-primary text-xs font-bold uppercase tracking-widest"),
					Span(Class("flex h-2 w-2 rounded-full bg-primary animate-pulse")),
					g.Text("Elite Fitness Excellence"),
				),
				H2(
					Class("text-6xl md:text-8xl font-black text-white leading-[1.1]"),
					g.Text("TRANSFORM "), Br(), g.Text("YOUR "),
					Span(Class("text-primary underline decoration-4 underline-offset-8"), g.Text("STRENGTH")),
				),
				P(
					Class("text-xl text-slate-300 leading-relaxed max-w-lg"),
					g.Text("Mogadishu's premier fitness destination. Experience world-class equipment, professional trainers, and a community built on grit and growth."),
				),
				Div(
					Class("flex flex-wrap gap-5 pt-6"),
					buttonStyled("Start Training Today",
						"px-10 py-5 bg-primary text-navy-deep font-black rounded-xl uppercase tracking-widest shadow-xl shadow-primary/20 transition-all hover:-translate-y-2 hover:scale-105 active:scale-95",
						withAttributes(ID("start-training")),
						withNavigation(s, onStart, ViaHero),
					),
					buttonGhost("View Classes", withClass("px-10 py-5 font-bold rounded-xl uppercase tracking-widest")),
				),
			),
		),
	)
}
