package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/content"
)

func classCard(c content.Class) g.Node {
	return Div(
		Class("flex flex-col bg-navy-card rounded-2xl overflow-hidden border border-navy-border hover:border-primary/40 transition-all duration-300 group shadow-2xl"),
		g.Attr("data-class", c.Name),
		Div(
			Class("h-48 relative overflow-hidden"),
			Img(
				Alt(c.Name),
				Class("w-full h-full object-cover opacity-70 group-hover:scale-110 transition-transform duration-700"),
				Src(c.Image),
			),
			Div(Class("absolute inset-0 bg-gradient-to-t from-navy-card to-transparent")),
			Div(
				Class("absolute top-4 left-4 bg-primary text-navy-deep px-3 py-1 rounded-md text-[10px] font-black uppercase tracking-widest"),
				g.Text(c.Category),
			),
			Div(
				Class("absolute bottom-4 left-6"),
				H3(Class("text-white text-2xl font-bold"), g.Text(c.Name)),
			),
		),
		Div(
			Class("p-6 pt-2 flex flex-col gap-5"),
			Div(
				Class("flex flex-col gap-2"),
				Div(
					Class("flex items-center gap-2 text-primary"),
					icon("calendar", "w-4 h-4"),
					Span(Class("font-bold text-sm"), g.Text(c.Time)),
				),
				Div(
					Class("flex items-center gap-2 text-slate-400"),
					icon("user", "w-4 h-4"),
					Span(Class("text-xs"), g.Text(c.Coach)),
				),
			),
			buttonStyled("Book Now",
				"w-full py-3 bg-primary text-navy-deep font-black rounded-xl hover:bg-white transition-all uppercase tracking-tighter text-sm"),
		),
	)
}

func Classes() g.Node {
	return Section(
		Class("py-32 bg-navy-deep"),
		g.Attr("data-section", "classes"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("mb-10 text-center md:text-left"),
				H1(Class("text-white text-5xl md:text-6xl font-black leading-tight tracking-tight mb-4"), g.Text("Class Schedule")),
				P(
					Class("text-slate-400 text-lg max-w-2xl font-light"),
					g.Text("Elevate your fitness journey in Mogadishu. Filter by activity or instructor to find your perfect rhythm."),
				),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Map(content.Classes, classCard),
			),
		),
	)
}
