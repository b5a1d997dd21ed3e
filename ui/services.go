package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/content"
)

func serviceCard(s content.Service) g.Node {
	return Div(
		Class("group p-10 rounded-2xl border border-slate-800 bg-navy-card/50 hover:border-primary/50 hover:-translate-y-2.5 transition-all duration-500 hover:bg-navy-card"),
		Div(
			Class("size-16 bg-primary/10 rounded-2xl flex items-center justify-center mb-8 group-hover:bg-primary group-hover:text-navy-deep transition-all"),
			icon(s.Icon, "w-10 h-10 text-primary"),
		),
		H4(Class("text-2xl font-bold mb-4 text-white"), g.Text(s.Title)),
		P(Class("text-slate-400 text-base leading-relaxed"), g.Text(s.Description)),
	)
}

func Services() g.Node {
	return Section(
		Class("py-32 bg-navy-deep"),
		g.Attr("data-section", "services"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("flex flex-col md:flex-row md:items-end justify-between gap-8 mb-20"),
				Div(
					Class("space-y-4"),
					eyebrow("Our Expertise"),
					H2(Class("text-5xl font-black text-white"), g.Text("Premium Services")),
				),
				P(
					Class("text-slate-400 max-w-md text-lg"),
					g.Text("Everything you need to reach your peak performance, from personalized nutrition to high-intensity functional training."),
				),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-10"),
				g.Map(content.Services, serviceCard),
			),
		),
	)
}
