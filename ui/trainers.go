package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/content"
)

func trainerCard(t content.Trainer) g.Node {
	return Div(
		Class("group bg-navy-card rounded-xl overflow-hidden border border-slate-800 hover:border-primary/50 transition-all duration-300 shadow-xl"),
		g.Attr("data-trainer", t.Name),
		Div(
			Class("relative aspect-[4/5] overflow-hidden"),
			Div(Class("absolute inset-0 bg-gradient-to-t from-navy-deep via-transparent to-transparent opacity-60 z-10")),
			Img(
				Alt(t.Name),
				Class("w-full h-full object-cover transition-transform duration-500 group-hover:scale-110"),
				Src(t.Image),
			),
		),
		Div(
			Class("p-6"),
			H3(Class("text-primary text-xl font-bold mb-1"), g.Text(t.Name)),
			P(Class("text-slate-300 font-medium text-sm mb-3"), g.Text(t.Role)),
			P(Class("text-slate-400 text-sm leading-relaxed mb-6"), g.Text(t.Bio)),
			Div(
				Class("flex items-center justify-between gap-4"),
				Div(
					Class("flex gap-3"),
					iconButton("share-2", "Share", "text-primary hover:text-slate-100 transition-colors"),
					iconButton("globe", "Website", "text-primary hover:text-slate-100 transition-colors"),
				),
				buttonStyled("Work With Me",
					"bg-primary/10 hover:bg-primary text-primary hover:text-navy-deep px-4 py-2 rounded-lg text-xs font-bold transition-all border border-primary/20"),
			),
		),
	)
}

func Trainers() g.Node {
	return Section(
		Class("py-32 bg-navy-deep"),
		g.Attr("data-section", "trainers"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("mb-12"),
				H2(
					Class("text-white text-4xl md:text-5xl font-black leading-tight tracking-tight mb-4"),
					g.Text("Meet Our "), Span(Class("text-primary"), g.Text("Expert")), g.Text(" Trainers"),
				),
				P(
					Class("text-slate-400 text-lg max-w-2xl"),
					g.Text("Professional coaching tailored to your goals. Our elite team in Mogadishu is here to push your limits and transform your lifestyle."),
				),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
				g.Map(content.Trainers, trainerCard),
			),
		),
	)
}
