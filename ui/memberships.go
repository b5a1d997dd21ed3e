package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/content"
)

func planCard(p content.Plan) g.Node {
	cardClass := "p-10 rounded-3xl border flex flex-col shadow-2xl transition-all bg-navy-card border-slate-800"
	buttonClass := "w-full py-4 rounded-xl font-black uppercase text-xs tracking-[0.2em]"
	if p.Popular {
		cardClass = "p-10 rounded-3xl flex flex-col shadow-2xl transition-all bg-navy-deep border-4 border-primary transform md:-translate-y-6 shadow-primary/10 relative overflow-hidden"
	}

	var cta g.Node
	if p.Popular {
		cta = buttonStyled(p.Button, "bg-primary text-navy-deep hover:scale-[1.02] transition-all", withClass(buttonClass))
	} else {
		cta = buttonOutline(p.Button, withClass(buttonClass))
	}

	return Div(
		Class(cardClass),
		g.Attr("data-plan", p.Name),
		g.If(p.Popular, Div(
			Class("most-popular bg-primary text-navy-deep text-[11px] font-black uppercase tracking-widest px-4 py-1.5 rounded-full self-start mb-6"),
			g.Text("Most Popular"),
		)),
		H4(Class("text-xl font-bold mb-2 text-white"), g.Text(p.Name)),
		Div(
			Class("flex items-baseline gap-1 mb-8"),
			Span(Class("price text-5xl font-black text-white"), g.Text("$"+p.Price)),
			Span(Class("text-slate-500 text-sm"), g.Text("/month")),
		),
		Ul(
			Class("space-y-5 mb-10 flex-1"),
			g.Map(p.Features, func(f string) g.Node {
				return Li(
					Class("flex items-center gap-3 text-sm text-slate-300"),
					icon("circle-check", "w-5 h-5 text-primary"),
					g.Text(f),
				)
			}),
		),
		cta,
	)
}

func Memberships() g.Node {
	return Section(
		Class("py-32 bg-navy-card/30"),
		g.Attr("data-section", "memberships"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("text-center space-y-4 mb-20"),
				eyebrow("Flexible Pricing"),
				H2(Class("text-5xl font-black text-white"), g.Text("Membership Plans")),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-10 items-center"),
				g.Map(content.Plans, planCard),
			),
		),
	)
}
