package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/content"
)

const socialButtonClass = "size-11 rounded-full bg-slate-800/50 flex items-center justify-center hover:bg-primary hover:text-navy-deep transition-all"

func footerHeading(text string) g.Node {
	return H5(Class("text-white font-bold uppercase text-xs tracking-[0.2em]"), g.Text(text))
}

func footerBrand() g.Node {
	return Div(
		Class("space-y-8"),
		Div(
			Class("flex items-center gap-3"),
			Div(
				Class("p-2 bg-primary rounded text-navy-deep"),
				icon("dumbbell", "w-6 h-6"),
			),
			H2(
				Class("text-xl font-black tracking-tight text-white uppercase"),
				g.Text("Muqdisho "), Span(Class("text-primary"), g.Text(content.BrandAccent)),
			),
		),
		P(
			Class("text-sm leading-relaxed text-slate-400"),
			g.Text("Empowering the athletes of Mogadishu since 2018. The ultimate destination for strength, resilience, and longevity."),
		),
		Div(
			Class("flex items-center gap-4"),
			iconButton("globe", "Website", socialButtonClass),
			iconButton("share-2", "Share", socialButtonClass),
			iconButton("instagram", "Instagram", socialButtonClass),
		),
	)
}

func footerContact() g.Node {
	return Div(
		Class("space-y-8"),
		footerHeading("Contact Info"),
		Ul(
			Class("space-y-5 text-sm"),
			Li(
				Class("flex items-start gap-4"),
				icon("map-pin", "w-5 h-5 text-primary"),
				Span(Class("text-slate-300"), g.Text(content.FooterAddress[0]), Br(), g.Text(content.FooterAddress[1])),
			),
			Li(
				Class("flex items-center gap-4"),
				icon("phone", "w-5 h-5 text-primary"),
				Span(Class("text-slate-300"), g.Text(content.FooterPhone)),
			),
			Li(
				Class("flex items-center gap-4"),
				icon("mail", "w-5 h-5 text-primary"),
				Span(Class("text-slate-300"), g.Text(content.FooterEmail)),
			),
		),
	)
}

func newsletter() g.Node {
	return Div(
		Class("space-y-8"),
		footerHeading("Newsletter"),
		P(Class("text-sm text-slate-400"), g.Text("Get elite training tips and weekly class schedules.")),
		Div(
			Class("flex gap-2"),
			Input(
				Type("email"),
				Name("newsletter-email"),
				Class("flex-1 bg-slate-900 border border-slate-700 rounded-lg text-sm px-4 focus:ring-2 focus:ring-primary focus:border-transparent text-white"),
				Placeholder("Email address"),
			),
			iconButton("send", "Subscribe", "p-3 bg-primary text-navy-deep rounded-lg hover:bg-yellow-500 transition-colors"),
		),
	)
}

// SiteFooter is rendered below every page.
func SiteFooter() g.Node {
	return Footer(
		Class("bg-navy-deep text-slate-400 py-20 border-t border-slate-800"),
		g.Attr("data-section", "footer"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-4 gap-16 mb-16"),
				footerBrand(),
				Div(
					Class("space-y-8"),
					footerHeading("Quick Links"),
					Ul(
						Class("space-y-4 text-sm"),
						g.Map(content.QuickLinks, func(l content.FooterLink) g.Node {
							return Li(buttonStyled(l.Label, "hover:text-primary transition-colors"))
						}),
					),
				),
				footerContact(),
				newsletter(),
			),
			Div(
				Class("pt-10 border-t border-slate-800 flex flex-col md:flex-row justify-between items-center gap-6 text-xs tracking-wider"),
				P(Class("text-slate-500"), g.Text(content.Copyright)),
				Div(
					Class("flex gap-8"),
					buttonStyled("Privacy Policy", "hover:text-white transition-colors"),
					buttonStyled("Terms of Service", "hover:text-white transition-colors"),
				),
			),
		),
	)
}
