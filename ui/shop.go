package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/content"
)

func productCard(p content.Product) g.Node {
	return Div(
		Class("group bg-navy-card rounded-xl overflow-hidden border border-navy-border hover:border-primary/50 transition-all"),
		g.Attr("data-product", p.Name),
		Div(
			Class("relative aspect-square overflow-hidden bg-navy-deep"),
			Img(
				Alt(p.Name),
				Src(p.Image),
				Class("w-full h-full object-cover group-hover:scale-105 transition-transform duration-500"),
			),
			g.If(p.Tag != "", Div(
				Class("product-tag absolute top-3 left-3 bg-primary text-navy-deep text-[10px] font-bold px-2 py-1 rounded uppercase tracking-wider"),
				g.Text(p.Tag),
			)),
		),
		Div(
			Class("p-5"),
			H3(Class("text-lg font-bold mb-1 text-slate-100"), g.Text(p.Name)),
			P(Class("text-slate-400 text-sm mb-4"), g.Text(p.Description)),
			Div(
				Class("flex items-center justify-between"),
				Span(Class("price text-primary font-bold text-xl"), g.Text("$"+p.Price)),
				iconButton("plus", "Add "+p.Name+" to cart",
					"bg-primary hover:bg-primary/90 text-navy-deep p-2 rounded-lg flex items-center justify-center transition-colors"),
			),
		),
	)
}

func Shop() g.Node {
	return Section(
		Class("py-32 bg-navy-deep"),
		g.Attr("data-section", "shop"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("mb-10"),
				H2(
					Class("text-4xl md:text-5xl font-black mb-4"),
					g.Text("Mogadishu's Elite "), Span(Class("text-primary"), g.Text("Fitness Hub")),
				),
				P(
					Class("text-slate-400 max-w-2xl text-lg"),
					g.Text("Premium gym equipment, world-class supplements, and performance apparel delivered across Mogadishu."),
				),
			),
			Div(
				Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-4 gap-8"),
				g.Map(content.Products, productCard),
			),
		),
	)
}
