package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/content"
)

func contactForm() g.Node {
	return Div(
		Class("bg-navy-card/50 p-8 rounded-2xl border border-navy-border shadow-xl"),
		H3(
			Class("text-2xl font-bold mb-8 flex items-center gap-2"),
			icon("mail", "w-6 h-6 text-primary"),
			g.Text("Send Us a Message"),
		),
		formContainer("contact-form",
			Div(
				Class("grid md:grid-cols-2 gap-6"),
				formGroup("Full Name", "name", textInput("name", "text", "John Doe")),
				formGroup("Email Address", "email", textInput("email", "email", "john@example.com")),
			),
			formGroup("Subject", "subject", textInput("subject", "text", "Membership Inquiry")),
			formGroup("Message", "message", textArea("message", "Tell us more about how we can help...", "5")),
			Button(
				Type("button"),
				Class("w-full bg-primary text-navy-deep font-bold py-4 rounded-lg hover:bg-primary/90 transition-all flex items-center justify-center gap-2"),
				icon("send", "w-5 h-5"),
				g.Text("Send Message"),
			),
		),
	)
}

func contactDetail(d content.ContactDetail) g.Node {
	return Div(
		Class("flex items-start gap-5"),
		Div(
			Class("bg-primary/10 p-3 rounded-xl border border-primary/20"),
			icon(d.Icon, "w-6 h-6 text-primary"),
		),
		Div(
			H4(Class("font-bold text-lg"), g.Text(d.Title)),
			g.Map(d.Lines, func(line string) g.Node {
				return P(Class("text-slate-400"), g.Text(line))
			}),
		),
	)
}

func Contact() g.Node {
	return Section(
		Class("py-32 bg-navy-deep"),
		g.Attr("data-section", "contact"),
		Div(
			Class("max-w-7xl mx-auto px-6"),
			Div(
				Class("text-center mb-20"),
				H1(Class("text-5xl md:text-7xl font-black text-primary mb-4"), g.Text("Get In Touch")),
				P(
					Class("text-lg md:text-xl text-slate-200 max-w-2xl mx-auto"),
					g.Text("Have questions? We are here to help you reach your fitness goals in Mogadishu."),
				),
			),
			Div(
				Class("grid lg:grid-cols-2 gap-16"),
				contactForm(),
				Div(
					Class("flex flex-col justify-center space-y-12"),
					Div(
						H3(Class("text-3xl font-black text-primary mb-6"), g.Text("Contact Information")),
						P(
							Class("text-slate-400 mb-8"),
							g.Text("Reach out to us directly or visit our premium facility in the heart of Mogadishu. Our professional trainers and staff are ready to assist you."),
						),
					),
					Div(
						Class("space-y-8"),
						g.Map(content.ContactDetails, contactDetail),
					),
				),
			),
		),
	)
}
