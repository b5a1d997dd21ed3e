package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

// The site's forms only collect text; none of them has a submit handler.

const fieldClass = "w-full bg-navy-deep border-none rounded-lg focus:ring-2 focus:ring-primary text-slate-100 py-3 px-4"

func formContainer(formID string, content ...g.Node) g.Node {
	return Form(
		ID(formID),
		Class("space-y-6"),
		g.Attr("onsubmit", "return false"),
		g.Group(content),
	)
}

func formGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("text-sm font-medium"), g.Text(labelText)),
		input,
	)
}

func textInput(id, inputType, placeholder string) g.Node {
	return Input(
		Type(inputType),
		ID(id),
		Name(id),
		Class(fieldClass),
		Placeholder(placeholder),
	)
}

func textArea(id, placeholder string, rows string) g.Node {
	return Textarea(
		ID(id),
		Name(id),
		Class(fieldClass),
		Placeholder(placeholder),
		Rows(rows),
	)
}
