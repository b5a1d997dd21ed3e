package ui

import (
	"fmt"
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/muqdisho-plus/site/config"
)

const tailwindConfig = `tailwind.config = {
  theme: {
    extend: {
      colors: {
        primary: '#f2a20d',
        'navy-deep': '#0b1120',
        'navy-card': '#141d2f',
        'navy-border': '#1f2b44'
      },
      fontFamily: { sans: ['Lexend', 'sans-serif'] }
    }
  }
}`

// Page transitions: htmx keeps the outgoing view in .htmx-swapping for the
// swap delay, then inserts the incoming view as .htmx-added until settle.
// Only a view the server sent in the entering phase animates in, so the first
// paint of the document stays still. The mobile panel animates on its is-open
// class, which htmx settles across header swaps.
func siteStyles(d time.Duration) string {
	ms := d.Milliseconds()
	return fmt.Sprintf(`
@layer components {
  .primary-button { @apply px-6 py-2.5 bg-primary text-navy-deep font-bold rounded-lg hover:scale-105 transition-all; }
}
.page-view { transition: opacity %[1]dms ease, transform %[1]dms ease; }
#main.htmx-swapping > .page-view { opacity: 0; transform: translateY(-20px); }
.page-view[data-phase="entering"].htmx-added { opacity: 0; transform: translateY(20px); }
.mobile-panel { transition: max-height %[1]dms ease, opacity %[1]dms ease, visibility %[1]dms; max-height: 0; opacity: 0; visibility: hidden; overflow: hidden; }
.mobile-panel.is-open { max-height: 40rem; opacity: 1; visibility: visible; }
@keyframes hero-in { from { opacity: 0; transform: translateX(-50px); } to { opacity: 1; transform: none; } }
.hero-in { animation: hero-in 0.8s ease-out both; }
`, ms)
}

// Re-create lucide glyphs for content inserted by htmx.
const iconScript = `document.addEventListener('DOMContentLoaded', function () {
  lucide.createIcons();
  document.body.addEventListener('htmx:afterSettle', function () { lucide.createIcons(); });
});`

// ---- Page Layout ----

// Document renders the complete HTML document around the app shell.
func Document(title string, body ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:       title,
		Description: "Mogadishu's premier fitness destination.",
		Language:    "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Link(Rel("preconnect"), Href("https://fonts.googleapis.com")),
			Link(Rel("stylesheet"), Href("https://fonts.googleapis.com/css2?family=Lexend:wght@300;400;500;600;700;800;900&display=swap")),
			Script(Src(config.TailwindCSSURL)),
			Script(g.Raw(tailwindConfig)),
			StyleEl(Type("text/tailwindcss"), g.Raw(siteStyles(config.TransitionDuration))),
			Script(Type("text/javascript"), Src(config.HTMXURL), Defer()),
			Script(Type("text/javascript"), Src(config.LucideURL)),
			Script(Type("text/javascript"), g.Raw(iconScript)),
		},
		Body: []g.Node{
			Class("bg-navy-deep text-slate-100 font-sans antialiased"),
			g.Group(body),
		},
	})
}
