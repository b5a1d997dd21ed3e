package ui

import (
	"bytes"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/muqdisho-plus/site/page"
)

func parseHTML(t *testing.T, node g.Node) *goquery.Document {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, node.Render(&buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func settled(p page.Page) page.State {
	s := page.NewState()
	s.Navigate(p)
	s.Transition.Settle()
	return s
}

func mainSections(doc *goquery.Document) []string {
	var sections []string
	doc.Find("#main [data-section]").Each(func(_ int, sel *goquery.Selection) {
		sections = append(sections, sel.AttrOr("data-section", ""))
	})
	return sections
}

func TestEachPageRendersOnlyItsSections(t *testing.T) {
	tests := []struct {
		page     page.Page
		expected []string
	}{
		{page.Home, []string{"hero", "services", "memberships", "trainers"}},
		{page.Classes, []string{"classes"}},
		{page.Memberships, []string{"memberships"}},
		{page.Trainers, []string{"trainers"}},
		{page.Shop, []string{"shop"}},
		{page.Contact, []string{"contact"}},
	}

	for _, tt := range tests {
		t.Run(tt.page.String(), func(t *testing.T) {
			doc := parseHTML(t, App(settled(tt.page)))
			assert.Equal(t, tt.expected, mainSections(doc))
			assert.Equal(t, tt.page.String(), doc.Find("#main .page-view").AttrOr("data-page", ""))
			assert.Equal(t, 1, doc.Find(`footer[data-section="footer"]`).Length())
		})
	}
}

func TestHomePageStartsAtHome(t *testing.T) {
	doc := parseHTML(t, HomePage())
	assert.Equal(t, "home", doc.Find("#main .page-view").AttrOr("data-page", ""))
	assert.Equal(t, "home", doc.Find(`[data-nav][aria-current="page"]`).First().AttrOr("data-nav", ""))
	assert.Equal(t, "false", doc.Find("#mobile-panel").AttrOr("data-open", ""))
	assert.Equal(t, "idle", doc.Find("#main .page-view").AttrOr("data-phase", ""))
	assert.Equal(t, "Muqdisho Shop Plus", doc.Find("title").Text())
}

func TestDocumentStyles(t *testing.T) {
	doc := parseHTML(t, HomePage())
	styles := doc.Find(`style[type="text/tailwindcss"]`).Text()
	assert.Contains(t, styles, `.page-view[data-phase="entering"].htmx-added`)
	assert.Contains(t, styles, "opacity 300ms ease")
	assert.Contains(t, styles, ".mobile-panel.is-open")
	assert.NotContains(t, styles, ".mobile-panel.htmx-added")
}

func TestHeroStartNavigatesToMemberships(t *testing.T) {
	doc := parseHTML(t, Hero(page.NewState(), page.Memberships))
	start := doc.Find("#start-training")
	require.Equal(t, 1, start.Length())
	assert.Equal(t, "/page/memberships", start.AttrOr("hx-get", ""))
	assert.Equal(t, "#main", start.AttrOr("hx-target", ""))
	assert.Contains(t, start.AttrOr("hx-vals", ""), `"via": "hero"`)
	assert.NotContains(t, start.AttrOr("hx-vals", ""), "menu")
	assert.Equal(t, "#menu-state", start.AttrOr("hx-include", ""))
	assert.Equal(t, "innerHTML swap:300ms settle:20ms show:window:top", start.AttrOr("hx-swap", ""))
}

func TestMembershipsPlans(t *testing.T) {
	doc := parseHTML(t, Memberships())

	var names []string
	doc.Find("[data-plan]").Each(func(_ int, sel *goquery.Selection) {
		names = append(names, sel.AttrOr("data-plan", ""))
	})
	assert.Equal(t, []string{"Basic Tier", "Elite Pro", "Power Team"}, names)

	popular := doc.Find(".most-popular")
	require.Equal(t, 1, popular.Length())
	assert.Equal(t, "Elite Pro", popular.Closest("[data-plan]").AttrOr("data-plan", ""))

	var prices []string
	doc.Find("[data-plan] .price").Each(func(_ int, sel *goquery.Selection) {
		prices = append(prices, sel.Text())
	})
	assert.Equal(t, []string{"$29", "$59", "$99"}, prices)
}

func TestShopProducts(t *testing.T) {
	doc := parseHTML(t, Shop())

	type product struct{ name, price string }
	var products []product
	doc.Find("[data-product]").Each(func(_ int, sel *goquery.Selection) {
		products = append(products, product{
			name:  sel.AttrOr("data-product", ""),
			price: sel.Find(".price").Text(),
		})
	})
	assert.Equal(t, []product{
		{"Whey Protein Isolate", "$65.00"},
		{"Adjustable Dumbbells", "$145.00"},
		{"Performance Tee", "$32.00"},
		{"Recovery Foam Roller", "$24.00"},
	}, products)

	tags := doc.Find(".product-tag")
	require.Equal(t, 1, tags.Length())
	assert.Equal(t, "Top Seller", tags.Text())
	assert.Equal(t, "Whey Protein Isolate", tags.Closest("[data-product]").AttrOr("data-product", ""))
}

func TestClassesAndTrainersOrder(t *testing.T) {
	doc := parseHTML(t, Classes())
	var classes []string
	doc.Find("[data-class]").Each(func(_ int, sel *goquery.Selection) {
		classes = append(classes, sel.AttrOr("data-class", ""))
	})
	assert.Equal(t, []string{"Elite Boxing", "Morning HIIT", "Zen Flow Yoga"}, classes)

	doc = parseHTML(t, Trainers())
	var trainers []string
	doc.Find("[data-trainer]").Each(func(_ int, sel *goquery.Selection) {
		trainers = append(trainers, sel.AttrOr("data-trainer", ""))
	})
	assert.Equal(t, []string{"Ahmed Mohamed", "Fartun Ali", "Omar Hassan"}, trainers)
}

func TestContactFormHasNoSubmit(t *testing.T) {
	doc := parseHTML(t, Contact())
	form := doc.Find("#contact-form")
	require.Equal(t, 1, form.Length())
	assert.Empty(t, form.AttrOr("action", ""))
	assert.Equal(t, 0, form.Find(`[type="submit"]`).Length())
	assert.Equal(t, 4, form.Find("input, textarea").Length())
}

func TestNavbarActiveStyling(t *testing.T) {
	for _, p := range page.All() {
		t.Run(p.String(), func(t *testing.T) {
			doc := parseHTML(t, Navbar(settled(p)))
			active := doc.Find(`nav [data-nav][aria-current="page"]`)
			require.Equal(t, 1, active.Length())
			assert.Equal(t, p.String(), active.AttrOr("data-nav", ""))
			assert.Contains(t, active.AttrOr("class", ""), "text-primary")
			assert.Equal(t, 6, doc.Find("nav [data-nav]").Length())
		})
	}
}

func TestNavbarJoinNowTargetsMemberships(t *testing.T) {
	doc := parseHTML(t, Navbar(settled(page.Shop)))
	assert.Equal(t, "/page/memberships", doc.Find("#join-now").AttrOr("hx-get", ""))
	assert.Contains(t, doc.Find("#join-now").AttrOr("hx-vals", ""), `"from": "shop"`)
}

func TestNavbarMobilePanel(t *testing.T) {
	s := settled(page.Trainers)
	doc := parseHTML(t, Navbar(s))
	panel := doc.Find("#mobile-panel")
	require.Equal(t, 1, panel.Length())
	assert.Equal(t, "false", panel.AttrOr("data-open", ""))
	assert.False(t, panel.HasClass("is-open"))
	assert.Equal(t, "true", panel.AttrOr("aria-hidden", ""))
	assert.Equal(t, "false", doc.Find("#menu-state").AttrOr("value", ""))
	assert.Equal(t, "false", doc.Find("#menu-toggle").AttrOr("aria-expanded", ""))

	s.ToggleMenu()
	doc = parseHTML(t, Navbar(s))
	panel = doc.Find("#mobile-panel")
	require.Equal(t, 1, panel.Length())
	assert.Equal(t, "true", panel.AttrOr("data-open", ""))
	assert.True(t, panel.HasClass("is-open"))
	_, hidden := panel.Attr("aria-hidden")
	assert.False(t, hidden)
	assert.Equal(t, 6, panel.Find("[data-nav]").Length())
	assert.Contains(t, panel.Find("[data-nav]").First().AttrOr("hx-vals", ""), `"via": "panel"`)
	assert.Equal(t, "true", doc.Find("#menu-state").AttrOr("value", ""))
	assert.Equal(t, "menu", doc.Find("#menu-state").AttrOr("name", ""))
	assert.Equal(t, "true", doc.Find("#menu-toggle").AttrOr("aria-expanded", ""))
}

func TestNavigationControlsIncludeMenuState(t *testing.T) {
	s := settled(page.Classes)
	s.ToggleMenu()
	doc := parseHTML(t, App(s))

	controls := doc.Find("[hx-get^='/page/']")
	require.NotZero(t, controls.Length())
	controls.Each(func(_ int, sel *goquery.Selection) {
		assert.Equal(t, "#menu-state", sel.AttrOr("hx-include", ""))
		assert.NotContains(t, sel.AttrOr("hx-vals", ""), "menu")
	})
}

func TestNavigationFragment(t *testing.T) {
	s := page.NewState()
	s.Navigate(page.Shop)
	s.Transition.ExitDone()

	doc := parseHTML(t, NavigationFragment(s))
	view := doc.Find(".page-view")
	require.Equal(t, 1, view.Length())
	assert.Equal(t, "shop", view.AttrOr("data-page", ""))
	assert.Equal(t, "entering", view.AttrOr("data-phase", ""))

	header := doc.Find("#site-header")
	require.Equal(t, 1, header.Length())
	assert.Equal(t, "true", header.AttrOr("hx-swap-oob", ""))
	assert.Equal(t, "shop", header.Find(`[aria-current="page"]`).AttrOr("data-nav", ""))
}

func TestErrorPage(t *testing.T) {
	doc := parseHTML(t, ErrorPage(404, "unknown page"))
	assert.Equal(t, "Error 404", doc.Find("h1.text-6xl").Text())
	assert.Contains(t, doc.Find(`[data-section="error"]`).Text(), "unknown page")
}

func TestErrorSectionIsAFragment(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ErrorSection(404, "unknown page").Render(&buf))
	assert.NotContains(t, buf.String(), "<html")
	assert.NotContains(t, buf.String(), "site-header")

	doc := parseHTML(t, ErrorSection(404, "unknown page"))
	assert.Equal(t, "Error 404", doc.Find(`[data-section="error"] h1`).Text())
}
