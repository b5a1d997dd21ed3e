// Package content holds the literal display data of the site.
package content

import "github.com/muqdisho-plus/site/page"

const (
	BrandName   = "Muqdisho Shop"
	BrandAccent = "Plus"
)

type NavItem struct {
	Label string
	Value page.Page
}

type Service struct {
	Title       string
	Description string
	Icon        string
}

// Plan is a membership pricing tier. Price is the monthly price in dollars.
type Plan struct {
	Name     string
	Price    string
	Features []string
	Button   string
	Popular  bool
}

type Trainer struct {
	Name  string
	Role  string
	Bio   string
	Image string
}

type Class struct {
	Name     string
	Time     string
	Coach    string
	Category string
	Image    string
}

// Product is a shop listing. An empty Tag means no promotional badge.
type Product struct {
	Name        string
	Price       string
	Description string
	Tag         string
	Image       string
}

type ContactDetail struct {
	Title string
	Icon  string
	Lines []string
}

type FooterLink struct {
	Label string
}

// NavItems returns the navigation entries, one per page.
func NavItems() []NavItem {
	pages := page.All()
	items := make([]NavItem, 0, len(pages))
	for _, p := range pages {
		items = append(items, NavItem{Label: p.Label(), Value: p})
	}
	return items
}
