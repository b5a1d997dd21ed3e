package page

import (
	"fmt"
	"strings"
)

// Page identifies one of the site's content pages.
type Page string

const (
	Home        Page = "home"
	Classes     Page = "classes"
	Memberships Page = "memberships"
	Trainers    Page = "trainers"
	Shop        Page = "shop"
	Contact     Page = "contact"
)

var all = []Page{Home, Classes, Memberships, Trainers, Shop, Contact}

// All returns every page in navigation order.
func All() []Page {
	pages := make([]Page, len(all))
	copy(pages, all)
	return pages
}

// Parse converts a page identifier into a Page. Identifiers outside the
// closed set are rejected.
func Parse(s string) (Page, error) {
	p := Page(strings.ToLower(strings.TrimSpace(s)))
	for _, candidate := range all {
		if p == candidate {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown page %q", s)
}

// Label is the display text used in navigation.
func (p Page) Label() string {
	if p == "" {
		return ""
	}
	return strings.ToUpper(string(p[:1])) + string(p[1:])
}

func (p Page) String() string {
	return string(p)
}
