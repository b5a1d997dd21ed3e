package handlers

import (
	"encoding/xml"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/muqdisho-plus/site/config"
)

type SitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type Sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []SitemapURL `xml:"url"`
}

// HandleSitemap lists the site's single document URL. Pages are switched
// in place and have no addresses of their own.
func (h *Handlers) HandleSitemap(c *fiber.Ctx) error {
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs: []SitemapURL{
			{
				Loc:        config.SiteURL + "/",
				LastMod:    time.Now().UTC().Format("2006-01-02"),
				ChangeFreq: "monthly",
				Priority:   "1.0",
			},
		},
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	return c.XML(sitemap)
}
