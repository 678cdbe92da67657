package handlers

import (
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"
	"yanews/internal/config"
	"yanews/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	sitemapLimit = 500
	feedLimit    = 20
)

type SEOHandler struct {
	news *services.NewsService
	site config.SiteConfig
}

func NewSEOHandler(news *services.NewsService, site config.SiteConfig) *SEOHandler {
	return &SEOHandler{news: news, site: site}
}

// RobotsTxt keeps crawlers away from auth and comment management pages
func (h *SEOHandler) RobotsTxt(c *gin.Context) {
	content := fmt.Sprintf(`User-agent: *
Allow: /

Disallow: /auth/
Disallow: /comments/

Sitemap: %s/sitemap.xml
`, h.site.URL)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, content)
}

// SitemapXML lists the home page and the most recent news items
func (h *SEOHandler) SitemapXML(c *gin.Context) {
	items, err := h.news.ListLatest(c.Request.Context(), sitemapLimit)
	if err != nil {
		serviceError(c, "sitemap", err)
		return
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
`)

	fmt.Fprintf(&b, `  <url>
    <loc>%s/</loc>
    <lastmod>%s</lastmod>
    <changefreq>daily</changefreq>
    <priority>1.0</priority>
  </url>
`, h.site.URL, time.Now().UTC().Format("2006-01-02"))

	for _, n := range items {
		// fresher news gets crawled more often
		changefreq := "weekly"
		priority := 0.6
		if time.Since(n.Date).Hours()/24 < 7 {
			changefreq = "daily"
			priority = 0.8
		}

		fmt.Fprintf(&b, `  <url>
    <loc>%s%s</loc>
    <lastmod>%s</lastmod>
    <changefreq>%s</changefreq>
    <priority>%.1f</priority>
  </url>
`, h.site.URL, detailURL(n.ID), n.Date.Format("2006-01-02"), changefreq, priority)
	}

	b.WriteString(`</urlset>`)

	c.Header("Content-Type", "application/xml; charset=utf-8")
	c.String(http.StatusOK, b.String())
}

// RSSFeed publishes the latest news as RSS 2.0
func (h *SEOHandler) RSSFeed(c *gin.Context) {
	items, err := h.news.ListLatest(c.Request.Context(), feedLimit)
	if err != nil {
		serviceError(c, "feed", err)
		return
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">
  <channel>
    <title>` + escapeXML(h.site.Name) + `</title>
    <link>` + h.site.URL + `/</link>
    <description>Свежие новости</description>
    <language>ru</language>
    <lastBuildDate>` + time.Now().UTC().Format(time.RFC1123Z) + `</lastBuildDate>
    <atom:link href="` + h.site.URL + `/feed.xml" rel="self" type="application/rss+xml"/>
`)

	for _, n := range items {
		link := h.site.URL + detailURL(n.ID)

		b.WriteString(`    <item>
      <title>` + escapeXML(n.Title) + `</title>
      <link>` + link + `</link>
      <description>` + escapeXML(truncateRunes(n.Text, 300)) + `</description>
      <pubDate>` + n.Date.Format(time.RFC1123Z) + `</pubDate>
      <guid isPermaLink="true">` + link + `</guid>
    </item>
`)
	}

	b.WriteString(`  </channel>
</rss>`)

	c.Header("Content-Type", "application/rss+xml; charset=utf-8")
	c.String(http.StatusOK, b.String())
}

func escapeXML(s string) string {
	return html.EscapeString(s)
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "..."
	}
	return s
}
