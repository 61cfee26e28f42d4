package atelier

import (
	"io"
	"strings"
	"time"
)

// SitemapEntry is one <url> element of a sitemap.
type SitemapEntry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
}

// SitemapEncoder writes sitemap.xml documents.
type SitemapEncoder interface {
	Encode(w io.Writer, entries []SitemapEntry) error
}

// StaticPages are the site's fixed public routes.
var StaticPages = []string{"/", "/services", "/portfolio", "/blog", "/contact", "/quote"}

// SitemapEntries lists the public pages of the site under baseURL: the
// static routes, every public post and every portfolio item.
func SitemapEntries(baseURL string, posts []BlogPost, items []PortfolioItem) []SitemapEntry {
	base := strings.TrimRight(baseURL, "/")

	entries := make([]SitemapEntry, 0, len(StaticPages)+len(posts)+len(items))
	for _, p := range StaticPages {
		priority := 0.8
		if p == "/" {
			priority = 1.0
		}
		entries = append(entries, SitemapEntry{Loc: base + p, ChangeFreq: "weekly", Priority: priority})
	}
	for _, post := range posts {
		if post.Slug == "" || !post.IsPublic() {
			continue
		}
		lastMod := post.PublishedAt
		if lastMod.IsZero() {
			lastMod = post.CreatedAt
		}
		entries = append(entries, SitemapEntry{
			Loc:        base + "/blog/" + post.Slug,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		entries = append(entries, SitemapEntry{
			Loc:        base + "/portfolio/" + item.ID,
			LastMod:    item.CreatedAt,
			ChangeFreq: "monthly",
			Priority:   0.6,
		})
	}
	return entries
}
