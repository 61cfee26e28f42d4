// Package etree encodes sitemaps with beevik/etree.
package etree

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/atelier"
)

// SitemapNamespace is the sitemaps.org schema namespace.
const SitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Ensure SitemapEncoder implements atelier.SitemapEncoder at compile time.
var _ atelier.SitemapEncoder = (*SitemapEncoder)(nil)

// SitemapEncoder writes sitemap.xml documents.
type SitemapEncoder struct {
	indent int
}

// NewSitemapEncoder creates a SitemapEncoder that indents nested elements
// by indent spaces. Zero writes a single line.
func NewSitemapEncoder(indent int) *SitemapEncoder {
	return &SitemapEncoder{indent: indent}
}

// Encode writes entries as a <urlset> document. Entries without a location
// are skipped; zero LastMod, ChangeFreq and Priority are omitted.
func (e *SitemapEncoder) Encode(w io.Writer, entries []atelier.SitemapEntry) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", SitemapNamespace)

	for _, entry := range entries {
		if entry.Loc == "" {
			continue
		}
		u := urlset.CreateElement("url")
		u.CreateElement("loc").SetText(entry.Loc)
		if !entry.LastMod.IsZero() {
			u.CreateElement("lastmod").SetText(entry.LastMod.UTC().Format(time.DateOnly))
		}
		if entry.ChangeFreq != "" {
			u.CreateElement("changefreq").SetText(entry.ChangeFreq)
		}
		if entry.Priority > 0 {
			u.CreateElement("priority").SetText(strconv.FormatFloat(entry.Priority, 'f', 1, 64))
		}
	}

	if e.indent > 0 {
		doc.Indent(e.indent)
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write sitemap: %w", err)
	}
	return nil
}
