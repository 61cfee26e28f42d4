// Package goquery extracts text from HTML content using goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/atelier"
)

// Ensure TextExtractor implements atelier.TextExtractor.
var _ atelier.TextExtractor = (*TextExtractor)(nil)

// skipSelector matches elements whose content is never visible prose.
const skipSelector = "script, style, noscript, template, iframe"

// TextExtractor reduces rich-text HTML to plain visible text.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// Text returns the visible text of html with runs of whitespace collapsed to
// single spaces. Block elements are separated by a space so adjacent
// paragraphs do not run together.
func (e *TextExtractor) Text(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}

	doc.Find(skipSelector).Remove()
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, blockquote, br, tr").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml(" ")
	})

	return strings.Join(strings.Fields(doc.Text()), " ")
}
