package atelier_test

import (
	"testing"
	"time"

	"github.com/fwojciec/atelier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapEntries(t *testing.T) {
	t.Parallel()

	published := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	posts := []atelier.BlogPost{
		{Slug: "dated", PublishedAt: published},
		{Slug: "flagged", Published: true, CreatedAt: created},
		{Slug: "draft"},
		{Published: true},
	}
	items := []atelier.PortfolioItem{{ID: "p1", CreatedAt: created}, {Title: "no id"}}

	entries := atelier.SitemapEntries("https://studio.example/", posts, items)

	require.Len(t, entries, len(atelier.StaticPages)+3)
	assert.Equal(t, atelier.SitemapEntry{Loc: "https://studio.example/", ChangeFreq: "weekly", Priority: 1.0}, entries[0])
	assert.InDelta(t, 0.8, entries[1].Priority, 0.001)

	rest := entries[len(atelier.StaticPages):]
	assert.Equal(t, "https://studio.example/blog/dated", rest[0].Loc)
	assert.Equal(t, published, rest[0].LastMod)
	assert.Equal(t, "https://studio.example/blog/flagged", rest[1].Loc)
	assert.Equal(t, created, rest[1].LastMod)
	assert.Equal(t, "https://studio.example/portfolio/p1", rest[2].Loc)
}
