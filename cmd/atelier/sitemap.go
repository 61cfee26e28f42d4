package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/fallback"
	"golang.org/x/sync/errgroup"
)

// Run executes the sitemap command.
func (c *SitemapCmd) Run(deps *Dependencies) error {
	q := atelier.PageQuery{Page: 1, Limit: exportPageLimit}
	blogs := deps.Loader.Blogs(deps.Ctx, q)
	defer blogs.Close()
	portfolio := deps.Loader.Portfolio(deps.Ctx, q)
	defer portfolio.Close()

	var (
		bs fallback.PageState[atelier.BlogPost]
		ps fallback.PageState[atelier.PortfolioItem]
	)
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() (err error) {
		bs, err = blogs.Wait(ctx)
		return err
	})
	g.Go(func() (err error) {
		ps, err = portfolio.Wait(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if bs.Err != nil {
		noteFallback(deps.Stderr, bs.Err)
	} else {
		noteFallback(deps.Stderr, ps.Err)
	}

	entries := atelier.SitemapEntries(deps.Config.SiteURL, bs.Items, ps.Items)

	var w io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			return fail(deps, atelier.Errorf(atelier.EINVALID, "create %s: %v", c.Out, err))
		}
		defer f.Close()
		w = f
	}
	if err := deps.Sitemap.Encode(w, entries); err != nil {
		return fail(deps, err)
	}
	if c.Out != "" {
		fmt.Fprintf(deps.Stderr, "wrote %d urls to %s\n", len(entries), c.Out)
	}
	return nil
}
