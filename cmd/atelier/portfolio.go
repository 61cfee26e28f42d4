package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/atelier"
)

// Run executes the portfolio list command.
func (c *PortfolioListCmd) Run(deps *Dependencies) error {
	featured := ""
	if c.Featured {
		featured = "true"
	}
	q := atelier.PageQuery{
		Page:    c.Page,
		Limit:   c.Limit,
		Filters: filters("category", c.Category, "featured", featured),
	}
	portfolio := deps.Loader.Portfolio(deps.Ctx, q)
	defer portfolio.Close()

	s, err := portfolio.Wait(deps.Ctx)
	if err != nil {
		return err
	}
	noteFallback(deps.Stderr, s.Err)

	if len(s.Items) == 0 {
		fmt.Fprintln(deps.Stdout, "No projects found.")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Portfolio%s, %s\n", badge(s.IsFromAPI), pageSummary(s.Pagination))
	for _, item := range s.Items {
		mark := " "
		if item.Featured {
			mark = "*"
		}
		fmt.Fprintf(deps.Stdout, "%s %-24s  %-28s  %-12s  %s\n", mark, item.ID, item.Title, item.Category, yearString(item.Year))
	}
	return nil
}

// Run executes the portfolio show command.
func (c *PortfolioShowCmd) Run(deps *Dependencies) error {
	item := deps.Loader.PortfolioItem(deps.Ctx, c.ID)
	defer item.Close()

	s, err := item.Wait(deps.Ctx)
	if err != nil {
		return err
	}
	if s.Data == nil {
		return fail(deps, atelier.Errorf(atelier.ENOTFOUND, "project %q not found", c.ID))
	}
	noteFallback(deps.Stderr, s.Err)

	p := s.Data
	w := deps.Stdout
	fmt.Fprintf(w, "%s%s\n", p.Title, badge(s.IsFromAPI))
	for _, row := range [][2]string{
		{"Category", p.Category},
		{"Client", p.Client},
		{"Location", p.Location},
		{"Year", yearString(p.Year)},
		{"Tags", strings.Join(p.Tags, ", ")},
		{"Image", p.Image},
	} {
		if row[1] != "" {
			fmt.Fprintf(w, "  %-9s %s\n", row[0], row[1])
		}
	}
	if p.Description != "" {
		fmt.Fprintf(w, "\n%s\n", p.Description)
	}
	return nil
}
