package main

import (
	"fmt"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/fallback"
	"github.com/fwojciec/atelier/site"
	"golang.org/x/sync/errgroup"
)

// Run executes the home command. Stats, featured projects and testimonials
// load concurrently.
func (c *HomeCmd) Run(deps *Dependencies) error {
	stats := deps.Loader.Stats(deps.Ctx)
	defer stats.Close()
	featured := deps.Loader.Portfolio(deps.Ctx, site.FeaturedPortfolio)
	defer featured.Close()
	testimonials := deps.Loader.Testimonials(deps.Ctx)
	defer testimonials.Close()

	var (
		st fallback.State[atelier.Stats]
		fp fallback.PageState[atelier.PortfolioItem]
		ts fallback.State[[]atelier.Testimonial]
	)
	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() (err error) {
		st, err = stats.Wait(ctx)
		return err
	})
	g.Go(func() (err error) {
		fp, err = featured.Wait(ctx)
		return err
	})
	g.Go(func() (err error) {
		ts, err = testimonials.Wait(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	for _, err := range []*atelier.APIError{st.Err, fp.Err, ts.Err} {
		if err != nil {
			noteFallback(deps.Stderr, err)
			break
		}
	}

	w := deps.Stdout
	fmt.Fprintf(w, "At a glance%s\n", badge(st.IsFromAPI))
	fmt.Fprintf(w, "  %-20s %d\n", "Projects completed", st.Data.ProjectsCompleted)
	fmt.Fprintf(w, "  %-20s %d\n", "Happy clients", st.Data.HappyClients)
	fmt.Fprintf(w, "  %-20s %d\n", "Years experience", st.Data.YearsExperience)
	fmt.Fprintf(w, "  %-20s %d\n", "Team members", st.Data.TeamMembers)

	fmt.Fprintf(w, "\nFeatured projects%s\n", badge(fp.IsFromAPI))
	if len(fp.Items) == 0 {
		fmt.Fprintln(w, "  No featured projects yet.")
	}
	for _, item := range fp.Items {
		fmt.Fprintf(w, "  %-28s %-12s %s\n", item.Title, item.Category, yearString(item.Year))
	}

	fmt.Fprintf(w, "\nWhat clients say%s\n", badge(ts.IsFromAPI))
	if len(ts.Data) == 0 {
		fmt.Fprintln(w, "  No testimonials yet.")
	}
	for _, t := range ts.Data {
		fmt.Fprintf(w, "  %s %q\n      %s, %s\n", stars(t.Rating), t.Content, t.Name, t.Role)
	}
	return nil
}

func yearString(year int) string {
	if year == 0 {
		return ""
	}
	return fmt.Sprint(year)
}
