package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/atelier"
)

// exportPageLimit is the page size used when walking every post.
const exportPageLimit = 100

// Run executes the blog list command.
func (c *BlogListCmd) Run(deps *Dependencies) error {
	q := atelier.PageQuery{
		Page:    c.Page,
		Limit:   c.Limit,
		Filters: filters("category", c.Category, "search", c.Search),
	}
	blogs := deps.Loader.Blogs(deps.Ctx, q)
	defer blogs.Close()

	s, err := blogs.Wait(deps.Ctx)
	if err != nil {
		return err
	}
	noteFallback(deps.Stderr, s.Err)

	if len(s.Items) == 0 {
		fmt.Fprintln(deps.Stdout, "No posts found.")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Blog%s, %s\n", badge(s.IsFromAPI), pageSummary(s.Pagination))
	for _, p := range s.Items {
		fmt.Fprintf(deps.Stdout, "%s  %-40s  %-14s  %d min\n", formatDate(p.PublishedAt), p.Slug, p.Category, p.ReadTime)
		fmt.Fprintf(deps.Stdout, "            %s\n", p.Title)
	}
	return nil
}

// Run executes the blog show command.
func (c *BlogShowCmd) Run(deps *Dependencies) error {
	post := deps.Loader.BlogPost(deps.Ctx, c.Slug)
	defer post.Close()

	s, err := post.Wait(deps.Ctx)
	if err != nil {
		return err
	}
	if s.Data == nil {
		err := atelier.Errorf(atelier.ENOTFOUND, "post %q not found", c.Slug)
		if s.Err != nil && !s.Err.IsNotFound() {
			err = atelier.Errorf(atelier.ENOTFOUND, "post %q not found: %s", c.Slug, s.Err.Message)
		}
		return fail(deps, err)
	}
	noteFallback(deps.Stderr, s.Err)

	p := s.Data
	w := deps.Stdout
	fmt.Fprintf(w, "%s%s\n", p.Title, badge(s.IsFromAPI))
	fmt.Fprintf(w, "%s by %s, %d min read\n", formatDate(p.PublishedAt), p.Author, p.ReadTime)
	if p.Category != "" || len(p.Tags) > 0 {
		fmt.Fprintf(w, "%s  %s\n", p.Category, strings.Join(p.Tags, ", "))
	}
	fmt.Fprintln(w)

	if !c.Markdown || p.Content == "" {
		fmt.Fprintln(w, p.Excerpt)
		return nil
	}
	md, err := deps.Converter.Convert(p.Content)
	if err != nil {
		return fail(deps, err)
	}
	fmt.Fprintln(w, md)
	return nil
}

// Run executes the blog export command. Posts are written to a staging
// directory and replace Dir only when every post was written.
func (c *BlogExportCmd) Run(deps *Dependencies) error {
	var (
		posts   []atelier.BlogPost
		fromAPI = true
	)
	for page := 1; ; page++ {
		blogs := deps.Loader.Blogs(deps.Ctx, atelier.PageQuery{Page: page, Limit: exportPageLimit})
		s, err := blogs.Wait(deps.Ctx)
		blogs.Close()
		if err != nil {
			return err
		}
		if !s.IsFromAPI {
			noteFallback(deps.Stderr, s.Err)
			// A partial API listing is not mixed with demo posts.
			posts, fromAPI = s.Items, false
			break
		}
		posts = append(posts, s.Items...)
		if len(s.Items) == 0 || page >= s.Pagination.Pages {
			break
		}
	}

	source := "api"
	if !fromAPI {
		source = "demo"
	}
	w := deps.Exporter(c.Dir, source)

	written := 0
	for i := range posts {
		post := &posts[i]
		if !post.IsPublic() {
			deps.Logger.Debug("skipping unpublished post", "slug", post.Slug)
			continue
		}
		if err := w.WritePost(deps.Ctx, post); err != nil {
			_ = w.Abort()
			return fail(deps, err)
		}
		written++
	}
	if err := w.Commit(); err != nil {
		_ = w.Abort()
		return fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Exported %d posts to %s%s\n", written, c.Dir, badge(fromAPI))
	return nil
}
