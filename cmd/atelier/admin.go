package main

import (
	"fmt"

	"github.com/fwojciec/atelier"
)

// Run executes the contacts list command. Submissions have no demo
// content, so a backend failure is reported as an error.
func (c *ContactsListCmd) Run(deps *Dependencies) error {
	contacts := deps.Loader.Contacts(deps.Ctx, atelier.PageQuery{
		Page:    c.Page,
		Limit:   c.Limit,
		Filters: filters("status", c.Status),
	})
	defer contacts.Close()

	s, err := contacts.Wait(deps.Ctx)
	if err != nil {
		return err
	}
	if !s.IsFromAPI && s.Err != nil {
		return fail(deps, s.Err)
	}

	if len(s.Items) == 0 {
		fmt.Fprintln(deps.Stdout, "No submissions found.")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Contacts, %s\n", pageSummary(s.Pagination))
	for _, ct := range s.Items {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-9s  %s <%s>\n", ct.ID, formatDate(ct.CreatedAt), ct.Status, ct.Name, ct.Email)
		if ct.Subject != "" {
			fmt.Fprintf(deps.Stdout, "    %s\n", ct.Subject)
		}
	}
	return nil
}

// Run executes the contacts status command.
func (c *ContactsStatusCmd) Run(deps *Dependencies) error {
	if _, err := deps.API.UpdateContactStatus(deps.Ctx, c.ID, c.Status); err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Contact %s marked %s\n", c.ID, c.Status)
	return nil
}

// Run executes the quotes list command.
func (c *QuotesListCmd) Run(deps *Dependencies) error {
	quotes := deps.Loader.Quotes(deps.Ctx, atelier.PageQuery{
		Page:    c.Page,
		Limit:   c.Limit,
		Filters: filters("status", c.Status),
	})
	defer quotes.Close()

	s, err := quotes.Wait(deps.Ctx)
	if err != nil {
		return err
	}
	if !s.IsFromAPI && s.Err != nil {
		return fail(deps, s.Err)
	}

	if len(s.Items) == 0 {
		fmt.Fprintln(deps.Stdout, "No quote requests found.")
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Quotes, %s\n", pageSummary(s.Pagination))
	for _, q := range s.Items {
		fmt.Fprintf(deps.Stdout, "%s  %s  %-9s  %s <%s>  %s %s\n", q.ID, formatDate(q.CreatedAt), q.Status, q.Name, q.Email, q.ProjectType, q.Budget)
	}
	return nil
}

// Run executes the quotes status command.
func (c *QuotesStatusCmd) Run(deps *Dependencies) error {
	if _, err := deps.API.UpdateQuoteStatus(deps.Ctx, c.ID, c.Status); err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Quote %s marked %s\n", c.ID, c.Status)
	return nil
}
