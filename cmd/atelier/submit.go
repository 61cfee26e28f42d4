package main

import (
	"fmt"

	"github.com/fwojciec/atelier"
)

// Run executes the contact submit command.
func (c *ContactSubmitCmd) Run(deps *Dependencies) error {
	req := &atelier.ContactRequest{
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
	}
	if err := req.Validate(); err != nil {
		return fail(deps, err)
	}
	if _, err := deps.API.SubmitContact(deps.Ctx, req); err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Thanks %s, your message has been sent. We will reply to %s.\n", c.Name, c.Email)
	return nil
}

// Run executes the quote submit command.
func (c *QuoteSubmitCmd) Run(deps *Dependencies) error {
	req := &atelier.QuoteRequest{
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		ProjectType: c.Type,
		Budget:      c.Budget,
		Timeline:    c.Timeline,
		Description: c.Description,
	}
	if err := req.Validate(); err != nil {
		return fail(deps, err)
	}
	if _, err := deps.API.SubmitQuote(deps.Ctx, req); err != nil {
		return fail(deps, err)
	}
	fmt.Fprintf(deps.Stdout, "Thanks %s, your quote request has been received. We will be in touch at %s.\n", c.Name, c.Email)
	return nil
}
