package main

import (
	"fmt"

	atgjson "github.com/fwojciec/atelier/gjson"
)

// Run executes the login command. The token is stored by the API client.
func (c *LoginCmd) Run(deps *Dependencies) error {
	raw, err := deps.API.Login(deps.Ctx, c.Email, c.Password)
	if err != nil {
		return fail(deps, err)
	}
	name := atgjson.Parse(raw).Object("user").Get("name").String()
	if name == "" {
		name = c.Email
	}
	fmt.Fprintf(deps.Stdout, "Logged in as %s\n", name)
	return nil
}

// Run executes the logout command.
func (c *LogoutCmd) Run(deps *Dependencies) error {
	if err := deps.API.Logout(deps.Ctx); err != nil {
		return fail(deps, err)
	}
	fmt.Fprintln(deps.Stdout, "Logged out")
	return nil
}
