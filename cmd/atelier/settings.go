package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/fallback"
)

// Run executes the settings command.
func (c *SettingsCmd) Run(deps *Dependencies) error {
	var engine *fallback.Engine[atelier.Settings]
	if c.Admin {
		engine = deps.Loader.AdminSettings(deps.Ctx)
	} else {
		engine = deps.Loader.PublicSettings(deps.Ctx)
	}
	defer engine.Close()

	st, err := engine.Wait(deps.Ctx)
	if err != nil {
		return err
	}
	if st.Err != nil && (st.Err.IsUnauthorized() || st.Err.IsForbidden()) {
		fmt.Fprintln(deps.Stderr, "note: not logged in, run 'atelier login' first")
	} else {
		noteFallback(deps.Stderr, st.Err)
	}

	s := st.Data
	w := deps.Stdout
	fmt.Fprintf(w, "%s%s\n", s.SiteName, badge(st.IsFromAPI))
	if s.Tagline != "" {
		fmt.Fprintf(w, "%s\n", s.Tagline)
	}
	fmt.Fprintln(w)
	for _, row := range [][2]string{
		{"Email", s.Email},
		{"Phone", s.Phone},
		{"Address", s.Address},
		{"Hours", s.BusinessHours},
	} {
		if row[1] != "" {
			fmt.Fprintf(w, "%-10s %s\n", row[0], row[1])
		}
	}
	for _, name := range slices.Sorted(maps.Keys(s.Social)) {
		fmt.Fprintf(w, "%-10s %s\n", name, s.Social[name])
	}

	if !c.Admin {
		return nil
	}
	fmt.Fprintf(w, "\n%-20s %t\n", "Maintenance mode", s.MaintenanceMode)
	fmt.Fprintf(w, "%-20s %s\n", "Notification email", s.NotificationEmail)
	fmt.Fprintf(w, "%-20s %s\n", "Meta title", s.SEO.MetaTitle)
	fmt.Fprintf(w, "%-20s %s\n", "Meta description", s.SEO.MetaDescription)
	fmt.Fprintf(w, "%-20s %s\n", "Keywords", s.SEO.Keywords)
	return nil
}
