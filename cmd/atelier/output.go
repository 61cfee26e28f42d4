package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fwojciec/atelier"
)

// badge marks output that is not backed by the live backend.
func badge(fromAPI bool) string {
	if fromAPI {
		return ""
	}
	return " (demo data)"
}

// noteFallback explains on w why demo data is shown.
func noteFallback(w io.Writer, err *atelier.APIError) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "note: backend unavailable (%s), showing demo data\n", err.Message)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "----------"
	}
	return t.Format(time.DateOnly)
}

func stars(rating int) string {
	rating = max(0, min(rating, 5))
	return strings.Repeat("*", rating) + strings.Repeat(".", 5-rating)
}

func pageSummary(p atelier.Pagination) string {
	return fmt.Sprintf("page %d of %d, %d total", p.Page, max(p.Pages, 1), p.Total)
}

// filters drops empty values so they never reach the query string.
func filters(kv ...string) map[string]string {
	m := map[string]string{}
	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] != "" {
			m[kv[i]] = kv[i+1]
		}
	}
	return m
}

// fail reports err on stderr in the CLI's format and returns it.
func fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", atelier.ErrorMessage(err))
	return err
}
