package atelier

import (
	"net/url"
	"strconv"
)

// DefaultPageLimit is the page size used when none is requested.
const DefaultPageLimit = 10

// Pagination describes one page of a list response.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// IsZero reports whether the pagination was never set.
func (p Pagination) IsZero() bool {
	return p == Pagination{}
}

// SinglePage returns the pagination of a list that fits on one page.
func SinglePage(total int) Pagination {
	return Pagination{Page: 1, Limit: DefaultPageLimit, Total: total, Pages: 1}
}

// Page is one page of normalized items.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// PageQuery selects a page of a list endpoint.
type PageQuery struct {
	Page    int
	Limit   int
	Filters map[string]string
}

// Normalize returns a copy with the page and limit defaults applied.
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}
	return q
}

// Values encodes the query as URL parameters. Empty filters and filters
// named page or limit are skipped.
func (q PageQuery) Values() url.Values {
	q = q.Normalize()
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	for k, val := range q.Filters {
		if k == "page" || k == "limit" {
			continue
		}
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

// Key returns the dependency key of the query. Equal queries produce equal
// keys regardless of filter map ordering.
func (q PageQuery) Key() string {
	return q.Values().Encode()
}
