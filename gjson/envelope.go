// Package gjson implements atelier.Transformer on top of tidwall/gjson.
//
// Backend responses come in several shapes: {data: {blogs: [...], pagination}},
// {data: [...]}, a bare array or a bare object. Parse normalizes all of them
// into one Envelope at the boundary so the per-entity transforms only deal
// with a single canonical form.
package gjson

import (
	"github.com/fwojciec/atelier"
	"github.com/tidwall/gjson"
)

// Envelope is a parsed backend response with its wrapper removed.
type Envelope struct {
	// Payload is the value of the "data" field, or the whole response
	// when it has none.
	Payload gjson.Result

	// Pagination is the response's pagination block, zero if absent.
	Pagination atelier.Pagination
}

// Parse normalizes a raw response. Invalid JSON yields an empty Envelope.
func Parse(raw []byte) Envelope {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return Envelope{}
	}

	root := gjson.ParseBytes(raw)
	env := Envelope{Payload: root}
	if root.IsObject() {
		if data := root.Get("data"); data.Exists() && data.Type != gjson.Null {
			env.Payload = data
		}
	}

	p := env.Payload.Get("pagination")
	if !p.IsObject() {
		p = root.Get("pagination")
	}
	env.Pagination = parsePagination(p)
	return env
}

// List returns the list carried by the response: the payload itself when it
// is an array, otherwise the first array found under one of keys.
func (e Envelope) List(keys ...string) []gjson.Result {
	if e.Payload.IsArray() {
		return e.Payload.Array()
	}
	if e.Payload.IsObject() {
		for _, k := range keys {
			if v := e.Payload.Get(k); v.IsArray() {
				return v.Array()
			}
		}
	}
	return nil
}

// Item returns the single entity carried by the response: the first
// item-like object under one of keys, otherwise the payload itself.
// An object is item-like if it has an identifier, a slug or a title.
func (e Envelope) Item(keys ...string) (gjson.Result, bool) {
	if !e.Payload.IsObject() {
		return gjson.Result{}, false
	}
	for _, k := range keys {
		if v := e.Payload.Get(k); isItem(v) {
			return v, true
		}
	}
	if isItem(e.Payload) {
		return e.Payload, true
	}
	return gjson.Result{}, false
}

// Object returns the object under the first matching key, or the payload.
func (e Envelope) Object(keys ...string) gjson.Result {
	for _, k := range keys {
		if v := e.Payload.Get(k); v.IsObject() {
			return v
		}
	}
	return e.Payload
}

func isItem(v gjson.Result) bool {
	if !v.IsObject() {
		return false
	}
	for _, k := range []string{"_id", "id", "slug", "title"} {
		if v.Get(k).Exists() {
			return true
		}
	}
	return false
}

func parsePagination(v gjson.Result) atelier.Pagination {
	if !v.IsObject() {
		return atelier.Pagination{}
	}
	p := atelier.Pagination{
		Page:  num(v, "page", "currentPage"),
		Limit: num(v, "limit", "perPage"),
		Total: num(v, "total", "totalItems"),
		Pages: num(v, "pages", "totalPages"),
	}
	if p.Pages == 0 && p.Limit > 0 {
		p.Pages = (p.Total + p.Limit - 1) / p.Limit
	}
	return p
}
