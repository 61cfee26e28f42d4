package gjson

import (
	"time"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// str returns the first non-empty string among paths. Objects such as
// {"name": "Kitchen"} or {"url": "/a.jpg"} resolve to their name or url.
func str(v gjson.Result, paths ...string) string {
	for _, p := range paths {
		r := v.Get(p)
		switch {
		case r.Type == gjson.String || r.Type == gjson.Number:
			if s := r.String(); s != "" {
				return s
			}
		case r.IsObject():
			if s := str(r, "name", "url"); s != "" {
				return s
			}
		}
	}
	return ""
}

// num returns the first numeric value among paths. Numeric strings count.
func num(v gjson.Result, paths ...string) int {
	for _, p := range paths {
		r := v.Get(p)
		if r.Type == gjson.Number || r.Type == gjson.String {
			if n := int(r.Int()); n != 0 || r.String() == "0" {
				return n
			}
		}
	}
	return 0
}

func boolean(v gjson.Result, path string) bool {
	return v.Get(path).Bool()
}

// strs returns the non-empty strings of the array at path. Never nil.
func strs(v gjson.Result, path string) []string {
	r := v.Get(path)
	if !r.IsArray() {
		return []string{}
	}
	return lo.FilterMap(r.Array(), func(item gjson.Result, _ int) (string, bool) {
		var s string
		if item.IsObject() {
			s = str(item, "url", "name")
		} else if item.Type == gjson.String {
			s = item.String()
		}
		return s, s != ""
	})
}

var dateLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// date returns the first parseable timestamp among paths, or the zero time.
func date(v gjson.Result, paths ...string) time.Time {
	for _, p := range paths {
		s := v.Get(p).String()
		if s == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t.UTC()
			}
		}
	}
	return time.Time{}
}

// id returns the backend identifier, preferring the database _id.
func id(v gjson.Result) string {
	return str(v, "_id", "id")
}
