// Package filter composes the free-text search and dropdown filters that every
// list page applies before handing rows to the table.
package filter

import (
	"sort"
	"strings"
)

// All is the dropdown value that disables a filter.
const All = "all"

// Spec lists the fields a page searches and the dropdown filters it offers.
type Spec[T any] struct {
	SearchFields []func(T) string
	Filters      map[string]func(T) string
}

type Query struct {
	Search  string
	Filters map[string]string
}

// IsZero reports whether the query leaves the source unchanged.
func (q Query) IsZero() bool {
	if strings.TrimSpace(q.Search) != "" {
		return false
	}
	for _, v := range q.Filters {
		if active(v) {
			return false
		}
	}
	return true
}

func active(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, All)
}

// Apply returns the rows matching the search (case-insensitive substring on
// any search field) and every active dropdown filter (exact match). Filter
// keys with no matching filter are ignored. The result is always a new slice.
func (s Spec[T]) Apply(items []T, q Query) []T {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	type check struct {
		get  func(T) string
		want string
	}
	checks := make([]check, 0, len(q.Filters))
	for key, want := range q.Filters {
		get, ok := s.Filters[key]
		if !ok || !active(want) {
			continue
		}
		checks = append(checks, check{get: get, want: strings.TrimSpace(want)})
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !s.matchesSearch(item, needle) {
			continue
		}
		ok := true
		for _, c := range checks {
			if c.get(item) != c.want {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, item)
		}
	}
	return out
}

func (s Spec[T]) matchesSearch(item T, needle string) bool {
	for _, field := range s.SearchFields {
		if strings.Contains(strings.ToLower(field(item)), needle) {
			return true
		}
	}
	return false
}

// Options returns the sorted distinct non-empty values of a dropdown field.
func (s Spec[T]) Options(items []T, key string) []string {
	get, ok := s.Filters[key]
	if !ok {
		return nil
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, item := range items {
		v := get(item)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// FilterKeys lists the dropdown keys in a stable order.
func (s Spec[T]) FilterKeys() []string {
	keys := make([]string, 0, len(s.Filters))
	for k := range s.Filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
