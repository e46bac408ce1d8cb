// Package views assembles the list pages: each page takes one record source,
// narrows it with its search and dropdown filters, computes its summary cards
// and renders the result through the generic table.
//
// Nothing is cached. Every Query reloads the source and recomputes the
// derived view.
package views

import (
	"context"
	"errors"
	"fmt"

	"erpviews-backend/internal/badge"
	"erpviews-backend/internal/filter"
	"erpviews-backend/internal/repository"
	"erpviews-backend/internal/stats"
	"erpviews-backend/internal/table"
)

var ErrUnknownPage = errors.New("unknown page")

// Request is one page query. Page is one-based; zero means the first page.
type Request struct {
	Search   string            `json:"search,omitempty"`
	Filters  map[string]string `json:"filters,omitempty"`
	Sort     string            `json:"sort,omitempty"`
	Dir      table.Direction   `json:"dir,omitempty"`
	Page     int               `json:"page,omitempty"`
	PageSize int               `json:"pageSize,omitempty"`
}

// Meta describes a page independently of any query.
type Meta struct {
	Key          string      `json:"key"`
	Title        string      `json:"title"`
	Module       string      `json:"module"`
	Route        string      `json:"route"`
	SearchFields []string    `json:"searchFields"`
	Filters      []string    `json:"filters"`
	StatsScope   stats.Scope `json:"statsScope"`
}

type Result struct {
	Meta          Meta                              `json:"page"`
	Query         Request                           `json:"query"`
	Stats         []stats.Card                      `json:"stats"`
	Table         table.View                        `json:"table"`
	FilterOptions map[string][]string               `json:"filterOptions"`
	Badges        map[string]map[string]badge.Badge `json:"badges"`
	Total         int                               `json:"total"`
	Matched       int                               `json:"matched"`
	// StatsDivergent is true when some cards count the whole source while
	// the table shows a filtered subset.
	StatsDivergent bool `json:"statsDivergent"`
}

// Export is the full filtered and sorted row set of a page as display text.
type Export struct {
	Key     string
	Title   string
	Headers []string
	Rows    [][]string
}

// Page is one registered list page.
type Page interface {
	Meta() Meta
	Query(ctx context.Context, req Request) (Result, error)
	Export(ctx context.Context, req Request) (Export, error)
}

type page[T any] struct {
	meta             Meta
	source           repository.Source[T]
	spec             filter.Spec[T]
	columns          []table.Column[T]
	// columnsFor builds columns that need the whole source, such as a
	// parent lookup. When set it replaces columns.
	columnsFor       func(all []T) []table.Column[T]
	defaultSort      *table.Sort
	badges           map[string]badge.Kind
	cards            func(all, matched []T) []stats.Card
	emptyMessage     string
	emptyDescription string
}

func (p *page[T]) Meta() Meta { return p.meta }

func (p *page[T]) columnsOf(all []T) []table.Column[T] {
	if p.columnsFor != nil {
		return p.columnsFor(all)
	}
	return p.columns
}

func (p *page[T]) load(ctx context.Context, req Request) (all, matched []T, err error) {
	all, err = p.source.List(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("load %s: %w", p.meta.Key, err)
	}
	matched = p.spec.Apply(all, filter.Query{Search: req.Search, Filters: req.Filters})
	return all, matched, nil
}

func (p *page[T]) newTable(req Request, cols []table.Column[T], paginate bool) (*table.Table[T], error) {
	t := table.New(table.Config[T]{
		Columns:          cols,
		Pagination:       table.Pagination{Enabled: paginate, PageSize: req.PageSize},
		Sorting:          table.Sorting{Enabled: true, DefaultSort: p.defaultSort},
		EmptyMessage:     p.emptyMessage,
		EmptyDescription: p.emptyDescription,
	})
	if req.Sort != "" {
		if err := t.SortBy(req.Sort, req.Dir); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (p *page[T]) Query(ctx context.Context, req Request) (Result, error) {
	all, matched, err := p.load(ctx, req)
	if err != nil {
		return Result{}, err
	}
	t, err := p.newTable(req, p.columnsOf(all), true)
	if err != nil {
		return Result{}, err
	}
	t.SetData(matched)
	// a page past the end lands on the last page
	if n := t.PageCount(); req.Page > 1 && n > 0 {
		if err := t.GoToPage(min(req.Page, n) - 1); err != nil {
			return Result{}, err
		}
	}
	view := t.Render()

	res := Result{
		Meta:          p.meta,
		Query:         req,
		Stats:         p.cards(all, matched),
		Table:         view,
		FilterOptions: map[string][]string{},
		Badges:        p.badgesFor(view),
		Total:         len(all),
		Matched:       len(matched),
	}
	for _, key := range p.spec.FilterKeys() {
		res.FilterOptions[key] = p.spec.Options(all, key)
	}
	if len(matched) != len(all) {
		for _, c := range res.Stats {
			if c.Scope == stats.ScopeFull {
				res.StatsDivergent = true
				break
			}
		}
	}
	return res, nil
}

func (p *page[T]) Export(ctx context.Context, req Request) (Export, error) {
	all, matched, err := p.load(ctx, req)
	if err != nil {
		return Export{}, err
	}
	cols := p.columnsOf(all)
	t, err := p.newTable(req, cols, false)
	if err != nil {
		return Export{}, err
	}
	t.SetData(matched)

	out := Export{Key: p.meta.Key, Title: p.meta.Title}
	for _, c := range cols {
		out.Headers = append(out.Headers, c.Header)
	}
	for _, row := range t.Sorted() {
		cells := make([]string, 0, len(cols))
		for _, c := range cols {
			var val any
			if c.Accessor != nil {
				val = c.Accessor(row)
			}
			cells = append(cells, table.DisplayCell(c, val, row))
		}
		out.Rows = append(out.Rows, cells)
	}
	return out, nil
}

// badgesFor resolves the pill style of every badge value on the rendered page.
func (p *page[T]) badgesFor(v table.View) map[string]map[string]badge.Badge {
	out := map[string]map[string]badge.Badge{}
	for col, kind := range p.badges {
		set := map[string]badge.Badge{}
		for _, row := range v.Rows {
			for _, cell := range row.Cells {
				if cell.Column != col {
					continue
				}
				if status := table.Format(cell.Value); status != "" {
					set[status] = kind.Badge(status)
				}
			}
		}
		out[col] = set
	}
	return out
}

func card(key, label string, value float64, unit string, scope stats.Scope) stats.Card {
	return stats.Card{Key: key, Label: label, Value: value, Unit: unit, Scope: scope}
}

func count(key, label string, n int, scope stats.Scope) stats.Card {
	return card(key, label, float64(n), "", scope)
}
