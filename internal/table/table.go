// Package table renders arbitrary records as sortable, paginated rows.
//
// A Table owns only UI-like state (current page and sort key). It never
// mutates the data it is given: sorting works on a copy.
package table

import (
	"errors"
	"fmt"
	"sort"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

var (
	ErrUnknownColumn = errors.New("unknown column")
	ErrNotSortable   = errors.New("column is not sortable")
	ErrInvalidPage   = errors.New("invalid page")
)

// Column describes one rendered column. Accessor returns nil when the value
// is undefined for a row.
type Column[T any] struct {
	ID       string
	Header   string
	Accessor func(T) any
	Render   func(value any, row T) string
	Sortable bool
}

type Pagination struct {
	Enabled  bool
	PageSize int
}

type Sort struct {
	Column    string
	Direction Direction
}

type Sorting struct {
	Enabled     bool
	DefaultSort *Sort
}

type Config[T any] struct {
	Columns          []Column[T]
	Pagination       Pagination
	Sorting          Sorting
	EmptyMessage     string
	EmptyDescription string
	// Locale drives string collation; empty means the root locale.
	Locale string
}

type Table[T any] struct {
	cfg   Config[T]
	data  []T
	page  int
	sort  *Sort
	index map[string]int
}

// New builds a table. The default sort is applied only when sorting is
// enabled and names a known sortable column.
func New[T any](cfg Config[T]) *Table[T] {
	if cfg.Pagination.Enabled && cfg.Pagination.PageSize <= 0 {
		cfg.Pagination.PageSize = 10
	}
	if cfg.EmptyMessage == "" {
		cfg.EmptyMessage = "No records found"
	}
	t := &Table[T]{cfg: cfg, index: make(map[string]int, len(cfg.Columns))}
	for i, c := range cfg.Columns {
		t.index[c.ID] = i
	}
	if cfg.Sorting.Enabled && cfg.Sorting.DefaultSort != nil {
		if i, ok := t.index[cfg.Sorting.DefaultSort.Column]; ok && cfg.Columns[i].Sortable {
			s := *cfg.Sorting.DefaultSort
			if s.Direction != Desc {
				s.Direction = Asc
			}
			t.sort = &s
		}
	}
	return t
}

// SetData replaces the rows. The page index goes back to the first page
// whenever the slice reference changes.
func (t *Table[T]) SetData(data []T) {
	if !sameRef(t.data, data) {
		t.page = 0
	}
	t.data = data
	t.clamp()
}

func sameRef[T any](a, b []T) bool {
	if len(a) != len(b) || cap(a) != cap(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

// ToggleSort mimics a header click: a new column starts ascending, the
// current column flips direction.
func (t *Table[T]) ToggleSort(columnID string) error {
	if err := t.checkSortable(columnID); err != nil {
		return err
	}
	if t.sort != nil && t.sort.Column == columnID {
		if t.sort.Direction == Asc {
			t.sort.Direction = Desc
		} else {
			t.sort.Direction = Asc
		}
		return nil
	}
	t.sort = &Sort{Column: columnID, Direction: Asc}
	return nil
}

func (t *Table[T]) SortBy(columnID string, dir Direction) error {
	if err := t.checkSortable(columnID); err != nil {
		return err
	}
	if dir != Desc {
		dir = Asc
	}
	t.sort = &Sort{Column: columnID, Direction: dir}
	return nil
}

func (t *Table[T]) ClearSort() { t.sort = nil }

// CurrentSort returns the active sort, if any.
func (t *Table[T]) CurrentSort() (Sort, bool) {
	if t.sort == nil {
		return Sort{}, false
	}
	return *t.sort, true
}

func (t *Table[T]) checkSortable(columnID string) error {
	if !t.cfg.Sorting.Enabled {
		return ErrNotSortable
	}
	i, ok := t.index[columnID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, columnID)
	}
	if !t.cfg.Columns[i].Sortable {
		return fmt.Errorf("%w: %s", ErrNotSortable, columnID)
	}
	return nil
}

// PageCount is ceil(len/pageSize); zero for empty data.
func (t *Table[T]) PageCount() int {
	n := len(t.data)
	if n == 0 {
		return 0
	}
	if !t.cfg.Pagination.Enabled {
		return 1
	}
	size := t.cfg.Pagination.PageSize
	return (n + size - 1) / size
}

// Page returns the zero-based page index.
func (t *Table[T]) Page() int { return t.page }

func (t *Table[T]) NextPage() bool {
	if t.page+1 >= t.PageCount() {
		return false
	}
	t.page++
	return true
}

func (t *Table[T]) PrevPage() bool {
	if t.page == 0 {
		return false
	}
	t.page--
	return true
}

// GoToPage moves to a zero-based page index.
func (t *Table[T]) GoToPage(page int) error {
	if page < 0 || (page > 0 && page >= t.PageCount()) {
		return fmt.Errorf("%w: %d", ErrInvalidPage, page+1)
	}
	t.page = page
	return nil
}

func (t *Table[T]) clamp() {
	last := t.PageCount() - 1
	if last < 0 {
		last = 0
	}
	if t.page > last {
		t.page = last
	}
}

// Sorted returns a sorted copy of the data using the active sort.
func (t *Table[T]) Sorted() []T {
	out := make([]T, len(t.data))
	copy(out, t.data)
	if t.sort == nil || !t.cfg.Sorting.Enabled {
		return out
	}
	col := t.cfg.Columns[t.index[t.sort.Column]]
	desc := t.sort.Direction == Desc
	keys := make([]any, len(out))
	for i, row := range out {
		if col.Accessor != nil {
			keys[i] = normalize(col.Accessor(row))
		}
	}
	cmp := newComparer(t.cfg.Locale)
	idx := make([]int, len(out))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		va, vb := keys[idx[a]], keys[idx[b]]
		// undefined values stay at the end in both directions
		if va == nil || vb == nil {
			return va != nil && vb == nil
		}
		c := cmp.compare(va, vb)
		if desc {
			return c > 0
		}
		return c < 0
	})
	sorted := make([]T, len(out))
	for i, j := range idx {
		sorted[i] = out[j]
	}
	return sorted
}

type Header struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Sortable  bool      `json:"sortable"`
	Direction Direction `json:"direction,omitempty"`
}

type Cell struct {
	Column  string `json:"column"`
	Value   any    `json:"value"`
	Display string `json:"display"`
}

type Row struct {
	Cells []Cell `json:"cells"`
}

// View is the rendered state of a table at one point in time.
type View struct {
	Headers          []Header `json:"headers"`
	Rows             []Row    `json:"rows"`
	Page             int      `json:"page"`
	PageCount        int      `json:"pageCount"`
	PageSize         int      `json:"pageSize"`
	Total            int      `json:"total"`
	HasNext          bool     `json:"hasNext"`
	HasPrev          bool     `json:"hasPrev"`
	Empty            bool     `json:"empty"`
	EmptyMessage     string   `json:"emptyMessage,omitempty"`
	EmptyDescription string   `json:"emptyDescription,omitempty"`
}

// Render produces the headers and the rows of the current page. Page is
// reported one-based.
func (t *Table[T]) Render() View {
	t.clamp()
	v := View{
		Headers:   t.headers(),
		Page:      t.page + 1,
		PageCount: t.PageCount(),
		Total:     len(t.data),
	}
	if len(t.data) == 0 {
		v.Rows = []Row{}
		v.Empty = true
		v.EmptyMessage = t.cfg.EmptyMessage
		v.EmptyDescription = t.cfg.EmptyDescription
		v.PageSize = t.cfg.Pagination.PageSize
		return v
	}
	rows := t.PageRows()
	v.Rows = make([]Row, 0, len(rows))
	for _, r := range rows {
		v.Rows = append(v.Rows, t.renderRow(r))
	}
	if t.cfg.Pagination.Enabled {
		v.PageSize = t.cfg.Pagination.PageSize
	} else {
		v.PageSize = len(t.data)
	}
	v.HasPrev = t.page > 0
	v.HasNext = t.page+1 < v.PageCount
	return v
}

// PageRows returns the sorted records on the current page.
func (t *Table[T]) PageRows() []T {
	t.clamp()
	sorted := t.Sorted()
	if !t.cfg.Pagination.Enabled {
		return sorted
	}
	size := t.cfg.Pagination.PageSize
	start := t.page * size
	if start >= len(sorted) {
		return []T{}
	}
	end := start + size
	if end > len(sorted) {
		end = len(sorted)
	}
	return sorted[start:end]
}

// Columns exposes the configured column descriptors.
func (t *Table[T]) Columns() []Column[T] { return t.cfg.Columns }

func (t *Table[T]) headers() []Header {
	out := make([]Header, 0, len(t.cfg.Columns))
	for _, c := range t.cfg.Columns {
		h := Header{ID: c.ID, Label: c.Header, Sortable: c.Sortable && t.cfg.Sorting.Enabled}
		if t.sort != nil && t.sort.Column == c.ID {
			h.Direction = t.sort.Direction
		}
		out = append(out, h)
	}
	return out
}

func (t *Table[T]) renderRow(row T) Row {
	cells := make([]Cell, 0, len(t.cfg.Columns))
	for _, c := range t.cfg.Columns {
		var val any
		if c.Accessor != nil {
			val = c.Accessor(row)
		}
		cells = append(cells, Cell{Column: c.ID, Value: val, Display: DisplayCell(c, val, row)})
	}
	return Row{Cells: cells}
}

// DisplayCell renders one value through the column's Render func or the
// default formatter.
func DisplayCell[T any](c Column[T], val any, row T) string {
	if c.Render != nil {
		return c.Render(val, row)
	}
	return Format(val)
}
