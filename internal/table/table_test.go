package table

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type part struct {
	Code  string
	Name  string
	Qty   int
	Due   *time.Time
	Price float64
}

func partColumns() []Column[part] {
	return []Column[part]{
		{ID: "code", Header: "Code", Accessor: func(p part) any { return p.Code }, Sortable: true},
		{ID: "name", Header: "Name", Accessor: func(p part) any { return p.Name }, Sortable: true},
		{ID: "qty", Header: "Qty", Accessor: func(p part) any { return p.Qty }, Sortable: true},
		{ID: "due", Header: "Due", Accessor: func(p part) any { return p.Due }, Sortable: true},
		{ID: "price", Header: "Price", Accessor: func(p part) any { return p.Price },
			Render: func(v any, _ part) string { return "$" + Format(v) }},
	}
}

func parts(n int) []part {
	out := make([]part, n)
	for i := range out {
		out[i] = part{Code: string(rune('A' + i%26)), Name: "part", Qty: n - i}
	}
	return out
}

func newPartTable(pageSize int) *Table[part] {
	return New(Config[part]{
		Columns:          partColumns(),
		Pagination:       Pagination{Enabled: true, PageSize: pageSize},
		Sorting:          Sorting{Enabled: true},
		EmptyMessage:     "No parts",
		EmptyDescription: "Try another filter",
	})
}

func TestPageCountAndLastPageSize(t *testing.T) {
	cases := []struct {
		n, size, pages, last int
	}{
		{n: 25, size: 10, pages: 3, last: 5},
		{n: 30, size: 10, pages: 3, last: 10},
		{n: 1, size: 10, pages: 1, last: 1},
		{n: 7, size: 3, pages: 3, last: 1},
	}
	for _, tc := range cases {
		tbl := newPartTable(tc.size)
		tbl.SetData(parts(tc.n))
		assert.Equal(t, tc.pages, tbl.PageCount())

		require.NoError(t, tbl.GoToPage(tc.pages-1))
		v := tbl.Render()
		assert.Len(t, v.Rows, tc.last)
		assert.False(t, v.HasNext)
		assert.Equal(t, tc.pages, v.Page)
	}
}

func TestEmptyDataRendersEmptyState(t *testing.T) {
	tbl := newPartTable(10)
	tbl.SetData(nil)

	v := tbl.Render()
	assert.True(t, v.Empty)
	assert.Empty(t, v.Rows)
	assert.Equal(t, 0, v.PageCount)
	assert.Equal(t, "No parts", v.EmptyMessage)
	assert.Equal(t, "Try another filter", v.EmptyDescription)
}

func TestRowsPerPageNeverExceedPageSize(t *testing.T) {
	tbl := newPartTable(4)
	tbl.SetData(parts(10))

	sizes := []int{}
	for {
		sizes = append(sizes, len(tbl.Render().Rows))
		if !tbl.NextPage() {
			break
		}
	}
	assert.Equal(t, []int{4, 4, 2}, sizes)
	assert.True(t, tbl.PrevPage())
	assert.Equal(t, 1, tbl.Page())
}

func TestSortAscendingThenDescendingReverses(t *testing.T) {
	tbl := New(Config[part]{Columns: partColumns(), Sorting: Sorting{Enabled: true}})
	data := []part{{Code: "C", Qty: 3}, {Code: "A", Qty: 1}, {Code: "B", Qty: 2}, {Code: "D", Qty: 4}}
	tbl.SetData(data)

	require.NoError(t, tbl.ToggleSort("qty"))
	asc := tbl.Sorted()
	require.NoError(t, tbl.ToggleSort("qty"))
	desc := tbl.Sorted()

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
	assert.Equal(t, "A", asc[0].Code)
}

func TestSortIsIdempotent(t *testing.T) {
	tbl := New(Config[part]{Columns: partColumns(), Sorting: Sorting{Enabled: true}})
	tbl.SetData([]part{{Code: "b"}, {Code: "a"}, {Code: "c"}})

	require.NoError(t, tbl.SortBy("code", Desc))
	first := tbl.Sorted()
	require.NoError(t, tbl.SortBy("code", Desc))
	assert.Equal(t, first, tbl.Sorted())
}

func TestSortIsStable(t *testing.T) {
	tbl := New(Config[part]{Columns: partColumns(), Sorting: Sorting{Enabled: true}})
	tbl.SetData([]part{{Code: "x", Qty: 1}, {Code: "y", Qty: 0}, {Code: "z", Qty: 1}})

	require.NoError(t, tbl.SortBy("qty", Asc))
	got := tbl.Sorted()
	assert.Equal(t, []string{"y", "x", "z"}, []string{got[0].Code, got[1].Code, got[2].Code})
}

func TestSortStringsUsesCollation(t *testing.T) {
	tbl := New(Config[part]{Columns: partColumns(), Sorting: Sorting{Enabled: true}})
	tbl.SetData([]part{{Name: "banana"}, {Name: "Apple"}, {Name: "cherry"}})

	require.NoError(t, tbl.SortBy("name", Asc))
	got := tbl.Sorted()
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, []string{got[0].Name, got[1].Name, got[2].Name})
}

func TestSortUndefinedValuesGoLast(t *testing.T) {
	d1 := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tbl := New(Config[part]{Columns: partColumns(), Sorting: Sorting{Enabled: true}})
	tbl.SetData([]part{{Code: "nil1"}, {Code: "late", Due: &d2}, {Code: "nil2"}, {Code: "early", Due: &d1}})

	require.NotPanics(t, func() {
		require.NoError(t, tbl.SortBy("due", Asc))
	})
	asc := tbl.Sorted()
	assert.Equal(t, []string{"early", "late", "nil1", "nil2"}, codes(asc))

	require.NoError(t, tbl.SortBy("due", Desc))
	desc := tbl.Sorted()
	assert.Equal(t, []string{"late", "early", "nil1", "nil2"}, codes(desc))
}

func TestSortNaNGoesLastAndKeepsOrder(t *testing.T) {
	cols := partColumns()
	cols[4].Sortable = true
	tbl := New(Config[part]{Columns: cols, Sorting: Sorting{Enabled: true}})
	tbl.SetData([]part{
		{Code: "three", Price: 3},
		{Code: "nan", Price: math.NaN()},
		{Code: "one", Price: 1},
		{Code: "two", Price: 2},
	})

	require.NoError(t, tbl.SortBy("price", Asc))
	assert.Equal(t, []string{"one", "two", "three", "nan"}, codes(tbl.Sorted()))

	require.NoError(t, tbl.SortBy("price", Desc))
	assert.Equal(t, []string{"three", "two", "one", "nan"}, codes(tbl.Sorted()))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	data := []part{{Code: "b"}, {Code: "a"}}
	tbl := New(Config[part]{Columns: partColumns(), Sorting: Sorting{Enabled: true}})
	tbl.SetData(data)
	require.NoError(t, tbl.SortBy("code", Asc))
	_ = tbl.Render()

	assert.Equal(t, "b", data[0].Code)
}

func TestSortRejectsUnknownAndUnsortable(t *testing.T) {
	tbl := New(Config[part]{Columns: partColumns(), Sorting: Sorting{Enabled: true}})
	assert.ErrorIs(t, tbl.ToggleSort("missing"), ErrUnknownColumn)
	assert.ErrorIs(t, tbl.ToggleSort("price"), ErrNotSortable)

	disabled := New(Config[part]{Columns: partColumns()})
	assert.ErrorIs(t, disabled.ToggleSort("code"), ErrNotSortable)
}

func TestDefaultSortApplied(t *testing.T) {
	tbl := New(Config[part]{
		Columns: partColumns(),
		Sorting: Sorting{Enabled: true, DefaultSort: &Sort{Column: "qty", Direction: Desc}},
	})
	tbl.SetData([]part{{Qty: 1}, {Qty: 5}, {Qty: 3}})

	s, ok := tbl.CurrentSort()
	require.True(t, ok)
	assert.Equal(t, Desc, s.Direction)
	assert.Equal(t, 5, tbl.Sorted()[0].Qty)

	v := tbl.Render()
	assert.Equal(t, Desc, v.Headers[2].Direction)
}

func TestPageResetsWhenDataReferenceChanges(t *testing.T) {
	tbl := newPartTable(2)
	data := parts(6)
	tbl.SetData(data)
	require.NoError(t, tbl.GoToPage(2))

	tbl.SetData(data)
	assert.Equal(t, 2, tbl.Page(), "same slice keeps the page")

	filtered := append([]part(nil), data[:5]...)
	tbl.SetData(filtered)
	assert.Equal(t, 0, tbl.Page())
}

func TestPageClampsWhenDataShrinksInPlace(t *testing.T) {
	tbl := newPartTable(2)
	data := parts(6)
	tbl.SetData(data)
	require.NoError(t, tbl.GoToPage(2))

	tbl.SetData(data[:2])
	assert.Equal(t, 0, tbl.Page())
	assert.Len(t, tbl.Render().Rows, 2)
}

func TestGoToPageOutOfRange(t *testing.T) {
	tbl := newPartTable(5)
	tbl.SetData(parts(6))
	assert.ErrorIs(t, tbl.GoToPage(2), ErrInvalidPage)
	assert.ErrorIs(t, tbl.GoToPage(-1), ErrInvalidPage)
}

func TestPaginationDisabledShowsEverything(t *testing.T) {
	tbl := New(Config[part]{Columns: partColumns()})
	tbl.SetData(parts(37))

	v := tbl.Render()
	assert.Len(t, v.Rows, 37)
	assert.Equal(t, 1, v.PageCount)
}

func TestCustomRenderAndDefaultFormat(t *testing.T) {
	tbl := New(Config[part]{Columns: partColumns()})
	tbl.SetData([]part{{Code: "A", Qty: 2, Price: 9.5}})

	row := tbl.Render().Rows[0]
	assert.Equal(t, "A", row.Cells[0].Display)
	assert.Equal(t, "2", row.Cells[2].Display)
	assert.Equal(t, "", row.Cells[3].Display)
	assert.Equal(t, "$9.5", row.Cells[4].Display)
}

func codes(ps []part) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Code)
	}
	return out
}
