package gridsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andareed/siftly-grid/grid"
	"github.com/andareed/siftly-grid/gridsearch"
	"github.com/andareed/siftly-grid/orders"
)

type place map[string]any

func (p place) Value(column string) any { return p[column] }

type line map[string]any

func (l line) Value(column string) any { return l[column] }

func columns() []grid.Column {
	return []grid.Column{
		{Name: "Country", Visible: true, Width: 10, AllowFocus: true},
		{Name: "City", Visible: true, Width: 12, AllowFocus: true},
	}
}

func places() []grid.Record {
	return []grid.Record{
		place{"Country": "Germany", "City": "Berlin"},
		place{"Country": "Mexico", "City": "Mexico D.F."},
		place{"Country": "UK", "City": "London"},
	}
}

func newGrid(t *testing.T, opts grid.Options) (*grid.Grid, *gridsearch.Controller) {
	t.Helper()
	if opts.ViewportRows == 0 {
		opts.ViewportRows = 40
	}
	if opts.ViewportWidth == 0 {
		opts.ViewportWidth = 80
	}
	g := grid.New(columns(), places(), opts)
	c := g.Search()
	require.NotNil(t, c)
	return g, c
}

func at(row, col int) gridsearch.RowColumnIndex {
	return gridsearch.RowColumnIndex{RowIndex: row, ColumnIndex: col}
}

func TestFindNextFirstMatch(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	assert.Equal(t, gridsearch.Idle, c.State())
	require.True(t, c.FindNext("Germany"))
	assert.Equal(t, at(1, 0), c.Current())
	assert.Equal(t, gridsearch.Positioned, c.State())
	assert.Equal(t, "Germany", c.SearchText())
}

func TestFindNextIsCaseInsensitive(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindNext("Germany"))
	require.True(t, c.FindNext("mexico"))
	assert.Equal(t, at(2, 0), c.Current())

	require.True(t, c.FindNext("mexico"))
	assert.Equal(t, at(2, 1), c.Current(), "City holds Mexico D.F.")
}

func TestFindNextWrapsWithinRow(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindNext("mexico"))
	require.True(t, c.FindNext("mexico"))
	require.True(t, c.FindNext("mexico"))
	assert.Equal(t, at(2, 0), c.Current())
}

func TestFindPreviousFromIdle(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindPrevious("Germany"))
	assert.Equal(t, at(1, 0), c.Current())
}

func TestFindPreviousWrapsToEnd(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindPrevious("mexico"))
	assert.Equal(t, at(2, 1), c.Current())
	require.True(t, c.FindPrevious("mexico"))
	assert.Equal(t, at(2, 0), c.Current())
	require.True(t, c.FindPrevious("mexico"))
	assert.Equal(t, at(2, 1), c.Current())
}

func TestLoneMatchTogglesIdle(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindNext("Berlin"))
	assert.Equal(t, at(1, 1), c.Current())

	assert.False(t, c.FindNext("Berlin"))
	assert.Equal(t, gridsearch.Idle, c.State())
	assert.Equal(t, gridsearch.Unset, c.Current())

	require.True(t, c.FindNext("Berlin"))
	assert.Equal(t, at(1, 1), c.Current())
}

func TestLoneMatchFindPreviousGoesIdle(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindNext("Berlin"))
	assert.False(t, c.FindPrevious("Berlin"))
	assert.Equal(t, gridsearch.Idle, c.State())
	assert.Equal(t, gridsearch.Unset, c.Current())
}

func TestFindPreviousReturnsToPrecedingMatch(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindNext("o"))
	require.True(t, c.FindNext("o"))
	require.True(t, c.FindNext("o"))
	assert.Equal(t, at(3, 1), c.Current(), "London")

	require.True(t, c.FindPrevious("o"))
	assert.Equal(t, at(2, 1), c.Current(), "Mexico D.F.")
	require.True(t, c.FindNext("o"))
	assert.Equal(t, at(3, 1), c.Current())
}

func TestTextChangeRestartsScan(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindNext("UK"))
	assert.Equal(t, at(3, 0), c.Current())

	require.True(t, c.FindNext("o"))
	assert.Equal(t, at(2, 0), c.Current(), "Mexico is the first cell containing o")

	require.True(t, c.FindPrevious("Berlin"))
	assert.Equal(t, at(1, 1), c.Current())
}

func TestNoMatchResetsCursor(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindNext("UK"))
	assert.False(t, c.FindNext("Atlantis"))
	assert.Equal(t, gridsearch.Unset, c.Current())
}

func TestEmptyTextClearsSearch(t *testing.T) {
	_, c := newGrid(t, grid.Options{})

	require.True(t, c.FindNext("UK"))
	assert.False(t, c.FindNext(""))
	assert.Equal(t, gridsearch.Idle, c.State())
	assert.Empty(t, c.SearchText())
}

func TestNoViewNeverMatches(t *testing.T) {
	g := grid.New(columns(), nil, grid.Options{ViewportRows: 10, ViewportWidth: 80})

	assert.False(t, g.HasView())
	assert.False(t, g.Finder().FindNext("Germany"))
	assert.False(t, g.Finder().FindPrevious("Germany"))
}

func TestEmptyViewNeverMatches(t *testing.T) {
	g := grid.New(columns(), []grid.Record{}, grid.Options{ViewportRows: 10, ViewportWidth: 80})

	assert.True(t, g.HasView())
	assert.False(t, g.Finder().FindNext("Germany"))
}

func TestAllRowsHiddenTerminates(t *testing.T) {
	g, c := newGrid(t, grid.Options{})
	for row := 1; row <= 3; row++ {
		g.SetRowHidden(row, true)
	}

	assert.False(t, c.FindNext("Germany"))
	assert.False(t, c.FindPrevious("Germany"))
}

func TestHiddenRowIsSkipped(t *testing.T) {
	g, c := newGrid(t, grid.Options{})
	g.SetRowHidden(2, true)

	require.True(t, c.FindNext("o"))
	assert.Equal(t, at(3, 1), c.Current(), "London, since Mexico's row is hidden")
}

func TestSearchColumnsRestrictMatching(t *testing.T) {
	_, c := newGrid(t, grid.Options{})
	c.SetSearchColumns("City")

	require.True(t, c.FindNext("Mexico"))
	assert.Equal(t, at(2, 1), c.Current())
	assert.False(t, c.FindNext("Germany"))
	assert.Equal(t, []string{"City"}, c.SearchColumns())
}

func TestHiddenColumnIsNotSearched(t *testing.T) {
	g, c := newGrid(t, grid.Options{})
	require.NoError(t, g.SetColumnVisible("Country", false))

	assert.False(t, c.FindNext("Germany"))
	require.True(t, c.FindNext("Mexico"))
	assert.Equal(t, at(2, 1), c.Current())
}

func TestNoSearchableColumns(t *testing.T) {
	g, c := newGrid(t, grid.Options{})
	require.NoError(t, g.SetColumnVisible("Country", false))
	require.NoError(t, g.SetColumnVisible("City", false))

	assert.False(t, c.FindNext("Germany"))
}

func TestRowHeaderShiftsScrollColumns(t *testing.T) {
	_, c := newGrid(t, grid.Options{ShowRowHeader: true})

	require.True(t, c.FindNext("London"))
	assert.Equal(t, at(3, 2), c.Current())
}

func TestGroupedViewSkipsCaptions(t *testing.T) {
	g, c := newGrid(t, grid.Options{GroupBy: []string{"Country"}})

	row, ok := g.Row(1)
	require.True(t, ok)
	require.Equal(t, gridsearch.ElementCaption, row.Element)
	require.Contains(t, g.Label(1), "Germany")

	require.True(t, c.FindNext("Germany"))
	assert.Equal(t, at(2, 1), c.Current(), "record row after the caption, one indent column")

	require.True(t, c.FindPrevious("UK"))
	assert.Equal(t, at(6, 1), c.Current())
}

func TestGroupSummaryRowsAreSkipped(t *testing.T) {
	_, c := newGrid(t, grid.Options{GroupBy: []string{"Country"}, ShowGroupSummary: true})

	assert.False(t, c.FindNext("items"))
	assert.False(t, c.FindNext("Country:"))
	require.True(t, c.FindNext("UK"))
	assert.Equal(t, at(8, 1), c.Current())
}

func TestSpecialRowsAreSkipped(t *testing.T) {
	tests := []struct {
		name string
		opts grid.Options
		uk   int
	}{
		{"filter top", grid.Options{FilterRow: gridsearch.PositionTop}, 4},
		{"filter fixed top", grid.Options{FilterRow: gridsearch.PositionFixedTop}, 4},
		{"add-new bottom", grid.Options{AddNewRow: gridsearch.PositionBottom}, 3},
		{"add-new fixed bottom", grid.Options{AddNewRow: gridsearch.PositionFixedBottom}, 3},
		{"filter bottom and add-new top", grid.Options{FilterRow: gridsearch.PositionBottom, AddNewRow: gridsearch.PositionTop}, 4},
		{"unbound and summaries", grid.Options{UnboundTop: 1, UnboundTopBody: 1, UnboundBottomBody: 1, UnboundBottomFooter: 1, SummaryTop: 1, SummaryBottom: 1}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c := newGrid(t, tt.opts)

			require.True(t, c.FindPrevious("UK"))
			assert.Equal(t, at(tt.uk, 0), c.Current())

			assert.False(t, c.FindNext("add new"))
			assert.False(t, c.FindNext("Filter"))
			assert.False(t, c.FindNext("Total"))
		})
	}
}

func itemsView() grid.DetailsViewDefinition {
	items := map[string][]grid.Record{
		"Germany": {line{"Product": "Mexico chili"}},
		"Mexico":  {line{"Product": "Tea"}, line{"Product": "Coffee"}},
	}
	return grid.DetailsViewDefinition{
		Name:    "Items",
		Columns: []grid.Column{{Name: "Product", Visible: true, Width: 14, AllowFocus: true}},
		Relation: func(parent grid.Record) []grid.Record {
			return items[parent.Value("Country").(string)]
		},
	}
}

func TestDetailsRowsSearchNestedGrids(t *testing.T) {
	g, c := newGrid(t, grid.Options{Details: []grid.DetailsViewDefinition{itemsView()}})
	child := g.Detail(2)
	require.NotNil(t, child)

	require.True(t, c.FindNext("Mexico"))
	assert.Equal(t, at(2, 1), c.Current(), "the Germany items list Mexico chili")
	assert.Equal(t, at(1, 0), child.Search().Current())
	assert.Equal(t, []gridsearch.RowColumnIndex{at(2, 1), at(1, 0)}, c.Path())
	target, rc := c.Target()
	assert.Same(t, child, target)
	assert.Equal(t, at(1, 0), rc)

	require.True(t, c.FindNext("Mexico"))
	assert.Equal(t, at(3, 1), c.Current(), "details indicator adds one fixed column")
	assert.Equal(t, gridsearch.Idle, child.Search().State())
	require.True(t, c.FindNext("Mexico"))
	assert.Equal(t, at(3, 2), c.Current())

	// wraps past the empty UK items back into the Germany items
	require.True(t, c.FindNext("Mexico"))
	assert.Equal(t, at(2, 1), c.Current())
	assert.Equal(t, at(1, 0), child.Search().Current())
}

func TestDetailsFindPreviousEntersNestedGrid(t *testing.T) {
	g, c := newGrid(t, grid.Options{Details: []grid.DetailsViewDefinition{itemsView()}})

	require.True(t, c.FindPrevious("Mexico"))
	assert.Equal(t, at(3, 2), c.Current())
	require.True(t, c.FindPrevious("Mexico"))
	assert.Equal(t, at(3, 1), c.Current())
	require.True(t, c.FindPrevious("Mexico"))
	assert.Equal(t, at(2, 1), c.Current())
	assert.Equal(t, at(1, 0), g.Detail(2).Search().Current())

	require.True(t, c.FindPrevious("Mexico"))
	assert.Equal(t, at(3, 2), c.Current())
	assert.Equal(t, gridsearch.Idle, g.Detail(2).Search().State())
}

func TestNestedMatchesFollowOneAnother(t *testing.T) {
	g, c := newGrid(t, grid.Options{Details: []grid.DetailsViewDefinition{itemsView()}})
	child := g.Detail(4).Search()

	require.True(t, c.FindNext("e"))
	assert.Equal(t, at(1, 1), c.Current(), "Germany")
	require.True(t, c.FindNext("e"))
	assert.Equal(t, at(1, 2), c.Current(), "Berlin")
	require.True(t, c.FindNext("e"))
	assert.Equal(t, at(2, 1), c.Current(), "Mexico chili")
	require.True(t, c.FindNext("e"))
	assert.Equal(t, at(3, 1), c.Current(), "Mexico")
	require.True(t, c.FindNext("e"))
	assert.Equal(t, at(3, 2), c.Current(), "Mexico D.F.")

	require.True(t, c.FindNext("e"))
	assert.Equal(t, at(4, 1), c.Current())
	assert.Equal(t, at(1, 0), child.Current(), "Tea")
	require.True(t, c.FindNext("e"))
	assert.Equal(t, at(4, 1), c.Current())
	assert.Equal(t, at(2, 0), child.Current(), "Coffee")

	require.True(t, c.FindPrevious("e"))
	assert.Equal(t, at(1, 0), child.Current())
}

func TestNestedSearchHonoursColumnFilter(t *testing.T) {
	_, c := newGrid(t, grid.Options{Details: []grid.DetailsViewDefinition{itemsView()}})
	c.SetSearchColumns("Country")

	require.True(t, c.FindNext("Mexico"))
	assert.Equal(t, at(3, 1), c.Current(), "Product is not a Country column")
}

func TestEmbeddedFindNextContinuesInsideChild(t *testing.T) {
	g, c := newGrid(t, grid.Options{Details: []grid.DetailsViewDefinition{itemsView()}})
	child := g.Detail(2)
	require.NotNil(t, child)
	require.True(t, child.IsEmbedded())
	assert.Equal(t, 2, child.RowInTopLevel())

	require.True(t, child.Finder().FindNext("Mexico"))
	assert.Equal(t, at(2, 1), c.Current())
	inner := child.Search()
	require.NotNil(t, inner)
	assert.Equal(t, at(1, 0), inner.Current())

	// past the child's last match the top-level grid takes over
	require.True(t, child.Finder().FindNext("Mexico"))
	assert.Equal(t, at(3, 1), c.Current())
	assert.Equal(t, gridsearch.Idle, inner.State())
}

func TestEmbeddedFindPreviousResumesBeforeHostRow(t *testing.T) {
	g, c := newGrid(t, grid.Options{Details: []grid.DetailsViewDefinition{itemsView()}})
	child := g.Detail(4)
	require.NotNil(t, child)

	require.True(t, child.Finder().FindPrevious("Mexico"))
	assert.Equal(t, at(3, 2), c.Current())

	require.True(t, child.Finder().FindPrevious("Germany"))
	assert.Equal(t, at(1, 1), c.Current())
}

func TestSampleOrderItemsAreFound(t *testing.T) {
	list := orders.Sample()
	g := grid.New(orders.Columns(list), orders.Records(list), grid.Options{
		Details:       []grid.DetailsViewDefinition{orders.ItemsView()},
		ViewportRows:  40,
		ViewportWidth: 200,
	})
	child := g.Detail(2)
	require.NotNil(t, child)
	require.Equal(t, "Chai", child.CellText(1, 0))

	// from the top-level grid
	require.True(t, g.Finder().FindNext("Chai"))
	assert.Equal(t, []gridsearch.RowColumnIndex{at(2, 1), at(1, 0)}, g.Search().Path())
	assert.Equal(t, gridsearch.Positioned, child.Search().State())

	// from the child: Chai is the only match, so the search toggles off
	assert.False(t, child.Finder().FindNext("Chai"))
	assert.Equal(t, gridsearch.Idle, child.Search().State())
	require.True(t, child.Finder().FindNext("Chai"))
	assert.Equal(t, at(1, 0), child.Search().Current())

	require.True(t, child.Finder().FindPrevious("Chang"))
	assert.Equal(t, at(2, 0), child.Search().Current())
	assert.Equal(t, at(2, 1), g.Search().Current())
}

type orphan struct{ *grid.Grid }

func (orphan) IsEmbedded() bool                { return true }
func (orphan) TopLevelParent() gridsearch.Host { return nil }
func (orphan) RowInTopLevel() int              { return -1 }

func TestEmbeddedWithoutParent(t *testing.T) {
	g, _ := newGrid(t, grid.Options{})
	c := gridsearch.New(orphan{g})

	assert.False(t, c.FindNext("Germany"))
	assert.False(t, c.FindPrevious("Germany"))
}

func TestHighlightInvalidatesCells(t *testing.T) {
	g, c := newGrid(t, grid.Options{})
	g.TakeInvalidated()

	require.True(t, c.FindNext("Germany"))
	cells, _ := g.TakeInvalidated()
	assert.Equal(t, []gridsearch.RowColumnIndex{at(1, 0)}, cells)

	require.True(t, c.FindNext("UK"))
	cells, _ = g.TakeInvalidated()
	assert.Equal(t, []gridsearch.RowColumnIndex{at(1, 0), at(3, 0)}, cells)

	c.ClearSearch()
	cells, _ = g.TakeInvalidated()
	assert.Equal(t, []gridsearch.RowColumnIndex{at(3, 0)}, cells)
}

func TestHighlightOffSkipsInvalidation(t *testing.T) {
	g := grid.New(columns(), places(), grid.Options{ViewportRows: 10, ViewportWidth: 80})
	c := gridsearch.New(g, gridsearch.WithHighlight(false))
	g.SetFinder(c)
	g.TakeInvalidated()

	require.True(t, c.FindNext("UK"))
	cells, _ := g.TakeInvalidated()
	assert.Empty(t, cells)

	c.SetHighlightMatches(true)
	cells, _ = g.TakeInvalidated()
	assert.Equal(t, []gridsearch.RowColumnIndex{at(3, 0)}, cells)
}

func TestMatchIsScrolledIntoView(t *testing.T) {
	g, c := newGrid(t, grid.Options{ViewportRows: 2})

	_, visible := g.RowLine(3)
	require.False(t, visible)

	require.True(t, c.FindNext("London"))
	assert.Equal(t, 3, g.RowAxis().Offset())
	line, visible := g.RowLine(3)
	require.True(t, visible)
	assert.False(t, line.Clipped)
}

func TestMatchIsScrolledIntoViewHorizontally(t *testing.T) {
	g, c := newGrid(t, grid.Options{ViewportWidth: 12})

	require.True(t, c.FindNext("London"))
	assert.Equal(t, 1, g.ColumnAxis().Offset())
	_, visible := g.ColumnLine(1)
	assert.True(t, visible)
}

func TestMatcherOption(t *testing.T) {
	g := grid.New(columns(), places(), grid.Options{ViewportRows: 10, ViewportWidth: 80})
	c := gridsearch.New(g, gridsearch.WithMatcher(gridsearch.Contains), gridsearch.WithSearchColumns("Country"))

	assert.False(t, c.FindNext("germany"))
	require.True(t, c.FindNext("Germany"))

	c.SetMatcher(gridsearch.Fuzzy)
	require.True(t, c.FindNext("mxc"))
	assert.Equal(t, at(2, 0), c.Current())
}

func TestSetRecordsClearsSearch(t *testing.T) {
	g, c := newGrid(t, grid.Options{})

	require.True(t, c.FindNext("UK"))
	g.SetRecords(places()[:1])
	assert.Equal(t, gridsearch.Idle, c.State())
	assert.False(t, c.FindNext("UK"))
}
