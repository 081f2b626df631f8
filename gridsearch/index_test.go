package gridsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubGrid is a flat grid: one header row followed by one body row per
// record, with no details views.
type stubGrid struct {
	cols    []Column
	layout  ColumnLayout
	records []string
	hidden  map[int]bool
}

func (s *stubGrid) Columns() []Column          { return s.cols }
func (s *stubGrid) ColumnLayout() ColumnLayout { return s.layout }
func (s *stubGrid) HasView() bool              { return s.records != nil }
func (s *stubGrid) RecordCount() int           { return len(s.records) }
func (s *stubGrid) BodyStartIndex() int        { return 1 }

func (s *stubGrid) RowLayout() RowLayout {
	return RowLayout{RowCount: len(s.records) + 1, HeaderLineCount: 1}
}

func (s *stubGrid) RowType(row int) RowType {
	if row == 0 {
		return RowHeader
	}
	return RowBody
}

func (s *stubGrid) IsRowHidden(row int) bool           { return s.hidden[row] }
func (s *stubGrid) DisplayElement(pos int) ElementKind { return ElementRecord }

func (s *stubGrid) RecordAt(row int) any {
	if row < 1 || row > len(s.records) {
		return nil
	}
	return s.records[row-1]
}

func (s *stubGrid) FormatCell(column int, record any) string { return record.(string) }

func (s *stubGrid) RowLine(row int) (VisibleLine, bool) {
	return VisibleLine{Index: row, Origin: row, Size: 1}, true
}

func (s *stubGrid) ColumnLine(col int) (VisibleLine, bool) {
	return VisibleLine{Index: col, Origin: col, Size: 1}, true
}

func (s *stubGrid) ScrollInView(RowColumnIndex)   {}
func (s *stubGrid) InvalidateCell(RowColumnIndex) {}

func newStub(records ...string) *stubGrid {
	return &stubGrid{
		cols: []Column{
			{Name: "A", Visible: true, Width: 4, AllowFocus: true},
			{Name: "B", Visible: false, Width: 4, AllowFocus: true},
			{Name: "C", Visible: true, Width: 4, AllowFocus: false},
			{Name: "D", Visible: true, Width: 0, AllowFocus: true},
		},
		records: records,
		hidden:  map[int]bool{},
	}
}

func TestColumnIndexSkipsUnsearchableColumns(t *testing.T) {
	s := newStub("x")
	s.layout = ColumnLayout{IndentColumns: 1, RowHeader: true}
	x := indexModel{g: s}

	assert.Equal(t, 2, x.columnOffset())
	assert.Equal(t, 2, x.firstColumnIndex(true))
	assert.Equal(t, 2, x.firstColumnIndex(false))
	assert.Equal(t, 4, x.lastColumnIndex(true))
	assert.Equal(t, 2, x.lastColumnIndex(false))

	assert.Equal(t, 4, x.nextColumnIndex(2))
	assert.Equal(t, 2, x.nextColumnIndex(4), "wraps to the first column")
	assert.Equal(t, 2, x.previousColumnIndex(4))
	assert.Equal(t, 4, x.previousColumnIndex(2), "wraps to the last column")
	assert.Equal(t, 3, x.nextColumnIndex(3), "hidden column stays put")
	assert.Equal(t, 2, x.nextColumnIndex(0), "fixed column resolves to the first")
}

func TestDataRowsWrap(t *testing.T) {
	x := indexModel{g: newStub("a", "b", "c")}

	assert.Equal(t, 1, x.firstDataRowIndex())
	assert.Equal(t, 3, x.lastDataRowIndex())
	assert.Equal(t, 2, x.nextDataRowIndex(1))
	assert.Equal(t, 1, x.nextDataRowIndex(3))
	assert.Equal(t, 3, x.previousDataRowIndex(1))
	assert.Equal(t, 1, x.nextDataRowIndex(0), "header resolves to the first data row")
}

func TestDataRowsSkipHidden(t *testing.T) {
	s := newStub("a", "b", "c")
	s.hidden[1] = true
	s.hidden[3] = true
	x := indexModel{g: s}

	assert.Equal(t, 2, x.firstDataRowIndex())
	assert.Equal(t, 2, x.lastDataRowIndex())
	assert.Equal(t, 2, x.nextDataRowIndex(2))
	assert.Equal(t, 2, x.previousDataRowIndex(2))
}

func TestDataRowsAllHidden(t *testing.T) {
	s := newStub("a", "b")
	s.hidden[1] = true
	s.hidden[2] = true
	x := indexModel{g: s}

	assert.Equal(t, -1, x.firstDataRowIndex())
	assert.Equal(t, -1, x.nextDataRowIndex(1))
	assert.Equal(t, -1, x.previousDataRowIndex(2))
}

func TestDataRowsWithoutView(t *testing.T) {
	x := indexModel{g: newStub()}

	assert.Equal(t, -1, x.firstDataRowIndex())
	assert.Equal(t, -1, x.lastDataRowIndex())
}

func TestDataBandExcludesSpecialRows(t *testing.T) {
	tests := []struct {
		name       string
		layout     RowLayout
		start, end int
	}{
		{"plain", RowLayout{RowCount: 5, HeaderLineCount: 1}, 1, 4},
		{"filter top", RowLayout{RowCount: 6, HeaderLineCount: 1, FilterRow: PositionTop}, 2, 5},
		{"add-new bottom", RowLayout{RowCount: 6, HeaderLineCount: 1, AddNewRow: PositionBottom}, 1, 4},
		{"both fixed bottom", RowLayout{RowCount: 7, HeaderLineCount: 1, AddNewRow: PositionFixedBottom, FilterRow: PositionFixedBottom}, 1, 4},
		{"unbound and summary", RowLayout{RowCount: 9, HeaderLineCount: 2, UnboundTopBody: 1, UnboundBottomBody: 1, TableSummaryBottom: 1, UnboundBottomFooter: 1}, 3, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := indexModel{g: layoutOnly{tt.layout}}
			start, end := x.dataBand()
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}

type layoutOnly struct {
	layout RowLayout
}

func (l layoutOnly) Columns() []Column                     { return nil }
func (l layoutOnly) ColumnLayout() ColumnLayout            { return ColumnLayout{} }
func (l layoutOnly) HasView() bool                         { return true }
func (l layoutOnly) RecordCount() int                      { return 1 }
func (l layoutOnly) RowLayout() RowLayout                  { return l.layout }
func (l layoutOnly) RowType(int) RowType                   { return RowBody }
func (l layoutOnly) IsRowHidden(int) bool                  { return false }
func (l layoutOnly) BodyStartIndex() int                   { return 0 }
func (l layoutOnly) DisplayElement(int) ElementKind        { return ElementRecord }
func (l layoutOnly) RecordAt(int) any                      { return nil }
func (l layoutOnly) FormatCell(int, any) string            { return "" }
func (l layoutOnly) RowLine(int) (VisibleLine, bool)       { return VisibleLine{}, false }
func (l layoutOnly) ColumnLine(int) (VisibleLine, bool)    { return VisibleLine{}, false }
func (l layoutOnly) ScrollInView(RowColumnIndex)           {}
func (l layoutOnly) InvalidateCell(RowColumnIndex)         {}

func TestEnsureVisibleScrollsClippedCells(t *testing.T) {
	v := &recordingViewport{rowClipped: true}
	assert.True(t, EnsureVisible(v, RowColumnIndex{RowIndex: 2, ColumnIndex: 1}))
	assert.Equal(t, []RowColumnIndex{{RowIndex: 2, ColumnIndex: 1}}, v.scrolled)

	v = &recordingViewport{}
	assert.False(t, EnsureVisible(v, RowColumnIndex{RowIndex: 2, ColumnIndex: 1}))
	assert.False(t, EnsureVisible(v, Unset))
	assert.Empty(t, v.scrolled)
}

type recordingViewport struct {
	rowClipped bool
	scrolled   []RowColumnIndex
}

func (r *recordingViewport) RowLine(row int) (VisibleLine, bool) {
	return VisibleLine{Index: row, Clipped: r.rowClipped}, true
}

func (r *recordingViewport) ColumnLine(col int) (VisibleLine, bool) {
	return VisibleLine{Index: col}, true
}

func (r *recordingViewport) ScrollInView(rc RowColumnIndex)  { r.scrolled = append(r.scrolled, rc) }
func (r *recordingViewport) InvalidateCell(rc RowColumnIndex) {}

func TestScanVisitsHiddenRowsNever(t *testing.T) {
	s := newStub("apple", "banana", "apricot")
	s.hidden[2] = true
	c := New(s)

	assert.False(t, c.FindNext("banana"))
	assert.True(t, c.FindNext("ap"))
	assert.Equal(t, RowColumnIndex{RowIndex: 1, ColumnIndex: 0}, c.Current())
	assert.True(t, c.FindNext("ap"))
	assert.Equal(t, RowColumnIndex{RowIndex: 1, ColumnIndex: 2}, c.Current(), "column C holds the same record")
}
