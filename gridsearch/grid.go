// Package gridsearch implements find next / find previous over a virtualized
// grid. The grid is reached only through the capability interfaces declared
// here, so any widget that can describe its row and column layout can host
// the search.
package gridsearch

import "fmt"

// RowColumnIndex identifies a cell in display coordinates. -1 in either
// field means "no position".
type RowColumnIndex struct {
	RowIndex    int
	ColumnIndex int
}

// Unset is the cursor value of an idle search.
var Unset = RowColumnIndex{RowIndex: -1, ColumnIndex: -1}

func (rc RowColumnIndex) IsSet() bool {
	return rc.RowIndex >= 0 && rc.ColumnIndex >= 0
}

func (rc RowColumnIndex) String() string {
	return fmt.Sprintf("(%d,%d)", rc.RowIndex, rc.ColumnIndex)
}

// Column is the part of a grid column the search needs.
type Column struct {
	Name       string
	Visible    bool
	Width      int
	AllowFocus bool
}

func (c Column) searchable() bool {
	return c.Visible && c.Width != 0
}

// ColumnLayout describes the fixed columns drawn before the first data column.
type ColumnLayout struct {
	IndentColumns    int  // one per group level
	DetailsIndicator bool // details view expander or preview row indicator
	RowHeader        bool
}

// RowPosition places the filter row and the add-new row.
type RowPosition int

const (
	PositionNone RowPosition = iota
	PositionTop
	PositionBottom
	PositionFixedTop
	PositionFixedBottom
)

func (p RowPosition) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	case PositionFixedTop:
		return "fixed-top"
	case PositionFixedBottom:
		return "fixed-bottom"
	default:
		return "none"
	}
}

// RowLayout holds the row counts the index model derives data bounds from.
type RowLayout struct {
	RowCount            int
	HeaderLineCount     int
	UnboundTopBody      int
	UnboundBottomBody   int
	UnboundBottomFooter int
	TableSummaryBottom  int
	DetailsViewCount    int
	Grouped             bool
	FilterRow           RowPosition
	AddNewRow           RowPosition
}

// RowType classifies a display row that is not part of the record body.
type RowType int

const (
	RowBody RowType = iota
	RowHeader
	RowTableSummary
	RowUnbound
	RowFilter
	RowAddNew
)

// ElementKind classifies an entry of the body display sequence.
type ElementKind int

const (
	ElementNone ElementKind = iota
	ElementRecord
	ElementNestedDetail
	ElementCaption
	ElementGroupSummary
)

// VisibleLine is the layout of one row or column inside the viewport.
type VisibleLine struct {
	Index   int
	Origin  int
	Size    int
	Clipped bool
}

type ColumnModel interface {
	Columns() []Column
	ColumnLayout() ColumnLayout
}

type RowModel interface {
	// HasView reports whether a data source is attached.
	HasView() bool
	RecordCount() int
	RowLayout() RowLayout
	RowType(row int) RowType
	IsRowHidden(row int) bool
	// BodyStartIndex is the display row of the first body element.
	BodyStartIndex() int
	// DisplayElement returns the kind of the pos-th body element of a
	// grouped view.
	DisplayElement(pos int) ElementKind
	// RecordAt returns the record shown on a display row, or nil.
	RecordAt(row int) any
}

type Viewport interface {
	// RowLine and ColumnLine report false when the line is not laid out.
	RowLine(row int) (VisibleLine, bool)
	ColumnLine(col int) (VisibleLine, bool)
	ScrollInView(rc RowColumnIndex)
	InvalidateCell(rc RowColumnIndex)
}

type CellFormatter interface {
	// FormatCell returns the display text of the column (grid column
	// index, not scroll index) for record.
	FormatCell(column int, record any) string
}

// Grid is the capability set a host grid provides to the search.
type Grid interface {
	ColumnModel
	RowModel
	Viewport
	CellFormatter
}

// Host is a grid carrying an injected search strategy.
type Host interface {
	Finder() Finder
}

// Nested is implemented by grids that show other grids on their details
// rows. The nested grids are searched in place of the row.
type Nested interface {
	// NestedGrid returns the grid shown on a details row, or nil.
	NestedGrid(row int) Grid
}

// Embedded is implemented by grids shown inside a details view of another
// grid.
type Embedded interface {
	IsEmbedded() bool
	// TopLevelParent returns nil when the owning grid is unreachable.
	TopLevelParent() Host
	// RowInTopLevel is the display row of the top-level grid that hosts
	// this grid's outermost ancestor.
	RowInTopLevel() int
}

// Finder is the find next / find previous contract.
type Finder interface {
	FindNext(text string) bool
	FindPrevious(text string) bool
	ClearSearch()
}
