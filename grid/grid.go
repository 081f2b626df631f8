// Package grid is a virtualized, groupable record grid with nested details
// views. It lays out display rows the way a spreadsheet-style data grid
// does and exposes that layout to the search engine in gridsearch.
package grid

import (
	"fmt"
	"sort"
	"strings"

	"github.com/andareed/siftly-grid/gridsearch"
	"github.com/andareed/siftly-grid/logging"
)

// Record is one row of the data source.
type Record interface {
	Value(column string) any
}

type Column struct {
	Name       string
	Title      string
	Visible    bool
	Width      int
	AllowFocus bool
	// Format overrides FormatValue for this column.
	Format func(v any) string
}

func (c Column) header() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Name
}

// DetailsViewDefinition describes one nested grid shown under every record.
type DetailsViewDefinition struct {
	Name     string
	Columns  []Column
	Relation func(parent Record) []Record
}

const (
	indentWidth    = 2
	indicatorWidth = 2
	rowHeaderWidth = 3
)

type Options struct {
	GroupBy          []string
	Details          []DetailsViewDefinition
	ShowRowHeader    bool
	ShowPreviewRow   bool
	ShowGroupSummary bool
	// ExpandDetails sizes each details row to fit its nested grid.
	ExpandDetails bool

	FilterRow gridsearch.RowPosition
	AddNewRow gridsearch.RowPosition

	SummaryTop          int
	SummaryBottom       int
	UnboundTop          int
	UnboundTopBody      int
	UnboundBottomBody   int
	UnboundBottomFooter int

	ViewportRows  int
	ViewportWidth int
}

// Row is one display row.
type Row struct {
	Type    gridsearch.RowType
	Element gridsearch.ElementKind
	Record  Record
	// Level is the group depth of a caption or group summary row.
	Level   int
	Caption string
	Count   int
	Detail  *Grid
}

type Grid struct {
	columns []Column
	records []Record
	hasView bool
	opts    Options

	rows        []Row
	headerLines int
	bodyStart   int
	heights     map[int]int

	rowAxis *ScrollAxis
	colAxis *ScrollAxis

	finder     gridsearch.Finder
	invalid    map[gridsearch.RowColumnIndex]struct{}
	invalidAll bool

	// set on grids shown in a details view
	parent  *Grid
	hostRow int
	title   string
}

// New builds a grid over records. A nil records slice leaves the grid
// without a view.
func New(columns []Column, records []Record, opts Options) *Grid {
	g := &Grid{
		columns: append([]Column(nil), columns...),
		opts:    opts,
		heights: make(map[int]int),
		invalid: make(map[gridsearch.RowColumnIndex]struct{}),
		hostRow: -1,
	}
	g.rowAxis = NewScrollAxis(nil, 0, opts.ViewportRows)
	g.colAxis = NewScrollAxis(nil, 0, opts.ViewportWidth)
	g.finder = gridsearch.New(g)
	g.attach(records)
	return g
}

func (g *Grid) attach(records []Record) {
	g.records = records
	g.hasView = records != nil
	g.rebuild()
}

// SetRecords replaces the data source and clears any search in progress.
func (g *Grid) SetRecords(records []Record) {
	g.attach(records)
	g.resetSearch()
}

// SetGroupBy regroups the view by the named columns, outermost first.
func (g *Grid) SetGroupBy(names ...string) error {
	for _, n := range names {
		if g.columnIndex(n) < 0 {
			return fmt.Errorf("group by: unknown column %q", n)
		}
	}
	g.opts.GroupBy = names
	g.rebuild()
	g.resetSearch()
	return nil
}

func (g *Grid) GroupBy() []string { return g.opts.GroupBy }

func (g *Grid) SetColumnVisible(name string, visible bool) error {
	i := g.columnIndex(name)
	if i < 0 {
		return fmt.Errorf("unknown column %q", name)
	}
	g.columns[i].Visible = visible
	g.layoutColumns()
	g.invalidAll = true
	return nil
}

// SetRowHidden hides a display row by giving it zero height.
func (g *Grid) SetRowHidden(row int, hidden bool) {
	if hidden {
		g.SetRowHeight(row, 0)
		return
	}
	delete(g.heights, row)
	g.layoutRows()
}

func (g *Grid) SetRowHeight(row, height int) {
	if row < 0 || row >= len(g.rows) {
		return
	}
	g.heights[row] = max(height, 0)
	g.layoutRows()
}

func (g *Grid) rowHeight(row int) int {
	if h, ok := g.heights[row]; ok {
		return h
	}
	return 1
}

// Resize sets the viewport in terminal cells.
func (g *Grid) Resize(width, rows int) {
	g.opts.ViewportWidth, g.opts.ViewportRows = width, rows
	g.rowAxis.SetViewport(rows)
	g.colAxis.SetViewport(width)
	g.invalidAll = true
}

func (g *Grid) RowAxis() *ScrollAxis { return g.rowAxis }

func (g *Grid) ColumnAxis() *ScrollAxis { return g.colAxis }

func (g *Grid) Rows() []Row { return g.rows }

func (g *Grid) Row(i int) (Row, bool) {
	if i < 0 || i >= len(g.rows) {
		return Row{}, false
	}
	return g.rows[i], true
}

func (g *Grid) HeaderLines() int { return g.headerLines }

// ColumnDefs returns a copy of the grid's column definitions.
func (g *Grid) ColumnDefs() []Column {
	return append([]Column(nil), g.columns...)
}

// ColumnWidth returns the width of the named column, or 0 when the grid
// has no such column.
func (g *Grid) ColumnWidth(name string) int {
	if i := g.columnIndex(name); i >= 0 {
		return g.columns[i].Width
	}
	return 0
}

func (g *Grid) SetColumnWidth(name string, width int) error {
	i := g.columnIndex(name)
	if i < 0 {
		return fmt.Errorf("unknown column %q", name)
	}
	g.columns[i].Width = max(width, 0)
	g.layoutColumns()
	g.invalidAll = true
	return nil
}

// Title is the caption of a grid shown in a details view.
func (g *Grid) Title() string { return g.title }

func (g *Grid) columnIndex(name string) int {
	for i, c := range g.columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// CellText returns the display text at a display row and grid column.
func (g *Grid) CellText(row, column int) string {
	r, ok := g.Row(row)
	if !ok || column < 0 || column >= len(g.columns) {
		return ""
	}
	switch {
	case r.Type == gridsearch.RowHeader && row == 0:
		return g.columns[column].header()
	case r.Element == gridsearch.ElementRecord:
		return g.FormatCell(column, r.Record)
	}
	return ""
}

// Label returns the text drawn across a row that is not made of cells.
func (g *Grid) Label(row int) string {
	r, ok := g.Row(row)
	if !ok {
		return ""
	}
	switch r.Type {
	case gridsearch.RowTableSummary:
		return fmt.Sprintf("Total: %d records", len(g.records))
	case gridsearch.RowUnbound:
		return ""
	case gridsearch.RowFilter:
		return "Filter"
	case gridsearch.RowAddNew:
		return "Click here to add new row"
	}
	switch r.Element {
	case gridsearch.ElementCaption:
		return r.Caption
	case gridsearch.ElementGroupSummary:
		return fmt.Sprintf("%d items", r.Count)
	case gridsearch.ElementNestedDetail:
		if r.Detail != nil {
			return fmt.Sprintf("%s (%d)", r.Detail.title, r.Detail.RecordCount())
		}
	}
	return ""
}

// rebuild lays out every display row from the records and options.
func (g *Grid) rebuild() {
	o := g.opts
	rows := make([]Row, 0, len(g.records)*(len(o.Details)+1)+8)
	special := func(t gridsearch.RowType, n int) {
		for i := 0; i < n; i++ {
			rows = append(rows, Row{Type: t})
		}
	}
	placed := func(p gridsearch.RowPosition) {
		if o.FilterRow == p {
			special(gridsearch.RowFilter, 1)
		}
		if o.AddNewRow == p {
			special(gridsearch.RowAddNew, 1)
		}
	}

	special(gridsearch.RowHeader, 1)
	special(gridsearch.RowTableSummary, o.SummaryTop)
	special(gridsearch.RowUnbound, o.UnboundTop)
	placed(gridsearch.PositionFixedTop)
	g.headerLines = len(rows)

	special(gridsearch.RowUnbound, o.UnboundTopBody)
	placed(gridsearch.PositionTop)
	g.bodyStart = len(rows)

	if g.hasView {
		rows = g.appendBody(rows)
	}

	special(gridsearch.RowUnbound, o.UnboundBottomBody)
	if o.AddNewRow == gridsearch.PositionBottom {
		special(gridsearch.RowAddNew, 1)
	}
	if o.FilterRow == gridsearch.PositionBottom {
		special(gridsearch.RowFilter, 1)
	}
	special(gridsearch.RowTableSummary, o.SummaryBottom)
	special(gridsearch.RowUnbound, o.UnboundBottomFooter)
	if o.AddNewRow == gridsearch.PositionFixedBottom {
		special(gridsearch.RowAddNew, 1)
	}
	if o.FilterRow == gridsearch.PositionFixedBottom {
		special(gridsearch.RowFilter, 1)
	}

	g.rows = rows
	// heights are keyed by display row and do not survive a new layout
	g.heights = make(map[int]int)
	g.attachDetails()
	g.layoutRows()
	g.layoutColumns()
	g.invalidAll = true

	logging.Debugf("grid: rebuilt %d rows (%d records, body at %d, grouped=%v)",
		len(rows), len(g.records), g.bodyStart, len(o.GroupBy) > 0)
}

func (g *Grid) appendBody(rows []Row) []Row {
	body := func(rows []Row, rec Record) []Row {
		rows = append(rows, Row{Type: gridsearch.RowBody, Element: gridsearch.ElementRecord, Record: rec})
		for range g.opts.Details {
			rows = append(rows, Row{Type: gridsearch.RowBody, Element: gridsearch.ElementNestedDetail, Record: rec})
		}
		return rows
	}

	if len(g.opts.GroupBy) == 0 {
		for _, rec := range g.records {
			rows = body(rows, rec)
		}
		return rows
	}

	levels := g.opts.GroupBy
	keys := make([][]string, len(g.records))
	for i, rec := range g.records {
		keys[i] = make([]string, len(levels))
		for l, name := range levels {
			keys[i][l] = g.formatByName(name, rec.Value(name))
		}
	}
	order := make([]int, len(g.records))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ka, kb := keys[order[a]], keys[order[b]]
		for l := range ka {
			if c := strings.Compare(ka[l], kb[l]); c != 0 {
				return c < 0
			}
		}
		return false
	})

	captions := make([]int, len(levels))
	var prev []string
	closeGroup := func() {
		if g.opts.ShowGroupSummary && prev != nil {
			rows = append(rows, Row{
				Type:    gridsearch.RowBody,
				Element: gridsearch.ElementGroupSummary,
				Level:   len(levels) - 1,
				Count:   rows[captions[len(levels)-1]].Count,
			})
		}
	}
	for _, i := range order {
		k := keys[i]
		changed := 0
		if prev != nil {
			for changed < len(levels) && k[changed] == prev[changed] {
				changed++
			}
			if changed < len(levels) {
				closeGroup()
			}
		}
		for l := changed; l < len(levels); l++ {
			captions[l] = len(rows)
			rows = append(rows, Row{Type: gridsearch.RowBody, Element: gridsearch.ElementCaption, Level: l})
		}
		for l := range levels {
			rows[captions[l]].Count++
		}
		rows = body(rows, g.records[i])
		prev = k
	}
	closeGroup()

	for i := range rows {
		if rows[i].Element == gridsearch.ElementCaption {
			name := levels[rows[i].Level]
			rows[i].Caption = fmt.Sprintf("%s: %s - %d Items",
				g.titleOf(name), g.groupKey(rows, i), rows[i].Count)
		}
	}
	return rows
}

// groupKey reads the key of the caption at rows[i] from the first record
// that follows it.
func (g *Grid) groupKey(rows []Row, i int) string {
	name := g.opts.GroupBy[rows[i].Level]
	for j := i + 1; j < len(rows); j++ {
		if rows[j].Element == gridsearch.ElementRecord {
			return g.formatByName(name, rows[j].Record.Value(name))
		}
	}
	return ""
}

func (g *Grid) titleOf(name string) string {
	if i := g.columnIndex(name); i >= 0 {
		return g.columns[i].header()
	}
	return name
}

func (g *Grid) formatByName(name string, v any) string {
	if i := g.columnIndex(name); i >= 0 && g.columns[i].Format != nil {
		return g.columns[i].Format(v)
	}
	return FormatValue(v)
}

func (g *Grid) attachDetails() {
	defs := g.opts.Details
	if len(defs) == 0 {
		return
	}
	n := 0
	for i := range g.rows {
		r := &g.rows[i]
		if r.Element != gridsearch.ElementNestedDetail {
			continue
		}
		def := defs[n%len(defs)]
		n++
		var children []Record
		if def.Relation != nil {
			children = def.Relation(r.Record)
		}
		if children == nil {
			children = []Record{}
		}
		child := New(def.Columns, children, Options{
			ShowRowHeader: g.opts.ShowRowHeader,
			ViewportRows:  len(children) + 1,
			ViewportWidth: g.opts.ViewportWidth,
		})
		child.parent = g
		child.hostRow = i
		child.title = def.Name
		r.Detail = child
		if g.opts.ExpandDetails {
			g.heights[i] = max(len(child.rows), 1)
		}
	}
}

func (g *Grid) layoutRows() {
	sizes := make([]int, len(g.rows))
	for i := range sizes {
		sizes[i] = g.rowHeight(i)
	}
	g.rowAxis.Reset(sizes, g.headerLines)
}

func (g *Grid) layoutColumns() {
	l := g.ColumnLayout()
	var sizes []int
	for i := 0; i < l.IndentColumns; i++ {
		sizes = append(sizes, indentWidth)
	}
	if l.DetailsIndicator {
		sizes = append(sizes, indicatorWidth)
	}
	if l.RowHeader {
		sizes = append(sizes, rowHeaderWidth)
	}
	frozen := len(sizes)
	for _, c := range g.columns {
		w := c.Width
		if !c.Visible {
			w = 0
		}
		sizes = append(sizes, w)
	}
	g.colAxis.Reset(sizes, frozen)
}

// ScrollOffset is the number of fixed columns before the first data column.
func (g *Grid) ScrollOffset() int {
	return len(g.colAxis.sizes) - len(g.columns)
}

func (g *Grid) SetFinder(f gridsearch.Finder) {
	g.finder = f
}

func (g *Grid) Finder() gridsearch.Finder { return g.finder }

// Search returns the default search controller, or nil when a different
// finder has been injected.
func (g *Grid) Search() *gridsearch.Controller {
	c, _ := g.finder.(*gridsearch.Controller)
	return c
}

func (g *Grid) resetSearch() {
	if g.finder != nil {
		g.finder.ClearSearch()
	}
}

// TakeInvalidated returns and clears the cells marked for redraw. all is
// true when the whole grid needs repainting.
func (g *Grid) TakeInvalidated() (cells []gridsearch.RowColumnIndex, all bool) {
	for rc := range g.invalid {
		cells = append(cells, rc)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].RowIndex != cells[j].RowIndex {
			return cells[i].RowIndex < cells[j].RowIndex
		}
		return cells[i].ColumnIndex < cells[j].ColumnIndex
	})
	all = g.invalidAll
	g.invalid = make(map[gridsearch.RowColumnIndex]struct{})
	g.invalidAll = false
	return cells, all
}

// Detail returns the nested grid shown on a details row.
func (g *Grid) Detail(row int) *Grid {
	r, ok := g.Row(row)
	if !ok {
		return nil
	}
	return r.Detail
}
