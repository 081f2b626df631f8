package grid

import "github.com/andareed/siftly-grid/gridsearch"

// The methods below describe the grid to gridsearch.

var (
	_ gridsearch.Grid     = (*Grid)(nil)
	_ gridsearch.Host     = (*Grid)(nil)
	_ gridsearch.Embedded = (*Grid)(nil)
	_ gridsearch.Nested   = (*Grid)(nil)
)

func (g *Grid) Columns() []gridsearch.Column {
	out := make([]gridsearch.Column, len(g.columns))
	for i, c := range g.columns {
		out[i] = gridsearch.Column{
			Name:       c.Name,
			Visible:    c.Visible,
			Width:      c.Width,
			AllowFocus: c.AllowFocus,
		}
	}
	return out
}

func (g *Grid) ColumnLayout() gridsearch.ColumnLayout {
	return gridsearch.ColumnLayout{
		IndentColumns:    len(g.opts.GroupBy),
		DetailsIndicator: len(g.opts.Details) > 0 || g.opts.ShowPreviewRow,
		RowHeader:        g.opts.ShowRowHeader,
	}
}

func (g *Grid) HasView() bool { return g.hasView }

func (g *Grid) RecordCount() int { return len(g.records) }

func (g *Grid) RowLayout() gridsearch.RowLayout {
	o := g.opts
	return gridsearch.RowLayout{
		RowCount:            len(g.rows),
		HeaderLineCount:     g.headerLines,
		UnboundTopBody:      o.UnboundTopBody,
		UnboundBottomBody:   o.UnboundBottomBody,
		UnboundBottomFooter: o.UnboundBottomFooter,
		TableSummaryBottom:  o.SummaryBottom,
		DetailsViewCount:    len(o.Details),
		Grouped:             len(o.GroupBy) > 0,
		FilterRow:           o.FilterRow,
		AddNewRow:           o.AddNewRow,
	}
}

func (g *Grid) RowType(row int) gridsearch.RowType {
	r, ok := g.Row(row)
	if !ok {
		return gridsearch.RowHeader
	}
	return r.Type
}

func (g *Grid) IsRowHidden(row int) bool {
	return g.rowHeight(row) == 0
}

func (g *Grid) BodyStartIndex() int { return g.bodyStart }

func (g *Grid) DisplayElement(pos int) gridsearch.ElementKind {
	r, ok := g.Row(g.bodyStart + pos)
	if !ok || r.Type != gridsearch.RowBody {
		return gridsearch.ElementNone
	}
	return r.Element
}

func (g *Grid) RecordAt(row int) any {
	r, ok := g.Row(row)
	if !ok || r.Element != gridsearch.ElementRecord || r.Record == nil {
		return nil
	}
	return r.Record
}

func (g *Grid) FormatCell(column int, record any) string {
	rec, ok := record.(Record)
	if !ok || column < 0 || column >= len(g.columns) {
		return ""
	}
	c := g.columns[column]
	v := rec.Value(c.Name)
	if c.Format != nil {
		return c.Format(v)
	}
	return FormatValue(v)
}

func (g *Grid) RowLine(row int) (gridsearch.VisibleLine, bool) {
	return g.rowAxis.VisibleLine(row)
}

func (g *Grid) ColumnLine(col int) (gridsearch.VisibleLine, bool) {
	return g.colAxis.VisibleLine(col)
}

// ScrollInView scrolls both axes to rc. A grid inside a details view also
// brings its hosting row into view in every ancestor.
func (g *Grid) ScrollInView(rc gridsearch.RowColumnIndex) {
	g.rowAxis.ScrollInView(rc.RowIndex)
	g.colAxis.ScrollInView(rc.ColumnIndex)
	for child, p := g, g.parent; p != nil; child, p = p, p.parent {
		p.rowAxis.ScrollInView(child.hostRow)
	}
}

func (g *Grid) InvalidateCell(rc gridsearch.RowColumnIndex) {
	g.invalid[rc] = struct{}{}
	if top := g.topLevel(); top != g {
		top.invalidAll = true
	}
}

func (g *Grid) NestedGrid(row int) gridsearch.Grid {
	if d := g.Detail(row); d != nil {
		return d
	}
	return nil
}

func (g *Grid) IsEmbedded() bool { return g.parent != nil }

func (g *Grid) topLevel() *Grid {
	top := g
	for top.parent != nil {
		top = top.parent
	}
	return top
}

func (g *Grid) TopLevelParent() gridsearch.Host {
	if g.parent == nil {
		return nil
	}
	return g.topLevel()
}

func (g *Grid) RowInTopLevel() int {
	if g.parent == nil {
		return -1
	}
	outer := g
	for outer.parent.parent != nil {
		outer = outer.parent
	}
	return outer.hostRow
}
