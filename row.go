package main

import (
	"strconv"
	"strings"

	"github.com/andareed/siftly-grid/grid"
	"github.com/andareed/siftly-grid/gridsearch"
)

// joinRow joins the visible cells of a display row with sep. Rows that are
// not records yield their label.
func joinRow(g *grid.Grid, row int, sep string) string {
	r, ok := g.Row(row)
	if !ok {
		return ""
	}
	if r.Element != gridsearch.ElementRecord && row != 0 {
		return g.Label(row)
	}

	var b strings.Builder
	first := true
	for i, c := range g.ColumnDefs() {
		if !c.Visible {
			continue
		}
		if !first {
			b.WriteString(sep)
		}
		first = false
		b.WriteString(g.CellText(row, i))
	}
	return b.String()
}

// rowString is the clipboard form of a row: tab separated.
func rowString(g *grid.Grid, row int) string {
	return joinRow(g, row, "\t")
}

// matchAt returns the grid and cell holding the current match, which may
// sit in a nested details grid.
func matchAt(c *gridsearch.Controller) (*grid.Grid, gridsearch.RowColumnIndex) {
	tg, rc := c.Target()
	g, ok := tg.(*grid.Grid)
	if !ok {
		return nil, gridsearch.Unset
	}
	return g, rc
}

// matchPosition prints the rows of a match path: "7" for a record, "2.1"
// for the first record of the details view on row 2.
func matchPosition(c *gridsearch.Controller) string {
	var parts []string
	for _, rc := range c.Path() {
		parts = append(parts, strconv.Itoa(rc.RowIndex))
	}
	return strings.Join(parts, ".")
}

// cellAt returns the grid column and text of a search position.
func cellAt(g *grid.Grid, rc gridsearch.RowColumnIndex) (grid.Column, string, bool) {
	if g == nil {
		return grid.Column{}, "", false
	}
	col := rc.ColumnIndex - g.ScrollOffset()
	defs := g.ColumnDefs()
	if !rc.IsSet() || col < 0 || col >= len(defs) {
		return grid.Column{}, "", false
	}
	return defs[col], g.CellText(rc.RowIndex, col), true
}
