package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"

	"github.com/andareed/siftly-grid/dialogs"
	"github.com/andareed/siftly-grid/grid"
	"github.com/andareed/siftly-grid/gridsearch"
	"github.com/andareed/siftly-grid/logging"
)

// lineCache keeps rendered display rows until the grid invalidates them.
// Anything that restyles every row at once is part of the key.
type lineCache struct {
	lines map[int][]string
	key   cacheKey
}

type cacheKey struct {
	colOffset int
	query     string
	highlight bool
}

func newLineCache() lineCache {
	return lineCache{lines: make(map[int][]string)}
}

func (c *lineCache) invalidate(cells []gridsearch.RowColumnIndex, all bool) {
	if all {
		c.lines = make(map[int][]string)
		return
	}
	for _, rc := range cells {
		delete(c.lines, rc.RowIndex)
	}
}

func (c *lineCache) sync(k cacheKey) {
	if k != c.key {
		c.key = k
		c.lines = make(map[int][]string)
	}
}

func (m *model) highlightOn() bool {
	return m.search().HighlightMatches() && m.ui.searchQuery != ""
}

// footerView renders the 2-line footer.
func (m *model) footerView(width int) string {
	c := m.search()
	st := footerState{
		source:   m.data.sourceLabel(),
		query:    m.ui.searchQuery,
		columns:  strings.Join(c.SearchColumns(), ","),
		state:    c.State().String(),
		position: m.commandRightContext(),
		notice:   noticeText(m.ui.notice.text, m.ui.notice.kind),
		legend:   idleCommandHintsLine(),
	}
	if m.ui.mode == modeCommand {
		st.mode = m.ui.command.cmd
		st.input = m.activeCommandLine()
		st.legend = commandHintsLine(m.ui.command.cmd)
	}

	if logging.IsDebugMode() {
		rows, cols := m.grid.RowAxis(), m.grid.ColumnAxis()
		st.legend += fmt.Sprintf(" | dbg term=%dx%d rowoff=%d coloff=%d cached=%d",
			m.terminalWidth, m.terminalHeight, rows.Offset(), cols.Offset(), len(m.cache.lines))
	}
	return renderFooter(width, st, footerColors)
}

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Center(m.activeDialog.View(), m.terminalWidth, m.terminalHeight)
	}

	rows, cols := m.grid.RowAxis(), m.grid.ColumnAxis()
	bordered := tableStyle.
		Width(cols.Viewport()).
		Height(rows.Viewport()).
		Render(m.renderGrid())
	contentW := lipgloss.Width(bordered)
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, bordered, m.footerView(contentW)))
}

// renderGrid draws the frozen header lines and then the scrolled rows that
// fit the viewport.
func (m *model) renderGrid() string {
	m.refreshInvalidated()
	m.cache.sync(cacheKey{
		colOffset: m.grid.ColumnAxis().Offset(),
		query:     m.ui.searchQuery,
		highlight: m.highlightOn(),
	})

	axis := m.grid.RowAxis()
	var out []string
	emit := func(row int) {
		if axis.Size(row) > 0 {
			out = append(out, m.rowLines(row)...)
		}
	}
	for row := 0; row < m.grid.HeaderLines(); row++ {
		emit(row)
	}
	start, end := axis.VisibleRange()
	for row := start; row < end; row++ {
		emit(row)
	}

	if h := axis.Viewport(); len(out) > h {
		out = out[:h]
	}
	return strings.Join(out, "\n")
}

func (m *model) rowLines(row int) []string {
	if lines, ok := m.cache.lines[row]; ok {
		return lines
	}
	r, _ := m.grid.Row(row)

	var lines []string
	switch {
	case row == 0:
		lines = []string{m.renderHeaderLine(r)}
	case r.Element == gridsearch.ElementRecord:
		lines = []string{m.renderRecordLine(row, r)}
	case r.Element == gridsearch.ElementNestedDetail:
		lines = m.renderDetailLines(row, r)
	default:
		lines = []string{m.renderLabelLine(row, r)}
	}

	height := m.grid.RowAxis().Size(row)
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	m.cache.lines[row] = lines
	return lines
}

// gutter renders the frozen columns in front of the data columns.
func (m *model) gutter(row int, r grid.Row) string {
	ax := m.grid.ColumnAxis()
	layout := m.grid.ColumnLayout()

	var b strings.Builder
	i := 0
	for ; i < layout.IndentColumns; i++ {
		b.WriteString(strings.Repeat(" ", ax.Size(i)))
	}
	if layout.DetailsIndicator {
		mark := ""
		if r.Element == gridsearch.ElementNestedDetail {
			mark = detailsMarker
		}
		b.WriteString(fitCell(mark, ax.Size(i)))
		i++
	}
	if layout.RowHeader {
		mark := fitCell("", ax.Size(i))
		if m.highlightOn() && m.search().Current().RowIndex == row {
			mark = matchMarker.Render(pillMarker) + fitCell("", ax.Size(i)-1)
		}
		b.WriteString(mark)
	}
	return b.String()
}

func (m *model) bodyWidth() int {
	ax := m.grid.ColumnAxis()
	fixed := 0
	for i := 0; i < m.grid.ScrollOffset(); i++ {
		fixed += ax.Size(i)
	}
	return max(ax.Viewport()-fixed, 0)
}

// renderCells lays out the scrolled data columns of one line. cell gets
// the scroll column, the grid column and the width to fill.
func (m *model) renderCells(cell func(scrollCol, gridCol, width int) string) string {
	ax := m.grid.ColumnAxis()
	offset := m.grid.ScrollOffset()
	start, end := ax.VisibleRange()

	var b strings.Builder
	for i := start; i < end; i++ {
		line, ok := ax.VisibleLine(i)
		if !ok {
			continue
		}
		w := line.Size
		if line.Clipped {
			w = ax.Viewport() - line.Origin
		}
		b.WriteString(cell(i, i-offset, w))
	}
	return b.String()
}

func (m *model) renderHeaderLine(r grid.Row) string {
	cells := m.renderCells(func(_, col, w int) string {
		return headerStyle.Render(fitCell(m.grid.CellText(0, col), w))
	})
	return m.gutter(0, r) + cells
}

func (m *model) renderRecordLine(row int, r grid.Row) string {
	highlight := m.highlightOn()
	cur := m.search().Current()

	cells := m.renderCells(func(scrollCol, col, w int) string {
		text := fitCell(m.grid.CellText(row, col), w)
		switch {
		case !highlight:
			return text
		case cur.RowIndex == row && cur.ColumnIndex == scrollCol:
			return currentMatchStyle.Render(text)
		default:
			return highlightMatches(text, m.ui.searchQuery, m.search().Matcher())
		}
	})

	rowBgStyle := rowStyle
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if highlight && cur.RowIndex == row {
		rowBgStyle = matchRowStyle
		rowPrefix = bgSeq(lipgloss.Color(matchRowBGColor)) + fgSeq(lipgloss.Color(matchRowTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	if highlight {
		cells = restoreRowStyleAfterReset(cells, rowPrefix)
	}
	return rowBgStyle.Render(m.gutter(row, r)) + rowPrefix + cells + rowSuffix
}

func (m *model) renderLabelLine(row int, r grid.Row) string {
	label := m.grid.Label(row)
	indent := ""
	style := specialRowStyle
	switch r.Element {
	case gridsearch.ElementCaption:
		indent = strings.Repeat("  ", r.Level)
		style = captionStyle
	case gridsearch.ElementGroupSummary:
		indent = strings.Repeat("  ", r.Level+1)
		style = groupSummaryStyle
	}
	width := m.grid.ColumnAxis().Viewport() - lipgloss.Width(indent)
	return indent + style.Render(truncate.StringWithTail(label, uint(max(width, 0)), "…"))
}

// renderDetailLines draws a nested grid under its parent record: the title
// and column headers first, then one line per child record.
func (m *model) renderDetailLines(row int, r grid.Row) []string {
	gutter := m.gutter(row, r)
	width := m.bodyWidth()
	child := r.Detail
	if child == nil {
		return []string{gutter + specialRowStyle.Render(m.grid.Label(row))}
	}

	title := detailTitleStyle.Render(m.grid.Label(row) + " ")
	target, cur := matchAt(m.search())
	if target != child || !m.highlightOn() {
		cur = gridsearch.Unset
	}
	lines := make([]string, 0, len(child.Rows()))
	for i := range child.Rows() {
		var b strings.Builder
		for c, col := range child.ColumnDefs() {
			if !col.Visible {
				continue
			}
			cell := fitCell(child.CellText(i, c), col.Width)
			if cur.RowIndex == i && cur.ColumnIndex == c+child.ScrollOffset() {
				cell = currentMatchStyle.Render(cell)
			}
			b.WriteString(cell)
		}
		text := b.String()
		if i == 0 {
			text = title + detailHeaderStyle.Render(text)
		} else {
			text = strings.Repeat(" ", lipgloss.Width(title)) + text
		}
		lines = append(lines, gutter+truncate.String(text, uint(width)))
	}
	return lines
}

// fitCell clips s to w-1 cells and pads it to w, leaving one blank column
// between cells.
func fitCell(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = truncate.StringWithTail(s, uint(max(w-1, 0)), "…")
	if pad := w - lipgloss.Width(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// highlightMatches marks the parts of text the matcher matched query
// against. Matchers that cannot locate a match leave text unmarked; the row
// and current cell are still highlighted.
func highlightMatches(text, query string, matcher gridsearch.Matcher) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	loc, ok := matcher.(gridsearch.Locator)
	if !ok {
		return text
	}
	ranges := loc.Locate(text, q)
	if len(ranges) == 0 {
		return text
	}

	var b strings.Builder
	start := 0
	for _, r := range ranges {
		if r[0] < start || r[1] > len(text) {
			continue
		}
		b.WriteString(text[start:r[0]])
		b.WriteString(searchHighlight.Render(text[r[0]:r[1]]))
		start = r[1]
	}
	b.WriteString(text[start:])
	return b.String()
}

// restoreRowStyleAfterReset re-applies the row colours after every reset
// emitted by an inner highlight.
func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	if rowPrefix == "" {
		return s
	}
	reset := termenv.CSI + "0m"
	if !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string {
	return colorSeq(c, false)
}

func bgSeq(c lipgloss.Color) string {
	return colorSeq(c, true)
}

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	seq := tc.Sequence(bg)
	if seq == "" {
		// no colour support
		return ""
	}
	return termenv.CSI + seq + "m"
}
