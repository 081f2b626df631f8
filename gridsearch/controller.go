package gridsearch

import (
	"github.com/andareed/siftly-grid/logging"
	"go.uber.org/zap"
)

type State int

const (
	Idle State = iota
	Positioned
)

func (s State) String() string {
	if s == Positioned {
		return "positioned"
	}
	return "idle"
}

// Controller is the search cursor of one grid. It is not safe for
// concurrent use; all calls belong on the goroutine that owns the grid.
type Controller struct {
	grid      Grid
	index     indexModel
	current   RowColumnIndex
	text      string
	columns   map[string]struct{}
	highlight bool
	matcher   Matcher

	// inner is the controller of the nested grid holding the match while
	// current sits on a details row.
	inner *Controller
}

type Option func(*Controller)

func WithSearchColumns(names ...string) Option {
	return func(c *Controller) { c.SetSearchColumns(names...) }
}

func WithHighlight(on bool) Option {
	return func(c *Controller) { c.highlight = on }
}

func WithMatcher(m Matcher) Option {
	return func(c *Controller) { c.SetMatcher(m) }
}

func New(g Grid, opts ...Option) *Controller {
	c := &Controller{
		grid:      g,
		index:     indexModel{g: g},
		current:   Unset,
		highlight: true,
		matcher:   ContainsFold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Current() RowColumnIndex { return c.current }

func (c *Controller) SearchText() string { return c.text }

// Target follows the cursor into nested grids and returns the grid and the
// cell holding the current match.
func (c *Controller) Target() (Grid, RowColumnIndex) {
	if n := c.nested(); n != nil {
		return n.Target()
	}
	return c.grid, c.current
}

// Path lists the cursor of every grid from this one down to the match: a
// match inside a details view yields the hosting row first. Idle yields nil.
func (c *Controller) Path() []RowColumnIndex {
	if !c.current.IsSet() {
		return nil
	}
	path := []RowColumnIndex{c.current}
	if n := c.nested(); n != nil {
		path = append(path, n.Path()...)
	}
	return path
}

func (c *Controller) nested() *Controller {
	if c.inner != nil && c.current.IsSet() && c.inner.current.IsSet() {
		return c.inner
	}
	return nil
}

func (c *Controller) State() State {
	if c.current.IsSet() {
		return Positioned
	}
	return Idle
}

// SetSearchColumns restricts matching to the named columns. No names means
// every column.
func (c *Controller) SetSearchColumns(names ...string) {
	c.columns = nil
	for _, n := range names {
		if n == "" {
			continue
		}
		if c.columns == nil {
			c.columns = make(map[string]struct{}, len(names))
		}
		c.columns[n] = struct{}{}
	}
}

func (c *Controller) SearchColumns() []string {
	names := make([]string, 0, len(c.columns))
	for _, col := range c.grid.Columns() {
		if _, ok := c.columns[col.Name]; ok {
			names = append(names, col.Name)
		}
	}
	return names
}

func (c *Controller) HighlightMatches() bool { return c.highlight }

func (c *Controller) SetHighlightMatches(on bool) {
	if c.highlight == on {
		return
	}
	c.highlight = on
	c.invalidate(c.current)
}

func (c *Controller) Matcher() Matcher { return c.matcher }

func (c *Controller) SetMatcher(m Matcher) {
	if m == nil {
		m = ContainsFold
	}
	c.matcher = m
}

// ClearSearch forgets the search text and returns the cursor to Idle.
func (c *Controller) ClearSearch() {
	c.text = ""
	c.reset()
}

func (c *Controller) reset() {
	previous := c.current
	c.current = Unset
	c.setInner(nil)
	if c.highlight {
		c.invalidate(previous)
	}
}

// setInner records the nested controller holding the match and returns the
// one it replaces to Idle.
func (c *Controller) setInner(n *Controller) {
	if c.inner != nil && c.inner != n {
		c.inner.reset()
	}
	c.inner = n
}

// nestedAt returns the controller of the grid shown on a details row.
func (c *Controller) nestedAt(row int) *Controller {
	nr, ok := c.grid.(Nested)
	if !ok {
		return nil
	}
	g := nr.NestedGrid(row)
	if g == nil {
		return nil
	}
	h, ok := g.(Host)
	if !ok {
		return nil
	}
	n, _ := h.Finder().(*Controller)
	return n
}

// FindNext moves to the next cell containing text in row-major order,
// wrapping at the end of the data.
func (c *Controller) FindNext(text string) bool {
	return c.find(text, true)
}

// FindPrevious moves to the previous cell containing text, wrapping at the
// start of the data.
func (c *Controller) FindPrevious(text string) bool {
	return c.find(text, false)
}

func (c *Controller) find(text string, forward bool) bool {
	if text != c.text {
		c.reset()
	}

	if e, ok := c.grid.(Embedded); ok && e.IsEmbedded() {
		return c.delegate(e, text, forward)
	}

	if !c.grid.HasView() {
		return false
	}
	if text == "" {
		c.ClearSearch()
		return false
	}
	c.text = text

	logging.Debug("gridsearch: find",
		zap.String("text", text),
		zap.Bool("forward", forward),
		zap.Stringer("from", c.current),
	)
	return c.scan(forward, c.current)
}

// delegate hands a search started inside a details view to the top-level
// grid. The search continues after (or before) this grid's cursor and then
// moves on past the row hosting the details view.
func (c *Controller) delegate(e Embedded, text string, forward bool) bool {
	parent := e.TopLevelParent()
	if parent == nil {
		logging.Debugf("gridsearch: embedded grid has no top-level parent")
		return false
	}
	owner, ok := parent.Finder().(*Controller)
	if !ok || owner == nil {
		return false
	}
	return owner.resumeFromDetails(e.RowInTopLevel(), c, text, forward)
}

func (c *Controller) resumeFromDetails(row int, from *Controller, text string, forward bool) bool {
	if text != c.text {
		c.reset()
	}
	if !c.grid.HasView() {
		return false
	}
	if text == "" {
		c.ClearSearch()
		return false
	}
	c.text = text

	col := c.index.firstColumnIndex(true)
	if col < 0 || row < 0 {
		return false
	}
	if c.nestedAt(row) == from {
		c.setInner(from)
	} else {
		// a grid nested deeper resumes after its outermost host row
		c.setInner(nil)
	}
	logging.Debugf("gridsearch: resume %q from details row %d", text, row)
	return c.scan(forward, RowColumnIndex{RowIndex: row, ColumnIndex: col})
}

// scan walks the data rows once, starting just after (or before) origin.
// When origin is set the pass ends before reaching origin again, so a cell
// is never matched twice in one call.
func (c *Controller) scan(forward bool, origin RowColumnIndex) bool {
	x := c.index
	first, last := x.firstColumnIndex(true), x.lastColumnIndex(true)
	if first < 0 {
		c.reset()
		return false
	}
	previous := c.current

	var row, col int
	moved := false
	if forward {
		col = first
		if origin.ColumnIndex >= 0 {
			col = x.nextColumnIndex(origin.ColumnIndex)
		}
		row = origin.RowIndex
		if row < 0 {
			row = x.firstDataRowIndex()
		}
		if origin.IsSet() && origin.ColumnIndex == last && !x.isInDetailsView(row) {
			row = x.nextDataRowIndex(row)
			moved = true
		}
	} else {
		col = last
		if origin.ColumnIndex >= 0 {
			col = x.previousColumnIndex(origin.ColumnIndex)
		}
		row = origin.RowIndex
		if row < 0 {
			row = x.lastDataRowIndex()
		}
		if origin.IsSet() && origin.ColumnIndex == first && !x.isInDetailsView(row) {
			row = x.previousDataRowIndex(row)
			moved = true
		}
	}

	stopRow := origin.RowIndex
	if !origin.IsSet() {
		stopRow = row
	}
	span := x.lastDataRowIndex() - x.firstDataRowIndex() + 1

	for i := 0; i <= span+1 && row >= 0; i++ {
		wrapped := moved && row == stopRow
		if wrapped && !origin.IsSet() {
			break
		}
		limit := -1
		if wrapped {
			limit = origin.ColumnIndex
		}

		if x.isInDetailsView(row) {
			pass := passWhole
			switch {
			case wrapped:
				pass = passBeforeCursor
			case !moved && origin.IsSet():
				pass = passAfterCursor
			}
			if c.searchNested(row, forward, pass) {
				c.current = RowColumnIndex{RowIndex: row, ColumnIndex: first}
				c.afterMatch(previous)
				return true
			}
		} else {
			var hit int
			var ok bool
			if forward {
				hit, ok = c.matchForward(row, col, limit)
			} else {
				hit, ok = c.matchBackward(row, col, limit)
			}
			if ok {
				c.current = RowColumnIndex{RowIndex: row, ColumnIndex: hit}
				c.setInner(nil)
				c.afterMatch(previous)
				return true
			}
		}
		if wrapped {
			break
		}

		if forward {
			row, col = x.nextDataRowIndex(row), first
		} else {
			row, col = x.previousDataRowIndex(row), last
		}
		moved = true
	}

	logging.Debugf("gridsearch: no match for %q", c.text)
	c.reset()
	return false
}

type nestedPass int

const (
	passWhole nestedPass = iota
	// passAfterCursor is the first visit to the row holding the cursor.
	passAfterCursor
	// passBeforeCursor is the closing visit of a wrapped scan.
	passBeforeCursor
)

// searchNested looks for the search text in the grid shown on details row
// row. The nested grid uses this controller's text, matcher and column
// filter. On a hit the nested controller holds the matched cell.
func (c *Controller) searchNested(row int, forward bool, pass nestedPass) bool {
	n := c.nestedAt(row)
	if n == nil {
		return false
	}
	from, until := Unset, Unset
	switch pass {
	case passAfterCursor:
		if c.inner != n {
			return false
		}
		from = n.current
	case passBeforeCursor:
		if c.inner == n {
			if !n.current.IsSet() {
				return false
			}
			until = n.current
		}
	}

	n.text, n.matcher, n.columns = c.text, c.matcher, c.columns
	if !n.seek(forward, from, until) {
		return false
	}
	c.setInner(n)
	return true
}

// seek walks the data rows once without wrapping, from just after (or
// before) from up to, but not including, until. Unset from starts at the
// edge of the data and Unset until runs to the other edge.
func (c *Controller) seek(forward bool, from, until RowColumnIndex) bool {
	x := c.index
	first, last := x.firstColumnIndex(true), x.lastColumnIndex(true)
	if first < 0 || !c.grid.HasView() {
		return false
	}
	previous := c.current

	row, col := x.firstDataRowIndex(), first
	if !forward {
		row, col = x.lastDataRowIndex(), last
	}
	if from.IsSet() {
		row = from.RowIndex
		done := false
		if forward {
			col = x.nextColumnIndex(from.ColumnIndex)
			done = from.ColumnIndex == last
		} else {
			col = x.previousColumnIndex(from.ColumnIndex)
			done = from.ColumnIndex == first
		}
		if done && !x.isInDetailsView(row) {
			row = c.step(forward, row)
		}
	}

	for row >= 0 {
		limit := -1
		if until.IsSet() && row == until.RowIndex {
			limit = until.ColumnIndex
		}

		if x.isInDetailsView(row) {
			pass := passWhole
			switch {
			case from.IsSet() && row == from.RowIndex:
				pass = passAfterCursor
			case until.IsSet() && row == until.RowIndex:
				pass = passBeforeCursor
			}
			if c.searchNested(row, forward, pass) {
				c.current = RowColumnIndex{RowIndex: row, ColumnIndex: first}
				c.afterMatch(previous)
				return true
			}
		} else {
			var hit int
			var ok bool
			if forward {
				hit, ok = c.matchForward(row, col, limit)
			} else {
				hit, ok = c.matchBackward(row, col, limit)
			}
			if ok {
				c.current = RowColumnIndex{RowIndex: row, ColumnIndex: hit}
				c.setInner(nil)
				c.afterMatch(previous)
				return true
			}
		}
		if until.IsSet() && row == until.RowIndex {
			break
		}

		if forward {
			col = first
		} else {
			col = last
		}
		row = c.step(forward, row)
	}
	return false
}

// step moves to the neighbouring data row, or -1 past either edge.
func (c *Controller) step(forward bool, row int) int {
	x := c.index
	if forward {
		if row >= x.lastDataRowIndex() {
			return -1
		}
		return x.nextDataRowIndex(row)
	}
	if row <= x.firstDataRowIndex() {
		return -1
	}
	return x.previousDataRowIndex(row)
}

// matchForward tests the columns of row from scroll column from up to, but
// not including, scroll column limit (-1 for no limit).
func (c *Controller) matchForward(row, from, limit int) (int, bool) {
	record := c.index.recordAt(row)
	if record == nil {
		return -1, false
	}
	cols := c.grid.Columns()
	start := max(c.index.toGridColumn(from), 0)
	end := len(cols)
	if limit >= 0 {
		end = min(end, c.index.toGridColumn(limit))
	}
	for i := start; i < end; i++ {
		if c.eligible(cols[i]) && c.matches(i, record) {
			return c.index.toScrollColumn(i), true
		}
	}
	return -1, false
}

func (c *Controller) matchBackward(row, from, limit int) (int, bool) {
	record := c.index.recordAt(row)
	if record == nil {
		return -1, false
	}
	cols := c.grid.Columns()
	start := min(c.index.toGridColumn(from), len(cols)-1)
	end := 0
	if limit >= 0 {
		end = max(c.index.toGridColumn(limit)+1, 0)
	}
	for i := start; i >= end; i-- {
		if c.eligible(cols[i]) && c.matches(i, record) {
			return c.index.toScrollColumn(i), true
		}
	}
	return -1, false
}

func (c *Controller) eligible(col Column) bool {
	if !col.searchable() {
		return false
	}
	if len(c.columns) == 0 {
		return true
	}
	_, ok := c.columns[col.Name]
	return ok
}

func (c *Controller) matches(col int, record any) bool {
	return c.matcher.Match(c.grid.FormatCell(col, record), c.text)
}

func (c *Controller) afterMatch(previous RowColumnIndex) {
	if EnsureVisible(c.grid, c.current) {
		logging.Debugf("gridsearch: scrolled %v into view", c.current)
	}
	if c.highlight {
		c.invalidate(previous)
		c.invalidate(c.current)
	}
}

func (c *Controller) invalidate(rc RowColumnIndex) {
	if rc.RowIndex > 0 {
		c.grid.InvalidateCell(rc)
	}
}
