package gridsearch

// indexModel translates between scroll positions and the grid's record and
// column structure.
type indexModel struct {
	g Grid
}

func (x indexModel) columnOffset() int {
	l := x.g.ColumnLayout()
	off := l.IndentColumns
	if l.DetailsIndicator {
		off++
	}
	if l.RowHeader {
		off++
	}
	return off
}

func (x indexModel) toScrollColumn(gridCol int) int { return gridCol + x.columnOffset() }

func (x indexModel) toGridColumn(scrollCol int) int { return scrollCol - x.columnOffset() }

func (x indexModel) firstColumnIndex(includeNonFocusable bool) int {
	for i, c := range x.g.Columns() {
		if c.searchable() && (c.AllowFocus || includeNonFocusable) {
			return x.toScrollColumn(i)
		}
	}
	return -1
}

func (x indexModel) lastColumnIndex(includeNonFocusable bool) int {
	cols := x.g.Columns()
	for i := len(cols) - 1; i >= 0; i-- {
		if cols[i].searchable() && (cols[i].AllowFocus || includeNonFocusable) {
			return x.toScrollColumn(i)
		}
	}
	return -1
}

func (x indexModel) nextColumnIndex(col int) int {
	cols := x.g.Columns()
	resolved := x.toGridColumn(col)
	if resolved < 0 || resolved >= len(cols) {
		return x.firstColumnIndex(true)
	}
	if !cols[resolved].searchable() {
		return col
	}
	for i := resolved + 1; i < len(cols); i++ {
		if cols[i].searchable() {
			return x.toScrollColumn(i)
		}
	}
	return x.firstColumnIndex(true)
}

func (x indexModel) previousColumnIndex(col int) int {
	cols := x.g.Columns()
	resolved := x.toGridColumn(col)
	if resolved < 0 || resolved >= len(cols) {
		return x.lastColumnIndex(true)
	}
	if !cols[resolved].searchable() {
		return col
	}
	for i := resolved - 1; i >= 0; i-- {
		if cols[i].searchable() {
			return x.toScrollColumn(i)
		}
	}
	return x.lastColumnIndex(true)
}

// dataBand returns the first and last display rows that can hold body
// data, before hidden rows are taken into account.
func (x indexModel) dataBand() (start, end int) {
	l := x.g.RowLayout()
	start = l.HeaderLineCount + l.UnboundTopBody
	if l.FilterRow == PositionTop {
		start++
	}
	if l.AddNewRow == PositionTop {
		start++
	}

	end = l.RowCount - (l.TableSummaryBottom + l.UnboundBottomBody + l.UnboundBottomFooter + 1)
	if l.AddNewRow == PositionBottom || l.AddNewRow == PositionFixedBottom {
		end--
	}
	if l.FilterRow == PositionBottom || l.FilterRow == PositionFixedBottom {
		end--
	}
	return start, end
}

func (x indexModel) hasRecords() bool {
	return x.g.HasView() && x.g.RecordCount() > 0
}

func (x indexModel) firstDataRowIndex() int {
	if !x.hasRecords() {
		return -1
	}
	start, end := x.dataBand()
	for r := start; r <= end; r++ {
		if !x.g.IsRowHidden(r) {
			return r
		}
	}
	return -1
}

func (x indexModel) lastDataRowIndex() int {
	if !x.hasRecords() {
		return -1
	}
	start, end := x.dataBand()
	for r := end; r >= start; r-- {
		if !x.g.IsRowHidden(r) {
			return r
		}
	}
	return -1
}

func (x indexModel) nextScrollLine(row int) int {
	count := x.g.RowLayout().RowCount
	for r := row + 1; r < count; r++ {
		if !x.g.IsRowHidden(r) {
			return r
		}
	}
	return -1
}

func (x indexModel) previousScrollLine(row int) int {
	count := x.g.RowLayout().RowCount
	if row > count {
		row = count
	}
	for r := row - 1; r >= 0; r-- {
		if !x.g.IsRowHidden(r) {
			return r
		}
	}
	return -1
}

// elementAt classifies a display row of the body.
func (x indexModel) elementAt(row int) ElementKind {
	l := x.g.RowLayout()
	if row < 0 || row >= l.RowCount || x.g.RowType(row) != RowBody {
		return ElementNone
	}
	pos := row - x.g.BodyStartIndex()
	if pos < 0 {
		return ElementNone
	}
	if l.Grouped {
		return x.g.DisplayElement(pos)
	}
	stride := l.DetailsViewCount + 1
	if pos/stride >= x.g.RecordCount() {
		return ElementNone
	}
	if pos%stride != 0 {
		return ElementNestedDetail
	}
	return ElementRecord
}

func (x indexModel) isDataRow(row int) bool {
	switch x.elementAt(row) {
	case ElementRecord, ElementNestedDetail:
		return true
	}
	return false
}

// nextDataRowIndex steps to the next record or nested detail row. Rows
// outside the data band, and steps past its end, wrap to the first data row.
func (x indexModel) nextDataRowIndex(row int) int {
	first, last := x.firstDataRowIndex(), x.lastDataRowIndex()
	if first < 0 {
		return -1
	}
	if row < first || row > last {
		return first
	}
	count := x.g.RowLayout().RowCount
	for i := 0; i <= count; i++ {
		row = x.nextScrollLine(row)
		if row < 0 || row > last {
			return first
		}
		if x.isDataRow(row) {
			return row
		}
	}
	return -1
}

func (x indexModel) previousDataRowIndex(row int) int {
	first, last := x.firstDataRowIndex(), x.lastDataRowIndex()
	if first < 0 {
		return -1
	}
	if row < first || row > last {
		return last
	}
	count := x.g.RowLayout().RowCount
	for i := 0; i <= count; i++ {
		row = x.previousScrollLine(row)
		if row < first {
			return last
		}
		if x.isDataRow(row) {
			return row
		}
	}
	return -1
}

func (x indexModel) isInDetailsView(row int) bool {
	l := x.g.RowLayout()
	if l.DetailsViewCount == 0 || row < 0 || row >= l.RowCount {
		return false
	}
	if x.g.RowType(row) != RowBody {
		return false
	}
	counter := max(row-x.g.BodyStartIndex(), 0)
	if l.Grouped {
		return x.g.DisplayElement(counter) == ElementNestedDetail
	}
	return counter%(l.DetailsViewCount+1) != 0
}

func (x indexModel) recordAt(row int) any {
	if row < 0 {
		return nil
	}
	return x.g.RecordAt(row)
}
