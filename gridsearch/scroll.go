package gridsearch

// EnsureVisible scrolls rc into view when its row or column is not laid out
// or is clipped at an edge. It reports whether a scroll was requested.
func EnsureVisible(v Viewport, rc RowColumnIndex) bool {
	if !rc.IsSet() {
		return false
	}
	row, rowOK := v.RowLine(rc.RowIndex)
	col, colOK := v.ColumnLine(rc.ColumnIndex)
	if rowOK && !row.Clipped && colOK && !col.Clipped {
		return false
	}
	v.ScrollInView(rc)
	return true
}
