package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-grid/gridsearch"
	"github.com/andareed/siftly-grid/logging"
)

// recordRow returns the display row of the n-th record (1-based) in
// display order.
func (m *model) recordRow(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	for i, r := range m.grid.Rows() {
		if r.Element != gridsearch.ElementRecord {
			continue
		}
		n--
		if n == 0 {
			return i, true
		}
	}
	return 0, false
}

func (m *model) jumpToRow(n int) tea.Cmd {
	logging.Debugf("jumpToRow %d", n)
	row, ok := m.recordRow(n)
	if !ok {
		return m.notify(noticeWarn, fmt.Sprintf("Row %d out of bounds", n))
	}
	m.grid.RowAxis().ScrollInView(row)
	return nil
}

func (m *model) jumpToStart() {
	axis := m.grid.RowAxis()
	axis.ScrollBy(-axis.Count())
}

func (m *model) jumpToEnd() {
	axis := m.grid.RowAxis()
	axis.ScrollInView(axis.Count() - 1)
}

func (m *model) pageSize() int {
	return max(m.grid.RowAxis().Viewport()-m.grid.HeaderLines(), 1)
}
