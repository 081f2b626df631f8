package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) setSearchColumns(names []string) tea.Cmd {
	if bad := unknownColumns(m.grid, names); len(bad) > 0 {
		return m.notify(noticeError, "Unknown column: "+strings.Join(bad, ", "))
	}
	m.search().SetSearchColumns(names...)
	if len(names) == 0 {
		return m.notify(noticeInfo, "Searching all columns")
	}
	return m.notify(noticeInfo, "Searching "+strings.Join(names, ", "))
}

func (m *model) setGroupBy(names []string) tea.Cmd {
	if err := m.grid.SetGroupBy(names...); err != nil {
		return m.notify(noticeError, err.Error())
	}
	m.ui.searchQuery = ""
	m.refitColumns()
	m.refreshInvalidated()
	if len(names) == 0 {
		return m.notify(noticeInfo, "Grouping removed")
	}
	return m.notify(noticeInfo, fmt.Sprintf("Grouped by %s", strings.Join(names, ", ")))
}
