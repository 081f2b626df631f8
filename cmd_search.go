package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-grid/clipboard"
	"github.com/andareed/siftly-grid/gridsearch"
	"github.com/andareed/siftly-grid/logging"
)

func (m *model) findNext(text string) tea.Cmd {
	return m.find(text, true)
}

func (m *model) findPrevious(text string) tea.Cmd {
	return m.find(text, false)
}

// find runs one search step. An empty text repeats the last search.
func (m *model) find(text string, forward bool) tea.Cmd {
	if text == "" {
		text = m.ui.searchQuery
	}
	if text == "" {
		return m.notify(noticeWarn, "Nothing to find: press / first")
	}

	c := m.search()
	wasPositioned := c.State() == gridsearch.Positioned && c.SearchText() == text

	f := m.grid.Finder()
	var found bool
	if forward {
		found = f.FindNext(text)
	} else {
		found = f.FindPrevious(text)
	}
	m.ui.searchQuery = text
	m.refreshInvalidated()
	logging.Debugf("find %q forward=%v found=%v at %s", text, forward, found, c.Current())

	if !found {
		if wasPositioned {
			return m.notify(noticeInfo, fmt.Sprintf("No other match for %q", text))
		}
		return m.notify(noticeWarn, fmt.Sprintf("%q not found", text))
	}
	g, rc := matchAt(c)
	col, value, _ := cellAt(g, rc)
	if g != nil && g.IsEmbedded() {
		return m.notify(noticeSuccess, fmt.Sprintf("%s › %s: %s", g.Title(), col.Name, value))
	}
	return m.notify(noticeSuccess, fmt.Sprintf("%s: %s", col.Name, value))
}

func (m *model) clearSearch() tea.Cmd {
	if m.ui.searchQuery == "" && m.search().State() == gridsearch.Idle {
		return nil
	}
	m.grid.Finder().ClearSearch()
	m.ui.searchQuery = ""
	m.refreshInvalidated()
	return m.notify(noticeInfo, "Search cleared")
}

func (m *model) toggleHighlight() tea.Cmd {
	c := m.search()
	c.SetHighlightMatches(!c.HighlightMatches())
	m.refreshInvalidated()
	if c.HighlightMatches() {
		return m.notify(noticeInfo, "Match highlight on")
	}
	return m.notify(noticeInfo, "Match highlight off")
}

func (m *model) copyMatch(wholeRow bool) tea.Cmd {
	g, rc := matchAt(m.search())
	_, value, ok := cellAt(g, rc)
	if !ok {
		return m.notify(noticeWarn, "No match to copy")
	}
	what := "cell"
	if wholeRow {
		value = rowString(g, rc.RowIndex)
		what = "row"
	}
	if err := clipboard.Copy(value); err != nil {
		logging.Errorf("copy %s: %v", what, err)
		return m.notify(noticeError, "Copy failed: "+err.Error())
	}
	return m.notify(noticeSuccess, "Copied "+what+" to clipboard")
}
