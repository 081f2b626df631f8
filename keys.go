package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/andareed/siftly-grid/dialogs"
)

type Keymap struct {
	Quit            key.Binding
	Search          key.Binding
	FindNext        key.Binding
	FindPrevious    key.Binding
	FindDemoNext    key.Binding
	FindDemoPrev    key.Binding
	SearchColumns   key.Binding
	GroupBy         key.Binding
	Jump            key.Binding
	ToggleHighlight key.Binding
	ClearSearch     key.Binding
	CopyMatch       key.Binding
	CopyRow         key.Binding
	ExportToFile    key.Binding
	SaveToFile      key.Binding
	RowUp           key.Binding
	RowDown         key.Binding
	PageUp          key.Binding
	PageDown        key.Binding
	Top             key.Binding
	Bottom          key.Binding
	ScrollLeft      key.Binding
	ScrollRight     key.Binding
	OpenHelp        key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "find text"),
	),
	FindNext: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "find next"),
	),
	FindPrevious: key.NewBinding(
		key.WithKeys("N"),
		key.WithHelp("N", "find previous"),
	),
	FindDemoNext: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "find next (preset)"),
	),
	FindDemoPrev: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "find previous (preset)"),
	),
	SearchColumns: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "columns to search"),
	),
	GroupBy: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "group by columns"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to row"),
	),
	ToggleHighlight: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H", "toggle match highlight"),
	),
	ClearSearch: key.NewBinding(
		key.WithKeys("x", "esc"),
		key.WithHelp("x/esc", "clear search"),
	),
	CopyMatch: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy match to clipboard"),
	),
	CopyRow: key.NewBinding(
		key.WithKeys("Y"),
		key.WithHelp("Y", "copy match row to clipboard"),
	),
	ExportToFile: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export orders as CSV"),
	),
	SaveToFile: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "save orders snapshot"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "first row"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "last row"),
	),
	ScrollLeft: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "scroll left"),
	),
	ScrollRight: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "scroll right"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) HelpGroups() []dialogs.HelpGroup {
	return []dialogs.HelpGroup{
		{Title: "Search", Bindings: []key.Binding{
			k.Search, k.FindNext, k.FindPrevious, k.FindDemoNext, k.FindDemoPrev,
			k.SearchColumns, k.ToggleHighlight, k.ClearSearch,
		}},
		{Title: "Grid", Bindings: []key.Binding{
			k.RowUp, k.RowDown, k.PageUp, k.PageDown, k.Top, k.Bottom, k.ScrollLeft, k.ScrollRight, k.Jump, k.GroupBy,
		}},
		{Title: "Data", Bindings: []key.Binding{
			k.CopyMatch, k.CopyRow, k.ExportToFile, k.SaveToFile, k.OpenHelp, k.Quit,
		}},
	}
}
