package dialogs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Dialog is a modal overlay. The owning model routes every message to the
// open dialog until it reports itself hidden.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}

// CanceledMsg is sent when a prompt is dismissed with esc.
type CanceledMsg struct{ Title string }

const boxWidth = 60

func box() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(boxWidth)
}

func hint(s string) string {
	return lipgloss.NewStyle().Faint(true).Render(s)
}

// Center places a rendered dialog in the middle of a width x height area.
func Center(s string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, s)
}
