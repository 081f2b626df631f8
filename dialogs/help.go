package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Help lists key bindings in titled groups.
type Help struct {
	visible bool
	groups  []HelpGroup
}

type HelpGroup struct {
	Title    string
	Bindings []key.Binding
}

func NewHelpDialog(groups ...HelpGroup) *Help {
	return &Help{visible: true, groups: groups}
}

func (d *Help) Init() tea.Cmd { return nil }

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter", "esc", "?", "q":
			d.visible = false
		}
	}
	return d, nil
}

func (d *Help) View() string {
	if !d.visible {
		return ""
	}
	heading := lipgloss.NewStyle().Bold(true)

	var sections []string
	for _, g := range d.groups {
		lines := []string{heading.Render(g.Title)}
		for _, b := range g.Bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-10s %s", h.Key, h.Desc))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	content := fmt.Sprintf("%s\n\n%s", strings.Join(sections, "\n\n"), hint("enter/esc to return"))
	return box().Render(content)
}

func (d *Help) Show()           { d.visible = true }
func (d *Help) Hide()           { d.visible = false }
func (d *Help) Focus() tea.Cmd  { return nil }
func (d *Help) Blur()           {}
func (d *Help) IsVisible() bool { return d.visible }
