package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-grid/logging"
)

// Prompt is a one-line text dialog. On enter it hands the value to submit
// and sends the message it returns.
type Prompt struct {
	title   string
	input   textinput.Model
	visible bool
	help    string
	// blank input submits the placeholder when allowed
	usePlaceholder bool
	submit         func(value string) tea.Msg
}

func newPrompt(title, prompt, help string, submit func(string) tea.Msg) *Prompt {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.CharLimit = 256
	ti.Width = boxWidth - 10
	ti.Focus()
	return &Prompt{title: title, input: ti, visible: true, help: help, submit: submit}
}

func (d *Prompt) Init() tea.Cmd { return textinput.Blink }

func (d *Prompt) Title() string { return d.title }

func (d *Prompt) Value() string { return d.input.Value() }

func (d *Prompt) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	if m, ok := msg.(tea.KeyMsg); ok {
		switch m.String() {
		case "enter":
			val := strings.TrimSpace(d.input.Value())
			if val == "" && d.usePlaceholder {
				val = d.input.Placeholder
			}
			logging.Debugf("dialogs: %s submitted %q", d.title, val)
			d.Hide()
			out := d.submit(val)
			return d, func() tea.Msg { return out }
		case "esc":
			logging.Debugf("dialogs: %s canceled", d.title)
			d.Hide()
			title := d.title
			return d, func() tea.Msg { return CanceledMsg{Title: title} }
		}
	}
	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *Prompt) View() string {
	if !d.visible {
		return ""
	}
	return box().Render(fmt.Sprintf("%s\n\n%s", d.input.View(), hint(d.help)))
}

func (d *Prompt) Show() {
	d.visible = true
	d.input.Focus()
}

func (d *Prompt) Hide() {
	d.visible = false
	d.input.Blur()
}

func (d *Prompt) Focus() tea.Cmd  { return d.input.Focus() }
func (d *Prompt) Blur()           { d.input.Blur() }
func (d *Prompt) IsVisible() bool { return d.visible }
