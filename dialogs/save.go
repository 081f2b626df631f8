package dialogs

import tea "github.com/charmbracelet/bubbletea"

type (
	SaveConfirmedMsg struct{ Path string }
	SaveErrorMsg     struct{ Err error }
	SaveOKMsg        struct{ Path string }
)

// NewSaveDialog asks for the JSON snapshot path.
func NewSaveDialog(defaultName, lastDir string) *Prompt {
	p := newPrompt("save", "Save as: ", "enter to save • esc to cancel",
		func(v string) tea.Msg {
			return SaveConfirmedMsg{Path: resolvePath(v, lastDir)}
		})
	p.input.Placeholder = defaultName
	p.usePlaceholder = true
	return p
}
