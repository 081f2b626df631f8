package dialogs

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	ExportConfirmedMsg struct{ Path string }
	ExportErrorMsg     struct{ Err error }
	ExportOKMsg        struct{ Path string }
)

// resolvePath puts a bare file name into lastDir.
func resolvePath(val, lastDir string) string {
	if val == "" || lastDir == "" || filepath.IsAbs(val) || filepath.Dir(val) != "." {
		return val
	}
	return filepath.Join(lastDir, filepath.Base(val))
}

// NewExportDialog asks for the CSV file the orders are exported to.
func NewExportDialog(defaultName, lastDir string) *Prompt {
	p := newPrompt("export", "Export as: ", "enter to export • esc to cancel",
		func(v string) tea.Msg {
			return ExportConfirmedMsg{Path: resolvePath(v, lastDir)}
		})
	p.input.Placeholder = defaultName
	p.usePlaceholder = true
	return p
}
