package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/siftly-grid/config"
	"github.com/andareed/siftly-grid/dialogs"
	"github.com/andareed/siftly-grid/grid"
	"github.com/andareed/siftly-grid/gridsearch"
	"github.com/andareed/siftly-grid/logging"
	"github.com/andareed/siftly-grid/orders"
)

// rows taken by the table border and the two footer lines
const (
	chromeRows = 4
	chromeCols = 4
)

type model struct {
	cfg  *config.Config
	keys Keymap
	data dataState
	ui   uiState

	grid  *grid.Grid
	cache lineCache

	activeDialog   dialogs.Dialog
	ready          bool
	terminalWidth  int
	terminalHeight int
}

func newModel(cfg *config.Config, list []*orders.OrderInfo, path string) (*model, error) {
	g, err := buildGrid(cfg, list)
	if err != nil {
		return nil, err
	}

	keys := Keys
	keys.FindDemoNext.SetHelp("g", fmt.Sprintf("find next %q", cfg.Demo.NextText))
	keys.FindDemoPrev.SetHelp("b", fmt.Sprintf("find previous %q", cfg.Demo.PreviousText))

	data := dataState{orders: list, path: path, minWidths: columnMinimums(g.ColumnDefs())}
	if path != "" {
		data.lastDir = filepath.Dir(path)
	}

	return &model{
		cfg:   cfg,
		keys:  keys,
		data:  data,
		grid:  g,
		cache: newLineCache(),
	}, nil
}

func (m *model) search() *gridsearch.Controller { return m.grid.Search() }

func (m *model) Init() tea.Cmd {
	logging.Infof("sfgrid: showing %s", m.data.sourceLabel())
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case clearNoticeMsg:
		m.clearNotice(msg)
		return m, nil

	case dialogs.CanceledMsg:
		m.activeDialog = nil
		return m, nil

	case dialogs.ExportConfirmedMsg:
		m.activeDialog = nil
		return m, exportOrders(msg.Path, m.data.orders)
	case dialogs.ExportOKMsg:
		m.data.lastDir = filepath.Dir(msg.Path)
		return m, m.notify(noticeSuccess, "Exported to "+msg.Path)
	case dialogs.ExportErrorMsg:
		logging.Errorf("export: %v", msg.Err)
		return m, m.notify(noticeError, "Export failed: "+msg.Err.Error())

	case dialogs.SaveConfirmedMsg:
		m.activeDialog = nil
		return m, saveOrders(msg.Path, m.data.orders)
	case dialogs.SaveOKMsg:
		m.data.lastDir = filepath.Dir(msg.Path)
		return m, m.notify(noticeSuccess, "Saved to "+msg.Path)
	case dialogs.SaveErrorMsg:
		logging.Errorf("save: %v", msg.Err)
		return m, m.notify(noticeError, "Save failed: "+msg.Err.Error())
	}

	if m.activeDialog != nil {
		var cmd tea.Cmd
		m.activeDialog, cmd = m.activeDialog.Update(msg)
		if !m.activeDialog.IsVisible() {
			m.activeDialog = nil
		}
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.ui.mode == modeCommand {
			return m.handleCommandKey(msg)
		}
		return m.handleViewModeKey(msg)
	}
	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	rows := m.grid.RowAxis()
	cols := m.grid.ColumnAxis()

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Search):
		m.enterCommandMode(CmdSearch)
	case key.Matches(msg, k.Jump):
		m.enterCommandMode(CmdJump)
	case key.Matches(msg, k.SearchColumns):
		m.enterCommandMode(CmdColumns)
	case key.Matches(msg, k.GroupBy):
		m.enterCommandMode(CmdGroup)

	case key.Matches(msg, k.FindNext):
		return m, m.findNext("")
	case key.Matches(msg, k.FindPrevious):
		return m, m.findPrevious("")
	case key.Matches(msg, k.FindDemoNext):
		return m, m.findNext(m.cfg.Demo.NextText)
	case key.Matches(msg, k.FindDemoPrev):
		return m, m.findPrevious(m.cfg.Demo.PreviousText)
	case key.Matches(msg, k.ToggleHighlight):
		return m, m.toggleHighlight()
	case key.Matches(msg, k.ClearSearch):
		return m, m.clearSearch()

	case key.Matches(msg, k.CopyMatch):
		return m, m.copyMatch(false)
	case key.Matches(msg, k.CopyRow):
		return m, m.copyMatch(true)
	case key.Matches(msg, k.ExportToFile):
		return m, m.openDialog(dialogs.NewExportDialog(m.data.exportName(), m.data.lastDir))
	case key.Matches(msg, k.SaveToFile):
		return m, m.openDialog(dialogs.NewSaveDialog(m.data.saveName(), m.data.lastDir))
	case key.Matches(msg, k.OpenHelp):
		return m, m.openDialog(dialogs.NewHelpDialog(k.HelpGroups()...))

	case key.Matches(msg, k.RowUp):
		rows.ScrollBy(-1)
	case key.Matches(msg, k.RowDown):
		rows.ScrollBy(1)
	case key.Matches(msg, k.PageUp):
		rows.ScrollBy(-m.pageSize())
	case key.Matches(msg, k.PageDown):
		rows.ScrollBy(m.pageSize())
	case key.Matches(msg, k.Top):
		m.jumpToStart()
	case key.Matches(msg, k.Bottom):
		m.jumpToEnd()
	case key.Matches(msg, k.ScrollLeft):
		cols.ScrollBy(-1)
	case key.Matches(msg, k.ScrollRight):
		cols.ScrollBy(1)
	}
	return m, nil
}

func (m *model) openDialog(d dialogs.Dialog) tea.Cmd {
	m.activeDialog = d
	d.Show()
	return tea.Batch(d.Init(), d.Focus())
}

func (m *model) resize(width, height int) {
	m.terminalWidth, m.terminalHeight = width, height
	m.grid.Resize(max(width-chromeCols, 1), max(height-chromeRows, 1))
	m.refitColumns()
	m.ready = true
	logging.Debugf("resize %dx%d", width, height)
}

// refitColumns shares the grid width out between the visible columns.
func (m *model) refitColumns() {
	g := m.grid
	ax := g.ColumnAxis()
	fixed := 0
	for i := 0; i < g.ScrollOffset(); i++ {
		fixed += ax.Size(i)
	}
	for name, w := range fitColumns(g.ColumnDefs(), m.data.minWidths, ax.Viewport()-fixed) {
		if err := g.SetColumnWidth(name, w); err != nil {
			logging.Warnf("refit: %v", err)
		}
	}
}

// refreshInvalidated drops the cached lines of every cell the grid asked
// to repaint.
func (m *model) refreshInvalidated() {
	cells, all := m.grid.TakeInvalidated()
	m.cache.invalidate(cells, all)
}

func exportOrders(path string, list []*orders.OrderInfo) tea.Cmd {
	return func() tea.Msg {
		if err := orders.ExportCSV(path, list); err != nil {
			return dialogs.ExportErrorMsg{Err: err}
		}
		return dialogs.ExportOKMsg{Path: path}
	}
}

func saveOrders(path string, list []*orders.OrderInfo) tea.Cmd {
	return func() tea.Msg {
		if err := orders.SaveJSON(path, list); err != nil {
			return dialogs.SaveErrorMsg{Err: err}
		}
		return dialogs.SaveOKMsg{Path: path}
	}
}
