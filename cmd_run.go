package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) runCommand() tea.Cmd {
	buf := strings.TrimSpace(m.ui.command.buf)
	switch m.ui.command.cmd {
	case CmdSearch:
		return m.findNext(buf)

	case CmdJump:
		n, err := strconv.Atoi(buf)
		if err != nil {
			return m.notify(noticeWarn, "Invalid row number")
		}
		return m.jumpToRow(n)

	case CmdColumns:
		return m.setSearchColumns(splitList(buf))

	case CmdGroup:
		return m.setGroupBy(splitList(buf))
	}
	return nil
}

func (m *model) enterCommandMode(cmd Command) {
	buf := m.initialBuffer(cmd)
	m.ui.command = CommandInput{cmd: cmd, buf: buf, prefilled: buf != ""}
	m.ui.mode = modeCommand
}

func (m *model) exitCommandMode() {
	m.ui.command = CommandInput{}
	m.ui.mode = modeView
}

func (m *model) handleCommandKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.exitCommandMode()
		return m, nil

	case tea.KeyEnter:
		cmd := m.runCommand()
		m.exitCommandMode()
		return m, cmd

	case tea.KeyBackspace:
		m.ui.command.backspace()
		return m, nil

	case tea.KeySpace:
		m.ui.command.insert(" ")
		return m, nil

	case tea.KeyRunes:
		m.ui.command.insert(string(msg.Runes))
	}
	return m, nil
}
