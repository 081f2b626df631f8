package main

import (
	"fmt"
	"strings"
)

type Command int

const (
	CmdNone Command = iota
	CmdSearch
	CmdJump
	CmdColumns
	CmdGroup
)

type CommandInput struct {
	cmd Command
	buf string
	// prefilled is set while buf still holds the current setting untouched.
	// Typing replaces it; backspace starts editing it.
	prefilled bool
}

// insert types s at the end of the line, replacing untouched pre-filled text.
func (in *CommandInput) insert(s string) {
	if in.prefilled {
		in.buf = ""
		in.prefilled = false
	}
	in.buf += s
}

func (in *CommandInput) backspace() {
	in.prefilled = false
	if r := []rune(in.buf); len(r) > 0 {
		in.buf = string(r[:len(r)-1])
	}
}

func commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "find: "
	case CmdJump:
		return "row: "
	case CmdColumns:
		return "search in: "
	case CmdGroup:
		return "group by: "
	default:
		return ""
	}
}

func commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdColumns, CmdGroup:
		return "comma separated, blank for none   enter: apply   esc: cancel"
	default:
		return "enter: apply   esc: cancel"
	}
}

func idleCommandHintsLine() string {
	return "(? help · / find · n/N next/prev · c columns · G group · : jump)"
}

// activeCommandLine returns the command prompt text for the footer.
func (m *model) activeCommandLine() string {
	return commandPrompt(m.ui.command.cmd) + m.ui.command.buf
}

// initialBuffer pre-fills the prompt with the current setting.
func (m *model) initialBuffer(cmd Command) string {
	switch cmd {
	case CmdColumns:
		return strings.Join(m.search().SearchColumns(), ", ")
	case CmdGroup:
		return strings.Join(m.grid.GroupBy(), ", ")
	}
	return ""
}

func (m *model) commandRightContext() string {
	c := m.search()
	if col, _, ok := cellAt(matchAt(c)); ok {
		return fmt.Sprintf("Match %s:%s", matchPosition(c), col.Name)
	}
	return fmt.Sprintf("Orders %d", len(m.data.orders))
}

// splitList splits a comma separated list and drops blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
