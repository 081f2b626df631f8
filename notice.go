package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type noticeKind int

const (
	noticePlain noticeKind = iota
	noticeInfo
	noticeSuccess
	noticeWarn
	noticeError
)

const noticeDuration = 2 * time.Second

func (k noticeKind) icon() string {
	switch k {
	case noticeInfo:
		return "ℹ"
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	}
	return ""
}

// notice is the one-line message shown in the status bar. seq tells a
// pending clear which notice it was scheduled for.
type notice struct {
	text string
	kind noticeKind
	seq  int
}

type clearNoticeMsg struct{ seq int }

func noticeText(text string, kind noticeKind) string {
	if text == "" || kind.icon() == "" {
		return text
	}
	return kind.icon() + " " + text
}

// notify replaces the current notice and schedules its removal.
func (m *model) notify(kind noticeKind, text string) tea.Cmd {
	seq := m.ui.notice.seq + 1
	m.ui.notice = notice{text: text, kind: kind, seq: seq}
	return tea.Tick(noticeDuration, func(time.Time) tea.Msg { return clearNoticeMsg{seq: seq} })
}

func (m *model) clearNotice(msg clearNoticeMsg) {
	if msg.seq == m.ui.notice.seq {
		m.ui.notice = notice{seq: msg.seq}
	}
}
