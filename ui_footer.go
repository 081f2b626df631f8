package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/termenv"
)

// footerState is everything the two footer lines show.
type footerState struct {
	mode  Command
	input string // command line being typed

	source string

	query   string
	columns string
	state   string
	// position is drawn flush right on the control bar
	position string

	notice string
	legend string
}

type footerPalette struct {
	bar, status    lipgloss.Color
	pill, pillText lipgloss.Color
	source, text   lipgloss.Color
	dim            lipgloss.Color
	noticeText     lipgloss.Color
	legend         lipgloss.Color
}

var footerColors = footerPalette{
	bar:        "#262626",
	status:     "#000000",
	pill:       currentMatchBGColor,
	pillText:   "#000000",
	source:     "#e4e4e4",
	text:       "#d0d0d0",
	dim:        "#9e9e9e",
	noticeText: "#a8a8a8",
	legend:     "#b2b2b2",
}

// renderFooter draws the control bar (mode, source, search state) above the
// status bar (notice, key legend). Both lines are exactly width cells wide.
func renderFooter(width int, st footerState, p footerPalette) string {
	if width <= 0 {
		return ""
	}
	if st.query == "" {
		st.query = "-"
	}
	if st.columns == "" {
		st.columns = "all"
	}
	if st.legend == "" {
		st.legend = "(? help)"
	}
	return controlBar(width, st, p) + "\n" + statusBar(width, st, p)
}

// controlBar lays out [mode] source [FIND · IN · state] ... position. When
// the line is too narrow the search summary shrinks first, then the pill.
func controlBar(width int, st footerState, p footerPalette) string {
	right := clip(" "+st.position, width)
	avail := max(width-lipgloss.Width(right), 0)

	summary := fmt.Sprintf("[FIND: %s] · [IN: %s] · %s", clip(st.query, 14), clip(st.columns, 16), st.state)
	summaryW := lipgloss.Width(summary)
	label := commandLabel(st.mode)
	pillW := lipgloss.Width(label) + 2

	sourceW := avail - pillW - summaryW - 2
	if sourceW < 0 {
		give := min(-sourceW, max(summaryW-10, 0))
		summaryW -= give
		sourceW += give
	}
	if sourceW < 0 {
		pillW = max(pillW+sourceW, 0)
		sourceW = 0
	}

	var b strings.Builder
	b.WriteString(pillSegment(pillW, label, p))
	b.WriteString(" ")
	b.WriteString(sourceSegment(sourceW, st, p))
	b.WriteString(" ")
	b.WriteString(tint(padRight(clip(summary, summaryW), summaryW), p.dim, p.text))
	if used := pillW + sourceW + summaryW + 2; used < avail {
		b.WriteString(strings.Repeat(" ", avail-used))
	}
	b.WriteString(right)
	return onBar(b.String(), p.bar, p.text)
}

func statusBar(width int, st footerState, p footerPalette) string {
	legend := clip(st.legend, width)
	msgW := max(width-lipgloss.Width(legend), 0)
	line := tint(padRight(clip(st.notice, msgW), msgW), p.noticeText, p.noticeText) +
		tint(legend, p.legend, p.noticeText)
	return onBar(line, p.status, p.noticeText)
}

func pillSegment(w int, label string, p footerPalette) string {
	if w <= 0 {
		return ""
	}
	pill := clip(" "+label+" ", w)
	return bgSeq(p.pill) + fgSeq(p.pillText) + pill +
		bgSeq(p.bar) + fgSeq(p.text) + strings.Repeat(" ", w-lipgloss.Width(pill))
}

// sourceSegment names the data source and, in command mode, echoes the
// line being typed after it.
func sourceSegment(w int, st footerState, p footerPalette) string {
	if w <= 0 {
		return ""
	}
	name := strings.TrimSpace(st.source)
	if name == "" {
		name = "(no file)"
	}
	src := clip("▸ "+name, w)
	rest := w - lipgloss.Width(src)

	echo := ""
	if in := strings.TrimSpace(st.input); in != "" && rest > 0 {
		echo = clip(" ▸ "+in, rest)
		rest -= lipgloss.Width(echo)
	}
	return tint(src, p.source, p.text) + echo + strings.Repeat(" ", max(rest, 0))
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "FIND"
	case CmdJump:
		return "JUMP"
	case CmdColumns:
		return "COLUMNS"
	case CmdGroup:
		return "GROUP"
	}
	return "NORMAL"
}

func onBar(s string, bg, fg lipgloss.Color) string {
	return bgSeq(bg) + fgSeq(fg) + s + termenv.CSI + termenv.ResetSeq + "m"
}

// tint colours s and then returns to the surrounding colour.
func tint(s string, fg, surrounding lipgloss.Color) string {
	return fgSeq(fg) + s + fgSeq(surrounding)
}

func padRight(s string, w int) string {
	if pad := w - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

func clip(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return truncate.String(s, uint(w))
}
