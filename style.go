package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	matchRowTextFGColor    = "#e0e0e0"
	matchRowBGColor        = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
	currentMatchBGColor    = "#ff9f1c"
)

var (
	appstyle   = lipgloss.NewStyle().Margin(0, 1)
	tableStyle = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))

	headerStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e0e0e0"))
	captionStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7fb4ff"))
	groupSummaryStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	specialRowStyle   = lipgloss.NewStyle().Faint(true)
	detailTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	detailHeaderStyle = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("250"))

	rowStyle      = lipgloss.NewStyle()
	matchRowStyle = lipgloss.NewStyle().Background(lipgloss.Color(matchRowBGColor))

	matchMarker   = lipgloss.NewStyle().Foreground(lipgloss.Color(currentMatchBGColor))
	pillMarker    = "▐"
	detailsMarker = "▸"

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))

	currentMatchStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(currentMatchBGColor)).
				Foreground(lipgloss.Color(searchHighlightFGColor)).
				Bold(true)
)
