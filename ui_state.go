package main

type mode int

const (
	modeView mode = iota
	modeCommand
)

type uiState struct {
	mode    mode
	command CommandInput
	notice  notice
	// last text searched for; n and N repeat it
	searchQuery string
}
