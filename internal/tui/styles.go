package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vvka-141/vfsh/internal/config"
	"github.com/vvka-141/vfsh/internal/shell"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSize      = lipgloss.Color("34")  // Green
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for the browser.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			MarginBottom(1)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	UnselectedStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	SizeStyle = lipgloss.NewStyle().
			Foreground(ColorSize)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)
)

// Symbols for visual feedback.
const (
	SymbolCursor = "›"
	SymbolFolder = "▸"
	SymbolFile   = " "
)

// ShellStyles returns interpreter styles for out according to a color mode
// (config.ColorAuto, ColorAlways or ColorNever). Auto colors only when
// running interactively.
func ShellStyles(out io.Writer, mode string) shell.Styles {
	switch mode {
	case config.ColorNever:
		return shell.PlainStyles()
	case config.ColorAuto, "":
		if !IsInteractive() {
			return shell.PlainStyles()
		}
	}

	r := lipgloss.NewRenderer(out)
	if mode == config.ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	return shell.NewStyles(
		r.NewStyle().Foreground(ColorPrimary).Bold(true),
		r.NewStyle().Foreground(ColorSize),
		r.NewStyle().Foreground(ColorError),
	)
}
