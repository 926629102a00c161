package tui

import (
	"os"

	"golang.org/x/term"
)

// EnvNonInteractive forces non-interactive mode when set to "1".
const EnvNonInteractive = "VFSH_NON_INTERACTIVE"

// Mode represents the interaction mode for vfsh.
type Mode int

const (
	// ModeNonInteractive is used for scripts, CI and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive is used when a human is at the terminal.
	ModeInteractive
)

// DetectMode determines whether vfsh is talking to a human.
//
// Returns ModeNonInteractive if:
//   - VFSH_NON_INTERACTIVE=1 is set
//   - CI is set
//   - NO_COLOR is set
//   - stdin or stdout is not a terminal
//
// Returns ModeInteractive otherwise.
func DetectMode() Mode {
	if os.Getenv(EnvNonInteractive) == "1" {
		return ModeNonInteractive
	}
	if os.Getenv("CI") != "" {
		return ModeNonInteractive
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ModeNonInteractive
	}
	// The browser renders to stdout, so it has to be a terminal too.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// IsInteractive is a convenience function that returns true if running in interactive mode.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
