package vfsh

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := session.ChangeDirectory("docs")
//	if errors.Is(err, vfsh.ErrDirectoryNotFound) {
//	    // Report the miss; the cursor did not move
//	}
var (
	// ErrDirectoryNotFound indicates cd named a subdirectory that does not exist.
	ErrDirectoryNotFound = errors.New("directory does not exist")

	// ErrInvalidFormat indicates a numeric argument could not be parsed.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrNegativeSize indicates a file size below zero was rejected.
	ErrNegativeSize = errors.New("negative file size")

	// ErrInvalidName indicates an empty file or folder name.
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrScriptNotFound indicates the command script could not be opened.
	ErrScriptNotFound = errors.New("script not found")

	// ErrNotInteractive indicates a terminal UI was requested without a terminal.
	ErrNotInteractive = errors.New("interactive terminal required")
)

// usagePatterns are fragments of cobra/pflag error messages caused by
// malformed command lines.
var usagePatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"required flag",
	"invalid argument",
	"flag needs an argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrScriptNotFound):
		return ExitScriptNotFound
	case errors.Is(err, ErrNotInteractive):
		return ExitNotInteractive
	}

	errStr := err.Error()
	for _, pattern := range usagePatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
