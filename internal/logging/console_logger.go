package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// ConsoleLogger writes log messages to stderr, or to the writer set
// with WithOutput.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose bool
	out     io.Writer
	mu      sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return &ConsoleLogger{
		verbose: verbose,
	}
}

// WithOutput redirects the logger to w instead of stderr.
func (l *ConsoleLogger) WithOutput(w io.Writer) *ConsoleLogger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	return l
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write("[VERBOSE] ", format, args...)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args...)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write("[ERROR] ", format, args...)
}

func (l *ConsoleLogger) write(prefix, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if out == nil {
		// Resolved per call so tests can swap os.Stderr.
		out = os.Stderr
	}
	if len(args) > 0 {
		fmt.Fprintf(out, prefix+format+"\n", args...)
	} else {
		fmt.Fprint(out, prefix+format+"\n")
	}
}

var _ vfsh.Logger = (*ConsoleLogger)(nil)
