package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/vfsh/internal/logging"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// Interpreter reads commands from an input stream and applies them to a session.
type Interpreter struct {
	session  vfsh.Session
	in       io.Reader
	out      io.Writer
	logger   vfsh.Logger
	styles   Styles
	banner   bool
	commands []command
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the diagnostics logger. Defaults to a NullLogger.
func WithLogger(logger vfsh.Logger) Option {
	return func(i *Interpreter) { i.logger = logging.OrNull(logger) }
}

// WithStyles sets output decoration. Defaults to PlainStyles.
func WithStyles(styles Styles) Option {
	return func(i *Interpreter) { i.styles = styles }
}

// WithBanner controls whether Run prints the command list before the first read.
func WithBanner(show bool) Option {
	return func(i *Interpreter) { i.banner = show }
}

// New creates an interpreter for session reading from in and writing to out.
func New(session vfsh.Session, in io.Reader, out io.Writer, opts ...Option) *Interpreter {
	i := &Interpreter{
		session:  session,
		in:       in,
		out:      out,
		logger:   logging.NewNullLogger(),
		styles:   PlainStyles(),
		banner:   true,
		commands: defaultCommands(),
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Run executes commands until exit, end of input, a read error or
// cancellation of ctx. Reaching end of input is not an error.
func (i *Interpreter) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if i.banner {
		i.printHelp()
	}

	lines := i.readLines(ctx)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		i.println("")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res, ok := <-lines:
			if !ok {
				i.logger.Verbose("end of input")
				return nil
			}
			if res.err != nil {
				return fmt.Errorf("failed to read command: %w", res.err)
			}
			if i.Execute(res.line) {
				i.logger.Verbose("exit requested")
				return nil
			}
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLines scans the input on its own goroutine so that a blocked read
// does not keep Run from observing cancellation. The channel is closed at
// end of input.
func (i *Interpreter) readLines(ctx context.Context) <-chan readResult {
	ch := make(chan readResult)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(i.in)
		for scanner.Scan() {
			select {
			case ch <- readResult{line: scanner.Text()}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case ch <- readResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()
	return ch
}

// Execute runs a single command line and reports whether it asked the
// interpreter to stop.
func (i *Interpreter) Execute(line string) bool {
	args := strings.Fields(line)
	if len(args) == 0 {
		return false
	}

	cmd, ok := i.lookup(args[0])
	if !ok {
		i.logger.Verbose("unknown command %q ignored", args[0])
		return false
	}
	if cmd.quit {
		return true
	}
	if !cmd.accepts(len(args) - 1) {
		i.logger.Verbose("%s: expected %d argument(s), got %d; ignored", cmd.name, cmd.args, len(args)-1)
		return false
	}

	cmd.run(i, args[1:])
	return false
}

func (i *Interpreter) lookup(name string) (command, bool) {
	for _, cmd := range i.commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func (i *Interpreter) printHelp() {
	i.println("Commands: ")
	for _, cmd := range i.commands {
		i.println(cmd.usage + " - " + cmd.description)
	}
}

func (i *Interpreter) printError(msg string) {
	i.println(i.styles.errMsg(msg))
}

func (i *Interpreter) println(text string) {
	fmt.Fprintln(i.out, text)
}
