package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/shell"
	"github.com/vvka-141/vfsh/internal/tui"
)

var rootCmd = &cobra.Command{
	Use:   "vfsh",
	Short: "In-memory filesystem shell",
	Long: `vfsh simulates a hierarchical filesystem in memory and drives it with a
small line-oriented command language (cd, ls, size, createfile,
createfolder, delete, pwd, tree, help, exit).

Nothing is written to disk. Commands are read from stdin, or from a file
with --script. Type 'help' at the prompt for the command list.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Script file not found
  12 - Interactive terminal required`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runShell,
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for vfsh")
	registerSessionFlags(rootCmd)
}

func runShell(cmd *cobra.Command, _ []string) error {
	logger := newLogger(cmd)

	cfg, err := resolveConfig(cmd, logger)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeIn()

	out := cmd.OutOrStdout()
	interp := shell.New(sess, in, out,
		shell.WithLogger(logger),
		shell.WithStyles(tui.ShellStyles(out, cfg.Color)),
		shell.WithBanner(showBanner(cmd, cfg)),
	)
	if err := interp.Run(commandContext(cmd)); err != nil {
		if errors.Is(err, context.Canceled) {
			logger.Verbose("interrupted")
			return nil
		}
		return fmt.Errorf("shell stopped: %w", err)
	}
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
