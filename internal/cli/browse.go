package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/shell"
	"github.com/vvka-141/vfsh/internal/tui"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Explore the simulated tree in a full-screen browser",
	Long: `Opens a full-screen browser over a fresh session.

The tree is built from the seed entries of the config file and, when
--script is given, by running that script first. Inside the browser:
arrows or j/k move, enter opens a folder, backspace goes to the parent,
d deletes the selected entry, n creates a folder and q quits.

Requires an interactive terminal.`,
	Example: `  vfsh browse
  vfsh browse --script setup.txt`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	if !tui.IsInteractive() {
		return fmt.Errorf("browse: %w (use 'vfsh' with --script for non-interactive runs)", vfsh.ErrNotInteractive)
	}

	logger := newLogger(cmd)
	cfg, err := resolveConfig(cmd, logger)
	if err != nil {
		return err
	}
	sess, err := newSession(cfg, logger)
	if err != nil {
		return err
	}

	if err := prepareSession(cmd, sess, logger); err != nil {
		return err
	}
	return tui.RunBrowser(commandContext(cmd), sess)
}

// prepareSession runs the --script file, if any, against sess. Command
// output goes to stderr so the browser owns the screen.
func prepareSession(cmd *cobra.Command, sess vfsh.Session, logger vfsh.Logger) error {
	path, _ := cmd.Flags().GetString(flagScript)
	if path == "" {
		return nil
	}

	in, closeIn, err := openInput(cmd)
	if err != nil {
		return err
	}
	defer closeIn()

	interp := shell.New(sess, in, cmd.ErrOrStderr(), shell.WithLogger(logger), shell.WithBanner(false))
	if err := interp.Run(commandContext(cmd)); err != nil {
		return fmt.Errorf("script %s: %w", path, err)
	}
	logger.Info("script %s applied", path)
	return nil
}
