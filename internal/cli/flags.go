package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/config"
	"github.com/vvka-141/vfsh/internal/logging"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

const (
	flagVerbose            = "verbose"
	flagConfig             = "config"
	flagRootName           = "root-name"
	flagAllowNegativeSizes = "allow-negative-sizes"
	flagColor              = "color"
	flagScript             = "script"
	flagNoBanner           = "no-banner"
)

// registerSessionFlags adds the flags shared by every command that builds a session.
func registerSessionFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.BoolP(flagVerbose, "v", false, "Enable verbose output on stderr")
	flags.String(flagConfig, "", "Path to a config file (default: ./"+vfsh.ConfigFileName+" when present)")
	flags.String(flagRootName, vfsh.DefaultRootName, "Name of the root directory")
	flags.Bool(flagAllowNegativeSizes, false, "Accept negative file sizes")
	flags.String(flagColor, config.ColorAuto, "Colorize output: auto, always or never")
	flags.StringP(flagScript, "f", "", "Read commands from a file instead of stdin")
	flags.Bool(flagNoBanner, false, "Do not print the command list at startup")

	_ = cmd.RegisterFlagCompletionFunc(flagColor, completeColorModes)
	_ = cmd.RegisterFlagCompletionFunc(flagScript, completeScriptFiles)
	_ = cmd.RegisterFlagCompletionFunc(flagConfig, completeConfigFiles)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool(flagVerbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func newLogger(cmd *cobra.Command) *logging.ConsoleLogger {
	return logging.NewConsoleLogger(getVerboseFlag(cmd)).WithOutput(cmd.ErrOrStderr())
}

// showBanner combines --no-banner with the banner setting of the config file.
func showBanner(cmd *cobra.Command, cfg *config.Config) bool {
	noBanner, _ := cmd.Flags().GetBool(flagNoBanner)
	return !noBanner && cfg.ShowBanner()
}
