package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/vfsh/internal/config"
	"github.com/vvka-141/vfsh/internal/session"
	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// resolveConfig builds the effective configuration.
// Priority (highest to lowest): flags > environment (.env included) > config file > defaults
func resolveConfig(cmd *cobra.Command, logger vfsh.Logger) (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := loadConfigFile(cmd, logger)
	if err != nil {
		return nil, err
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed(flagRootName) {
		cfg.RootName, _ = flags.GetString(flagRootName)
	}
	if flags.Changed(flagAllowNegativeSizes) {
		cfg.AllowNegativeSizes, _ = flags.GetBool(flagAllowNegativeSizes)
	}
	if flags.Changed(flagColor) {
		cfg.Color, _ = flags.GetString(flagColor)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Verbose("config: root %q, negative sizes %t, color %s, %d seed entries",
		cfg.RootName, cfg.AllowNegativeSizes, cfg.Color, len(cfg.Seed))
	return cfg, nil
}

// loadConfigFile loads --config when given, otherwise vfsh.yaml from the
// working directory. Only the implicit file may be absent.
func loadConfigFile(cmd *cobra.Command, logger vfsh.Logger) (*config.Config, error) {
	path, _ := cmd.Flags().GetString(flagConfig)
	if path != "" {
		cfg, err := config.LoadFile(path)
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: %s does not exist", vfsh.ErrInvalidConfig, path)
		}
		if err != nil {
			return nil, err
		}
		logger.Verbose("config loaded from %s", path)
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return config.Default(), nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", vfsh.ConfigFileName, err)
	}
	logger.Verbose("config loaded from %s", vfsh.ConfigFileName)
	return cfg, nil
}

// newSession creates a session from cfg and applies its seed entries.
func newSession(cfg *config.Config, logger vfsh.Logger) (*session.Session, error) {
	sess := session.New(session.Options{
		RootName:           cfg.RootName,
		AllowNegativeSizes: cfg.AllowNegativeSizes,
		Logger:             logger,
	})
	if err := sess.Seed(seedEntries(cfg.Seed)); err != nil {
		return nil, fmt.Errorf("%w: %w", vfsh.ErrInvalidConfig, err)
	}
	return sess, nil
}

func seedEntries(entries []config.SeedEntry) []session.SeedEntry {
	seed := make([]session.SeedEntry, 0, len(entries))
	for _, e := range entries {
		seed = append(seed, session.SeedEntry{Path: e.Path, Size: e.Size, Folder: e.Folder})
	}
	return seed
}

// openInput returns the command source: the --script file when set,
// stdin otherwise. The returned func releases it.
func openInput(cmd *cobra.Command) (io.Reader, func(), error) {
	path, _ := cmd.Flags().GetString(flagScript)
	if path == "" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("%w: %s", vfsh.ErrScriptNotFound, path)
		}
		return nil, nil, fmt.Errorf("failed to open script %s: %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
