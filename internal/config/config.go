package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/vfsh/pkg/vfsh"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorModes lists the valid color settings in display order.
var ColorModes = []string{ColorAuto, ColorAlways, ColorNever}

// Environment variables that override vfsh.yaml.
const (
	EnvRootName           = "VFSH_ROOT_NAME"
	EnvAllowNegativeSizes = "VFSH_ALLOW_NEGATIVE_SIZES"
	EnvColor              = "VFSH_COLOR"
)

// SeedEntry declares a file or folder to create when a session starts.
// Path is slash-separated and relative to the root. Intermediate
// folders are created implicitly.
type SeedEntry struct {
	Path   string `yaml:"path"`
	Size   int64  `yaml:"size,omitempty"`
	Folder bool   `yaml:"folder,omitempty"`
}

type Config struct {
	RootName           string      `yaml:"root_name,omitempty"`
	AllowNegativeSizes bool        `yaml:"allow_negative_sizes,omitempty"`
	Color              string      `yaml:"color,omitempty"`
	Banner             *bool       `yaml:"banner,omitempty"`
	Seed               []SeedEntry `yaml:"seed,omitempty"`
}

// Default returns the configuration used when no vfsh.yaml exists.
func Default() *Config {
	return &Config{
		RootName: vfsh.DefaultRootName,
		Color:    ColorAuto,
	}
}

// Load reads vfsh.yaml from dir.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, vfsh.ConfigFileName))
}

// LoadFile reads and validates a configuration file. Unset fields are
// filled with defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %v: %w", path, err, vfsh.ErrInvalidConfig)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables read through getenv.
// Empty values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvRootName); v != "" {
		c.RootName = v
	}
	if v := getenv(EnvAllowNegativeSizes); v != "" {
		allow, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q is not a boolean: %w", EnvAllowNegativeSizes, v, vfsh.ErrInvalidConfig)
		}
		c.AllowNegativeSizes = allow
	}
	if v := getenv(EnvColor); v != "" {
		c.Color = v
	}
	return c.Validate()
}

// Validate checks field values.
func (c *Config) Validate() error {
	if !isColorMode(c.Color) {
		return fmt.Errorf("color %q must be one of %v: %w", c.Color, ColorModes, vfsh.ErrInvalidConfig)
	}
	for i, entry := range c.Seed {
		if entry.Path == "" {
			return fmt.Errorf("seed entry %d has no path: %w", i, vfsh.ErrInvalidConfig)
		}
		if entry.Folder && entry.Size != 0 {
			return fmt.Errorf("seed entry %d (%q) is a folder and cannot have a size: %w", i, entry.Path, vfsh.ErrInvalidConfig)
		}
	}
	return nil
}

// ShowBanner reports whether the help banner is printed at startup.
func (c *Config) ShowBanner() bool {
	return c.Banner == nil || *c.Banner
}

func (c *Config) fillDefaults() {
	if c.RootName == "" {
		c.RootName = vfsh.DefaultRootName
	}
	if c.Color == "" {
		c.Color = ColorAuto
	}
}

func isColorMode(mode string) bool {
	for _, m := range ColorModes {
		if m == mode {
			return true
		}
	}
	return false
}
