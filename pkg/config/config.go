// Package config loads castcolor's TOML configuration.
//
// The file lives at $XDG_CONFIG_HOME/castcolor/config.toml, falling back to
// ~/.config/castcolor/config.toml. A missing file is not an error; every key
// has a default:
//
//	log_level = "info"
//	default_reduction = "to-casting"
//
//	[solve]
//	leads_apart = true
//	max_nodes = 0
//	format = "text"
//
//	[server]
//	addr = ":8080"
//	max_nodes = 2000000
//	cache_ttl = "10m"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	cerrors "github.com/matzehuels/castcolor/pkg/errors"
	"github.com/matzehuels/castcolor/pkg/pipeline"
)

const appName = "castcolor"

// FileName is the config file name inside the config directory.
const FileName = "config.toml"

// Config is the full configuration.
type Config struct {
	LogLevel         string `toml:"log_level"`
	DefaultReduction string `toml:"default_reduction"`

	Solve  Solve  `toml:"solve"`
	Server Server `toml:"server"`
}

// Solve holds defaults for the solve command.
type Solve struct {
	LeadsApart bool   `toml:"leads_apart"`
	MaxNodes   int    `toml:"max_nodes"`
	Format     string `toml:"format"`
}

// Server holds HTTP API settings.
type Server struct {
	Addr     string   `toml:"addr"`
	MaxNodes int      `toml:"max_nodes"`
	CacheTTL Duration `toml:"cache_ttl"`
}

// Duration is a time.Duration written as a Go duration string in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:         "info",
		DefaultReduction: pipeline.DefaultDirection,
		Solve: Solve{
			LeadsApart: true,
			Format:     pipeline.FormatText,
		},
		Server: Server{
			Addr:     ":8080",
			MaxNodes: 2_000_000,
			CacheTTL: Duration{pipeline.DefaultCacheTTL},
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
// An empty path means [Path]; a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "read config %s", path)
	}
	if err := Decode(data, &cfg); err != nil {
		return cfg, cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, cfg.Validate()
}

// Decode parses TOML data into cfg. Keys absent from data keep their
// current values. Unknown keys are rejected.
func Decode(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "unknown config key %q", undecoded[0].String())
	}
	return nil
}

// Validate checks enumerated values and bounds.
func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "invalid log_level: %q", c.LogLevel)
	}
	if err := pipeline.ValidateDirection(c.DefaultReduction); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "default_reduction")
	}
	if err := pipeline.ValidateFormat(c.Solve.Format); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidInput, err, "solve.format")
	}
	if c.Solve.MaxNodes < 0 || c.Server.MaxNodes < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "max_nodes must not be negative")
	}
	if c.Server.CacheTTL.Duration < 0 {
		return cerrors.New(cerrors.ErrCodeInvalidInput, "server.cache_ttl must not be negative")
	}
	return nil
}

// Level returns the parsed log level, info when invalid.
func (c Config) Level() log.Level {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// Path returns the default config file location.
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, FileName), nil
}
