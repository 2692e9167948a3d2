// Package config loads textframe settings from an optional TOML file.
//
// The file lives at $XDG_CONFIG_HOME/textframe/config.toml, falling back to
// ~/.config/textframe/config.toml. A missing file is not an error; every key
// has a default.
//
//	[log]
//	level = "debug"
//
//	[server]
//	addr = "127.0.0.1:7878"
//	read_timeout = "5s"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	fterrors "github.com/matzehuels/textframe/pkg/errors"
)

const (
	appName = "textframe"

	// DefaultAddr is the listen address of the HTTP transport.
	DefaultAddr = "127.0.0.1:7878"

	// DefaultReadTimeout bounds reading a request, headers and body.
	DefaultReadTimeout = 5 * time.Second

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"
)

// Config holds all file-backed settings.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Server ServerConfig `toml:"server"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `toml:"level"`
}

// ServerConfig configures the HTTP transport.
type ServerConfig struct {
	Addr        string   `toml:"addr"`
	ReadTimeout Duration `toml:"read_timeout"`
}

// Duration is a time.Duration read from a TOML string such as "5s".
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
	return []byte(d.Duration.String()), nil
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: DefaultLogLevel},
		Server: ServerConfig{Addr: DefaultAddr, ReadTimeout: Duration{DefaultReadTimeout}},
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// Load reads the file at path over the defaults. An empty path means
// [Path]. A missing file yields the defaults; keys the file sets that no
// field takes are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		p, err := Path()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if explicit {
				return cfg, fterrors.Wrap(fterrors.ErrCodeFileNotFound, err, "config file %s", path)
			}
			return cfg, nil
		}
		return cfg, fterrors.Wrap(fterrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, fterrors.New(fterrors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges and fills empty fields with defaults.
func (c *Config) Validate() error {
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if !validLevels[c.Log.Level] {
		return fterrors.New(fterrors.ErrCodeInvalidConfig, "log.level %q: must be debug, info, warn or error", c.Log.Level)
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ReadTimeout.Duration < 0 {
		return fterrors.New(fterrors.ErrCodeInvalidConfig, "server.read_timeout must not be negative")
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = DefaultReadTimeout
	}
	return nil
}
