package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/textframe/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Server.ReadTimeout.Duration != DefaultReadTimeout {
		t.Errorf("ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, DefaultReadTimeout)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[log]
level = "debug"

[server]
addr = ":9000"
read_timeout = "250ms"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
	}
	if cfg.Server.ReadTimeout.Duration != 250*time.Millisecond {
		t.Errorf("ReadTimeout = %v, want 250ms", cfg.Server.ReadTimeout)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "[log]\nlevel = \"warn\"\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want default", cfg.Server.Addr)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		code errors.Code
	}{
		{"malformed", "[log\nlevel=", errors.ErrCodeInvalidConfig},
		{"bad level", "[log]\nlevel = \"loud\"\n", errors.ErrCodeInvalidConfig},
		{"bad duration", "[server]\nread_timeout = \"soon\"\n", errors.ErrCodeInvalidConfig},
		{"negative duration", "[server]\nread_timeout = \"-1s\"\n", errors.ErrCodeInvalidConfig},
		{"misspelled key", "[server]\nadr = \"127.0.0.1:1\"\n", errors.ErrCodeInvalidConfig},
		{"unknown table", "[cache]\ndir = \"/tmp\"\n", errors.ErrCodeInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadUnknownKeyNamed(t *testing.T) {
	_, err := Load(writeConfig(t, "[server]\nadr = \"127.0.0.1:1\"\n"))
	if err == nil || !strings.Contains(err.Error(), "server.adr") {
		t.Errorf("Load() error = %v, want it to name server.adr", err)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	got, err := Path()
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "textframe", "config.toml")
	if got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
