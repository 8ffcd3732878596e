package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

// testOptions mirrors the main options struct shape.
type testOptions struct {
	Config string

	Port          string `toml:"server.port" env:"SERVER_PORT"`
	SysfsRoot     string `toml:"hal.sysfs_root" env:"HAL_SYSFS_ROOT"`
	ColorOverride string `toml:"hal.color_override" env:"HAL_COLOR_OVERRIDE"`
	Attention     bool   `toml:"hal.attention_enabled" env:"HAL_ATTENTION"`
	Debounce      int    `toml:"watcher.debounce_ms" env:"WATCHER_DEBOUNCE_MS"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromTOML(t *testing.T) {
	path := writeConfig(t, `
[server]
port = ":9090"

[hal]
sysfs_root = "/tmp/fake-sysfs"
color_override = "0xFF0000"
attention_enabled = true

[watcher]
debounce_ms = 500
`)

	opts := &testOptions{Config: path, Port: ":8090"}
	if err := Load(opts, nil); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if opts.Port != ":9090" {
		t.Errorf("Port = %q, want %q", opts.Port, ":9090")
	}
	if opts.SysfsRoot != "/tmp/fake-sysfs" {
		t.Errorf("SysfsRoot = %q, want %q", opts.SysfsRoot, "/tmp/fake-sysfs")
	}
	if opts.ColorOverride != "0xFF0000" {
		t.Errorf("ColorOverride = %q, want %q", opts.ColorOverride, "0xFF0000")
	}
	if !opts.Attention {
		t.Error("Attention = false, want true")
	}
	if opts.Debounce != 500 {
		t.Errorf("Debounce = %d, want 500", opts.Debounce)
	}
}

func TestEnvOverridesTOML(t *testing.T) {
	path := writeConfig(t, `
[server]
port = ":9090"
`)

	t.Setenv("LIGHTNODE_SERVER_PORT", ":7070")

	opts := &testOptions{Config: path}
	if err := Load(opts, nil); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if opts.Port != ":7070" {
		t.Errorf("Port = %q, want env override %q", opts.Port, ":7070")
	}
}

func TestChangedFlagKeepsPrecedence(t *testing.T) {
	path := writeConfig(t, `
[server]
port = ":9090"
`)

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("port", ":8090", "")
	if err := cmd.Flags().Set("port", ":6060"); err != nil {
		t.Fatal(err)
	}

	opts := &testOptions{Config: path, Port: ":6060"}
	if err := Load(opts, cmd); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if opts.Port != ":6060" {
		t.Errorf("Port = %q, want CLI value %q", opts.Port, ":6060")
	}
}

func TestFieldNameToFlag(t *testing.T) {
	cases := map[string]string{
		"Port":          "port",
		"SysfsRoot":     "sysfs-root",
		"LoggingLevel":  "logging-level",
		"ColorOverride": "color-override",
	}
	for field, want := range cases {
		if got := fieldNameToFlag(field); got != want {
			t.Errorf("fieldNameToFlag(%q) = %q, want %q", field, got, want)
		}
	}
}

func TestMissingFileKeepsDefaults(t *testing.T) {
	opts := &testOptions{Config: "/nonexistent/config.toml", Port: ":8090"}
	if err := Load(opts, nil); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if opts.Port != ":8090" {
		t.Errorf("Port = %q, want default %q", opts.Port, ":8090")
	}
}

func TestInvalidTOMLReturnsError(t *testing.T) {
	path := writeConfig(t, "this is { not toml")

	opts := &testOptions{Config: path}
	if err := Load(opts, nil); err == nil {
		t.Error("Load() with invalid TOML should return error")
	}
}

func TestLoadLoggingConfig(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
format = "json"
hal = "warn"
api = "error"
`)

	cfg := LoadLoggingConfig(path)
	if cfg.Level != "debug" {
		t.Errorf("Level = %q, want %q", cfg.Level, "debug")
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want %q", cfg.Format, "json")
	}
	if cfg.Modules["hal"] != "warn" {
		t.Errorf("Modules[hal] = %q, want %q", cfg.Modules["hal"], "warn")
	}
	if cfg.Modules["api"] != "error" {
		t.Errorf("Modules[api] = %q, want %q", cfg.Modules["api"], "error")
	}
}

func TestLoadLoggingConfigMissingFile(t *testing.T) {
	cfg := LoadLoggingConfig("/nonexistent/config.toml")
	if cfg.Level != "info" || cfg.Format != "text" {
		t.Errorf("defaults = %q/%q, want info/text", cfg.Level, cfg.Format)
	}
}
