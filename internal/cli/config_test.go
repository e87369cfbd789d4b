package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigFromMissing(t *testing.T) {
	cfg, err := loadConfigFrom(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("missing config should not error, got %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("missing config should yield defaults, got %+v", cfg)
	}
}

func TestLoadConfigFromPartial(t *testing.T) {
	path := writeConfigFile(t, "[serve]\naddr = \"localhost:9000\"\n")

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom() error: %v", err)
	}
	if got, want := cfg.Serve.Addr, "localhost:9000"; got != want {
		t.Errorf("serve addr = %q, want %q", got, want)
	}
	// Keys absent from the file keep their built-in values.
	if got, want := cfg.Graph.Format, "dot"; got != want {
		t.Errorf("graph format = %q, want %q", got, want)
	}
	if !cfg.Dump.Indent {
		t.Error("dump indent should stay at its default")
	}
}

func TestLoadConfigFromFull(t *testing.T) {
	path := writeConfigFile(t, `
[graph]
format = "svg"
direction = "LR"

[serve]
addr = "0.0.0.0:8080"

[dump]
indent = false
`)

	cfg, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("loadConfigFrom() error: %v", err)
	}
	want := Config{
		Graph: GraphConfig{Format: "svg", Direction: "LR"},
		Serve: ServeConfig{Addr: "0.0.0.0:8080"},
		Dump:  DumpConfig{Indent: false},
	}
	if cfg != want {
		t.Errorf("config = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfigFromMalformed(t *testing.T) {
	path := writeConfigFile(t, "[graph\nformat = ")

	cfg, err := loadConfigFrom(path)
	if err == nil {
		t.Fatal("malformed config should return an error")
	}
	// Defaults still apply so the CLI keeps working.
	if cfg != defaultConfig() {
		t.Errorf("malformed config should yield defaults, got %+v", cfg)
	}
}

func TestConfigPathXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := configPath()
	if err != nil {
		t.Fatalf("configPath() error: %v", err)
	}
	if want := filepath.Join("/tmp/xdg", "xcproj", "config.toml"); path != want {
		t.Errorf("configPath() = %q, want %q", path, want)
	}
}

func TestGraphFlagDefaultsFromConfig(t *testing.T) {
	c := &CLI{Logger: newTestCLI().Logger, cfg: Config{
		Graph: GraphConfig{Format: "svg", Direction: "LR"},
		Serve: ServeConfig{Addr: "localhost:1234"},
	}}

	cmd := c.graphCommand()
	if got := cmd.Flags().Lookup("format").DefValue; got != "svg" {
		t.Errorf("format default = %q, want %q", got, "svg")
	}
	if got := cmd.Flags().Lookup("direction").DefValue; got != "LR" {
		t.Errorf("direction default = %q, want %q", got, "LR")
	}

	// A flag given on the command line wins over the config value.
	if err := cmd.Flags().Parse([]string{"--format", "png"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	got, err := cmd.Flags().GetString("format")
	if err != nil {
		t.Fatalf("get format flag: %v", err)
	}
	if got != "png" {
		t.Errorf("format after parse = %q, want %q", got, "png")
	}
}

func TestServeFlagDefaultsFromConfig(t *testing.T) {
	c := &CLI{Logger: newTestCLI().Logger, cfg: Config{Serve: ServeConfig{Addr: "localhost:4321"}}}

	cmd := c.serveCommand()
	if got := cmd.Flags().Lookup("addr").DefValue; got != "localhost:4321" {
		t.Errorf("addr default = %q, want %q", got, "localhost:4321")
	}
}
