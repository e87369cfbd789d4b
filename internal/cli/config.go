package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// Config Types
// =============================================================================

// Config is the user configuration, read from config.toml in the xcproj
// config directory. Every field has a built-in default; values from the file
// become flag defaults, so flags given on the command line always win.
type Config struct {
	Graph GraphConfig `toml:"graph"`
	Serve ServeConfig `toml:"serve"`
	Dump  DumpConfig  `toml:"dump"`
}

// GraphConfig holds defaults for the graph command.
type GraphConfig struct {
	// Format is the output format: dot, svg, or png.
	Format string `toml:"format"`

	// Direction is the rank direction: TB or LR.
	Direction string `toml:"direction"`
}

// ServeConfig holds defaults for the serve command.
type ServeConfig struct {
	// Addr is the listen address.
	Addr string `toml:"addr"`
}

// DumpConfig holds defaults for the dump command.
type DumpConfig struct {
	// Indent enables pretty-printed JSON output.
	Indent bool `toml:"indent"`
}

// =============================================================================
// Loading
// =============================================================================

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Graph: GraphConfig{Format: "dot", Direction: "TB"},
		Serve: ServeConfig{Addr: "localhost:7887"},
		Dump:  DumpConfig{Indent: true},
	}
}

// loadConfig reads the user config file when present. A missing file is not
// an error; the defaults apply.
func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return defaultConfig(), nil
	}
	return loadConfigFrom(path)
}

// loadConfigFrom decodes path over the defaults, so keys absent from the
// file keep their built-in values. A malformed file returns the defaults
// plus the parse error; callers can warn without losing the CLI.
func loadConfigFrom(path string) (Config, error) {
	cfg := defaultConfig()
	if _, err := os.Stat(path); err != nil {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// configPath returns the config file location using the XDG standard
// (~/.config/xcproj/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
