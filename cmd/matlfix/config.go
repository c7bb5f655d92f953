package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/woozymasta/matl"
)

// Config holds matlfix settings. Values come from an optional TOML file
// and are overridden by command line flags.
type Config struct {
	Shaders  string `toml:"shaders"`   // Shader descriptor document
	Presets  string `toml:"presets"`   // Preset material document
	LogLevel string `toml:"log_level"` // debug, info, warn or error
	Format   string `toml:"format"`    // Output format, empty follows the file extension
	Indent   string `toml:"indent"`    // JSON indentation
}

// DefaultConfig returns the settings used without a config file.
func DefaultConfig() Config {
	return Config{LogLevel: "warn", Indent: "  "}
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// returns the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// merge copies the flag values that were set on the command line.
func (c *Config) merge(flags Config, changed func(name string) bool) {
	if changed("shaders") {
		c.Shaders = flags.Shaders
	}
	if changed("presets") {
		c.Presets = flags.Presets
	}
	if changed("log-level") {
		c.LogLevel = flags.LogLevel
	}
	if changed("format") {
		c.Format = flags.Format
	}
	if changed("indent") {
		c.Indent = flags.Indent
	}
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}

	return l, nil
}

// DocumentFormat parses Format. Empty means the output file extension decides.
func (c Config) DocumentFormat() (matl.DocumentFormat, error) {
	switch f := matl.DocumentFormat(strings.ToLower(c.Format)); f {
	case "", matl.FormatJSON, matl.FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", matl.ErrUnknownFormat, c.Format)
	}
}
