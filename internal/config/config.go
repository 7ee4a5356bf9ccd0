// Package config loads the optional .jot.yaml file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/ident"
)

// FileName is the config file looked up in the working directory.
const FileName = ".jot.yaml"

// IDConfig selects the id generator.
type IDConfig struct {
	Kind   string `yaml:"kind"`
	Length int    `yaml:"length"`
}

// Config is the file layout.
type Config struct {
	ID          IDConfig `yaml:"id"`
	EventBuffer int      `yaml:"event_buffer"`
	Color       *bool    `yaml:"color,omitempty"`
	LogLevel    string   `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		ID:          IDConfig{Kind: "numeric", Length: ident.DefaultLength},
		EventBuffer: core.DefaultEventBuffer,
		LogLevel:    "info",
	}
}

// Load reads path. A missing file yields Default.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(bytes.NewReader(data))
}

// LoadDir reads FileName from dir.
func LoadDir(dir string) (Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Parse decodes a config over the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if _, err := ident.FromName(c.ID.Kind, c.ID.Length); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.ID.Length < 0 {
		return fmt.Errorf("config: id.length must be positive, got %d", c.ID.Length)
	}
	if c.EventBuffer < 0 {
		return fmt.Errorf("config: event_buffer must be positive, got %d", c.EventBuffer)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level maps log_level to a slog level.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("config: unknown log_level %q", c.LogLevel)
}

// Generator builds the configured id generator.
func (c Config) Generator() (ident.Generator, error) {
	return ident.FromName(c.ID.Kind, c.ID.Length)
}

// ColorEnabled resolves the color setting, falling back to def when unset.
func (c Config) ColorEnabled(def bool) bool {
	if c.Color == nil {
		return def
	}
	return *c.Color
}
