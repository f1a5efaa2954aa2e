// Package config holds process-level configuration: where the database
// lives and how output is rendered. Persisted user preferences (theme,
// first-run marker) live in the database, not here.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration.
type Config struct {
	// DBPath is the SQLite database file. Defaults to ~/.strive/strive.db.
	DBPath string `koanf:"db_path"`

	// ChartWidth is the width in cells of bar charts and progress bars.
	ChartWidth int `koanf:"chart_width"`

	// DefaultSort orders goal listings when no --sort flag is given:
	// "progress" or "deadline".
	DefaultSort string `koanf:"default_sort"`
}

// New returns a Config with defaults. DBPath is left empty when the
// home directory cannot be resolved; Load rejects that case.
func New() *Config {
	cfg := &Config{
		ChartWidth:  30,
		DefaultSort: "progress",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.DBPath = filepath.Join(home, ".strive", "strive.db")
	}
	return cfg
}

// Load builds a Config by layering defaults, an optional YAML file, and
// environment variables.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. file (YAML) if STRIVE_CONFIG is set
//  3. env (prefix STRIVE_, e.g. STRIVE_DB_PATH)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("STRIVE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	// STRIVE_DB_PATH -> db_path, matching the koanf tags on the struct.
	envProvider := env.Provider("STRIVE_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "strive_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("loading env config: %w", err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if cfg.DBPath == "" {
		return nil, errors.New("db_path must not be empty")
	}
	if cfg.ChartWidth < 10 {
		cfg.ChartWidth = 10
	}
	return &cfg, nil
}
