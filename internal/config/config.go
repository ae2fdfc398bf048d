package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/uj-wmii-pwj-2025/MateuszJedrkowiak-zad-08-test-engine/internal/schema"
)

// LoadAndValidate reads a config file, checks it against the embedded schema,
// applies defaults and validates it. Warnings describe ignored fields.
func LoadAndValidate(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := schema.ValidateConfig(data); err != nil {
		return nil, nil, err
	}

	cfg, warnings, err := LoadWithWarnings(data)
	if err != nil {
		return nil, nil, err
	}

	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, warnings, err
	}

	if cfg.Manifest != "" && !filepath.IsAbs(cfg.Manifest) {
		cfg.Manifest = filepath.Join(filepath.Dir(path), cfg.Manifest)
	}

	return cfg, warnings, nil
}

// Resolve picks the config file to use: explicit wins, then the
// TESTENGINE_CONFIG environment variable, then testengine.json in dir if it
// exists. An empty result means no config file; defaults apply.
func Resolve(explicit, dir string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return path, nil
}
