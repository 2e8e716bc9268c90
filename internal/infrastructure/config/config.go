// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for persona configuration.
	DefaultConfigDir = ".persona"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
)

// Config holds generation settings (read-only after init).
type Config struct {
	Generation GenerationConfig    `yaml:"generation,omitempty"`
	Name       NameConfig          `yaml:"name,omitempty"`
	Taxonomy   map[string][]string `yaml:"taxonomy,omitempty"`
}

// GenerationConfig holds population generation defaults.
type GenerationConfig struct {
	// Count is the default population size.
	Count int `yaml:"count,omitempty"`
	// Culture selects the name tables to draw from.
	Culture string `yaml:"culture,omitempty"`
	// Seed, when non-zero, makes generation deterministic.
	Seed int64 `yaml:"seed,omitempty"`
}

// NameConfig holds the process-wide name rendering and comparison settings.
type NameConfig struct {
	// Separator is placed between name parts when rendering.
	Separator *string `yaml:"separator,omitempty"`
	// CaseSensitive toggles case-sensitive name comparison.
	CaseSensitive bool `yaml:"case_sensitive,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	sep := " "
	return &Config{
		Generation: GenerationConfig{
			Count:   100,
			Culture: "fantasy",
		},
		Name: NameConfig{
			Separator: &sep,
		},
	}
}

// Load loads configuration from the .persona directory in the given path.
// A missing config file is not an error; defaults apply.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	cfg := Default()

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		cfg.applyEnvOverrides()
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if cfg.Generation.Count < 1 {
		return nil, fmt.Errorf("generation count must be positive, got %d", cfg.Generation.Count)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PERSONA_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Generation.Seed = seed
		}
	}
	if v := os.Getenv("PERSONA_CULTURE"); v != "" {
		c.Generation.Culture = v
	}
}

// ConfigDir returns the path to the .persona config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if a persona config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
