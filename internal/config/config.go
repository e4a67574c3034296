package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file at the data directory root.
const FileName = "folio.yaml"

// Config represents the top-level folio.yaml configuration.
type Config struct {
	Data    DataConfig    `yaml:"data"`
	History HistoryConfig `yaml:"history"`
	Git     GitConfig     `yaml:"git"`
}

// DataConfig locates the snapshot file inside the data directory.
type DataConfig struct {
	File string `yaml:"file"`
}

// HistoryConfig controls the default equity-curve window.
type HistoryConfig struct {
	WindowDays int `yaml:"window_days"`
}

// GitConfig controls git integration for the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a folio.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data directory.
func Default() *Config {
	return &Config{
		Data:    DataConfig{File: "portfolio.json"},
		History: HistoryConfig{WindowDays: 90},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Folio",
			AuthorEmail: "folio@localhost",
		},
	}
}

func (c *Config) applyDefaults() {
	if c.Data.File == "" {
		c.Data.File = "portfolio.json"
	}
	if c.History.WindowDays <= 0 {
		c.History.WindowDays = 90
	}
}
