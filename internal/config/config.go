package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// OutputDir is where the diff report is written.
	OutputDir string `yaml:"output_dir"`
	Log       Log    `yaml:"log"`
}

type Log struct {
	Level string `yaml:"level"`
}

func DefaultConfig() *Config {
	return &Config{
		OutputDir: ".",
		Log: Log{
			Level: "info",
		},
	}
}

// LoadConfig reads a YAML config from path. A missing file is not an
// error; defaults are returned instead.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	// Fill back defaults for fields the file left empty
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}
