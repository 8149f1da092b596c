package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is ddcli's on-disk configuration.
type Config struct {
	Algorithm AlgorithmConfig `yaml:"algorithm"`
	Oracle    OracleConfig    `yaml:"oracle"`
	Cache     CacheConfig     `yaml:"cache"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// AlgorithmConfig selects and parameterizes the reduction algorithm.
type AlgorithmConfig struct {
	// Name is one of "ddmin", "zipmin", "probdd", "hdd".
	Name string `yaml:"name"`
	// Parser names the node.Parser to use when Name is "hdd": "elf" or
	// "lines".
	Parser string `yaml:"parser"`
	// Inner names the flat algorithm HDD lifts: one of "ddmin", "zipmin",
	// "probdd". Only consulted when Name is "hdd".
	Inner string `yaml:"inner"`
}

// OracleConfig describes how to classify a candidate reduction.
type OracleConfig struct {
	// Command is a shell command run with the candidate's path substituted
	// for the literal token "{}" (e.g. "./crash.sh {}"). A zero exit
	// status is Pass; any other status is Fail.
	Command string `yaml:"command"`
	// TimeoutSeconds bounds a single oracle invocation; 0 means no bound.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// CacheConfig selects the oracle cache discipline.
type CacheConfig struct {
	// Kind is "hash" or "tree"; anything else disables caching.
	Kind string `yaml:"kind"`
}

// LoggingConfig configures the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns ddcli's out-of-the-box configuration.
func DefaultConfig() *Config {
	return &Config{
		Algorithm: AlgorithmConfig{Name: "ddmin"},
		Oracle:    OracleConfig{TimeoutSeconds: 30},
		Cache:     CacheConfig{Kind: "hash"},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
	}
}

// LoadConfig reads a YAML config file, falling back to DefaultConfig when
// path does not exist.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}
