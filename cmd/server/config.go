package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration, read from a YAML file with
// environment overrides for the bits deployments usually touch.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`
	// StorePath is the saved-filter JSON file.
	StorePath string `yaml:"store_path"`
	// SampleSize and SampleSeed drive the generated employee data set.
	SampleSize int   `yaml:"sample_size"`
	SampleSeed int64 `yaml:"sample_seed"`
	// SimulatedLatencyMS delays every response by a fixed amount to mimic
	// a slow network during UI development. Zero disables it.
	SimulatedLatencyMS int `yaml:"simulated_latency_ms"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Addr:       ":8080",
		StorePath:  "filters.json",
		SampleSize: 50,
		SampleSeed: 42,
	}
}

// LoadConfig reads the YAML config file at path. A missing file yields the
// defaults; a malformed one is an error. PORT, when set, overrides the
// listen address.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if cfg.SampleSize <= 0 {
		cfg.SampleSize = DefaultConfig().SampleSize
	}

	return cfg, nil
}
