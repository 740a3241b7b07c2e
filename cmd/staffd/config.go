package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the flags cobra already exposes (all but
// --max-records), so an operator can pin them in a file instead of a long
// command line. Any non-zero value set in the file overrides the matching
// flag; see resolveConfig.
type fileConfig struct {
	Port        int    `yaml:"port"`
	MaxClients  int    `yaml:"maxClients"`
	LogLevel    string `yaml:"logLevel"`
	LogJSON     bool   `yaml:"logJSON"`
	MetricsAddr string `yaml:"metricsAddr"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
