package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"tactics/internal/dictionary"
)

// YAMLConfig represents the structure of the config.yaml file.
// Dictionary seeds are easier to manage in YAML than env vars.
type YAMLConfig struct {
	Dictionaries []dictionary.Tactic `yaml:"dictionaries"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SeedDictionaries returns the dictionaries new sessions start with: the
// file's dictionaries section when present, otherwise the built-in defaults.
func (c *Config) SeedDictionaries() *dictionary.Store {
	if c.File == nil || len(c.File.Dictionaries) == 0 {
		return dictionary.Default()
	}
	return dictionary.FromTactics(c.File.Dictionaries)
}
