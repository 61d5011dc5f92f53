// Package config loads the optional gnu-json-result configuration file.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/AndreyAkinshin/gnu-json-result/internal/schema"
)

// Config controls how logs are recognised and how the result is written.
type Config struct {
	Schema       string `json:"$schema,omitempty"`
	AggregateLog string `json:"aggregate_log,omitempty"`
	Extension    string `json:"extension,omitempty"`
	TailBytes    int64  `json:"tail_bytes,omitempty"`
	Format       string `json:"format,omitempty"`
}

// Default returns a Config with every field set to its default.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads and parses a config file without validation or defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Config, error) {
	var cfg Config
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// LoadAndValidate reads a config file, checks it against the embedded
// schema, applies defaults and validates the result.
func LoadAndValidate(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := schema.ValidateConfig(data); err != nil {
		return nil, err
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
