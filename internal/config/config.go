// Package config holds the fizzbuzz CLI configuration.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/input"
	"github.com/csknk/fizzbuzz-no-modulus-operator/internal/logger"
)

// Config holds CLI configuration
type Config struct {
	Prompt  string        `yaml:"prompt"`
	Logging logger.Config `yaml:"logging"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Prompt:  input.DefaultPrompt,
		Logging: logger.DefaultConfig(),
	}
}

// Load reads a YAML file and overlays it on DefaultConfig.
// Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML data on top of DefaultConfig
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Prompt == "" {
		cfg.Prompt = input.DefaultPrompt
	}
	return cfg, nil
}
