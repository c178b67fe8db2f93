package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/assistant/internal/logging"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no --config flag is given.
const DefaultPath = "assistant.yaml"

// Config holds the settings of the assistant CLI.
type Config struct {
	Prompt         string `yaml:"prompt" json:"prompt"`
	Banner         bool   `yaml:"banner" json:"banner"`
	RenderMarkdown bool   `yaml:"render_markdown" json:"render_markdown"`
	JSON           bool   `yaml:"json" json:"json"`
	MaxInputSize   int    `yaml:"max_input_size" json:"max_input_size"`
	LogLevel       string `yaml:"log_level" json:"log_level"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Prompt:       "> ",
		Banner:       true,
		MaxInputSize: 4096,
		LogLevel:     "info",
	}
}

// Load reads a configuration file (YAML or JSON) on top of Default.
// A missing file is not an error and yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if c.MaxInputSize <= 0 {
		return fmt.Errorf("max_input_size must be positive, got %d", c.MaxInputSize)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}
