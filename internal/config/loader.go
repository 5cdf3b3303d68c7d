package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at path. A missing file yields the defaults;
// a malformed or invalid one is an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MISTRAL_API_KEY"); v != "" {
		cfg.Transcriber.Mistral.APIKey = v
	}

	var llmKey string
	switch cfg.LLM.Provider {
	case LLMAnthropic:
		llmKey = os.Getenv("ANTHROPIC_API_KEY")
	case LLMGemini, "":
		llmKey = os.Getenv("GEMINI_API_KEY")
	}
	if llmKey != "" {
		cfg.LLM.APIKey = llmKey
	}
}
