package cmd

import (
	"os"

	"github.com/goccy/go-yaml"
)

// replConfig is the shape of an optional --config YAML file: the REPL
// prompt string, whether to color diagnostics, and a searchDepth value.
// searchDepth is read from the file but nothing uses it; the REPL does
// not search for .lox files.
type replConfig struct {
	Prompt      string `yaml:"prompt"`
	Color       bool   `yaml:"color"`
	SearchDepth int    `yaml:"searchDepth"`
}

func defaultConfig() replConfig {
	return replConfig{Prompt: "> ", Color: true, SearchDepth: 0}
}

func loadConfig(path string) (replConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
