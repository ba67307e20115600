package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/scenepipe/stringkit/debug"
)

// tokenizerConfig mirrors the flags of the tokenize command so that a
// recurring delimiter setup can live in a file instead of a shell
// alias.
type tokenizerConfig struct {
	Mode       string `yaml:"mode"`
	Delimiters string `yaml:"delimiters"`
	Open       string `yaml:"open"`
	Close      string `yaml:"close"`
	Escape     string `yaml:"escape"`
}

func loadTokenizerConfig(path string) (*tokenizerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &tokenizerConfig{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config %s: %w", path, err)
	}
	if debug.Config() {
		debug.Logf("loaded config %s: %s\n", path, debug.JSON(cfg))
	}
	return cfg, nil
}
