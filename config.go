package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	File           string
	ContextRadius  int
	Search         string
	Category       string
	HideDuplicates bool
}

// fileConfig mirrors the optional YAML config file. File values fill in
// defaults; explicitly set flags always win.
type fileConfig struct {
	ContextRadius  int    `yaml:"context_radius"`
	Search         string `yaml:"search"`
	Category       string `yaml:"category"`
	HideDuplicates bool   `yaml:"hide_duplicates"`
}

func LoadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return fc, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}

// applyFile merges config-file values under the flag values. The changed
// callback reports whether a flag was set explicitly on the command line.
func (c *Config) applyFile(fc fileConfig, changed func(name string) bool) {
	if fc.ContextRadius > 0 && !changed("context-radius") {
		c.ContextRadius = fc.ContextRadius
	}
	if fc.Search != "" && !changed("search") {
		c.Search = fc.Search
	}
	if fc.Category != "" && !changed("category") {
		c.Category = fc.Category
	}
	if fc.HideDuplicates && !changed("hide-duplicates") {
		c.HideDuplicates = true
	}
}
