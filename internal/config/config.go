// Package config loads per-workspace defaults from a .mason.yaml file
// at the workspace root. Every knob has a built-in default, so the file
// is optional.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up at the workspace root.
const FileName = ".mason.yaml"

const (
	defaultRule  = "cc_binary"
	defaultField = "deps"
)

// ScaffoldConfig customizes the boilerplate emitted by `mason new`.
type ScaffoldConfig struct {
	// Copyright, when set, is prepended as a comment to every emitted
	// source file.
	Copyright string `yaml:"copyright,omitempty"`
}

// Config models .mason.yaml.
type Config struct {
	// Rule is the rule-kind token identifying the block to wire
	// dependencies into.
	Rule string `yaml:"rule"`

	// Field is the list-valued field name holding dependencies.
	Field string `yaml:"field"`

	Scaffold ScaffoldConfig `yaml:"scaffold"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{Rule: defaultRule, Field: defaultField}
}

// Load reads .mason.yaml from the given workspace root. A missing file
// yields the defaults; a malformed one is an error so a typo never
// silently reverts to defaults.
func Load(root string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("config: read %s: %w", FileName, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", FileName, err)
	}

	if cfg.Rule == "" {
		cfg.Rule = defaultRule
	}

	if cfg.Field == "" {
		cfg.Field = defaultField
	}

	return cfg, nil
}
