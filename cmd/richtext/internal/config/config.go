// Package config loads the optional richtext.yaml tool configuration.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the optional richtext.yaml configuration.
type Config struct {
	Style StyleConfig `yaml:"style"`
	Emit  EmitConfig  `yaml:"emit"`
}

// StyleConfig contains base styling applied to parsed content.
type StyleConfig struct {
	FontFamily string  `yaml:"fontFamily,omitempty"`
	FontSize   float64 `yaml:"fontSize,omitempty"`
	CodeFamily string  `yaml:"codeFamily,omitempty"`
}

// EmitConfig contains emission settings.
type EmitConfig struct {
	TextScale         float64 `yaml:"textScale,omitempty"`
	PlaceholderWidth  float64 `yaml:"placeholderWidth,omitempty"`
	PlaceholderHeight float64 `yaml:"placeholderHeight,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	FontFamily        string
	FontSize          float64
	CodeFamily        string
	TextScale         float64
	PlaceholderWidth  float64
	PlaceholderHeight float64
}

// LoadOptional reads richtext.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "richtext.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read richtext.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse richtext.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads richtext.yaml (if present) and fills in defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	resolved := &Resolved{
		FontFamily:        cfg.Style.FontFamily,
		FontSize:          cfg.Style.FontSize,
		CodeFamily:        cfg.Style.CodeFamily,
		TextScale:         cfg.Emit.TextScale,
		PlaceholderWidth:  cfg.Emit.PlaceholderWidth,
		PlaceholderHeight: cfg.Emit.PlaceholderHeight,
	}
	if resolved.CodeFamily == "" {
		resolved.CodeFamily = "monospace"
	}
	if resolved.TextScale <= 0 {
		resolved.TextScale = 1
	}
	if resolved.PlaceholderWidth <= 0 {
		resolved.PlaceholderWidth = 16
	}
	if resolved.PlaceholderHeight <= 0 {
		resolved.PlaceholderHeight = 16
	}
	return resolved, nil
}
