package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MikeBeaton/macos-boot-helper/nvram"
)

// Config is the optional nvramctl configuration file.
type Config struct {
	// WideNamespaces lists extra namespace GUIDs whose payloads are known
	// to hold wide-character text. They extend the built-in QEMU pair.
	WideNamespaces []string `yaml:"wide_namespaces"`
}

func loadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &c, nil
}

// buildRenderer returns the renderer for this invocation, with any
// configured wide namespaces applied.
func buildRenderer() (*nvram.Renderer, error) {
	r := nvram.NewRenderer()
	if configPath == "" {
		return r, nil
	}
	c, err := loadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyConfig(r, c); err != nil {
		return nil, err
	}
	return r, nil
}

func applyConfig(r *nvram.Renderer, c *Config) error {
	for _, s := range c.WideNamespaces {
		ns, err := nvram.ParseNamespace(s)
		if err != nil {
			return fmt.Errorf("config: bad namespace %q: %w", s, err)
		}
		r.AddWideNamespace(ns)
	}
	return nil
}
