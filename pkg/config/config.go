// Package config loads the engine configuration: which navigator names are
// overlay-style, which one hosts the detail pane, and what the reference
// path resolver accepts. Built-in defaults are embedded; a user file
// overlays them.
package config

import (
	_ "embed"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/wayfind/pkg/errors"
	"github.com/arthur-debert/wayfind/pkg/kinds"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Navigators configures navigator kind classification
type Navigators struct {
	// Modal lists the overlay-style navigator names
	Modal []string `toml:"modal"`

	// Detail names the central detail-pane navigator
	Detail string `toml:"detail"`

	// DetailParam is the route param carrying the open detail identifier
	DetailParam string `toml:"detail_param"`

	// Roots lists accepted top-level path segments; empty accepts any
	Roots []string `toml:"roots"`
}

// Config is the full engine configuration
type Config struct {
	Navigators Navigators `toml:"navigators"`
}

// Default returns the embedded built-in configuration
func Default() *Config {
	cfg := &Config{}
	// The embedded file is validated by tests; a decode failure here is a
	// build defect, not a runtime condition.
	if err := toml.Unmarshal(defaultConfig, cfg); err != nil {
		panic(err)
	}
	return cfg
}

// Load returns the defaults overlaid with the TOML file at path. An empty
// path returns the defaults untouched.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot read config file %s", path)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "cannot parse config file %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot classify against
func (c *Config) Validate() error {
	seen := make(map[string]bool, len(c.Navigators.Modal))
	for _, name := range c.Navigators.Modal {
		if name == "" {
			return errors.New(errors.ErrConfigParse, "navigators.modal contains an empty name")
		}
		if seen[name] {
			return errors.Newf(errors.ErrConfigParse, "navigators.modal lists %q twice", name)
		}
		if name == c.Navigators.Detail {
			return errors.Newf(errors.ErrConfigParse, "navigator %q cannot be both modal and detail", name)
		}
		seen[name] = true
	}
	return nil
}

// KindTable builds the classification table this configuration describes
func (c *Config) KindTable() (*kinds.Table, error) {
	list := make([]kinds.Kind, 0, len(c.Navigators.Modal)+1)
	for _, name := range c.Navigators.Modal {
		list = append(list, kinds.Kind{Name: name, Modal: true})
	}
	if c.Navigators.Detail != "" {
		list = append(list, kinds.Kind{Name: c.Navigators.Detail, Detail: true})
	}
	table, err := kinds.NewTable(list...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "navigator kinds do not form a valid table")
	}
	return table, nil
}
