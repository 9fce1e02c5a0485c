// Package styles defines the visual styling for wayfind's terminal output.
//
// All styles use semantic names and adaptive colors that adjust to light
// and dark terminal themes. Definitions live in an embedded YAML sheet so
// theming stays in one place.
package styles

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

//go:embed styles.yaml
var stylesYAML []byte

// ColorDef represents an adaptive color definition in YAML
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef represents a style definition in YAML
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Underline  bool   `yaml:"underline,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
}

// Config represents the complete styles configuration
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

var loaded *Config

func load() *Config {
	if loaded != nil {
		return loaded
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(stylesYAML, cfg); err != nil {
		// The sheet is embedded and covered by tests
		panic(err)
	}
	loaded = cfg
	return cfg
}

// GetStyle returns the named style, or an empty style for unknown names
func GetStyle(name string) lipgloss.Style {
	cfg := load()
	def, ok := cfg.Styles[name]
	if !ok {
		return lipgloss.NewStyle()
	}

	style := lipgloss.NewStyle().Bold(def.Bold).Italic(def.Italic).Underline(def.Underline)
	if def.Foreground != "" {
		if color, ok := cfg.Colors[def.Foreground]; ok {
			style = style.Foreground(lipgloss.AdaptiveColor{Light: color.Light, Dark: color.Dark})
		} else {
			style = style.Foreground(lipgloss.Color(def.Foreground))
		}
	}
	return style
}
