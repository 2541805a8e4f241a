package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/crowdviz/internal/gradient"
	"github.com/san-kum/crowdviz/internal/trajectory"
)

// Default presentation parameters.
const (
	DefaultWorldSize   = 100.0
	DefaultLegendWidth = 40
	DefaultFrameRate   = 30
)

// Config is the presentation-layer configuration: the simulation world
// rectangle used to seed the default view, and one gradient spec per
// quantity.
type Config struct {
	View      trajectory.Rect         `yaml:"view"`
	Gradients map[string]GradientSpec `yaml:"gradients"`
}

// GradientSpec is the YAML form of a gradient. Steps 0 (or omitted) means
// continuous; values >= 2 quantize into that many bands.
type GradientSpec struct {
	Bottom   gradient.HSV `yaml:"bottom"`
	Top      gradient.HSV `yaml:"top"`
	Steps    int          `yaml:"steps"`
	Range    RangeSpec    `yaml:"range"`
	Discrete bool         `yaml:"discrete"`
	Labels   []string     `yaml:"labels,omitempty"`
}

type RangeSpec struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

// DefaultConfig mirrors gradient.Default with a unit-origin square world.
func DefaultConfig() *Config {
	cfg := &Config{
		View:      trajectory.Rect{X: 0, Y: 0, Width: DefaultWorldSize, Height: DefaultWorldSize},
		Gradients: make(map[string]GradientSpec),
	}
	m := gradient.Default()
	for _, q := range gradient.Quantities {
		g, err := m.Gradient(q)
		if err != nil {
			continue
		}
		cfg.Gradients[string(q)] = GradientSpec{
			Bottom:   g.Bottom,
			Top:      g.Top,
			Steps:    g.Steps,
			Range:    RangeSpec{Lo: g.Lo, Hi: g.Hi},
			Discrete: g.Discrete,
			Labels:   g.Labels,
		}
	}
	return cfg
}

// Load reads a config file, applying defaults for anything unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Mapper builds a gradient.Mapper from the configured specs.
func (c *Config) Mapper() (*gradient.Mapper, error) {
	m := gradient.NewMapper()
	for name, spec := range c.Gradients {
		g := gradient.Gradient{
			Bottom:   spec.Bottom,
			Top:      spec.Top,
			Steps:    spec.Steps,
			Lo:       spec.Range.Lo,
			Hi:       spec.Range.Hi,
			Discrete: spec.Discrete,
			Labels:   spec.Labels,
		}
		if err := m.Set(gradient.Quantity(name), g); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return m, nil
}
