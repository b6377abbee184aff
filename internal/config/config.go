package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth      = 1000
	DefaultHeight     = 800
	DefaultMargin     = 50.0
	DefaultBackground = "#1e1e2e"
	DefaultHTMLOut    = "album.html"
)

// Config holds the presentation settings shared by the exporters and
// the terminal viewer. The core model does not read it.
type Config struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Output OutputConfig `yaml:"output"`
}

type CanvasConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Margin     float64 `yaml:"margin"`
	Background string  `yaml:"background"`
}

type OutputConfig struct {
	HTML string `yaml:"html"`
	PDF  string `yaml:"pdf"`
	PNG  string `yaml:"png"`
}

func DefaultConfig() *Config {
	return &Config{
		Canvas: CanvasConfig{
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Margin:     DefaultMargin,
			Background: DefaultBackground,
		},
		Output: OutputConfig{
			HTML: DefaultHTMLOut,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas dimensions must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.Margin < 0 {
		return fmt.Errorf("canvas margin must be non-negative, got %g", c.Canvas.Margin)
	}
	return nil
}
