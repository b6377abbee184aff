package config

import "sort"

// Presets are ready-made canvas profiles for common output targets.
var Presets = map[string]*Config{
	"screen": {
		Canvas: CanvasConfig{Width: 1000, Height: 800, Margin: 50, Background: "#1e1e2e"},
		Output: OutputConfig{HTML: "album.html"},
	},
	"web": {
		Canvas: CanvasConfig{Width: 1280, Height: 720, Margin: 40, Background: "#ffffff"},
		Output: OutputConfig{HTML: "album.html"},
	},
	"print": {
		Canvas: CanvasConfig{Width: 2100, Height: 2970, Margin: 100, Background: "#ffffff"},
		Output: OutputConfig{HTML: "album.html", PDF: "album.pdf"},
	},
	"thumbnail": {
		Canvas: CanvasConfig{Width: 320, Height: 240, Margin: 10, Background: "#1e1e2e"},
		Output: OutputConfig{PNG: "album.png"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
