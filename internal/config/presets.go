package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/pushoff/internal/match"
)

var Presets = map[string]func(*Config){
	// charge-up pushes in an open arena with popping grass blocks
	"classic": func(c *Config) {
		c.Features = match.Features{Charge: true, Obstacles: true}
	},
	// no charge, no obstacles, a central platform to fight on
	"platform": func(c *Config) {
		c.Features = match.Features{Platform: true}
	},
	"open": func(c *Config) {
		c.Features = match.Features{}
	},
	"brawl": func(c *Config) {
		c.Features = match.Features{Charge: true, Obstacles: true, Platform: true}
		c.Obstacles.Interval = 60
	},
	"collect": func(c *Config) {
		c.Mode = ModeCollect
		c.Features = match.Features{}
		c.Players = PlayersConfig{P1: PlayerKeys, P2: PlayerNone}
	},
}

// GetPreset returns the default configuration with the named preset applied.
func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	cfg := DefaultConfig()
	cfg.Preset = name
	apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
