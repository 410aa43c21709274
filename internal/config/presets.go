package config

import "sort"

// Presets are named tunings per variant. A preset starts from the defaults
// and overrides only what it names, so later default changes flow through.
var presets = map[string]map[string]func(*Config){
	"wave": {
		"classic": func(c *Config) {},
		"fine": func(c *Config) {
			c.Wave.Wavenumber = 1.4
			c.Wave.SeparationFrac = 0.28
			c.Wave.Gain = 50
		},
		"coarse": func(c *Config) {
			c.Wave.Wavenumber = 0.55
			c.Wave.SeparationFrac = 0.16
			c.Wave.Attenuation = 1.0
		},
		"slow": func(c *Config) {
			c.Wave.Speed = 1.2
			c.TickIncrement = 0.1
		},
	},
	"rain": {
		"sparse": func(c *Config) {
			c.Rain.RespawnProb = 0.008
			c.Rain.FadeStep = 0.02
		},
		"dense": func(c *Config) {
			c.Rain.RespawnProb = 0.05
			c.Rain.FadeStep = 0.06
		},
		"binary": func(c *Config) {
			c.Rain.CharSet = "binary"
		},
	},
}

// GetPreset returns the named preset applied over the defaults, or nil if
// the variant or name is unknown.
func GetPreset(variant, name string) *Config {
	byName, ok := presets[variant]
	if !ok {
		return nil
	}
	apply, ok := byName[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Variant = variant
	apply(cfg)
	return cfg
}

// ListPresets names the presets for a variant, sorted; nil for an unknown
// variant.
func ListPresets(variant string) []string {
	byName, ok := presets[variant]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
