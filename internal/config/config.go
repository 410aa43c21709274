package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sakshamxt/fringe/internal/field"
	"github.com/sakshamxt/fringe/internal/rain"
)

const (
	DefaultFPS           = 30
	DefaultTickIncrement = 0.15
	DefaultTheme         = "aurora"
)

// Config is the full tunable surface of both variants. Everything here is
// a presentation constant; there are no runtime knobs beyond it.
type Config struct {
	Variant       string  `yaml:"variant"` // wave or rain
	FPS           int     `yaml:"fps"`
	Theme         string  `yaml:"theme"`
	Seed          int64   `yaml:"seed"`
	TickIncrement float64 `yaml:"tick_increment"`

	Wave WaveConfig `yaml:"wave"`
	Rain RainConfig `yaml:"rain"`
}

type WaveConfig struct {
	Wavenumber     float64 `yaml:"wavenumber"`
	Speed          float64 `yaml:"speed"`
	Gain           float64 `yaml:"gain"`
	Attenuation    float64 `yaml:"attenuation"`
	SeparationFrac float64 `yaml:"separation_frac"`
	GapRadius      int     `yaml:"gap_radius"`
}

type RainConfig struct {
	RespawnProb float64 `yaml:"respawn_prob"`
	FadeStep    float64 `yaml:"fade_step"`
	CharSet     string  `yaml:"charset"`
}

func DefaultConfig() *Config {
	fp := field.DefaultParams()
	rp := rain.DefaultParams()
	return &Config{
		Variant:       "wave",
		FPS:           DefaultFPS,
		Theme:         DefaultTheme,
		TickIncrement: DefaultTickIncrement,
		Wave: WaveConfig{
			Wavenumber:     fp.Wavenumber,
			Speed:          fp.Speed,
			Gain:           fp.Gain,
			Attenuation:    fp.Attenuation,
			SeparationFrac: fp.SeparationFrac,
			GapRadius:      fp.GapRadius,
		},
		Rain: RainConfig{
			RespawnProb: rp.RespawnProb,
			FadeStep:    rp.FadeStep,
			CharSet:     "matrix",
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
		return nil, fmt.Errorf("parse %s: %w", path, err)
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

// FieldParams projects the wave section onto field.Params, keeping the
// color defaults for the theme layer to override.
func (c *Config) FieldParams() field.Params {
	p := field.DefaultParams()
	p.Wavenumber = c.Wave.Wavenumber
	p.Speed = c.Wave.Speed
	p.Gain = c.Wave.Gain
	p.Attenuation = c.Wave.Attenuation
	p.SeparationFrac = c.Wave.SeparationFrac
	p.GapRadius = c.Wave.GapRadius
	return p
}

// RainParams projects the rain section onto rain.Params. An unknown
// charset name falls back to the default set.
func (c *Config) RainParams() rain.Params {
	p := rain.DefaultParams()
	p.RespawnProb = c.Rain.RespawnProb
	p.FadeStep = c.Rain.FadeStep
	if set, ok := rain.CharSets[c.Rain.CharSet]; ok {
		p.CharSet = set
	}
	return p
}
