package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Variant != "wave" {
		t.Errorf("expected variant wave, got %s", cfg.Variant)
	}
	if cfg.FPS <= 0 {
		t.Error("fps should be positive")
	}
	if cfg.TickIncrement <= 0 {
		t.Error("tick increment should be positive")
	}
	if cfg.Wave.Gain <= 0 {
		t.Error("gain should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("wave", "fine")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Wave.Wavenumber != 1.4 {
		t.Errorf("expected wavenumber 1.4, got %f", cfg.Wave.Wavenumber)
	}
	if cfg.Variant != "wave" {
		t.Errorf("preset should carry its variant, got %s", cfg.Variant)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("wave", "nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
	if cfg := GetPreset("nonexistent", "fine"); cfg != nil {
		t.Error("expected nil for nonexistent variant")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("wave")) == 0 {
		t.Error("expected presets for wave")
	}
	if len(ListPresets("rain")) == 0 {
		t.Error("expected presets for rain")
	}
	if ListPresets("nonexistent") != nil {
		t.Error("expected nil for nonexistent variant")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fringe.yaml")

	cfg := DefaultConfig()
	cfg.Theme = "ember"
	cfg.Wave.Gain = 33
	cfg.Rain.CharSet = "binary"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Theme != "ember" || loaded.Wave.Gain != 33 || loaded.Rain.CharSet != "binary" {
		t.Errorf("round-trip lost values: %+v", loaded)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParamProjection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Wave.Wavenumber = 2.0
	if got := cfg.FieldParams().Wavenumber; got != 2.0 {
		t.Errorf("FieldParams wavenumber = %v, want 2.0", got)
	}

	cfg.Rain.CharSet = "binary"
	p := cfg.RainParams()
	if len(p.CharSet) != 2 {
		t.Errorf("expected binary charset, got %d runes", len(p.CharSet))
	}

	cfg.Rain.CharSet = "unknown"
	if p := cfg.RainParams(); len(p.CharSet) == 0 {
		t.Error("unknown charset should fall back to a default set")
	}
}
