package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	if cfg.Count <= 0 {
		t.Error("count should be positive")
	}
	if len(cfg.Tiers) == 0 {
		t.Error("expected a default tier ladder")
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero count", func(c *Config) { c.Count = 0 }},
		{"retain one", func(c *Config) { c.Retain = 1 }},
		{"radius too big", func(c *Config) { c.RadiusFrac = 0.9 }},
		{"no tiers", func(c *Config) { c.Tiers = nil }},
		{"negative transition", func(c *Config) { c.TransitionSec = -1 }},
		{"zero half life", func(c *Config) { c.PulseHalfLifeMs = 0 }},
		{"trail keep one", func(c *Config) { c.TrailKeep = 1 }},
		{"tier cost inversion", func(c *Config) {
			c.Tiers = []TierConfig{{Count: 100}, {Count: 500}}
		}},
	}
	for _, tt := range tests {
		cfg := DefaultConfig()
		tt.mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tt.name)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swarm.yaml")

	cfg := DefaultConfig()
	cfg.Count = 777
	cfg.Mood = "creative"
	cfg.Tiers = []TierConfig{
		{Count: 777, Trails: true, Gradient: true, JitterScale: 1},
		{Count: 300, Trails: false, Gradient: false, JitterScale: 0.5},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Count != 777 || got.Mood != "creative" || len(got.Tiers) != 2 {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestLoadAppliesDefaultsForOmittedFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yaml")
	if err := os.WriteFile(path, []byte("count: 123\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Count != 123 {
		t.Errorf("explicit field lost: %d", cfg.Count)
	}
	if cfg.Spring != DefaultSpring || cfg.Mood != "neutral" {
		t.Error("omitted fields should keep defaults")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("lowpower")
	if cfg == nil {
		t.Fatal("expected preset")
	}
	if cfg.Count != 300 {
		t.Errorf("lowpower count %d", cfg.Count)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("preset must validate: %v", err)
	}
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}
	if len(ListPresets()) != len(Presets) {
		t.Error("ListPresets incomplete")
	}
}

func TestReducedPresetShortensTransitions(t *testing.T) {
	cfg := GetPreset("reduced")
	if !cfg.ReducedMotion {
		t.Fatal("reduced preset must set the flag")
	}
	if cfg.TransitionSec >= DefaultTransitionSec {
		t.Error("reduced preset should shorten transitions")
	}
}
