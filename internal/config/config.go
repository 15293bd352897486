// Package config holds every tunable of the engine as overridable defaults.
//
// The numeric defaults were tuned by eye on low-power hardware; treat them
// as starting points, not invariants, and override through YAML or presets.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/swarmfield/internal/governor"
)

const (
	DefaultCount         = 600
	DefaultRadiusFrac    = 0.38
	DefaultTransitionSec = 1.6
	DefaultSpring        = 14.0
	DefaultRetain        = 0.86
	DefaultJitter        = 0.9
	DefaultMaxDtMs       = 50.0
	DefaultNominalDtMs   = 16.0
	DefaultPulseHalfMs   = 150.0
	DefaultTrailKeep     = 0.82
	DefaultBreathRate    = 1.7
	DefaultGridSpacing   = 12
	DefaultReducedSec    = 0.15
)

// TierConfig mirrors governor.Tier for YAML.
type TierConfig struct {
	Count       int     `yaml:"count"`
	Trails      bool    `yaml:"trails"`
	Gradient    bool    `yaml:"gradient"`
	JitterScale float64 `yaml:"jitter_scale"`
}

// GovernorConfig tunes the frame-time hysteresis.
type GovernorConfig struct {
	WindowTicks  int     `yaml:"window_ticks"`
	DropAboveMs  float64 `yaml:"drop_above_ms"`
	RecoverBelMs float64 `yaml:"recover_below_ms"`
}

// Config is the full engine tuning surface.
type Config struct {
	Count         int     `yaml:"count"`
	RadiusFrac    float64 `yaml:"radius_frac"`
	TransitionSec float64 `yaml:"transition_sec"`
	Easing        string  `yaml:"easing"`

	Spring      float64 `yaml:"spring"`
	Retain      float64 `yaml:"retain"`
	Jitter      float64 `yaml:"jitter"`
	MaxDtMs     float64 `yaml:"max_dt_ms"`
	NominalDtMs float64 `yaml:"nominal_dt_ms"`

	PulseHalfLifeMs float64 `yaml:"pulse_half_life_ms"`

	TrailKeep   float64 `yaml:"trail_keep"`
	BreathRate  float64 `yaml:"breath_rate"`
	GridSpacing int     `yaml:"grid_spacing"`
	Mood        string  `yaml:"mood"`

	Tiers    []TierConfig   `yaml:"tiers"`
	Governor GovernorConfig `yaml:"governor"`

	ReducedMotion        bool    `yaml:"reduced_motion"`
	ReducedTransitionSec float64 `yaml:"reduced_transition_sec"`
	ReducedMaxSpeed      float64 `yaml:"reduced_max_speed"`
}

// DefaultConfig returns the tuned defaults.
func DefaultConfig() *Config {
	tiers := make([]TierConfig, 0, 4)
	for _, t := range governor.DefaultTiers() {
		tiers = append(tiers, TierConfig{
			Count:       t.ParticleCount,
			Trails:      t.Trails,
			Gradient:    t.Gradient,
			JitterScale: t.JitterScale,
		})
	}
	g := governor.DefaultOptions()
	return &Config{
		Count:                DefaultCount,
		RadiusFrac:           DefaultRadiusFrac,
		TransitionSec:        DefaultTransitionSec,
		Easing:               "smooth",
		Spring:               DefaultSpring,
		Retain:               DefaultRetain,
		Jitter:               DefaultJitter,
		MaxDtMs:              DefaultMaxDtMs,
		NominalDtMs:          DefaultNominalDtMs,
		PulseHalfLifeMs:      DefaultPulseHalfMs,
		TrailKeep:            DefaultTrailKeep,
		BreathRate:           DefaultBreathRate,
		GridSpacing:          DefaultGridSpacing,
		Mood:                 "neutral",
		Tiers:                tiers,
		Governor:             GovernorConfig{WindowTicks: g.WindowTicks, DropAboveMs: g.DropAbove * 1000, RecoverBelMs: g.RecoverBelow * 1000},
		ReducedTransitionSec: DefaultReducedSec,
		ReducedMaxSpeed:      120,
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the engine cannot run with.
func (c *Config) Validate() error {
	if c.Count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", c.Count)
	}
	if c.RadiusFrac <= 0 || c.RadiusFrac > 0.5 {
		return fmt.Errorf("radius_frac must be in (0, 0.5], got %f", c.RadiusFrac)
	}
	if c.Retain < 0 || c.Retain >= 1 {
		return fmt.Errorf("retain must be in [0, 1), got %f", c.Retain)
	}
	if c.TransitionSec < 0 {
		return fmt.Errorf("transition_sec must not be negative")
	}
	if c.PulseHalfLifeMs <= 0 {
		return fmt.Errorf("pulse_half_life_ms must be positive")
	}
	if c.TrailKeep < 0 || c.TrailKeep >= 1 {
		return fmt.Errorf("trail_keep must be in [0, 1), got %f", c.TrailKeep)
	}
	if len(c.Tiers) == 0 {
		return fmt.Errorf("at least one tier is required")
	}
	_, err := governor.New(c.GovernorTiers(), c.GovernorOptions())
	return err
}

// GovernorTiers converts the YAML tier list.
func (c *Config) GovernorTiers() []governor.Tier {
	tiers := make([]governor.Tier, 0, len(c.Tiers))
	for _, t := range c.Tiers {
		tiers = append(tiers, governor.Tier{
			ParticleCount: t.Count,
			Trails:        t.Trails,
			Gradient:      t.Gradient,
			JitterScale:   t.JitterScale,
		})
	}
	return tiers
}

// GovernorOptions converts the hysteresis settings to seconds.
func (c *Config) GovernorOptions() governor.Options {
	return governor.Options{
		WindowTicks:  c.Governor.WindowTicks,
		DropAbove:    c.Governor.DropAboveMs / 1000,
		RecoverBelow: c.Governor.RecoverBelMs / 1000,
	}
}
