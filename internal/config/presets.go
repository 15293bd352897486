package config

// Presets are named tuning bundles layered over DefaultConfig.
var Presets = map[string]func(*Config){
	// calm: slower morphs, soft motion, cool palette
	"calm": func(c *Config) {
		c.TransitionSec = 2.4
		c.Jitter = 0.4
		c.TrailKeep = 0.88
		c.Mood = "calm"
	},
	// lively: fast morphs, strong jitter response
	"lively": func(c *Config) {
		c.TransitionSec = 1.0
		c.Jitter = 1.4
		c.PulseHalfLifeMs = 320
		c.Mood = "excited"
	},
	// lowpower: start at a cheap tier ladder for weak hardware
	"lowpower": func(c *Config) {
		c.Count = 300
		c.Tiers = []TierConfig{
			{Count: 300, Trails: false, Gradient: false, JitterScale: 0.6},
			{Count: 150, Trails: false, Gradient: false, JitterScale: 0.4},
			{Count: 80, Trails: false, Gradient: false, JitterScale: 0.3},
		}
	},
	// reduced: reduced-motion accessibility profile
	"reduced": func(c *Config) {
		c.ReducedMotion = true
		c.TransitionSec = c.ReducedTransitionSec
		c.Jitter = 0.2
	},
}

// GetPreset returns the defaults with the named preset applied, or nil when
// the preset does not exist.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

// ListPresets returns the preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
