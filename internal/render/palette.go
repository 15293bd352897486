package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette maps a mood label to a hue family. Individual particles shade
// inside the family using their per-particle hue offset.
type Palette struct {
	Name      string
	BaseHue   float64 // degrees
	HueSpread float64 // degrees across the particle population
	Sat       float64
}

var palettes = map[string]Palette{
	"neutral":  {Name: "neutral", BaseHue: 190, HueSpread: 40, Sat: 0.65},
	"calm":     {Name: "calm", BaseHue: 215, HueSpread: 30, Sat: 0.55},
	"creative": {Name: "creative", BaseHue: 300, HueSpread: 60, Sat: 0.75},
	"excited":  {Name: "excited", BaseHue: 28, HueSpread: 45, Sat: 0.85},
	"focused":  {Name: "focused", BaseHue: 140, HueSpread: 25, Sat: 0.60},
	"warm":     {Name: "warm", BaseHue: 45, HueSpread: 35, Sat: 0.70},
}

// Moods lists the known mood labels in a stable order.
func Moods() []string {
	return []string{"neutral", "calm", "creative", "excited", "focused", "warm"}
}

// MoodPalette resolves a mood label, falling back to neutral for unknown
// labels.
func MoodPalette(mood string) Palette {
	if p, ok := palettes[mood]; ok {
		return p
	}
	return palettes["neutral"]
}

// Shade returns the color for one particle. hueOffset is the particle's
// stable offset in [0,1); brightness is clamped to [0,1].
func (p Palette) Shade(hueOffset, brightness float64) colorful.Color {
	h := math.Mod(p.BaseHue+(hueOffset-0.5)*p.HueSpread+360, 360)
	if brightness < 0 {
		brightness = 0
	} else if brightness > 1 {
		brightness = 1
	}
	return colorful.Hsv(h, p.Sat, brightness)
}

// Accent is the palette's representative UI color.
func (p Palette) Accent() colorful.Color {
	return colorful.Hsv(p.BaseHue, p.Sat, 0.95)
}
