package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/swarmfield/internal/governor"
	"github.com/san-kum/swarmfield/internal/particle"
)

func TestCanvasDotLightsSubPixels(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Dot(5, 5, 0, colorful.Color{}, 1, false)
	if c.Intensity(5, 5) <= 0 {
		t.Fatal("dot did not register")
	}
	lit := false
	for _, r := range c.String() {
		if r != '\n' && r != 0x2800 {
			lit = true
		}
	}
	if !lit {
		t.Fatal("string render shows no lit cell")
	}
}

func TestCanvasFadeDecaysTrails(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Dot(2, 2, 0, colorful.Color{}, 1, false)
	v0 := c.Intensity(2, 2)
	c.Fade(0.5)
	v1 := c.Intensity(2, 2)
	if v1 >= v0 || v1 <= 0 {
		t.Fatalf("fade 0.5: %f -> %f", v0, v1)
	}
	c.Fade(0)
	if c.Intensity(2, 2) != 0 {
		t.Fatal("fade 0 should clear")
	}
}

func TestCanvasGradientFallsOff(t *testing.T) {
	c := NewCanvas(20, 20)
	c.Dot(20, 40, 5, colorful.Color{}, 1, true)
	if c.Intensity(20, 40) <= c.Intensity(24, 40) {
		t.Fatal("gradient dot should be brightest at its center")
	}
}

func TestCanvasIgnoresOutOfRange(t *testing.T) {
	c := NewCanvas(4, 4)
	c.Dot(-100, -100, 2, colorful.Color{}, 1, false)
	c.Dot(1e6, 1e6, 2, colorful.Color{}, 1, false)
	for y := 0; y < 16; y++ {
		for x := 0; x < 8; x++ {
			if c.Intensity(x, y) != 0 {
				t.Fatalf("stray intensity at (%d,%d)", x, y)
			}
		}
	}
}

func TestRendererHonorsTrailTier(t *testing.T) {
	c := NewCanvas(10, 10)
	r := NewRenderer("neutral")
	f := Frame{
		Particles: []particle.Particle{{X: 10, Y: 20, Alpha: 1, Size: 1}},
		Tier:      governor.Tier{Trails: true, Gradient: false, ParticleCount: 1},
		TrailKeep: 0.9,
	}
	if err := r.Draw(c, f); err != nil {
		t.Fatal(err)
	}
	lit := c.Intensity(10, 20)

	// next frame with the particle elsewhere keeps a faded ghost
	f.Particles[0].X = 2
	if err := r.Draw(c, f); err != nil {
		t.Fatal(err)
	}
	ghost := c.Intensity(10, 20)
	if ghost <= 0 || ghost >= lit {
		t.Fatalf("expected faded trail, got %f (was %f)", ghost, lit)
	}

	// trails disabled: ghost must vanish
	f.Tier.Trails = false
	if err := r.Draw(c, f); err != nil {
		t.Fatal(err)
	}
	if c.Intensity(10, 20) > 0 {
		t.Fatal("trail survived with trails disabled")
	}
}

func TestRendererReducedMotionDisablesTrails(t *testing.T) {
	c := NewCanvas(10, 10)
	r := NewRenderer("neutral")
	f := Frame{
		Particles: []particle.Particle{{X: 10, Y: 20, Alpha: 1, Size: 1}},
		Tier:      governor.Tier{Trails: true},
		TrailKeep: 0.9,
		Reduced:   true,
	}
	r.Draw(c, f)
	f.Particles[0].X = 2
	r.Draw(c, f)
	if c.Intensity(10, 20) > 0 {
		t.Fatal("reduced motion must not leave trails")
	}
}

func TestMoodPaletteFallback(t *testing.T) {
	if MoodPalette("no-such-mood").Name != "neutral" {
		t.Fatal("unknown mood should fall back to neutral")
	}
	for _, m := range Moods() {
		if MoodPalette(m).Name != m {
			t.Errorf("mood %s not resolved", m)
		}
	}
}

func TestPaletteShadeClampsBrightness(t *testing.T) {
	p := MoodPalette("calm")
	c := p.Shade(0.5, 5)
	if _, _, v := c.Hsv(); v > 1.0001 {
		t.Fatalf("brightness not clamped: %f", v)
	}
}
