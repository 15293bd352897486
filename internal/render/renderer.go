package render

import (
	"math"

	"github.com/san-kum/swarmfield/internal/governor"
	"github.com/san-kum/swarmfield/internal/particle"
)

// Frame carries everything one paint needs besides the particle snapshot.
type Frame struct {
	Particles   []particle.Particle
	Tier        governor.Tier
	Pulse       float64 // decaying pulse intensity in [0,1]
	Elapsed     float64 // engine time in seconds, drives breathing
	TrailKeep   float64 // configured trail retention when the tier allows it
	GridSpacing int
	BreathRate  float64
	Processing  bool // host "thinking" signal, ripples the background grid
	Reduced     bool // reduced motion disables trails
}

// Renderer paints frames through a Surface using the current mood palette.
type Renderer struct {
	palette Palette
}

func NewRenderer(mood string) *Renderer {
	return &Renderer{palette: MoodPalette(mood)}
}

// SetMood swaps the hue palette; unknown labels fall back to neutral.
func (r *Renderer) SetMood(mood string) { r.palette = MoodPalette(mood) }

// Palette returns the active palette.
func (r *Renderer) Palette() Palette { return r.palette }

// Draw paints one frame. It returns the surface error, if any, so the
// engine can suspend on surface loss.
func (r *Renderer) Draw(s Surface, f Frame) error {
	if err := s.Err(); err != nil {
		return err
	}

	keep := 0.0
	if f.Tier.Trails && !f.Reduced {
		keep = f.TrailKeep
	}
	s.Fade(keep)

	if f.Processing {
		ripple := 0.12 + 0.06*math.Sin(f.Elapsed*2.4) + 0.2*f.Pulse
		s.Grid(f.GridSpacing, ripple)
	}

	boost := 1 + 0.6*f.Pulse
	for i := range f.Particles {
		p := &f.Particles[i]
		breath := 0.85 + 0.15*math.Sin(p.Phase+f.Elapsed*f.BreathRate)
		alpha := p.Alpha * breath * boost
		if alpha > 1 {
			alpha = 1
		}
		size := p.Size * (1 + 0.25*f.Pulse)
		c := r.palette.Shade(p.Hue, 0.7*breath+0.3*f.Pulse)
		s.Dot(p.X, p.Y, size, c, alpha, f.Tier.Gradient)
	}
	return s.Err()
}
