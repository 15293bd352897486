// Package render paints particle snapshots onto a drawing surface.
//
// The package decouples the engine from any concrete output:
//
//   - [Surface]: minimal drawing interface the engine renders through
//   - [Canvas]: Braille terminal surface with intensity-based trails
//   - [Discard]: no-op surface for headless benchmarks and tests
//   - [Renderer]: per-tick painter honoring the active fidelity tier
//
// The raylib-backed surface lives in the gui package to keep this one free
// of cgo.
package render

import "github.com/lucasb-eyer/go-colorful"

// Surface is the drawing target owned by the renderer. Implementations are
// not required to be safe for concurrent use; the engine draws from the
// tick only.
//
// Err reports surface loss. Once it returns non-nil the engine suspends
// ticking until it is resumed with a fresh surface.
type Surface interface {
	// Size returns the drawable area in pixels.
	Size() (w, h int)
	// Fade multiplies the previous frame by keep in [0,1]. keep = 0 clears
	// the surface; anything above fades old frames into motion trails.
	Fade(keep float64)
	// Dot draws one soft-edged particle dot. gradient selects a radial
	// falloff instead of a flat fill.
	Dot(x, y, size float64, c colorful.Color, alpha float64, gradient bool)
	// Grid draws the background overlay lattice at the given brightness.
	Grid(spacing int, brightness float64)
	// Err reports whether the surface has been lost.
	Err() error
}

// Discard is a Surface that draws nothing. Benchmarks and tests tick the
// engine through it.
type Discard struct {
	W, H int
}

func (d Discard) Size() (int, int) {
	if d.W <= 0 || d.H <= 0 {
		return 800, 600
	}
	return d.W, d.H
}

func (Discard) Fade(float64)                                           {}
func (Discard) Dot(float64, float64, float64, colorful.Color, float64, bool) {}
func (Discard) Grid(int, float64)                                      {}
func (Discard) Err() error                                             { return nil }
