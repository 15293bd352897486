// Package particle owns the mutable per-particle state of the engine.
//
// The backing slice is owned exclusively by [Store]; everything outside the
// engine's tick path sees particles only through [Store.Snapshot] copies.
package particle

import (
	"math"
	"math/rand"
)

// Particle is one animated point. Position and velocity are in surface
// pixel coordinates; TargetIndex addresses the formation generator output.
type Particle struct {
	X, Y        float64
	VX, VY      float64
	TargetIndex int
	Hue         float64 // per-particle hue offset in [0,1)
	Alpha       float64
	Size        float64
	Phase       float64 // breathing oscillation phase
}

// Bounds is the spawn region for new particles.
type Bounds struct {
	W, H float64
}

// SpawnAlpha is the near-zero alpha new particles start at so growth fades
// in instead of popping.
const SpawnAlpha = 0.02

// Store holds the particle array. Not safe for concurrent use; the engine
// serializes all access on the tick.
type Store struct {
	particles []Particle
	bounds    Bounds
	rng       *rand.Rand
}

// NewStore seeds count particles uniformly inside bounds with zero velocity
// and randomized phase. Counts below 1 are clamped to 1.
func NewStore(count int, bounds Bounds, rng *rand.Rand) *Store {
	if count < 1 {
		count = 1
	}
	s := &Store{
		particles: make([]Particle, 0, count),
		bounds:    bounds,
		rng:       rng,
	}
	for i := 0; i < count; i++ {
		s.particles = append(s.particles, s.spawn(i, 1.0))
	}
	return s
}

func (s *Store) spawn(index int, alpha float64) Particle {
	return Particle{
		X:           s.rng.Float64() * s.bounds.W,
		Y:           s.rng.Float64() * s.bounds.H,
		TargetIndex: index,
		Hue:         s.rng.Float64(),
		Alpha:       alpha,
		Size:        0.75 + s.rng.Float64()*0.5,
		Phase:       s.rng.Float64() * 2 * math.Pi,
	}
}

// Len reports the current particle count.
func (s *Store) Len() int { return len(s.particles) }

// Resize changes the particle count. Shrinking drops particles from the end;
// growing appends particles at random positions with zero velocity and
// [SpawnAlpha] so they fade in.
func (s *Store) Resize(n int) {
	if n < 1 {
		n = 1
	}
	if n <= len(s.particles) {
		s.particles = s.particles[:n]
		return
	}
	for i := len(s.particles); i < n; i++ {
		s.particles = append(s.particles, s.spawn(i, SpawnAlpha))
	}
}

// SetBounds updates the spawn region and rescales existing positions so
// particles keep their relative placement after a viewport resize.
func (s *Store) SetBounds(b Bounds) {
	if b.W <= 0 || b.H <= 0 {
		return
	}
	rx, ry := b.W/s.bounds.W, b.H/s.bounds.H
	for i := range s.particles {
		s.particles[i].X *= rx
		s.particles[i].Y *= ry
	}
	s.bounds = b
}

// Bounds returns the current spawn region.
func (s *Store) Bounds() Bounds { return s.bounds }

// All returns the live backing slice for the engine's tick path. Callers
// outside the engine must use Snapshot instead.
func (s *Store) All() []Particle { return s.particles }

// Snapshot returns a read-only copy for rendering and diagnostics.
func (s *Store) Snapshot() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}
