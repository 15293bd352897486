// Package governor adapts visual fidelity to the achieved frame time.
//
// Fidelity lives in an ordered list of [Tier] configurations, index 0 being
// the richest. The governor watches a sliding window of observed frame
// times and steps one tier at a time, with asymmetric thresholds so it does
// not oscillate between neighbors.
package governor

import (
	"fmt"
	"math"
)

// Tier is one immutable fidelity configuration. Selecting a tier atomically
// replaces every flag at once, so the engine never renders with a
// half-applied mix of settings.
type Tier struct {
	ParticleCount int
	Trails        bool
	Gradient      bool
	JitterScale   float64
}

// DefaultTiers is the fidelity ladder used when the config does not
// override it.
func DefaultTiers() []Tier {
	return []Tier{
		{ParticleCount: 1200, Trails: true, Gradient: true, JitterScale: 1.0},
		{ParticleCount: 600, Trails: true, Gradient: false, JitterScale: 0.8},
		{ParticleCount: 300, Trails: false, Gradient: false, JitterScale: 0.6},
		{ParticleCount: 150, Trails: false, Gradient: false, JitterScale: 0.4},
	}
}

// Options tune the hysteresis behavior.
type Options struct {
	// WindowTicks is the sliding window and hysteresis length.
	WindowTicks int
	// DropAbove is the average frame time (seconds) that triggers a step
	// down in fidelity.
	DropAbove float64
	// RecoverBelow is the average frame time required to step back up.
	// It must be stricter (smaller) than DropAbove.
	RecoverBelow float64
}

// DefaultOptions drop below ~30fps and recover above ~66fps.
func DefaultOptions() Options {
	return Options{WindowTicks: 30, DropAbove: 0.034, RecoverBelow: 0.015}
}

// Governor holds the tier ladder and the frame-time window.
type Governor struct {
	tiers    []Tier
	idx      int
	window   []float64
	fill     int
	pos      int
	opts     Options
}

// New validates the ladder: counts and jitter scales must be non-increasing
// and trail/gradient flags must never re-enable at a lower tier.
func New(tiers []Tier, opts Options) (*Governor, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("governor: empty tier list")
	}
	if opts.WindowTicks <= 0 {
		opts.WindowTicks = DefaultOptions().WindowTicks
	}
	if opts.DropAbove <= 0 || opts.RecoverBelow <= 0 {
		d := DefaultOptions()
		opts.DropAbove, opts.RecoverBelow = d.DropAbove, d.RecoverBelow
	}
	if opts.RecoverBelow >= opts.DropAbove {
		return nil, fmt.Errorf("governor: recover threshold %.4fs must be below drop threshold %.4fs",
			opts.RecoverBelow, opts.DropAbove)
	}
	for i := 1; i < len(tiers); i++ {
		prev, cur := tiers[i-1], tiers[i]
		switch {
		case cur.ParticleCount > prev.ParticleCount:
			return nil, fmt.Errorf("governor: tier %d raises particle count", i)
		case cur.JitterScale > prev.JitterScale:
			return nil, fmt.Errorf("governor: tier %d raises jitter scale", i)
		case cur.Trails && !prev.Trails:
			return nil, fmt.Errorf("governor: tier %d re-enables trails", i)
		case cur.Gradient && !prev.Gradient:
			return nil, fmt.Errorf("governor: tier %d re-enables gradient", i)
		}
	}
	return &Governor{
		tiers:  tiers,
		window: make([]float64, opts.WindowTicks),
		opts:   opts,
	}, nil
}

// Observe records one frame time and returns true when the active tier
// changed. A change drains the window, so at most one step can happen per
// hysteresis window. Non-finite and non-positive samples are ignored.
func (g *Governor) Observe(dt float64) bool {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return false
	}
	g.window[g.pos] = dt
	g.pos = (g.pos + 1) % len(g.window)
	if g.fill < len(g.window) {
		g.fill++
		return false
	}

	avg := g.Average()
	switch {
	case avg > g.opts.DropAbove && g.idx < len(g.tiers)-1:
		g.idx++
	case avg < g.opts.RecoverBelow && g.idx > 0:
		g.idx--
	default:
		return false
	}
	g.fill = 0
	g.pos = 0
	return true
}

// Average is the mean frame time over the filled portion of the window.
func (g *Governor) Average() float64 {
	if g.fill == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < g.fill; i++ {
		sum += g.window[i]
	}
	return sum / float64(g.fill)
}

// Tier returns the active tier configuration.
func (g *Governor) Tier() Tier { return g.tiers[g.idx] }

// Index returns the active tier index, 0 being highest fidelity.
func (g *Governor) Index() int { return g.idx }

// Tiers returns the ladder.
func (g *Governor) Tiers() []Tier { return g.tiers }
