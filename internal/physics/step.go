// Package physics advances particles toward their blended formation targets.
//
// Each particle's update is a pure function of its own state, its target and
// the global frame parameters. No particle reads another's current-tick
// state, so evaluation order is irrelevant and the loop could be split
// freely if it ever had to be.
package physics

import (
	"math"
	"math/rand"

	"github.com/san-kum/swarmfield/internal/formation"
	"github.com/san-kum/swarmfield/internal/particle"
)

// Params are the global tuning constants for one tick. They come from the
// engine config, not from hard-coded values.
type Params struct {
	// Spring is the attraction acceleration per unit displacement (1/s^2).
	Spring float64
	// Retain is the fraction of velocity kept per nominal 60fps frame.
	Retain float64
	// Jitter is the stochastic velocity magnitude at jitter scale 1.
	Jitter float64
	// JitterScale multiplies Jitter; the engine feeds it from the active
	// tier's scale and the current pulse intensity.
	JitterScale float64
	// MaxSpeed caps velocity magnitude when > 0 (reduced-motion mode).
	MaxSpeed float64
	// MaxDt clamps a single step so a stalled host cannot cause one huge
	// jump on resume (seconds).
	MaxDt float64
	// AlphaTarget is the alpha freshly spawned particles fade toward.
	AlphaTarget float64
	// AlphaRate is the fade-in rate (1/s).
	AlphaRate float64
}

const nominalFrame = 1.0 / 60

// Step integrates one particle toward target for dt seconds. dt <= 0 is a
// no-op; dt above Params.MaxDt is clamped.
func Step(p *particle.Particle, target formation.Point, dt float64, rng *rand.Rand, params Params) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}
	if params.MaxDt > 0 && dt > params.MaxDt {
		dt = params.MaxDt
	}

	ax := (target.X - p.X) * params.Spring
	ay := (target.Y - p.Y) * params.Spring

	// frame-rate independent damping: Retain is defined per 60fps frame
	damp := math.Pow(params.Retain, dt/nominalFrame)
	p.VX = p.VX*damp + ax*dt
	p.VY = p.VY*damp + ay*dt

	if j := params.Jitter * params.JitterScale; j > 0 {
		p.VX += (rng.Float64()*2 - 1) * j
		p.VY += (rng.Float64()*2 - 1) * j
	}

	if params.MaxSpeed > 0 {
		if speed := math.Hypot(p.VX, p.VY); speed > params.MaxSpeed {
			k := params.MaxSpeed / speed
			p.VX *= k
			p.VY *= k
		}
	}

	p.X += p.VX * dt
	p.Y += p.VY * dt

	if params.AlphaRate > 0 && p.Alpha < params.AlphaTarget {
		p.Alpha += (params.AlphaTarget - p.Alpha) * math.Min(1, params.AlphaRate*dt)
		if p.Alpha > params.AlphaTarget {
			p.Alpha = params.AlphaTarget
		}
	}
}
