package physics

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/swarmfield/internal/formation"
	"github.com/san-kum/swarmfield/internal/particle"
)

func testParams() Params {
	return Params{
		Spring:      12,
		Retain:      0.86,
		Jitter:      0,
		JitterScale: 1,
		MaxDt:       0.05,
		AlphaTarget: 1,
		AlphaRate:   2,
	}
}

func TestStepZeroDtIsNoOp(t *testing.T) {
	p := particle.Particle{X: 10, Y: 20, VX: 3, VY: -4, Alpha: 0.5}
	before := p
	rng := rand.New(rand.NewSource(1))
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		Step(&p, formation.Point{X: 100, Y: 100}, dt, rng, testParams())
		if p != before {
			t.Fatalf("dt=%v mutated particle: %+v", dt, p)
		}
	}
}

func TestStepMovesTowardTarget(t *testing.T) {
	p := particle.Particle{X: 0, Y: 0}
	target := formation.Point{X: 50, Y: -30}
	rng := rand.New(rand.NewSource(1))
	d0 := math.Hypot(target.X-p.X, target.Y-p.Y)
	for i := 0; i < 60; i++ {
		Step(&p, target, 1.0/60, rng, testParams())
	}
	d1 := math.Hypot(target.X-p.X, target.Y-p.Y)
	if d1 >= d0 {
		t.Fatalf("particle did not approach target: %f -> %f", d0, d1)
	}
}

func TestStepConvergesWithoutOscillationBlowup(t *testing.T) {
	p := particle.Particle{X: 200, Y: 200}
	target := formation.Point{X: 0, Y: 0}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 600; i++ {
		Step(&p, target, 1.0/60, rng, testParams())
	}
	if d := math.Hypot(p.X, p.Y); d > 1 {
		t.Fatalf("residual displacement %f after 10s, damping too weak", d)
	}
	if v := math.Hypot(p.VX, p.VY); v > 1 {
		t.Fatalf("residual speed %f after 10s", v)
	}
}

func TestStepClampsLargeDt(t *testing.T) {
	params := testParams()
	a := particle.Particle{X: 0, Y: 0}
	b := a
	rng := rand.New(rand.NewSource(1))
	target := formation.Point{X: 100, Y: 0}

	Step(&a, target, params.MaxDt, rng, params)
	Step(&b, target, 5.0, rand.New(rand.NewSource(1)), params) // stalled host
	if math.Abs(a.X-b.X) > 1e-9 {
		t.Fatalf("large dt not clamped: %f vs %f", a.X, b.X)
	}
}

func TestStepJitterScalesWithIntensity(t *testing.T) {
	amplitude := func(scale float64) float64 {
		params := testParams()
		params.Spring = 0
		params.Jitter = 2
		params.JitterScale = scale
		rng := rand.New(rand.NewSource(7))
		max := 0.0
		for i := 0; i < 200; i++ {
			p := particle.Particle{}
			Step(&p, formation.Point{}, 1.0/60, rng, params)
			if v := math.Hypot(p.VX, p.VY); v > max {
				max = v
			}
		}
		return max
	}
	low, high := amplitude(0.2), amplitude(0.9)
	if high <= low {
		t.Fatalf("jitter amplitude should grow with scale: %f vs %f", low, high)
	}
}

func TestStepMaxSpeedCap(t *testing.T) {
	params := testParams()
	params.MaxSpeed = 5
	p := particle.Particle{X: 0, Y: 0}
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 30; i++ {
		Step(&p, formation.Point{X: 10000, Y: 10000}, 1.0/60, rng, params)
		if v := math.Hypot(p.VX, p.VY); v > params.MaxSpeed+1e-9 {
			t.Fatalf("speed %f exceeds cap", v)
		}
	}
}

func TestStepFadeInApproachesTarget(t *testing.T) {
	p := particle.Particle{Alpha: particle.SpawnAlpha}
	rng := rand.New(rand.NewSource(1))
	last := p.Alpha
	for i := 0; i < 300; i++ {
		Step(&p, formation.Point{}, 1.0/60, rng, testParams())
		if p.Alpha < last {
			t.Fatalf("alpha regressed during fade-in")
		}
		last = p.Alpha
	}
	if p.Alpha < 0.95 {
		t.Fatalf("alpha %f should be near 1 after 5s", p.Alpha)
	}
}
