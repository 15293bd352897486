package engine

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/san-kum/swarmfield/internal/config"
	"github.com/san-kum/swarmfield/internal/formation"
	"github.com/san-kum/swarmfield/internal/governor"
	"github.com/san-kum/swarmfield/internal/morph"
	"github.com/san-kum/swarmfield/internal/particle"
	"github.com/san-kum/swarmfield/internal/physics"
	"github.com/san-kum/swarmfield/internal/render"
)

// Observer receives engine lifecycle notifications from within Tick.
type Observer interface {
	// OnSettle fires when a morph completes on the given formation.
	OnSettle(shape formation.Shape)
	// OnTierChange fires when the governor selects a new fidelity tier.
	OnTierChange(index int, tier governor.Tier)
}

// Options configure a new engine.
type Options struct {
	// Config overrides the defaults; nil uses config.DefaultConfig.
	Config *config.Config
	// Seed fixes the random source; 0 seeds from the clock.
	Seed int64
	// Logf receives substituted intents and tier changes; nil discards.
	Logf func(format string, args ...any)
	// Observer receives settle and tier events; may be nil.
	Observer Observer
}

type cmdKind int

const (
	cmdMorph cmdKind = iota
	cmdPulse
	cmdMood
	cmdResize
	cmdReduced
	cmdProcessing
)

type command struct {
	kind  cmdKind
	shape formation.Shape
	value float64
	mood  string
	w, h  int
	flag  bool
}

// Engine is the explicit handle returned by New. All methods except the
// bridge enqueuers must be called from the tick goroutine.
type Engine struct {
	cfg      *config.Config
	surface  render.Surface
	renderer *render.Renderer
	store    *particle.Store
	ctrl     *morph.Controller
	gov      *governor.Governor
	rng      *rand.Rand
	logf     func(string, ...any)
	obs      Observer

	mu    sync.Mutex
	queue []command

	w, h       float64
	pulse      float64
	elapsed    float64
	meanDisp   float64
	reduced    bool
	processing bool
	suspended  bool
}

// New builds an engine drawing to surface and seeds the initial scatter
// cloud. The returned handle is independent of any other instance.
func New(surface render.Surface, opts Options) (*Engine, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gov, err := governor.New(cfg.GovernorTiers(), cfg.GovernorOptions())
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w, h := surface.Size()
	e := &Engine{
		cfg:      cfg,
		surface:  surface,
		renderer: render.NewRenderer(cfg.Mood),
		gov:      gov,
		rng:      rng,
		logf:     opts.Logf,
		obs:      opts.Observer,
		w:        float64(w),
		h:        float64(h),
		reduced:  cfg.ReducedMotion,
	}
	if e.logf == nil {
		e.logf = func(string, ...any) {}
	}

	e.store = particle.NewStore(cfg.Count, particle.Bounds{W: e.w, H: e.h}, rng)
	initial := formation.Generate(formation.Scatter, e.store.Len(), e.radius())
	e.ctrl = morph.NewController(initial, formation.Scatter, e.duration(), morph.ParseCurve(cfg.Easing))
	e.ctrl.OnEvent(func(evt morph.Event, shape formation.Shape) {
		if evt == morph.EventSettled && e.obs != nil {
			e.obs.OnSettle(shape)
		}
	})
	return e, nil
}

func (e *Engine) radius() float64 {
	m := math.Min(e.w, e.h)
	return m * e.cfg.RadiusFrac
}

func (e *Engine) duration() float64 {
	if e.reduced {
		return e.cfg.ReducedTransitionSec
	}
	return e.cfg.TransitionSec
}

func (e *Engine) enqueue(c command) {
	e.mu.Lock()
	e.queue = append(e.queue, c)
	e.mu.Unlock()
}

// MorphForIntent resolves a host intent label through the fixed lookup
// table and requests the matching formation. Unknown labels run as scatter.
// Safe to call from any goroutine; applied at the next tick boundary.
func (e *Engine) MorphForIntent(label string) {
	shape, ok := ShapeForIntent(label)
	if !ok {
		e.logf("unknown intent %q, dissolving to scatter", label)
	}
	e.enqueue(command{kind: cmdMorph, shape: shape})
}

// Morph requests a formation directly.
func (e *Engine) Morph(shape formation.Shape) {
	e.enqueue(command{kind: cmdMorph, shape: shape})
}

// DissolveToSwarm requests the neutral scatter formation.
func (e *Engine) DissolveToSwarm() {
	e.enqueue(command{kind: cmdMorph, shape: formation.Scatter})
}

// TriggerPulse raises the pulse intensity toward v in [0,1]; the pulse then
// decays exponentially with the configured half-life.
func (e *Engine) TriggerPulse(v float64) {
	if math.IsNaN(v) {
		return
	}
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	e.enqueue(command{kind: cmdPulse, value: v})
}

// UpdateFieldMode changes the renderer's mood palette.
func (e *Engine) UpdateFieldMode(mood string) {
	e.enqueue(command{kind: cmdMood, mood: mood})
}

// Resize notifies the engine of a new viewport. Targets are recomputed at
// the new center and scale; per-particle identity and any in-flight
// transition progress are preserved.
func (e *Engine) Resize(w, h int) {
	if w < 1 || h < 1 {
		return
	}
	e.enqueue(command{kind: cmdResize, w: w, h: h})
}

// SetReducedMotion toggles the accessibility profile: capped velocity and
// jitter, no trails, fade-and-snap morphs.
func (e *Engine) SetReducedMotion(on bool) {
	e.enqueue(command{kind: cmdReduced, flag: on})
}

// SetProcessing toggles the host "thinking" signal that ripples the
// background grid.
func (e *Engine) SetProcessing(on bool) {
	e.enqueue(command{kind: cmdProcessing, flag: on})
}

func (e *Engine) drain() {
	e.mu.Lock()
	cmds := e.queue
	e.queue = nil
	e.mu.Unlock()

	for _, c := range cmds {
		switch c.kind {
		case cmdMorph:
			e.applyMorph(c.shape)
		case cmdPulse:
			if c.value > e.pulse {
				e.pulse = c.value
			}
		case cmdMood:
			e.renderer.SetMood(c.mood)
		case cmdResize:
			e.applyResize(float64(c.w), float64(c.h))
		case cmdReduced:
			e.reduced = c.flag
			e.ctrl.SetDuration(e.duration())
		case cmdProcessing:
			e.processing = c.flag
		}
	}
}

func (e *Engine) applyMorph(shape formation.Shape) {
	targets := formation.Generate(shape, e.store.Len(), e.radius())
	e.ctrl.SetDuration(e.duration())
	e.ctrl.Request(shape, targets, e.anchors())
}

// anchors returns current particle positions in formation space.
func (e *Engine) anchors() []formation.Point {
	cx, cy := e.w/2, e.h/2
	ps := e.store.All()
	out := make([]formation.Point, len(ps))
	for i := range ps {
		out[i] = formation.Point{X: ps[i].X - cx, Y: ps[i].Y - cy}
	}
	return out
}

func (e *Engine) applyResize(w, h float64) {
	e.store.SetBounds(particle.Bounds{W: w, H: h})
	e.w, e.h = w, h
	e.retarget()
}

// retarget rebuilds both target sets at the current count and radius. The
// previous set re-anchors at current positions, so progress carries over
// without a snap.
func (e *Engine) retarget() {
	next := formation.Generate(e.ctrl.Shape(), e.store.Len(), e.radius())
	e.ctrl.Retarget(e.anchors(), next)
}

// Tick advances the engine by dt seconds: drain queued commands, advance
// the morph, integrate particles, paint, then let the governor adapt.
// Non-finite or non-positive dt is clamped to the nominal frame and the
// governor skips that sample.
func (e *Engine) Tick(dt float64) error {
	if e.suspended {
		return ErrSuspended
	}

	rawDt := dt
	skipGov := false
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		dt = e.cfg.NominalDtMs / 1000
		skipGov = true
	}
	maxDt := e.cfg.MaxDtMs / 1000
	if dt > maxDt {
		dt = maxDt
	}

	e.drain()
	e.elapsed += dt

	half := e.cfg.PulseHalfLifeMs / 1000
	e.pulse *= math.Exp2(-dt / half)
	if e.pulse < 1e-2 {
		e.pulse = 0
	}

	e.ctrl.Advance(dt)

	tier := e.gov.Tier()
	params := physics.Params{
		Spring:      e.cfg.Spring,
		Retain:      e.cfg.Retain,
		Jitter:      e.cfg.Jitter,
		JitterScale: tier.JitterScale * (0.15 + e.pulse),
		MaxDt:       maxDt,
		AlphaTarget: 1,
		AlphaRate:   2,
	}
	if e.reduced {
		params.MaxSpeed = e.cfg.ReducedMaxSpeed
		params.JitterScale *= 0.25
	}

	cx, cy := e.w/2, e.h/2
	ps := e.store.All()
	sum := 0.0
	for i := range ps {
		p := &ps[i]
		tgt := e.ctrl.Blended(p.TargetIndex)
		tgt.X += cx
		tgt.Y += cy
		sum += math.Hypot(tgt.X-p.X, tgt.Y-p.Y)
		physics.Step(p, tgt, dt, e.rng, params)
	}
	e.meanDisp = sum / float64(len(ps))

	err := e.renderer.Draw(e.surface, render.Frame{
		Particles:   ps,
		Tier:        tier,
		Pulse:       e.pulse,
		Elapsed:     e.elapsed,
		TrailKeep:   e.cfg.TrailKeep,
		GridSpacing: e.cfg.GridSpacing,
		BreathRate:  e.cfg.BreathRate,
		Processing:  e.processing,
		Reduced:     e.reduced,
	})
	if err != nil {
		e.suspended = true
		e.logf("surface lost, suspending: %v", err)
		return ErrSurfaceLost
	}

	if !skipGov && e.gov.Observe(rawDt) {
		t := e.gov.Tier()
		e.store.Resize(t.ParticleCount)
		e.retarget()
		e.logf("governor: tier %d, %d particles", e.gov.Index(), t.ParticleCount)
		if e.obs != nil {
			e.obs.OnTierChange(e.gov.Index(), t)
		}
	}
	return nil
}

// Resume re-acquires a drawing surface after suspension and continues from
// the current particle state.
func (e *Engine) Resume(surface render.Surface) error {
	if surface == nil {
		return ErrNilSurface
	}
	if err := surface.Err(); err != nil {
		return err
	}
	e.surface = surface
	e.suspended = false
	if w, h := surface.Size(); float64(w) != e.w || float64(h) != e.h {
		e.applyResize(float64(w), float64(h))
	}
	return nil
}

// Snapshot returns a read-only particle copy for diagnostics.
func (e *Engine) Snapshot() []particle.Particle { return e.store.Snapshot() }

// Pulse returns the current decaying pulse intensity.
func (e *Engine) Pulse() float64 { return e.pulse }

// Progress returns morph transition progress in [0,1].
func (e *Engine) Progress() float64 { return e.ctrl.Progress() }

// State returns the morph controller state.
func (e *Engine) State() morph.State { return e.ctrl.State() }

// Shape returns the formation currently targeted.
func (e *Engine) Shape() formation.Shape { return e.ctrl.Shape() }

// TierIndex returns the active fidelity tier index.
func (e *Engine) TierIndex() int { return e.gov.Index() }

// Tier returns the active fidelity tier.
func (e *Engine) Tier() governor.Tier { return e.gov.Tier() }

// ParticleCount returns the live particle count.
func (e *Engine) ParticleCount() int { return e.store.Len() }

// MeanDisplacement returns the last tick's mean distance to target.
func (e *Engine) MeanDisplacement() float64 { return e.meanDisp }

// Elapsed returns accumulated engine time in seconds.
func (e *Engine) Elapsed() float64 { return e.elapsed }

// Suspended reports whether the engine is waiting for Resume.
func (e *Engine) Suspended() bool { return e.suspended }

// Mood returns the active palette name.
func (e *Engine) Mood() string { return e.renderer.Palette().Name }

// ReducedMotion reports the accessibility profile state.
func (e *Engine) ReducedMotion() bool { return e.reduced }
