// Package morph drives eased transitions between particle formations.
package morph

import (
	"github.com/san-kum/swarmfield/internal/formation"
)

// State of the controller.
type State int

const (
	// Idle means no morph is pending; particles breathe in place.
	Idle State = iota
	// Transitioning means progress is advancing toward the next formation.
	Transitioning
	// Settled is reported once when progress reaches 1, before Idle resumes.
	Settled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Transitioning:
		return "transitioning"
	case Settled:
		return "settled"
	}
	return "unknown"
}

// Event is delivered to the observer hook as transitions complete.
type Event int

const (
	EventSettled Event = iota
	EventIdle
)

// Controller interpolates particle targets between a previous anchor set and
// the next formation. Progress is monotone within one transition; a new
// request re-anchors at the current interpolated positions instead of
// snapping back to zero.
type Controller struct {
	prev     []formation.Point
	next     []formation.Point
	shape    formation.Shape
	anchored bool // prev holds literal anchor points, not a formation
	progress float64
	duration float64 // seconds
	curve    Curve
	state    State
	notify   func(Event, formation.Shape)
}

// NewController starts settled on the given formation.
func NewController(initial []formation.Point, shape formation.Shape, duration float64, curve Curve) *Controller {
	return &Controller{
		prev:     initial,
		next:     initial,
		shape:    shape,
		progress: 1,
		duration: duration,
		curve:    curve,
		state:    Idle,
	}
}

// OnEvent registers the observer hook for Settled/Idle emissions.
func (c *Controller) OnEvent(fn func(Event, formation.Shape)) { c.notify = fn }

// Request begins a transition to shape with the given generator output.
// When a transition is already in flight, anchors (the particles' current
// interpolated positions) become the new previous set so the morph continues
// from where the swarm visibly is.
func (c *Controller) Request(shape formation.Shape, targets, anchors []formation.Point) {
	if c.state == Transitioning && len(anchors) == len(targets) {
		c.prev = anchors
		c.anchored = true
	} else {
		c.prev = c.next
		c.anchored = false
	}
	c.next = targets
	c.shape = shape
	c.progress = 0
	c.state = Transitioning
}

// Advance moves progress forward by dt seconds. On completion it emits
// Settled and then immediately Idle.
func (c *Controller) Advance(dt float64) {
	if c.state != Transitioning || dt < 0 {
		return
	}
	if c.duration <= 0 {
		c.progress = 1
	} else {
		c.progress += dt / c.duration
	}
	if c.progress < 1 {
		return
	}
	c.progress = 1
	c.prev = c.next
	c.anchored = false
	c.state = Settled
	if c.notify != nil {
		c.notify(EventSettled, c.shape)
	}
	c.state = Idle
	if c.notify != nil {
		c.notify(EventIdle, c.shape)
	}
}

// Blended returns the eased interpolation of target i between the previous
// anchor set and the next formation. Indices beyond either set clamp to the
// last available point so a mid-resize tick never panics.
func (c *Controller) Blended(i int) formation.Point {
	p := at(c.prev, i)
	n := at(c.next, i)
	t := Ease(c.curve, c.progress)
	return formation.Point{
		X: p.X + (n.X-p.X)*t,
		Y: p.Y + (n.Y-p.Y)*t,
	}
}

func at(pts []formation.Point, i int) formation.Point {
	if len(pts) == 0 {
		return formation.Point{}
	}
	if i >= len(pts) {
		i = len(pts) - 1
	}
	return pts[i]
}

// Retarget replaces both point sets without touching progress or state,
// for viewport resizes and tier-driven count changes. Outside a transition
// both sets collapse to next.
func (c *Controller) Retarget(prev, next []formation.Point) {
	if c.state == Transitioning {
		c.prev = prev
		c.anchored = true
		c.next = next
		return
	}
	c.prev = next
	c.next = next
	c.anchored = false
}

// Shape returns the formation currently targeted.
func (c *Controller) Shape() formation.Shape { return c.shape }

// Progress returns transition progress in [0, 1].
func (c *Controller) Progress() float64 { return c.progress }

// State returns the current controller state.
func (c *Controller) State() State { return c.state }

// Anchored reports whether the previous set is literal anchor positions
// rather than a formation.
func (c *Controller) Anchored() bool { return c.anchored }

// SetDuration changes the transition duration for subsequent advances.
func (c *Controller) SetDuration(seconds float64) { c.duration = seconds }

// SetCurve changes the easing curve.
func (c *Controller) SetCurve(curve Curve) { c.curve = curve }
