// Package metrics collects per-tick engine diagnostics.
package metrics

import "math"

// Metric is a scalar diagnostic fed once per tick.
type Metric interface {
	Name() string
	Observe(v float64)
	Value() float64
	Reset()
}

// FrameTime keeps a sliding window of observed tick durations (seconds).
type FrameTime struct {
	window []float64
	pos    int
	fill   int
}

func NewFrameTime(window int) *FrameTime {
	if window < 1 {
		window = 30
	}
	return &FrameTime{window: make([]float64, window)}
}

func (f *FrameTime) Name() string { return "frame_time" }

func (f *FrameTime) Observe(dt float64) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}
	f.window[f.pos] = dt
	f.pos = (f.pos + 1) % len(f.window)
	if f.fill < len(f.window) {
		f.fill++
	}
}

// Value is the mean frame time over the window.
func (f *FrameTime) Value() float64 {
	if f.fill == 0 {
		return 0
	}
	sum := 0.0
	for i := 0; i < f.fill; i++ {
		sum += f.window[i]
	}
	return sum / float64(f.fill)
}

// Max is the worst frame in the window.
func (f *FrameTime) Max() float64 {
	max := 0.0
	for i := 0; i < f.fill; i++ {
		if f.window[i] > max {
			max = f.window[i]
		}
	}
	return max
}

// FPS is the reciprocal mean, 0 when empty.
func (f *FrameTime) FPS() float64 {
	v := f.Value()
	if v == 0 {
		return 0
	}
	return 1 / v
}

// Series returns the window oldest-first, in milliseconds, for plotting.
func (f *FrameTime) Series() []float64 {
	out := make([]float64, 0, f.fill)
	start := 0
	if f.fill == len(f.window) {
		start = f.pos
	}
	for i := 0; i < f.fill; i++ {
		out = append(out, f.window[(start+i)%len(f.window)]*1000)
	}
	return out
}

func (f *FrameTime) Reset() {
	f.pos = 0
	f.fill = 0
}

// Displacement tracks the running mean distance between particles and their
// blended targets, the engine's convergence signal.
type Displacement struct {
	sum float64
	n   int
}

func NewDisplacement() *Displacement { return &Displacement{} }

func (d *Displacement) Name() string { return "displacement" }

func (d *Displacement) Observe(v float64) {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return
	}
	d.sum += v
	d.n++
}

func (d *Displacement) Value() float64 {
	if d.n == 0 {
		return 0
	}
	return d.sum / float64(d.n)
}

func (d *Displacement) Reset() {
	d.sum = 0
	d.n = 0
}
