// Package bench runs the engine headless against synthetic frame-time
// schedules, for tuning and for exercising the performance governor.
package bench

import (
	"context"
	"fmt"
	"sync"

	"github.com/san-kum/swarmfield/internal/config"
	"github.com/san-kum/swarmfield/internal/engine"
	"github.com/san-kum/swarmfield/internal/formation"
	"github.com/san-kum/swarmfield/internal/metrics"
	"github.com/san-kum/swarmfield/internal/render"
)

// Scenario is one scripted headless run.
type Scenario struct {
	Name  string
	Ticks int
	// Dt returns the synthetic frame time for tick i; nil means 60fps.
	Dt func(i int) float64
	// Script drives bridge calls before tick i; may be nil.
	Script func(i int, e *engine.Engine)
}

// Result summarizes a finished scenario.
type Result struct {
	Name             string            `json:"name"`
	Ticks            int               `json:"ticks"`
	FinalShape       formation.Shape   `json:"final_shape"`
	FinalTier        int               `json:"final_tier"`
	FinalCount       int               `json:"final_count"`
	TierPath         []int             `json:"tier_path"`
	MeanFrameMs      float64           `json:"mean_frame_ms"`
	MaxFrameMs       float64           `json:"max_frame_ms"`
	MeanDisplacement float64           `json:"mean_displacement"`
	FrameSeries      []float64         `json:"-"` // ms, one entry per tick
}

// Run executes one scenario against a discard surface.
func Run(ctx context.Context, sc Scenario, cfg *config.Config, seed int64) (*Result, error) {
	if sc.Ticks <= 0 {
		return nil, fmt.Errorf("bench %s: ticks must be positive", sc.Name)
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	e, err := engine.New(render.Discard{}, engine.Options{Config: cfg, Seed: seed})
	if err != nil {
		return nil, fmt.Errorf("bench %s: %w", sc.Name, err)
	}

	frame := metrics.NewFrameTime(sc.Ticks)
	disp := metrics.NewDisplacement()
	res := &Result{
		Name:        sc.Name,
		TierPath:    []int{e.TierIndex()},
		FrameSeries: make([]float64, 0, sc.Ticks),
	}

	for i := 0; i < sc.Ticks; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if sc.Script != nil {
			sc.Script(i, e)
		}
		dt := 1.0 / 60
		if sc.Dt != nil {
			dt = sc.Dt(i)
		}
		if err := e.Tick(dt); err != nil {
			return nil, fmt.Errorf("bench %s tick %d: %w", sc.Name, i, err)
		}
		frame.Observe(dt)
		disp.Observe(e.MeanDisplacement())
		res.FrameSeries = append(res.FrameSeries, dt*1000)
		if last := res.TierPath[len(res.TierPath)-1]; e.TierIndex() != last {
			res.TierPath = append(res.TierPath, e.TierIndex())
		}
	}

	res.Ticks = sc.Ticks
	res.FinalShape = e.Shape()
	res.FinalTier = e.TierIndex()
	res.FinalCount = e.ParticleCount()
	res.MeanFrameMs = frame.Value() * 1000
	res.MaxFrameMs = frame.Max() * 1000
	res.MeanDisplacement = disp.Value()
	return res, nil
}

// RunAll fans scenarios out across workers goroutines. Each scenario gets
// its own engine instance; the engine itself stays single-threaded.
func RunAll(ctx context.Context, scenarios []Scenario, cfg *config.Config, seed int64, workers int) ([]*Result, error) {
	if workers < 1 {
		workers = 1
	}
	results := make([]*Result, len(scenarios))
	errs := make([]error, len(scenarios))

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, sc := range scenarios {
		wg.Add(1)
		go func(i int, sc Scenario) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i], errs[i] = Run(ctx, sc, cfg, seed+int64(i))
		}(i, sc)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

// DefaultScenarios is the standard suite used by the run command.
func DefaultScenarios() []Scenario {
	shapes := formation.Shapes()
	return []Scenario{
		{
			Name:  "steady",
			Ticks: 600,
			Script: func(i int, e *engine.Engine) {
				if i%120 == 0 {
					e.Morph(shapes[(i/120)%len(shapes)])
				}
			},
		},
		{
			Name:  "degraded",
			Ticks: 300,
			Dt:    func(int) float64 { return 0.045 },
		},
		{
			Name:  "spike",
			Ticks: 600,
			Dt: func(i int) float64 {
				if i%90 == 0 {
					return 0.120
				}
				return 1.0 / 60
			},
		},
		{
			Name:  "pulse-storm",
			Ticks: 400,
			Script: func(i int, e *engine.Engine) {
				if i%40 == 0 {
					e.TriggerPulse(1.0)
				}
			},
		},
		{
			Name:  "recovery",
			Ticks: 600,
			Dt: func(i int) float64 {
				if i < 200 {
					return 0.050
				}
				return 0.010
			},
		},
	}
}
