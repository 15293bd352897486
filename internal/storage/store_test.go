package storage

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/swarmfield/internal/bench"
	"github.com/san-kum/swarmfield/internal/formation"
)

func sampleResult() *bench.Result {
	return &bench.Result{
		Name:             "steady",
		Ticks:            3,
		FinalShape:       formation.Sphere,
		FinalTier:        0,
		FinalCount:       600,
		TierPath:         []int{0},
		MeanFrameMs:      16.667,
		MaxFrameMs:       16.667,
		MeanDisplacement: 1.25,
		FrameSeries:      []float64{16.6, 16.7, 16.8},
	}
}

func TestSaveAndList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	id, err := s.Save(sampleResult(), 42)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty run ID")
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if r.ID != id {
		t.Errorf("ID = %q, want %q", r.ID, id)
	}
	if r.Seed != 42 {
		t.Errorf("Seed = %d, want 42", r.Seed)
	}
	if r.Result == nil || r.Result.Name != "steady" {
		t.Errorf("result metadata not round-tripped: %+v", r.Result)
	}
	if r.Result.FinalShape != formation.Sphere {
		t.Errorf("FinalShape = %q, want %q", r.Result.FinalShape, formation.Sphere)
	}
}

func TestFramesRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	res := sampleResult()
	id, err := s.Save(res, 1)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	series, err := s.Frames(id)
	if err != nil {
		t.Fatalf("Frames: %v", err)
	}
	if len(series) != len(res.FrameSeries) {
		t.Fatalf("series length = %d, want %d", len(series), len(res.FrameSeries))
	}
	for i, ms := range series {
		if math.Abs(ms-res.FrameSeries[i]) > 1e-3 {
			t.Errorf("frame %d = %v, want %v", i, ms, res.FrameSeries[i])
		}
	}
}

func TestListNewestFirst(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	first, err := s.Save(sampleResult(), 1)
	if err != nil {
		t.Fatalf("Save first: %v", err)
	}
	time.Sleep(5 * time.Millisecond)
	second, err := s.Save(sampleResult(), 2)
	if err != nil {
		t.Fatalf("Save second: %v", err)
	}
	runs, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[1].ID != first {
		t.Errorf("order = [%s %s], want newest first", runs[0].ID, runs[1].ID)
	}
}

func TestListMissingDir(t *testing.T) {
	s := New(t.TempDir() + "/nope")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("List on missing dir: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}
