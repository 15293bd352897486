package metrics

import (
	"math"
	"testing"
)

func TestFrameTimeWindow(t *testing.T) {
	f := NewFrameTime(4)
	for _, dt := range []float64{0.010, 0.020, 0.030, 0.040} {
		f.Observe(dt)
	}
	if v := f.Value(); math.Abs(v-0.025) > 1e-12 {
		t.Fatalf("mean %f, want 0.025", v)
	}
	if m := f.Max(); m != 0.040 {
		t.Fatalf("max %f", m)
	}

	// a fifth sample evicts the oldest
	f.Observe(0.050)
	if v := f.Value(); math.Abs(v-0.035) > 1e-12 {
		t.Fatalf("mean after eviction %f, want 0.035", v)
	}
}

func TestFrameTimeIgnoresBadSamples(t *testing.T) {
	f := NewFrameTime(4)
	f.Observe(math.NaN())
	f.Observe(math.Inf(1))
	f.Observe(-1)
	f.Observe(0)
	if f.Value() != 0 || f.FPS() != 0 {
		t.Fatal("bad samples entered the window")
	}
}

func TestFrameTimeSeriesOrder(t *testing.T) {
	f := NewFrameTime(3)
	for _, dt := range []float64{0.001, 0.002, 0.003, 0.004} {
		f.Observe(dt)
	}
	got := f.Series()
	want := []float64{2, 3, 4} // oldest-first, ms
	if len(got) != len(want) {
		t.Fatalf("series length %d", len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("series %v, want %v", got, want)
		}
	}
}

func TestDisplacementMean(t *testing.T) {
	d := NewDisplacement()
	d.Observe(10)
	d.Observe(20)
	if d.Value() != 15 {
		t.Fatalf("mean %f", d.Value())
	}
	d.Reset()
	if d.Value() != 0 {
		t.Fatal("reset failed")
	}
}
