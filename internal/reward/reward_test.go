package reward

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"lensrl/internal/optic"
)

// fixedTracer replays a canned per-field spot vector.
type fixedTracer struct {
	values []float64
	err    error
}

func (f *fixedTracer) RMSSpotRadius(*optic.System) ([]float64, error) {
	return f.values, f.err
}

func (f *fixedTracer) ParaxialFocalLength(*optic.System) (float64, error) {
	return 1, nil
}

func testSystem(t *testing.T) *optic.System {
	t.Helper()
	sys := optic.NewSystem(10, 1)
	sys.Reset(rand.New(rand.NewSource(4)))
	return sys
}

func TestRMSScore(t *testing.T) {
	sys := testSystem(t)
	r := NewRMS(&fixedTracer{values: []float64{2, 4}}, 1, false, 0)

	if got := r.Score(sys); got != -3 {
		t.Fatalf("score: got %f, want -3", got)
	}
	if sys.RMS != 3 {
		t.Fatalf("system RMS: got %f, want 3", sys.RMS)
	}
}

func TestRMSScoreWeight(t *testing.T) {
	sys := testSystem(t)
	r := NewRMS(&fixedTracer{values: []float64{2, 4}}, 0.5, false, 0)
	if got := r.Score(sys); got != -1.5 {
		t.Fatalf("score: got %f, want -1.5", got)
	}
}

func TestRMSScoreUsesAbsoluteValues(t *testing.T) {
	sys := testSystem(t)
	r := NewRMS(&fixedTracer{values: []float64{-2, 4}}, 1, false, 0)
	if got := r.Score(sys); got != -3 {
		t.Fatalf("score with signed spots: got %f, want -3", got)
	}
}

func TestRMSScoreNaNSentinel(t *testing.T) {
	sys := testSystem(t)
	r := NewRMS(&fixedTracer{values: []float64{math.NaN()}}, 1, false, 0)

	if got := r.Score(sys); got != -1e3 {
		t.Fatalf("degenerate score: got %f, want -1000", got)
	}
	if sys.RMS != 1e6 {
		t.Fatalf("degenerate RMS sentinel: got %g, want 1e6", sys.RMS)
	}
}

func TestRMSScoreTracerError(t *testing.T) {
	sys := testSystem(t)
	r := NewRMS(&fixedTracer{err: errors.New("no rays")}, 1, false, 0)

	if got := r.Score(sys); got != -1e3 {
		t.Fatalf("score on tracer failure: got %f, want -1000", got)
	}
	if sys.RMS != 1e6 {
		t.Fatalf("RMS sentinel on tracer failure: got %g, want 1e6", sys.RMS)
	}
}

func TestRMSScoreDelta(t *testing.T) {
	sys := testSystem(t)
	tracer := &fixedTracer{values: []float64{3}}
	r := NewRMS(tracer, 1, true, 1)

	// First evaluation has no baseline; only the absolute term applies.
	if got := r.Score(sys); got != -3 {
		t.Fatalf("first score: got %f, want -3", got)
	}

	tracer.values = []float64{1}
	// Second evaluation adds the improvement over the baseline: -1 + (3-1).
	if got := r.Score(sys); got != 1 {
		t.Fatalf("second score: got %f, want 1", got)
	}
	if sys.RMS != 1 {
		t.Fatalf("system RMS: got %f, want 1", sys.RMS)
	}
}

func TestComplexityScore(t *testing.T) {
	sys := testSystem(t) // four surfaces, two interior
	c := Complexity{Weight: 0.1}
	if got := c.Score(sys); math.Abs(got+0.2) > 1e-12 {
		t.Fatalf("score: got %f, want -0.2", got)
	}
}

func TestApertureFOVScore(t *testing.T) {
	sys := testSystem(t)
	sys.FieldOfView = 8
	a := ApertureFOV{ApertureWeight: 1, FOVWeight: 0.5}
	if got := a.Score(sys); got != -10+4 {
		t.Fatalf("score: got %f, want -6", got)
	}
}

func TestCompletionScore(t *testing.T) {
	sys := testSystem(t)
	sys.FieldOfView = 30
	sys.RMS = 0.5
	c := Completion{TargetFOV: 40, TargetRMS: 0.1, Weight: 1}
	want := -(10 + 0.4)
	if got := c.Score(sys); math.Abs(got-want) > 1e-12 {
		t.Fatalf("score: got %f, want %f", got, want)
	}
}

func TestCompositeSums(t *testing.T) {
	sys := testSystem(t)
	sys.FieldOfView = 8
	c := Composite{
		Complexity{Weight: 1},
		ApertureFOV{FOVWeight: 1},
	}
	if got := c.Score(sys); got != -2+8 {
		t.Fatalf("composite score: got %f, want 6", got)
	}
}
