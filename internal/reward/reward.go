// Package reward scores lens system states. Rewards are collaborators of the
// environment: invoked at most once per valid step, after execution and
// before the observation is produced.
package reward

import (
	"math"

	"github.com/montanaflynn/stats"

	"lensrl/internal/engine"
	"lensrl/internal/optic"
)

type Reward interface {
	Score(sys *optic.System) float64
}

const (
	nanPenalty  = -1e3
	rmsSentinel = 1e6
)

// RMS penalizes the mean per-field RMS spot radius, optionally adding a term
// for the improvement over the previous evaluation. It owns the substitution
// of degenerate NaN geometry with the large finite sentinel the logarithmic
// observation scaling requires.
type RMS struct {
	tracer       engine.Tracer
	weight       float64
	includeDelta bool
	deltaWeight  float64

	prevRMS *float64
}

func NewRMS(tracer engine.Tracer, weight float64, includeDelta bool, deltaWeight float64) *RMS {
	return &RMS{
		tracer:       tracer,
		weight:       weight,
		includeDelta: includeDelta,
		deltaWeight:  deltaWeight,
	}
}

func (r *RMS) Score(sys *optic.System) float64 {
	rms := math.NaN()
	if values, err := r.tracer.RMSSpotRadius(sys); err == nil {
		abs := make([]float64, len(values))
		for i, v := range values {
			abs[i] = math.Abs(v)
		}
		if mean, err := stats.Mean(abs); err == nil {
			rms = mean
		}
	}

	if math.IsNaN(rms) {
		sys.RMS = rmsSentinel
		return nanPenalty
	}

	sys.RMS = rms
	score := -r.weight * rms
	if r.includeDelta {
		if r.prevRMS != nil {
			score += (*r.prevRMS - rms) * r.deltaWeight
		}
		prev := rms
		r.prevRMS = &prev
	}
	return score
}

// Complexity penalizes surface count.
type Complexity struct {
	Weight float64
}

func (c Complexity) Score(sys *optic.System) float64 {
	return -c.Weight * float64(sys.Complexity())
}

// ApertureFOV trades a smaller aperture penalty against a wider field of
// view.
type ApertureFOV struct {
	ApertureWeight float64
	FOVWeight      float64
}

func (a ApertureFOV) Score(sys *optic.System) float64 {
	return -a.ApertureWeight*sys.FNumber + a.FOVWeight*sys.FieldOfView
}

// Completion penalizes distance from target field of view and spot size.
type Completion struct {
	TargetFOV float64
	TargetRMS float64
	Weight    float64
}

func (c Completion) Score(sys *optic.System) float64 {
	return -c.Weight * (math.Abs(c.TargetFOV-sys.FieldOfView) + math.Abs(c.TargetRMS-sys.RMS))
}

// Composite sums its members.
type Composite []Reward

func (c Composite) Score(sys *optic.System) float64 {
	total := 0.0
	for _, r := range c {
		total += r.Score(sys)
	}
	return total
}
