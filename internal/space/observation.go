// Package space implements the observation and action codecs: fixed-length
// normalized vectors on the agent side, physical quantities on the optical
// side.
package space

import (
	"fmt"
	"math"

	"lensrl/internal/norm"
)

const (
	systemFeatureSize = 4
	lensFeatureSize   = 6
)

// lensParameters is the repeating per-lens slot schema.
var lensParameters = [lensFeatureSize]string{
	"index", "abbe", "radius", "lens_thickness", "radius", "air_thickness",
}

// ObservationSpace normalizes raw feature vectors slot by slot through a
// fixed positional parameter schema, masks slots beyond the active-element
// boundary and clips to [-1, 1].
type ObservationSpace struct {
	registry   *norm.Registry
	maxLenses  int
	parameters []string
}

func NewObservationSpace(registry *norm.Registry, maxLenses int) *ObservationSpace {
	parameters := make([]string, 0, systemFeatureSize+maxLenses*lensFeatureSize)
	parameters = append(parameters, "rms_spot_size", "f_number", "field_of_view", "number_of_surfaces")
	for i := 0; i < maxLenses; i++ {
		parameters = append(parameters, lensParameters[:]...)
	}
	return &ObservationSpace{
		registry:   registry,
		maxLenses:  maxLenses,
		parameters: parameters,
	}
}

// Size is the fixed observation length: 4 system scalars plus 6 slots per
// lens block.
func (o *ObservationSpace) Size() int {
	return len(o.parameters)
}

// Normalize maps a raw feature vector into [-1, 1] per slot. Slots at or
// beyond the active boundary are forced to exactly zero after normalization:
// the scaling functions do not map raw zero padding to normalized zero.
func (o *ObservationSpace) Normalize(raw []float64) ([]float64, error) {
	if len(raw) != len(o.parameters) {
		return nil, fmt.Errorf("raw observation length %d, want %d", len(raw), len(o.parameters))
	}

	out := make([]float64, len(raw))
	for i, name := range o.parameters {
		v, err := o.registry.Normalize(name, raw[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	o.maskInactive(out, int(raw[3]))

	for i, v := range out {
		out[i] = clip(v)
	}
	return out, nil
}

// Denormalize is the structural mirror of Normalize, used for introspection
// only. The active boundary is derived from the denormalized surface count.
func (o *ObservationSpace) Denormalize(observation []float64) ([]float64, error) {
	if len(observation) != len(o.parameters) {
		return nil, fmt.Errorf("observation length %d, want %d", len(observation), len(o.parameters))
	}

	out := make([]float64, len(observation))
	for i, name := range o.parameters {
		v, err := o.registry.Denormalize(name, observation[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	o.maskInactive(out, int(math.Round(out[3])))
	return out, nil
}

func (o *ObservationSpace) maskInactive(values []float64, surfaceCount int) {
	numLenses := (surfaceCount - 2) / 2
	if numLenses < 0 {
		numLenses = 0
	}
	boundary := systemFeatureSize + numLenses*lensFeatureSize
	for i := boundary; i < len(values); i++ {
		values[i] = 0
	}
}

func clip(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
