package space

import (
	"fmt"
	"math"

	"lensrl/internal/norm"
	"lensrl/internal/ops"
)

const discreteSlots = 5

// continuousParameters names the registry entries for the trailing
// continuous action slots, in positional order.
var continuousParameters = []string{"radius", "radius", "lens_thickness", "air_thickness"}

// ActionSpace decodes a raw signed vector into a structured action: two
// operation selectors, three index selectors, four denormalized continuous
// parameters. Decoding is deterministic; discrete ties round half away from
// zero.
type ActionSpace struct {
	registry     *norm.Registry
	maxLenses    int
	maxSurfaces  int
	maxMaterials int
}

func NewActionSpace(registry *norm.Registry, maxLenses, maxMaterials int) *ActionSpace {
	return &ActionSpace{
		registry:     registry,
		maxLenses:    maxLenses,
		maxSurfaces:  2*maxLenses + 2,
		maxMaterials: maxMaterials,
	}
}

// Size is the fixed raw action length.
func (a *ActionSpace) Size() int {
	return discreteSlots + len(continuousParameters)
}

// Decode maps a raw vector in [-1, 1]^Size into the execution-facing tuple.
func (a *ActionSpace) Decode(raw []float64) (ops.Action, error) {
	if len(raw) != a.Size() {
		return ops.Action{}, fmt.Errorf("raw action length %d, want %d", len(raw), a.Size())
	}

	act := ops.Action{
		Optimization:  ops.Optimization(decodeDiscrete(raw[0], ops.NumOptimizations)),
		Update:        ops.Update(decodeDiscrete(raw[1], ops.NumUpdates)),
		LensIndex:     decodeDiscrete(raw[2], a.maxLenses),
		SurfaceIndex:  decodeDiscrete(raw[3], a.maxSurfaces),
		MaterialIndex: decodeDiscrete(raw[4], a.maxMaterials),
	}

	values := make([]float64, len(continuousParameters))
	for i, name := range continuousParameters {
		v, err := a.registry.Denormalize(name, raw[discreteSlots+i])
		if err != nil {
			return ops.Action{}, err
		}
		values[i] = v
	}
	act.Radius0 = values[0]
	act.Radius1 = values[1]
	act.Thickness0 = values[2]
	act.Thickness1 = values[3]
	return act, nil
}

// decodeDiscrete maps [-1, 1] onto {0, ..., cardinality-1}.
func decodeDiscrete(v float64, cardinality int) int {
	return int(math.Round((v + 1) / 2 * float64(cardinality-1)))
}
