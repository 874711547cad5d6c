// Package ops holds the closed set of update and optimization operations an
// agent step composes, and the pipeline that validates then applies them.
package ops

import (
	"lensrl/internal/engine"
	"lensrl/internal/optic"
)

// fovIncrement is the fixed field-of-view step in degrees.
const fovIncrement = 4.0

// Action is the execution-facing decoded form of a raw agent action. Decoded
// actions are transient: consumed once per step, never stored.
type Action struct {
	Optimization  Optimization
	Update        Update
	LensIndex     int
	SurfaceIndex  int
	MaterialIndex int
	Radius0       float64
	Radius1       float64
	Thickness0    float64
	Thickness1    float64
}

// Update mutates the prescription before any optimization runs.
type Update int

const (
	AddLens Update = iota
	ChangeGlass
	IncreaseFieldOfView
	MoveStop

	NumUpdates = 4
)

// Validate reports whether the update may be applied to sys. It never
// mutates state.
func (u Update) Validate(sys *optic.System, act Action) bool {
	switch u {
	case AddLens:
		if act.Thickness0 < 0 || act.Thickness1 < 0 {
			return false
		}
		if act.MaterialIndex < 0 || act.MaterialIndex >= len(optic.Catalog) {
			return false
		}
		if act.Radius0 == 0 || act.Radius1 == 0 {
			return false
		}
		numLenses := sys.NumLenses()
		if act.LensIndex < 0 || act.LensIndex > numLenses {
			return false
		}
		return numLenses < sys.MaxLenses
	case ChangeGlass:
		if act.LensIndex < 0 || act.LensIndex >= sys.NumLenses() {
			return false
		}
		return act.MaterialIndex >= 0 && act.MaterialIndex < len(optic.Catalog)
	case IncreaseFieldOfView:
		return true
	case MoveStop:
		return act.SurfaceIndex != 0 && act.SurfaceIndex < len(sys.Surfaces)-1
	}
	return false
}

func (u Update) Execute(sys *optic.System, act Action) {
	switch u {
	case AddLens:
		sys.AddLens(act.LensIndex,
			[2]float64{act.Radius0, act.Radius1},
			[2]float64{act.Thickness0, act.Thickness1},
			&optic.Catalog[act.MaterialIndex])
	case ChangeGlass:
		sys.ChangeGlass(act.LensIndex, &optic.Catalog[act.MaterialIndex])
	case IncreaseFieldOfView:
		sys.IncreaseFieldOfView(fovIncrement)
	case MoveStop:
		sys.MoveStop(act.SurfaceIndex)
	}
}

// Optimization refines the post-update geometry through the bounded
// least-squares collaborator.
type Optimization int

const (
	OptimizeRadii Optimization = iota // all radii plus the back thickness
	OptimizeAirGaps                   // all radii plus every air-gap thickness
	OptimizeNone

	NumOptimizations = 3
)

// Validate is structural for every optimization variant: validity depends
// only on the update having produced a legal prescription.
func (o Optimization) Validate(*optic.System, Action) bool {
	switch o {
	case OptimizeRadii, OptimizeAirGaps, OptimizeNone:
		return true
	}
	return false
}

func (o Optimization) Execute(t engine.Tracer, sys *optic.System, maxIterations int) {
	switch o {
	case OptimizeRadii:
		engine.Optimize(t, sys, engine.Problem{
			Variables:     append(radiusVariables(sys), engine.Variable{Surface: len(sys.Surfaces) - 2, Kind: engine.ThicknessVariable}),
			MaxIterations: maxIterations,
		})
	case OptimizeAirGaps:
		vars := radiusVariables(sys)
		for i := 1; i < len(sys.Surfaces)-1; i++ {
			if sys.Surfaces[i].Material == nil {
				vars = append(vars, engine.Variable{Surface: i, Kind: engine.ThicknessVariable})
			}
		}
		engine.Optimize(t, sys, engine.Problem{Variables: vars, MaxIterations: maxIterations})
	case OptimizeNone:
	}
}

func radiusVariables(sys *optic.System) []engine.Variable {
	vars := make([]engine.Variable, 0, len(sys.Surfaces)-2)
	for i := 1; i < len(sys.Surfaces)-1; i++ {
		vars = append(vars, engine.Variable{Surface: i, Kind: engine.RadiusVariable})
	}
	return vars
}
