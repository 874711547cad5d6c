package engine

import (
	"math"

	"gonum.org/v1/gonum/optimize"

	"lensrl/internal/optic"
)

// degenerateObjective is returned for prescriptions the tracer cannot
// evaluate, steering the optimizer away without aborting it.
const degenerateObjective = 1e10

type VariableKind int

const (
	RadiusVariable VariableKind = iota
	ThicknessVariable
)

// Variable declares one optimizable prescription quantity.
type Variable struct {
	Surface int
	Kind    VariableKind
}

// Problem is a declared least-squares refinement: minimize the summed squared
// per-field RMS spot radius over the given variables, within a fixed
// iteration budget.
type Problem struct {
	Variables     []Variable
	MaxIterations int
}

// Optimize refines sys in place. It is advisory and best-effort: iteration
// limits and non-convergence are tolerated silently, and the best visited
// point is kept.
func Optimize(t Tracer, sys *optic.System, p Problem) {
	if len(p.Variables) == 0 {
		return
	}

	x0 := extractVariables(sys, p.Variables)
	objective := optimize.Problem{
		Func: func(x []float64) float64 {
			applyVariables(sys, p.Variables, x)
			return spotObjective(t, sys)
		},
	}
	settings := &optimize.Settings{MajorIterations: p.MaxIterations}

	result, _ := optimize.Minimize(objective, x0, settings, &optimize.NelderMead{})
	if result == nil || len(result.X) != len(x0) {
		applyVariables(sys, p.Variables, x0)
		return
	}
	applyVariables(sys, p.Variables, result.X)
}

func spotObjective(t Tracer, sys *optic.System) float64 {
	rms, err := t.RMSSpotRadius(sys)
	if err != nil {
		return degenerateObjective
	}
	sum := 0.0
	for _, r := range rms {
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return degenerateObjective
		}
		sum += r * r
	}
	return sum
}

func extractVariables(sys *optic.System, vars []Variable) []float64 {
	out := make([]float64, len(vars))
	for i, v := range vars {
		switch v.Kind {
		case RadiusVariable:
			out[i] = sys.Surfaces[v.Surface].Radius
		case ThicknessVariable:
			out[i] = sys.Surfaces[v.Surface].Thickness
		}
	}
	return out
}

func applyVariables(sys *optic.System, vars []Variable, x []float64) {
	for i, v := range vars {
		switch v.Kind {
		case RadiusVariable:
			sys.Surfaces[v.Surface].Radius = x[i]
		case ThicknessVariable:
			sys.Surfaces[v.Surface].Thickness = x[i]
		}
	}
}
