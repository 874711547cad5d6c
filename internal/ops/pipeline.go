package ops

import (
	"lensrl/internal/engine"
	"lensrl/internal/optic"
)

// Pipeline validates a decoded action against the current system, then
// applies the update operation followed by the optimization operation to a
// clone. The caller's system is untouched on an invalid step, which makes
// the update-before-optimize ordering explicit and keeps invalid steps free
// of side effects.
type Pipeline struct {
	Tracer        engine.Tracer
	MaxIterations int
}

// Apply returns the post-step system and whether the action was legal. When
// the action is invalid the input system is returned unchanged.
func (p Pipeline) Apply(sys *optic.System, act Action) (*optic.System, bool) {
	if !act.Update.Validate(sys, act) || !act.Optimization.Validate(sys, act) {
		return sys, false
	}
	next := sys.Clone()
	act.Update.Execute(next, act)
	act.Optimization.Execute(p.Tracer, next, p.MaxIterations)
	return next, true
}
