package engine

import (
	"errors"

	"lensrl/internal/optic"
)

var (
	ErrTooFewSurfaces = errors.New("system needs at least one interior surface")
	ErrNoPower        = errors.New("system has no optical power")
)

// Tracer is the optical engine collaborator. Implementations compute
// first-order properties and the ray-based focus metric; the environment core
// only owns the prescription the tracer reads.
type Tracer interface {
	// RMSSpotRadius returns the RMS spot radius at the image plane for each
	// field coordinate of the system. Entries may be NaN for degenerate
	// geometry; callers substitute sentinels before normalization.
	RMSSpotRadius(sys *optic.System) ([]float64, error)

	// ParaxialFocalLength returns the effective focal length.
	ParaxialFocalLength(sys *optic.System) (float64, error)
}

// ScaleToUnityFocalLength rescales the whole system so its effective focal
// length becomes 1.
func ScaleToUnityFocalLength(t Tracer, sys *optic.System) error {
	f, err := t.ParaxialFocalLength(sys)
	if err != nil {
		return err
	}
	sys.Scale(1 / f)
	return nil
}
