package engine

import (
	"math"

	"lensrl/internal/optic"
)

// Paraxial is a first-order tracer: marginal and chief rays propagated with
// the paraxial refraction and transfer equations, and a defocus-blur spot
// metric. It stands in for a full ray-trace engine in tests and the demo CLI.
type Paraxial struct{}

func (Paraxial) ParaxialFocalLength(sys *optic.System) (float64, error) {
	if len(sys.Surfaces) < 3 {
		return 0, ErrTooFewSurfaces
	}
	// Parallel input ray at unit height; EFL = -y0/u'.
	_, u, err := tracePastInterior(sys, 1, 0)
	if err != nil {
		return 0, err
	}
	if u == 0 || math.IsNaN(u) {
		return 0, ErrNoPower
	}
	return -1 / u, nil
}

// RMSSpotRadius traces a small fan per field and measures ray heights at the
// image plane relative to the chief ray. Degenerate geometry yields NaN.
func (p Paraxial) RMSSpotRadius(sys *optic.System) ([]float64, error) {
	if len(sys.Surfaces) < 3 {
		return nil, ErrTooFewSurfaces
	}

	f, err := p.ParaxialFocalLength(sys)
	aperture := math.NaN()
	if err == nil {
		aperture = f / (2 * sys.FNumber)
	}

	fields := sys.Fields()
	out := make([]float64, len(fields))
	for i, field := range fields {
		out[i] = p.spotRadius(sys, aperture, field)
	}
	return out, nil
}

func (p Paraxial) spotRadius(sys *optic.System, aperture, fieldDeg float64) float64 {
	if math.IsNaN(aperture) {
		return math.NaN()
	}
	slope := math.Tan(fieldDeg * math.Pi / 180)

	chief, err := traceToImage(sys, 0, slope)
	if err != nil {
		return math.NaN()
	}

	sum := 0.0
	pupilHeights := []float64{1.0, 0.5}
	for _, h := range pupilHeights {
		y, err := traceToImage(sys, aperture*h, slope)
		if err != nil {
			return math.NaN()
		}
		d := y - chief
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(pupilHeights)))
}

// tracePastInterior refracts and transfers a paraxial ray through every
// interior surface, leaving it in the space following the last one.
func tracePastInterior(sys *optic.System, y, u float64) (float64, float64, error) {
	n := 1.0
	for _, surf := range sys.Surfaces[1 : len(sys.Surfaces)-1] {
		n2 := 1.0
		if surf.Material != nil {
			n2 = surf.Material.Nd
		}
		if surf.Radius == 0 {
			return 0, 0, ErrNoPower
		}
		power := 0.0
		if !math.IsInf(surf.Radius, 0) {
			power = (n2 - n) / surf.Radius
		}
		u = (n*u - y*power) / n2
		y += surf.Thickness * u
		n = n2
	}
	return y, u, nil
}

// traceToImage returns the ray height at the image plane. The thickness of
// the last interior surface is the gap to the image surface, so the transfer
// loop lands there directly.
func traceToImage(sys *optic.System, y, u float64) (float64, error) {
	y, _, err := tracePastInterior(sys, y, u)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, ErrNoPower
	}
	return y, nil
}
