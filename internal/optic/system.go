package optic

import (
	"math"
	"math/rand"
	"slices"
)

// Surface is a single optical interface: a radius of curvature, the axial
// thickness to the next surface, and the material trailing the surface
// (nil for air). Exactly one surface carries the aperture stop flag.
type Surface struct {
	Radius    float64
	Thickness float64
	Material  *Glass
	IsStop    bool
}

// rmsPlaceholder stands in for the RMS spot size until the first reward
// evaluation, and again whenever the geometry degenerates to NaN. The
// logarithmic observation scaling cannot accept NaN or non-positive input.
const rmsPlaceholder = 1e6

// System is a surface-indexed lens prescription plus the scalar state the
// environment observes. Surface 0 is the object surface and the last surface
// is the image surface; interior surfaces come in pairs per lens element.
type System struct {
	FNumber     float64
	FieldOfView float64
	MaxLenses   int
	RMS         float64
	Surfaces    []Surface
}

func NewSystem(fNumber float64, maxLenses int) *System {
	return &System{
		FNumber:   fNumber,
		MaxLenses: maxLenses,
		RMS:       rmsPlaceholder,
	}
}

// Reset replaces the prescription wholesale: object surface, one random seed
// element carrying the stop, and the image surface. Field of view restarts
// at zero.
func (s *System) Reset(rng *rand.Rand) {
	material := &Catalog[rng.Intn(len(Catalog))]
	s.Surfaces = []Surface{
		{Radius: math.Inf(1), Thickness: math.Inf(1)},
		{Radius: 1000 * rng.Float64(), Thickness: 10 * rng.Float64(), Material: material, IsStop: true},
		{Radius: -1000 * rng.Float64(), Thickness: 100 * rng.Float64()},
		{Radius: math.Inf(1)},
	}
	s.FieldOfView = 0
	s.RMS = rmsPlaceholder
}

func (s *System) Clone() *System {
	out := *s
	out.Surfaces = slices.Clone(s.Surfaces)
	return &out
}

func (s *System) NumSurfaces() int {
	return len(s.Surfaces)
}

// NumLenses counts lens elements: interior surfaces come in pairs.
func (s *System) NumLenses() int {
	return len(s.Surfaces)/2 - 1
}

// Complexity is the number of interior surfaces.
func (s *System) Complexity() int {
	return max(len(s.Surfaces)-2, 0)
}

// Fields returns the field-of-view sample coordinates in degrees: on-axis
// only while the field of view is zero, otherwise axis, 0.7 zone and edge.
func (s *System) Fields() []float64 {
	if s.FieldOfView <= 0 {
		return []float64{0}
	}
	return []float64{0, 0.7 * s.FieldOfView, s.FieldOfView}
}

// StopIndex returns the surface index flagged as the aperture stop, or -1.
func (s *System) StopIndex() int {
	for i := range s.Surfaces {
		if s.Surfaces[i].IsStop {
			return i
		}
	}
	return -1
}

// AddLens inserts a two-surface element ahead of lens position lensIdx.
func (s *System) AddLens(lensIdx int, radii, thicknesses [2]float64, material *Glass) {
	idx := lensIdx*2 + 1
	s.Surfaces = slices.Insert(s.Surfaces, idx,
		Surface{Radius: radii[0], Thickness: thicknesses[0], Material: material},
		Surface{Radius: radii[1], Thickness: thicknesses[1]},
	)
}

// ChangeGlass swaps the material of the element at lensIdx.
func (s *System) ChangeGlass(lensIdx int, material *Glass) {
	s.Surfaces[lensIdx*2+1].Material = material
}

// MoveStop flags surfaceIdx as the aperture stop and clears every other flag.
func (s *System) MoveStop(surfaceIdx int) {
	for i := range s.Surfaces {
		s.Surfaces[i].IsStop = i == surfaceIdx
	}
}

func (s *System) IncreaseFieldOfView(increment float64) {
	s.FieldOfView += increment
}

// Scale multiplies every finite radius and thickness by factor.
func (s *System) Scale(factor float64) {
	for i := range s.Surfaces {
		if !math.IsInf(s.Surfaces[i].Radius, 0) {
			s.Surfaces[i].Radius *= factor
		}
		if !math.IsInf(s.Surfaces[i].Thickness, 0) {
			s.Surfaces[i].Thickness *= factor
		}
	}
}

// positions returns cumulative axial surface positions, measured from the
// first interior surface. The object surface sits at infinite distance and
// is excluded.
func (s *System) positions() []float64 {
	pos := make([]float64, 0, len(s.Surfaces)-1)
	z := 0.0
	for _, surf := range s.Surfaces[1:] {
		pos = append(pos, z)
		z += surf.Thickness
	}
	return pos
}

// RawObservation flattens the prescription into the fixed feature layout:
// 4 system scalars followed by MaxLenses blocks of 6 slots. Surfaces that
// carry a trailing material emit (index, abbe) ahead of (radius, separation);
// air-gap surfaces emit only the latter pair. The tail is zero padded.
func (s *System) RawObservation() []float64 {
	pos := s.positions()
	data := make([]float64, 0, 6*s.MaxLenses)
	for k, surf := range s.Surfaces[1 : len(s.Surfaces)-1] {
		if surf.Material != nil {
			data = append(data, surf.Material.Nd, surf.Material.Vd)
		}
		data = append(data, surf.Radius, pos[k+1]-pos[k])
	}

	if len(data) > 6*s.MaxLenses {
		data = data[:6*s.MaxLenses]
	}
	for len(data) < 6*s.MaxLenses {
		data = append(data, 0)
	}

	out := make([]float64, 0, 4+6*s.MaxLenses)
	out = append(out, s.RMS, s.FNumber, s.FieldOfView, float64(len(s.Surfaces)))
	return append(out, data...)
}
