package norm

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrParameterExists   = errors.New("parameter already registered")
	ErrParameterNotFound = errors.New("parameter not registered")
	ErrNoInverse         = errors.New("no inverse registered for parameter")
)

type entry struct {
	forward Func
	inverse Func
}

// Registry maps parameter names to their scaling functions. It is built once
// at wiring time and read-only afterwards; codecs receive it explicitly
// rather than through process-global state.
type Registry struct {
	m map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{m: make(map[string]entry)}
}

// Register binds name to a forward scaling function and an optional inverse.
// Registering an existing name is a wiring error.
func (r *Registry) Register(name string, forward, inverse Func) error {
	if name == "" {
		return errors.New("parameter name is required")
	}
	if forward == nil {
		return errors.New("forward scaling function is required")
	}
	if _, exists := r.m[name]; exists {
		return fmt.Errorf("%w: %s", ErrParameterExists, name)
	}
	r.m[name] = entry{forward: forward, inverse: inverse}
	return nil
}

func (r *Registry) mustRegister(name string, forward, inverse Func) {
	if err := r.Register(name, forward, inverse); err != nil {
		panic(err)
	}
}

// Normalize maps value into the signed unit range for name. The result is
// quantized to float32 precision, matching the precision observations are
// consumed at.
func (r *Registry) Normalize(name string, value float64) (float64, error) {
	e, ok := r.m[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrParameterNotFound, name)
	}
	return quantize(e.forward(value)), nil
}

// Denormalize maps a normalized value back to the physical range for name.
func (r *Registry) Denormalize(name string, value float64) (float64, error) {
	e, ok := r.m[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrParameterNotFound, name)
	}
	if e.inverse == nil {
		return 0, fmt.Errorf("%w: %s", ErrNoInverse, name)
	}
	return quantize(e.inverse(value)), nil
}

// Parameters returns the registered names in sorted order.
func (r *Registry) Parameters() []string {
	names := make([]string, 0, len(r.m))
	for name := range r.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func quantize(v float64) float64 {
	return float64(float32(v))
}

// DefaultRegistry builds the nine standard lens-design parameters.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	fwd, inv := Log(math.Log(1e-6), math.Log(1e6))
	r.mustRegister("rms_spot_size", fwd, inv)

	fwd, inv = MinMax(0, 20)
	r.mustRegister("f_number", fwd, inv)

	fwd, inv = MinMax(0, 40)
	r.mustRegister("field_of_view", fwd, inv)

	fwd, inv = MinMax(0, 12)
	r.mustRegister("number_of_surfaces", fwd, inv)

	fwd, inv = MinMax(1.0, 2.0)
	r.mustRegister("index", fwd, inv)

	fwd, inv = MinMax(0, 100)
	r.mustRegister("abbe", fwd, inv)

	fwd, inv = Reciprocal(100)
	r.mustRegister("radius", fwd, inv)

	fwd, inv = MinMax(1, 10)
	r.mustRegister("lens_thickness", fwd, inv)

	fwd, inv = MinMax(0.1, 100)
	r.mustRegister("air_thickness", fwd, inv)

	return r
}
