package ops

import (
	"math/rand"
	"testing"

	"lensrl/internal/optic"
)

func seededSystem(t *testing.T, maxLenses int) *optic.System {
	t.Helper()
	sys := optic.NewSystem(10, maxLenses)
	sys.Reset(rand.New(rand.NewSource(21)))
	return sys
}

// legalAdd is a baseline add-lens action that validates against a fresh
// two-lens-capacity system.
func legalAdd() Action {
	return Action{
		Update:        AddLens,
		Optimization:  OptimizeNone,
		LensIndex:     1,
		MaterialIndex: 0,
		Radius0:       50,
		Radius1:       -50,
		Thickness0:    2,
		Thickness1:    5,
	}
}

func TestAddLensValidate(t *testing.T) {
	cases := []struct {
		name      string
		maxLenses int
		mutate    func(*Action)
		want      bool
	}{
		{"legal", 2, func(*Action) {}, true},
		{"front insert", 2, func(a *Action) { a.LensIndex = 0 }, true},
		{"negative lens thickness", 2, func(a *Action) { a.Thickness0 = -1 }, false},
		{"negative air thickness", 2, func(a *Action) { a.Thickness1 = -0.5 }, false},
		{"zero front radius", 2, func(a *Action) { a.Radius0 = 0 }, false},
		{"zero back radius", 2, func(a *Action) { a.Radius1 = 0 }, false},
		{"material out of catalog", 2, func(a *Action) { a.MaterialIndex = len(optic.Catalog) }, false},
		{"negative material", 2, func(a *Action) { a.MaterialIndex = -1 }, false},
		{"lens index past end", 2, func(a *Action) { a.LensIndex = 2 }, false},
		{"negative lens index", 2, func(a *Action) { a.LensIndex = -1 }, false},
		{"at capacity", 1, func(a *Action) { a.LensIndex = 0 }, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sys := seededSystem(t, tc.maxLenses)
			act := legalAdd()
			tc.mutate(&act)
			if got := AddLens.Validate(sys, act); got != tc.want {
				t.Fatalf("validate: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestChangeGlassValidate(t *testing.T) {
	sys := seededSystem(t, 1)
	cases := []struct {
		name string
		act  Action
		want bool
	}{
		{"legal", Action{LensIndex: 0, MaterialIndex: 5}, true},
		{"lens index past end", Action{LensIndex: 1, MaterialIndex: 5}, false},
		{"negative lens index", Action{LensIndex: -1, MaterialIndex: 5}, false},
		{"material out of catalog", Action{LensIndex: 0, MaterialIndex: len(optic.Catalog)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ChangeGlass.Validate(sys, tc.act); got != tc.want {
				t.Fatalf("validate: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMoveStopValidate(t *testing.T) {
	sys := seededSystem(t, 1) // 4 surfaces
	cases := []struct {
		surface int
		want    bool
	}{
		{0, false}, // object surface cannot hold the stop
		{1, true},
		{2, true},
		{3, false}, // image surface cannot hold the stop
		{7, false},
	}
	for _, tc := range cases {
		act := Action{SurfaceIndex: tc.surface}
		if got := MoveStop.Validate(sys, act); got != tc.want {
			t.Fatalf("surface %d: validate got %v, want %v", tc.surface, got, tc.want)
		}
	}
}

func TestIncreaseFieldOfViewAlwaysValid(t *testing.T) {
	sys := seededSystem(t, 1)
	if !IncreaseFieldOfView.Validate(sys, Action{}) {
		t.Fatal("field-of-view increase should always validate")
	}
}

func TestUnknownVariantsInvalid(t *testing.T) {
	sys := seededSystem(t, 1)
	if Update(99).Validate(sys, Action{}) {
		t.Fatal("unknown update variant should not validate")
	}
	if Optimization(99).Validate(sys, Action{}) {
		t.Fatal("unknown optimization variant should not validate")
	}
}

func TestUpdateExecute(t *testing.T) {
	t.Run("add lens", func(t *testing.T) {
		sys := seededSystem(t, 2)
		act := legalAdd()
		AddLens.Execute(sys, act)
		if got := sys.NumSurfaces(); got != 6 {
			t.Fatalf("surface count: got %d, want 6", got)
		}
		if sys.Surfaces[3].Material != &optic.Catalog[0] {
			t.Fatal("inserted element carries the wrong material")
		}
	})

	t.Run("change glass", func(t *testing.T) {
		sys := seededSystem(t, 1)
		ChangeGlass.Execute(sys, Action{LensIndex: 0, MaterialIndex: 7})
		if sys.Surfaces[1].Material != &optic.Catalog[7] {
			t.Fatal("material swap did not take")
		}
	})

	t.Run("increase field of view", func(t *testing.T) {
		sys := seededSystem(t, 1)
		IncreaseFieldOfView.Execute(sys, Action{})
		if sys.FieldOfView != 4 {
			t.Fatalf("field of view: got %f, want 4", sys.FieldOfView)
		}
		IncreaseFieldOfView.Execute(sys, Action{})
		if sys.FieldOfView != 8 {
			t.Fatalf("field of view: got %f, want 8", sys.FieldOfView)
		}
	})

	t.Run("move stop", func(t *testing.T) {
		sys := seededSystem(t, 1)
		MoveStop.Execute(sys, Action{SurfaceIndex: 2})
		if got := sys.StopIndex(); got != 2 {
			t.Fatalf("stop index: got %d, want 2", got)
		}
	})
}
