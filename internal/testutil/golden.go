// Package testutil provides shared test infrastructure for the qlbm packages:
// the reference lattice used across tests and golden-file assertions for
// rendered output.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/qlbm-go/qlbm/lattice"
)

// ExampleConfig returns the reference configuration: an 8x8 grid with 4x4
// velocities and one specular block at x:[5,6] y:[1,2].
func ExampleConfig() *lattice.Config {
	return &lattice.Config{
		Lattice: lattice.LatticeSpec{
			Dim:        map[string]int{"x": 8, "y": 8},
			Velocities: map[string]int{"x": 4, "y": 4},
		},
		Geometry: []lattice.BlockSpec{
			{X: []int{5, 6}, Y: []int{1, 2}, Boundary: "specular"},
		},
	}
}

// ExampleLattice builds the lattice described by ExampleConfig.
func ExampleLattice(t *testing.T) *lattice.CollisionlessLattice {
	t.Helper()
	l, err := lattice.NewCollisionlessLattice(ExampleConfig())
	if err != nil {
		t.Fatalf("building example lattice: %v", err)
	}
	return l
}

// AssertGolden compares got with the golden file at path (relative to the
// calling package). Setting UPDATE_GOLDEN=1 rewrites the file instead.
func AssertGolden(t *testing.T, path string, got string) {
	t.Helper()
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("creating golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("writing golden file: %v", err)
		}
		return
	}
	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading golden file %s: %v (run with UPDATE_GOLDEN=1 to create it)", path, err)
	}
	if diff := cmp.Diff(string(want), got); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", path, diff)
	}
}
