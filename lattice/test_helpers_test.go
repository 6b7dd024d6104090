package lattice

import (
	"os"
	"path/filepath"
	"testing"
)

// exampleConfig returns the 8x8 grid, 4x4 velocity lattice with one specular block.
func exampleConfig() *Config {
	return &Config{
		Lattice: LatticeSpec{
			Dim:        map[string]int{"x": 8, "y": 8},
			Velocities: map[string]int{"x": 4, "y": 4},
		},
		Geometry: []BlockSpec{
			{X: []int{5, 6}, Y: []int{1, 2}, Boundary: "specular"},
		},
	}
}

func mustLattice(t *testing.T, cfg *Config) *CollisionlessLattice {
	t.Helper()
	l, err := NewCollisionlessLattice(cfg)
	if err != nil {
		t.Fatalf("NewCollisionlessLattice: %v", err)
	}
	return l
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
