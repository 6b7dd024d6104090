package lattice

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollisionlessLattice_Example_LaysOutSixteenQubits(t *testing.T) {
	l := mustLattice(t, exampleConfig())

	assert.Equal(t, 2, l.NumDims())
	assert.Equal(t, 16, l.NumQubits())
	assert.Equal(t, 6, l.NumGridQubits())
	assert.Equal(t, 4, l.NumVelocityQubits())
	assert.Equal(t, 6, l.NumAncillaQubits())
	assert.Equal(t, "8x8 grid, 4x4 velocities, 1 block(s), 16 qubits", l.String())
}

func TestNewCollisionlessLattice_Example_RegisterIndices(t *testing.T) {
	l := mustLattice(t, exampleConfig())

	assert.Equal(t, []int{0}, l.AncillaVelocityIndex(AxisX))
	assert.Equal(t, []int{1}, l.AncillaVelocityIndex(AxisY))
	assert.Equal(t, []int{2}, l.AncillaObstacleIndex(AxisX))
	assert.Equal(t, []int{3}, l.AncillaObstacleIndex(AxisY))
	assert.Equal(t, []int{4, 5}, l.AncillaComparatorIndex())
	assert.Equal(t, []int{6, 7, 8}, l.GridIndex(AxisX))
	assert.Equal(t, []int{9, 10, 11}, l.GridIndex(AxisY))
	assert.Equal(t, []int{12}, l.VelocityIndex(AxisX))
	assert.Equal(t, []int{13}, l.VelocityIndex(AxisY))
	assert.Equal(t, []int{14}, l.VelocityDirIndex(AxisX))
	assert.Equal(t, []int{15}, l.VelocityDirIndex(AxisY))
	assert.Equal(t, []int{6, 7, 8, 9, 10, 11}, l.GridQubits())
	assert.Nil(t, l.GridIndex(AxisZ))
	assert.Nil(t, l.AncillaObstacleIndex(AxisZ))
}

func TestNewCollisionlessLattice_RegistersAreContiguous(t *testing.T) {
	l := mustLattice(t, exampleConfig())

	next := 0
	for _, r := range l.Registers() {
		assert.Equal(t, next, r.Start, "register %s", r.Name)
		assert.Positive(t, r.Size, "register %s", r.Name)
		next += r.Size
	}
	assert.Equal(t, l.NumQubits(), next)
	assert.Len(t, l.QubitLabels(), l.NumQubits())
	assert.Equal(t, "a_v[0]", l.QubitLabels()[0])
	assert.Equal(t, "g_x[0]", l.QubitLabels()[6])
	assert.Equal(t, "d_y[0]", l.QubitLabels()[15])
}

func TestNewCollisionlessLattice_OneDimensional_OmitsEmptyRegisters(t *testing.T) {
	// GIVEN a 1-D lattice with two velocities (no magnitude qubits, no comparators)
	cfg := &Config{Lattice: LatticeSpec{Dim: map[string]int{"x": 4}, Velocities: map[string]int{"x": 2}}}

	l := mustLattice(t, cfg)

	names := make([]string, 0)
	for _, r := range l.Registers() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"a_v", "a_o", "g_x", "d_x"}, names)
	assert.Equal(t, 5, l.NumQubits())
	assert.Empty(t, l.AncillaComparatorIndex())
	assert.Empty(t, l.VelocityIndex(AxisX))
}

func TestNewCollisionlessLattice_ThreeDimensional_QubitCount(t *testing.T) {
	cfg := &Config{Lattice: LatticeSpec{
		Dim:        map[string]int{"x": 16, "y": 8, "z": 4},
		Velocities: map[string]int{"x": 8, "y": 4, "z": 2},
	}}

	l := mustLattice(t, cfg)

	// ancillas 3+3+4, grid 4+3+2, magnitude 2+1+0, direction 3
	assert.Equal(t, 10, l.NumAncillaQubits())
	assert.Equal(t, 9, l.NumGridQubits())
	assert.Equal(t, 6, l.NumVelocityQubits())
	assert.Equal(t, 25, l.NumQubits())
}

func TestNewCollisionlessLattice_InvalidConfig_WrapsSentinel(t *testing.T) {
	cfg := exampleConfig()
	cfg.Lattice.Dim["x"] = 10

	_, err := NewCollisionlessLattice(cfg)

	assert.True(t, errors.Is(err, ErrNotPowerOfTwo), "got %v", err)
}

func TestNewCollisionlessLattice_LargestGrid_BuildsWithoutConnectivityScan(t *testing.T) {
	// GIVEN a grid at the qubit limit (2^24 points) with one obstacle
	cfg := exampleConfig()
	cfg.Lattice.Dim = map[string]int{"x": 4096, "y": 4096}

	// WHEN built
	l := mustLattice(t, cfg)

	// THEN the layout is available and the point count is exact
	assert.Equal(t, MaxGridQubits, l.NumGridQubits())
	assert.Equal(t, 1<<MaxGridQubits, l.NumGridPoints())
	assert.Greater(t, l.NumGridPoints(), FluidCheckLimit)
	assert.Equal(t, []int{4095, 4095}, l.PointAt(l.NumGridPoints()-1))
}

func TestNewCollisionlessLattice_BeyondGridLimit_ReturnsErrTooLarge(t *testing.T) {
	cases := map[string]map[string]int{
		"one qubit over":    {"x": 4096, "y": 8192},
		"huge single axis":  {"x": 1 << 62, "y": 8},
		"product overflows": {"x": 1 << 32, "y": 1 << 32},
	}
	for name, dim := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := exampleConfig()
			cfg.Lattice.Dim = dim

			l, err := NewCollisionlessLattice(cfg)

			assert.ErrorIs(t, err, ErrTooLarge)
			assert.Nil(t, l)
		})
	}
}

func TestNewCollisionlessLattice_NilConfig_ReturnsError(t *testing.T) {
	_, err := NewCollisionlessLattice(nil)

	assert.Error(t, err)
}

func TestNewCollisionlessLattice_DoesNotMutateInput(t *testing.T) {
	// GIVEN a config relying on the legacy empty-boundary default
	cfg := exampleConfig()
	cfg.Geometry[0].Boundary = ""

	l := mustLattice(t, cfg)

	// THEN the caller's config is untouched and the lattice holds the normalized copy
	assert.Equal(t, "", cfg.Geometry[0].Boundary)
	assert.Equal(t, "specular", l.Config().Geometry[0].Boundary)
	assert.Equal(t, BoundarySpecular, l.Blocks()[0].Boundary)
}

func TestNewCollisionlessLatticeFromFile_LoadsYAML(t *testing.T) {
	path := writeTempFile(t, "lattice.yaml", exampleYAML)

	l, err := NewCollisionlessLatticeFromFile(path)

	require.NoError(t, err)
	assert.Equal(t, 16, l.NumQubits())
}

func TestCollisionlessLattice_IsObstacle(t *testing.T) {
	l := mustLattice(t, exampleConfig())

	assert.True(t, l.IsObstacle([]int{5, 1}))
	assert.True(t, l.IsObstacle([]int{6, 2}))
	assert.False(t, l.IsObstacle([]int{4, 1}))
	assert.False(t, l.IsObstacle([]int{0, 0}))
}

func TestCollisionlessLattice_PointIndex_RoundTrips(t *testing.T) {
	l := mustLattice(t, exampleConfig())

	for idx := 0; idx < l.NumGridPoints(); idx++ {
		assert.Equal(t, idx, l.PointIndex(l.PointAt(idx)))
	}
	assert.Equal(t, []int{3, 2}, l.PointAt(19))
}

func TestCollisionlessLattice_QubitLabel(t *testing.T) {
	l := mustLattice(t, exampleConfig())

	assert.Equal(t, "a_v[0]", l.QubitLabel(0))
	assert.Equal(t, "g_x[0]", l.QubitLabel(6))
	assert.Equal(t, "g_y[2]", l.QubitLabel(11))
	assert.Equal(t, "d_y[0]", l.QubitLabel(15))
	assert.Equal(t, "", l.QubitLabel(16))
	assert.Equal(t, l.QubitLabels()[12], l.QubitLabel(12))
}

func TestCollisionlessLattice_GridPoints(t *testing.T) {
	l := mustLattice(t, exampleConfig())

	points := l.GridPoints()

	require.Len(t, points, 64)
	assert.Equal(t, []int{0, 0}, points[0])
	assert.Equal(t, []int{1, 0}, points[1])
	assert.Equal(t, []int{7, 7}, points[63])
}

func TestCollisionlessLattice_Walls_PerBlock(t *testing.T) {
	l := mustLattice(t, exampleConfig())

	walls := l.Walls()

	require.Len(t, walls, 1)
	got := make([]string, len(walls[0]))
	for i, w := range walls[0] {
		got[i] = w.String()
	}
	want := []string{
		"x/low x:[4,4] y:[1,2]",
		"x/high x:[7,7] y:[1,2]",
		"y/low x:[5,6] y:[0,0]",
		"y/high x:[5,6] y:[3,3]",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("walls mismatch (-want +got):\n%s", diff)
	}
}
