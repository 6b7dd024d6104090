package components

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qlbm-go/qlbm/circuit"
	"github.com/qlbm-go/qlbm/internal/testutil"
	"github.com/qlbm-go/qlbm/lattice"
)

func TestNewGridMeasurement_ExampleLattice(t *testing.T) {
	// GIVEN the 8x8 grid, 4x4 velocity lattice
	l := testutil.ExampleLattice(t)

	// WHEN the grid measurement is built
	m, err := NewGridMeasurement(l)
	require.NoError(t, err)

	// THEN it spans every lattice qubit and measures the six grid qubits in order
	c := m.Circuit()
	assert.Equal(t, NameGridMeasurement, m.Name())
	assert.Equal(t, 16, c.NumQubits())
	assert.Equal(t, 6, c.NumClbits())
	require.Len(t, c.Ops, 6)
	for k, op := range c.Ops {
		assert.Equal(t, circuit.KindMeasure, op.Kind)
		assert.Equal(t, []int{6 + k}, op.Qubits)
		assert.Equal(t, k, op.Clbit)
	}
	assert.Equal(t, map[string]int{"measure": 6}, c.CountOps())
	assert.Equal(t, 1, c.Depth())
}

func TestNewGridMeasurement_NilLattice(t *testing.T) {
	_, err := NewGridMeasurement(nil)

	assert.ErrorContains(t, err, "lattice is nil")
}

func TestGridMeasurement_DrawText_MatchesGolden(t *testing.T) {
	m, err := NewGridMeasurement(testutil.ExampleLattice(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Draw("text", &buf))

	testutil.AssertGolden(t, filepath.Join("testdata", "grid_measurement.golden.txt"), buf.String())
}

func TestGridMeasurement_DrawMpl_WritesPNG(t *testing.T) {
	m, err := NewGridMeasurement(testutil.ExampleLattice(t))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, m.Draw("mpl", &buf))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestGridMeasurement_ClbitAxis(t *testing.T) {
	m, err := NewGridMeasurement(testutil.ExampleLattice(t))
	require.NoError(t, err)

	tests := []struct {
		clbit   int
		axis    lattice.Axis
		bit     int
		inRange bool
	}{
		{-1, "", 0, false},
		{0, lattice.AxisX, 0, true},
		{2, lattice.AxisX, 2, true},
		{3, lattice.AxisY, 0, true},
		{5, lattice.AxisY, 2, true},
		{6, "", 0, false},
	}
	for _, tt := range tests {
		axis, bit, ok := m.ClbitAxis(tt.clbit)
		assert.Equal(t, tt.inRange, ok, "clbit %d", tt.clbit)
		assert.Equal(t, tt.axis, axis, "clbit %d", tt.clbit)
		assert.Equal(t, tt.bit, bit, "clbit %d", tt.clbit)
	}
}

func TestGridMeasurement_DecodeGridPoint(t *testing.T) {
	m, err := NewGridMeasurement(testutil.ExampleLattice(t))
	require.NoError(t, err)

	// x occupies the low three bits, y the next three
	tests := []struct {
		bits uint64
		want []int
	}{
		{0b000_000, []int{0, 0}},
		{0b000_101, []int{5, 0}},
		{0b010_110, []int{6, 2}},
		{0b111_111, []int{7, 7}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, m.DecodeGridPoint(tt.bits)); diff != "" {
			t.Errorf("DecodeGridPoint(%b) mismatch (-want +got):\n%s", tt.bits, diff)
		}
	}
}

func TestNewGridSuperposition_HadamardPerGridQubit(t *testing.T) {
	l := testutil.ExampleLattice(t)

	s, err := NewGridSuperposition(l)
	require.NoError(t, err)

	c := s.Circuit()
	assert.Equal(t, 0, c.NumClbits())
	assert.Equal(t, map[string]int{"h": 6}, c.CountOps())
	assert.Equal(t, 1, c.Depth())
	assert.Len(t, c.Layers(), 1)
}

func TestNew_ByName(t *testing.T) {
	l := testutil.ExampleLattice(t)

	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, err := New(name, l)
			require.NoError(t, err)
			assert.Equal(t, name, c.Name())
		})
	}
}

func TestNew_UnknownComponent(t *testing.T) {
	c, err := New("streaming", testutil.ExampleLattice(t))

	assert.Nil(t, c)
	assert.ErrorContains(t, err, `unknown component "streaming"`)
	assert.ErrorContains(t, err, NameGridMeasurement)
}

func TestNames_Sorted(t *testing.T) {
	assert.Equal(t, []string{NameGridMeasurement, NameGridSuperposition}, Names())
}
