package components

import (
	"fmt"

	"github.com/qlbm-go/qlbm/circuit"
	"github.com/qlbm-go/qlbm/lattice"
)

// GridMeasurement measures every grid qubit of a lattice.
// Grid qubit k (axis order x, y, z; least significant bit first) lands in clbit k,
// so the classical register reads back as the little-endian grid coordinates.
type GridMeasurement struct {
	base
}

// NewGridMeasurement builds the measurement circuit over all lattice qubits.
func NewGridMeasurement(l *lattice.CollisionlessLattice) (*GridMeasurement, error) {
	if l == nil {
		return nil, fmt.Errorf("%s: lattice is nil", NameGridMeasurement)
	}
	c := circuit.New(NameGridMeasurement, l.QubitLabels(), l.NumGridQubits())
	for k, q := range l.GridQubits() {
		if err := c.Measure(q, k); err != nil {
			return nil, fmt.Errorf("%s: %w", NameGridMeasurement, err)
		}
	}
	return &GridMeasurement{base{name: NameGridMeasurement, lattice: l, circuit: c}}, nil
}

// GridSuperposition puts every grid qubit into uniform superposition with Hadamard gates.
type GridSuperposition struct {
	base
}

// NewGridSuperposition builds the Hadamard layer over the lattice's grid qubits.
func NewGridSuperposition(l *lattice.CollisionlessLattice) (*GridSuperposition, error) {
	if l == nil {
		return nil, fmt.Errorf("%s: lattice is nil", NameGridSuperposition)
	}
	c := circuit.New(NameGridSuperposition, l.QubitLabels(), 0)
	for _, q := range l.GridQubits() {
		if err := c.H(q); err != nil {
			return nil, fmt.Errorf("%s: %w", NameGridSuperposition, err)
		}
	}
	return &GridSuperposition{base{name: NameGridSuperposition, lattice: l, circuit: c}}, nil
}

// ClbitAxis returns the axis and bit significance encoded by clbit k of a grid measurement.
func (m *GridMeasurement) ClbitAxis(k int) (lattice.Axis, int, bool) {
	if k < 0 {
		return "", 0, false
	}
	offset := 0
	for _, a := range m.lattice.Axes() {
		n := len(m.lattice.GridIndex(a))
		if k < offset+n {
			return a, k - offset, true
		}
		offset += n
	}
	return "", 0, false
}

// DecodeGridPoint turns a measured classical register (clbit k at bit k) into grid coordinates.
func (m *GridMeasurement) DecodeGridPoint(bits uint64) []int {
	axes := m.lattice.Axes()
	point := make([]int, len(axes))
	shift := 0
	for i, a := range axes {
		n := len(m.lattice.GridIndex(a))
		point[i] = int((bits >> shift) & (1<<n - 1))
		shift += n
	}
	return point
}
