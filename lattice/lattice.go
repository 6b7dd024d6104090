package lattice

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// FluidCheckLimit is the largest grid, in points, whose fluid connectivity
// NewCollisionlessLattice checks while building.
const FluidCheckLimit = 1 << 16

// CollisionlessLattice is a validated lattice together with its qubit register layout.
// It is immutable after construction.
type CollisionlessLattice struct {
	config     *Config
	axes       []Axis
	dims       []int
	velocities []int
	blocks     []Block
	registers  []Register
	numQubits  int
}

// NewCollisionlessLattice normalizes and validates cfg, then lays out the registers.
// cfg is not modified; the lattice keeps its own normalized copy.
func NewCollisionlessLattice(cfg *Config) (*CollisionlessLattice, error) {
	if cfg == nil {
		return nil, fmt.Errorf("lattice config is nil")
	}
	own := cfg.Clone()
	own.Normalize()
	blocks, err := own.blocks()
	if err != nil {
		return nil, fmt.Errorf("invalid lattice config: %w", err)
	}

	axes, _ := axesOf(own.Lattice.Dim, "lattice.dim")
	l := &CollisionlessLattice{
		config:     own,
		axes:       axes,
		dims:       make([]int, len(axes)),
		velocities: make([]int, len(axes)),
		blocks:     blocks,
	}
	for i, a := range axes {
		l.dims[i] = own.Lattice.Dim[string(a)]
		l.velocities[i] = own.Lattice.Velocities[string(a)]
	}
	l.registers = buildRegisters(axes, l.dims, l.velocities)
	for _, r := range l.registers {
		l.numQubits += r.Size
	}

	logrus.Debugf("built collisionless lattice: dims=%v velocities=%v blocks=%d qubits=%d",
		l.dims, l.velocities, len(l.blocks), l.numQubits)
	switch {
	case len(l.blocks) == 0:
	case l.NumGridPoints() > FluidCheckLimit:
		logrus.Debugf("skipping fluid connectivity check: %d grid points exceed %d", l.NumGridPoints(), FluidCheckLimit)
	default:
		if regions := l.FluidRegions(); len(regions) > 1 {
			logrus.Warnf("fluid domain is split into %d disconnected regions by the geometry", len(regions))
		}
	}
	return l, nil
}

// NewCollisionlessLatticeFromFile loads a configuration file and builds the lattice.
func NewCollisionlessLatticeFromFile(path string) (*CollisionlessLattice, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	return NewCollisionlessLattice(cfg)
}

// Config returns a copy of the normalized configuration.
func (l *CollisionlessLattice) Config() *Config { return l.config.Clone() }

// NumDims returns the number of spatial dimensions.
func (l *CollisionlessLattice) NumDims() int { return len(l.axes) }

// Axes returns the lattice axes in canonical order.
func (l *CollisionlessLattice) Axes() []Axis { return append([]Axis(nil), l.axes...) }

// Dims returns the number of grid points per axis.
func (l *CollisionlessLattice) Dims() []int { return append([]int(nil), l.dims...) }

// Velocities returns the number of discrete velocities per axis.
func (l *CollisionlessLattice) Velocities() []int { return append([]int(nil), l.velocities...) }

// Blocks returns the validated geometry.
func (l *CollisionlessLattice) Blocks() []Block { return append([]Block(nil), l.blocks...) }

// Registers returns the register layout, qubit 0 first.
func (l *CollisionlessLattice) Registers() []Register { return append([]Register(nil), l.registers...) }

// NumQubits returns the total qubit count.
func (l *CollisionlessLattice) NumQubits() int { return l.numQubits }

// NumGridQubits returns the number of qubits encoding grid position.
func (l *CollisionlessLattice) NumGridQubits() int { return l.countKind(KindGrid) }

// NumVelocityQubits returns the number of velocity magnitude and direction qubits.
func (l *CollisionlessLattice) NumVelocityQubits() int {
	return l.countKind(KindVelocity) + l.countKind(KindVelocityDir)
}

// NumAncillaQubits returns the number of ancilla qubits.
func (l *CollisionlessLattice) NumAncillaQubits() int { return l.countKind(KindAncilla) }

func (l *CollisionlessLattice) countKind(kind RegisterKind) int {
	n := 0
	for _, r := range l.registers {
		if r.Kind == kind {
			n += r.Size
		}
	}
	return n
}

func (l *CollisionlessLattice) register(name string) (Register, bool) {
	for _, r := range l.registers {
		if r.Name == name {
			return r, true
		}
	}
	return Register{}, false
}

func (l *CollisionlessLattice) indices(name string) []int {
	if r, ok := l.register(name); ok {
		return r.Indices()
	}
	return nil
}

// axisQubit returns the axis-th qubit of a per-axis shared register.
func (l *CollisionlessLattice) axisQubit(name string, axis Axis) []int {
	r, ok := l.register(name)
	i := l.axisIndex(axis)
	if !ok || i < 0 {
		return nil
	}
	return []int{r.Start + i}
}

func (l *CollisionlessLattice) axisIndex(axis Axis) int {
	for i, a := range l.axes {
		if a == axis {
			return i
		}
	}
	return -1
}

// GridIndex returns the grid qubits for axis (LSB first), or nil if the axis is absent.
func (l *CollisionlessLattice) GridIndex(axis Axis) []int {
	return l.indices(regGridPrefix + string(axis))
}

// GridQubits returns all grid qubits in axis order, LSB first within each axis.
func (l *CollisionlessLattice) GridQubits() []int {
	var out []int
	for _, a := range l.axes {
		out = append(out, l.GridIndex(a)...)
	}
	return out
}

// VelocityIndex returns the velocity magnitude qubits for axis (may be empty).
func (l *CollisionlessLattice) VelocityIndex(axis Axis) []int {
	return l.indices(regVelocityPrefix + string(axis))
}

// VelocityDirIndex returns the velocity direction qubit for axis.
func (l *CollisionlessLattice) VelocityDirIndex(axis Axis) []int {
	return l.indices(regVelocityDirPrefix + string(axis))
}

// AncillaVelocityIndex returns the ancilla velocity qubit for axis.
func (l *CollisionlessLattice) AncillaVelocityIndex(axis Axis) []int {
	return l.axisQubit(RegAncillaVelocity, axis)
}

// AncillaObstacleIndex returns the ancilla obstacle qubit for axis.
func (l *CollisionlessLattice) AncillaObstacleIndex(axis Axis) []int {
	return l.axisQubit(RegAncillaObstacle, axis)
}

// AncillaComparatorIndex returns the comparator ancillas (empty for 1-D lattices).
func (l *CollisionlessLattice) AncillaComparatorIndex() []int {
	return l.indices(RegAncillaComparator)
}

// QubitLabels returns a display label for every qubit, e.g. "g_x[0]".
func (l *CollisionlessLattice) QubitLabels() []string {
	labels := make([]string, 0, l.numQubits)
	for _, r := range l.registers {
		for i := 0; i < r.Size; i++ {
			labels = append(labels, r.Label(i))
		}
	}
	return labels
}

// QubitLabel returns the display label of qubit i, or "" when i is out of range.
func (l *CollisionlessLattice) QubitLabel(i int) string {
	for _, r := range l.registers {
		if i >= r.Start && i < r.Start+r.Size {
			return r.Label(i - r.Start)
		}
	}
	return ""
}

// GridPoints returns every grid point in PointIndex order.
func (l *CollisionlessLattice) GridPoints() [][]int {
	points := make([][]int, l.NumGridPoints())
	for i := range points {
		points[i] = l.PointAt(i)
	}
	return points
}

// NumGridPoints returns the total number of grid points.
func (l *CollisionlessLattice) NumGridPoints() int {
	n := 1
	for _, d := range l.dims {
		n *= d
	}
	return n
}

// PointIndex returns the linear index of a point, x varying fastest.
func (l *CollisionlessLattice) PointIndex(p []int) int {
	idx, stride := 0, 1
	for i, d := range l.dims {
		idx += p[i] * stride
		stride *= d
	}
	return idx
}

// PointAt is the inverse of PointIndex.
func (l *CollisionlessLattice) PointAt(idx int) []int {
	p := make([]int, len(l.dims))
	for i, d := range l.dims {
		p[i] = idx % d
		idx /= d
	}
	return p
}

// IsObstacle reports whether the point lies inside any block.
func (l *CollisionlessLattice) IsObstacle(p []int) bool {
	_, ok := l.BlockAt(p)
	return ok
}

// BlockAt returns the block containing the point, if any.
func (l *CollisionlessLattice) BlockAt(p []int) (Block, bool) {
	for _, b := range l.blocks {
		if b.Contains(p) {
			return b, true
		}
	}
	return Block{}, false
}

// Walls returns the walls of every block, in block order.
func (l *CollisionlessLattice) Walls() [][]Wall {
	out := make([][]Wall, len(l.blocks))
	for i, b := range l.blocks {
		out[i] = b.Walls(l.dims)
	}
	return out
}

// String summarizes the lattice, e.g. "8x8 grid, 4x4 velocities, 1 block(s), 16 qubits".
func (l *CollisionlessLattice) String() string {
	return fmt.Sprintf("%s grid, %s velocities, %d block(s), %d qubits",
		joinInts(l.dims, "x"), joinInts(l.velocities, "x"), len(l.blocks), l.numQubits)
}

func joinInts(vals []int, sep string) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, sep)
}
