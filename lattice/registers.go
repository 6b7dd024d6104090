package lattice

import "fmt"

// Register names.
const (
	RegAncillaVelocity   = "a_v"
	RegAncillaObstacle   = "a_o"
	RegAncillaComparator = "a_c"
	regGridPrefix        = "g_"
	regVelocityPrefix    = "v_"
	regVelocityDirPrefix = "d_"
)

// RegisterKind classifies a register by its role in the lattice encoding.
type RegisterKind string

const (
	KindAncilla     RegisterKind = "ancilla"
	KindGrid        RegisterKind = "grid"
	KindVelocity    RegisterKind = "velocity"
	KindVelocityDir RegisterKind = "velocity_dir"
)

// Register is a contiguous run of qubits [Start, Start+Size).
type Register struct {
	Name  string
	Kind  RegisterKind
	Axis  Axis // empty for registers shared by all axes
	Start int
	Size  int
}

// Indices returns the qubit indices covered by the register.
func (r Register) Indices() []int {
	idx := make([]int, r.Size)
	for i := range idx {
		idx[i] = r.Start + i
	}
	return idx
}

// Label returns the display label of the i-th qubit of the register.
func (r Register) Label(i int) string {
	return fmt.Sprintf("%s[%d]", r.Name, i)
}

// buildRegisters lays out the registers for the given axes, grid sizes and velocity counts.
// Zero-sized registers are omitted.
func buildRegisters(axes []Axis, dims, velocities []int) []Register {
	d := len(axes)
	var regs []Register
	next := 0
	add := func(name string, kind RegisterKind, axis Axis, size int) {
		if size == 0 {
			return
		}
		regs = append(regs, Register{Name: name, Kind: kind, Axis: axis, Start: next, Size: size})
		next += size
	}

	add(RegAncillaVelocity, KindAncilla, "", d)
	add(RegAncillaObstacle, KindAncilla, "", d)
	add(RegAncillaComparator, KindAncilla, "", 2*(d-1))
	for i, a := range axes {
		add(regGridPrefix+string(a), KindGrid, a, log2(dims[i]))
	}
	for i, a := range axes {
		add(regVelocityPrefix+string(a), KindVelocity, a, log2(velocities[i])-1)
	}
	for _, a := range axes {
		add(regVelocityDirPrefix+string(a), KindVelocityDir, a, 1)
	}
	return regs
}
