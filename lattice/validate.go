package lattice

import (
	"fmt"
)

// Size limits. MaxGridQubits bounds the number of grid points (2^MaxGridQubits)
// so point indices always fit in an int.
const (
	MaxGridQubits     = 24
	MaxVelocityQubits = 16
)

// Validate checks that every field of the configuration is well formed.
// Call Normalize first to accept legacy boundary spellings.
func (c *Config) Validate() error {
	_, err := c.blocks()
	return err
}

// blocks validates the configuration and converts the geometry into Blocks.
func (c *Config) blocks() ([]Block, error) {
	axes, err := axesOf(c.Lattice.Dim, "lattice.dim")
	if err != nil {
		return nil, err
	}
	dims := make([]int, len(axes))
	gridQubits := 0
	for i, a := range axes {
		n := c.Lattice.Dim[string(a)]
		if !isPowerOfTwo(n) {
			return nil, fmt.Errorf("lattice.dim.%s: %w, got %d", a, ErrNotPowerOfTwo, n)
		}
		dims[i] = n
		gridQubits += log2(n)
	}
	if gridQubits > MaxGridQubits {
		return nil, fmt.Errorf("lattice.dim: %w: %d grid qubits, at most %d supported", ErrTooLarge, gridQubits, MaxGridQubits)
	}

	if len(c.Lattice.Velocities) != len(axes) {
		return nil, fmt.Errorf("lattice.velocities: must name exactly the axes of lattice.dim (%d), got %d: %w",
			len(axes), len(c.Lattice.Velocities), ErrInvalidAxis)
	}
	for _, a := range axes {
		v, ok := c.Lattice.Velocities[string(a)]
		if !ok {
			return nil, fmt.Errorf("lattice.velocities: missing axis %q: %w", a, ErrInvalidAxis)
		}
		if !isPowerOfTwo(v) {
			return nil, fmt.Errorf("lattice.velocities.%s: %w, got %d", a, ErrNotPowerOfTwo, v)
		}
		if log2(v) > MaxVelocityQubits {
			return nil, fmt.Errorf("lattice.velocities.%s: %w: %d velocities, at most %d supported", a, ErrTooLarge, v, 1<<MaxVelocityQubits)
		}
	}

	blocks := make([]Block, 0, len(c.Geometry))
	for i := range c.Geometry {
		b, err := validateBlock(&c.Geometry[i], i, axes, dims)
		if err != nil {
			return nil, err
		}
		for j, prev := range blocks {
			if prev.Overlaps(b) {
				return nil, fmt.Errorf("geometry[%d]: %w with geometry[%d]", i, ErrOverlap, j)
			}
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

func validateBlock(spec *BlockSpec, idx int, axes []Axis, dims []int) (Block, error) {
	prefix := fmt.Sprintf("geometry[%d]", idx)
	if !IsValidBoundary(spec.Boundary) {
		return Block{}, fmt.Errorf("%s.boundary: %w %q; valid: specular, bounceback", prefix, ErrUnknownBoundary, spec.Boundary)
	}
	for _, a := range allAxes[len(axes):] {
		if spec.Range(a) != nil {
			return Block{}, fmt.Errorf("%s.%s: %w; lattice has %d dimension(s)", prefix, a, ErrInvalidAxis, len(axes))
		}
	}

	b := Block{Axes: axes, Bounds: make([]Bounds, len(axes)), Boundary: BoundaryCondition(spec.Boundary)}
	for i, a := range axes {
		r := spec.Range(a)
		if r == nil {
			return Block{}, fmt.Errorf("%s.%s: range required: %w", prefix, a, ErrInvalidAxis)
		}
		if len(r) != 2 {
			return Block{}, fmt.Errorf("%s.%s: range must be [lo, hi], got %d value(s): %w", prefix, a, len(r), ErrOutOfBounds)
		}
		lo, hi := r[0], r[1]
		if lo < 0 || hi > dims[i]-1 || lo > hi {
			return Block{}, fmt.Errorf("%s.%s: %w: [%d, %d] not within [0, %d] with lo <= hi", prefix, a, ErrOutOfBounds, lo, hi, dims[i]-1)
		}
		b.Bounds[i] = Bounds{Lo: lo, Hi: hi}
	}
	return b, nil
}
