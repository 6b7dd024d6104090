package lattice

import (
	"fmt"
	"sort"
)

// Axis names a spatial dimension of the lattice.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// allAxes lists the supported axes in canonical order.
var allAxes = []Axis{AxisX, AxisY, AxisZ}

// axisOrder maps accepted axis names to their canonical position.
var axisOrder = map[Axis]int{AxisX: 0, AxisY: 1, AxisZ: 2}

// IsValidAxis reports whether name is a recognized axis.
func IsValidAxis(name string) bool {
	_, ok := axisOrder[Axis(name)]
	return ok
}

// Index returns the canonical position of the axis (x=0, y=1, z=2), or -1.
func (a Axis) Index() int {
	if i, ok := axisOrder[a]; ok {
		return i
	}
	return -1
}

// axesOf returns the axes named by the keys of m in canonical order.
// The keys must be valid and form a prefix of x, y, z.
func axesOf(m map[string]int, field string) ([]Axis, error) {
	if len(m) == 0 {
		return nil, fmt.Errorf("%s: at least one axis required: %w", field, ErrInvalidAxis)
	}
	axes := make([]Axis, 0, len(m))
	for name := range m {
		if !IsValidAxis(name) {
			return nil, fmt.Errorf("%s: %w %q; valid: x, y, z", field, ErrInvalidAxis, name)
		}
		axes = append(axes, Axis(name))
	}
	sort.Slice(axes, func(i, j int) bool { return axes[i].Index() < axes[j].Index() })
	for i, a := range axes {
		if a != allAxes[i] {
			return nil, fmt.Errorf("%s: axes must be x, x/y or x/y/z, missing %q: %w", field, allAxes[i], ErrInvalidAxis)
		}
	}
	return axes, nil
}

func isPowerOfTwo(n int) bool {
	return n >= 2 && n&(n-1) == 0
}

// log2 returns the exponent of a power of two.
func log2(n int) int {
	k := 0
	for n > 1 {
		n >>= 1
		k++
	}
	return k
}
