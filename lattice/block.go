package lattice

import (
	"fmt"
	"strings"
)

// Bounds is an inclusive [lo, hi] coordinate range along one axis.
type Bounds struct {
	Lo int
	Hi int
}

// Contains reports whether v lies within the range.
func (r Bounds) Contains(v int) bool { return v >= r.Lo && v <= r.Hi }

// Len returns the number of grid points covered by the range.
func (r Bounds) Len() int { return r.Hi - r.Lo + 1 }

// Overlaps reports whether two ranges share at least one coordinate.
func (r Bounds) Overlaps(o Bounds) bool { return r.Lo <= o.Hi && o.Lo <= r.Hi }

func (r Bounds) String() string { return fmt.Sprintf("[%d,%d]", r.Lo, r.Hi) }

// Side selects the lower or upper face of a block along an axis.
type Side int

const (
	SideLow Side = iota
	SideHigh
)

func (s Side) String() string {
	if s == SideLow {
		return "low"
	}
	return "high"
}

// Block is a validated, axis-aligned obstacle region.
// Bounds are indexed by lattice axis in canonical order.
type Block struct {
	Axes     []Axis
	Bounds   []Bounds
	Boundary BoundaryCondition
}

// Wall is the layer of fluid points adjacent to one face of a block.
// Along Axis the bounds collapse to the single fluid coordinate next to the face;
// along every other axis they span the block.
type Wall struct {
	Axis   Axis
	Side   Side
	Bounds []Bounds
}

// Contains reports whether the point (one coordinate per axis) lies inside the block.
func (b Block) Contains(p []int) bool {
	if len(p) != len(b.Bounds) {
		return false
	}
	for i, r := range b.Bounds {
		if !r.Contains(p[i]) {
			return false
		}
	}
	return true
}

// Overlaps reports whether two blocks share at least one grid point.
func (b Block) Overlaps(o Block) bool {
	if len(b.Bounds) != len(o.Bounds) {
		return false
	}
	for i := range b.Bounds {
		if !b.Bounds[i].Overlaps(o.Bounds[i]) {
			return false
		}
	}
	return true
}

// Volume returns the number of grid points inside the block.
func (b Block) Volume() int {
	v := 1
	for _, r := range b.Bounds {
		v *= r.Len()
	}
	return v
}

// Walls returns the fluid layers bordering the block, ordered by axis then side.
// Faces lying on the domain edge have no fluid neighbour and are omitted.
func (b Block) Walls(dims []int) []Wall {
	var walls []Wall
	for i, r := range b.Bounds {
		if r.Lo > 0 {
			walls = append(walls, b.wall(i, SideLow, r.Lo-1))
		}
		if r.Hi < dims[i]-1 {
			walls = append(walls, b.wall(i, SideHigh, r.Hi+1))
		}
	}
	return walls
}

func (b Block) wall(axisIdx int, side Side, coord int) Wall {
	bounds := make([]Bounds, len(b.Bounds))
	copy(bounds, b.Bounds)
	bounds[axisIdx] = Bounds{Lo: coord, Hi: coord}
	return Wall{Axis: b.Axes[axisIdx], Side: side, Bounds: bounds}
}

// String renders the block as "x:[5,6] y:[1,2] specular".
func (b Block) String() string {
	parts := make([]string, 0, len(b.Bounds)+1)
	for i, r := range b.Bounds {
		parts = append(parts, fmt.Sprintf("%s:%s", b.Axes[i], r))
	}
	parts = append(parts, string(b.Boundary))
	return strings.Join(parts, " ")
}

func (w Wall) String() string {
	parts := make([]string, 0, len(w.Bounds))
	for i, r := range w.Bounds {
		parts = append(parts, fmt.Sprintf("%s:%s", allAxes[i], r))
	}
	return fmt.Sprintf("%s/%s %s", w.Axis, w.Side, strings.Join(parts, " "))
}
