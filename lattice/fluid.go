package lattice

import (
	"sort"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// FluidRegions returns the connected components of non-obstacle grid points.
// Points are linked to their axis-aligned neighbours (4-connectivity in 2-D,
// 6-connectivity in 3-D); the domain is not periodic.
// Each region lists linear point indices (see PointIndex) in ascending order,
// and regions are ordered by their smallest index.
func (l *CollisionlessLattice) FluidRegions() [][]int {
	g := simple.NewUndirectedGraph()
	n := l.NumGridPoints()
	fluid := make([]bool, n)
	for idx := 0; idx < n; idx++ {
		if !l.IsObstacle(l.PointAt(idx)) {
			fluid[idx] = true
			g.AddNode(simple.Node(int64(idx)))
		}
	}

	stride := 1
	for axis, d := range l.dims {
		for idx := 0; idx < n; idx++ {
			if !fluid[idx] {
				continue
			}
			// Neighbour at +1 along this axis, unless on the upper edge.
			if (idx/stride)%d == d-1 {
				continue
			}
			next := idx + stride
			if fluid[next] {
				g.SetEdge(g.NewEdge(simple.Node(int64(idx)), simple.Node(int64(next))))
			}
		}
		stride *= l.dims[axis]
	}

	components := topo.ConnectedComponents(g)
	regions := make([][]int, 0, len(components))
	for _, comp := range components {
		region := make([]int, len(comp))
		for i, node := range comp {
			region[i] = int(node.ID())
		}
		sort.Ints(region)
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i][0] < regions[j][0] })
	return regions
}
