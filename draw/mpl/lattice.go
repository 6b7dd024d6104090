package mpl

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/qlbm-go/qlbm/lattice"
)

var (
	colorFluid    = color.Gray{Y: 0xb0}
	colorOutline  = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	obstacleColor = map[lattice.BoundaryCondition]color.Color{
		lattice.BoundarySpecular:   color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
		lattice.BoundaryBounceBack: color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	}
)

// Lattice drawing limits. Lattices with more points than maxPlotPoints are
// refused; the canvas side never exceeds maxLatticeCanvas and glyphs shrink
// with the cell size instead.
const (
	maxPlotPoints    = 1 << 14
	maxLatticeCanvas = 12 * vg.Inch
	cellPerPoint     = 0.4 * vg.Inch
)

// checkPlottable rejects lattices the plotting backends cannot draw.
func checkPlottable(l *lattice.CollisionlessLattice, backend string) error {
	if len(l.Dims()) > 2 {
		return unsupported(backend, "3-D lattices")
	}
	if n := l.NumGridPoints(); n > maxPlotPoints {
		return unsupported(backend, fmt.Sprintf("lattices over %d grid points (got %d)", maxPlotPoints, n))
	}
	return nil
}

// latticePlot draws grid points as dots, obstacle points as squares colored
// by boundary condition and every block's outline. 1-D lattices are drawn
// as a single row at y=0.
func latticePlot(l *lattice.CollisionlessLattice, backend string) (*plot.Plot, vg.Length, vg.Length, error) {
	if err := checkPlottable(l, backend); err != nil {
		return nil, 0, 0, err
	}
	dims := l.Dims()
	nx, ny := dims[0], 1
	if len(dims) == 2 {
		ny = dims[1]
	}

	var fluid plotter.XYs
	obstacles := make(map[lattice.BoundaryCondition]plotter.XYs)
	for idx := 0; idx < l.NumGridPoints(); idx++ {
		p := l.PointAt(idx)
		xy := plotter.XY{X: float64(p[0])}
		if len(p) > 1 {
			xy.Y = float64(p[1])
		}
		if blk, ok := l.BlockAt(p); ok {
			obstacles[blk.Boundary] = append(obstacles[blk.Boundary], xy)
			continue
		}
		fluid = append(fluid, xy)
	}

	side := min(maxLatticeCanvas, max(4*vg.Inch, vg.Length(max(nx, ny))*cellPerPoint))
	height := side
	if ny == 1 {
		height = 2 * vg.Inch
	}
	cell := side / vg.Length(max(nx, ny))

	p := plot.New()
	p.Title.Text = l.String()
	p.X.Label.Text = "x"
	if len(dims) == 2 {
		p.Y.Label.Text = "y"
	}
	p.Legend.Top = true

	if len(fluid) > 0 {
		s, err := plotter.NewScatter(fluid)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("fluid points: %w", err)
		}
		s.GlyphStyle.Shape = draw.CircleGlyph{}
		s.GlyphStyle.Radius = min(vg.Points(2), cell*0.25)
		s.GlyphStyle.Color = colorFluid
		p.Add(s)
		p.Legend.Add("fluid", s)
	}
	for _, bc := range []lattice.BoundaryCondition{lattice.BoundarySpecular, lattice.BoundaryBounceBack} {
		pts := obstacles[bc]
		if len(pts) == 0 {
			continue
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("%s points: %w", bc, err)
		}
		s.GlyphStyle.Shape = draw.BoxGlyph{}
		s.GlyphStyle.Radius = min(vg.Points(3), cell*0.4)
		s.GlyphStyle.Color = obstacleColor[bc]
		p.Add(s)
		p.Legend.Add(string(bc), s)
	}

	for i, blk := range l.Blocks() {
		outline, err := blockOutline(blk)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("block %d outline: %w", i, err)
		}
		p.Add(outline)
	}

	p.X.Min, p.X.Max = -0.5, float64(nx)-0.5
	p.Y.Min, p.Y.Max = -0.5, float64(ny)-0.5
	p.Add(plotter.NewGrid())
	return p, side, height, nil
}

// blockOutline traces the cell boundary around an inclusive block.
func blockOutline(b lattice.Block) (*plotter.Polygon, error) {
	x0, x1 := float64(b.Bounds[0].Lo)-0.5, float64(b.Bounds[0].Hi)+0.5
	y0, y1 := -0.5, 0.5
	if len(b.Bounds) > 1 {
		y0, y1 = float64(b.Bounds[1].Lo)-0.5, float64(b.Bounds[1].Hi)+0.5
	}
	poly, err := plotter.NewPolygon(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
	if err != nil {
		return nil, err
	}
	poly.Color = nil
	poly.LineStyle.Color = colorOutline
	poly.LineStyle.Width = vg.Points(1.5)
	return poly, nil
}
