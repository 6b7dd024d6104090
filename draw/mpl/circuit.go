package mpl

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/qlbm-go/qlbm/circuit"
	qdraw "github.com/qlbm-go/qlbm/draw"
	"github.com/qlbm-go/qlbm/lattice"
)

// Layout in data units: one column per layer, one unit between wires.
const (
	boxHalf      = 0.3
	classicalGap = 0.06
	linkGap      = 0.04
)

// maxCircuitCanvas caps both sides of a circuit drawing; wider circuits are
// compressed to fit.
const maxCircuitCanvas = 40 * vg.Inch

var (
	colorWire     = color.Black
	colorBarrier  = color.Gray{Y: 0x99}
	colorMeasure  = color.RGBA{R: 0xd9, G: 0xd9, B: 0xd9, A: 0xff}
	colorGateDflt = color.RGBA{R: 0xbb, G: 0xd7, B: 0xff, A: 0xff}
)

// gateColors fills gate boxes by operation name.
var gateColors = map[string]color.Color{
	"h":   color.RGBA{R: 0x9f, G: 0xc5, B: 0xff, A: 0xff},
	"x":   color.RGBA{R: 0x8f, G: 0xe3, B: 0xd4, A: 0xff},
	"mcx": color.RGBA{R: 0x8f, G: 0xe3, B: 0xd4, A: 0xff},
}

// plotBackend renders through gonum/plot in the given image format.
type plotBackend struct {
	name   string
	format string
}

func (b plotBackend) Name() string { return b.name }

func (b plotBackend) DrawCircuit(c *circuit.Circuit, w io.Writer) error {
	p, width, height, err := circuitPlot(c)
	if err != nil {
		return err
	}
	return writePlot(p, width, height, b.format, w)
}

func (b plotBackend) DrawLattice(l *lattice.CollisionlessLattice, w io.Writer) error {
	p, width, height, err := latticePlot(l, b.name)
	if err != nil {
		return err
	}
	return writePlot(p, width, height, b.format, w)
}

func writePlot(p *plot.Plot, width, height vg.Length, format string, w io.Writer) error {
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return fmt.Errorf("creating %s canvas: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	return nil
}

// circuitScene accumulates plot elements in drawing order: wires, connectors, boxes, text.
type circuitScene struct {
	wires      []plot.Plotter
	connectors []plot.Plotter
	boxes      []plot.Plotter
	dots       plotter.XYs
	text       plotter.XYs
	textLabels []string
}

func (s *circuitScene) segment(dst *[]plot.Plotter, x0, y0, x1, y1 float64, c color.Color, dashed bool) error {
	line, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
	if err != nil {
		return err
	}
	line.Color = c
	line.Width = vg.Points(1)
	if dashed {
		line.Dashes = []vg.Length{vg.Points(3), vg.Points(2)}
	}
	*dst = append(*dst, line)
	return nil
}

func (s *circuitScene) box(x, y float64, fill color.Color, label string) error {
	poly, err := plotter.NewPolygon(plotter.XYs{
		{X: x - boxHalf, Y: y - boxHalf},
		{X: x + boxHalf, Y: y - boxHalf},
		{X: x + boxHalf, Y: y + boxHalf},
		{X: x - boxHalf, Y: y + boxHalf},
	})
	if err != nil {
		return err
	}
	poly.Color = fill
	poly.LineStyle.Color = colorWire
	poly.LineStyle.Width = vg.Points(1)
	s.boxes = append(s.boxes, poly)
	s.label(x, y, label)
	return nil
}

func (s *circuitScene) label(x, y float64, text string) {
	s.text = append(s.text, plotter.XY{X: x, Y: y})
	s.textLabels = append(s.textLabels, text)
}

// circuitPlot lays the circuit out with qubit 0 on top and the classical
// register, when present, as a double line at y=0.
func circuitPlot(c *circuit.Circuit) (*plot.Plot, vg.Length, vg.Length, error) {
	nq := c.NumQubits()
	layers := c.Layers()
	xEnd := float64(len(layers) + 1)
	yOf := func(q int) float64 { return float64(nq - q) }

	var s circuitScene
	for q := 0; q < nq; q++ {
		if err := s.segment(&s.wires, 0, yOf(q), xEnd, yOf(q), colorWire, false); err != nil {
			return nil, 0, 0, err
		}
	}
	if c.NumClbits() > 0 {
		for _, dy := range []float64{-classicalGap, classicalGap} {
			if err := s.segment(&s.wires, 0, dy, xEnd, dy, colorWire, false); err != nil {
				return nil, 0, 0, err
			}
		}
	}

	for col, layer := range layers {
		x := float64(col + 1)
		for _, idx := range layer {
			if err := s.addOp(c.Ops[idx], x, yOf); err != nil {
				return nil, 0, 0, fmt.Errorf("op %d (%s): %w", idx, c.Ops[idx].Name, err)
			}
		}
	}

	p := plot.New()
	p.Title.Text = c.Name
	p.HideAxes()
	p.Add(s.wires...)
	p.Add(s.connectors...)
	if len(s.dots) > 0 {
		dots, err := plotter.NewScatter(s.dots)
		if err != nil {
			return nil, 0, 0, err
		}
		dots.GlyphStyle.Shape = draw.CircleGlyph{}
		dots.GlyphStyle.Radius = vg.Points(4)
		dots.GlyphStyle.Color = colorWire
		p.Add(dots)
	}
	p.Add(s.boxes...)
	if len(s.text) > 0 {
		labels, err := centeredLabels(s.text, s.textLabels)
		if err != nil {
			return nil, 0, 0, err
		}
		p.Add(labels)
	}

	wireXYs := make(plotter.XYs, 0, nq+1)
	wireNames := make([]string, 0, nq+1)
	for q, name := range c.Qubits {
		wireXYs = append(wireXYs, plotter.XY{X: -0.2, Y: yOf(q)})
		wireNames = append(wireNames, name)
	}
	if c.NumClbits() > 0 {
		wireXYs = append(wireXYs, plotter.XY{X: -0.2, Y: 0})
		wireNames = append(wireNames, fmt.Sprintf("c/%d", c.NumClbits()))
	}
	if len(wireXYs) > 0 {
		wireLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: wireXYs, Labels: wireNames})
		if err != nil {
			return nil, 0, 0, err
		}
		for i := range wireLabels.TextStyle {
			wireLabels.TextStyle[i].XAlign = text.XRight
			wireLabels.TextStyle[i].YAlign = text.YCenter
		}
		p.Add(wireLabels)
	}

	p.X.Min, p.X.Max = -1.6, xEnd+0.2
	p.Y.Min, p.Y.Max = -0.7, float64(nq)+0.7

	width := min(maxCircuitCanvas, max(4*vg.Inch, vg.Length(len(layers)+3)*0.6*vg.Inch))
	height := min(maxCircuitCanvas, max(3*vg.Inch, vg.Length(nq+2)*0.35*vg.Inch))
	return p, width, height, nil
}

func (s *circuitScene) addOp(op circuit.Op, x float64, yOf func(int) float64) error {
	switch op.Kind {
	case circuit.KindBarrier:
		for _, q := range op.Qubits {
			if err := s.segment(&s.connectors, x, yOf(q)+0.45, x, yOf(q)-0.45, colorBarrier, true); err != nil {
				return err
			}
		}
		return nil
	case circuit.KindMeasure:
		y := yOf(op.Qubits[0])
		for _, dx := range []float64{-linkGap, linkGap} {
			if err := s.segment(&s.connectors, x+dx, y, x+dx, 0, colorWire, false); err != nil {
				return err
			}
		}
		s.label(x+0.2, 0.25, fmt.Sprint(op.Clbit))
		return s.box(x, y, colorMeasure, "M")
	}

	wires := op.Wires()
	top, bottom := yOf(wires[0]), yOf(wires[0])
	for _, q := range wires {
		top, bottom = max(top, yOf(q)), min(bottom, yOf(q))
	}
	if top != bottom {
		if err := s.segment(&s.connectors, x, top, x, bottom, colorWire, false); err != nil {
			return err
		}
	}
	for _, q := range op.Controls {
		s.dots = append(s.dots, plotter.XY{X: x, Y: yOf(q)})
	}
	fill, ok := gateColors[op.Name]
	if !ok {
		fill = colorGateDflt
	}
	name := op.Name
	if name == "mcx" {
		name = "x"
	}
	for _, q := range op.Qubits {
		if err := s.box(x, yOf(q), fill, strings.ToUpper(name)); err != nil {
			return err
		}
	}
	return nil
}

func centeredLabels(xys plotter.XYs, texts []string) (*plotter.Labels, error) {
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: texts})
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	return labels, nil
}

// unsupported wraps the draw package sentinel with the backend name.
func unsupported(backend, what string) error {
	return fmt.Errorf("%s: %s: %w", backend, what, qdraw.ErrUnsupported)
}
