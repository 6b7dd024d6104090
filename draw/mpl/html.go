package mpl

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/qlbm-go/qlbm/circuit"
	"github.com/qlbm-go/qlbm/lattice"
)

var htmlSeriesColor = map[string]string{
	"fluid":                            "#b0b0b0",
	string(lattice.BoundarySpecular):   "#1f77b4",
	string(lattice.BoundaryBounceBack): "#d62728",
}

// htmlBackend renders lattice geometry as an interactive echarts page.
type htmlBackend struct{}

func (htmlBackend) Name() string { return "html" }

func (htmlBackend) DrawCircuit(*circuit.Circuit, io.Writer) error {
	return unsupported("html", "circuits")
}

// DrawLattice writes one scatter series per point class. Each data item is
// [x, y, block index] with -1 for fluid points so the tooltip names the block.
func (htmlBackend) DrawLattice(l *lattice.CollisionlessLattice, w io.Writer) error {
	if err := checkPlottable(l, "html"); err != nil {
		return err
	}
	dims := l.Dims()
	ny := 1
	if len(dims) == 2 {
		ny = dims[1]
	}

	blocks := l.Blocks()
	series := map[string][]opts.ScatterData{}
	for _, p := range l.GridPoints() {
		y := 0
		if len(p) > 1 {
			y = p[1]
		}
		name, blockIdx := "fluid", -1
		for i, b := range blocks {
			if b.Contains(p) {
				name, blockIdx = string(b.Boundary), i
				break
			}
		}
		series[name] = append(series[name], opts.ScatterData{Value: []interface{}{p[0], y, blockIdx}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "qlbm lattice", Width: "800px", Height: "800px"}),
		charts.WithTitleOpts(opts.Title{Title: "Lattice geometry", Subtitle: l.String()}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Min: 0, Max: dims[0] - 1, Name: "x", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: ny - 1, Name: "y", NameLocation: "middle", NameGap: 30}),
	)
	for _, name := range []string{"fluid", string(lattice.BoundarySpecular), string(lattice.BoundaryBounceBack)} {
		data, ok := series[name]
		if !ok {
			continue
		}
		scatter.AddSeries(name, data,
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 12}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: htmlSeriesColor[name]}),
		)
	}
	if err := scatter.Render(w); err != nil {
		return fmt.Errorf("rendering echarts page: %w", err)
	}
	return nil
}
