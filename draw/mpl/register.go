// Package mpl provides plotting backends for the draw package, built on
// gonum/plot and go-echarts. Importing it registers:
//   - mpl: PNG images (the matplotlib-style default backend)
//   - svg: the same drawings as SVG
//   - html: an interactive lattice geometry page (lattices only)
package mpl

import "github.com/qlbm-go/qlbm/draw"

func init() {
	draw.Register(plotBackend{name: "mpl", format: "png"})
	draw.Register(plotBackend{name: "svg", format: "svg"})
	draw.Register(htmlBackend{})
}
