package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qlbm-go/qlbm/components"
	"github.com/qlbm-go/qlbm/draw"
	"github.com/qlbm-go/qlbm/lattice"
	"github.com/qlbm-go/qlbm/store"
)

var (
	componentName string // Component to draw
	backendName   string // Draw backend
	outPath       string // Output file; stdout when empty
	drawLattice   bool   // Draw the lattice geometry instead of a component
	storePath     string // Render catalog database; no recording when empty
)

// drawRequest is everything one draw invocation needs.
type drawRequest struct {
	Component string
	Backend   string
	Lattice   bool
}

// what names the drawn object for logs and the catalog.
func (r drawRequest) what() string {
	if r.Lattice {
		return "lattice"
	}
	return r.Component
}

// render draws the component (or the lattice itself) of l into w.
func render(l *lattice.CollisionlessLattice, req drawRequest, w io.Writer) error {
	if req.Lattice {
		return draw.Lattice(l, req.Backend, w)
	}
	c, err := components.New(req.Component, l)
	if err != nil {
		return err
	}
	return c.Draw(req.Backend, w)
}

// recordRender saves the lattice configuration and the drawing in the catalog at path.
func recordRender(ctx context.Context, path, name string, l *lattice.CollisionlessLattice, req drawRequest, content []byte) (string, error) {
	db, err := store.Open(path)
	if err != nil {
		return "", err
	}
	defer db.Close()

	latticeID, err := db.SaveLattice(ctx, name, l.Config(), l.NumQubits())
	if err != nil {
		return "", err
	}
	return db.SaveRender(ctx, &store.Render{
		LatticeID: latticeID,
		Component: req.what(),
		Backend:   req.Backend,
		Content:   content,
	})
}

// drawCmd renders a lattice component with a draw backend
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a lattice component (or the lattice geometry) with a backend",
	Long: "Builds the lattice from --config or --preset, constructs the component and renders it. " +
		"Text backends write to stdout unless --out is set; image backends need --out or a redirect.",
	Run: func(cmd *cobra.Command, args []string) {
		l, name, err := buildLattice(configPath, presetName)
		if err != nil {
			logrus.Fatalf("Failed to build lattice: %v", err)
		}
		logrus.Infof("Lattice %s: %s", name, l)

		req := drawRequest{Component: componentName, Backend: backendName, Lattice: drawLattice}
		var buf bytes.Buffer
		if err := render(l, req, &buf); err != nil {
			logrus.Fatalf("Draw failed: %v", err)
		}

		if outPath == "" {
			if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
				logrus.Fatalf("Writing output: %v", err)
			}
		} else {
			if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
				logrus.Fatalf("Writing %s: %v", outPath, err)
			}
			logrus.Infof("Wrote %s (%d bytes)", outPath, buf.Len())
		}

		if storePath != "" {
			id, err := recordRender(cmd.Context(), storePath, name, l, req, buf.Bytes())
			if err != nil {
				logrus.Fatalf("Recording render: %v", err)
			}
			logrus.Infof("Recorded render %s in %s", id, storePath)
		}
	},
}

func init() {
	addLatticeFlags(drawCmd)
	drawCmd.Flags().StringVar(&componentName, "component", components.NameGridMeasurement,
		fmt.Sprintf("Component to draw (%v)", components.Names()))
	drawCmd.Flags().StringVar(&backendName, "backend", "mpl", "Draw backend (text, qasm, mpl, svg, html)")
	drawCmd.Flags().StringVar(&outPath, "out", "", "Output file (default stdout)")
	drawCmd.Flags().BoolVar(&drawLattice, "lattice", false, "Draw the lattice geometry instead of a component")
	drawCmd.Flags().StringVar(&storePath, "store", "", "Record the render in this catalog database")

	rootCmd.AddCommand(drawCmd)
}
