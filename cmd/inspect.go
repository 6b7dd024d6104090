package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qlbm-go/qlbm/components"
	"github.com/qlbm-go/qlbm/lattice"
)

// writeInspect prints the register layout, block walls, fluid connectivity
// and the statistics of every component of l.
func writeInspect(w io.Writer, l *lattice.CollisionlessLattice) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "lattice:\t%s\n", l)
	fmt.Fprintf(tw, "grid points:\t%d\n", l.NumGridPoints())
	fmt.Fprintf(tw, "qubits:\t%d grid, %d velocity, %d ancilla\n",
		l.NumGridQubits(), l.NumVelocityQubits(), l.NumAncillaQubits())

	fmt.Fprintln(tw, "\nregisters:")
	for _, r := range l.Registers() {
		idx := r.Indices()
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", r.Name, r.Kind, qubitRange(idx))
	}

	fmt.Fprintln(tw, "\nblocks:")
	if len(l.Blocks()) == 0 {
		fmt.Fprintln(tw, "  (none)")
	}
	walls := l.Walls()
	for i, b := range l.Blocks() {
		fmt.Fprintf(tw, "  [%d]\t%s\tvolume %d\n", i, b, b.Volume())
		for _, wall := range walls[i] {
			fmt.Fprintf(tw, "  \twall %s\t\n", wall)
		}
	}

	if l.NumGridPoints() > lattice.FluidCheckLimit {
		fmt.Fprintf(tw, "\nfluid regions:\tnot computed (%d grid points)\n", l.NumGridPoints())
	} else {
		regions := l.FluidRegions()
		sizes := make([]string, len(regions))
		for i, r := range regions {
			sizes[i] = fmt.Sprint(len(r))
		}
		fmt.Fprintf(tw, "\nfluid regions:\t%d (sizes %s)\n", len(regions), strings.Join(sizes, ", "))
	}

	fmt.Fprintln(tw, "\ncomponents:")
	for _, name := range components.Names() {
		c, err := components.New(name, l)
		if err != nil {
			return err
		}
		circ := c.Circuit()
		counts := circ.CountOps()
		ops := make([]string, 0, len(counts))
		for _, op := range circ.OpNames() {
			ops = append(ops, fmt.Sprintf("%s=%d", op, counts[op]))
		}
		fmt.Fprintf(tw, "  %s\t%d qubits\t%d clbits\tdepth %d\t%s\n",
			name, circ.NumQubits(), circ.NumClbits(), circ.Depth(), strings.Join(ops, " "))
	}
	return tw.Flush()
}

// qubitRange formats contiguous qubit indices as "q[lo..hi]" or "q[i]".
func qubitRange(idx []int) string {
	if len(idx) == 1 {
		return fmt.Sprintf("q[%d]", idx[0])
	}
	return fmt.Sprintf("q[%d..%d]", idx[0], idx[len(idx)-1])
}

// inspectCmd prints the qubit layout and geometry analysis of a lattice
var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print the register layout, block walls and component statistics of a lattice",
	Run: func(cmd *cobra.Command, args []string) {
		l, _, err := buildLattice(configPath, presetName)
		if err != nil {
			logrus.Fatalf("Failed to build lattice: %v", err)
		}
		if err := writeInspect(os.Stdout, l); err != nil {
			logrus.Fatalf("Inspect failed: %v", err)
		}
	},
}

func init() {
	addLatticeFlags(inspectCmd)
	rootCmd.AddCommand(inspectCmd)
}
