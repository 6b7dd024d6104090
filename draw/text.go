package draw

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/qlbm-go/qlbm/circuit"
	"github.com/qlbm-go/qlbm/lattice"
)

// Wire and connector glyphs for the text backend.
const (
	fillQubit     = "─"
	fillClassical = "═"
	fillSpacer    = " "
	glyphControl  = "■"
	glyphCross    = "┼"
	glyphLink     = "│"
	glyphMeasured = "╫"
	glyphMeasLink = "║"
	glyphBarrier  = "░"
)

// Lattice glyphs: fluid points and obstacles by boundary condition.
var latticeGlyphs = map[lattice.BoundaryCondition]string{
	lattice.BoundarySpecular:   "#",
	lattice.BoundaryBounceBack: "%",
}

const glyphFluid = "."

// textBackend renders circuits as wire diagrams and lattices as character maps.
type textBackend struct{}

func (textBackend) Name() string { return "text" }

// DrawCircuit writes one line per qubit, a spacer line between wires for
// vertical connectors, and a final classical line when the circuit has clbits.
// Columns follow circuit.Layers.
func (textBackend) DrawCircuit(c *circuit.Circuit, w io.Writer) error {
	nq := c.NumQubits()
	hasClassical := c.NumClbits() > 0
	classicalLabel := fmt.Sprintf("c/%d", c.NumClbits())

	// Rows: qubit i at 2i, spacer after qubit i at 2i+1, classical at 2nq.
	numRows := 2*nq - 1
	if hasClassical {
		numRows = 2*nq + 1
	}
	if nq == 0 {
		numRows = 0
		if hasClassical {
			numRows = 1
		}
	}
	rows := make([]strings.Builder, numRows)
	fills := make([]string, numRows)

	labelWidth := 0
	for _, l := range c.Qubits {
		labelWidth = max(labelWidth, utf8.RuneCountInString(l))
	}
	if hasClassical {
		labelWidth = max(labelWidth, len(classicalLabel))
	}
	for r := range rows {
		var label string
		switch {
		case hasClassical && r == numRows-1:
			label, fills[r] = classicalLabel, fillClassical
		case r%2 == 0:
			label, fills[r] = c.Qubits[r/2], fillQubit
		default:
			fills[r] = fillSpacer
		}
		if label == "" {
			rows[r].WriteString(strings.Repeat(" ", labelWidth+2))
		} else {
			rows[r].WriteString(pad(label, labelWidth, " ", alignRight))
			rows[r].WriteString(": ")
		}
		rows[r].WriteString(fills[r])
	}

	for _, layer := range c.Layers() {
		cells := make([]string, numRows)
		width := 1
		for _, idx := range layer {
			op := c.Ops[idx]
			for r, tok := range opTokens(c, op) {
				cells[r] = tok
				width = max(width, utf8.RuneCountInString(tok))
			}
		}
		width += 2
		for r := range rows {
			rows[r].WriteString(pad(cells[r], width, fills[r], alignCenter))
		}
	}

	for r := range rows {
		rows[r].WriteString(fills[r])
		line := strings.TrimRight(rows[r].String(), " ")
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// opTokens returns the glyph drawn on each row the operation spans.
func opTokens(c *circuit.Circuit, op circuit.Op) map[int]string {
	tokens := make(map[int]string)
	nq := c.NumQubits()
	switch op.Kind {
	case circuit.KindBarrier:
		for _, q := range op.Qubits {
			tokens[2*q] = glyphBarrier
		}
		return tokens
	case circuit.KindMeasure:
		q := op.Qubits[0]
		tokens[2*q] = "M"
		for r := 2*q + 1; r < 2*nq; r++ {
			if r%2 == 0 {
				tokens[r] = glyphMeasured
			} else {
				tokens[r] = glyphMeasLink
			}
		}
		tokens[2*nq] = fmt.Sprint(op.Clbit)
		return tokens
	}

	lo, hi := op.Qubits[0], op.Qubits[0]
	for _, q := range op.Wires() {
		lo, hi = min(lo, q), max(hi, q)
	}
	for r := 2 * lo; r <= 2*hi; r++ {
		if r%2 == 0 {
			tokens[r] = glyphCross
		} else {
			tokens[r] = glyphLink
		}
	}
	for _, q := range op.Controls {
		tokens[2*q] = glyphControl
	}
	for _, q := range op.Qubits {
		tokens[2*q] = gateLabel(op)
	}
	return tokens
}

func gateLabel(op circuit.Op) string {
	if op.Name == "mcx" {
		return "X"
	}
	return strings.ToUpper(op.Name)
}

type alignment int

const (
	alignCenter alignment = iota
	alignRight
)

// pad fills s to width runes with fill, centered or right-aligned.
func pad(s string, width int, fill string, align alignment) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left, right := width-n, 0
	if align == alignCenter {
		left = (width - n) / 2
		right = width - n - left
	}
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, right)
}

// DrawLattice writes a character map with y increasing upwards: "." for fluid,
// "#" for specular and "%" for bounce-back obstacles. 3-D lattices are printed
// as one map per z slice.
func (textBackend) DrawLattice(l *lattice.CollisionlessLattice, w io.Writer) error {
	dims := l.Dims()
	var b strings.Builder
	switch len(dims) {
	case 1:
		writeLatticeSlice(&b, l, dims[0], 1, nil)
	case 2:
		writeLatticeSlice(&b, l, dims[0], dims[1], nil)
	default:
		for z := dims[2] - 1; z >= 0; z-- {
			fmt.Fprintf(&b, "z=%d\n", z)
			writeLatticeSlice(&b, l, dims[0], dims[1], []int{z})
		}
	}
	fmt.Fprintf(&b, "%s fluid  %s specular  %s bounceback\n",
		glyphFluid, latticeGlyphs[lattice.BoundarySpecular], latticeGlyphs[lattice.BoundaryBounceBack])
	_, err := io.WriteString(w, b.String())
	return err
}

// writeLatticeSlice prints an nx by ny map; suffix holds the coordinates of the
// remaining axes (z for 3-D lattices). For 1-D lattices ny is 1 and the y
// coordinate is dropped from the lookup.
func writeLatticeSlice(b *strings.Builder, l *lattice.CollisionlessLattice, nx, ny int, suffix []int) {
	oneDim := l.NumDims() == 1
	yWidth := len(fmt.Sprint(ny - 1))
	for y := ny - 1; y >= 0; y-- {
		if oneDim {
			b.WriteString(strings.Repeat(" ", yWidth))
		} else {
			b.WriteString(pad(fmt.Sprint(y), yWidth, " ", alignRight))
		}
		b.WriteString(" |")
		for x := 0; x < nx; x++ {
			p := []int{x}
			if !oneDim {
				p = append(p, y)
			}
			p = append(p, suffix...)
			glyph := glyphFluid
			if blk, ok := l.BlockAt(p); ok {
				glyph = latticeGlyphs[blk.Boundary]
			}
			b.WriteString(" ")
			b.WriteString(glyph)
		}
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(" ", yWidth+2))
	for x := 0; x < nx; x++ {
		fmt.Fprintf(b, " %d", x%10)
	}
	b.WriteString("\n")
}
