// Package circuit is a small quantum circuit representation: labelled qubit and
// classical wires plus an ordered list of operations. It carries just enough
// structure to build lattice components, lay them out in columns and export them.
package circuit

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidWire indicates an operation referencing a qubit or classical bit that does not exist.
var ErrInvalidWire = errors.New("invalid wire index")

// OpKind classifies an operation.
type OpKind int

const (
	KindGate OpKind = iota
	KindMeasure
	KindBarrier
)

func (k OpKind) String() string {
	switch k {
	case KindGate:
		return "gate"
	case KindMeasure:
		return "measure"
	case KindBarrier:
		return "barrier"
	}
	return fmt.Sprintf("OpKind(%d)", int(k))
}

// Op is one circuit operation.
// Controls are only used by gates; Clbit is only meaningful for measurements.
type Op struct {
	Kind     OpKind
	Name     string
	Qubits   []int // targets
	Controls []int
	Clbit    int
}

// Wires returns every qubit the operation touches, controls first.
func (o Op) Wires() []int {
	out := make([]int, 0, len(o.Controls)+len(o.Qubits))
	out = append(out, o.Controls...)
	return append(out, o.Qubits...)
}

// Circuit holds labelled wires and operations in program order.
type Circuit struct {
	Name   string
	Qubits []string
	Clbits []string
	Ops    []Op
}

// New creates an empty circuit over the given qubit labels with numClbits classical bits
// labelled c[0], c[1], ...
func New(name string, qubitLabels []string, numClbits int) *Circuit {
	c := &Circuit{
		Name:   name,
		Qubits: append([]string(nil), qubitLabels...),
		Clbits: make([]string, numClbits),
	}
	for i := range c.Clbits {
		c.Clbits[i] = fmt.Sprintf("c[%d]", i)
	}
	return c
}

// NumQubits returns the number of qubit wires.
func (c *Circuit) NumQubits() int { return len(c.Qubits) }

// NumClbits returns the number of classical wires.
func (c *Circuit) NumClbits() int { return len(c.Clbits) }

func (c *Circuit) checkQubits(qs ...int) error {
	seen := make(map[int]bool, len(qs))
	for _, q := range qs {
		if q < 0 || q >= len(c.Qubits) {
			return fmt.Errorf("qubit %d not in [0, %d): %w", q, len(c.Qubits), ErrInvalidWire)
		}
		if seen[q] {
			return fmt.Errorf("qubit %d used twice in one operation: %w", q, ErrInvalidWire)
		}
		seen[q] = true
	}
	return nil
}

// Append adds a single-target gate.
func (c *Circuit) Append(name string, qubit int) error {
	if err := c.checkQubits(qubit); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	c.Ops = append(c.Ops, Op{Kind: KindGate, Name: name, Qubits: []int{qubit}})
	return nil
}

// H appends a Hadamard gate.
func (c *Circuit) H(qubit int) error { return c.Append("h", qubit) }

// X appends a Pauli-X gate.
func (c *Circuit) X(qubit int) error { return c.Append("x", qubit) }

// MCX appends a multi-controlled X gate.
func (c *Circuit) MCX(controls []int, target int) error {
	if err := c.checkQubits(append(append([]int(nil), controls...), target)...); err != nil {
		return fmt.Errorf("mcx: %w", err)
	}
	c.Ops = append(c.Ops, Op{
		Kind:     KindGate,
		Name:     "mcx",
		Qubits:   []int{target},
		Controls: append([]int(nil), controls...),
	})
	return nil
}

// Measure appends a measurement of qubit into clbit.
func (c *Circuit) Measure(qubit, clbit int) error {
	if err := c.checkQubits(qubit); err != nil {
		return fmt.Errorf("measure: %w", err)
	}
	if clbit < 0 || clbit >= len(c.Clbits) {
		return fmt.Errorf("measure: clbit %d not in [0, %d): %w", clbit, len(c.Clbits), ErrInvalidWire)
	}
	c.Ops = append(c.Ops, Op{Kind: KindMeasure, Name: "measure", Qubits: []int{qubit}, Clbit: clbit})
	return nil
}

// Barrier appends a barrier over the given qubits, or over all qubits when none are given.
func (c *Circuit) Barrier(qubits ...int) error {
	if len(qubits) == 0 {
		qubits = make([]int, len(c.Qubits))
		for i := range qubits {
			qubits[i] = i
		}
	}
	if len(qubits) == 0 {
		return fmt.Errorf("barrier: circuit has no qubits: %w", ErrInvalidWire)
	}
	if err := c.checkQubits(qubits...); err != nil {
		return fmt.Errorf("barrier: %w", err)
	}
	c.Ops = append(c.Ops, Op{Kind: KindBarrier, Name: "barrier", Qubits: append([]int(nil), qubits...)})
	return nil
}

// Layers packs operations into columns, as soon as possible, such that no two
// operations in one column share a wire. A gate with controls spans every qubit
// between its lowest and highest wire so that drawn connectors never cross another
// operation. Measurements also span down to the classical wires. Barriers span
// their qubits and are never packed with other operations.
// Each layer lists indices into Ops in program order.
func (c *Circuit) Layers() [][]int {
	// frontier[w] is the first free layer on wire w; classical wires follow the qubits.
	frontier := make([]int, len(c.Qubits)+1)
	var layers [][]int
	for i, op := range c.Ops {
		lo, hi := c.span(op)
		layer := 0
		for w := lo; w <= hi; w++ {
			if frontier[w] > layer {
				layer = frontier[w]
			}
		}
		if op.Kind == KindBarrier {
			for _, f := range frontier {
				if f > layer {
					layer = f
				}
			}
		}
		for len(layers) <= layer {
			layers = append(layers, nil)
		}
		layers[layer] = append(layers[layer], i)
		for w := lo; w <= hi; w++ {
			frontier[w] = layer + 1
		}
		if op.Kind == KindBarrier {
			for w := range frontier {
				frontier[w] = layer + 1
			}
		}
	}
	return layers
}

// span returns the inclusive wire range an operation occupies in a drawing.
// The classical register is represented as one extra wire below the qubits.
func (c *Circuit) span(op Op) (int, int) {
	wires := op.Wires()
	lo, hi := wires[0], wires[0]
	for _, w := range wires {
		if w < lo {
			lo = w
		}
		if w > hi {
			hi = w
		}
	}
	if op.Kind == KindMeasure {
		hi = len(c.Qubits)
	}
	return lo, hi
}

// Depth returns the length of the critical path over qubit and classical wires.
// Barriers do not count. Unlike Layers, operations on disjoint wires run in
// parallel even when a drawing would need separate columns for them.
func (c *Circuit) Depth() int {
	qubitLevel := make([]int, len(c.Qubits))
	clbitLevel := make([]int, len(c.Clbits))
	depth := 0
	for _, op := range c.Ops {
		if op.Kind == KindBarrier {
			continue
		}
		level := 0
		for _, q := range op.Wires() {
			if qubitLevel[q] > level {
				level = qubitLevel[q]
			}
		}
		if op.Kind == KindMeasure && clbitLevel[op.Clbit] > level {
			level = clbitLevel[op.Clbit]
		}
		level++
		for _, q := range op.Wires() {
			qubitLevel[q] = level
		}
		if op.Kind == KindMeasure {
			clbitLevel[op.Clbit] = level
		}
		if level > depth {
			depth = level
		}
	}
	return depth
}

// CountOps returns how many operations of each name the circuit holds.
func (c *Circuit) CountOps() map[string]int {
	counts := make(map[string]int)
	for _, op := range c.Ops {
		counts[op.Name]++
	}
	return counts
}

// OpNames returns the distinct operation names in sorted order.
func (c *Circuit) OpNames() []string {
	counts := c.CountOps()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
