package circuit

import (
	"fmt"
	"strings"
)

// QASM renders the circuit as OpenQASM 2.0.
// Qubits map to a single register q, classical bits to c. Multi-controlled X
// gates are emitted as cx, ccx or mcx by control count.
func (c *Circuit) QASM() string {
	var b strings.Builder
	b.WriteString("OPENQASM 2.0;\n")
	b.WriteString("include \"qelib1.inc\";\n")
	if c.Name != "" {
		fmt.Fprintf(&b, "// %s\n", c.Name)
	}
	fmt.Fprintf(&b, "qreg q[%d];\n", len(c.Qubits))
	if len(c.Clbits) > 0 {
		fmt.Fprintf(&b, "creg c[%d];\n", len(c.Clbits))
	}
	for _, op := range c.Ops {
		switch op.Kind {
		case KindMeasure:
			fmt.Fprintf(&b, "measure q[%d] -> c[%d];\n", op.Qubits[0], op.Clbit)
		case KindBarrier:
			fmt.Fprintf(&b, "barrier %s;\n", qubitList(op.Qubits))
		case KindGate:
			fmt.Fprintf(&b, "%s %s;\n", gateName(op), qubitList(op.Wires()))
		}
	}
	return b.String()
}

func gateName(op Op) string {
	if op.Name != "mcx" {
		return op.Name
	}
	switch len(op.Controls) {
	case 0:
		return "x"
	case 1:
		return "cx"
	case 2:
		return "ccx"
	}
	return "mcx"
}

func qubitList(qs []int) string {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = fmt.Sprintf("q[%d]", q)
	}
	return strings.Join(parts, ",")
}
