package draw

import (
	"fmt"
	"io"

	"github.com/qlbm-go/qlbm/circuit"
	"github.com/qlbm-go/qlbm/lattice"
)

// qasmBackend exports circuits as OpenQASM 2.0.
type qasmBackend struct{}

func (qasmBackend) Name() string { return "qasm" }

func (qasmBackend) DrawCircuit(c *circuit.Circuit, w io.Writer) error {
	_, err := io.WriteString(w, c.QASM())
	return err
}

func (qasmBackend) DrawLattice(*lattice.CollisionlessLattice, io.Writer) error {
	return fmt.Errorf("qasm: lattices have no circuit form: %w", ErrUnsupported)
}
