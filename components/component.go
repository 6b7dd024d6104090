// Package components builds drawable circuits from a collisionless lattice.
package components

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/qlbm-go/qlbm/circuit"
	"github.com/qlbm-go/qlbm/draw"
	"github.com/qlbm-go/qlbm/lattice"
)

// Component is a circuit derived from a lattice.
type Component interface {
	// Name returns the registry name of the component.
	Name() string
	// Circuit returns the component's circuit. Callers must not modify it.
	Circuit() *circuit.Circuit
	// Draw renders the circuit with the named backend (e.g. "text", "mpl").
	Draw(backend string, w io.Writer) error
}

// Component names.
const (
	NameGridMeasurement   = "grid-measurement"
	NameGridSuperposition = "grid-superposition"
)

// ValidComponents is the set of recognized component names.
var ValidComponents = map[string]bool{
	NameGridMeasurement:   true,
	NameGridSuperposition: true,
}

// New builds the named component over l.
func New(name string, l *lattice.CollisionlessLattice) (Component, error) {
	var (
		c   Component
		err error
	)
	switch name {
	case NameGridMeasurement:
		c, err = NewGridMeasurement(l)
	case NameGridSuperposition:
		c, err = NewGridSuperposition(l)
	default:
		return nil, fmt.Errorf("unknown component %q; valid: %s", name, strings.Join(Names(), ", "))
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Names returns the recognized component names in sorted order.
func Names() []string {
	names := make([]string, 0, len(ValidComponents))
	for n := range ValidComponents {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// base carries the fields shared by every component.
type base struct {
	name    string
	lattice *lattice.CollisionlessLattice
	circuit *circuit.Circuit
}

func (b *base) Name() string                           { return b.name }
func (b *base) Circuit() *circuit.Circuit              { return b.circuit }
func (b *base) Lattice() *lattice.CollisionlessLattice { return b.lattice }

func (b *base) Draw(backend string, w io.Writer) error {
	return draw.Circuit(b.circuit, backend, w)
}
