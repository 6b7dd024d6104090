// Package draw renders circuits and lattices through named backends.
//
// The text and qasm backends are built in. Plotting backends live in draw/mpl
// and register themselves from init(); import that package (blank import is
// enough) to make "mpl", "svg" and "html" available.
package draw

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/qlbm-go/qlbm/circuit"
	"github.com/qlbm-go/qlbm/lattice"
)

var (
	// ErrUnknownBackend indicates a backend name that has not been registered.
	ErrUnknownBackend = errors.New("unknown draw backend")

	// ErrUnsupported indicates a backend that cannot render the requested object.
	ErrUnsupported = errors.New("unsupported by draw backend")
)

// Backend renders circuits and lattices into a writer.
// A backend that cannot draw one of the two returns an error wrapping ErrUnsupported.
type Backend interface {
	Name() string
	DrawCircuit(c *circuit.Circuit, w io.Writer) error
	DrawLattice(l *lattice.CollisionlessLattice, w io.Writer) error
}

var (
	mu       sync.RWMutex
	backends = make(map[string]Backend)
)

// Register makes a backend available under its name. Registering the same
// name twice replaces the earlier backend.
func Register(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := backends[b.Name()]; exists {
		logrus.Warnf("draw backend %q registered twice; replacing", b.Name())
	}
	backends[b.Name()] = b
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, error) {
	mu.RLock()
	b, ok := backends[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q; valid: %s", ErrUnknownBackend, name, strings.Join(Backends(), ", "))
	}
	return b, nil
}

// Circuit draws c with the named backend.
func Circuit(c *circuit.Circuit, backend string, w io.Writer) error {
	b, err := Lookup(backend)
	if err != nil {
		return err
	}
	logrus.Debugf("drawing circuit %q (%d qubits, %d ops) with %s", c.Name, c.NumQubits(), len(c.Ops), backend)
	if err := b.DrawCircuit(c, w); err != nil {
		return fmt.Errorf("drawing circuit %q with %s: %w", c.Name, backend, err)
	}
	return nil
}

// Lattice draws the geometry of l with the named backend.
func Lattice(l *lattice.CollisionlessLattice, backend string, w io.Writer) error {
	b, err := Lookup(backend)
	if err != nil {
		return err
	}
	logrus.Debugf("drawing lattice %s with %s", l, backend)
	if err := b.DrawLattice(l, w); err != nil {
		return fmt.Errorf("drawing lattice with %s: %w", backend, err)
	}
	return nil
}

func init() {
	Register(textBackend{})
	Register(qasmBackend{})
}
