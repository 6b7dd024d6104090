// Package lattice describes collisionless quantum lattice-Boltzmann lattices.
//
// # Reading Guide
//
// Start with these files:
//   - config.go: the user-facing configuration (dim, velocities, geometry) and its loaders
//   - validate.go: structural checks applied before a lattice is built
//   - lattice.go: CollisionlessLattice, the validated lattice plus its qubit register layout
//
// # Register Layout
//
// Qubits are allocated in a fixed order, qubit 0 first:
//   - a_v: one ancilla velocity qubit per axis
//   - a_o: one ancilla obstacle qubit per axis
//   - a_c: 2*(d-1) ancilla comparator qubits
//   - g_<axis>: log2(dim) grid qubits per axis, least significant bit first
//   - v_<axis>: log2(velocities)-1 velocity magnitude qubits per axis
//   - d_<axis>: one velocity direction qubit per axis
//
// Geometry blocks are inclusive, axis-aligned obstacle regions. Blocks may not
// overlap; the fluid domain is everything outside them.
package lattice
