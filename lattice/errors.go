package lattice

import "errors"

// Sentinel errors returned (wrapped) by configuration loading and validation.
var (
	// ErrInvalidAxis indicates an unknown axis name or a malformed set of axes.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrNotPowerOfTwo indicates a grid size or velocity count that is not a power of two >= 2.
	ErrNotPowerOfTwo = errors.New("must be a power of two >= 2")

	// ErrOutOfBounds indicates a geometry range outside the grid or with lo > hi.
	ErrOutOfBounds = errors.New("range out of bounds")

	// ErrUnknownBoundary indicates an unsupported boundary condition name.
	ErrUnknownBoundary = errors.New("unknown boundary condition")

	// ErrOverlap indicates two geometry blocks sharing at least one grid point.
	ErrOverlap = errors.New("overlapping geometry blocks")

	// ErrTooLarge indicates a lattice whose grid or velocity space exceeds the supported size.
	ErrTooLarge = errors.New("lattice too large")

	// ErrUnknownFormat indicates a configuration format that cannot be decoded.
	ErrUnknownFormat = errors.New("unknown config format")
)
