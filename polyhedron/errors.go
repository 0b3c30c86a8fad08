// Package polyhedron: sentinel error set.
package polyhedron

import "errors"

var (
	// ErrNegativeDimension indicates a Polyhedron was asked for a
	// negative space dimension.
	ErrNegativeDimension = errors.New("polyhedron: negative space dimension")

	// ErrDimensionOverflow indicates a requested space dimension exceeds
	// the configured MaxSpaceDimension.
	ErrDimensionOverflow = errors.New("polyhedron: space dimension exceeds configured maximum")

	// ErrDimensionMismatch indicates a binary operation was attempted
	// between polyhedra of different space dimensions.
	ErrDimensionMismatch = errors.New("polyhedron: space dimension mismatch")

	// ErrTopologyIncompatible indicates a closed-only operation received
	// a strict inequality or closure point, or an NNC-only value was
	// used where a closed polyhedron forbids it.
	ErrTopologyIncompatible = errors.New("polyhedron: topology incompatible")

	// ErrInvalidArgument indicates a malformed argument: an empty
	// coordinate set where one is required, an out-of-range variable
	// index, or a zero scaling divisor.
	ErrInvalidArgument = errors.New("polyhedron: invalid argument")
)
