// Package generator: sentinel error set.
package generator

import "errors"

var (
	// ErrClosurePointInClosed indicates a closure point was built or
	// inserted against a closed (necessarily-closed) topology.
	ErrClosurePointInClosed = errors.New("generator: closure point not allowed in closed topology")

	// ErrZeroDivisor indicates a point or closure point was built with a
	// non-positive divisor.
	ErrZeroDivisor = errors.New("generator: point divisor must be positive")

	// ErrNonZeroDivisor indicates a line or ray was built with a
	// non-zero divisor.
	ErrNonZeroDivisor = errors.New("generator: line/ray divisor must be zero")

	// ErrDimensionMismatch indicates a LinearExpression or Generator was
	// built with, or inserted against, an incompatible variable count.
	ErrDimensionMismatch = errors.New("generator: dimension mismatch")

	// ErrNegativeDimension indicates New was asked for a negative
	// variable count.
	ErrNegativeDimension = errors.New("generator: negative dimension")
)
