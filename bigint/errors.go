// Package bigint: sentinel error set.
package bigint

import "errors"

var (
	// ErrDivisionByZero indicates an exact division or GCD-based reduction
	// was attempted with a zero divisor.
	ErrDivisionByZero = errors.New("bigint: division by zero")

	// ErrNotExact indicates ExactDiv was asked to divide a pair whose
	// quotient is not an integer.
	ErrNotExact = errors.New("bigint: division is not exact")

	// ErrOutOfRange indicates a value could not be represented in the
	// requested fixed-width integer type.
	ErrOutOfRange = errors.New("bigint: value out of range")
)
