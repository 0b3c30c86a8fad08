// Package row: sentinel error set.
package row

import "errors"

var (
	// ErrLengthMismatch indicates two rows of different lengths were
	// compared, combined, or had a scalar product taken.
	ErrLengthMismatch = errors.New("row: length mismatch")

	// ErrColumnOutOfRange indicates a column index passed to Combine,
	// At, or Set fell outside [0, Length()).
	ErrColumnOutOfRange = errors.New("row: column out of range")

	// ErrZeroPivot indicates Combine was asked to eliminate a column in
	// which both operand rows carry a zero coefficient.
	ErrZeroPivot = errors.New("row: pivot column is zero in both rows")
)
