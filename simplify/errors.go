// Package simplify: sentinel error set.
package simplify

import "errors"

var (
	// ErrSaturationMismatch indicates the saturation matrix's row count
	// does not match the system's row count.
	ErrSaturationMismatch = errors.New("simplify: saturation row count does not match system")
)
