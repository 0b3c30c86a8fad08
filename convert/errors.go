// Package convert: sentinel error set.
package convert

import "errors"

var (
	// ErrSaturationMismatch indicates the saturation matrix's row count
	// does not match the dual system's row count.
	ErrSaturationMismatch = errors.New("convert: saturation row count does not match dual system")
)
