// Package saturation: sentinel error set.
package saturation

import "errors"

var (
	// ErrIndexOutOfRange indicates a row or column index fell outside
	// the valid range.
	ErrIndexOutOfRange = errors.New("saturation: index out of range")
)
