// Package linsys: sentinel error set.
package linsys

import "errors"

var (
	// ErrColumnMismatch indicates a row was inserted whose length does
	// not match the system's column count (after any topology
	// promotion the insert path performs).
	ErrColumnMismatch = errors.New("linsys: row column count mismatch")

	// ErrIndexOutOfRange indicates a row or column index fell outside
	// the valid range.
	ErrIndexOutOfRange = errors.New("linsys: index out of range")

	// ErrNegativeCount indicates a column-count argument (add/remove)
	// was negative.
	ErrNegativeCount = errors.New("linsys: negative column count")

	// ErrPendingRows indicates an operation that requires an empty
	// pending range (e.g. sorted in-place insertion) was attempted while
	// pending rows exist.
	ErrPendingRows = errors.New("linsys: operation requires no pending rows")

	// ErrTopologyRefused indicates adjust-topology declined an NNC to
	// closed transition because the caller's validation predicate
	// rejected it (e.g. an unmatched closure point).
	ErrTopologyRefused = errors.New("linsys: topology transition refused")
)
