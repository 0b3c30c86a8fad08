// Package ascii: sentinel error set.
package ascii

import "errors"

var (
	// ErrUnexpectedToken indicates the token stream did not match the
	// expected keyword at the current position.
	ErrUnexpectedToken = errors.New("ascii: unexpected token")

	// ErrMalformedInt indicates a coefficient token could not be parsed
	// as a base-10 integer.
	ErrMalformedInt = errors.New("ascii: malformed integer token")

	// ErrUnknownFlag indicates a flag token that is not shaped like a
	// flag (`+NAME`/`-NAME`). Per spec.md §6, loaders must accept flag
	// names they cannot distinguish, so a well-shaped token naming
	// something other than RPI_V, RPI, NNC_V or NNC does not raise it.
	ErrUnknownFlag = errors.New("ascii: malformed flag token")

	// ErrTruncated indicates the token stream ended before a complete
	// record was read.
	ErrTruncated = errors.New("ascii: truncated input")

	// ErrTopologyMismatch indicates a dumped topology token did not
	// match {CLOSED, NNC}.
	ErrTopologyMismatch = errors.New("ascii: unrecognised topology token")
)
