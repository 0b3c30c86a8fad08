// Package config holds the engine-wide tunables Polyhedron construction
// reads: the maximum space dimension it will accept, the precision used
// by operations that only hold up to a bounded approximation (the
// widening operators), and the bigint.Int allocator operations use when
// building fresh coefficients. Values flow through functional Options,
// following the pattern used throughout this module for optional,
// order-independent construction parameters.
package config

import (
	"strconv"

	"github.com/katalvlaran/ppl/bigint"
)

// defaultMaxSpaceDimension bounds space dimension to the host's native
// int width, keeping degenerate inputs (e.g. a caller-supplied int
// overflow) from allocating unbounded memory before any real
// constraint system exists.
var defaultMaxSpaceDimension = strconv.IntSize

// defaultIrrationalPrecision is the default number of bits of precision
// for approximating an irrational value.
const defaultIrrationalPrecision = 128

// Config is the resolved set of tunables after Options have been
// applied. The zero value is not ready for use; construct via New.
type Config struct {
	maxSpaceDimension   int
	irrationalPrecision uint32
	bigIntAllocator     func(int64) *bigint.Int
}

// New returns a Config with the defaults, as overridden by opts, applied
// in order.
func New(opts ...Option) *Config {
	c := &Config{
		maxSpaceDimension:   defaultMaxSpaceDimension,
		irrationalPrecision: defaultIrrationalPrecision,
		bigIntAllocator:     bigint.FromInt64,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// MaxSpaceDimension returns the largest space dimension a Polyhedron
// built under this Config will accept.
func (c *Config) MaxSpaceDimension() int { return c.maxSpaceDimension }

// IrrationalPrecision returns the configured bit precision for
// approximating an irrational value. No operation in this module reads it.
func (c *Config) IrrationalPrecision() uint32 { return c.irrationalPrecision }

// NewInt allocates a fresh coefficient via the configured allocator.
func (c *Config) NewInt(v int64) *bigint.Int { return c.bigIntAllocator(v) }
