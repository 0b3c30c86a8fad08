package config

import "github.com/katalvlaran/ppl/bigint"

// Option customizes a Config by mutating it before Polyhedron
// construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*Config)

// WithMaxSpaceDimension overrides the largest space dimension a
// Polyhedron will accept. Panics if n is negative.
// Complexity: O(1) time, O(1) space.
func WithMaxSpaceDimension(n int) Option {
	if n < 0 {
		panic("config: WithMaxSpaceDimension(n<0)")
	}
	return func(c *Config) {
		c.maxSpaceDimension = n
	}
}

// WithIrrationalPrecision overrides the bit precision reported by
// Config.IrrationalPrecision. Panics if bits is zero.
// Complexity: O(1) time, O(1) space.
func WithIrrationalPrecision(bits uint32) Option {
	if bits == 0 {
		panic("config: WithIrrationalPrecision(0)")
	}
	return func(c *Config) {
		c.irrationalPrecision = bits
	}
}

// WithBigIntAllocator overrides the factory used to build fresh
// coefficients, e.g. to route allocation through a pool. Panics on nil.
// Complexity: O(1) time, O(1) space.
func WithBigIntAllocator(fn func(int64) *bigint.Int) Option {
	if fn == nil {
		panic("config: WithBigIntAllocator(nil)")
	}
	return func(c *Config) {
		c.bigIntAllocator = fn
	}
}
