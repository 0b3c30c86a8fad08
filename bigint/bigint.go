// Package bigint provides arbitrary-precision signed integer arithmetic
// for the double-description engine, plus the GCD/LCM/exact-division
// primitives the Row and Matrix layers build on.
//
// What & Why:
//
//	Int is a thin wrapper over math/big.Int: the engine never needs the
//	full surface of math/big, only sign queries, GCD/LCM, exact division,
//	and comparison, so the wrapper keeps call sites short and gives the
//	rest of the module one place to route through for coefficient
//	arithmetic (e.g. if a different arbitrary-precision backend were ever
//	substituted).
//
// Complexity:
//
//	All operations delegate to math/big and carry its asymptotic cost
//	(GCD is Lehmer's algorithm, O(n^2) on n-word operands).
package bigint

import "math/big"

// Int wraps *big.Int. The zero value is not ready for use; construct via
// Zero, FromInt64, or FromBigInt.
type Int struct {
	v big.Int
}

// Zero returns a new Int with value 0.
func Zero() *Int {
	return &Int{}
}

// FromInt64 returns a new Int with the given int64 value.
func FromInt64(x int64) *Int {
	z := &Int{}
	z.v.SetInt64(x)
	return z
}

// FromBigInt wraps a copy of x. The caller's x is not aliased.
func FromBigInt(x *big.Int) *Int {
	z := &Int{}
	z.v.Set(x)
	return z
}

// Big returns a copy of the underlying math/big.Int, safe for the caller
// to mutate without affecting z.
func (z *Int) Big() *big.Int {
	var out big.Int
	out.Set(&z.v)
	return &out
}

// Clone returns a deep copy of z.
func (z *Int) Clone() *Int {
	out := &Int{}
	out.v.Set(&z.v)
	return out
}

// Sign returns -1, 0, or 1 depending on whether z is negative, zero, or
// positive.
// Complexity: O(1).
func (z *Int) Sign() int {
	return z.v.Sign()
}

// IsZero reports whether z == 0.
func (z *Int) IsZero() bool {
	return z.v.Sign() == 0
}

// Cmp compares z and y: -1 if z<y, 0 if z==y, +1 if z>y.
func (z *Int) Cmp(y *Int) int {
	return z.v.Cmp(&y.v)
}

// CmpAbs compares |z| and |y|.
func (z *Int) CmpAbs(y *Int) int {
	var a, b big.Int
	a.Abs(&z.v)
	b.Abs(&y.v)
	return a.Cmp(&b)
}

// Add returns z+y as a new Int.
func (z *Int) Add(y *Int) *Int {
	out := &Int{}
	out.v.Add(&z.v, &y.v)
	return out
}

// Sub returns z-y as a new Int.
func (z *Int) Sub(y *Int) *Int {
	out := &Int{}
	out.v.Sub(&z.v, &y.v)
	return out
}

// Mul returns z*y as a new Int.
func (z *Int) Mul(y *Int) *Int {
	out := &Int{}
	out.v.Mul(&z.v, &y.v)
	return out
}

// Neg returns -z as a new Int.
func (z *Int) Neg() *Int {
	out := &Int{}
	out.v.Neg(&z.v)
	return out
}

// Abs returns |z| as a new Int.
func (z *Int) Abs() *Int {
	out := &Int{}
	out.v.Abs(&z.v)
	return out
}

// GCD returns the non-negative greatest common divisor of z and y.
// GCD(0, 0) is defined as 0, matching math/big.Int.GCD.
// Complexity: O(n^2) on n-word operands (Lehmer's algorithm).
func (z *Int) GCD(y *Int) *Int {
	out := &Int{}
	a, b := z.Abs(), y.Abs()
	if a.IsZero() {
		return b
	}
	if b.IsZero() {
		return a
	}
	out.v.GCD(nil, nil, &a.v, &b.v)
	return out
}

// LCM returns the non-negative least common multiple of z and y.
// LCM(0, y) and LCM(z, 0) are 0.
func (z *Int) LCM(y *Int) *Int {
	if z.IsZero() || y.IsZero() {
		return Zero()
	}
	g := z.GCD(y)
	q, _ := z.Abs().ExactDiv(g)
	return q.Mul(y.Abs()).Abs()
}

// ExactDiv returns z/y, requiring the division to be exact.
// Returns ErrDivisionByZero if y is zero, ErrNotExact if y does not
// divide z evenly.
func (z *Int) ExactDiv(y *Int) (*Int, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	var q, r big.Int
	q.QuoRem(&z.v, &y.v, &r)
	if r.Sign() != 0 {
		return nil, ErrNotExact
	}
	return &Int{v: q}, nil
}

// Int64 returns z as an int64, or ErrOutOfRange if z does not fit.
func (z *Int) Int64() (int64, error) {
	if !z.v.IsInt64() {
		return 0, ErrOutOfRange
	}
	return z.v.Int64(), nil
}

// String returns the base-10 representation of z.
func (z *Int) String() string {
	return z.v.String()
}

// Equal reports whether z and y carry the same value.
func (z *Int) Equal(y *Int) bool {
	return z.v.Cmp(&y.v) == 0
}

// GCDAll returns the non-negative GCD of a slice of Ints, skipping zeros.
// GCDAll of an all-zero (or empty) slice is 0.
func GCDAll(xs []*Int) *Int {
	g := Zero()
	for _, x := range xs {
		if x.IsZero() {
			continue
		}
		g = g.GCD(x)
	}
	return g
}
