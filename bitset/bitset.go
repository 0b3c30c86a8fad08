// Package bitset provides the dense bitset primitives the saturation
// relation is built from: per-row membership testing, union (used when
// the Conversion step merges the saturation sets of two combined
// generators) and superset testing (the adjacency test of Conversion and
// the redundancy test of Simplify).
//
// It is a thin, domain-shaped adapter over github.com/bits-and-blooms/bitset
// rather than a hand-rolled implementation: the underlying library already
// provides a packed []uint64 bitset with the union/superset operations
// this package needs, and reimplementing that on top of Go slices would
// just be a slower, less-tested copy of the same thing.
package bitset

import bbs "github.com/bits-and-blooms/bitset"

// Set is a dense bitset of fixed logical length, one bit per column of
// the dual system (a generator or constraint index).
type Set struct {
	bits *bbs.BitSet
}

// New returns a Set of n bits, all clear.
func New(n uint) *Set {
	return &Set{bits: bbs.New(n)}
}

// SetBit sets bit i.
func (s *Set) SetBit(i uint) {
	s.bits.Set(i)
}

// ClearBit clears bit i.
func (s *Set) ClearBit(i uint) {
	s.bits.Clear(i)
}

// Test reports whether bit i is set.
func (s *Set) Test(i uint) bool {
	return s.bits.Test(i)
}

// ClearAll clears every bit without changing the logical length.
func (s *Set) ClearAll() {
	s.bits.ClearAll()
}

// Len returns the logical length in bits.
func (s *Set) Len() uint {
	return s.bits.Len()
}

// Count returns the number of set bits.
func (s *Set) Count() uint {
	return s.bits.Count()
}

// Clone returns an independent copy of s.
func (s *Set) Clone() *Set {
	return &Set{bits: s.bits.Clone()}
}

// Union returns a new Set holding the bitwise OR of s and other.
// Used by Conversion when a pairwise combination's saturation set is the
// intersection of its parents' non-saturation sets; callers union the
// complements as needed at the call site.
func (s *Set) Union(other *Set) *Set {
	return &Set{bits: s.bits.Union(other.bits)}
}

// Intersection returns a new Set holding the bitwise AND of s and other.
func (s *Set) Intersection(other *Set) *Set {
	return &Set{bits: s.bits.Intersection(other.bits)}
}

// InPlaceUnion ORs other into s.
func (s *Set) InPlaceUnion(other *Set) {
	s.bits.InPlaceUnion(other.bits)
}

// InPlaceIntersection ANDs other into s.
func (s *Set) InPlaceIntersection(other *Set) {
	s.bits.InPlaceIntersection(other.bits)
}

// IsSuperSet reports whether s contains every bit set in other: the
// adjacency/redundancy test used throughout Conversion and Simplify.
func (s *Set) IsSuperSet(other *Set) bool {
	return s.bits.IsSuperSet(other.bits)
}

// Equal reports whether s and other have identical bits.
func (s *Set) Equal(other *Set) bool {
	return s.bits.Equal(other.bits)
}
