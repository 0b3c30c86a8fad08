// Package row implements Row: a fixed-length vector of arbitrary-precision
// coefficients carrying a flag word (kind, topology, validity), plus the
// handful of operations the rest of the double-description engine builds
// on — scalar product, normalisation, linear combination, the sort order
// used by LinearSystem, and the redundancy/parallelism helpers Conversion
// and Simplify need.
//
// Position 0 of the coefficient vector is the inhomogeneous term (for a
// constraint row) or the divisor (for a generator row); positions
// 1..NumVars() are the homogeneous coordinates; an optional trailing
// epsilon column is present iff the row's topology is NNC.
package row

import (
	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/rowkind"
)

// Row is a length-n vector of Coefficients plus a flag word.
type Row struct {
	coeffs   []*bigint.Int
	kind     rowkind.Kind
	topology rowkind.Topology
	validity rowkind.Validity
}

// New returns a Row of the given coefficients (not copied; the caller
// must not retain and mutate the slice afterwards). kind and topology set
// the flag word; validity defaults to fully valid.
func New(coeffs []*bigint.Int, kind rowkind.Kind, topology rowkind.Topology) *Row {
	return &Row{coeffs: coeffs, kind: kind, topology: topology, validity: rowkind.FullyValid()}
}

// Zero returns a Row of n coefficients, all zero.
func Zero(n int, kind rowkind.Kind, topology rowkind.Topology) *Row {
	cs := make([]*bigint.Int, n)
	for i := range cs {
		cs[i] = bigint.Zero()
	}
	return New(cs, kind, topology)
}

// Clone returns a deep copy of r.
func (r *Row) Clone() *Row {
	cs := make([]*bigint.Int, len(r.coeffs))
	for i, c := range r.coeffs {
		cs[i] = c.Clone()
	}
	return &Row{coeffs: cs, kind: r.kind, topology: r.topology, validity: r.validity}
}

// Length returns the number of coefficients, including the inhomogeneous
// term/divisor at position 0 and the epsilon column if present.
// Complexity: O(1).
func (r *Row) Length() int {
	return len(r.coeffs)
}

// HasEpsilon reports whether r carries a trailing epsilon column.
func (r *Row) HasEpsilon() bool {
	return r.topology == rowkind.NNC
}

// NonEpsilonLength returns Length() minus one if r carries an epsilon
// column, else Length().
func (r *Row) NonEpsilonLength() int {
	if r.HasEpsilon() {
		return r.Length() - 1
	}
	return r.Length()
}

// EpsilonIndex returns the index of the epsilon column, or -1 if r has
// none.
func (r *Row) EpsilonIndex() int {
	if !r.HasEpsilon() {
		return -1
	}
	return r.Length() - 1
}

// At returns the coefficient at position i.
func (r *Row) At(i int) *bigint.Int {
	return r.coeffs[i]
}

// Set assigns the coefficient at position i.
func (r *Row) Set(i int, v *bigint.Int) {
	r.coeffs[i] = v
}

// Epsilon returns the epsilon coefficient, or zero if r carries none.
func (r *Row) Epsilon() *bigint.Int {
	if !r.HasEpsilon() {
		return bigint.Zero()
	}
	return r.coeffs[r.Length()-1]
}

// Kind returns the line-or-equality vs ray-or-point-or-inequality flag.
func (r *Row) Kind() rowkind.Kind {
	return r.kind
}

// SetKind overwrites the kind flag, used when Conversion reclassifies a
// line as a ray/point (or an equality as an inequality) in place.
func (r *Row) SetKind(k rowkind.Kind) {
	r.kind = k
}

// RetagTopology overwrites r's topology flag without touching its
// coefficients. Used when a row's owning System has already grown or
// shrunk the epsilon column and just needs the row's own tag to agree.
func (r *Row) RetagTopology(t rowkind.Topology) {
	r.topology = t
}

// Topology returns the row's topology flag.
func (r *Row) Topology() rowkind.Topology {
	return r.topology
}

// Validity returns the kind-interpretation validity sub-flags.
func (r *Row) Validity() rowkind.Validity {
	return r.validity
}

// SetValidity overwrites the validity sub-flags.
func (r *Row) SetValidity(v rowkind.Validity) {
	r.validity = v
}

// IsLineOrEquality reports whether r's kind is LineOrEquality.
func (r *Row) IsLineOrEquality() bool {
	return r.kind == rowkind.LineOrEquality
}

// PromoteToNNC returns r unchanged if it already carries an epsilon
// column, or a clone with one appended (valued epsilonCoeff) and its
// topology tag set to NNC otherwise. Used when a row built under a
// closed topology is inserted into an NNC system.
func (r *Row) PromoteToNNC(epsilonCoeff *bigint.Int) *Row {
	if r.HasEpsilon() {
		return r.Clone()
	}
	cs := make([]*bigint.Int, r.Length()+1)
	for i, c := range r.coeffs {
		cs[i] = c.Clone()
	}
	cs[len(cs)-1] = epsilonCoeff
	return New(cs, r.kind, rowkind.NNC)
}

// DemoteToClosed returns a clone of r with the trailing epsilon column
// dropped and its topology tag set to Closed. The caller is responsible
// for having established that dropping epsilon is semantically sound
// (e.g. GeneratorSystem's closure-point-matching check); DemoteToClosed
// performs no such validation itself.
func (r *Row) DemoteToClosed() *Row {
	if !r.HasEpsilon() {
		return r.Clone()
	}
	cs := make([]*bigint.Int, r.Length()-1)
	for i := range cs {
		cs[i] = r.coeffs[i].Clone()
	}
	return New(cs, r.kind, rowkind.Closed)
}

// ScalarProduct computes x . y = sum_i x_i*y_i over the full coefficient
// vectors. Returns ErrLengthMismatch if the lengths differ.
func (r *Row) ScalarProduct(other *Row) (*bigint.Int, error) {
	if r.Length() != other.Length() {
		return nil, ErrLengthMismatch
	}
	acc := bigint.Zero()
	for i := range r.coeffs {
		acc = acc.Add(r.coeffs[i].Mul(other.coeffs[i]))
	}
	return acc, nil
}

// ReducedScalarProduct computes the scalar product treating the epsilon
// column as absent, for use when r and other were built under different
// topologies and a spurious non-zero from the epsilon mismatch would
// otherwise appear.
func (r *Row) ReducedScalarProduct(other *Row) *bigint.Int {
	n := r.NonEpsilonLength()
	if m := other.NonEpsilonLength(); m < n {
		n = m
	}
	acc := bigint.Zero()
	for i := 0; i < n; i++ {
		acc = acc.Add(r.coeffs[i].Mul(other.coeffs[i]))
	}
	return acc
}

// AllHomogeneousZero reports whether every coefficient from position 1
// through the last homogeneous coordinate (i.e. excluding position 0 and
// any epsilon column) is zero.
func (r *Row) AllHomogeneousZero() bool {
	n := r.NonEpsilonLength()
	for i := 1; i < n; i++ {
		if !r.coeffs[i].IsZero() {
			return false
		}
	}
	return true
}

// SignNormalize flips the sign of every coefficient of a line-or-equality
// row so that its first non-zero coefficient after position 0 is
// positive. Rows of the other kind are left untouched: their sign is
// already fixed by position 0 (zero for a ray, positive for a point) or
// by the inequality direction.
func (r *Row) SignNormalize() {
	if r.kind != rowkind.LineOrEquality {
		return
	}
	for i := 1; i < r.Length(); i++ {
		switch r.coeffs[i].Sign() {
		case 0:
			continue
		case -1:
			r.negate()
		}
		return
	}
}

func (r *Row) negate() {
	for i, c := range r.coeffs {
		r.coeffs[i] = c.Neg()
	}
}

// StrongNormalize divides every coefficient by the GCD of the non-zero
// coefficients (a no-op if the row is all-zero), then sign-normalises if
// the row is a line-or-equality. After StrongNormalize, the row satisfies
// the "strongly normalised" invariant of the data model.
func (r *Row) StrongNormalize() error {
	g := bigint.GCDAll(r.coeffs)
	if !g.IsZero() && !g.Equal(bigint.FromInt64(1)) {
		for i, c := range r.coeffs {
			q, err := c.ExactDiv(g)
			if err != nil {
				return err
			}
			r.coeffs[i] = q
		}
	}
	r.SignNormalize()
	return nil
}

// Combine replaces r in place with
//
//	r <- (y[k]/g)*r - (r[k]/g)*y,  g = gcd(r[k], y[k])
//
// which zeroes column k, then strongly normalises the result. This is the
// pairwise elimination step Conversion uses to build a new row spanning
// the hyperplane that both r and y saturate at column k.
// Returns ErrLengthMismatch if the rows differ in length, ErrColumnOutOfRange
// if k is out of bounds, ErrZeroPivot if both r[k] and y[k] are zero.
func (r *Row) Combine(y *Row, k int) error {
	if r.Length() != y.Length() {
		return ErrLengthMismatch
	}
	if k < 0 || k >= r.Length() {
		return ErrColumnOutOfRange
	}
	xk, yk := r.coeffs[k], y.coeffs[k]
	if xk.IsZero() && yk.IsZero() {
		return ErrZeroPivot
	}
	g := xk.GCD(yk)
	yq, err := yk.ExactDiv(g)
	if err != nil {
		return err
	}
	xq, err := xk.ExactDiv(g)
	if err != nil {
		return err
	}
	out := make([]*bigint.Int, r.Length())
	for i := range out {
		out[i] = yq.Mul(r.coeffs[i]).Sub(xq.Mul(y.coeffs[i]))
	}
	r.coeffs = out
	return r.StrongNormalize()
}

// compareKey is the total order's primary key: lines/equalities sort
// before rays/points/inequalities.
func (r *Row) compareKey() int {
	if r.kind == rowkind.LineOrEquality {
		return 0
	}
	return 1
}

// Compare implements the strict total order used to sort a LinearSystem's
// active prefix: lines/equalities precede rays/points/inequalities; ties
// break on lexicographic comparison of coordinates 1..k, then on
// coordinate 0. Returns -1, 0, or +1.
func (r *Row) Compare(other *Row) int {
	if a, b := r.compareKey(), other.compareKey(); a != b {
		if a < b {
			return -1
		}
		return 1
	}
	n := r.NonEpsilonLength()
	if m := other.NonEpsilonLength(); m < n {
		n = m
	}
	for i := 1; i < n; i++ {
		if c := r.coeffs[i].Cmp(other.coeffs[i]); c != 0 {
			return c
		}
	}
	if len(r.coeffs) > 0 && len(other.coeffs) > 0 {
		return r.coeffs[0].Cmp(other.coeffs[0])
	}
	return 0
}

// ParallelClass compares r and other's homogeneous parts in absolute
// value and reports 0 if every coordinate, position 0 included, matches
// exactly, 1 if the homogeneous parts are equal or exactly opposite but
// the rows are not identical (parallel or antiparallel hyperplanes), or 2
// otherwise. Callers use this as a cheap pre-check before
// the full bitset-based redundancy test: two antiparallel duplicate rows
// are always mutually redundant.
func (r *Row) ParallelClass(other *Row) int {
	n := r.NonEpsilonLength()
	if m := other.NonEpsilonLength(); m != n {
		return 2
	}
	sameSign, oppSign := true, true
	for i := 1; i < n; i++ {
		a, b := r.coeffs[i], other.coeffs[i]
		if a.Cmp(b) != 0 {
			sameSign = false
		}
		if a.Cmp(b.Neg()) != 0 {
			oppSign = false
		}
		if !sameSign && !oppSign {
			return 2
		}
	}
	if r.coeffs[0].Cmp(other.coeffs[0]) == 0 && sameSign {
		return 0
	}
	if sameSign || oppSign {
		return 1
	}
	return 2
}
