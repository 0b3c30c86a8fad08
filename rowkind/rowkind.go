// Package rowkind defines the small flag-word vocabulary shared by Row,
// LinearSystem, ConstraintSystem and GeneratorSystem: topology (closed vs
// not-necessarily-closed) and the binary row kind (line-or-equality vs
// ray-or-point-or-inequality) that a Row carries instead of a virtual
// method table.
//
// The source this module is modelled on is parametric over row kind via
// flag bits, not dynamic dispatch: a handful of bits decide behaviour and
// every Row operation stays monomorphic. This package is the single place
// those bits are named, so the rest of the module never open-codes a
// magic boolean.
package rowkind

// Topology distinguishes a necessarily-closed system (non-strict
// inequalities only) from a not-necessarily-closed (NNC) one, which
// admits strict inequalities and closure points via a trailing epsilon
// column.
type Topology uint8

const (
	// Closed systems carry no epsilon column; strict inequalities and
	// closure points are forbidden.
	Closed Topology = iota
	// NNC systems carry a trailing epsilon column encoding strictness.
	NNC
)

// String implements fmt.Stringer.
func (t Topology) String() string {
	if t == NNC {
		return "NNC"
	}
	return "CLOSED"
}

// Kind is the binary row classification: a line (generator system) or an
// equality (constraint system) on one side, a ray/point (generator
// system) or an inequality (constraint system) on the other. The finer
// four-way split (line/ray/point/closure-point,
// equality/non-strict/strict) is layered on top by the ConstraintSystem
// and GeneratorSystem packages, which additionally consult position 0
// and the epsilon column.
type Kind uint8

const (
	// LineOrEquality rows: position 0 is always 0 (lines) or the row
	// expresses an equality (constraints); first non-zero coefficient
	// after position 0 is sign-normalised positive.
	LineOrEquality Kind = iota
	// RayOrPointOrInequality rows: rays have position 0 equal to zero,
	// points have position 0 positive, and inequalities carry their
	// inhomogeneous term there.
	RayOrPointOrInequality
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k == LineOrEquality {
		return "LINE_OR_EQUALITY"
	}
	return "RAY_OR_POINT_OR_INEQUALITY"
}

// Validity records, for a Row whose storage is mid-reshape, whether the
// row is presently meaningful under the constraint-kind interpretation
// and/or the generator-kind interpretation. A freshly built Row is valid
// under whichever interpretation its owning system uses; the dual flag
// exists so low-level Matrix operations (column permutation, topology
// adjustment) can mark a row kind-agnostic without losing track of which
// interpretations it can be restored to.
type Validity struct {
	ConstraintKindValid bool
	GeneratorKindValid  bool
}

// FullyValid reports both interpretations valid, the common case.
func FullyValid() Validity {
	return Validity{ConstraintKindValid: true, GeneratorKindValid: true}
}
