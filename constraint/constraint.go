// Package constraint implements ConstraintSystem and Constraint: the
// LinearSystem specialisation whose rows are tagged equality,
// non-strict-inequality, or strict-inequality, with the normalisation
// conventions of the data model — inhomogeneous term at position 0, a
// strict inequality represented in an NNC system as a non-strict
// inequality whose epsilon coefficient is -1 (the relation
// "lhs - eps >= 0, eps > 0").
package constraint

import (
	"fmt"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
)

// Kind is the four-way constraint classification layered on top of
// Row's binary kind flag.
type Kind uint8

const (
	EqualityKind Kind = iota
	NonStrictInequalityKind
	StrictInequalityKind
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case EqualityKind:
		return "="
	case NonStrictInequalityKind:
		return ">="
	case StrictInequalityKind:
		return ">"
	default:
		return "?"
	}
}

// Constraint is a single row of a ConstraintSystem, viewed through its
// typed (equality/non-strict/strict) interpretation.
type Constraint struct {
	r *row.Row
}

// fromExpression builds the underlying row for e with inhomogeneous
// sign convention expr OP 0 (OP per kind), under the given topology.
func fromExpression(e *LinearExpression, kind rowkind.Kind, topology rowkind.Topology, epsilon *bigint.Int) *Constraint {
	n := e.NumVars() + 1
	if topology == rowkind.NNC {
		n++
	}
	cs := make([]*bigint.Int, n)
	cs[0] = e.InhomogeneousTerm().Clone()
	for v := 0; v < e.NumVars(); v++ {
		cs[v+1] = e.Coefficient(Variable(v)).Clone()
	}
	if topology == rowkind.NNC {
		cs[n-1] = epsilon
	}
	r := row.New(cs, kind, topology)
	_ = r.StrongNormalize()
	return &Constraint{r: r}
}

// Equal builds the equality constraint e = 0. The resulting Constraint
// is topology-agnostic (Closed-tagged; ConstraintSystem promotes it to
// NNC on insert via the epsilon-column promotion of spec.md §4.2).
func Equal(e *LinearExpression) *Constraint {
	return fromExpression(e, rowkind.LineOrEquality, rowkind.Closed, nil)
}

// NonStrict builds the non-strict inequality e >= 0.
func NonStrict(e *LinearExpression) *Constraint {
	return fromExpression(e, rowkind.RayOrPointOrInequality, rowkind.Closed, nil)
}

// Strict builds the strict inequality e > 0, represented internally (per
// the data model) as the non-strict inequality "e - eps >= 0" with
// eps > 0: the row's epsilon coefficient is -1.
func Strict(e *LinearExpression) *Constraint {
	return fromExpression(e, rowkind.RayOrPointOrInequality, rowkind.NNC, bigint.FromInt64(-1))
}

// Row exposes the underlying Row for Conversion/Simplify/Polyhedron.
func (c *Constraint) Row() *row.Row { return c.r }

// fromRow wraps an existing row (owned by a ConstraintSystem) as a
// Constraint view. Does not copy.
func fromRow(r *row.Row) *Constraint { return &Constraint{r: r} }

// FromRow wraps an existing row as a Constraint view. Callers that walk
// a ConstraintSystem's underlying LinSys rows directly (e.g. polyhedron
// orchestration re-deriving one representation from the other) use this
// to recover the typed view without re-validating the row.
func FromRow(r *row.Row) *Constraint { return fromRow(r) }

// NumVars returns the number of homogeneous coordinates.
func (c *Constraint) NumVars() int {
	return c.r.NonEpsilonLength() - 1
}

// Coefficient returns the coefficient of Variable v.
func (c *Constraint) Coefficient(v Variable) *bigint.Int {
	return c.r.At(int(v) + 1)
}

// InhomogeneousTerm returns the constraint's constant term.
func (c *Constraint) InhomogeneousTerm() *bigint.Int {
	return c.r.At(0)
}

// IsStrict reports whether c is a strict inequality (epsilon coefficient
// -1 under an NNC topology).
func (c *Constraint) IsStrict() bool {
	return c.r.HasEpsilon() && c.r.Epsilon().Sign() < 0
}

// IsEquality reports whether c is an equality.
func (c *Constraint) IsEquality() bool {
	return c.r.IsLineOrEquality()
}

// Kind returns c's four-way classification.
func (c *Constraint) Kind() Kind {
	switch {
	case c.IsEquality():
		return EqualityKind
	case c.IsStrict():
		return StrictInequalityKind
	default:
		return NonStrictInequalityKind
	}
}

// IsTautological reports whether c holds for every point (a cheap
// syntactic check, not a full satisfiability test): an all-zero
// homogeneous part with an inhomogeneous term that is zero (equality),
// positive (strict inequality) or non-negative (non-strict inequality).
func (c *Constraint) IsTautological() bool {
	if !c.r.AllHomogeneousZero() {
		return false
	}
	b := c.InhomogeneousTerm().Sign()
	switch c.Kind() {
	case EqualityKind:
		return b == 0
	case StrictInequalityKind:
		return b > 0
	default:
		return b >= 0
	}
}

// IsInconsistent reports whether c can never hold (a cheap syntactic
// check): an all-zero homogeneous part with an inhomogeneous term of the
// wrong sign for the constraint's kind.
func (c *Constraint) IsInconsistent() bool {
	if !c.r.AllHomogeneousZero() {
		return false
	}
	b := c.InhomogeneousTerm().Sign()
	switch c.Kind() {
	case EqualityKind:
		return b != 0
	case StrictInequalityKind:
		return b <= 0
	default:
		return b < 0
	}
}

// String renders c as "c0*x0 + c1*x1 + ... OP -b" for debugging,
// skipping zero coefficients.
func (c *Constraint) String() string {
	s := ""
	for v := 0; v < c.NumVars(); v++ {
		coef := c.Coefficient(Variable(v))
		if coef.IsZero() {
			continue
		}
		if s != "" {
			s += " + "
		}
		s += fmt.Sprintf("%s*x%d", coef, v)
	}
	if s == "" {
		s = "0"
	}
	return fmt.Sprintf("%s %s %s", s, c.Kind(), c.InhomogeneousTerm().Neg())
}
