package polyhedron

import (
	"github.com/katalvlaran/ppl/constraint"
)

// H79WideningAssign replaces x with the H79-widening of x with respect
// to y (spec.md §4.6): y subseteq x is a precondition, left unchecked
// here as the caller's responsibility (checking it would itself require
// a full Contains test on every call, defeating the point of a
// widening). After minimizing both operands, the result keeps exactly
// those constraints of x that y also satisfies; if none survive, the
// result is the universe.
func (x *Polyhedron) H79WideningAssign(y *Polyhedron) error {
	if x.spaceDim != y.spaceDim {
		return ErrDimensionMismatch
	}
	if err := x.Minimize(); err != nil {
		return err
	}
	if err := y.Minimize(); err != nil {
		return err
	}
	if x.status.Has(Empty) || y.status.Has(Empty) {
		return nil
	}

	cs, err := constraint.New(x.spaceDim, x.topology)
	if err != nil {
		return err
	}
	for i := 0; i < x.constraints.NumConstraints(); i++ {
		c := x.constraints.Constraint(i)
		if constraintSatisfiedBy(c, y) {
			if err := cs.Insert(constraint.FromRow(c.Row().Clone())); err != nil {
				return err
			}
		}
	}

	var out *Polyhedron
	if cs.NumConstraints() == 0 {
		out, err = NewUniverse(x.spaceDim, x.topology, x.cfg)
	} else {
		out, err = FromConstraints(cs, x.cfg)
	}
	if err != nil {
		return err
	}
	*x = *out
	return nil
}

// BHRZ03WideningAssign layers a stabilising-direction heuristic on top
// of H79WideningAssign: a constraint H79 would have dropped is restored
// from x's pre-widening state if a constraint of y shares its
// homogeneous part up to sign (row.ParallelClass == 1, "same
// hyperplane direction, different offset") — i.e. the bounding
// direction itself has stabilised across the iteration even though its
// exact offset has not, which H79 alone would lose.
func (x *Polyhedron) BHRZ03WideningAssign(y *Polyhedron) error {
	if x.spaceDim != y.spaceDim {
		return ErrDimensionMismatch
	}
	if err := x.Minimize(); err != nil {
		return err
	}
	if err := y.Minimize(); err != nil {
		return err
	}
	if x.status.Has(Empty) || y.status.Has(Empty) {
		return nil
	}

	before := x.Clone()
	if err := x.H79WideningAssign(y); err != nil {
		return err
	}
	if x.status.Has(ZeroDimUniv) || x.constraints.NumConstraints() == 0 {
		return nil
	}

	for i := 0; i < before.constraints.NumConstraints(); i++ {
		c := before.constraints.Constraint(i)
		if constraintSatisfiedBy(c, y) {
			continue // already kept by H79
		}
		if m := matchingDirection(c, y.constraints); m != nil {
			if err := x.constraints.Insert(constraint.FromRow(m.Row().Clone())); err != nil {
				return err
			}
		}
	}
	x.status = CUpToDate
	x.satC, x.satG = nil, nil
	return nil
}

func constraintSatisfiedBy(c *constraint.Constraint, p *Polyhedron) bool {
	for i := 0; i < p.generators.NumGenerators(); i++ {
		g := p.generators.Generator(i)
		sp, err := c.Row().ScalarProduct(g.Row())
		if err != nil {
			return false
		}
		if g.IsLine() || c.IsEquality() {
			if sp.Sign() != 0 {
				return false
			}
			continue
		}
		if sp.Sign() < 0 {
			return false
		}
	}
	return true
}

func matchingDirection(c *constraint.Constraint, sys *constraint.System) *constraint.Constraint {
	for i := 0; i < sys.NumConstraints(); i++ {
		other := sys.Constraint(i)
		if other.Kind() != c.Kind() {
			continue
		}
		if c.Row().ParallelClass(other.Row()) == 1 {
			return other
		}
	}
	return nil
}
