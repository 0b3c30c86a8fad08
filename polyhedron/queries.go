package polyhedron

import (
	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/relation"
	"github.com/katalvlaran/ppl/rowkind"
)

// IsEmpty reports whether p describes the empty set, minimizing first.
func (p *Polyhedron) IsEmpty() (bool, error) {
	if err := p.Minimize(); err != nil {
		return false, err
	}
	return p.status.Has(Empty), nil
}

// IsUniverse reports whether p is the entire vector space, minimizing
// first.
func (p *Polyhedron) IsUniverse() (bool, error) {
	if err := p.Minimize(); err != nil {
		return false, err
	}
	return !p.status.Has(Empty) && p.constraints.NumConstraints() == 0, nil
}

// IsBounded reports whether p's minimized generator system contains no
// line or ray (every direction of unbounded growth is absent).
func (p *Polyhedron) IsBounded() (bool, error) {
	if err := p.Minimize(); err != nil {
		return false, err
	}
	if p.status.Has(Empty) {
		return true, nil
	}
	for i := 0; i < p.generators.NumGenerators(); i++ {
		g := p.generators.Generator(i)
		if g.IsLine() || g.IsRay() {
			return false, nil
		}
	}
	return true, nil
}

// IsTopologicallyClosed reports whether p, despite possibly being
// represented under an NNC topology, contains no strict inequality
// among its minimized constraints (so its topological closure equals
// itself).
func (p *Polyhedron) IsTopologicallyClosed() (bool, error) {
	if p.topology == rowkind.Closed {
		return true, nil
	}
	if err := p.Minimize(); err != nil {
		return false, err
	}
	if p.status.Has(Empty) {
		return true, nil
	}
	for i := 0; i < p.constraints.NumConstraints(); i++ {
		if p.constraints.Constraint(i).IsStrict() {
			return false, nil
		}
	}
	return true, nil
}

// IsDiscrete reports whether p is empty or a single point: a convex set
// is discrete only in one of those two cases.
func (p *Polyhedron) IsDiscrete() (bool, error) {
	if err := p.Minimize(); err != nil {
		return false, err
	}
	if p.status.Has(Empty) {
		return true, nil
	}
	return p.AffineDimension() == 0, nil
}

// ContainsIntegerPoint runs the cheap syntactic test: does any minimized
// point/closure-point generator already have divisor 1 (and so already
// names an integer point)? This is the quick check the original runs
// before falling back to a MIP solver; the MIP-backed complete test is
// out of scope (spec.md §1).
func (p *Polyhedron) ContainsIntegerPoint() (bool, error) {
	if err := p.Minimize(); err != nil {
		return false, err
	}
	if p.status.Has(Empty) {
		return false, nil
	}
	one := bigint.FromInt64(1)
	for i := 0; i < p.generators.NumGenerators(); i++ {
		g := p.generators.Generator(i)
		if g.IsLine() || g.IsRay() {
			continue
		}
		if g.Divisor().Cmp(one) == 0 {
			return true, nil
		}
	}
	return false, nil
}

// AffineDimension returns the rank of the equality/line subsystem
// subtracted from the space dimension: the dimension of the smallest
// affine subspace containing p. Callers should Minimize first; an
// un-minimized constraint system may still carry redundant equalities
// and so overstate the rank.
func (p *Polyhedron) AffineDimension() int {
	if p.status.Has(Empty) {
		return -1
	}
	eq := 0
	for i := 0; i < p.constraints.NumConstraints(); i++ {
		if p.constraints.Constraint(i).IsEquality() {
			eq++
		}
	}
	return p.spaceDim - eq
}

// Contains reports whether x is a superset of y: every generator of y
// satisfies every constraint of x (spec.md §4.6).
func Contains(x, y *Polyhedron) bool {
	if x.spaceDim != y.spaceDim {
		return false
	}
	if err := x.Minimize(); err != nil {
		return false
	}
	if err := y.Minimize(); err != nil {
		return false
	}
	if y.status.Has(Empty) {
		return true
	}
	if x.status.Has(Empty) {
		return false
	}
	for i := 0; i < y.generators.NumGenerators(); i++ {
		g := y.generators.Generator(i)
		for j := 0; j < x.constraints.NumConstraints(); j++ {
			c := x.constraints.Constraint(j)
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
	}
	return true
}

// Equals reports whether x and y describe the same set.
func Equals(x, y *Polyhedron) bool {
	return Contains(x, y) && Contains(y, x)
}

// RelationWith classifies c against p by scanning p's generator system
// (spec.md §4.6): each generator is either saturating, strictly on the
// satisfied side, or strictly on the violated side of c; the flags
// returned summarize the scan.
func (p *Polyhedron) RelationWith(c *constraint.Constraint) (relation.ConFlags, error) {
	if c.NumVars() != p.spaceDim {
		return relation.ConNothing, ErrDimensionMismatch
	}
	if err := p.Minimize(); err != nil {
		return relation.ConNothing, err
	}
	if p.status.Has(Empty) {
		return relation.ConSaturates.Union(relation.ConIsIncluded).Union(relation.ConIsDisjoint), nil
	}

	anyPos, anyNeg, anyZero := false, false, false
	for i := 0; i < p.generators.NumGenerators(); i++ {
		g := p.generators.Generator(i)
		sp, err := c.Row().ScalarProduct(g.Row())
		if err != nil {
			return relation.ConNothing, err
		}
		if g.IsLine() {
			if sp.Sign() != 0 {
				anyPos, anyNeg = true, true
			} else {
				anyZero = true
			}
			continue
		}
		switch sp.Sign() {
		case 0:
			anyZero = true
		case 1:
			anyPos = true
		case -1:
			anyNeg = true
		}
	}

	var flags relation.ConFlags
	if anyZero && !anyPos && !anyNeg {
		flags = flags.Union(relation.ConSaturates)
	}
	switch {
	case !anyNeg:
		flags = flags.Union(relation.ConIsIncluded)
	case !anyPos && !anyZero:
		flags = flags.Union(relation.ConIsDisjoint)
	case anyPos && anyNeg:
		flags = flags.Union(relation.ConStrictlyIntersects)
	}
	return flags, nil
}

// TimeElapseAssign replaces p with the convex time-elapse of p under
// q's directions: every point reachable from a point of p by flowing
// along any ray or line of q (spec.md's supplemented feature, built on
// poly_hull + add_space_dimensions_and_embed in the original; the
// equivalent direct construction here unions p's generators with q's
// rays and lines only, since q's points contribute no direction of
// flow).
func (p *Polyhedron) TimeElapseAssign(q *Polyhedron) error {
	if p.spaceDim != q.spaceDim {
		return ErrDimensionMismatch
	}
	if err := p.Minimize(); err != nil {
		return err
	}
	if err := q.Minimize(); err != nil {
		return err
	}
	if p.status.Has(Empty) {
		return nil
	}
	acc := p.Clone()
	added := false
	for i := 0; i < q.generators.NumGenerators(); i++ {
		g := q.generators.Generator(i)
		if !g.IsLine() && !g.IsRay() {
			continue
		}
		if err := acc.generators.InsertPending(g); err != nil {
			return err
		}
		added = true
	}
	if added {
		acc.status = acc.status.Without(GMinimized).Without(SatCUpToDate)
	}
	if err := acc.Minimize(); err != nil {
		return err
	}
	*p = *acc
	return nil
}
