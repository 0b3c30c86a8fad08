package generator

import (
	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/linsys"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
)

// System is a LinearSystem specialised to generators: a GeneratorSystem
// in the terminology of spec.md §4.3. In a closed topology, closure
// points are forbidden; in NNC, every point is expected to carry a
// matching closure point once the system is minimised.
type System struct {
	sys *linsys.System
}

// New returns an empty GeneratorSystem over numVars variables with the
// given topology.
func New(numVars int, topology rowkind.Topology) (*System, error) {
	if numVars < 0 {
		return nil, ErrNegativeDimension
	}
	n := numVars + 1
	if topology == rowkind.NNC {
		n++
	}
	return &System{sys: linsys.New(n, topology)}, nil
}

// FromLinSys wraps an already-built *linsys.System as a GeneratorSystem
// view.
func FromLinSys(sys *linsys.System) *System { return &System{sys: sys} }

// LinSys exposes the underlying Matrix/LinearSystem.
func (gs *System) LinSys() *linsys.System { return gs.sys }

// NumVars returns the number of homogeneous coordinates.
func (gs *System) NumVars() int {
	n := gs.sys.NumColumns() - 1
	if gs.sys.Topology() == rowkind.NNC {
		n--
	}
	return n
}

// Topology returns the system's topology.
func (gs *System) Topology() rowkind.Topology { return gs.sys.Topology() }

// NumGenerators returns the total row count, active plus pending.
func (gs *System) NumGenerators() int { return gs.sys.NumRows() }

// Generator returns a typed view of row i.
func (gs *System) Generator(i int) *Generator { return fromRow(gs.sys.Row(i)) }

// Insert appends g as an active row, promoting topology as needed.
func (gs *System) Insert(g *Generator) error {
	return gs.insert(g, gs.sys.Insert)
}

// InsertPending appends g beyond the pending cursor (used by
// add_generator).
func (gs *System) InsertPending(g *Generator) error {
	return gs.insert(g, gs.sys.InsertPending)
}

func (gs *System) insert(g *Generator, do func(*row.Row) error) error {
	if g.NumVars() != gs.NumVars() {
		return ErrDimensionMismatch
	}
	r := g.r
	if gs.sys.Topology() == rowkind.NNC && !r.HasEpsilon() {
		eps := bigint.Zero()
		if !r.IsLineOrEquality() && r.At(0).Sign() > 0 {
			eps = r.At(0).Clone()
		}
		r = r.PromoteToNNC(eps)
	} else if gs.sys.Topology() == rowkind.Closed && r.HasEpsilon() {
		if g.IsClosurePoint() {
			return ErrClosurePointInClosed
		}
		r = r.DemoteToClosed()
	}
	return do(r)
}

// RemoveInvalidLinesAndRays deletes every row whose divisor is zero and
// whose homogeneous part is all-zero: the degenerate "zero vector"
// lines/rays that Conversion and dimension removal can produce.
func (gs *System) RemoveInvalidLinesAndRays() {
	gs.sys.RemoveRowsWhere(func(r *row.Row) bool {
		return r.At(0).IsZero() && r.AllHomogeneousZero()
	})
}

// EveryPointHasMatchingClosurePoint reports whether, for every closure
// point row in gs, a point with the same coordinates and divisor (epsilon
// aside) is also present; points without a matching closure point do not
// affect the result. Used as the canDropEpsilon
// predicate when adjusting an NNC generator system to closed topology:
// spec.md §4.2 forbids the transition when an unmatched closure point
// would be stranded.
func (gs *System) EveryPointHasMatchingClosurePoint() bool {
	if gs.sys.Topology() != rowkind.NNC {
		return true
	}
	rows := gs.sys.Rows()
	for _, r := range rows {
		if r.IsLineOrEquality() || r.At(0).Sign() <= 0 {
			continue
		}
		if !r.Epsilon().IsZero() {
			continue // this is a point; closure points need no point to match
		}
		// r is a closure point: require some point with equal
		// coordinates and divisor.
		found := false
		for _, other := range rows {
			if other == r || other.IsLineOrEquality() {
				continue
			}
			if other.At(0).Sign() <= 0 || other.Epsilon().IsZero() {
				continue
			}
			if sameCoordinates(r, other) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameCoordinates(a, b *row.Row) bool {
	n := a.NonEpsilonLength()
	if b.NonEpsilonLength() != n {
		return false
	}
	for i := 0; i < n; i++ {
		if a.At(i).Cmp(b.At(i)) != 0 {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of gs.
func (gs *System) Clone() *System {
	return &System{sys: gs.sys.Clone()}
}
