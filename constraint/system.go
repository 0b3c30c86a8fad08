package constraint

import (
	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/linsys"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
)

// System is a LinearSystem specialised to constraints: a ConstraintSystem
// in the terminology of spec.md §4.3. In a closed topology, strict
// inequalities are forbidden.
type System struct {
	sys *linsys.System
}

// New returns an empty ConstraintSystem over numVars variables with the
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

// FromLinSys wraps an already-built *linsys.System as a ConstraintSystem
// view, used internally by Conversion/Simplify which operate on the
// column-agnostic Matrix layer.
func FromLinSys(sys *linsys.System) *System { return &System{sys: sys} }

// LinSys exposes the underlying Matrix/LinearSystem.
func (cs *System) LinSys() *linsys.System { return cs.sys }

// NumVars returns the number of homogeneous coordinates.
func (cs *System) NumVars() int {
	n := cs.sys.NumColumns() - 1
	if cs.sys.Topology() == rowkind.NNC {
		n--
	}
	return n
}

// Topology returns the system's topology.
func (cs *System) Topology() rowkind.Topology { return cs.sys.Topology() }

// NumConstraints returns the total row count, active plus pending.
func (cs *System) NumConstraints() int { return cs.sys.NumRows() }

// Constraint returns a typed view of row i.
func (cs *System) Constraint(i int) *Constraint { return fromRow(cs.sys.Row(i)) }

// Insert appends c as an active row (spec.md §4.2's Insert, not the
// pending-row protocol), promoting topology as needed. Returns
// ErrStrictInClosed if c is strict and cs is closed, ErrDimensionMismatch
// if the variable counts differ.
func (cs *System) Insert(c *Constraint) error {
	return cs.insert(c, cs.sys.Insert)
}

// InsertPending appends c beyond the pending cursor (used by
// add_constraint).
func (cs *System) InsertPending(c *Constraint) error {
	return cs.insert(c, cs.sys.InsertPending)
}

func (cs *System) insert(c *Constraint, do func(*row.Row) error) error {
	if c.NumVars() != cs.NumVars() {
		return ErrDimensionMismatch
	}
	r := c.r
	if cs.sys.Topology() == rowkind.NNC && !r.HasEpsilon() {
		r = r.PromoteToNNC(bigint.Zero())
	} else if cs.sys.Topology() == rowkind.Closed && r.HasEpsilon() {
		if r.Epsilon().Sign() != 0 {
			return ErrStrictInClosed
		}
		r = r.DemoteToClosed()
	}
	return do(r)
}

// Clone returns a deep copy of cs.
func (cs *System) Clone() *System {
	return &System{sys: cs.sys.Clone()}
}
