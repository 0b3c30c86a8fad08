// Package linsys implements Matrix/LinearSystem: a growable container of
// Row sharing a uniform column count, with the sortedness bit, the
// pending-rows cursor, and the column insert/remove/permute operations
// dimension and topology changes build on.
//
// Rows before the pending cursor form the active, sorted prefix; rows
// from the cursor onward are pending — appended but not yet folded into
// the system by Conversion/Simplify. ConstraintSystem and GeneratorSystem
// layer row-kind semantics on top of this package; System itself is
// agnostic to what a row's coefficients mean.
package linsys

import (
	"sort"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
)

// System is a LinearSystem: an ordered sequence of Rows of identical
// length, a topology bit, a sortedness bit, and an index-of-first-pending
// row cursor in [0, NumRows()].
type System struct {
	rows         []*row.Row
	numColumns   int
	topology     rowkind.Topology
	sorted       bool
	pendingStart int
}

// New returns an empty System with the given column count and topology.
// A freshly constructed System is (vacuously) sorted with no pending rows.
func New(numColumns int, topology rowkind.Topology) *System {
	return &System{numColumns: numColumns, topology: topology, sorted: true}
}

// Restore rebuilds a System from already-constructed rows and an
// explicit pending-row cursor, used by deserialisation (ascii.LoadSystem)
// to reconstruct a System without re-running the Insert/InsertPending
// protocol row by row. The caller is trusted to pass a pendingStart in
// [0, len(rows)] and rows that already share numColumns; sortedness of
// the active prefix is not re-verified.
func Restore(numColumns int, topology rowkind.Topology, pendingStart int, rows []*row.Row) *System {
	return &System{rows: rows, numColumns: numColumns, topology: topology, sorted: false, pendingStart: pendingStart}
}

// NumRows returns the total row count, active plus pending.
func (s *System) NumRows() int { return len(s.rows) }

// NumColumns returns the uniform column count of every row in s.
func (s *System) NumColumns() int { return s.numColumns }

// Topology returns s's topology bit.
func (s *System) Topology() rowkind.Topology { return s.topology }

// Sorted reports whether the active prefix (rows before PendingStart) is
// known to be sorted in the LinearSystem total order.
func (s *System) Sorted() bool { return s.sorted }

// PendingStart returns the index of the first pending row; equals
// NumRows() when there are no pending rows.
func (s *System) PendingStart() int { return s.pendingStart }

// HasPending reports whether any pending rows exist.
func (s *System) HasPending() bool { return s.pendingStart < len(s.rows) }

// Row returns the row at index i. The returned pointer aliases internal
// storage; callers that need an independent copy should Clone it.
func (s *System) Row(i int) *row.Row { return s.rows[i] }

// Rows returns the full row slice (active followed by pending). The
// slice aliases internal storage and must not be appended to directly;
// use Insert/InsertPending to add rows.
func (s *System) Rows() []*row.Row { return s.rows }

// ActiveRows returns the active (non-pending) prefix.
func (s *System) ActiveRows() []*row.Row { return s.rows[:s.pendingStart] }

// PendingRows returns the pending suffix.
func (s *System) PendingRows() []*row.Row { return s.rows[s.pendingStart:] }

// SetSorted overwrites the sortedness bit directly; used by callers (e.g.
// Simplify) that establish sortedness through means other than SortRows.
func (s *System) SetSorted(v bool) { s.sorted = v }

// MarkPendingProcessed advances the pending cursor to NumRows(), i.e.
// declares every row active. Called once Conversion/Simplify have
// incorporated the pending range.
func (s *System) MarkPendingProcessed() { s.pendingStart = len(s.rows) }

// Insert appends r, immediately marking it active and clearing the
// sortedness bit (spec: "when no pending rows exist, appends and clears
// the sorted bit"). Use this for ad-hoc appends outside the
// add_constraint/add_generator pending-row protocol.
func (s *System) Insert(r *row.Row) error {
	if r.Length() != s.numColumns {
		return ErrColumnMismatch
	}
	s.rows = append(s.rows, r)
	s.pendingStart = len(s.rows)
	s.sorted = false
	return nil
}

// InsertSorted inserts r at the position that preserves the active
// prefix's sort order. Requires no pending rows exist.
// Complexity: O(log n) search, O(n) shift.
func (s *System) InsertSorted(r *row.Row) error {
	if r.Length() != s.numColumns {
		return ErrColumnMismatch
	}
	if s.HasPending() {
		return ErrPendingRows
	}
	idx := sort.Search(len(s.rows), func(i int) bool {
		return s.rows[i].Compare(r) >= 0
	})
	s.rows = append(s.rows, nil)
	copy(s.rows[idx+1:], s.rows[idx:])
	s.rows[idx] = r
	s.pendingStart = len(s.rows)
	return nil
}

// InsertPending appends r beyond the pending cursor; the cursor itself is
// left untouched, so the sortedness bit (which describes only the active
// prefix) remains valid.
func (s *System) InsertPending(r *row.Row) error {
	if r.Length() != s.numColumns {
		return ErrColumnMismatch
	}
	s.rows = append(s.rows, r)
	return nil
}

// ReplaceRow overwrites the row at index i with r, clearing the
// sortedness bit since the replacement need not preserve sort order.
// Used by Conversion's pivot-elimination step, which rewrites a row in
// place rather than removing and re-inserting it.
func (s *System) ReplaceRow(i int, r *row.Row) error {
	if i < 0 || i >= len(s.rows) {
		return ErrIndexOutOfRange
	}
	if r.Length() != s.numColumns {
		return ErrColumnMismatch
	}
	s.rows[i] = r
	s.sorted = false
	return nil
}

// RemoveRow deletes the row at index i, preserving the active/pending
// split (the pending cursor is decremented if i falls before it).
func (s *System) RemoveRow(i int) error {
	if i < 0 || i >= len(s.rows) {
		return ErrIndexOutOfRange
	}
	s.rows = append(s.rows[:i], s.rows[i+1:]...)
	if i < s.pendingStart {
		s.pendingStart--
	}
	return nil
}

// RemoveRowsWhere deletes every row for which pred returns true,
// preserving relative order and the active/pending split. Used by
// GeneratorSystem.RemoveInvalidLinesAndRays.
func (s *System) RemoveRowsWhere(pred func(*row.Row) bool) {
	kept := s.rows[:0]
	newPendingStart := s.pendingStart
	removedBeforePending := 0
	for i, r := range s.rows {
		if pred(r) {
			if i < s.pendingStart {
				removedBeforePending++
			}
			continue
		}
		kept = append(kept, r)
	}
	s.rows = kept
	s.pendingStart = newPendingStart - removedBeforePending
}

// SwapRows exchanges the rows at positions i and j.
func (s *System) SwapRows(i, j int) error {
	if i < 0 || i >= len(s.rows) || j < 0 || j >= len(s.rows) {
		return ErrIndexOutOfRange
	}
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
	return nil
}

// SortRows stably sorts the active prefix in the LinearSystem total
// order and sets the sortedness bit. Pending rows are left untouched.
func (s *System) SortRows() {
	active := s.rows[:s.pendingStart]
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Compare(active[j]) < 0
	})
	s.sorted = true
}

// AddZeroColumns appends n zero columns at the end of every row (after
// any epsilon column, which is not disturbed in position by this call —
// callers that need to preserve "epsilon is always last" should use
// AddDimensionColumns instead).
func (s *System) AddZeroColumns(n int) error {
	return s.insertColumnsAt(s.numColumns, n)
}

// AddDimensionColumns inserts n zero columns immediately before the
// epsilon column (if any), growing the homogeneous coordinate block
// without disturbing epsilon's position as the last column.
func (s *System) AddDimensionColumns(n int) error {
	at := s.numColumns
	if s.topology == rowkind.NNC {
		at--
	}
	return s.insertColumnsAt(at, n)
}

func (s *System) insertColumnsAt(at, n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if n == 0 {
		return nil
	}
	for i, r := range s.rows {
		s.rows[i] = insertZeros(r, at, n)
	}
	s.numColumns += n
	return nil
}

func insertZeros(r *row.Row, at, n int) *row.Row {
	cs := make([]*bigint.Int, 0, r.Length()+n)
	for i := 0; i < at; i++ {
		cs = append(cs, r.At(i))
	}
	for i := 0; i < n; i++ {
		cs = append(cs, bigint.Zero())
	}
	for i := at; i < r.Length(); i++ {
		cs = append(cs, r.At(i))
	}
	return row.New(cs, r.Kind(), r.Topology())
}

// RemoveTrailingColumns drops the last n columns from every row.
func (s *System) RemoveTrailingColumns(n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if n > s.numColumns {
		return ErrIndexOutOfRange
	}
	return s.RemoveColumnRange(s.numColumns-n, n)
}

// RemoveDimensionColumns removes the last n homogeneous coordinate
// columns (those immediately before the epsilon column, if any), leaving
// epsilon as the last column.
func (s *System) RemoveDimensionColumns(n int) error {
	at := s.numColumns - n
	if s.topology == rowkind.NNC {
		at--
	}
	return s.RemoveColumnRange(at, n)
}

// RemoveColumnRange removes the n columns starting at index at from
// every row, re-running strong normalisation since the deletion can
// change which coefficient the GCD is taken over.
func (s *System) RemoveColumnRange(at, n int) error {
	if n < 0 {
		return ErrNegativeCount
	}
	if n == 0 {
		return nil
	}
	if at < 0 || at+n > s.numColumns {
		return ErrIndexOutOfRange
	}
	for i, r := range s.rows {
		cs := make([]*bigint.Int, 0, r.Length()-n)
		for j := 0; j < r.Length(); j++ {
			if j >= at && j < at+n {
				continue
			}
			cs = append(cs, r.At(j))
		}
		nr := row.New(cs, r.Kind(), r.Topology())
		if err := nr.StrongNormalize(); err != nil {
			return err
		}
		s.rows[i] = nr
	}
	s.numColumns -= n
	return nil
}

// SwapColumns exchanges columns i and j in every row.
func (s *System) SwapColumns(i, j int) error {
	if i < 0 || i >= s.numColumns || j < 0 || j >= s.numColumns {
		return ErrIndexOutOfRange
	}
	if i == j {
		return nil
	}
	for _, r := range s.rows {
		a, b := r.At(i), r.At(j)
		r.Set(i, b)
		r.Set(j, a)
	}
	return nil
}

// PermuteColumns applies a column permutation to every row: perm[newCol]
// = oldCol, so len(perm) must equal NumColumns() and perm must be a
// bijection on [0, NumColumns()). Re-runs strong normalisation on every
// row afterwards (a permutation does not change magnitudes, but callers
// that compose it with other disturbances rely on the invariant holding
// after every structural edit).
func (s *System) PermuteColumns(perm []int) error {
	if len(perm) != s.numColumns {
		return ErrIndexOutOfRange
	}
	for _, r := range s.rows {
		cs := make([]*bigint.Int, s.numColumns)
		for newCol, oldCol := range perm {
			if oldCol < 0 || oldCol >= s.numColumns {
				return ErrIndexOutOfRange
			}
			cs[newCol] = r.At(oldCol)
		}
		for i, c := range cs {
			r.Set(i, c)
		}
		if err := r.StrongNormalize(); err != nil {
			return err
		}
	}
	return nil
}

// AdjustTopologyAndSpaceDimension grows the column count to match newDim
// homogeneous coordinates and inserts or removes the epsilon column
// according to the topology transition newTopology asks for.
//
// canDropEpsilon is consulted only on an NNC-to-closed transition; if
// non-nil and it returns false, the transition is refused: s is left
// unmodified and AdjustTopologyAndSpaceDimension returns (false, nil).
// Pass nil for systems with no such constraint (e.g. ConstraintSystem).
func (s *System) AdjustTopologyAndSpaceDimension(newTopology rowkind.Topology, newDim int, canDropEpsilon func() bool) (bool, error) {
	if s.topology == rowkind.NNC && newTopology == rowkind.Closed {
		if canDropEpsilon != nil && !canDropEpsilon() {
			return false, ErrTopologyRefused
		}
	}

	curDim := s.numColumns - 1
	if s.topology == rowkind.NNC {
		curDim--
	}
	switch {
	case newDim > curDim:
		if err := s.AddDimensionColumns(newDim - curDim); err != nil {
			return false, err
		}
	case newDim < curDim:
		if err := s.RemoveDimensionColumns(curDim - newDim); err != nil {
			return false, err
		}
	}

	switch {
	case s.topology == rowkind.Closed && newTopology == rowkind.NNC:
		if err := s.AddZeroColumns(1); err != nil {
			return false, err
		}
	case s.topology == rowkind.NNC && newTopology == rowkind.Closed:
		if err := s.RemoveTrailingColumns(1); err != nil {
			return false, err
		}
	}
	s.topology = newTopology
	for _, r := range s.rows {
		r.RetagTopology(newTopology)
	}
	return true, nil
}

// Clone returns a deep copy of s.
func (s *System) Clone() *System {
	out := &System{numColumns: s.numColumns, topology: s.topology, sorted: s.sorted, pendingStart: s.pendingStart}
	out.rows = make([]*row.Row, len(s.rows))
	for i, r := range s.rows {
		out.rows[i] = r.Clone()
	}
	return out
}
