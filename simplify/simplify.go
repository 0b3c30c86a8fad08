// Package simplify implements Simplify: the redundancy-removal pass that
// restores a LinearSystem (and its dual SaturationMatrix) to minimal
// form after Conversion has incorporated a batch of pending rows
// (spec.md §4.5).
//
// Two independent reductions run in sequence: Gaussian elimination among
// the lines/equalities, so each survivor has a distinct pivot column and
// any that collapses to the zero vector is dropped; then a bitset
// superset test among the remaining rays/points/inequalities, which
// drops any row whose non-saturation set is contained in another's — it
// is implied by, and therefore redundant with, that other row.
package simplify

import (
	"sort"

	"github.com/katalvlaran/ppl/bitset"
	"github.com/katalvlaran/ppl/linsys"
	"github.com/katalvlaran/ppl/saturation"
)

// Minimize reduces sys to an irredundant system, updating sat (one row
// per row of sys, one column per row of its dual) in lock-step. sys and
// sat must agree on row count on entry.
func Minimize(sys *linsys.System, sat *saturation.Matrix) error {
	if sat.NumRows() != sys.NumRows() {
		return ErrSaturationMismatch
	}
	if err := eliminateLines(sys, sat); err != nil {
		return err
	}
	if err := removeRedundantNonLines(sys, sat); err != nil {
		return err
	}
	for i := 0; i < sys.PendingStart(); i++ {
		m := i
		for j := i + 1; j < sys.PendingStart(); j++ {
			if sys.Row(j).Compare(sys.Row(m)) < 0 {
				m = j
			}
		}
		if err := sys.SwapRows(i, m); err != nil {
			return err
		}
		if err := sat.SwapRows(i, m); err != nil {
			return err
		}
	}
	sys.SetSorted(true)
	return nil
}

// eliminateLines runs Gaussian elimination over the line/equality rows:
// for each column in turn, one not-yet-used line with a non-zero
// coefficient there becomes the pivot and is combined into every other
// line with a non-zero coefficient in that column, zeroing it there.
// Lines that collapse to the zero vector afterwards are removed.
func eliminateLines(sys *linsys.System, sat *saturation.Matrix) error {
	lines := lineIndices(sys)
	used := make(map[int]bool, len(lines))
	for col := 1; col < sys.NumColumns(); col++ {
		pivot := -1
		for _, i := range lines {
			if used[i] {
				continue
			}
			if !sys.Row(i).At(col).IsZero() {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		used[pivot] = true
		for _, i := range lines {
			if i == pivot || used[i] {
				continue
			}
			if sys.Row(i).At(col).IsZero() {
				continue
			}
			if err := sys.Row(i).Combine(sys.Row(pivot), col); err != nil {
				return err
			}
		}
	}
	return removeDegenerateLines(sys, sat, lines)
}

func lineIndices(sys *linsys.System) []int {
	var out []int
	for i := 0; i < sys.NumRows(); i++ {
		if sys.Row(i).IsLineOrEquality() {
			out = append(out, i)
		}
	}
	return out
}

func removeDegenerateLines(sys *linsys.System, sat *saturation.Matrix, lines []int) error {
	var dead []int
	for _, i := range lines {
		r := sys.Row(i)
		if r.At(0).IsZero() && r.AllHomogeneousZero() && r.Epsilon().IsZero() {
			dead = append(dead, i)
		}
	}
	return removeIndices(sys, sat, dead)
}

// removeRedundantNonLines drops every ray/point/inequality row whose
// non-saturation set is a (possibly equal) subset of another such row's:
// the adjacency/redundancy test of spec.md §4.5, applied pairwise via
// the saturation bitsets rather than any geometric computation. Among
// exact duplicates, the lowest-indexed row survives.
func removeRedundantNonLines(sys *linsys.System, sat *saturation.Matrix) error {
	n := sys.NumRows()
	snapshot := make([]*bitset.Set, n)
	isLine := make([]bool, n)
	for i := 0; i < n; i++ {
		snapshot[i] = sat.Row(i).Clone()
		isLine[i] = sys.Row(i).IsLineOrEquality()
	}

	var dead []int
	for i := 0; i < n; i++ {
		if isLine[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if i == j || isLine[j] {
				continue
			}
			if redundant(i, j, snapshot) {
				dead = append(dead, i)
				break
			}
		}
	}
	return removeIndices(sys, sat, dead)
}

// redundant reports whether row i is implied by row j: j's
// non-saturation set contains i's, and either it is a strict superset or
// i is the higher-indexed of an exact duplicate pair.
func redundant(i, j int, snapshot []*bitset.Set) bool {
	if !snapshot[j].IsSuperSet(snapshot[i]) {
		return false
	}
	if snapshot[i].IsSuperSet(snapshot[j]) {
		return j < i // exact duplicate: keep the lower index
	}
	return true
}

func removeIndices(sys *linsys.System, sat *saturation.Matrix, idx []int) error {
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	for _, i := range idx {
		if err := sys.RemoveRow(i); err != nil {
			return err
		}
		if err := sat.RemoveRow(i); err != nil {
			return err
		}
	}
	return nil
}
