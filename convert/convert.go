// Package convert implements Conversion: the Chernikova step that
// incorporates one new row of a primal system (a constraint being added
// to a polyhedron described by generators, or vice versa) into its dual
// system, keeping a SaturationMatrix in lock-step (spec.md §4.4).
//
// The dual system is partitioned by the sign of its rows' scalar
// products with the new row. A line or equality with a non-zero product
// is used as a pivot to eliminate that product from every other row,
// shrinking the dual's lineality space by one dimension. Otherwise the
// partition's "wrong sign" rows are discarded, replaced by the pairwise
// combination of every adjacent positive/negative pair — adjacency
// decided by the saturation bitsets, not by any geometric test.
package convert

import (
	"sort"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/bitset"
	"github.com/katalvlaran/ppl/linsys"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/katalvlaran/ppl/saturation"
)

// IncorporateRow folds newRow into the primal system by updating its
// dual. sat has one row per entry of dual and one column per row the
// primal system already had before newRow (SatC when dual is a generator
// system, SatG when it is a constraint system). On
// success, dual holds the updated (unminimized — Simplify still has to
// run) rows and sat has gained exactly one column, for newRow.
//
// newRowIsEquality selects the two cases of spec.md §4.4: when true,
// only dual rows with a zero scalar product against newRow (plus their
// adjacent pairwise combinations) survive; when false, rows with a
// non-negative product survive and only strictly-negative ones are
// discarded.
func IncorporateRow(dual *linsys.System, sat *saturation.Matrix, newRow *row.Row, newRowIsEquality bool) error {
	n := dual.NumRows()
	if sat.NumRows() != n {
		return ErrSaturationMismatch
	}
	if n == 0 {
		sat.AddColumn()
		return nil
	}

	sp := make([]*bigint.Int, n)
	for i := 0; i < n; i++ {
		s, err := dual.Row(i).ScalarProduct(newRow)
		if err != nil {
			return err
		}
		sp[i] = s
	}

	if pivot, ok := findPivot(dual, sp); ok {
		if err := eliminateViaPivot(dual, sat, sp, pivot, newRowIsEquality); err != nil {
			return err
		}
		return finishColumn(dual, sat, newRow)
	}

	var pos, neg []int
	for i, s := range sp {
		switch s.Sign() {
		case 1:
			pos = append(pos, i)
		case -1:
			neg = append(neg, i)
		}
		// zero-rows need no action: they already satisfy newRow exactly.
	}

	satSnapshot := make([]*bitset.Set, n)
	for i := 0; i < n; i++ {
		satSnapshot[i] = sat.Row(i).Clone()
	}

	var newRows []*row.Row
	var newSats []*bitset.Set
	for _, p := range pos {
		for _, ng := range neg {
			if !adjacent(n, p, ng, satSnapshot) {
				continue
			}
			combined, err := combineByScalar(dual.Row(p), dual.Row(ng), sp[p], sp[ng])
			if err != nil {
				return err
			}
			newRows = append(newRows, combined)
			newSats = append(newSats, satSnapshot[p].Union(satSnapshot[ng]))
		}
	}

	var discard []int
	if newRowIsEquality {
		discard = append(append([]int{}, pos...), neg...)
	} else {
		discard = neg
	}
	sort.Sort(sort.Reverse(sort.IntSlice(discard)))
	for _, idx := range discard {
		if err := removeIndex(dual, sat, idx); err != nil {
			return err
		}
	}

	for i, r := range newRows {
		if err := dual.InsertPending(r); err != nil {
			return err
		}
		idx := sat.AppendRow()
		sat.Row(idx).InPlaceUnion(newSats[i])
	}
	dual.MarkPendingProcessed()

	return finishColumn(dual, sat, newRow)
}

// findPivot returns the index of the first line-or-equality row of dual
// whose scalar product against the new row is non-zero, if any.
func findPivot(dual *linsys.System, sp []*bigint.Int) (int, bool) {
	for i := 0; i < dual.NumRows(); i++ {
		if dual.Row(i).IsLineOrEquality() && sp[i].Sign() != 0 {
			return i, true
		}
	}
	return 0, false
}

// eliminateViaPivot combines every other row with non-zero scalar
// product against pivot so the combination's product is zero. The pivot
// row itself is handled per spec.md §4.4 step 2/3: when newRow is an
// equality, pivot's direction no longer lies in the dual's lineality
// space once newRow is added, so it is discarded outright. When newRow
// is a non-strict inequality, pivot is instead reclassified as a ray on
// the sign side of its scalar product against newRow — discarding it
// would wrongly shrink the dual (e.g. adding x >= 0 to the universe must
// leave a ray(+x), not collapse the half-space to the hyperplane x = 0).
func eliminateViaPivot(dual *linsys.System, sat *saturation.Matrix, sp []*bigint.Int, pivot int, newRowIsEquality bool) error {
	pivotRow := dual.Row(pivot)
	pivotSp := sp[pivot]
	pivotSat := sat.Row(pivot).Clone()

	for i := 0; i < dual.NumRows(); i++ {
		if i == pivot || sp[i].Sign() == 0 {
			continue
		}
		combined, err := combineByScalar(dual.Row(i), pivotRow, sp[i], pivotSp)
		if err != nil {
			return err
		}
		if err := dual.ReplaceRow(i, combined); err != nil {
			return err
		}
		sat.Row(i).InPlaceUnion(pivotSat)
	}

	if newRowIsEquality {
		return removeIndex(dual, sat, pivot)
	}
	ray, err := reclassifyAsRay(pivotRow, pivotSp)
	if err != nil {
		return err
	}
	return dual.ReplaceRow(pivot, ray)
}

// reclassifyAsRay converts a line-or-equality row into a ray pointing to
// the sign side of sp (its scalar product against the incoming
// non-strict inequality), per spec.md §4.4 step 2/3.
func reclassifyAsRay(lineRow *row.Row, sp *bigint.Int) (*row.Row, error) {
	n := lineRow.Length()
	cs := make([]*bigint.Int, n)
	for i := 0; i < n; i++ {
		cs[i] = lineRow.At(i).Clone()
	}
	if sp.Sign() < 0 {
		for i := range cs {
			cs[i] = cs[i].Neg()
		}
	}
	out := row.New(cs, rowkind.RayOrPointOrInequality, lineRow.Topology())
	if err := out.StrongNormalize(); err != nil {
		return nil, err
	}
	return out, nil
}

// adjacent reports whether rows p and n of a (totalRows)-row dual system
// are adjacent: no other row's saturation set is a subset of the union
// of theirs. A non-adjacent pair's combination would be redundant, so
// Conversion skips it.
func adjacent(totalRows, p, n int, satSnapshot []*bitset.Set) bool {
	union := satSnapshot[p].Union(satSnapshot[n])
	if union.Len() == 0 {
		// No constraint has been incorporated yet to saturate against;
		// the containment test is vacuous, so every pair is adjacent.
		return true
	}
	for i := 0; i < totalRows; i++ {
		if i == p || i == n {
			continue
		}
		if union.IsSuperSet(satSnapshot[i]) {
			return false
		}
	}
	return true
}

// combineByScalar returns (spB/g)*a - (spA/g)*b, g = gcd(spA, spB),
// strongly normalised: the same pivot-elimination arithmetic as
// row.Combine, parameterised on the pair's scalar products against the
// new row rather than a shared column, since no single column of a and
// b need be what's being zeroed out here.
func combineByScalar(a, b *row.Row, spA, spB *bigint.Int) (*row.Row, error) {
	g := spA.GCD(spB)
	bq, err := spB.ExactDiv(g)
	if err != nil {
		return nil, err
	}
	aq, err := spA.ExactDiv(g)
	if err != nil {
		return nil, err
	}
	n := a.Length()
	cs := make([]*bigint.Int, n)
	for i := 0; i < n; i++ {
		cs[i] = bq.Mul(a.At(i)).Sub(aq.Mul(b.At(i)))
	}
	out := row.New(cs, a.Kind(), a.Topology())
	if !out.IsLineOrEquality() && out.At(0).Sign() < 0 {
		for i := 0; i < n; i++ {
			cs[i] = cs[i].Neg()
		}
		out = row.New(cs, a.Kind(), a.Topology())
	}
	if err := out.StrongNormalize(); err != nil {
		return nil, err
	}
	return out, nil
}

// removeIndex deletes row idx from dual and sat together, keeping them
// in lock-step.
func removeIndex(dual *linsys.System, sat *saturation.Matrix, idx int) error {
	if err := dual.RemoveRow(idx); err != nil {
		return err
	}
	return sat.RemoveRow(idx)
}

// finishColumn appends sat's column for newRow and sets, for every
// surviving dual row, whether it fails to saturate newRow.
func finishColumn(dual *linsys.System, sat *saturation.Matrix, newRow *row.Row) error {
	sat.AddColumn()
	col := int(sat.NumCols()) - 1
	for i := 0; i < dual.NumRows(); i++ {
		sp, err := dual.Row(i).ScalarProduct(newRow)
		if err != nil {
			return err
		}
		if sp.Sign() != 0 {
			if err := sat.Set(i, col); err != nil {
				return err
			}
		}
	}
	return nil
}
