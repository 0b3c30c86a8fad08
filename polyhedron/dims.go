package polyhedron

import (
	"sort"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/generator"
	"github.com/katalvlaran/ppl/rowkind"
)

// AddSpaceDimensionsAndEmbed appends m new dimensions unconstrained in
// any direction: m zero columns on the constraint side, and m new
// canonical-basis lines on the generator side (spec.md §4.6).
func (p *Polyhedron) AddSpaceDimensionsAndEmbed(m int) error {
	if m < 0 {
		return ErrInvalidArgument
	}
	if m == 0 {
		return nil
	}
	if p.spaceDim+m > p.cfg.MaxSpaceDimension() {
		return ErrDimensionOverflow
	}
	if err := p.constraints.LinSys().AddDimensionColumns(m); err != nil {
		return err
	}
	if err := p.generators.LinSys().AddDimensionColumns(m); err != nil {
		return err
	}
	newDim := p.spaceDim + m
	for i := 0; i < m; i++ {
		if err := p.generators.Insert(generator.Line(axisCoords(newDim, p.spaceDim+i))); err != nil {
			return err
		}
	}
	p.spaceDim = newDim
	p.invalidateAfterDimChange()
	return nil
}

// AddSpaceDimensionsAndProject appends m new dimensions pinned to zero:
// m zero columns on the generator side, and m new equality constraints
// x_{k+i} = 0 on the constraint side (spec.md §4.6).
func (p *Polyhedron) AddSpaceDimensionsAndProject(m int) error {
	if m < 0 {
		return ErrInvalidArgument
	}
	if m == 0 {
		return nil
	}
	if p.spaceDim+m > p.cfg.MaxSpaceDimension() {
		return ErrDimensionOverflow
	}
	if err := p.generators.LinSys().AddDimensionColumns(m); err != nil {
		return err
	}
	if err := p.constraints.LinSys().AddDimensionColumns(m); err != nil {
		return err
	}
	newDim := p.spaceDim + m
	for i := 0; i < m; i++ {
		e, err := constraint.NewLinearExpression(newDim)
		if err != nil {
			return err
		}
		if err := e.SetCoefficient(constraint.Variable(p.spaceDim+i), bigint.FromInt64(1)); err != nil {
			return err
		}
		if err := p.constraints.Insert(constraint.Equal(e)); err != nil {
			return err
		}
	}
	p.spaceDim = newDim
	p.invalidateAfterDimChange()
	return nil
}

// RemoveSpaceDimensions projects the given variables out of p: they are
// deleted from the generator representation by column deletion, and the
// constraint representation is marked stale for lazy re-derivation
// (spec.md §4.6).
func (p *Polyhedron) RemoveSpaceDimensions(vars []constraint.Variable) error {
	if len(vars) == 0 {
		return nil
	}
	idx := make([]int, len(vars))
	for i, v := range vars {
		if int(v) < 0 || int(v) >= p.spaceDim {
			return ErrInvalidArgument
		}
		idx[i] = int(v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(idx)))
	if err := p.UpdateGenerators(); err != nil {
		return err
	}
	ls := p.generators.LinSys()
	for _, v := range idx {
		if err := ls.RemoveColumnRange(v+1, 1); err != nil {
			return err
		}
	}
	p.generators.RemoveInvalidLinesAndRays()
	p.spaceDim -= len(idx)
	cs, err := constraint.New(p.spaceDim, p.topology)
	if err != nil {
		return err
	}
	p.constraints = cs
	p.satC, p.satG = nil, nil
	p.status = GUpToDate
	if p.generators.NumGenerators() == 0 {
		p.status = p.status.With(Empty)
	}
	return nil
}

// MapSpaceDimensions applies pfunc (old variable index -> new variable
// index) to every dimension via a column permutation. Variables absent
// from pfunc's domain are projected out first (RemoveSpaceDimensions);
// pfunc's range, restricted to the surviving variables, must then be a
// bijection onto [0, newSpaceDim) (spec.md §4.6).
func (p *Polyhedron) MapSpaceDimensions(pfunc map[int]int) error {
	var toRemove []constraint.Variable
	for v := 0; v < p.spaceDim; v++ {
		if _, ok := pfunc[v]; !ok {
			toRemove = append(toRemove, constraint.Variable(v))
		}
	}
	if len(toRemove) > 0 {
		if err := p.RemoveSpaceDimensions(toRemove); err != nil {
			return err
		}
	}
	if err := p.Minimize(); err != nil {
		return err
	}

	keys := make([]int, 0, len(pfunc))
	for v := range pfunc {
		keys = append(keys, v)
	}
	sort.Ints(keys)

	n := p.constraints.LinSys().NumColumns()
	perm := make([]int, n)
	perm[0] = 0
	for relPos, v := range keys {
		newVar := pfunc[v]
		if newVar < 0 || newVar >= len(keys) {
			return ErrInvalidArgument
		}
		perm[newVar+1] = relPos + 1
	}
	if p.topology == rowkind.NNC {
		perm[n-1] = n - 1
	}
	if err := p.constraints.LinSys().PermuteColumns(perm); err != nil {
		return err
	}
	if err := p.generators.LinSys().PermuteColumns(perm); err != nil {
		return err
	}
	p.constraints.LinSys().SetSorted(false)
	p.generators.LinSys().SetSorted(false)
	p.status = p.status.Without(CMinimized).Without(GMinimized).
		Without(SatCUpToDate).Without(SatGUpToDate)
	p.satC, p.satG = nil, nil
	return nil
}

// ExpandSpaceDimension clones every constraint mentioning v into m
// copies, each renaming v to one of m freshly embedded dimensions
// (spec.md §4.6).
func (p *Polyhedron) ExpandSpaceDimension(v constraint.Variable, m int) error {
	if int(v) < 0 || int(v) >= p.spaceDim {
		return ErrInvalidArgument
	}
	if m < 0 {
		return ErrInvalidArgument
	}
	if m == 0 {
		return nil
	}
	if err := p.UpdateConstraints(); err != nil {
		return err
	}
	if err := p.AddSpaceDimensionsAndEmbed(m); err != nil {
		return err
	}
	newBase := p.spaceDim - m
	ls := p.constraints.LinSys()
	n := ls.PendingStart()
	for i := 0; i < n; i++ {
		r := ls.Row(i)
		if r.At(int(v) + 1).IsZero() {
			continue
		}
		for k := 0; k < m; k++ {
			nr := r.Clone()
			val := nr.At(int(v) + 1)
			nr.Set(int(v)+1, bigint.Zero())
			nr.Set(newBase+k+1, val)
			if err := nr.StrongNormalize(); err != nil {
				return err
			}
			if err := p.constraints.Insert(constraint.FromRow(nr)); err != nil {
				return err
			}
		}
	}
	p.invalidateAfterDimChange()
	p.status = p.status.Without(GUpToDate)
	return nil
}

// FoldSpaceDimensions replaces p with the poly-hull of its images under
// the substitutions x_into <- x_vi for each vi in vars, then removes
// vars (spec.md §4.6).
func (p *Polyhedron) FoldSpaceDimensions(vars []constraint.Variable, into constraint.Variable) error {
	if len(vars) == 0 {
		return nil
	}
	if int(into) < 0 || int(into) >= p.spaceDim {
		return ErrInvalidArgument
	}
	acc := p.Clone()
	for _, vi := range vars {
		if int(vi) < 0 || int(vi) >= p.spaceDim {
			return ErrInvalidArgument
		}
		img := p.Clone()
		e, err := constraint.NewLinearExpression(p.spaceDim)
		if err != nil {
			return err
		}
		if err := e.SetCoefficient(vi, bigint.FromInt64(1)); err != nil {
			return err
		}
		if err := img.AffineImage(into, e, bigint.FromInt64(1)); err != nil {
			return err
		}
		hull, err := PolyHull(acc, img)
		if err != nil {
			return err
		}
		acc = hull
	}
	if err := acc.RemoveSpaceDimensions(vars); err != nil {
		return err
	}
	*p = *acc
	return nil
}

// invalidateAfterDimChange clears the minimized/saturation status bits
// after a structural edit that grew or permuted the row length: the
// rows are still valid, but no longer known sorted, redundancy-free, or
// in step with a saturation matrix sized for the old column count.
func (p *Polyhedron) invalidateAfterDimChange() {
	p.status = p.status.Without(CMinimized).Without(GMinimized).
		Without(SatCUpToDate).Without(SatGUpToDate).Without(ZeroDimUniv)
	p.satC, p.satG = nil, nil
}
