// Package polyhedron implements Polyhedron: the façade over a
// ConstraintSystem/GeneratorSystem pair (spec.md §3/§4.6) that keeps the
// two representations and their SaturationMatrix in lock-step, lazily,
// through the pending-row protocol Conversion and Simplify implement.
//
// A Polyhedron never holds an inconsistent pair of Status bits and a
// stale representation at the same time: every exported method either
// returns a Polyhedron whose Status accurately describes what it holds,
// or an error, never a silently wrong answer.
package polyhedron

import (
	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/config"
	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/convert"
	"github.com/katalvlaran/ppl/generator"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
	"github.com/katalvlaran/ppl/saturation"
	"github.com/katalvlaran/ppl/simplify"
)

// Polyhedron is the double-description pair of spec.md §3: a
// ConstraintSystem and a GeneratorSystem describing the same convex set,
// plus the SaturationMatrix relating their rows and the Status bits
// tracking which of the four are currently trustworthy.
type Polyhedron struct {
	cfg      *config.Config
	spaceDim int
	topology rowkind.Topology

	constraints *constraint.System
	generators  *generator.System

	satC *saturation.Matrix // rows=generators, cols=constraints
	satG *saturation.Matrix // rows=constraints, cols=generators

	status Status
}

func checkSpaceDim(spaceDim int, cfg *config.Config) error {
	if spaceDim < 0 {
		return ErrNegativeDimension
	}
	if spaceDim > cfg.MaxSpaceDimension() {
		return ErrDimensionOverflow
	}
	return nil
}

func resolveConfig(cfg *config.Config) *config.Config {
	if cfg == nil {
		return config.New()
	}
	return cfg
}

func zeroCoords(n int) []*bigint.Int {
	out := make([]*bigint.Int, n)
	for i := range out {
		out[i] = bigint.Zero()
	}
	return out
}

func axisCoords(n, axis int) []*bigint.Int {
	out := zeroCoords(n)
	out[axis] = bigint.FromInt64(1)
	return out
}

// NewUniverse returns the universe polyhedron of spaceDim dimensions:
// no constraints, and a generator system spanning the whole space (one
// point at the origin plus one line per axis).
func NewUniverse(spaceDim int, topology rowkind.Topology, cfg *config.Config) (*Polyhedron, error) {
	cfg = resolveConfig(cfg)
	if err := checkSpaceDim(spaceDim, cfg); err != nil {
		return nil, err
	}

	gs, err := generator.New(spaceDim, topology)
	if err != nil {
		return nil, err
	}
	origin, err := generator.Point(zeroCoords(spaceDim), bigint.FromInt64(1))
	if err != nil {
		return nil, err
	}
	if err := gs.Insert(origin); err != nil {
		return nil, err
	}
	for v := 0; v < spaceDim; v++ {
		if err := gs.Insert(generator.Line(axisCoords(spaceDim, v))); err != nil {
			return nil, err
		}
	}

	cs, err := constraint.New(spaceDim, topology)
	if err != nil {
		return nil, err
	}

	st := CUpToDate.With(CMinimized).With(GUpToDate).With(GMinimized)
	if spaceDim == 0 {
		st = st.With(ZeroDimUniv)
	}
	return &Polyhedron{
		cfg: cfg, spaceDim: spaceDim, topology: topology,
		constraints: cs, generators: gs, status: st,
	}, nil
}

// NewEmpty returns the empty polyhedron of spaceDim dimensions: no
// generators, and a single unsatisfiable constraint (0 >= -1, i.e.
// "-1 >= 0", false for every point).
func NewEmpty(spaceDim int, topology rowkind.Topology, cfg *config.Config) (*Polyhedron, error) {
	cfg = resolveConfig(cfg)
	if err := checkSpaceDim(spaceDim, cfg); err != nil {
		return nil, err
	}

	gs, err := generator.New(spaceDim, topology)
	if err != nil {
		return nil, err
	}

	cs, err := constraint.New(spaceDim, topology)
	if err != nil {
		return nil, err
	}
	e, err := constraint.NewLinearExpression(spaceDim)
	if err != nil {
		return nil, err
	}
	e.SetInhomogeneousTerm(bigint.FromInt64(-1))
	if err := cs.Insert(constraint.NonStrict(e)); err != nil {
		return nil, err
	}

	st := Empty.With(CUpToDate).With(CMinimized).With(GUpToDate).With(GMinimized)
	return &Polyhedron{
		cfg: cfg, spaceDim: spaceDim, topology: topology,
		constraints: cs, generators: gs, status: st,
	}, nil
}

// FromConstraints wraps an already-built ConstraintSystem as a
// Polyhedron; its generators are not yet known (call Minimize or
// UpdateGenerators before reading them).
func FromConstraints(cs *constraint.System, cfg *config.Config) (*Polyhedron, error) {
	cfg = resolveConfig(cfg)
	if err := checkSpaceDim(cs.NumVars(), cfg); err != nil {
		return nil, err
	}
	gs, err := generator.New(cs.NumVars(), cs.Topology())
	if err != nil {
		return nil, err
	}
	return &Polyhedron{
		cfg: cfg, spaceDim: cs.NumVars(), topology: cs.Topology(),
		constraints: cs, generators: gs, status: CUpToDate,
	}, nil
}

// FromGenerators wraps an already-built GeneratorSystem as a Polyhedron;
// its constraints are not yet known (call Minimize or UpdateConstraints
// before reading them).
func FromGenerators(gs *generator.System, cfg *config.Config) (*Polyhedron, error) {
	cfg = resolveConfig(cfg)
	if err := checkSpaceDim(gs.NumVars(), cfg); err != nil {
		return nil, err
	}
	cs, err := constraint.New(gs.NumVars(), gs.Topology())
	if err != nil {
		return nil, err
	}
	return &Polyhedron{
		cfg: cfg, spaceDim: gs.NumVars(), topology: gs.Topology(),
		constraints: cs, generators: gs, status: GUpToDate,
	}, nil
}

// Clone returns a deep copy of p.
func (p *Polyhedron) Clone() *Polyhedron {
	out := &Polyhedron{
		cfg: p.cfg, spaceDim: p.spaceDim, topology: p.topology,
		constraints: p.constraints.Clone(), generators: p.generators.Clone(),
		status: p.status,
	}
	if p.satC != nil {
		out.satC = p.satC.Clone()
	}
	if p.satG != nil {
		out.satG = p.satG.Clone()
	}
	return out
}

// SpaceDimension returns the number of dimensions of the vector space p
// is embedded in.
func (p *Polyhedron) SpaceDimension() int { return p.spaceDim }

// Topology returns p's topology.
func (p *Polyhedron) Topology() rowkind.Topology { return p.topology }

// Config returns the Config p was built under.
func (p *Polyhedron) Config() *config.Config { return p.cfg }

// Status returns p's current Status bits.
func (p *Polyhedron) Status() Status { return p.status }

// Constraints returns p's constraint representation, which may be
// stale (check Status().Has(CUpToDate)) or hold redundant/pending rows
// (check Status().Has(CMinimized)).
func (p *Polyhedron) Constraints() *constraint.System { return p.constraints }

// Generators returns p's generator representation, which may be stale
// (check Status().Has(GUpToDate)) or hold redundant/pending rows (check
// Status().Has(GMinimized)).
func (p *Polyhedron) Generators() *generator.System { return p.generators }

// SatC returns p's sat_c matrix (rows=generators, cols=constraints), or
// nil if not currently valid (check Status().Has(SatCUpToDate)).
func (p *Polyhedron) SatC() *saturation.Matrix { return p.satC }

// SatG returns p's sat_g matrix (rows=constraints, cols=generators), or
// nil if not currently valid (check Status().Has(SatGUpToDate)).
func (p *Polyhedron) SatG() *saturation.Matrix { return p.satG }

// FromComponents rebuilds a Polyhedron from its already-deserialised
// parts (ascii.LoadPolyhedron's use case): the caller is trusted to have
// reconstructed a mutually consistent pair, status bits included.
func FromComponents(cfg *config.Config, spaceDim int, topology rowkind.Topology, status Status, cs *constraint.System, gs *generator.System, satC, satG *saturation.Matrix) *Polyhedron {
	return &Polyhedron{
		cfg: resolveConfig(cfg), spaceDim: spaceDim, topology: topology,
		constraints: cs, generators: gs, satC: satC, satG: satG, status: status,
	}
}

// seedUniverseGenerators returns the generator system representing the
// whole spaceDim-dimensional space: one point at the origin plus one
// line per axis — the dual of "no constraints processed yet", and the
// seed Conversion needs for the constraint-to-generator direction (the
// incremental pivot/pairwise steps have nothing to act on starting from
// an empty dual; minimize.cc seeds dest with this identity-line matrix
// before calling conversion).
func seedUniverseGenerators(spaceDim int, topology rowkind.Topology) (*generator.System, error) {
	gs, err := generator.New(spaceDim, topology)
	if err != nil {
		return nil, err
	}
	origin, err := generator.Point(zeroCoords(spaceDim), bigint.FromInt64(1))
	if err != nil {
		return nil, err
	}
	if err := gs.Insert(origin); err != nil {
		return nil, err
	}
	for v := 0; v < spaceDim; v++ {
		if err := gs.Insert(generator.Line(axisCoords(spaceDim, v))); err != nil {
			return nil, err
		}
	}
	return gs, nil
}

// seedOriginEqualities returns the constraint system "x_0 = 0, ...,
// x_{spaceDim-1} = 0": the canonical-basis-lines seed Conversion needs
// for the generator-to-constraint direction, dual to
// seedUniverseGenerators. Folding the universe's own generators through
// this seed correctly reduces every row away (pivoted out as each axis
// line is processed), leaving the empty constraint system — the
// correct dual of "no generators processed yet" is the point itself,
// but the pivot/pairwise machinery needs starting rows to act on, not a
// literal empty system.
func seedOriginEqualities(spaceDim int, topology rowkind.Topology) (*constraint.System, error) {
	cs, err := constraint.New(spaceDim, topology)
	if err != nil {
		return nil, err
	}
	for v := 0; v < spaceDim; v++ {
		e, err := constraint.NewLinearExpression(spaceDim)
		if err != nil {
			return nil, err
		}
		if err := e.SetCoefficient(constraint.Variable(v), bigint.FromInt64(1)); err != nil {
			return nil, err
		}
		if err := cs.Insert(constraint.Equal(e)); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// UpdateConstraints runs Conversion from the current (assumed active,
// not-necessarily-minimized) generators into a constraint system seeded
// with the space's lineality (seedOriginEqualities), the spec.md §4.6
// counterpart of UpdateGenerators. A no-op if the constraint
// representation is already up to date.
func (p *Polyhedron) UpdateConstraints() error {
	if p.status.Has(CUpToDate) {
		return nil
	}
	cs, err := seedOriginEqualities(p.spaceDim, p.topology)
	if err != nil {
		return err
	}
	sat := saturation.New(cs.NumConstraints(), 0, saturation.SatG)
	for _, r := range p.generators.LinSys().ActiveRows() {
		g := generator.FromRow(r)
		if err := convert.AddGenerator(cs, sat, g); err != nil {
			return err
		}
	}
	p.constraints = cs
	p.satG = sat
	p.status = p.status.With(CUpToDate).With(SatGUpToDate).Without(SatCUpToDate)
	return nil
}

// UpdateGenerators runs Conversion from the current (assumed active,
// not-necessarily-minimized) constraints into a generator system seeded
// with the universe (seedUniverseGenerators), the dual of
// UpdateConstraints. A no-op if the generator representation is already
// up to date.
func (p *Polyhedron) UpdateGenerators() error {
	if p.status.Has(GUpToDate) {
		return nil
	}
	gs, err := seedUniverseGenerators(p.spaceDim, p.topology)
	if err != nil {
		return err
	}
	sat := saturation.New(gs.NumGenerators(), 0, saturation.SatC)
	for _, r := range p.constraints.LinSys().ActiveRows() {
		c := constraint.FromRow(r)
		if err := convert.AddConstraint(gs, sat, c); err != nil {
			return err
		}
	}
	p.generators = gs
	p.satC = sat
	p.status = p.status.With(GUpToDate).With(SatCUpToDate).Without(SatGUpToDate)
	return nil
}

// ProcessPendingConstraints folds the constraint system's pending rows
// (added via AddConstraint) into the generator system one at a time via
// Conversion, then re-runs Simplify. A no-op if no constraints are
// pending.
func (p *Polyhedron) ProcessPendingConstraints() error {
	ls := p.constraints.LinSys()
	if !ls.HasPending() {
		return nil
	}
	if !p.status.Has(GUpToDate) {
		if err := p.UpdateGenerators(); err != nil {
			return err
		}
	}
	if p.satC == nil {
		p.satC = saturation.New(p.generators.NumGenerators(), uint(ls.PendingStart()), saturation.SatC)
	}
	for i := ls.PendingStart(); i < ls.NumRows(); i++ {
		c := p.constraints.Constraint(i)
		if err := convert.AddConstraint(p.generators, p.satC, c); err != nil {
			return err
		}
	}
	ls.MarkPendingProcessed()
	if err := simplify.Minimize(p.generators.LinSys(), p.satC); err != nil {
		return err
	}
	p.generators.RemoveInvalidLinesAndRays()
	p.status = p.status.With(GUpToDate).With(GMinimized).With(SatCUpToDate).Without(SatGUpToDate)
	if p.generators.NumGenerators() == 0 {
		p.status = p.status.With(Empty)
	}
	return nil
}

// ProcessPendingGenerators folds the generator system's pending rows
// (added via AddGenerator) into the constraint system one at a time via
// Conversion, then re-runs Simplify. A no-op if no generators are
// pending.
func (p *Polyhedron) ProcessPendingGenerators() error {
	ls := p.generators.LinSys()
	if !ls.HasPending() {
		return nil
	}
	if !p.status.Has(CUpToDate) {
		if err := p.UpdateConstraints(); err != nil {
			return err
		}
	}
	if p.satG == nil {
		p.satG = saturation.New(p.constraints.NumConstraints(), uint(ls.PendingStart()), saturation.SatG)
	}
	for i := ls.PendingStart(); i < ls.NumRows(); i++ {
		g := p.generators.Generator(i)
		if err := convert.AddGenerator(p.constraints, p.satG, g); err != nil {
			return err
		}
	}
	ls.MarkPendingProcessed()
	if err := simplify.Minimize(p.constraints.LinSys(), p.satG); err != nil {
		return err
	}
	p.status = p.status.With(CUpToDate).With(CMinimized).With(SatGUpToDate).Without(SatCUpToDate)
	return nil
}

// Minimize brings both representations up to date, pending-row-free,
// and redundancy-free. A no-op on an already-minimized or known-empty
// polyhedron.
func (p *Polyhedron) Minimize() error {
	if p.status.Has(Empty) {
		return nil
	}
	if p.status.Has(CMinimized) && p.status.Has(GMinimized) {
		return nil
	}
	if p.constraints.LinSys().HasPending() {
		if err := p.ProcessPendingConstraints(); err != nil {
			return err
		}
	}
	if p.generators.LinSys().HasPending() {
		if err := p.ProcessPendingGenerators(); err != nil {
			return err
		}
	}
	if !p.status.Has(CUpToDate) {
		if err := p.UpdateConstraints(); err != nil {
			return err
		}
	}
	if !p.status.Has(GUpToDate) {
		if err := p.UpdateGenerators(); err != nil {
			return err
		}
	}
	if !p.status.Has(CMinimized) {
		if p.satG == nil {
			satG, err := p.deriveSatG()
			if err != nil {
				return err
			}
			p.satG = satG
		}
		if err := simplify.Minimize(p.constraints.LinSys(), p.satG); err != nil {
			return err
		}
		p.status = p.status.With(CMinimized)
	}
	if !p.status.Has(GMinimized) {
		if p.satC == nil {
			satC, err := p.deriveSatC()
			if err != nil {
				return err
			}
			p.satC = satC
		}
		if err := simplify.Minimize(p.generators.LinSys(), p.satC); err != nil {
			return err
		}
		p.generators.RemoveInvalidLinesAndRays()
		p.status = p.status.With(GMinimized)
	}
	if p.generators.NumGenerators() == 0 {
		p.status = p.status.With(Empty)
	} else if p.spaceDim == 0 {
		p.status = p.status.With(ZeroDimUniv)
	}
	return nil
}

// deriveSatG rebuilds sat_g (rows=constraints, cols=generators) from the
// current, already-up-to-date constraint and generator rows. Used by
// Minimize when it needs a saturation matrix to drive Simplify but
// neither UpdateConstraints nor ProcessPendingConstraints produced one
// this call (both representations were already up to date on entry).
func (p *Polyhedron) deriveSatG() (*saturation.Matrix, error) {
	if p.satC != nil {
		return p.satC.Transpose(), nil
	}
	return buildSaturation(p.constraints.LinSys().Rows(), p.generators.LinSys().Rows(), saturation.SatG)
}

// deriveSatC is deriveSatG's dual: sat_c (rows=generators, cols=constraints).
func (p *Polyhedron) deriveSatC() (*saturation.Matrix, error) {
	if p.satG != nil {
		return p.satG.Transpose(), nil
	}
	return buildSaturation(p.generators.LinSys().Rows(), p.constraints.LinSys().Rows(), saturation.SatC)
}

// buildSaturation computes the full (indexRows × colRows) saturation
// matrix by brute-force scalar product, for callers that hold two
// already-consistent representations but no incremental saturation
// history relating them.
func buildSaturation(indexRows, colRows []*row.Row, orientation saturation.Orientation) (*saturation.Matrix, error) {
	m := saturation.New(len(indexRows), uint(len(colRows)), orientation)
	for i, a := range indexRows {
		for j, b := range colRows {
			sp, err := a.ScalarProduct(b)
			if err != nil {
				return nil, err
			}
			if sp.Sign() != 0 {
				if err := m.Set(i, j); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

// AddConstraint appends c to p's pending constraints (on a polyhedron
// known to be empty, c is inserted as an active row and p stays empty),
// marking the generator representation stale at the pending boundary
// (spec.md §4.6): the next operation that consults generators must
// trigger processing instead of reading the now-outdated minimized set.
func (p *Polyhedron) AddConstraint(c *constraint.Constraint) error {
	if c.NumVars() != p.spaceDim {
		return ErrDimensionMismatch
	}
	if p.topology == rowkind.Closed && c.IsStrict() {
		return ErrTopologyIncompatible
	}
	if p.status.Has(Empty) {
		return p.constraints.Insert(c)
	}
	if err := p.constraints.InsertPending(c); err != nil {
		return err
	}
	p.status = p.status.Without(GUpToDate).Without(GMinimized)
	return nil
}

// AddGenerator appends g to p's pending generators, marking the
// constraint representation stale at the pending boundary (the dual of
// AddConstraint's contract). If p is currently known empty, a point
// generator instead replaces the trivial false constraint system
// outright (there is no "dual" system to fold a single point into via
// Conversion; a single point generates exactly the polyhedron {that
// point}).
func (p *Polyhedron) AddGenerator(g *generator.Generator) error {
	if g.NumVars() != p.spaceDim {
		return ErrDimensionMismatch
	}
	if p.topology == rowkind.Closed && g.IsClosurePoint() {
		return ErrTopologyIncompatible
	}
	if p.status.Has(Empty) {
		if !g.IsPoint() && !g.IsClosurePoint() {
			return ErrInvalidArgument
		}
		gs, err := generator.New(p.spaceDim, p.topology)
		if err != nil {
			return err
		}
		if err := gs.Insert(g); err != nil {
			return err
		}
		cs, err := constraint.New(p.spaceDim, p.topology)
		if err != nil {
			return err
		}
		p.generators = gs
		p.constraints = cs
		p.satC, p.satG = nil, nil
		p.status = GUpToDate
		return nil
	}
	if err := p.generators.InsertPending(g); err != nil {
		return err
	}
	p.status = p.status.Without(CUpToDate).Without(CMinimized)
	return nil
}
