// Package generator implements GeneratorSystem and Generator: the
// LinearSystem specialisation whose rows are tagged line, ray, point, or
// closure point. Position 0 of a generator row is its divisor (0 for
// lines and rays, positive for points and closure points); in an NNC
// system, the epsilon column is 0 for lines/rays/closure-points and
// equal to the divisor for points.
package generator

import (
	"fmt"

	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
)

// Kind is the four-way generator classification layered on top of Row's
// binary kind flag.
type Kind uint8

const (
	LineKind Kind = iota
	RayKind
	PointKind
	ClosurePointKind
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case LineKind:
		return "line"
	case RayKind:
		return "ray"
	case PointKind:
		return "point"
	case ClosurePointKind:
		return "closure_point"
	default:
		return "?"
	}
}

// Generator is a single row of a GeneratorSystem, viewed through its
// typed (line/ray/point/closure-point) interpretation.
type Generator struct {
	r *row.Row
}

func build(numVars int, coords []*bigint.Int, divisor *bigint.Int, kind Kind, topology rowkind.Topology) *Generator {
	n := numVars + 1
	if topology == rowkind.NNC {
		n++
	}
	cs := make([]*bigint.Int, n)
	cs[0] = divisor
	for i := 0; i < numVars; i++ {
		cs[i+1] = coords[i].Clone()
	}
	rowKind := rowkind.RayOrPointOrInequality
	if kind == LineKind {
		rowKind = rowkind.LineOrEquality
	}
	if topology == rowkind.NNC {
		switch kind {
		case PointKind:
			cs[n-1] = divisor.Clone()
		default:
			cs[n-1] = bigint.Zero()
		}
	}
	r := row.New(cs, rowKind, topology)
	_ = r.StrongNormalize()
	return &Generator{r: r}
}

// Line builds a line generator in direction coords.
func Line(coords []*bigint.Int) *Generator {
	return build(len(coords), coords, bigint.Zero(), LineKind, rowkind.Closed)
}

// Ray builds a ray generator in direction coords.
func Ray(coords []*bigint.Int) *Generator {
	return build(len(coords), coords, bigint.Zero(), RayKind, rowkind.Closed)
}

// Point builds a point generator at coords/divisor. Returns
// ErrZeroDivisor if divisor is not positive.
func Point(coords []*bigint.Int, divisor *bigint.Int) (*Generator, error) {
	if divisor.Sign() <= 0 {
		return nil, ErrZeroDivisor
	}
	return build(len(coords), coords, divisor, PointKind, rowkind.Closed), nil
}

// ClosurePoint builds a closure point generator at coords/divisor, valid
// only in an NNC system. Returns ErrZeroDivisor if divisor is not
// positive.
func ClosurePoint(coords []*bigint.Int, divisor *bigint.Int) (*Generator, error) {
	if divisor.Sign() <= 0 {
		return nil, ErrZeroDivisor
	}
	return build(len(coords), coords, divisor, ClosurePointKind, rowkind.NNC), nil
}

// Row exposes the underlying Row for Conversion/Simplify/Polyhedron.
func (g *Generator) Row() *row.Row { return g.r }

func fromRow(r *row.Row) *Generator { return &Generator{r: r} }

// FromRow wraps an existing row as a Generator view. Callers that walk
// a GeneratorSystem's underlying LinSys rows directly (e.g. polyhedron
// orchestration re-deriving one representation from the other) use this
// to recover the typed view without re-validating the row.
func FromRow(r *row.Row) *Generator { return fromRow(r) }

// NumVars returns the number of homogeneous coordinates.
func (g *Generator) NumVars() int {
	return g.r.NonEpsilonLength() - 1
}

// Divisor returns the generator's divisor (0 for lines/rays).
func (g *Generator) Divisor() *bigint.Int {
	return g.r.At(0)
}

// Coordinate returns the coefficient of Variable v.
func (g *Generator) Coordinate(v int) *bigint.Int {
	return g.r.At(v + 1)
}

// IsLine reports whether g is a line.
func (g *Generator) IsLine() bool {
	return g.r.IsLineOrEquality()
}

// IsClosurePoint reports whether g is a closure point: a
// ray-or-point-or-inequality row with a positive divisor whose epsilon
// coefficient is zero, under an NNC topology.
func (g *Generator) IsClosurePoint() bool {
	return !g.IsLine() && g.r.HasEpsilon() && g.Divisor().Sign() > 0 && g.r.Epsilon().IsZero()
}

// IsPoint reports whether g is a point.
func (g *Generator) IsPoint() bool {
	if g.IsLine() || g.Divisor().Sign() <= 0 {
		return false
	}
	if g.r.HasEpsilon() {
		return !g.r.Epsilon().IsZero()
	}
	return true
}

// IsRay reports whether g is a ray.
func (g *Generator) IsRay() bool {
	return !g.IsLine() && g.Divisor().IsZero()
}

// Kind returns g's four-way classification.
func (g *Generator) Kind() Kind {
	switch {
	case g.IsLine():
		return LineKind
	case g.IsRay():
		return RayKind
	case g.IsClosurePoint():
		return ClosurePointKind
	default:
		return PointKind
	}
}

// MatchingClosurePoint returns the closure point obtained by zeroing g's
// epsilon column. Valid for points under an NNC topology; for any other
// generator it returns a clone with epsilon forced to zero.
func (g *Generator) MatchingClosurePoint() *Generator {
	r := g.r.Clone()
	if r.HasEpsilon() {
		r.Set(r.EpsilonIndex(), bigint.Zero())
	}
	return &Generator{r: r}
}

// String renders g for debugging.
func (g *Generator) String() string {
	s := ""
	for v := 0; v < g.NumVars(); v++ {
		if s != "" {
			s += ", "
		}
		s += g.Coordinate(v).String()
	}
	if g.Divisor().IsZero() {
		return fmt.Sprintf("%s(%s)", g.Kind(), s)
	}
	return fmt.Sprintf("%s(%s)/%s", g.Kind(), s, g.Divisor())
}
