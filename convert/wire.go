package convert

import (
	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/generator"
	"github.com/katalvlaran/ppl/saturation"
)

// AddConstraint incorporates c into the generator system gs that is dual
// to the constraint system c is being added to, updating sat (SatC
// orientation) in lock-step.
func AddConstraint(gs *generator.System, sat *saturation.Matrix, c *constraint.Constraint) error {
	return IncorporateRow(gs.LinSys(), sat, c.Row(), c.IsEquality())
}

// AddGenerator incorporates g into the constraint system cs that is dual
// to the generator system g is being added to, updating sat (SatG
// orientation) in lock-step. A line generator behaves like an equality
// (it must be orthogonal to every surviving constraint); a ray or point
// behaves like a non-strict inequality (it must satisfy every surviving
// constraint with the right sign, not necessarily exactly).
func AddGenerator(cs *constraint.System, sat *saturation.Matrix, g *generator.Generator) error {
	return IncorporateRow(cs.LinSys(), sat, g.Row(), g.IsLine())
}
