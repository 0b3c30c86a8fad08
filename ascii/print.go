package ascii

import (
	"fmt"
	"io"

	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/generator"
)

// PrintConstraintSystem writes cs's constraints, one per line via
// Constraint.String(), in ascending (index 0..n-1) or descending row
// order: the human-readable debug print alongside the token
// ascii_dump/ascii_load pair, mirroring the original's ascend/descend
// print routines.
func PrintConstraintSystem(w io.Writer, cs *constraint.System, descending bool) error {
	n := cs.NumConstraints()
	for i := 0; i < n; i++ {
		idx := i
		if descending {
			idx = n - 1 - i
		}
		if _, err := fmt.Fprintln(w, cs.Constraint(idx).String()); err != nil {
			return err
		}
	}
	return nil
}

// PrintGeneratorSystem writes gs's generators, one per line via
// Generator.String(), in ascending or descending row order.
func PrintGeneratorSystem(w io.Writer, gs *generator.System, descending bool) error {
	n := gs.NumGenerators()
	for i := 0; i < n; i++ {
		idx := i
		if descending {
			idx = n - 1 - i
		}
		if _, err := fmt.Fprintln(w, gs.Generator(idx).String()); err != nil {
			return err
		}
	}
	return nil
}
