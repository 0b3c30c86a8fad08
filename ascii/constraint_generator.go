package ascii

import (
	"io"

	"github.com/katalvlaran/ppl/constraint"
	"github.com/katalvlaran/ppl/generator"
)

// DumpConstraintSystem writes cs via DumpSystem over its underlying
// LinearSystem.
func DumpConstraintSystem(w io.Writer, cs *constraint.System) error {
	return DumpSystem(w, cs.LinSys())
}

// LoadConstraintSystem parses a dump written by DumpConstraintSystem.
func LoadConstraintSystem(r io.Reader) (*constraint.System, error) {
	return loadConstraintSystem(newTokenScanner(r))
}

func loadConstraintSystem(s *tokenScanner) (*constraint.System, error) {
	sys, err := loadSystem(s)
	if err != nil {
		return nil, err
	}
	return constraint.FromLinSys(sys), nil
}

// DumpGeneratorSystem writes gs via DumpSystem over its underlying
// LinearSystem.
func DumpGeneratorSystem(w io.Writer, gs *generator.System) error {
	return DumpSystem(w, gs.LinSys())
}

// LoadGeneratorSystem parses a dump written by DumpGeneratorSystem.
func LoadGeneratorSystem(r io.Reader) (*generator.System, error) {
	return loadGeneratorSystem(newTokenScanner(r))
}

func loadGeneratorSystem(s *tokenScanner) (*generator.System, error) {
	sys, err := loadSystem(s)
	if err != nil {
		return nil, err
	}
	return generator.FromLinSys(sys), nil
}
