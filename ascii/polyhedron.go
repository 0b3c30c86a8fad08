package ascii

import (
	"io"

	"github.com/katalvlaran/ppl/config"
	"github.com/katalvlaran/ppl/polyhedron"
	"github.com/katalvlaran/ppl/saturation"
)

var statusBitNames = []struct {
	name string
	bit  polyhedron.Status
}{
	{"ZERO_DIM_UNIV", polyhedron.ZeroDimUniv},
	{"EMPTY", polyhedron.Empty},
	{"C_UP_TO_DATE", polyhedron.CUpToDate},
	{"G_UP_TO_DATE", polyhedron.GUpToDate},
	{"C_MINIMIZED", polyhedron.CMinimized},
	{"G_MINIMIZED", polyhedron.GMinimized},
	{"SAT_C_UP_TO_DATE", polyhedron.SatCUpToDate},
	{"SAT_G_UP_TO_DATE", polyhedron.SatGUpToDate},
}

// DumpPolyhedron writes p as status flags, space dimension, then (in
// order) its constraint system, generator system, sat_c if valid, and
// sat_g if valid (spec.md §6).
func DumpPolyhedron(w io.Writer, p *polyhedron.Polyhedron) error {
	tw := newTokenWriter(w)
	tw.field("status")
	st := p.Status()
	for _, b := range statusBitNames {
		tw.field(flagToken(b.name, st.Has(b.bit)))
	}
	if err := tw.endLine(); err != nil {
		return err
	}
	tw.fields("dimension", itoa(p.SpaceDimension()), "topology", p.Topology().String())
	if err := tw.endLine(); err != nil {
		return err
	}
	if err := DumpConstraintSystem(w, p.Constraints()); err != nil {
		return err
	}
	if err := DumpGeneratorSystem(w, p.Generators()); err != nil {
		return err
	}
	if st.Has(polyhedron.SatCUpToDate) && p.SatC() != nil {
		if err := DumpSaturation(w, p.SatC()); err != nil {
			return err
		}
	}
	if st.Has(polyhedron.SatGUpToDate) && p.SatG() != nil {
		if err := DumpSaturation(w, p.SatG()); err != nil {
			return err
		}
	}
	return nil
}

// LoadPolyhedron parses a dump written by DumpPolyhedron, rebuilding a
// Polyhedron under cfg (nil uses config.New()'s defaults).
func LoadPolyhedron(r io.Reader, cfg *config.Config) (*polyhedron.Polyhedron, error) {
	s := newTokenScanner(r)
	if err := s.expect("status"); err != nil {
		return nil, err
	}
	var st polyhedron.Status
	for range statusBitNames {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		if len(tok) >= 2 && tok[0] == '+' {
			for _, b := range statusBitNames {
				if b.name == tok[1:] {
					st = st.With(b.bit)
				}
			}
		}
	}
	if err := s.expect("dimension"); err != nil {
		return nil, err
	}
	spaceDim, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	if err := s.expect("topology"); err != nil {
		return nil, err
	}
	topTok, err := s.next()
	if err != nil {
		return nil, err
	}
	topology, err := parseTopology(topTok)
	if err != nil {
		return nil, err
	}

	cs, err := loadConstraintSystem(s)
	if err != nil {
		return nil, err
	}
	gs, err := loadGeneratorSystem(s)
	if err != nil {
		return nil, err
	}

	var satC, satG *saturation.Matrix
	if st.Has(polyhedron.SatCUpToDate) {
		satC, err = loadSaturation(s)
		if err != nil {
			return nil, err
		}
	}
	if st.Has(polyhedron.SatGUpToDate) {
		satG, err = loadSaturation(s)
		if err != nil {
			return nil, err
		}
	}
	return polyhedron.FromComponents(cfg, spaceDim, topology, st, cs, gs, satC, satG), nil
}
