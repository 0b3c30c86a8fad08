// Package ascii implements the stable token (de)serialisation format of
// spec.md §6: a whitespace-separated, line-oriented dump of a Row,
// LinearSystem, ConstraintSystem/GeneratorSystem, SaturationMatrix, or
// whole Polyhedron, plus the ascend/descend pretty-printer used for
// debugging output (print.go).
//
// Every dump round-trips through the corresponding load: dumping x then
// loading the result reconstructs a Row/System/Polyhedron equal to x
// (spec.md §8's ascii-round-trip property).
package ascii

import (
	"github.com/katalvlaran/ppl/bigint"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
)

// writeRow emits one "size <n> <c0> ... <c_{n-1}> f <flags>" record.
func writeRow(w *tokenWriter, r *row.Row) error {
	w.fields("size", itoa(r.Length()))
	for i := 0; i < r.Length(); i++ {
		w.field(r.At(i).String())
	}
	w.field("f")
	w.fields(flagToken("RPI_V", r.Validity().GeneratorKindValid))
	w.fields(flagToken("RPI", r.Kind() == rowkind.RayOrPointOrInequality))
	w.fields(flagToken("NNC_V", true)) // this implementation models no invalid-topology state
	w.fields(flagToken("NNC", r.Topology() == rowkind.NNC))
	return w.endLine()
}

// readRow parses one row record written by writeRow.
func readRow(s *tokenScanner) (*row.Row, error) {
	if err := s.expect("size"); err != nil {
		return nil, err
	}
	n, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	coeffs := make([]*bigint.Int, n)
	for i := 0; i < n; i++ {
		tok, err := s.next()
		if err != nil {
			return nil, err
		}
		v, err := parseBigInt(tok)
		if err != nil {
			return nil, err
		}
		coeffs[i] = v
	}
	if err := s.expect("f"); err != nil {
		return nil, err
	}
	flags := make(map[string]bool, 4)
	for i := 0; i < 4; i++ {
		name, val, err := readFlagToken(s)
		if err != nil {
			return nil, err
		}
		flags[name] = val
	}

	kind := rowkind.LineOrEquality
	if flags["RPI"] {
		kind = rowkind.RayOrPointOrInequality
	}
	topology := rowkind.Closed
	if flags["NNC"] {
		topology = rowkind.NNC
	}
	r := row.New(coeffs, kind, topology)
	r.SetValidity(rowkind.Validity{
		ConstraintKindValid: flags["RPI_V"],
		GeneratorKindValid:  flags["RPI_V"],
	})
	return r, nil
}

func flagToken(name string, set bool) string {
	if set {
		return "+" + name
	}
	return "-" + name
}

func readFlagToken(s *tokenScanner) (name string, val bool, err error) {
	tok, err := s.next()
	if err != nil {
		return "", false, err
	}
	if len(tok) < 2 || (tok[0] != '+' && tok[0] != '-') {
		return "", false, ErrUnknownFlag
	}
	return tok[1:], tok[0] == '+', nil
}
