package ascii

import (
	"io"

	"github.com/katalvlaran/ppl/linsys"
	"github.com/katalvlaran/ppl/row"
	"github.com/katalvlaran/ppl/rowkind"
)

// DumpSystem writes sys's matrix header ("matrix <rows> x <cols>"),
// system header ("topology <CLOSED|NNC> pending <k>"), then one row
// record per row, in the order spec.md §6 describes.
func DumpSystem(w io.Writer, sys *linsys.System) error {
	tw := newTokenWriter(w)
	tw.fields("matrix", itoa(sys.NumRows()), "x", itoa(sys.NumColumns()))
	if err := tw.endLine(); err != nil {
		return err
	}
	tw.fields("topology", sys.Topology().String(), "pending", itoa(sys.PendingStart()))
	if err := tw.endLine(); err != nil {
		return err
	}
	for i := 0; i < sys.NumRows(); i++ {
		if err := writeRow(tw, sys.Row(i)); err != nil {
			return err
		}
	}
	return nil
}

// LoadSystem parses a dump written by DumpSystem into a fresh
// linsys.System.
func LoadSystem(r io.Reader) (*linsys.System, error) {
	return loadSystem(newTokenScanner(r))
}

// loadSystem is LoadSystem's scanner-level core, shared with callers
// (LoadConstraintSystem, LoadGeneratorSystem, LoadPolyhedron) that must
// keep reading further records off the same token stream: wrapping the
// same io.Reader in a second bufio.Scanner would lose whatever the first
// one had already buffered ahead.
func loadSystem(s *tokenScanner) (*linsys.System, error) {
	if err := s.expect("matrix"); err != nil {
		return nil, err
	}
	numRows, err := s.nextInt()
	if err != nil {
		return nil, err
	}
	if err := s.expect("x"); err != nil {
		return nil, err
	}
	numCols, err := s.nextInt()
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
	if err := s.expect("pending"); err != nil {
		return nil, err
	}
	pending, err := s.nextInt()
	if err != nil {
		return nil, err
	}

	rows := make([]*row.Row, numRows)
	for i := 0; i < numRows; i++ {
		r, err := readRow(s)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}
	return linsys.Restore(numCols, topology, pending, rows), nil
}

func parseTopology(tok string) (rowkind.Topology, error) {
	switch tok {
	case "NNC":
		return rowkind.NNC, nil
	case "CLOSED":
		return rowkind.Closed, nil
	default:
		return 0, ErrTopologyMismatch
	}
}
