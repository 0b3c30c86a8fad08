package ascii

import (
	"io"

	"github.com/katalvlaran/ppl/saturation"
)

// DumpSaturation writes m as a header ("sat <orientation> <rows> x
// <cols>") followed by one line per row, each the keyword "row" and then
// a space-separated run of "1"/"0" bits.
func DumpSaturation(w io.Writer, m *saturation.Matrix) error {
	tw := newTokenWriter(w)
	tw.fields("sat", orientationToken(m.Orientation()), itoa(m.NumRows()), "x", itoa(int(m.NumCols())))
	if err := tw.endLine(); err != nil {
		return err
	}
	for i := 0; i < m.NumRows(); i++ {
		tw.field("row")
		for j := uint(0); j < m.NumCols(); j++ {
			if m.Test(i, int(j)) {
				tw.field("1")
			} else {
				tw.field("0")
			}
		}
		if err := tw.endLine(); err != nil {
			return err
		}
	}
	return nil
}

// LoadSaturation parses a dump written by DumpSaturation.
func LoadSaturation(r io.Reader) (*saturation.Matrix, error) {
	return loadSaturation(newTokenScanner(r))
}

func loadSaturation(s *tokenScanner) (*saturation.Matrix, error) {
	if err := s.expect("sat"); err != nil {
		return nil, err
	}
	orientTok, err := s.next()
	if err != nil {
		return nil, err
	}
	orientation, err := parseOrientation(orientTok)
	if err != nil {
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
	m := saturation.New(numRows, uint(numCols), orientation)
	for i := 0; i < numRows; i++ {
		if err := s.expect("row"); err != nil {
			return nil, err
		}
		for j := 0; j < numCols; j++ {
			tok, err := s.next()
			if err != nil {
				return nil, err
			}
			switch tok {
			case "1":
				if err := m.Set(i, j); err != nil {
					return nil, err
				}
			case "0":
				// already clear
			default:
				return nil, ErrMalformedInt
			}
		}
	}
	return m, nil
}

func orientationToken(o saturation.Orientation) string {
	if o == saturation.SatG {
		return "sat_g"
	}
	return "sat_c"
}

func parseOrientation(tok string) (saturation.Orientation, error) {
	switch tok {
	case "sat_c":
		return saturation.SatC, nil
	case "sat_g":
		return saturation.SatG, nil
	default:
		return 0, ErrUnexpectedToken
	}
}
