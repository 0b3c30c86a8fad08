// Package saturation implements SaturationMatrix: a bit-matrix whose
// (i, j) bit is 1 iff row i of one system does not saturate row j of the
// other (spec.md §3/§4.3). Two orientations exist — sat_c (rows indexed
// by generators, bits over constraints) and sat_g (rows indexed by
// constraints, bits over generators); they are transposes of one
// another, and at most one need be up to date at any time.
package saturation

import "github.com/katalvlaran/ppl/bitset"

// Orientation names which system's rows index the SaturationMatrix.
type Orientation uint8

const (
	// SatC: rows indexed by generators, bits over constraints.
	SatC Orientation = iota
	// SatG: rows indexed by constraints, bits over generators.
	SatG
)

// Opposite returns the other orientation.
func (o Orientation) Opposite() Orientation {
	if o == SatC {
		return SatG
	}
	return SatC
}

// Matrix is a SaturationMatrix: one bitset.Set per row of the indexing
// system, each bitset.Set holding numCols bits (one per row of the other
// system).
type Matrix struct {
	rows        []*bitset.Set
	numCols     uint
	orientation Orientation
}

// New returns a Matrix of numRows rows, each with numCols bits, all
// clear.
func New(numRows int, numCols uint, orientation Orientation) *Matrix {
	rows := make([]*bitset.Set, numRows)
	for i := range rows {
		rows[i] = bitset.New(numCols)
	}
	return &Matrix{rows: rows, numCols: numCols, orientation: orientation}
}

// NumRows returns the row count.
func (m *Matrix) NumRows() int { return len(m.rows) }

// NumCols returns the bit count per row.
func (m *Matrix) NumCols() uint { return m.numCols }

// Orientation returns whether m is sat_c or sat_g.
func (m *Matrix) Orientation() Orientation { return m.orientation }

// Row returns the bitset for row i. The returned pointer aliases
// internal storage.
func (m *Matrix) Row(i int) *bitset.Set { return m.rows[i] }

// Set sets bit (i, j): row i does not saturate column j.
func (m *Matrix) Set(i, j int) error {
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfRange
	}
	m.rows[i].SetBit(uint(j))
	return nil
}

// Clear clears bit (i, j): row i saturates column j.
func (m *Matrix) Clear(i, j int) error {
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfRange
	}
	m.rows[i].ClearBit(uint(j))
	return nil
}

// Test reports bit (i, j).
func (m *Matrix) Test(i, j int) bool {
	return m.rows[i].Test(uint(j))
}

// ClearRow clears every bit of row i.
func (m *Matrix) ClearRow(i int) error {
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfRange
	}
	m.rows[i].ClearAll()
	return nil
}

// CountRow returns the number of set bits in row i.
func (m *Matrix) CountRow(i int) uint { return m.rows[i].Count() }

// SwapRows exchanges rows i and j.
func (m *Matrix) SwapRows(i, j int) error {
	if i < 0 || i >= len(m.rows) || j < 0 || j >= len(m.rows) {
		return ErrIndexOutOfRange
	}
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
	return nil
}

// AppendRow appends a fresh all-clear row, growing NumRows by one, and
// returns its index. Used by Conversion when a pairwise combination
// produces a new row in the dual system.
func (m *Matrix) AppendRow() int {
	m.rows = append(m.rows, bitset.New(m.numCols))
	return len(m.rows) - 1
}

// RemoveRow deletes row i, shifting subsequent rows down by one. Used by
// Conversion to discard a D+/D- row once it has been replaced by its
// pairwise combinations, and by Simplify to compact away a redundant
// row.
func (m *Matrix) RemoveRow(i int) error {
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfRange
	}
	m.rows = append(m.rows[:i], m.rows[i+1:]...)
	return nil
}

// AddColumn appends one clear bit to every row, growing NumCols by one.
// Used when the system whose rows index the columns gains a row (e.g.
// Conversion incorporating a new constraint into sat_c) and every existing
// saturation row needs room for it.
func (m *Matrix) AddColumn() {
	m.numCols++
	for i, r := range m.rows {
		grown := bitset.New(m.numCols)
		for b := uint(0); b+1 < m.numCols; b++ {
			if r.Test(b) {
				grown.SetBit(b)
			}
		}
		m.rows[i] = grown
	}
}

// Transpose returns the matrix in the opposite orientation: bit (j, i)
// of the result equals bit (i, j) of m.
func (m *Matrix) Transpose() *Matrix {
	out := New(int(m.numCols), uint(len(m.rows)), m.orientation.Opposite())
	for i := 0; i < len(m.rows); i++ {
		for j := uint(0); j < m.numCols; j++ {
			if m.rows[i].Test(j) {
				out.rows[j].SetBit(uint(i))
			}
		}
	}
	return out
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{numCols: m.numCols, orientation: m.orientation}
	out.rows = make([]*bitset.Set, len(m.rows))
	for i, r := range m.rows {
		out.rows[i] = r.Clone()
	}
	return out
}
