package polyhedron

// Status is the small set of bits spec.md §3 attaches to a Polyhedron,
// recording which of its two representations (and their saturation
// matrices) are trustworthy right now. Bits are set only in the
// combinations the orchestration operations establish; callers never
// construct a Status directly.
type Status uint16

const (
	// ZeroDimUniv marks the polyhedron as the universe of a 0-dim space,
	// the one case representable without any rows at all.
	ZeroDimUniv Status = 1 << iota
	// Empty marks the polyhedron as known empty.
	Empty
	// CUpToDate: the constraint system faithfully describes the
	// current polyhedron (possibly with redundant rows or pending
	// rows).
	CUpToDate
	// GUpToDate: the generator system faithfully describes the current
	// polyhedron.
	GUpToDate
	// CMinimized implies CUpToDate: additionally free of redundant
	// rows, sorted, with no pending rows.
	CMinimized
	// GMinimized implies GUpToDate: additionally free of redundant
	// rows, sorted, with no pending rows.
	GMinimized
	// SatCUpToDate: sat_c faithfully relates the current two systems.
	SatCUpToDate
	// SatGUpToDate: sat_g faithfully relates the current two systems.
	SatGUpToDate
)

// Has reports whether every bit of other is set in s.
func (s Status) Has(other Status) bool { return s&other == other }

// With returns s with other's bits added.
func (s Status) With(other Status) Status { return s | other }

// Without returns s with other's bits cleared.
func (s Status) Without(other Status) Status { return s &^ other }
