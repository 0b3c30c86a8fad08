// Package relation implements PolyConRelation and PolyGenRelation: the
// bit-flag query results RelationWith returns to describe how a single
// constraint or generator relates to a Polyhedron (spec.md §4.6),
// grounded on the flag vocabulary of the Parma Polyhedra Library's
// Poly_Con_Relation/Poly_Gen_Relation.
package relation

import "strings"

// ConFlags is a set of PolyConRelation bits: facts a single constraint
// can hold with respect to a polyhedron.
type ConFlags uint8

const (
	// ConNothing asserts nothing.
	ConNothing ConFlags = 0
	// ConIsDisjoint: the polyhedron and the constraint's solutions are
	// disjoint, i.e. the constraint holds nowhere on it.
	ConIsDisjoint ConFlags = 1 << 0
	// ConStrictlyIntersects: both the constraint and its negation have
	// solutions in the polyhedron.
	ConStrictlyIntersects ConFlags = 1 << 1
	// ConIsIncluded: every point of the polyhedron satisfies the
	// constraint (non-strictly).
	ConIsIncluded ConFlags = 1 << 2
	// ConSaturates: every point of the polyhedron satisfies the
	// constraint's associated equality (the constraint's linear form,
	// inhomogeneous term included, is zero there).
	ConSaturates ConFlags = 1 << 3
)

// Implies reports whether f has every bit set that other has.
func (f ConFlags) Implies(other ConFlags) bool {
	return f&other == other
}

// Union returns f with other's bits added.
func (f ConFlags) Union(other ConFlags) ConFlags {
	return f | other
}

// String renders f as an ampersand-joined list of flag names, matching
// the PPL ascii_dump format.
func (f ConFlags) String() string {
	if f == ConNothing {
		return "NOTHING"
	}
	names := []struct {
		bit  ConFlags
		name string
	}{
		{ConIsDisjoint, "IS_DISJOINT"},
		{ConStrictlyIntersects, "STRICTLY_INTERSECTS"},
		{ConIsIncluded, "IS_INCLUDED"},
		{ConSaturates, "SATURATES"},
	}
	var parts []string
	for _, n := range names {
		if f.Implies(n.bit) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, " & ")
}

// GenFlags is a set of PolyGenRelation bits: facts a single generator
// can hold with respect to a polyhedron's constraint system.
type GenFlags uint8

const (
	// GenNothing asserts nothing.
	GenNothing GenFlags = 0
	// GenSubsumes: the generator satisfies every constraint of the
	// system it is being tested against.
	GenSubsumes GenFlags = 1
)

// Implies reports whether f has every bit set that other has.
func (f GenFlags) Implies(other GenFlags) bool {
	return f&other == other
}

// Union returns f with other's bits added.
func (f GenFlags) Union(other GenFlags) GenFlags {
	return f | other
}

// String renders f as an ampersand-joined list of flag names.
func (f GenFlags) String() string {
	if f == GenNothing {
		return "NOTHING"
	}
	if f.Implies(GenSubsumes) {
		return "SUBSUMES"
	}
	return "NOTHING"
}
