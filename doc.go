// Package ppl is an exact-arithmetic convex polyhedra library: the
// double-description method over arbitrary-precision rationals.
//
// A Polyhedron keeps a constraint system and a generator system as two
// mutually dual views of the same convex set, lazily converted between
// each other (the Chernikova conversion, package convert) and kept
// minimal on demand (package simplify). Both closed and
// not-necessarily-closed (NNC) topologies are supported, the latter via
// an epsilon column encoding strict inequalities and closure points.
//
// Subpackages:
//
//	bigint/      — arbitrary-precision integer arithmetic (math/big backed)
//	rowkind/     — the Topology/Kind/Validity flag vocabulary shared by rows
//	bitset/      — fixed-width bit vectors backing saturation matrices
//	row/         — the shared row representation (coefficients + flags)
//	linsys/      — growable row systems with a pending-row cursor
//	constraint/  — ConstraintSystem: the row system as inequalities/equalities
//	generator/   — GeneratorSystem: the row system as points/rays/lines
//	saturation/  — the bit matrix relating constraints to generators
//	relation/    — PolyCon/PolyGenRelation flag sets (Implies, Union)
//	config/      — functional-options engine configuration
//	polyhedron/  — the public Polyhedron type and its operations
//	ascii/       — spec.md §6 token (de)serialisation and pretty-printing
//
// See DESIGN.md for the grounding of each package against its source
// material, and SPEC_FULL.md for the full operational specification.
package ppl
