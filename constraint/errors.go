// Package constraint: sentinel error set.
package constraint

import "errors"

var (
	// ErrStrictInClosed indicates a strict inequality was built or
	// inserted against a closed (necessarily-closed) topology.
	ErrStrictInClosed = errors.New("constraint: strict inequality not allowed in closed topology")

	// ErrDimensionMismatch indicates a LinearExpression or Constraint
	// was built with, or inserted against, an incompatible variable
	// count.
	ErrDimensionMismatch = errors.New("constraint: dimension mismatch")

	// ErrNegativeDimension indicates NewLinearExpression/New was asked
	// for a negative variable count.
	ErrNegativeDimension = errors.New("constraint: negative dimension")

	// ErrEmptyExpression indicates an operation required a
	// LinearExpression with at least one variable coefficient but
	// received one with none.
	ErrEmptyExpression = errors.New("constraint: empty linear expression")
)
