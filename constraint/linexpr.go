package constraint

import "github.com/katalvlaran/ppl/bigint"

// Variable names one coordinate of the vector space by its zero-based
// index. Variable(0) is the first space dimension.
type Variable int

// LinearExpression is a·x + b over the Variables 0..NumVars()-1, the
// building block Constraint, Generator and the affine image/pre-image
// operators are expressed in terms of.
type LinearExpression struct {
	coeffs        []*bigint.Int // coeffs[v] is the coefficient of Variable(v)
	inhomogeneous *bigint.Int
}

// NewLinearExpression returns the zero expression over numVars variables.
func NewLinearExpression(numVars int) (*LinearExpression, error) {
	if numVars < 0 {
		return nil, ErrNegativeDimension
	}
	cs := make([]*bigint.Int, numVars)
	for i := range cs {
		cs[i] = bigint.Zero()
	}
	return &LinearExpression{coeffs: cs, inhomogeneous: bigint.Zero()}, nil
}

// NumVars returns the number of Variables the expression is defined over.
func (e *LinearExpression) NumVars() int { return len(e.coeffs) }

// SetCoefficient sets the coefficient of v to c.
func (e *LinearExpression) SetCoefficient(v Variable, c *bigint.Int) error {
	if int(v) < 0 || int(v) >= len(e.coeffs) {
		return ErrDimensionMismatch
	}
	e.coeffs[v] = c
	return nil
}

// Coefficient returns the coefficient of v.
func (e *LinearExpression) Coefficient(v Variable) *bigint.Int {
	return e.coeffs[v]
}

// SetInhomogeneousTerm sets the constant term b.
func (e *LinearExpression) SetInhomogeneousTerm(b *bigint.Int) {
	e.inhomogeneous = b
}

// InhomogeneousTerm returns the constant term b.
func (e *LinearExpression) InhomogeneousTerm() *bigint.Int {
	return e.inhomogeneous
}

// Clone returns a deep copy of e.
func (e *LinearExpression) Clone() *LinearExpression {
	cs := make([]*bigint.Int, len(e.coeffs))
	for i, c := range e.coeffs {
		cs[i] = c.Clone()
	}
	return &LinearExpression{coeffs: cs, inhomogeneous: e.inhomogeneous.Clone()}
}

// AllZero reports whether every variable coefficient is zero (the
// expression is a constant).
func (e *LinearExpression) AllZero() bool {
	for _, c := range e.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}
