// Package ring implements arithmetic in the quotient ring Z_q[x]/Φ(x) (and,
// for the intermediate products of homomorphic multiplication, the wider
// ring Z_Q[x]/Φ(x)) on top of math/big. Every modulus a caller wants to
// compute against is carried explicitly as a *Modulus argument — there is no
// ambient "current modulus" state to push or pop.
package ring

import "math/big"

// Poly is a polynomial of degree < N, represented as its coefficients from
// the constant term up. A Poly returned from a Modulus operation always has
// exactly N entries and every coefficient canonicalised into [0, modulus).
type Poly []*big.Int

// NewPoly allocates a zero polynomial of degree < n.
func NewPoly(n int) Poly {
	p := make(Poly, n)
	for i := range p {
		p[i] = new(big.Int)
	}
	return p
}

// FromInt64s builds a Poly from plain int64 coefficients, zero-padded to n.
// Negative coefficients are left signed; callers that need a canonical
// representative should pass the result through Modulus.Reduce.
func FromInt64s(n int, coeffs []int64) Poly {
	if len(coeffs) > n {
		panic("ring: coefficient vector longer than ring degree")
	}
	p := NewPoly(n)
	for i, c := range coeffs {
		p[i].SetInt64(c)
	}
	return p
}

// Degree returns the index of the highest non-zero coefficient, or -1 for
// the zero polynomial.
func (p Poly) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i].Sign() != 0 {
			return i
		}
	}
	return -1
}

// Copy returns a deep copy of p.
func (p Poly) Copy() Poly {
	c := make(Poly, len(p))
	for i, v := range p {
		c[i] = new(big.Int).Set(v)
	}
	return c
}

// CopyFrom overwrites p in place with the coefficients of q. Both must have
// the same length.
func (p Poly) CopyFrom(q Poly) {
	if len(p) != len(q) {
		panic("ring: CopyFrom length mismatch")
	}
	for i := range p {
		p[i].Set(q[i])
	}
}

// Equal reports whether p and q hold the same coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i].Cmp(q[i]) != 0 {
			return false
		}
	}
	return true
}

// IsZero reports whether every coefficient of p is zero.
func (p Poly) IsZero() bool {
	for _, c := range p {
		if c.Sign() != 0 {
			return false
		}
	}
	return true
}
