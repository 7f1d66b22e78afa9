// Package radix implements the W-ary (radix) gadget decomposition used by
// key switching: decomposing an integer or ring element into ℓ limbs base
// w, and its dual, scaling a ring element by successive powers of w. This
// is the single-basis special case of the teacher's gadget-ciphertext
// machinery (core/rlwe/gadgetciphertext.go, evaluator_gadget_product.go),
// which additionally decomposes across an RNS basis; this scheme has only
// one coefficient modulus per ring, so only the power-of-w axis remains.
package radix

import (
	"math/big"

	"github.com/tuneinsight/yashe/ring"
)

// Codec holds the fixed radix w and decomposition length ℓ for a scheme
// instance, along with the Modulus that PowersOfW reduces into.
type Codec struct {
	W   *big.Int
	L   int
	mod *ring.Modulus
}

// NewCodec builds a Codec for radix w, decomposition length l, reducing
// PowersOfW results under mod.
func NewCodec(w *big.Int, l int, mod *ring.Modulus) *Codec {
	return &Codec{W: w, L: l, mod: mod}
}

// DecomposeInt returns (x_0, ..., x_{ℓ-1}) with x = Σ x_i·w^i and every
// x_i in [0, w). For x < w^ℓ the decomposition is unique.
func (c *Codec) DecomposeInt(x *big.Int) []*big.Int {
	out := make([]*big.Int, c.L)
	rem := new(big.Int).Set(x)
	for i := 0; i < c.L; i++ {
		q, r := new(big.Int), new(big.Int)
		q.DivMod(rem, c.W, r)
		out[i] = r
		rem = q
	}
	return out
}

// DecomposePoly decomposes p coefficient-wise into ℓ ring elements, each
// with coefficients in [0, w): (p_0, ..., p_{ℓ-1}) such that
// Σ p_i·w^i ≡ p (mod q).
func (c *Codec) DecomposePoly(p ring.Poly) []ring.Poly {
	limbs := make([]ring.Poly, c.L)
	for i := range limbs {
		limbs[i] = ring.NewPoly(len(p))
	}
	for j, coeff := range p {
		parts := c.DecomposeInt(coeff)
		for i := 0; i < c.L; i++ {
			limbs[i][j] = parts[i]
		}
	}
	return limbs
}

// PowersOfW returns (p, p·w, p·w^2, ..., p·w^{ℓ-1}), each reduced under the
// Codec's Modulus. Dotted against a DecomposePoly output, this realises the
// identity Σ DecomposePoly(p')_i · PowersOfW(q')_i ≡ p'·q' (mod q, Φ).
func (c *Codec) PowersOfW(p ring.Poly) []ring.Poly {
	out := make([]ring.Poly, c.L)
	cur := c.mod.Reduce(p)
	out[0] = cur
	for i := 1; i < c.L; i++ {
		cur = c.mod.MulScalar(cur, c.W)
		out[i] = cur
	}
	return out
}
