// Package batch implements CRT-based plaintext packing: encoding a vector
// of scalars in Z_t as a single ring element via the factorisation of
// Φ_m(x) over F_t, and decoding it back out. Modelled on the teacher's
// Encoder interface shape (bgv/encoder.go: NewEncoder(params) Encoder,
// paired Encode/Decode methods), with the CRT-reconstruction math of
// numtheory substituted for the teacher's Galois-automorphism slot map
// (which only exists for power-of-two cyclotomic index).
package batch

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/yashe/numtheory"
	"github.com/tuneinsight/yashe/ring"
	"github.com/tuneinsight/yashe/yasheerrors"
)

// Encoder packs and unpacks plaintext vectors into the slots defined by the
// irreducible factors of Φ(x) modulo t.
type Encoder struct {
	n       int
	t       *big.Int
	phiLow  []*big.Int
	factors []numtheory.Factor
}

// NewEncoder builds an Encoder for a ring of degree n, reduction polynomial
// phiLow (Φ's coefficients below its implicit leading term) and plaintext
// modulus t. It fails with InvalidParameter if Φ does not factor cleanly
// modulo t (t must be an odd prime with Φ squarefree mod t).
func NewEncoder(n int, t *big.Int, phiLow []*big.Int) (*Encoder, error) {
	factors, err := numtheory.FactorCyclotomic(phiLow, t)
	if err != nil {
		return nil, yasheerrors.Wrap(yasheerrors.InvalidParameter, "batch: cannot factor Φ modulo t", err)
	}
	return &Encoder{n: n, t: t, phiLow: phiLow, factors: factors}, nil
}

// SlotCount returns the number of independent plaintext slots (the number
// of irreducible factors of Φ mod t).
func (e *Encoder) SlotCount() int {
	return len(e.factors)
}

// Encode packs values (length <= SlotCount()) into a single ring element,
// zero-filling any unused slots.
func (e *Encoder) Encode(values []*big.Int) (ring.Poly, error) {
	if len(values) > e.SlotCount() {
		return nil, yasheerrors.New(yasheerrors.DimensionMismatch,
			fmt.Sprintf("batch: %d values exceed %d available slots", len(values), e.SlotCount()))
	}

	coeffs, err := numtheory.CRT(e.factors, values, e.phiLow, e.t)
	if err != nil {
		return nil, yasheerrors.Wrap(yasheerrors.InvalidParameter, "batch: CRT packing failed", err)
	}

	p := ring.NewPoly(e.n)
	for i, c := range coeffs {
		p[i].Set(c)
	}
	return p, nil
}

// Decode unpacks a ring element's plaintext slots back into a vector of
// length SlotCount().
func (e *Encoder) Decode(p ring.Poly) []*big.Int {
	plain := make([]*big.Int, len(p))
	for i, c := range p {
		plain[i] = new(big.Int).Set(c)
	}

	out := make([]*big.Int, e.SlotCount())
	for i, f := range e.factors {
		out[i] = numtheory.ReduceConstant(plain, f, e.t)
	}
	return out
}
