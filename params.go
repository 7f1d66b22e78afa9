// Package yashe implements the core of a YASHE somewhat-homomorphic
// encryption scheme: key generation, encryption, decryption, and
// homomorphic evaluation over the cyclotomic ring R_q = Z_q[x]/Φ_m(x).
package yashe

import (
	"math/big"

	"github.com/tuneinsight/yashe/numtheory"
	"github.com/tuneinsight/yashe/ring"
	"github.com/tuneinsight/yashe/yasheerrors"
)

// Parameters is the immutable, validated configuration of a scheme
// instance. It owns the plaintext modulus t, ciphertext modulus q,
// cyclotomic index m, error standard deviation σ, and radix w, together
// with every value and reduction context derived from them — Δ, Q, ℓ, Φ,
// and the RingQ/RingBigQ/RingT moduli. Built once by NewParameters and
// shared read-only by every component a Scheme owns.
type Parameters struct {
	t     *big.Int
	q     *big.Int
	m     int
	n     int
	sigma float64
	w     *big.Int

	delta *big.Int
	bigQ  *big.Int
	l     int
	phi   []*big.Int

	ringQ    *ring.Modulus
	ringBigQ *ring.Modulus
	ringT    *ring.Modulus
}

// NewParameters validates (t, q, m, σ, w) against the scheme's
// preconditions, derives Δ, Q, ℓ, Φ and the three reduction contexts, and
// rejects parameter sets that fail the depth-1 noise bound check.
func NewParameters(t, q *big.Int, m int, sigma float64, w *big.Int) (*Parameters, error) {
	switch {
	case t == nil || t.Cmp(big.NewInt(2)) < 0:
		return nil, yasheerrors.New(yasheerrors.InvalidParameter, "t must be >= 2")
	case q == nil || q.Cmp(t) <= 0:
		return nil, yasheerrors.New(yasheerrors.InvalidParameter, "q must be > t")
	case m < 3:
		return nil, yasheerrors.New(yasheerrors.InvalidParameter, "m must be >= 3")
	case w == nil || w.Cmp(big.NewInt(2)) < 0:
		return nil, yasheerrors.New(yasheerrors.InvalidParameter, "w must be >= 2")
	case sigma <= 0:
		return nil, yasheerrors.New(yasheerrors.InvalidParameter, "sigma must be > 0")
	}

	n := numtheory.EulerTotient(m)
	phi := numtheory.CyclotomicPoly(m)

	delta := new(big.Int).Div(q, t)
	bigQ := new(big.Int).Div(new(big.Int).Mul(q, q), t)
	l := decompositionLength(q, w)

	p := &Parameters{
		t:     new(big.Int).Set(t),
		q:     new(big.Int).Set(q),
		m:     m,
		n:     n,
		sigma: sigma,
		w:     new(big.Int).Set(w),
		delta: delta,
		bigQ:  bigQ,
		l:     l,
		phi:   phi,

		ringQ:    ring.NewModulus(q, phi),
		ringBigQ: ring.NewModulus(bigQ, phi),
		ringT:    ring.NewModulus(t, phi),
	}

	if err := p.validateNoiseBound(); err != nil {
		return nil, err
	}
	return p, nil
}

// decompositionLength returns ℓ = ⌊log_w q⌋ + 1, the number of base-w
// digits needed to represent any value in [0, q).
func decompositionLength(q, w *big.Int) int {
	l := 0
	x := new(big.Int).Set(q)
	for x.Sign() > 0 {
		x.Div(x, w)
		l++
	}
	if l == 0 {
		l = 1
	}
	return l
}

// validateNoiseBound rejects parameters where the estimated depth-1
// multiplicative noise, on the order of σ·w·ℓ·n, would exceed q/(2t) — past
// that point decryption's rounding step can no longer recover the correct
// plaintext. This is a coarse heuristic, not a tight security analysis.
func (p *Parameters) validateNoiseBound() error {
	wFloat, _ := new(big.Float).SetInt(p.w).Float64()
	estimate := p.sigma * wFloat * float64(p.l) * float64(p.n)

	thresh := new(big.Int).Div(p.q, new(big.Int).Mul(big.NewInt(2), p.t))
	threshFloat, _ := new(big.Float).SetInt(thresh).Float64()

	if estimate > threshFloat {
		return yasheerrors.New(yasheerrors.InvalidParameter,
			"parameters fail the depth-1 noise bound check (σ·w·ℓ·n exceeds q/2t)")
	}
	return nil
}

// T returns the plaintext modulus.
func (p *Parameters) T() *big.Int { return new(big.Int).Set(p.t) }

// Q returns the ciphertext modulus.
func (p *Parameters) Q() *big.Int { return new(big.Int).Set(p.q) }

// M returns the cyclotomic index.
func (p *Parameters) M() int { return p.m }

// N returns the ring degree φ(m).
func (p *Parameters) N() int { return p.n }

// Sigma returns the error distribution's standard deviation.
func (p *Parameters) Sigma() float64 { return p.sigma }

// W returns the decomposition radix.
func (p *Parameters) W() *big.Int { return new(big.Int).Set(p.w) }

// Delta returns ⌊q/t⌋, the plaintext scaling factor.
func (p *Parameters) Delta() *big.Int { return new(big.Int).Set(p.delta) }

// BigQ returns Q = ⌊q²/t⌋, the intermediate modulus used by RoundMultiply.
func (p *Parameters) BigQ() *big.Int { return new(big.Int).Set(p.bigQ) }

// L returns ℓ, the radix decomposition length.
func (p *Parameters) L() int { return p.l }

// Phi returns Φ_m(x)'s coefficients below its implicit leading term.
func (p *Parameters) Phi() []*big.Int {
	out := make([]*big.Int, len(p.phi))
	for i, c := range p.phi {
		out[i] = new(big.Int).Set(c)
	}
	return out
}

// RingQ returns the reduction context for R_q.
func (p *Parameters) RingQ() *ring.Modulus { return p.ringQ }

// RingBigQ returns the reduction context for R_Q.
func (p *Parameters) RingBigQ() *ring.Modulus { return p.ringBigQ }

// RingT returns the reduction context for Z_t[x]/Φ(x). Batching and
// factorisation do not use it; they work on Φ mod t through numtheory.
func (p *Parameters) RingT() *ring.Modulus { return p.ringT }
