package yashe

import "github.com/tuneinsight/yashe/ring"

// SecretKey is the ring element f ∈ R_q with f ≡ 1 (mod t), invertible
// modulo (q, Φ). Owned by the caller that generated it — a Scheme instance
// never retains the secret key it produced.
type SecretKey struct {
	F ring.Poly
}

// PublicKey is the ring element h = t·g·f^{-1} ∈ R_q derived from a secret
// key at KeyGen time.
type PublicKey struct {
	H ring.Poly
}

// EvalKey is the ordered sequence of ℓ ring elements used for key
// switching (relinearisation) after a homomorphic multiply. cache holds a
// Multiplier wrapping each limb against the scheme's RingQ, built once at
// KeyGen time and reused by every subsequent DotEval call — the "wrap
// once, multiply many" shape carried over from the evaluation key's role
// in the teacher's gadget-product evaluator.
type EvalKey struct {
	Limbs []ring.Poly

	cache []ring.Multiplier
}

func newEvalKey(limbs []ring.Poly, mod *ring.Modulus) *EvalKey {
	cache := make([]ring.Multiplier, len(limbs))
	for i, limb := range limbs {
		cache[i] = ring.WrapMultiplier(mod, limb)
	}
	return &EvalKey{Limbs: limbs, cache: cache}
}
