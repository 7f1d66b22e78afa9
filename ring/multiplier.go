package ring

// Multiplier wraps a ring element against a fixed Modulus so that it can be
// multiplied against many right-hand operands without re-deriving its
// owning context each time. This is the "wrap once, multiply many"
// optimisation used for the evaluation key: each limb of the evaluation key
// is wrapped exactly once at KeyGen time and then dotted against a fresh
// radix-decomposed ciphertext on every key switch.
//
// In an NTT-accelerated ring, wrapping would additionally cache a forward
// transform of val; since this ring is big-integer-backed (see package
// doc), there is no transform to precompute and the cache degenerates to
// holding the already-reduced operand, but the call shape — wrap once,
// MulPoly many times — is preserved so that a future NTT-capable Modulus
// could be dropped in without changing callers.
type Multiplier struct {
	mod *Modulus
	val Poly
}

// WrapMultiplier builds a Multiplier for val under mod. val must already be
// a canonical representative (degree < mod.N, coefficients in [0, mod.M)).
func WrapMultiplier(mod *Modulus, val Poly) Multiplier {
	return Multiplier{mod: mod, val: val.Copy()}
}

// MulPoly returns w.val · b under the wrapped modulus.
func (w Multiplier) MulPoly(b Poly) Poly {
	return w.mod.Mul(w.val, b)
}

// Value returns the wrapped operand.
func (w Multiplier) Value() Poly {
	return w.val
}
