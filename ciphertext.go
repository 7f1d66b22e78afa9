package yashe

import "github.com/tuneinsight/yashe/ring"

// Ciphertext holds a single ring element c ∈ R_q together with a reference
// to the scheme instance it belongs to. It is the external collaborator
// type every caller holds: Add/AddPlain/MulPlain are plain ring arithmetic
// with no key switch; Mul delegates to the owning scheme's RoundMultiply
// then KeySwitch.
type Ciphertext struct {
	scheme *Scheme
	Value  ring.Poly
}

// NewCiphertext wraps value as a ciphertext belonging to scheme.
func NewCiphertext(scheme *Scheme, value ring.Poly) *Ciphertext {
	return &Ciphertext{scheme: scheme, Value: value}
}

// Add returns c + other, ring addition in R_q.
func (c *Ciphertext) Add(other *Ciphertext) *Ciphertext {
	return &Ciphertext{scheme: c.scheme, Value: c.scheme.ringQ.Add(c.Value, other.Value)}
}

// AddPlain returns c + p for a plain ring element p, with no key switch.
// Callers encoding a scalar plaintext should scale it by Δ first, matching
// Encrypt's own embedding.
func (c *Ciphertext) AddPlain(p ring.Poly) *Ciphertext {
	return &Ciphertext{scheme: c.scheme, Value: c.scheme.ringQ.Add(c.Value, p)}
}

// MulPlain returns c scaled by the plain ring element p, with no key
// switch.
func (c *Ciphertext) MulPlain(p ring.Poly) *Ciphertext {
	return &Ciphertext{scheme: c.scheme, Value: c.scheme.ringQ.Mul(c.Value, p)}
}

// Mul returns the homomorphic product of c and other: RoundMultiply
// followed by KeySwitch, so the result decrypts correctly under the
// original secret key rather than its square.
func (c *Ciphertext) Mul(other *Ciphertext) (*Ciphertext, error) {
	product, err := c.scheme.RoundMultiply(c.Value, other.Value)
	if err != nil {
		return nil, err
	}
	switched, err := c.scheme.KeySwitch(product)
	if err != nil {
		return nil, err
	}
	return &Ciphertext{scheme: c.scheme, Value: switched}, nil
}
