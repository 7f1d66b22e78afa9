package yashe

import (
	"math/big"

	"github.com/tuneinsight/yashe/ring"
	"github.com/tuneinsight/yashe/yasheerrors"
)

// keyGenMaxAttempts bounds the resample loop searching for an invertible
// secret key candidate. For well-chosen parameters the loop terminates on
// the first or second draw; this bound exists only to turn a
// vanishingly-unlikely pathological parameter choice into a reported
// failure instead of an infinite loop.
const keyGenMaxAttempts = 64

// KeyGen executes the scheme's key-generation algorithm: draw a ternary
// f′, form f = t·f′+1, and retry until f is invertible modulo (q, Φ);
// derive the public key h = t·g·f^{-1} from a second ternary draw g; and
// build the evaluation key from the radix powers of f, each masked under
// h with fresh error. KeyGen requires exclusive access — a second
// concurrent call blocks on keygenMu rather than racing the first.
func (s *Scheme) KeyGen() (*SecretKey, error) {
	s.keygenMu.Lock()
	defer s.keygenMu.Unlock()

	ringQ := s.ringQ
	n := s.n

	var f, fInv ring.Poly
	found := false
	for attempt := 0; attempt < keyGenMaxAttempts; attempt++ {
		fPrime := s.ternary.Read(n)
		candidate := ringQ.NewPoly()
		for i, c := range fPrime {
			candidate[i].Mul(c, s.t)
		}
		candidate[0].Add(candidate[0], big.NewInt(1))
		candidate = ringQ.Reduce(candidate)

		if inv, ok := ringQ.Invert(candidate); ok {
			f, fInv, found = candidate, inv, true
			break
		}
	}
	if !found {
		return nil, yasheerrors.New(yasheerrors.KeyGenFailure,
			"exhausted retry budget searching for an invertible secret key")
	}

	g := ringQ.Reduce(toPoly(n, s.ternary.Read(n)))

	h := ringQ.Mul(g, fInv)
	h = ringQ.MulScalar(h, s.t)

	powers := s.codec.PowersOfW(f)
	limbs := make([]ring.Poly, s.l)
	for i, p := range powers {
		e := ringQ.Reduce(toPoly(n, s.gaussian.Read(n)))
		errS := ringQ.Reduce(toPoly(n, s.gaussian.Read(n)))

		limb := ringQ.Add(p, e)
		limb = ringQ.Add(limb, ringQ.Mul(h, errS))
		limbs[i] = limb
	}

	s.mu.Lock()
	s.pk = &PublicKey{H: h}
	s.ek = newEvalKey(limbs, ringQ)
	s.keyed = true
	s.mu.Unlock()

	return &SecretKey{F: f}, nil
}
