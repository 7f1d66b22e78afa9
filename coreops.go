package yashe

import (
	"math/big"

	"github.com/tuneinsight/yashe/ring"
	"github.com/tuneinsight/yashe/yasheerrors"
)

// Encrypt embeds msg (coefficients coerced into Z_t, length <= n) as
// Δ·m + e + h·s ∈ R_q for fresh error draws e, s ← χ_err. A message with
// only the constant term set is the scalar-encryption case.
func (s *Scheme) Encrypt(msg []*big.Int) (*Ciphertext, error) {
	if err := s.requireKeyed(); err != nil {
		return nil, err
	}
	if len(msg) > s.n {
		return nil, yasheerrors.New(yasheerrors.DimensionMismatch,
			"message longer than the ring degree")
	}

	m := s.ringQ.NewPoly()
	for i, v := range msg {
		m[i].Mod(v, s.t)
	}
	return s.encryptPoly(m)
}

// EncryptScalar is the single-coefficient case of Encrypt.
func (s *Scheme) EncryptScalar(v *big.Int) (*Ciphertext, error) {
	return s.Encrypt([]*big.Int{v})
}

// EncryptBatch packs vec (length <= Batch's slot count) into a single ring
// element via CRT encoding, then proceeds as Encrypt.
func (s *Scheme) EncryptBatch(vec []*big.Int) (*Ciphertext, error) {
	if err := s.requireKeyed(); err != nil {
		return nil, err
	}
	enc, err := s.batchEncoder()
	if err != nil {
		return nil, err
	}
	m, err := enc.Encode(vec)
	if err != nil {
		return nil, err
	}
	return s.encryptPoly(m)
}

func (s *Scheme) encryptPoly(m ring.Poly) (*Ciphertext, error) {
	pk := s.PublicKey()

	e := s.ringQ.Reduce(toPoly(s.n, s.gaussian.Read(s.n)))
	errS := s.ringQ.Reduce(toPoly(s.n, s.gaussian.Read(s.n)))

	c := s.ringQ.MulScalar(m, s.delta)
	c = s.ringQ.Add(c, e)
	c = s.ringQ.Add(c, s.ringQ.Mul(pk.H, errS))

	return &Ciphertext{scheme: s, Value: c}, nil
}

// Decrypt returns the scalar plaintext held in ct's constant slot:
// round(t·d_0/q) mod t, where d = sk·c.
func (s *Scheme) Decrypt(ct *Ciphertext, sk *SecretKey) (*big.Int, error) {
	vec, err := s.DecryptVec(ct, sk)
	if err != nil {
		return nil, err
	}
	return vec[0], nil
}

// DecryptVec computes d = sk·c and rounds every coefficient of d back
// into Z_t via round(t·d_i/q) mod t.
func (s *Scheme) DecryptVec(ct *Ciphertext, sk *SecretKey) ([]*big.Int, error) {
	if err := s.requireKeyed(); err != nil {
		return nil, err
	}

	d := s.ringQ.Mul(sk.F, ct.Value)

	out := make([]*big.Int, s.n)
	scaled := new(big.Int)
	for i, di := range d {
		scaled.Mul(s.t, di)
		rounded := ring.RoundDiv(scaled, s.q)
		rounded.Mod(rounded, s.t)
		out[i] = rounded
	}
	return out, nil
}

// DecryptBatch reduces DecryptVec's rounded polynomial modulo each Batch
// factor and returns one scalar per slot.
func (s *Scheme) DecryptBatch(ct *Ciphertext, sk *SecretKey) ([]*big.Int, error) {
	if err := s.requireKeyed(); err != nil {
		return nil, err
	}
	enc, err := s.batchEncoder()
	if err != nil {
		return nil, err
	}
	p, err := s.DecryptVec(ct, sk)
	if err != nil {
		return nil, err
	}
	return enc.Decode(p), nil
}

// RoundMultiply computes round((t/q)·(a·b)): lift a and b into R_Q,
// multiply there, and round every coefficient of the product back down
// into R_q. The result decrypts correctly under sk², not sk — KeySwitch
// relinearises it back to sk.
func (s *Scheme) RoundMultiply(a, b ring.Poly) (ring.Poly, error) {
	if err := s.requireKeyed(); err != nil {
		return nil, err
	}

	wideA := s.ringBigQ.Reduce(a)
	wideB := s.ringBigQ.Reduce(b)
	product := s.ringBigQ.Mul(wideA, wideB)

	out := s.ringQ.NewPoly()
	scaled := new(big.Int)
	for i, pi := range product {
		scaled.Mul(s.t, pi)
		out[i] = ring.RoundDiv(scaled, s.q)
	}
	return s.ringQ.Reduce(out), nil
}

// KeySwitch relinearises c′ — the output of RoundMultiply, which decrypts
// correctly under sk² — back down to a ciphertext that decrypts correctly
// under sk, via the radix-decomposition dot product against the
// evaluation key.
func (s *Scheme) KeySwitch(cPrime ring.Poly) (ring.Poly, error) {
	return s.DotEval(cPrime)
}

// DotEval computes Σ radixDecomp(p)_i · ek_i, using each limb's cached
// Multiplier when present and falling back to a direct ring multiply
// otherwise. Functionally identical to the naive dot product regardless
// of which path runs.
func (s *Scheme) DotEval(p ring.Poly) (ring.Poly, error) {
	if err := s.requireKeyed(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	ek := s.ek
	s.mu.RUnlock()

	decomp := s.codec.DecomposePoly(p)
	sum := s.ringQ.Zero()
	for i, limb := range decomp {
		var term ring.Poly
		if i < len(ek.cache) {
			term = ek.cache[i].MulPoly(limb)
		} else {
			term = s.ringQ.Mul(ek.Limbs[i], limb)
		}
		sum = s.ringQ.Add(sum, term)
	}
	return sum, nil
}
