package yashe

import (
	"math/big"
	"sync"

	"github.com/tuneinsight/yashe/batch"
	"github.com/tuneinsight/yashe/radix"
	"github.com/tuneinsight/yashe/ring"
	"github.com/tuneinsight/yashe/sampling"
	"github.com/tuneinsight/yashe/yasheerrors"
)

// Scheme is a scheme instance: a Parameters value plus the sampling state
// every KeyGen/encrypt call draws from, and, once KeyGen has run, the
// public material (pk, ek) every encrypt and homomorphic-multiply
// operation reads. A Scheme moves through exactly two lifecycle phases —
// parametrised and keyed — gated by the keyed flag checked at the top of
// every operation that needs a key.
type Scheme struct {
	*Parameters

	prng     sampling.PRNG
	ternary  *sampling.TernarySampler
	gaussian *sampling.GaussianSampler
	codec    *radix.Codec

	// keygenMu serialises KeyGen against itself (§5: "KeyGen requires
	// exclusive access"). It is distinct from mu, which guards the
	// published key material that encrypt/decrypt read concurrently.
	keygenMu sync.Mutex

	mu    sync.RWMutex
	keyed bool
	pk    *PublicKey
	ek    *EvalKey

	encoderOnce sync.Once
	encoder     *batch.Encoder
	encoderErr  error
}

// NewScheme builds a parametrised scheme instance whose sampler is seeded
// from the system's cryptographic entropy source.
func NewScheme(params *Parameters) (*Scheme, error) {
	prng, err := sampling.NewRandomPRNG()
	if err != nil {
		return nil, yasheerrors.Wrap(yasheerrors.InvalidParameter, "failed to seed PRNG", err)
	}
	return newSchemeWithPRNG(params, prng), nil
}

// NewSchemeWithSeed builds a parametrised scheme instance whose sampler is
// deterministically seeded from seed — the withSampler hook used by tests
// and other callers that need reproducible key and error material.
func NewSchemeWithSeed(params *Parameters, seed []byte) (*Scheme, error) {
	prng, err := sampling.NewKeyedPRNG(seed)
	if err != nil {
		return nil, yasheerrors.Wrap(yasheerrors.InvalidParameter, "failed to seed PRNG", err)
	}
	return newSchemeWithPRNG(params, prng), nil
}

func newSchemeWithPRNG(params *Parameters, prng sampling.PRNG) *Scheme {
	return &Scheme{
		Parameters: params,
		prng:       prng,
		ternary:    sampling.NewTernarySampler(prng),
		gaussian:   sampling.NewGaussianSampler(prng, params.sigma),
		codec:      radix.NewCodec(params.w, params.l, params.ringQ),
	}
}

// Keyed reports whether KeyGen has completed on this instance.
func (s *Scheme) Keyed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyed
}

// PublicKey returns the scheme's public key, or nil before KeyGen.
func (s *Scheme) PublicKey() *PublicKey {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pk
}

func (s *Scheme) requireKeyed() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.keyed {
		return yasheerrors.New(yasheerrors.KeysNotReady, "scheme has not completed KeyGen")
	}
	return nil
}

func (s *Scheme) batchEncoder() (*batch.Encoder, error) {
	s.encoderOnce.Do(func() {
		s.encoder, s.encoderErr = batch.NewEncoder(s.n, s.t, s.phi)
	})
	return s.encoder, s.encoderErr
}

// toPoly lifts a plain coefficient slice (as returned by the samplers)
// into a ring.Poly of degree < n.
func toPoly(n int, coeffs []*big.Int) ring.Poly {
	p := ring.NewPoly(n)
	for i, c := range coeffs {
		p[i].Set(c)
	}
	return p
}
