// Package sampling provides the scheme's random sources: a keyed PRNG that
// can be seeded deterministically (for the test-fixture hook §9 calls for)
// and the two coefficient distributions the scheme draws from — ternary
// for key material, discrete Gaussian for error terms.
package sampling

import (
	"crypto/rand"
	"sync"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// PRNG is the minimal randomness source every sampler in this package
// depends on. It is satisfied by *KeyedPRNG, and by any caller-supplied
// deterministic generator used for test fixtures.
type PRNG interface {
	Read(p []byte) (int, error)
}

// KeyedPRNG is a mutex-guarded BLAKE3 extendable-output generator. Guarding
// the generator itself (rather than requiring one instance per goroutine)
// is the thread-safety variant this module picks among the three §5 allows:
// a single scheme-wide PRNG behind a lock, shared by every sampler the
// scheme owns.
type KeyedPRNG struct {
	mu     sync.Mutex
	digest *blake3.Digest
}

// NewRandomPRNG seeds a KeyedPRNG from the system's cryptographic entropy
// source. This is the PRNG a Scheme uses by default.
func NewRandomPRNG() (*KeyedPRNG, error) {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		return nil, err
	}
	return NewKeyedPRNG(seed)
}

// NewKeyedPRNG seeds a KeyedPRNG deterministically from an arbitrary-length
// seed. This is the withSampler(handle) hook §9 asks for: tests pass a fixed
// seed to get reproducible key/error material.
func NewKeyedPRNG(seed []byte) (*KeyedPRNG, error) {
	key := deriveKey(seed)
	h, err := blake3.NewKeyed(key[:])
	if err != nil {
		return nil, err
	}
	return &KeyedPRNG{digest: h.Digest()}, nil
}

// deriveKey folds an arbitrary-length seed into the 32-byte key BLAKE3's
// keyed mode requires, via blake2b — grounded on the teacher's historical
// blake2b-based CRPGenerator, kept here as the key-derivation step feeding
// the newer blake3-based generator.
func deriveKey(seed []byte) [32]byte {
	return blake2b.Sum256(seed)
}

// Read fills p with pseudorandom bytes. Safe for concurrent use.
func (k *KeyedPRNG) Read(p []byte) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.digest.Read(p)
}
