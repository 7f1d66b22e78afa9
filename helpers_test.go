package yashe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/yashe/yasheerrors"
)

// requireKind asserts that err is a *yasheerrors.Error of the given kind.
func requireKind(t *testing.T, err error, kind yasheerrors.Kind) {
	t.Helper()
	var kindErr *yasheerrors.Error
	require.ErrorAs(t, err, &kindErr)
	require.Equal(t, kind, kindErr.Kind)
}

// fastParams is a small, quick-to-exercise parameter set used for tests
// that run many trials (statistical scenarios, repeated KeyGen).
func fastParams(t *testing.T) *Parameters {
	t.Helper()
	q := big.NewInt((1 << 31) - 1) // Mersenne prime M31
	params, err := NewParameters(big.NewInt(17), q, 32, 3.2, big.NewInt(1<<8))
	require.NoError(t, err)
	return params
}

// toySpecParams reproduces the scenario toy parameters from §8:
// t=257, q≈2^61, m=2048, σ=8, w=2^16.
func toySpecParams(t *testing.T) *Parameters {
	t.Helper()
	q := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 61), big.NewInt(1)) // Mersenne prime M61
	params, err := NewParameters(big.NewInt(257), q, 2048, 8, big.NewInt(1<<16))
	require.NoError(t, err)
	return params
}

// newKeyedScheme builds a scheme over params seeded deterministically from
// seed and runs KeyGen.
func newKeyedScheme(t *testing.T, params *Parameters, seed []byte) (*Scheme, *SecretKey) {
	t.Helper()
	s, err := NewSchemeWithSeed(params, seed)
	require.NoError(t, err)
	sk, err := s.KeyGen()
	require.NoError(t, err)
	return s, sk
}
