package sampling

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func TestKeyedPRNGDeterministic(t *testing.T) {
	seed := []byte("a fixed test seed, not a secret")

	a, err := NewKeyedPRNG(seed)
	require.NoError(t, err)
	b, err := NewKeyedPRNG(seed)
	require.NoError(t, err)

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	_, err = a.Read(bufA)
	require.NoError(t, err)
	_, err = b.Read(bufB)
	require.NoError(t, err)

	require.Equal(t, bufA, bufB)
}

func TestKeyedPRNGDifferentSeedsDiverge(t *testing.T) {
	a, err := NewKeyedPRNG([]byte("seed one"))
	require.NoError(t, err)
	b, err := NewKeyedPRNG([]byte("seed two"))
	require.NoError(t, err)

	bufA := make([]byte, 64)
	bufB := make([]byte, 64)
	_, _ = a.Read(bufA)
	_, _ = b.Read(bufB)

	require.NotEqual(t, bufA, bufB)
}

func TestTernarySamplerRangeAndBalance(t *testing.T) {
	prng, err := NewKeyedPRNG([]byte("ternary test seed"))
	require.NoError(t, err)
	s := NewTernarySampler(prng)

	coeffs := s.Read(20000)
	var values []float64
	counts := map[int64]int{}
	for _, c := range coeffs {
		v := c.Int64()
		require.GreaterOrEqual(t, v, int64(-1))
		require.LessOrEqual(t, v, int64(1))
		counts[v]++
		values = append(values, float64(v))
	}

	mean, err := stats.Mean(values)
	require.NoError(t, err)
	require.InDelta(t, 0, mean, 0.05)

	for _, v := range []int64{-1, 0, 1} {
		frac := float64(counts[v]) / float64(len(coeffs))
		require.InDelta(t, 1.0/3.0, frac, 0.02)
	}
}

func TestGaussianSamplerMeanAndStdDev(t *testing.T) {
	prng, err := NewKeyedPRNG([]byte("gaussian test seed"))
	require.NoError(t, err)
	sigma := 8.0
	s := NewGaussianSampler(prng, sigma)

	coeffs := s.Read(20000)
	values := make([]float64, len(coeffs))
	for i, c := range coeffs {
		values[i] = float64(c.Int64())
	}

	mean, err := stats.Mean(values)
	require.NoError(t, err)
	require.InDelta(t, 0, mean, 0.3)

	sd, err := stats.StandardDeviation(values)
	require.NoError(t, err)
	require.InDelta(t, sigma, sd, 0.5)

	for _, v := range values {
		require.LessOrEqual(t, math.Abs(v), sigma*10+1)
	}
}
