package radix

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/yashe/ring"
)

func testModulus(q int64) *ring.Modulus {
	// Φ_4(x) = x^2 + 1
	return ring.NewModulus(big.NewInt(q), []*big.Int{big.NewInt(1), big.NewInt(0)})
}

func TestDecomposeIntRoundtrip(t *testing.T) {
	q := int64(1 << 30)
	w := big.NewInt(1 << 8)
	l := 4
	c := NewCodec(w, l, testModulus(q))

	x := big.NewInt(123456789)
	parts := c.DecomposeInt(x)
	require.Len(t, parts, l)

	sum := new(big.Int)
	pow := big.NewInt(1)
	for _, p := range parts {
		require.True(t, p.Sign() >= 0 && p.Cmp(w) < 0)
		term := new(big.Int).Mul(p, pow)
		sum.Add(sum, term)
		pow.Mul(pow, w)
	}
	require.Equal(t, x.String(), sum.String())
}

func TestPowersOfWIdentity(t *testing.T) {
	q := int64(1 << 40)
	w := big.NewInt(1 << 10)
	l := 4
	mod := testModulus(q)
	c := NewCodec(w, l, mod)

	p := mod.Reduce(ring.FromInt64s(2, []int64{7, 9}))
	powers := c.PowersOfW(p)

	require.True(t, powers[0].Equal(p.Copy()), "power 0 should equal p itself")
	for i, got := range powers {
		want := mod.MulScalar(p, new(big.Int).Exp(w, big.NewInt(int64(i)), nil))
		require.True(t, got.Equal(want), "power %d", i)
	}
}

func TestDecomposeDotPowersEqualsProduct(t *testing.T) {
	q := int64(1 << 40)
	w := big.NewInt(1 << 10)
	l := 4
	mod := testModulus(q)
	c := NewCodec(w, l, mod)

	p := mod.Reduce(ring.FromInt64s(2, []int64{123, 456}))
	qPrime := mod.Reduce(ring.FromInt64s(2, []int64{789, 1011}))

	decomp := c.DecomposePoly(p)
	powers := c.PowersOfW(qPrime)

	sum := mod.Zero()
	for i := range decomp {
		term := mod.Mul(decomp[i], powers[i])
		sum = mod.Add(sum, term)
	}

	want := mod.Mul(p, qPrime)
	require.True(t, sum.Equal(want))
}
