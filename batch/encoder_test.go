package batch

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/yashe/numtheory"
)

func TestEncodeDecodeRoundtrip(t *testing.T) {
	m := 8
	tMod := big.NewInt(17) // 17 ≡ 1 (mod 8): full SIMD packing, 4 linear slots
	n := numtheory.EulerTotient(m)
	phiLow := numtheory.CyclotomicPoly(m)

	enc, err := NewEncoder(n, tMod, phiLow)
	require.NoError(t, err)
	require.Equal(t, n, enc.SlotCount())

	values := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(0)}
	poly, err := enc.Encode(values)
	require.NoError(t, err)

	decoded := enc.Decode(poly)
	require.Len(t, decoded, n)
	for i, v := range values {
		require.Equal(t, v.Int64(), decoded[i].Int64(), "slot %d", i)
	}
}

func TestEncodeRejectsOversizedVector(t *testing.T) {
	m := 8
	tMod := big.NewInt(17)
	n := numtheory.EulerTotient(m)
	phiLow := numtheory.CyclotomicPoly(m)

	enc, err := NewEncoder(n, tMod, phiLow)
	require.NoError(t, err)

	values := make([]*big.Int, enc.SlotCount()+1)
	for i := range values {
		values[i] = big.NewInt(1)
	}
	_, err = enc.Encode(values)
	require.Error(t, err)
}
