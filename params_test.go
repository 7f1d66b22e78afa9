package yashe

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/yashe/yasheerrors"
)

func TestNewParametersRejectsBadInputs(t *testing.T) {
	valid := struct {
		t, q  *big.Int
		m     int
		sigma float64
		w     *big.Int
	}{big.NewInt(257), big.NewInt(1 << 30), 32, 3.2, big.NewInt(1 << 8)}

	cases := []struct {
		name  string
		t, q  *big.Int
		m     int
		sigma float64
		w     *big.Int
	}{
		{"t too small", big.NewInt(1), valid.q, valid.m, valid.sigma, valid.w},
		{"q not greater than t", big.NewInt(300), big.NewInt(300), valid.m, valid.sigma, valid.w},
		{"m too small", valid.t, valid.q, 2, valid.sigma, valid.w},
		{"w too small", valid.t, valid.q, valid.m, valid.sigma, big.NewInt(1)},
		{"sigma non-positive", valid.t, valid.q, valid.m, 0, valid.w},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewParameters(tc.t, tc.q, tc.m, tc.sigma, tc.w)
			require.Error(t, err)
			requireKind(t, err, yasheerrors.InvalidParameter)
		})
	}
}

func TestNewParametersRejectsInsufficientNoiseBudget(t *testing.T) {
	// w and sigma chosen to blow the depth-1 noise bound at a tiny q.
	_, err := NewParameters(big.NewInt(257), big.NewInt(1<<12), 32, 1000, big.NewInt(1<<10))
	require.Error(t, err)
	requireKind(t, err, yasheerrors.InvalidParameter)
}

func TestNewParametersDerivedValues(t *testing.T) {
	q := big.NewInt(1 << 30)
	params, err := NewParameters(big.NewInt(257), q, 32, 3.2, big.NewInt(1<<8))
	require.NoError(t, err)

	require.Equal(t, 16, params.N()) // φ(32) = 16
	require.Equal(t, new(big.Int).Div(q, big.NewInt(257)).String(), params.Delta().String())

	wantBigQ := new(big.Int).Div(new(big.Int).Mul(q, q), big.NewInt(257))
	require.Equal(t, wantBigQ.String(), params.BigQ().String())

	require.Equal(t, 4, params.L()) // q < 256^4, >= 256^3

	require.Len(t, params.Phi(), params.N())
}
