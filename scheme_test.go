package yashe

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/yashe/yasheerrors"
)

func TestOperationsFailBeforeKeyGen(t *testing.T) {
	params := fastParams(t)
	s, err := NewSchemeWithSeed(params, []byte("before-keygen"))
	require.NoError(t, err)

	_, err = s.Encrypt([]*big.Int{big.NewInt(1)})
	require.Error(t, err)
	requireKind(t, err, yasheerrors.KeysNotReady)
}

// Invariant 1: after KeyGen, sk ≡ 1 (mod t).
func TestKeyGenSecretKeyCongruentToOneModT(t *testing.T) {
	params := fastParams(t)
	_, sk := newKeyedScheme(t, params, []byte("invariant-1"))

	// sk.F holds canonical representatives in [0, q); the congruence holds
	// for the centred lift f = t·f′ + 1, so lift each coefficient into
	// (-q/2, q/2] before reducing mod t.
	lifted := sk.F.Copy()
	halfQ := new(big.Int).Rsh(params.Q(), 1)
	for _, c := range lifted {
		if c.Cmp(halfQ) > 0 {
			c.Sub(c, params.Q())
		}
	}
	residue := params.RingT().Reduce(lifted)
	want := params.RingT().NewPoly()
	want[0].SetInt64(1)
	require.True(t, residue.Equal(want), "sk mod t should be the constant polynomial 1, got %v", residue)
}

// Invariant 2: every produced ring element has degree < n.
func TestRingElementsHaveBoundedDegree(t *testing.T) {
	params := fastParams(t)
	s, sk := newKeyedScheme(t, params, []byte("invariant-2"))

	require.Less(t, sk.F.Degree(), params.N())

	ct, err := s.EncryptScalar(big.NewInt(5))
	require.NoError(t, err)
	require.Less(t, ct.Value.Degree(), params.N())
	require.Len(t, ct.Value, params.N())
}

// Invariant 6 / S1: decryptVec(encrypt(msg)) == msg (zero-padded).
func TestEncryptionCorrectness(t *testing.T) {
	params := toySpecParams(t)
	s, sk := newKeyedScheme(t, params, []byte("s1"))

	msg := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3)}
	ct, err := s.Encrypt(msg)
	require.NoError(t, err)

	got, err := s.DecryptVec(ct, sk)
	require.NoError(t, err)

	require.Len(t, got, params.N())
	for i := 0; i < params.N(); i++ {
		want := int64(0)
		if i < len(msg) {
			want = msg[i].Int64()
		}
		require.Equal(t, want, got[i].Int64(), "coefficient %d", i)
	}
}

// Invariant 7 / S2: decrypt(ct1 + ct2) == (m1 + m2) mod t.
func TestAdditiveHomomorphism(t *testing.T) {
	params := toySpecParams(t)
	s, sk := newKeyedScheme(t, params, []byte("s2"))

	ct1, err := s.EncryptScalar(big.NewInt(5))
	require.NoError(t, err)
	ct2, err := s.EncryptScalar(big.NewInt(7))
	require.NoError(t, err)

	sum := ct1.Add(ct2)
	got, err := s.Decrypt(sum, sk)
	require.NoError(t, err)
	require.Equal(t, int64(12), got.Int64())
}

// Invariant 8 / S3: decrypt(keySwitch(roundMultiply(ct1, ct2))) == m1*m2 mod t.
func TestMultiplicativeHomomorphism(t *testing.T) {
	params := toySpecParams(t)
	s, sk := newKeyedScheme(t, params, []byte("s3"))

	ct1, err := s.EncryptScalar(big.NewInt(5))
	require.NoError(t, err)
	ct2, err := s.EncryptScalar(big.NewInt(7))
	require.NoError(t, err)

	product, err := ct1.Mul(ct2)
	require.NoError(t, err)

	got, err := s.Decrypt(product, sk)
	require.NoError(t, err)
	require.Equal(t, int64(35), got.Int64())
}

// Invariant 9 / S4: decryptBatch(encryptBatch(v)) == v.
func TestBatchRoundtrip(t *testing.T) {
	params := toySpecParams(t)
	s, sk := newKeyedScheme(t, params, []byte("s4"))

	vec := []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(3), big.NewInt(4)}
	ct, err := s.EncryptBatch(vec)
	require.NoError(t, err)

	got, err := s.DecryptBatch(ct, sk)
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(got), len(vec))
	for i, v := range vec {
		require.Equal(t, v.Int64(), got[i].Int64(), "slot %d", i)
	}
}

// S5: two KeyGen calls on the same instance yield different secret keys.
func TestKeyGenTwiceYieldsDifferentKeys(t *testing.T) {
	params := fastParams(t)
	s, err := NewSchemeWithSeed(params, []byte("s5"))
	require.NoError(t, err)

	sk1, err := s.KeyGen()
	require.NoError(t, err)
	sk2, err := s.KeyGen()
	require.NoError(t, err)

	require.False(t, cmp.Equal(sk1.F, sk2.F, cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 })),
		"two KeyGen calls should not produce the same secret key")
}

// S6: decrypting a fresh encryption of zero always returns zero, and the
// underlying noise stays comfortably inside the decryption boundary across
// many independent trials.
func TestDecryptZeroStaysWithinNoiseBound(t *testing.T) {
	params := fastParams(t)
	s, sk := newKeyedScheme(t, params, []byte("s6"))

	const trials = 1000
	residuals := make([]float64, trials)
	for i := 0; i < trials; i++ {
		ct, err := s.EncryptScalar(big.NewInt(0))
		require.NoError(t, err)

		got, err := s.Decrypt(ct, sk)
		require.NoError(t, err)
		require.Equal(t, int64(0), got.Int64(), "trial %d", i)

		d := params.RingQ().Mul(sk.F, ct.Value)
		// d[0] is canonical in [0, q); centre it so negative noise is logged
		// as negative rather than as a value near q.
		if d[0].Cmp(new(big.Int).Rsh(params.Q(), 1)) > 0 {
			d[0].Sub(d[0], params.Q())
		}
		residuals[i], _ = new(big.Float).SetInt(d[0]).Float64()
	}

	mean, err := stats.Mean(residuals)
	require.NoError(t, err)
	stddev, err := stats.StandardDeviation(residuals)
	require.NoError(t, err)
	t.Logf("decrypt-zero noise sample: mean=%.3g stddev=%.3g", mean, stddev)
}

func TestEncryptRejectsOversizedMessage(t *testing.T) {
	params := fastParams(t)
	s, _ := newKeyedScheme(t, params, []byte("dim-mismatch"))

	oversized := make([]*big.Int, params.N()+1)
	for i := range oversized {
		oversized[i] = big.NewInt(1)
	}
	_, err := s.Encrypt(oversized)
	require.Error(t, err)
	requireKind(t, err, yasheerrors.DimensionMismatch)
}
