package sampling

import "math/big"

// TernarySampler draws ring elements with coefficients independently
// uniform over {-1, 0, +1} — the χ_key distribution used for secret and
// ephemeral keys. Coefficients are returned as signed small integers;
// canonicalisation into Z_q happens where the caller combines them with a
// Modulus.
type TernarySampler struct {
	prng PRNG
}

// NewTernarySampler builds a TernarySampler reading from prng.
func NewTernarySampler(prng PRNG) *TernarySampler {
	return &TernarySampler{prng: prng}
}

// Read draws n independent ternary coefficients.
func (s *TernarySampler) Read(n int) []*big.Int {
	out := make([]*big.Int, n)
	buf := make([]byte, 1)
	for i := 0; i < n; i++ {
		out[i] = big.NewInt(s.drawTrit(buf))
	}
	return out
}

// drawTrit returns a uniform value in {-1, 0, 1} via rejection sampling on a
// single byte: 256 is not a multiple of 3, so byte value 255 is discarded
// to avoid biasing the distribution.
func (s *TernarySampler) drawTrit(buf []byte) int64 {
	for {
		if _, err := s.prng.Read(buf); err != nil {
			panic(err)
		}
		if buf[0] == 255 {
			continue
		}
		switch buf[0] % 3 {
		case 0:
			return 0
		case 1:
			return 1
		default:
			return -1
		}
	}
}
