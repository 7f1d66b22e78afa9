package sampling

import (
	"math"
	"math/big"

	"github.com/ALTree/bigfloat"
)

const gaussianPrecision = 128

// GaussianSampler draws ring elements with coefficients independently from
// a discrete Gaussian of mean 0 and standard deviation Sigma — the χ_err
// distribution used for encryption and key-switching noise. The cumulative
// weight table is built with arbitrary-precision floats (ALTree/bigfloat's
// Exp) rather than float64, so that tail probabilities stay accurate at the
// large σ and wide supports this scheme's parameters call for; float64
// underflows silently well before the tails this table needs to resolve.
type GaussianSampler struct {
	prng    PRNG
	sigma   float64
	support []int64
	cdf     []*big.Float // cumulative, cdf[len-1] == 1
}

// NewGaussianSampler builds a GaussianSampler for standard deviation sigma,
// truncating the support at a tail cut of 10σ (negligible statistical
// distance from the ideal continuous-tailed distribution for the bounds
// this scheme operates at).
func NewGaussianSampler(prng PRNG, sigma float64) *GaussianSampler {
	bound := int64(math.Ceil(sigma*10)) + 1

	n := 2*bound + 1
	support := make([]int64, n)
	weights := make([]*big.Float, n)

	twoSigmaSq := new(big.Float).SetPrec(gaussianPrecision).SetFloat64(2 * sigma * sigma)

	total := new(big.Float).SetPrec(gaussianPrecision)
	for i := range support {
		k := i - int(bound)
		support[i] = int64(k)

		exponent := new(big.Float).SetPrec(gaussianPrecision).SetFloat64(float64(k) * float64(k))
		exponent.Quo(exponent, twoSigmaSq)
		exponent.Neg(exponent)

		w := bigfloat.Exp(exponent)
		weights[i] = w
		total.Add(total, w)
	}

	cdf := make([]*big.Float, n)
	running := new(big.Float).SetPrec(gaussianPrecision)
	for i, w := range weights {
		running.Add(running, w)
		cdf[i] = new(big.Float).SetPrec(gaussianPrecision).Quo(running, total)
	}
	// Force the final entry to exactly 1 so sampling never falls off the table.
	cdf[n-1] = new(big.Float).SetPrec(gaussianPrecision).SetInt64(1)

	return &GaussianSampler{prng: prng, sigma: sigma, support: support, cdf: cdf}
}

// Read draws n independent discrete-Gaussian coefficients.
func (s *GaussianSampler) Read(n int) []*big.Int {
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = big.NewInt(s.drawOne())
	}
	return out
}

// drawOne samples a single coefficient via inverse-CDF lookup against a
// uniform value drawn at the same precision as the table.
func (s *GaussianSampler) drawOne() int64 {
	u := s.uniformUnitFloat()
	idx := sortSearchCDF(s.cdf, u)
	return s.support[idx]
}

func (s *GaussianSampler) uniformUnitFloat() *big.Float {
	buf := make([]byte, gaussianPrecision/8)
	if _, err := s.prng.Read(buf); err != nil {
		panic(err)
	}
	num := new(big.Int).SetBytes(buf)
	denom := new(big.Int).Lsh(big.NewInt(1), uint(len(buf)*8))
	u := new(big.Float).SetPrec(gaussianPrecision).SetInt(num)
	d := new(big.Float).SetPrec(gaussianPrecision).SetInt(denom)
	return u.Quo(u, d)
}

func sortSearchCDF(cdf []*big.Float, u *big.Float) int {
	lo, hi := 0, len(cdf)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if cdf[mid].Cmp(u) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
