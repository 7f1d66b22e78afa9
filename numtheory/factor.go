package numtheory

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	mrand "math/rand"
	"math/big"
)

// Factor is one monic irreducible factor of Φ_m(x) over F_t, together with
// its degree. The Batch component assigns one plaintext slot to each Factor.
type Factor struct {
	Coeffs []*big.Int // low-to-high, length Degree+1, monic (Coeffs[Degree] == 1)
	Degree int
}

// FactorCyclotomic factors Φ(x) mod t into its monic irreducible factors
// over F_t via distinct-degree followed by equal-degree (Cantor–Zassenhaus)
// factorisation. It requires t to be an odd prime coprime with the
// cyclotomic index and Φ(x) to be squarefree modulo t — the standard BGV/
// YASHE batching precondition. phiLow holds Φ's coefficients below its
// implicit leading term (length n = φ(m)).
func FactorCyclotomic(phiLow []*big.Int, t *big.Int) ([]Factor, error) {
	n := len(phiLow)
	if n == 0 {
		return nil, errors.New("numtheory: empty cyclotomic polynomial")
	}
	if t.Bit(0) == 0 {
		return nil, errors.New("numtheory: t must be odd for equal-degree factorisation")
	}

	f := newFpoly(t, append(append([]*big.Int{}, phiLow...), big.NewInt(1)))
	if f.degree() != n {
		return nil, errors.New("numtheory: Φ is not monic of the expected degree modulo t")
	}

	if !isSquareFree(f) {
		return nil, errors.New("numtheory: Φ is not squarefree modulo t; t is not a valid batching modulus")
	}

	rng := newRNG()

	ddf, err := distinctDegreeFactor(f, t)
	if err != nil {
		return nil, err
	}

	var factors []Factor
	for _, group := range ddf {
		pieces, err := equalDegreeSplit(group.poly, group.degree, t, rng)
		if err != nil {
			return nil, err
		}
		for _, piece := range pieces {
			factors = append(factors, toFactor(piece))
		}
	}
	return factors, nil
}

func toFactor(p fpoly) Factor {
	p = p.makeMonic()
	coeffs := make([]*big.Int, len(p.c))
	for i, c := range p.c {
		coeffs[i] = new(big.Int).Set(c)
	}
	return Factor{Coeffs: coeffs, Degree: p.degree()}
}

func isSquareFree(f fpoly) bool {
	df := formalDerivative(f)
	if df.isZero() {
		return f.degree() == 0
	}
	g := fgcd(f, df)
	return g.degree() == 0
}

func formalDerivative(p fpoly) fpoly {
	if p.degree() <= 0 {
		return fzero(p.t)
	}
	out := make([]*big.Int, p.degree())
	for i := 1; i <= p.degree(); i++ {
		coeff := new(big.Int).Mul(p.c[i], big.NewInt(int64(i)))
		coeff.Mod(coeff, p.t)
		out[i-1] = coeff
	}
	return fpoly{c: out, t: p.t}.normalize()
}

type ddfGroup struct {
	poly   fpoly
	degree int
}

// distinctDegreeFactor splits f into groups, each the product of all
// irreducible factors of a given degree.
func distinctDegreeFactor(f fpoly, t *big.Int) ([]ddfGroup, error) {
	var groups []ddfGroup

	rest := f
	x := fmonomial(t, 1)

	for d := 1; 2*d <= rest.degree(); d++ {
		texp := new(big.Int).Exp(t, big.NewInt(int64(d)), nil)
		h := fpowmod(x, texp, rest)
		hx := h.sub(x)
		g := fgcd(rest, hx)
		if g.degree() > 0 {
			groups = append(groups, ddfGroup{poly: g, degree: d})
			rest, _ = rest.divmod(g)
		}
	}
	if rest.degree() > 0 {
		groups = append(groups, ddfGroup{poly: rest, degree: rest.degree()})
	}
	return groups, nil
}

// equalDegreeSplit splits a polynomial known to be a product of irreducible
// factors of degree exactly deg into its individual factors, using
// Cantor–Zassenhaus random splitting (requires t odd).
func equalDegreeSplit(f fpoly, deg int, t *big.Int, rng *mrand.Rand) ([]fpoly, error) {
	if f.degree() == deg {
		return []fpoly{f}, nil
	}

	numFactors := f.degree() / deg
	exp := new(big.Int).Sub(new(big.Int).Exp(t, big.NewInt(int64(deg)), nil), big.NewInt(1))
	exp.Div(exp, big.NewInt(2))

	for attempts := 0; attempts < 10000; attempts++ {
		a := randomFpoly(rng, t, f.degree())
		if a.isZero() {
			continue
		}
		g := fgcd(a, f)
		if g.degree() == 0 {
			b := fpowmod(a, exp, f)
			bMinus1 := b.sub(fone(t))
			g = fgcd(bMinus1, f)
		}
		if g.degree() > 0 && g.degree() < f.degree() {
			left, err := equalDegreeSplit(g, deg, t, rng)
			if err != nil {
				return nil, err
			}
			quot, _ := f.divmod(g)
			right, err := equalDegreeSplit(quot, deg, t, rng)
			if err != nil {
				return nil, err
			}
			return append(left, right...), nil
		}
	}
	return nil, fmt.Errorf("numtheory: equal-degree factorisation did not converge for %d factors of degree %d", numFactors, deg)
}

func newRNG() *mrand.Rand {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic(err)
	}
	return mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(seed[:]))))
}
