package numtheory

import "math/big"

// zpoly is a plain Z[x] polynomial, coefficients low-to-high, normalised to
// have no trailing zero coefficient (the zero polynomial is the empty slice).
type zpoly []*big.Int

func zpolyNormalize(p zpoly) zpoly {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

func zpolyMul(a, b zpoly) zpoly {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	out := make(zpoly, len(a)+len(b)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			tmp.Mul(ai, bj)
			out[i+j].Add(out[i+j], tmp)
		}
	}
	return zpolyNormalize(out)
}

// zpolyDivExact divides num by den, assuming the division is exact (no
// remainder) and den is monic or its leading coefficient exactly divides
// every pivot encountered. Used only to compute cyclotomic polynomials,
// where exactness is guaranteed by the Möbius/divisor identity
// Π_{d|m} Φ_d(x) = x^m - 1.
func zpolyDivExact(num, den zpoly) zpoly {
	num = append(zpoly(nil), num...)
	for i := range num {
		num[i] = new(big.Int).Set(num[i])
	}

	degDen := len(den) - 1
	lead := den[degDen]

	quotDeg := len(num) - 1 - degDen
	if quotDeg < 0 {
		return nil
	}
	quot := make(zpoly, quotDeg+1)
	for i := range quot {
		quot[i] = new(big.Int)
	}

	coeff := new(big.Int)
	term := new(big.Int)
	for deg := len(num) - 1; deg >= degDen; deg-- {
		c := num[deg]
		if c.Sign() == 0 {
			continue
		}
		coeff.Quo(c, lead)
		quot[deg-degDen].Set(coeff)
		for i, dc := range den {
			term.Mul(coeff, dc)
			num[deg-degDen+i].Sub(num[deg-degDen+i], term)
		}
	}
	return zpolyNormalize(quot)
}

// CyclotomicPoly returns Φ_m(x), the m-th cyclotomic polynomial, as its
// coefficients from the constant term up to (but not including) the
// implicit monic leading term x^n (n = φ(m)). Computed via the iterative
// division identity Φ_m(x) = (x^m - 1) / Π_{d|m, d<m} Φ_d(x).
func CyclotomicPoly(m int) []*big.Int {
	table := make(map[int]zpoly, m)
	for d := 1; d <= m; d++ {
		table[d] = cyclotomicFromTable(d, table)
	}
	full := table[m]
	// full has degree φ(m) and is monic; return the low-order coefficients.
	n := EulerTotient(m)
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		if i < len(full) {
			out[i] = new(big.Int).Set(full[i])
		} else {
			out[i] = new(big.Int)
		}
	}
	return out
}

func cyclotomicFromTable(d int, table map[int]zpoly) zpoly {
	// x^d - 1
	xdMinus1 := make(zpoly, d+1)
	for i := range xdMinus1 {
		xdMinus1[i] = new(big.Int)
	}
	xdMinus1[0].SetInt64(-1)
	xdMinus1[d].SetInt64(1)

	denom := zpoly{big.NewInt(1)}
	for _, e := range divisors(d) {
		if e == d {
			continue
		}
		denom = zpolyMul(denom, table[e])
	}
	if len(denom) == 1 && denom[0].Cmp(big.NewInt(1)) == 0 {
		return xdMinus1
	}
	return zpolyDivExact(xdMinus1, denom)
}
