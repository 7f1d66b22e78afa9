package numtheory

import (
	"math/big"
	"math/rand"
)

// fpoly is a polynomial over F_t (t assumed prime), coefficients low-to-high,
// each canonicalised into [0, t). Normalised to drop trailing zeros; the
// zero polynomial is the empty slice.
type fpoly struct {
	c []*big.Int
	t *big.Int
}

func newFpoly(t *big.Int, coeffs []*big.Int) fpoly {
	c := make([]*big.Int, len(coeffs))
	for i, v := range coeffs {
		c[i] = new(big.Int).Mod(v, t)
	}
	return fpoly{c: c, t: t}.normalize()
}

func (p fpoly) normalize() fpoly {
	n := len(p.c)
	for n > 0 && p.c[n-1].Sign() == 0 {
		n--
	}
	return fpoly{c: p.c[:n], t: p.t}
}

func (p fpoly) degree() int { return len(p.c) - 1 }

func (p fpoly) isZero() bool { return len(p.c) == 0 }

func (p fpoly) clone() fpoly {
	c := make([]*big.Int, len(p.c))
	for i, v := range p.c {
		c[i] = new(big.Int).Set(v)
	}
	return fpoly{c: c, t: p.t}
}

func fzero(t *big.Int) fpoly { return fpoly{t: t} }

func fone(t *big.Int) fpoly { return newFpoly(t, []*big.Int{big.NewInt(1)}) }

func fmonomial(t *big.Int, deg int) fpoly {
	c := make([]*big.Int, deg+1)
	for i := range c {
		c[i] = new(big.Int)
	}
	c[deg].SetInt64(1)
	return fpoly{c: c, t: t}
}

func (p fpoly) add(q fpoly) fpoly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = new(big.Int)
		if i < len(p.c) {
			out[i].Add(out[i], p.c[i])
		}
		if i < len(q.c) {
			out[i].Add(out[i], q.c[i])
		}
		out[i].Mod(out[i], p.t)
	}
	return fpoly{c: out, t: p.t}.normalize()
}

func (p fpoly) sub(q fpoly) fpoly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		out[i] = new(big.Int)
		if i < len(p.c) {
			out[i].Add(out[i], p.c[i])
		}
		if i < len(q.c) {
			out[i].Sub(out[i], q.c[i])
		}
		out[i].Mod(out[i], p.t)
	}
	return fpoly{c: out, t: p.t}.normalize()
}

func (p fpoly) mul(q fpoly) fpoly {
	if p.isZero() || q.isZero() {
		return fzero(p.t)
	}
	out := make([]*big.Int, len(p.c)+len(q.c)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, a := range p.c {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.c {
			tmp.Mul(a, b)
			out[i+j].Add(out[i+j], tmp)
		}
	}
	for i := range out {
		out[i].Mod(out[i], p.t)
	}
	return fpoly{c: out, t: p.t}.normalize()
}

func (p fpoly) scale(s *big.Int) fpoly {
	out := make([]*big.Int, len(p.c))
	for i, a := range p.c {
		out[i] = new(big.Int).Mul(a, s)
		out[i].Mod(out[i], p.t)
	}
	return fpoly{c: out, t: p.t}.normalize()
}

// divmod returns (quotient, remainder) of p / q over F_t. q must be non-zero.
func (p fpoly) divmod(q fpoly) (quot, rem fpoly) {
	if q.isZero() {
		panic("numtheory: division by zero polynomial")
	}
	rem = p.clone()
	degQ := q.degree()
	leadInv := new(big.Int).ModInverse(q.c[degQ], p.t)

	quotDeg := rem.degree() - degQ
	if quotDeg < 0 {
		return fzero(p.t), rem.normalize()
	}
	qc := make([]*big.Int, quotDeg+1)
	for i := range qc {
		qc[i] = new(big.Int)
	}

	coeff := new(big.Int)
	term := new(big.Int)
	for rem.degree() >= degQ && !rem.isZero() {
		deg := rem.degree()
		coeff.Mul(rem.c[deg], leadInv)
		coeff.Mod(coeff, p.t)
		qc[deg-degQ].Set(coeff)
		for i, qcoef := range q.c {
			term.Mul(coeff, qcoef)
			rem.c[deg-degQ+i].Sub(rem.c[deg-degQ+i], term)
			rem.c[deg-degQ+i].Mod(rem.c[deg-degQ+i], p.t)
		}
		rem = rem.normalize()
	}
	return fpoly{c: qc, t: p.t}.normalize(), rem
}

func (p fpoly) mod(q fpoly) fpoly {
	_, r := p.divmod(q)
	return r
}

// fgcd returns the monic gcd of p and q over F_t via the Euclidean algorithm.
func fgcd(p, q fpoly) fpoly {
	a, b := p, q
	for !b.isZero() {
		a, b = b, a.mod(b)
	}
	return a.makeMonic()
}

func (p fpoly) makeMonic() fpoly {
	if p.isZero() {
		return p
	}
	inv := new(big.Int).ModInverse(p.c[p.degree()], p.t)
	return p.scale(inv)
}

// fpowmod computes base^e mod f over F_t, via square-and-multiply.
func fpowmod(base fpoly, e *big.Int, f fpoly) fpoly {
	result := fone(base.t)
	b := base.mod(f)
	exp := new(big.Int).Set(e)
	zero := new(big.Int)
	two := big.NewInt(2)
	for exp.Cmp(zero) > 0 {
		if new(big.Int).And(exp, big.NewInt(1)).Sign() != 0 {
			result = result.mul(b).mod(f)
		}
		b = b.mul(b).mod(f)
		exp.Div(exp, two)
	}
	return result
}

// extendedGCDU returns (g, u) such that u*p + v*q = g = gcd(p, q), computing
// only the Bezout coefficient u (the one this package needs for polynomial
// inversion modulo a factor).
func extendedGCDU(p, q fpoly) (g, u fpoly) {
	t := p.t
	r0, r1 := p, q
	u0, u1 := fone(t), fzero(t)
	for !r1.isZero() {
		quot, rem := r0.divmod(r1)
		r0, r1 = r1, rem
		u0, u1 = u1, u0.sub(quot.mul(u1))
	}
	return r0, u0
}

// inverseMod returns p^{-1} mod f, assuming gcd(p, f) = 1.
func (p fpoly) inverseMod(f fpoly) (fpoly, bool) {
	g, u := extendedGCDU(p.mod(f), f)
	if g.degree() != 0 || g.isZero() {
		return fpoly{}, false
	}
	invLead := new(big.Int).ModInverse(g.c[0], p.t)
	return u.scale(invLead).mod(f), true
}

// randomFpoly draws a uniformly random polynomial of degree < n over F_t,
// using the supplied rng. This randomness is purely algorithmic (equal-degree
// factorisation splitting) and never touches secret data, so a
// non-cryptographic generator is appropriate here; NumberTheory is a leaf
// component with no access to the scheme's cryptographic sampler.
func randomFpoly(rng *rand.Rand, t *big.Int, n int) fpoly {
	c := make([]*big.Int, n)
	tInt64 := t.Int64()
	for i := range c {
		c[i] = big.NewInt(rng.Int63n(tInt64))
	}
	return fpoly{c: c, t: t}.normalize()
}
