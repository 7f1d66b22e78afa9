package ring

import "math/big"

// bpoly is a plain polynomial over Z_M (M not assumed prime — ModInverse
// calls below simply fail, surfacing as "not invertible", when a pivot
// shares a factor with M), coefficients low-to-high, trimmed of trailing
// zeros. Used only by Invert's extended-Euclidean computation; unlike
// Modulus.Mul it is not reduced against Φ, since Invert needs genuine
// polynomial long division by Φ itself.
type bpoly struct {
	c []*big.Int
	m *big.Int
}

func (p bpoly) trim() bpoly {
	n := len(p.c)
	for n > 0 && p.c[n-1].Sign() == 0 {
		n--
	}
	return bpoly{c: p.c[:n], m: p.m}
}

func (p bpoly) degree() int  { return len(p.c) - 1 }
func (p bpoly) isZero() bool { return len(p.c) == 0 }

func bpZero(m *big.Int) bpoly { return bpoly{m: m} }
func bpOne(m *big.Int) bpoly  { return bpoly{c: []*big.Int{big.NewInt(1)}, m: m} }

func (p bpoly) sub(q bpoly) bpoly {
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
		out[i].Mod(out[i], p.m)
	}
	return bpoly{c: out, m: p.m}.trim()
}

func (p bpoly) mul(q bpoly) bpoly {
	if p.isZero() || q.isZero() {
		return bpZero(p.m)
	}
	out := make([]*big.Int, len(p.c)+len(q.c)-1)
	for i := range out {
		out[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i, a := range p.c {
		for j, b := range q.c {
			tmp.Mul(a, b)
			out[i+j].Add(out[i+j], tmp)
		}
	}
	for i := range out {
		out[i].Mod(out[i], p.m)
	}
	return bpoly{c: out, m: p.m}.trim()
}

func (p bpoly) scale(s *big.Int) bpoly {
	out := make([]*big.Int, len(p.c))
	for i, a := range p.c {
		out[i] = new(big.Int).Mul(a, s)
		out[i].Mod(out[i], p.m)
	}
	return bpoly{c: out, m: p.m}.trim()
}

// divmod returns (quotient, remainder) of p / q, assuming q's leading
// coefficient is invertible mod m. Returns ok=false otherwise.
func (p bpoly) divmod(q bpoly) (quot, rem bpoly, ok bool) {
	degQ := q.degree()
	leadInv := new(big.Int).ModInverse(q.c[degQ], p.m)
	if leadInv == nil {
		return bpoly{}, bpoly{}, false
	}

	remC := make([]*big.Int, len(p.c))
	for i, c := range p.c {
		remC[i] = new(big.Int).Set(c)
	}
	r := bpoly{c: remC, m: p.m}.trim()

	quotDeg := r.degree() - degQ
	if quotDeg < 0 {
		return bpZero(p.m), r, true
	}
	qc := make([]*big.Int, quotDeg+1)
	for i := range qc {
		qc[i] = new(big.Int)
	}

	coeff, term := new(big.Int), new(big.Int)
	for r.degree() >= degQ && !r.isZero() {
		deg := r.degree()
		coeff.Mul(r.c[deg], leadInv)
		coeff.Mod(coeff, p.m)
		qc[deg-degQ].Set(coeff)
		for i, qcoef := range q.c {
			term.Mul(coeff, qcoef)
			r.c[deg-degQ+i].Sub(r.c[deg-degQ+i], term)
			r.c[deg-degQ+i].Mod(r.c[deg-degQ+i], p.m)
		}
		r = r.trim()
	}
	return bpoly{c: qc, m: p.m}.trim(), r, true
}

// Invert returns p^{-1} mod (M, Φ) via the extended Euclidean algorithm on
// p and Φ over Z_M[x], and whether the inverse exists. It requires M prime
// for the ring Z_M[x]/Φ(x) to be guaranteed a field when Φ is irreducible;
// for M composite, a ModInverse failure on some pivot simply surfaces as
// "not invertible", which is the signal KeyGen already resamples on.
func (r *Modulus) Invert(p Poly) (Poly, bool) {
	n := r.N
	phiC := make([]*big.Int, n+1)
	for i, c := range r.Phi() {
		phiC[i] = c
	}
	phiC[n] = big.NewInt(1)
	phi := bpoly{c: phiC, m: r.M}.trim()

	pc := make([]*big.Int, n)
	for i, c := range p {
		pc[i] = new(big.Int).Set(c)
	}
	a := bpoly{c: pc, m: r.M}.trim()
	b := phi

	u0, u1 := bpOne(r.M), bpZero(r.M)
	for !b.isZero() {
		quot, rem, ok := a.divmod(b)
		if !ok {
			return nil, false
		}
		a, b = b, rem
		u0, u1 = u1, u0.sub(quot.mul(u1))
	}

	if a.degree() != 0 || a.isZero() {
		return nil, false
	}
	invLead := new(big.Int).ModInverse(a.c[0], r.M)
	if invLead == nil {
		return nil, false
	}
	inv := u0.scale(invLead)

	out := r.NewPoly()
	for i := 0; i < n && i < len(inv.c); i++ {
		out[i].Set(inv.c[i])
	}
	return r.Reduce(out), true
}
