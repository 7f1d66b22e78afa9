package ring

import "math/big"

// Modulus is a precomputed reduction context for the ring Z_m[x]/Φ(x): a
// coefficient modulus m paired with the cyclotomic reduction polynomial Φ.
// A Modulus is built once (CycloMod_q, CycloMod_Q, CycloMod_t in the scheme
// vocabulary) and is read-only for the rest of its lifetime; every
// arithmetic method takes its receiver explicitly rather than relying on
// ambient state.
type Modulus struct {
	M *big.Int // coefficient modulus
	N int      // ring degree, = deg Φ = len(Phi())

	// low holds the reduction relation x^N ≡ Σ low[i]·x^i (mod M), derived
	// from Φ(x) = x^N + Σ phi[i]·x^i, i.e. low[i] = -phi[i] mod M.
	low []*big.Int
}

// NewModulus builds a reduction context for modulus m and reduction
// polynomial phiLow (coefficients low-to-high, the leading coefficient of
// x^N implicitly 1, i.e. phiLow has length N and holds Φ's coefficients
// below the leading term).
func NewModulus(m *big.Int, phiLow []*big.Int) *Modulus {
	n := len(phiLow)
	low := make([]*big.Int, n)
	for i, c := range phiLow {
		low[i] = new(big.Int).Neg(c)
		low[i].Mod(low[i], m)
	}
	return &Modulus{M: m, N: n, low: low}
}

// NewPoly allocates a zero polynomial of degree < N under this modulus.
func (r *Modulus) NewPoly() Poly {
	return NewPoly(r.N)
}

// reduceCoeffs canonicalises every coefficient of p into [0, M).
func (r *Modulus) reduceCoeffs(p Poly) {
	for _, c := range p {
		c.Mod(c, r.M)
	}
}

// Reduce returns p reduced modulo Φ(x) and M: a canonical representative of
// degree < N with coefficients in [0, M).
func (r *Modulus) Reduce(p Poly) Poly {
	out := make(Poly, len(p))
	for i, c := range p {
		out[i] = new(big.Int).Set(c)
	}
	out = r.reduceWide(out)
	r.reduceCoeffs(out)
	return out
}

// reduceWide folds coefficients at index >= N back into [0, N) using the
// relation x^N ≡ Σ low[i]·x^i, processing from the highest degree down so
// that a single pass fully eliminates every term of degree >= N.
func (r *Modulus) reduceWide(p Poly) Poly {
	n := r.N
	if len(p) <= n {
		out := make(Poly, n)
		for i := range out {
			if i < len(p) {
				out[i] = new(big.Int).Set(p[i])
			} else {
				out[i] = new(big.Int)
			}
		}
		return out
	}

	work := make(Poly, len(p))
	for i, c := range p {
		work[i] = new(big.Int).Set(c)
	}

	tmp := new(big.Int)
	for deg := len(work) - 1; deg >= n; deg-- {
		c := work[deg]
		if c.Sign() == 0 {
			continue
		}
		for i := 0; i < n; i++ {
			tmp.Mul(c, r.low[i])
			work[deg-n+i].Add(work[deg-n+i], tmp)
		}
	}
	return work[:n]
}

// Zero returns the zero polynomial.
func (r *Modulus) Zero() Poly {
	return r.NewPoly()
}

// Add returns a + b (mod M, Φ).
func (r *Modulus) Add(a, b Poly) Poly {
	out := r.NewPoly()
	for i := range out {
		out[i].Add(a[i], b[i])
		out[i].Mod(out[i], r.M)
	}
	return out
}

// Sub returns a - b (mod M, Φ).
func (r *Modulus) Sub(a, b Poly) Poly {
	out := r.NewPoly()
	for i := range out {
		out[i].Sub(a[i], b[i])
		out[i].Mod(out[i], r.M)
	}
	return out
}

// Neg returns -a (mod M).
func (r *Modulus) Neg(a Poly) Poly {
	out := r.NewPoly()
	for i := range out {
		out[i].Neg(a[i])
		out[i].Mod(out[i], r.M)
	}
	return out
}

// MulScalar returns a·s (mod M, Φ), s an arbitrary integer.
func (r *Modulus) MulScalar(a Poly, s *big.Int) Poly {
	out := r.NewPoly()
	for i := range out {
		out[i].Mul(a[i], s)
		out[i].Mod(out[i], r.M)
	}
	return out
}

// Mul returns a·b (mod M, Φ): schoolbook convolution followed by reduction.
func (r *Modulus) Mul(a, b Poly) Poly {
	n := r.N
	wide := make(Poly, 2*n-1)
	for i := range wide {
		wide[i] = new(big.Int)
	}
	tmp := new(big.Int)
	for i := 0; i < n; i++ {
		if a[i].Sign() == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			if b[j].Sign() == 0 {
				continue
			}
			tmp.Mul(a[i], b[j])
			wide[i+j].Add(wide[i+j], tmp)
		}
	}
	out := r.reduceWide(wide)
	r.reduceCoeffs(out)
	return out
}

// Phi returns the N low-order coefficients of the reduction polynomial
// (Φ(x) = x^N + Σ Phi()[i]·x^i), reconstructed from the stored relation.
func (r *Modulus) Phi() []*big.Int {
	phi := make([]*big.Int, r.N)
	for i, c := range r.low {
		phi[i] = new(big.Int).Neg(c)
		phi[i].Mod(phi[i], r.M)
	}
	return phi
}
