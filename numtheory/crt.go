package numtheory

import (
	"errors"
	"math/big"
)

// CRT reconstructs the unique polynomial p of degree < n = len(phiLow) with
// p ≡ values[i]·1 (mod factors[i]) for every i, using Lagrange-style CRT:
// p = Σ values[i]·(Φ/Φ_i)·((Φ/Φ_i)^{-1} mod Φ_i). Slots beyond len(values)
// are treated as zero. Returns InvalidParameter-style errors (as plain
// errors; the caller wraps them into the scheme's error kinds) if the
// factor set does not multiply to Φ modulo t, or a required inverse does
// not exist.
func CRT(factors []Factor, values []*big.Int, phiLow []*big.Int, t *big.Int) ([]*big.Int, error) {
	n := len(phiLow)
	if len(values) > len(factors) {
		return nil, errors.New("numtheory: more values than available slots")
	}

	phi := newFpoly(t, append(append([]*big.Int{}, phiLow...), big.NewInt(1)))

	if err := checkFactorsMultiplyToPhi(factors, phi, t); err != nil {
		return nil, err
	}

	sum := fzero(t)
	for i, fac := range factors {
		if i >= len(values) || values[i].Sign() == 0 {
			continue
		}
		phiI := newFpoly(t, fac.Coeffs)

		quot, rem := phi.divmod(phiI)
		if !rem.isZero() {
			return nil, errors.New("numtheory: factor does not divide Φ modulo t")
		}

		inv, ok := quot.mod(phiI).inverseMod(phiI)
		if !ok {
			return nil, errors.New("numtheory: CRT inverse does not exist for one of the factors")
		}

		term := quot.mul(inv).scale(new(big.Int).Mod(values[i], t))
		sum = sum.add(term)
	}

	out := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		if i < len(sum.c) {
			out[i] = new(big.Int).Set(sum.c[i])
		} else {
			out[i] = new(big.Int)
		}
	}
	return out, nil
}

// ReduceConstant reduces p modulo t and modulo the given factor, and
// returns the constant coefficient of the remainder in Z_t. Used by Batch
// to decode one slot: decryptBatch's contract is "p mod Φ_i reduced to its
// constant term", independent of whether the remainder is, as expected for
// a correctly CRT-packed p, purely constant.
func ReduceConstant(p []*big.Int, f Factor, t *big.Int) *big.Int {
	pf := newFpoly(t, p)
	fi := newFpoly(t, f.Coeffs)
	_, rem := pf.divmod(fi)
	if rem.isZero() {
		return big.NewInt(0)
	}
	return new(big.Int).Set(rem.c[0])
}

func checkFactorsMultiplyToPhi(factors []Factor, phi fpoly, t *big.Int) error {
	product := fone(t)
	for _, fac := range factors {
		product = product.mul(newFpoly(t, fac.Coeffs))
	}
	if product.degree() != phi.degree() {
		return errors.New("numtheory: factor set does not multiply to Φ modulo t")
	}
	for i := range product.c {
		if product.c[i].Cmp(phi.c[i]) != 0 {
			return errors.New("numtheory: factor set does not multiply to Φ modulo t")
		}
	}
	return nil
}
