package ring

import "math/big"

// RoundDiv computes round(num/den) in the exact big-integer domain: it never
// goes through float64. Ties (2·remainder == den) round down, matching the
// scheme's documented rounding convention.
//
// den must be positive; num may be of either sign (callers always pass a
// non-negative numerator here, since every coefficient involved is already
// a canonical representative in [0, modulus)).
func RoundDiv(num, den *big.Int) *big.Int {
	quot, rem := new(big.Int), new(big.Int)
	quot.QuoRem(num, den, rem)

	doubled := new(big.Int).Lsh(rem, 1)
	doubled.Abs(doubled)
	if doubled.Cmp(den) > 0 {
		if num.Sign() < 0 {
			quot.Sub(quot, big.NewInt(1))
		} else {
			quot.Add(quot, big.NewInt(1))
		}
	}
	return quot
}
