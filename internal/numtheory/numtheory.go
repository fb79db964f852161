package numtheory

import (
	"errors"
	"math/big"
)

// ErrNoInverse is returned when the modular inverse does not exist,
// i.e. gcd(a, m) != 1.
var ErrNoInverse = errors.New("modular inverse does not exist")

var one = big.NewInt(1)

// ExtendedGCD computes the extended Euclidean algorithm for a and b.
// It returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
//
// The implementation is iterative so that adversarially large inputs
// cannot grow the call stack. The returned coefficients may be negative.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	// Invariant maintained throughout:
	//   oldR = a*oldS + b*oldT
	//   r    = a*s    + b*t
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)

	for r.Sign() != 0 {
		q.Div(oldR, r)

		tmp.Mul(q, r)
		oldR.Sub(oldR, tmp)
		oldR, r = r, oldR

		tmp.Mul(q, s)
		oldS.Sub(oldS, tmp)
		oldS, s = s, oldS

		tmp.Mul(q, t)
		oldT.Sub(oldT, tmp)
		oldT, t = t, oldT
	}

	return oldR, oldS, oldT
}

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	g, _, _ := ExtendedGCD(new(big.Int).Abs(a), new(big.Int).Abs(b))
	return g
}

// ModInverse computes a^-1 mod m, the integer x in [0, m-1] such that
// a*x ≡ 1 (mod m). It returns ErrNoInverse when gcd(a, m) != 1.
// m must be positive.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	g, x, _ := ExtendedGCD(a, m)
	if g.Cmp(one) != 0 {
		return nil, ErrNoInverse
	}
	// The Bézout coefficient may be negative; normalize into [0, m-1].
	x.Mod(x, m)
	return x, nil
}

// ModExp computes base^exp mod modulus by left-to-right square-and-multiply.
// exp must be non-negative and modulus must be positive; a modulus of 1
// always yields 0. Operands of hundreds of bits are supported.
func ModExp(base, exp, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) == 0 {
		return big.NewInt(0)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)

	for i := exp.BitLen() - 1; i >= 0; i-- {
		result.Mul(result, result)
		result.Mod(result, modulus)
		if exp.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
	}

	return result
}
