package poly

import (
	"fmt"
	"math/big"

	"github.com/hmcol/graff/utils/bignum"
)

// precision used when forming the Rodrigues normalization 1/(2^k * k!).
const legendrePrec = 128

// Legendre returns the k-th Legendre polynomial, built from the Rodrigues
// formula: differentiate (x^2 - 1)^k k times and scale by 1/(2^k * k!).
// The normalization is formed in big.Float and rounded once, so it stays
// exact even where 2^k * k! overflows float64.
func Legendre(k int) Polynomial {
	if k < 0 {
		panic(fmt.Sprintf("cannot Legendre: k (%d) < 0", k))
	}

	// a(x) = x^2 - 1
	a := []float64{-1, 0, 1}

	// (x^2 - 1)^k
	coeffs := []float64{1}
	for i := 0; i < k; i++ {
		coeffs = Mul(coeffs, a)
	}

	// d^k/dx^k (x^2 - 1)^k
	for i := 0; i < k; i++ {
		coeffs = Derivative(coeffs)
	}

	// 1 / (2^k * k!)
	den := bignum.Pow(bignum.NewFloat(2, legendrePrec), bignum.NewFloat(k, legendrePrec))
	den.Mul(den, bignum.Factorial(k, legendrePrec))
	scalar, _ := new(big.Float).Quo(bignum.NewFloat(1, legendrePrec), den).Float64()

	return Polynomial{Coeffs: Scale(coeffs, scalar)}
}
