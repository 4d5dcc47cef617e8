// Package poly implements dense-coefficient polynomial arithmetic over
// float64: evaluation, scaling, convolution products, differentiation and
// canonicalization, together with the Legendre basis built from the
// Rodrigues formula.
package poly

import (
	"fmt"

	"github.com/hmcol/graff/utils/sampling"
)

// Polynomial is a polynomial sum c_k * x^k stored as its coefficients in
// ascending degree order. A Polynomial always has at least one coefficient.
//
// Operations never mutate their receiver; they return fresh coefficient
// slices so that successive fitting steps stay composable.
type Polynomial struct {
	Coeffs []float64
}

// NewPolynomial creates a new polynomial from the given coefficients, in
// ascending degree order: NewPolynomial(1, -2, 3) is 3x^2 - 2x + 1.
// Panics if no coefficient is given.
func NewPolynomial(coeffs ...float64) Polynomial {
	if len(coeffs) == 0 {
		panic("cannot NewPolynomial: empty coefficient list")
	}

	c := make([]float64, len(coeffs))
	copy(c, coeffs)

	return Polynomial{Coeffs: c}
}

// NewRandomPolynomial creates a polynomial of the given degree with
// coefficients drawn uniformly in [-1, 1) from prng.
func NewRandomPolynomial(prng sampling.PRNG, degree int) Polynomial {
	if degree < 0 {
		panic(fmt.Sprintf("cannot NewRandomPolynomial: degree (%d) < 0", degree))
	}

	coeffs := make([]float64, degree+1)
	for i := range coeffs {
		coeffs[i] = sampling.RandFloat64(prng, -1, 1)
	}

	return Polynomial{Coeffs: coeffs}
}

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	coeffs := make([]float64, len(p.Coeffs))
	copy(coeffs, p.Coeffs)
	return Polynomial{Coeffs: coeffs}
}

// Evaluate returns p(x).
func (p Polynomial) Evaluate(x float64) float64 {
	return Eval(p.Coeffs, x)
}

// Scale returns s * p.
func (p Polynomial) Scale(s float64) Polynomial {
	return Polynomial{Coeffs: Scale(p.Coeffs, s)}
}

// Mul returns p * q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	return Polynomial{Coeffs: Mul(p.Coeffs, q.Coeffs)}
}

// Derivative returns dp/dx. The derivative of a constant polynomial is the
// zero polynomial.
func (p Polynomial) Derivative() Polynomial {
	coeffs := Derivative(p.Coeffs)
	if len(coeffs) == 0 {
		coeffs = []float64{0}
	}
	return Polynomial{Coeffs: coeffs}
}

// Trim returns p with trailing exact-zero coefficients removed. The constant
// term is always kept, so the zero polynomial trims to [0].
func (p Polynomial) Trim() Polynomial {
	coeffs := Trim(p.Coeffs)
	if len(coeffs) == 0 {
		coeffs = []float64{0}
	}
	return Polynomial{Coeffs: coeffs}
}

// Eval returns sum coeffs[k] * x^k by direct summation.
func Eval(coeffs []float64, x float64) (y float64) {
	xk := 1.0
	for _, c := range coeffs {
		y += c * xk
		xk *= x
	}
	return
}

// Scale multiplies each coefficient by s.
func Scale(coeffs []float64, s float64) (out []float64) {
	out = make([]float64, len(coeffs))
	for i, c := range coeffs {
		out[i] = c * s
	}
	return
}

// Mul returns the discrete convolution of the two coefficient lists, i.e.
// the coefficients of the product polynomial. The result has length
// len(c1)+len(c2)-1.
func Mul(c1, c2 []float64) (out []float64) {
	if len(c1) == 0 || len(c2) == 0 {
		panic("cannot Mul: empty coefficient list")
	}

	out = make([]float64, len(c1)+len(c2)-1)
	for i, a := range c1 {
		for j, b := range c2 {
			out[i+j] += a * b
		}
	}
	return
}

// Derivative returns the coefficients of the derivative: the constant term
// is dropped and each remaining coefficient c_k becomes k*c_k at position
// k-1. The result is one coefficient shorter than the input, so
// differentiating a constant yields an empty list.
func Derivative(coeffs []float64) (out []float64) {
	if len(coeffs) <= 1 {
		return []float64{}
	}

	out = make([]float64, len(coeffs)-1)
	for k, c := range coeffs[1:] {
		out[k] = c * float64(k+1)
	}
	return
}

// Trim strips trailing exact-zero coefficients.
func Trim(coeffs []float64) []float64 {
	end := len(coeffs)
	for end > 0 && coeffs[end-1] == 0 {
		end--
	}
	return coeffs[:end]
}
