// Package approx implements polynomial approximation of symbolic functions:
// projection onto the Legendre basis via quadrature, and gradient-descent
// fitting of polynomial coefficients against a target function.
package approx

import (
	"github.com/hmcol/graff/function"
	"github.com/hmcol/graff/poly"
	"github.com/hmcol/graff/quadrature"
)

// legendreInterval is the orthogonality interval of the Legendre basis.
var legendreInterval = function.Interval{A: -1, B: 1}

// Legendre returns the projection of f onto the first n Legendre basis
// polynomials on [-1, 1]:
//
//	sum_{k<n} a_k * L_k  with  a_k = (2k+1)/2 * <f, L_k>.
//
// The inner products are approximated with the given quadrature method, so
// accuracy is governed entirely by the method's subdivision count and by n.
func Legendre(f function.Function, n int, method quadrature.Method) function.Function {
	p := function.Const(0)

	for k := 0; k < n; k++ {
		lk := function.FromPolynomial(poly.Legendre(k))

		ip := quadrature.InnerProduct(f, lk, legendreInterval, method)

		// coefficient a_k for the k-th basis polynomial
		a := (2*float64(k) + 1) / 2 * ip

		p = function.Add(p, function.Mul(function.Const(a), lk))
	}

	return p
}
