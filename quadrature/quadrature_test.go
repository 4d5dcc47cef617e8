package quadrature_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hmcol/graff/function"
	"github.com/hmcol/graff/quadrature"
)

// integral of e^(-x^2) over [0, 1]
const gaussRef = 0.746824132812

func gaussian() function.Function {
	return function.Exp(function.Neg(function.PowI(function.X, 2)))
}

func TestIntegrate(t *testing.T) {
	f := gaussian()
	interval := function.Interval{A: 0, B: 1}

	for _, tc := range []struct {
		name   string
		method func(int) quadrature.Method
	}{
		{"Midpoint", quadrature.Midpoint},
		{"Trapezoidal", quadrature.Trapezoidal},
		{"CompositeTrapezoidal", quadrature.CompositeTrapezoidal},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got := quadrature.Integrate(f, interval, tc.method(1000))
			require.InDelta(t, gaussRef, got, 1e-6)
		})
	}
}

func TestConvergence(t *testing.T) {
	f := gaussian()
	interval := function.Interval{A: 0, B: 1}

	prev := math.Inf(1)
	for _, n := range []int{10, 100, 1000, 10000} {
		got := quadrature.Integrate(f, interval, quadrature.CompositeTrapezoidal(n))
		err := math.Abs(got - gaussRef)

		require.Less(t, err, prev, "error did not decrease at n = %d", n)
		prev = err
	}
}

func TestTrapezoidalRulesAgree(t *testing.T) {
	// the composite rule is an evaluation-count optimization, not a
	// different quadrature
	f := function.Sin(function.X)
	interval := function.Interval{A: -0.5, B: 2}

	for _, n := range []int{1, 2, 7, 100} {
		a := quadrature.Integrate(f, interval, quadrature.Trapezoidal(n))
		b := quadrature.Integrate(f, interval, quadrature.CompositeTrapezoidal(n))
		require.InDelta(t, a, b, 1e-12)
	}
}

func TestInnerProduct(t *testing.T) {
	// <e^(-x^2), 1-x> over [-1, 1]
	f := gaussian()
	g := function.Sub(function.Const(1), function.X)

	got := quadrature.InnerProduct(f, g, function.Interval{A: -1, B: 1}, quadrature.CompositeTrapezoidal(10000))
	require.InDelta(t, 1.493648265624854, got, 1e-6)
}

func TestInvalidSubdivisions(t *testing.T) {
	require.Panics(t, func() { quadrature.Midpoint(0) })
	require.Panics(t, func() { quadrature.Trapezoidal(0) })
	require.Panics(t, func() { quadrature.CompositeTrapezoidal(-1) })

	// the zero Method is rejected before any evaluation
	require.Panics(t, func() {
		quadrature.Integrate(function.X, function.Interval{A: 0, B: 1}, quadrature.Method{})
	})
}
