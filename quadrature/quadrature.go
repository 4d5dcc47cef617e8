// Package quadrature implements deterministic numerical integration of
// symbolic functions over a bounded interval, with a closed set of rules:
// midpoint, trapezoidal, and composite trapezoidal.
package quadrature

import (
	"fmt"

	"github.com/hmcol/graff/function"
)

type rule int

const (
	midpoint rule = iota
	trapezoidal
	compositeTrapezoidal
)

// Method selects a quadrature rule together with its subdivision count.
// A Method is built with [Midpoint], [Trapezoidal] or [CompositeTrapezoidal];
// the zero Method is invalid.
type Method struct {
	rule rule
	n    int
}

// Midpoint returns the midpoint rule with n subintervals. Panics if n < 1.
func Midpoint(n int) Method {
	checkSubdivisions("Midpoint", n)
	return Method{rule: midpoint, n: n}
}

// Trapezoidal returns the trapezoidal rule with n subintervals. Panics if n < 1.
func Trapezoidal(n int) Method {
	checkSubdivisions("Trapezoidal", n)
	return Method{rule: trapezoidal, n: n}
}

// CompositeTrapezoidal returns the composite trapezoidal rule with n
// subintervals. It integrates identically to [Trapezoidal] but evaluates the
// integrand n+1 times instead of 2n, so prefer it when evaluation is
// expensive. Panics if n < 1.
func CompositeTrapezoidal(n int) Method {
	checkSubdivisions("CompositeTrapezoidal", n)
	return Method{rule: compositeTrapezoidal, n: n}
}

func checkSubdivisions(name string, n int) {
	if n < 1 {
		panic(fmt.Sprintf("cannot %s: subdivision count (%d) < 1", name, n))
	}
}

// Integrate approximates the integral of f over the interval using the
// given method. Panics on the zero Method.
func Integrate(f function.Function, interval function.Interval, method Method) float64 {
	if method.n < 1 {
		panic("cannot Integrate: invalid zero Method")
	}

	switch method.rule {
	case midpoint:
		return intMidpoint(f, interval, method.n)
	case trapezoidal:
		return intTrapezoidal(f, interval, method.n)
	case compositeTrapezoidal:
		return intCompositeTrapezoidal(f, interval, method.n)
	}
	panic(fmt.Sprintf("cannot Integrate: unknown rule %d", method.rule))
}

// InnerProduct approximates the function-space inner product
// <f, g> = integral of f*g over the interval.
func InnerProduct(f, g function.Function, interval function.Interval, method Method) float64 {
	return Integrate(function.Mul(function.Clone(f), function.Clone(g)), interval, method)
}

// intMidpoint sums f at the midpoint of each of the n subintervals.
func intMidpoint(f function.Function, interval function.Interval, n int) float64 {
	delta := (interval.B - interval.A) / float64(n)

	// sample point in the middle of the first subinterval
	x0 := interval.A + delta/2

	var sum float64
	for i := 0; i < n; i++ {
		x := x0 + delta*float64(i)
		sum += function.Evaluate(f, x) * delta
	}
	return sum
}

// intTrapezoidal sums the trapezoid areas (f(x_i) + f(x_{i+1})) * delta/2
// over the n subintervals.
func intTrapezoidal(f function.Function, interval function.Interval, n int) float64 {
	delta := (interval.B - interval.A) / float64(n)

	var sum float64
	for i := 0; i < n; i++ {
		x0 := interval.A + delta*float64(i)
		x1 := interval.A + delta*float64(i+1)

		sum += (function.Evaluate(f, x0) + function.Evaluate(f, x1)) * delta / 2
	}
	return sum
}

// intCompositeTrapezoidal makes a single pass over the n+1 grid points,
// counting the two endpoints with weight 1/2 and every interior point with
// weight 1.
func intCompositeTrapezoidal(f function.Function, interval function.Interval, n int) float64 {
	delta := (interval.B - interval.A) / float64(n)

	var sum float64
	for i := 0; i <= n; i++ {
		fx := function.Evaluate(f, interval.A+delta*float64(i))

		if i == 0 || i == n {
			fx /= 2
		}

		sum += fx * delta
	}
	return sum
}
