// Package function implements a symbolic representation of scalar functions
// of one or more variables: an immutable expression tree with simplifying
// constructors, evaluation, interval sampling and symbolic differentiation.
//
// The variant set is closed. Every operation on a tree dispatches through an
// exhaustive type switch over the variants, so adding a variant requires
// revisiting each of them.
package function

import (
	"fmt"
	"math"

	"github.com/hmcol/graff/poly"
	"github.com/hmcol/graff/utils/sampling"
)

// Function is a symbolic scalar function of variables x_0, x_1, ...
// Trees are immutable once built: constructors return new trees and never
// modify their operands. Use [Clone] to duplicate a tree explicitly.
type Function interface {
	fmt.Stringer
	isFunction()
}

// Interval is a closed bounded interval [A, B] of the real line.
type Interval struct {
	A, B float64
}

// Point is a sample (X, f(X)) of a function of one variable.
type Point struct {
	X, Y float64
}

type variable struct{ index int }
type constant struct{ value float64 }
type add struct{ left, right Function }
type sub struct{ left, right Function }
type mul struct{ left, right Function }
type div struct{ left, right Function }
type neg struct{ op Function }
type sin struct{ op Function }
type cos struct{ op Function }
type tan struct{ op Function }
type exp struct{ op Function }
type log struct{ op Function }
type sum struct{ fs []Function }
type prod struct{ fs []Function }
type powInt struct {
	op Function
	n  int
}
type polynomial struct{ coeffs []float64 }
type polyFn struct {
	coeffs []Function
	index  int
}

func (variable) isFunction()   {}
func (constant) isFunction()   {}
func (add) isFunction()        {}
func (sub) isFunction()        {}
func (mul) isFunction()        {}
func (div) isFunction()        {}
func (neg) isFunction()        {}
func (sin) isFunction()        {}
func (cos) isFunction()        {}
func (tan) isFunction()        {}
func (exp) isFunction()        {}
func (log) isFunction()        {}
func (sum) isFunction()        {}
func (prod) isFunction()       {}
func (powInt) isFunction()     {}
func (polynomial) isFunction() {}
func (polyFn) isFunction()     {}

// Evaluate computes f at the point (args[0], args[1], ...).
//
// A variable whose index is out of range evaluates to 0.0; this is a
// documented leniency, callers that need strict bounds must validate their
// argument count beforehand. Division by zero and logarithms of non-positive
// values follow IEEE-754 semantics.
func Evaluate(f Function, args ...float64) float64 {
	switch f := f.(type) {
	case variable:
		if f.index >= 0 && f.index < len(args) {
			return args[f.index]
		}
		return 0
	case constant:
		return f.value
	case add:
		return Evaluate(f.left, args...) + Evaluate(f.right, args...)
	case sub:
		return Evaluate(f.left, args...) - Evaluate(f.right, args...)
	case mul:
		return Evaluate(f.left, args...) * Evaluate(f.right, args...)
	case div:
		return Evaluate(f.left, args...) / Evaluate(f.right, args...)
	case neg:
		return -Evaluate(f.op, args...)
	case sin:
		return math.Sin(Evaluate(f.op, args...))
	case cos:
		return math.Cos(Evaluate(f.op, args...))
	case tan:
		return math.Tan(Evaluate(f.op, args...))
	case exp:
		return math.Exp(Evaluate(f.op, args...))
	case log:
		return math.Log(Evaluate(f.op, args...))
	case sum:
		y := 0.0
		for _, g := range f.fs {
			y += Evaluate(g, args...)
		}
		return y
	case prod:
		y := 1.0
		for _, g := range f.fs {
			y *= Evaluate(g, args...)
		}
		return y
	case powInt:
		return math.Pow(Evaluate(f.op, args...), float64(f.n))
	case polynomial:
		var x float64
		if len(args) > 0 {
			x = args[0]
		}
		return poly.Eval(f.coeffs, x)
	case polyFn:
		var x float64
		if f.index >= 0 && f.index < len(args) {
			x = args[f.index]
		}
		y, xk := 0.0, 1.0
		for _, c := range f.coeffs {
			y += Evaluate(c, args...) * xk
			xk *= x
		}
		return y
	}
	panic(fmt.Sprintf("cannot Evaluate: unknown variant %T", f))
}

// Sample evaluates f as a function of x_0 at the steps+1 equidistributed
// points x_i = A + i*(B-A)/steps, i = 0..steps inclusive. The result is
// deterministic given deterministic inputs; it is the sequence handed to the
// drawing layer.
func Sample(f Function, interval Interval, steps int) (points []Point) {
	xs := sampling.Equidistributed(interval.A, interval.B, steps)

	points = make([]Point, len(xs))
	for i, x := range xs {
		points[i] = Point{X: x, Y: Evaluate(f, x)}
	}
	return
}

// Clone returns a deep copy of f sharing no nodes or slices with the input.
func Clone(f Function) Function {
	switch f := f.(type) {
	case variable:
		return f
	case constant:
		return f
	case add:
		return add{Clone(f.left), Clone(f.right)}
	case sub:
		return sub{Clone(f.left), Clone(f.right)}
	case mul:
		return mul{Clone(f.left), Clone(f.right)}
	case div:
		return div{Clone(f.left), Clone(f.right)}
	case neg:
		return neg{Clone(f.op)}
	case sin:
		return sin{Clone(f.op)}
	case cos:
		return cos{Clone(f.op)}
	case tan:
		return tan{Clone(f.op)}
	case exp:
		return exp{Clone(f.op)}
	case log:
		return log{Clone(f.op)}
	case sum:
		return sum{fs: cloneAll(f.fs)}
	case prod:
		return prod{fs: cloneAll(f.fs)}
	case powInt:
		return powInt{op: Clone(f.op), n: f.n}
	case polynomial:
		coeffs := make([]float64, len(f.coeffs))
		copy(coeffs, f.coeffs)
		return polynomial{coeffs: coeffs}
	case polyFn:
		return polyFn{coeffs: cloneAll(f.coeffs), index: f.index}
	}
	panic(fmt.Sprintf("cannot Clone: unknown variant %T", f))
}

func cloneAll(fs []Function) []Function {
	out := make([]Function, len(fs))
	for i, f := range fs {
		out[i] = Clone(f)
	}
	return out
}
