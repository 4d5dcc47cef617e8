package function

import (
	"math"

	"github.com/hmcol/graff/poly"
)

// The constructors below fold a fixed set of algebraic identities at
// construction time, most specific rule first, instead of rewriting trees
// after the fact. Repeated symbolic manipulation (differentiation in
// particular) multiplies tree size without this folding.

// Shorthands for the first three variables.
var (
	X Function = variable{index: 0}
	Y Function = variable{index: 1}
	Z Function = variable{index: 2}
)

// Var returns the function picking out the i-th variable of the input.
func Var(i int) Function {
	return variable{index: i}
}

// Const returns the constant function c.
func Const(c float64) Function {
	return constant{value: c}
}

// Add returns f + g.
func Add(f, g Function) Function {
	cf, fConst := f.(constant)
	cg, gConst := g.(constant)

	switch {
	case fConst && gConst:
		return constant{value: cf.value + cg.value}
	case fConst && cf.value == 0:
		return g
	case gConst && cg.value == 0:
		return f
	}

	return add{left: f, right: g}
}

// Sub returns f - g.
func Sub(f, g Function) Function {
	cf, fConst := f.(constant)
	cg, gConst := g.(constant)

	switch {
	case fConst && gConst:
		return constant{value: cf.value - cg.value}
	case gConst && cg.value == 0:
		return f
	case fConst && cf.value == 0:
		return Neg(g)
	}

	return sub{left: f, right: g}
}

// Neg returns -f.
func Neg(f Function) Function {
	switch f := f.(type) {
	case neg:
		return f.op
	case constant:
		return constant{value: -f.value}
	}

	return neg{op: f}
}

// Mul returns f * g.
func Mul(f, g Function) Function {
	cf, fConst := f.(constant)
	cg, gConst := g.(constant)

	switch {
	case fConst && gConst:
		return constant{value: cf.value * cg.value}
	case fConst && cf.value == 0, gConst && cg.value == 0:
		return constant{value: 0}
	case fConst && cf.value == 1:
		return g
	case gConst && cg.value == 1:
		return f
	}

	// a product of polynomials stays in the compact representation
	if pf, ok := f.(polynomial); ok {
		if pg, ok := g.(polynomial); ok {
			return Poly(poly.Mul(pf.coeffs, pg.coeffs)...)
		}
	}

	return mul{left: f, right: g}
}

// Div returns f / g. Division by the zero constant folds to the IEEE-754
// result, it is not a construction-time failure.
func Div(f, g Function) Function {
	cf, fConst := f.(constant)
	cg, gConst := g.(constant)

	switch {
	case fConst && gConst:
		return constant{value: cf.value / cg.value}
	case gConst && cg.value == 1:
		return f
	}

	return div{left: f, right: g}
}

// Sin returns sin(f).
func Sin(f Function) Function {
	if c, ok := f.(constant); ok {
		return constant{value: math.Sin(c.value)}
	}
	return sin{op: f}
}

// Cos returns cos(f).
func Cos(f Function) Function {
	if c, ok := f.(constant); ok {
		return constant{value: math.Cos(c.value)}
	}
	return cos{op: f}
}

// Tan returns tan(f).
func Tan(f Function) Function {
	if c, ok := f.(constant); ok {
		return constant{value: math.Tan(c.value)}
	}
	return tan{op: f}
}

// Exp returns e^f.
func Exp(f Function) Function {
	if c, ok := f.(constant); ok {
		return constant{value: math.Exp(c.value)}
	}
	return exp{op: f}
}

// Log returns the natural logarithm of f.
func Log(f Function) Function {
	if c, ok := f.(constant); ok {
		return constant{value: math.Log(c.value)}
	}
	return log{op: f}
}

// PowI returns f^n for integer n.
func PowI(f Function, n int) Function {
	if c, ok := f.(constant); ok {
		return constant{value: math.Pow(c.value, float64(n))}
	}

	switch n {
	case 0:
		return constant{value: 1}
	case 1:
		return f
	}

	return powInt{op: f, n: n}
}

// Poly returns the polynomial sum coeffs[k] * x_0^k. Trailing zero
// coefficients are stripped; a polynomial of length <= 1 degenerates to a
// constant, so a Poly node always has degree >= 1.
func Poly(coeffs ...float64) Function {
	trimmed := poly.Trim(coeffs)

	switch len(trimmed) {
	case 0:
		return constant{value: 0}
	case 1:
		return constant{value: trimmed[0]}
	}

	c := make([]float64, len(trimmed))
	copy(c, trimmed)

	return polynomial{coeffs: c}
}

// FromPolynomial converts a dense-coefficient polynomial to its expression
// form, applying the usual Poly canonicalization.
func FromPolynomial(p poly.Polynomial) Function {
	return Poly(p.Coeffs...)
}

// Sum returns the n-ary sum of fs, evaluated by direct fold. Unlike the
// binary constructors it performs no simplification: it is an accumulation
// point for symbolic manipulation, where eager folding would be wasteful.
func Sum(fs ...Function) Function {
	out := make([]Function, len(fs))
	copy(out, fs)
	return sum{fs: out}
}

// Prod returns the n-ary product of fs, evaluated by direct fold. Like Sum
// it performs no simplification.
func Prod(fs ...Function) Function {
	out := make([]Function, len(fs))
	copy(out, fs)
	return prod{fs: out}
}

// PolyFn returns a polynomial in x_j whose coefficients are themselves
// functions, possibly of other variables: sum coeffs[k](x) * x_j^k.
func PolyFn(coeffs []Function, j int) Function {
	out := make([]Function, len(coeffs))
	copy(out, coeffs)
	return polyFn{coeffs: out, index: j}
}
