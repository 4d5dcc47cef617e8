package function

import (
	"fmt"

	"github.com/hmcol/graff/poly"
)

// Pdv returns the partial derivative of f with respect to the i-th variable
// as a new tree; the input is untouched. Derivatives are total: every
// variant has a closed-form rule and there is no failure path.
//
// The result is built through the simplifying constructors, so the usual
// identity and constant folds keep it compact.
func Pdv(f Function, i int) Function {
	switch f := f.(type) {
	case variable:
		if f.index == i {
			return Const(1)
		}
		return Const(0)
	case constant:
		return Const(0)
	case add:
		return Add(Pdv(f.left, i), Pdv(f.right, i))
	case sub:
		return Sub(Pdv(f.left, i), Pdv(f.right, i))
	case neg:
		return Neg(Pdv(f.op, i))
	case mul:
		// product rule
		return Add(
			Mul(Pdv(f.left, i), Clone(f.right)),
			Mul(Clone(f.left), Pdv(f.right, i)),
		)
	case div:
		// quotient rule
		return Div(
			Sub(
				Mul(Pdv(f.left, i), Clone(f.right)),
				Mul(Clone(f.left), Pdv(f.right, i)),
			),
			Mul(Clone(f.right), Clone(f.right)),
		)
	case sin:
		return Mul(Cos(Clone(f.op)), Pdv(f.op, i))
	case cos:
		return Mul(Neg(Sin(Clone(f.op))), Pdv(f.op, i))
	case tan:
		// sec^2 = 1/cos^2
		return Mul(Div(Const(1), PowI(Cos(Clone(f.op)), 2)), Pdv(f.op, i))
	case exp:
		return Mul(Exp(Clone(f.op)), Pdv(f.op, i))
	case log:
		return Mul(Div(Const(1), Clone(f.op)), Pdv(f.op, i))
	case sum:
		ds := make([]Function, len(f.fs))
		for j, g := range f.fs {
			ds[j] = Pdv(g, i)
		}
		return Sum(ds...)
	case prod:
		// generalized product rule: sum over j of fs[j]' * prod(fs with j removed)
		summands := make([]Function, len(f.fs))
		for j := range f.fs {
			factors := make([]Function, 0, len(f.fs)-1)
			for k, g := range f.fs {
				if k != j {
					factors = append(factors, Clone(g))
				}
			}
			summands[j] = Mul(Pdv(f.fs[j], i), Prod(factors...))
		}
		return Sum(summands...)
	case powInt:
		// power rule: n * f^(n-1) * f'
		return Mul(
			Const(float64(f.n)),
			Mul(PowI(Clone(f.op), f.n-1), Pdv(f.op, i)),
		)
	case polynomial:
		if i != 0 {
			return Const(0)
		}
		return Poly(poly.Derivative(f.coeffs)...)
	case polyFn:
		// per term c_k(x) * x_j^k: product rule plus the chain factor on
		// x_j^k, which is nonzero only when differentiating with respect
		// to x_j itself.
		terms := make([]Function, len(f.coeffs))
		for k, c := range f.coeffs {
			d := Mul(Pdv(c, i), PowI(Var(f.index), k))
			if i == f.index && k >= 1 {
				d = Add(d, Mul(
					Clone(c),
					Mul(Const(float64(k)), PowI(Var(f.index), k-1)),
				))
			}
			terms[k] = d
		}
		return Sum(terms...)
	}
	panic(fmt.Sprintf("cannot Pdv: unknown variant %T", f))
}
