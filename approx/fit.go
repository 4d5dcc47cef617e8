package approx

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/hmcol/graff/function"
	"github.com/hmcol/graff/poly"
	"github.com/hmcol/graff/utils/sampling"
)

// GradientDescentStep performs one step of gradient descent of the candidate
// polynomial p towards the target function f, against the mean-squared error
// sampled at sampleSize uniform points of the interval drawn from prng.
//
// For each coefficient c_k the sampled gradient is
//
//	g_k = mean[(p(x) - f(x)) * x^k]
//
// and the update is c_k <- c_k - stepSize*g_k. The factor 2 from the
// squared-error derivative is folded into stepSize. The input polynomial is
// not mutated; a new one is returned. Iteration, step-size schedules and
// termination are the caller's concern.
func GradientDescentStep(f function.Function, p poly.Polynomial, interval function.Interval, sampleSize int, stepSize float64, prng sampling.PRNG) poly.Polynomial {
	if sampleSize < 1 {
		panic(fmt.Sprintf("cannot GradientDescentStep: sampleSize (%d) < 1", sampleSize))
	}

	xs := sampling.Uniform(prng, interval.A, interval.B, sampleSize)
	grad := averageErrorGradient(f, p.Coeffs, xs)

	coeffs := make([]float64, len(p.Coeffs))
	for k := range coeffs {
		coeffs[k] = p.Coeffs[k] - stepSize*grad[k]
	}

	return poly.Polynomial{Coeffs: coeffs}
}

// averageErrorGradient returns the gradient of the error (p - f)^2 with
// respect to the coefficients of p, averaged over the sample points xs.
func averageErrorGradient(f function.Function, coeffs []float64, xs []float64) (grad []float64) {
	grad = make([]float64, len(coeffs))

	for _, x := range xs {
		fx := function.Evaluate(f, x)
		px := poly.Eval(coeffs, x)

		xk := 1.0
		for k := range grad {
			// d/dc_k (p_c(x) - f(x))^2 = 2*(p_c(x) - f(x)) * x^k,
			// with the 2 left to the step size
			grad[k] += (px - fx) * xk / float64(len(xs))
			xk *= x
		}
	}

	return
}

// MeanSquaredError returns the mean of (p(x) - f(x))^2 over the given
// sample points.
func MeanSquaredError(f function.Function, p poly.Polynomial, xs []float64) float64 {
	residuals := make([]float64, len(xs))
	for i, x := range xs {
		d := p.Evaluate(x) - function.Evaluate(f, x)
		residuals[i] = d * d
	}

	mse, err := stats.Mean(residuals)
	if err != nil {
		panic(fmt.Errorf("cannot MeanSquaredError: %w", err))
	}

	return mse
}
