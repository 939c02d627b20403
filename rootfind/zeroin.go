// Package rootfind locates zeros of scalar functions.
package rootfind

import (
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the relative precision assumed for float32 arithmetic (2^-16)
const Epsilon float32 = 1.0 / 65536

// MaxIterations caps the main loop of Zeroin. Smooth functions converge in
// well under 30 iterations at float32 precision.
const MaxIterations = 100

// ErrNoConvergence is returned together with the best estimate when
// MaxIterations is reached
var ErrNoConvergence = errors.New("rootfind: no convergence within iteration limit")

// Zeroin returns an estimate of a zero of f inside [ax, bx], accurate to
// 4*Epsilon*|x| + tol. f(ax) and f(bx) must bracket the zero; an invalid
// bracket yields an arbitrary point of the interval.
//
// Bisection is combined with linear or inverse quadratic interpolation
// (Forsythe, Malcolm, Moler). Three abscissae are tracked: b is the best
// approximation, a the previous one and c the point bracketing the zero
// with b.
func Zeroin(ax, bx float32, f func(float32) float32, tol float32) (float32, error) {
	a, b := ax, bx
	fa, fb := f(a), f(b)
	assertBracket(fa, fb)
	c, fc := a, fa

	for iter := 0; iter < MaxIterations; iter++ {
		prevStep := b - a

		if abs32(fc) < abs32(fb) {
			// Keep b as the best approximation
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tolAct := 2*Epsilon*abs32(b) + tol/2
		newStep := (c - b) / 2

		if abs32(newStep) <= tolAct || fb == 0 {
			return b, nil
		}

		// Interpolate only if the previous step was large enough and went
		// the right way
		if abs32(prevStep) >= tolAct && abs32(fa) > abs32(fb) {
			var p, q float32
			cb := c - b
			if a == c {
				// Two distinct points: secant
				t1 := fb / fa
				p = cb * t1
				q = 1 - t1
			} else {
				// Inverse quadratic
				q = fa / fc
				t1 := fb / fc
				t2 := fb / fa
				p = t2 * (cb*q*(q-t1) - (b-a)*(t1-1))
				q = (q - 1) * (t1 - 1) * (t2 - 1)
			}
			if p > 0 {
				q = -q
			} else {
				p = -p
			}

			// Accept b+p/q only if it stays well inside [b,c] and shrinks the step
			bound := float64(0.75*cb*q) - math.Abs(float64(tolAct*q))/2
			if float64(p) < bound && p < abs32(prevStep*q/2) {
				newStep = p / q
			}
		}

		if abs32(newStep) < tolAct {
			if newStep > 0 {
				newStep = tolAct
			} else {
				newStep = -tolAct
			}
		}

		a, fa = b, fb
		b += newStep
		fb = f(b)
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			// Re-bracket so that b and c straddle the zero
			c, fc = a, fa
		}
	}

	return b, ErrNoConvergence
}

func abs32(x float32) float32 {
	return float32(math.Abs(float64(x)))
}
