package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

const TwoPi = 2 * math.Pi

// wrapFastPathTurns bounds how many turns are unwound by repeated addition before
// falling back to math.Mod
const wrapFastPathTurns = 64

// WrapAngle maps a into [0, 2π). NaN and infinities are returned unchanged.
func WrapAngle[T constraints.Float](a T) T {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return a
	}
	if f >= TwoPi*wrapFastPathTurns || f <= -TwoPi*wrapFastPathTurns {
		a = T(math.Mod(f, TwoPi))
	}
	for float64(a) < 0 {
		a += T(TwoPi)
	}
	for float64(a) >= TwoPi {
		a -= T(TwoPi)
	}
	return a
}

func Clamp[T constraints.Integer | constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Deg2Rad converts degrees to radians
func Deg2Rad[T constraints.Float](deg T) T {
	return deg * T(math.Pi/180)
}
