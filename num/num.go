// Package num classifies the scalar types the lane and geometry packages
// are generic over, and provides their identities.
//
// The tiers are compile-time bounds only:
//
//   - Number: integers and floats, ordered, formattable, + - * /
//   - SignedNumber: Number with negation
//   - FloatNumber: SignedNumber with square roots and trigonometry
package num

import (
	"math"

	"golang.org/x/exp/constraints"
	"golang.org/x/mobile/exp/f32"
)

type Number interface {
	constraints.Integer | constraints.Float
}

type SignedNumber interface {
	constraints.Signed | constraints.Float
}

type FloatNumber interface {
	constraints.Float
}

// Zero returns the additive identity of T.
func Zero[T Number]() T {
	return 0
}

// One returns the multiplicative identity of T.
func One[T Number]() T {
	return 1
}

// Sqrt returns the square root of x. Integer types truncate the result.
func Sqrt[T Number](x T) T {
	if v, ok := any(x).(float32); ok {
		return T(f32.Sqrt(v))
	}

	return T(math.Sqrt(float64(x)))
}

// Sincos returns sin(angle) and cos(angle).
func Sincos[T FloatNumber](angle T) (sin, cos T) {
	if v, ok := any(angle).(float32); ok {
		return T(f32.Sin(v)), T(f32.Cos(v))
	}

	s, c := math.Sincos(float64(angle))
	return T(s), T(c)
}

func Abs[T SignedNumber](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// Round rounds half away from zero.
func Round[T FloatNumber](x T) T {
	return T(math.Round(float64(x)))
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual[T FloatNumber](a, b, eps T) bool {
	return Abs(a-b) <= eps
}
