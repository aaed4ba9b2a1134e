package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/num"
)

// Vec3 is a packed three component vector without padding. Its memory
// layout is exactly three consecutive values of T, which makes it the
// type to use for interleaved and persisted data. Arithmetic heavy code
// should prefer Vec3Padded.
type Vec3[T numeric] [3]T

func SplatVec3[T numeric](value T) Vec3[T] {
	return Vec3[T]{value, value, value}
}

func (lhs Vec3[T]) X() T {
	return lhs[0]
}

func (lhs Vec3[T]) Y() T {
	return lhs[1]
}

func (lhs Vec3[T]) Z() T {
	return lhs[2]
}

func (lhs *Vec3[T]) SetX(x T) {
	lhs[0] = x
}

func (lhs *Vec3[T]) SetY(y T) {
	lhs[1] = y
}

func (lhs *Vec3[T]) SetZ(z T) {
	lhs[2] = z
}

// Get returns component i. It panics if i is not in [0, 3).
func (lhs Vec3[T]) Get(i int) T {
	checkComponent(i, 3)
	return lhs[i]
}

func (lhs *Vec3[T]) Set(i int, value T) {
	checkComponent(i, 3)
	lhs[i] = value
}

func (lhs Vec3[T]) XYZ() (x, y, z T) {
	x = lhs[0]
	y = lhs[1]
	z = lhs[2]
	return
}

func (lhs Vec3[T]) Add(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] + rhs[0],
		lhs[1] + rhs[1],
		lhs[2] + rhs[2],
	}
}

func (lhs Vec3[T]) Sub(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] - rhs[0],
		lhs[1] - rhs[1],
		lhs[2] - rhs[2],
	}
}

func (lhs Vec3[T]) Mul(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] * rhs[0],
		lhs[1] * rhs[1],
		lhs[2] * rhs[2],
	}
}

func (lhs Vec3[T]) Div(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0] / rhs[0],
		lhs[1] / rhs[1],
		lhs[2] / rhs[2],
	}
}

func (lhs Vec3[T]) MulScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs[0] * s,
		lhs[1] * s,
		lhs[2] * s,
	}
}

func (lhs Vec3[T]) DivScalar(s T) Vec3[T] {
	return Vec3[T]{
		lhs[0] / s,
		lhs[1] / s,
		lhs[2] / s,
	}
}

func (lhs Vec3[T]) Neg() Vec3[T] {
	return Vec3[T]{-lhs[0], -lhs[1], -lhs[2]}
}

func (lhs Vec3[T]) Min(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		min(lhs[0], rhs[0]),
		min(lhs[1], rhs[1]),
		min(lhs[2], rhs[2]),
	}
}

func (lhs Vec3[T]) Max(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		max(lhs[0], rhs[0]),
		max(lhs[1], rhs[1]),
		max(lhs[2], rhs[2]),
	}
}

func (lhs Vec3[T]) Lerp(rhs Vec3[T], t T) Vec3[T] {
	return lhs.Add(rhs.Sub(lhs).MulScalar(t))
}

func (lhs Vec3[T]) Dot(rhs Vec3[T]) T {
	return lhs[0]*rhs[0] + lhs[1]*rhs[1] + lhs[2]*rhs[2]
}

func (lhs Vec3[T]) Cross(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[1]*rhs[2] - rhs[1]*lhs[2],
		lhs[2]*rhs[0] - rhs[2]*lhs[0],
		lhs[0]*rhs[1] - rhs[0]*lhs[1],
	}
}

func (lhs Vec3[T]) Length() T {
	return num.Sqrt(lhs.LengthSqr())
}

func (lhs Vec3[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

// Normalize returns a unit vector in the same direction.
// A zero length vector is returned unchanged.
func (lhs Vec3[T]) Normalize() Vec3[T] {
	length := lhs.Length()
	if length == 0 {
		return lhs
	}

	return lhs.DivScalar(length)
}

func (lhs Vec3[T]) Eq(rhs Vec3[T]) bool {
	return lhs == rhs
}

func (lhs Vec3[T]) ApproxEq(rhs Vec3[T], eps T) bool {
	return approxEq(lhs[0], rhs[0], eps) &&
		approxEq(lhs[1], rhs[1], eps) &&
		approxEq(lhs[2], rhs[2], eps)
}

func (lhs Vec3[T]) IsZero() bool {
	return lhs == Vec3[T]{}
}

func (lhs Vec3[T]) Truncate() Vec2[T] {
	return Vec2Of(lhs[0], lhs[1])
}

func (lhs Vec3[T]) Extend(w T) Vec4[T] {
	return Vec4Of(lhs[0], lhs[1], lhs[2], w)
}

// Padded converts to the lane backed representation.
func (lhs Vec3[T]) Padded() Vec3Padded[T] {
	return Vec3PaddedOf(lhs[0], lhs[1], lhs[2])
}

func (lhs Vec3[T]) String() string {
	return fmt.Sprintf("Vec3(%v, %v, %v)", lhs[0], lhs[1], lhs[2])
}
