package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/num"
	"github.com/oliverbestmann/geomalg/simd"
)

// Vec2 is a two component vector backed by a two lane simd.Simd.
type Vec2[T numeric] struct {
	lanes simd.Simd2[T]
}

func Vec2Of[T numeric](x, y T) Vec2[T] {
	return Vec2[T]{lanes: simd.New[T]([2]T{x, y})}
}

func SplatVec2[T numeric](value T) Vec2[T] {
	return Vec2[T]{lanes: simd.Splat[T, [2]T](value)}
}

func Vec2FromArray[T numeric](values [2]T) Vec2[T] {
	return Vec2[T]{lanes: simd.New[T](values)}
}

func (lhs Vec2[T]) X() T {
	return lhs.lanes.Get(0)
}

func (lhs Vec2[T]) Y() T {
	return lhs.lanes.Get(1)
}

func (lhs *Vec2[T]) SetX(x T) {
	lhs.lanes.Set(0, x)
}

func (lhs *Vec2[T]) SetY(y T) {
	lhs.lanes.Set(1, y)
}

// Get returns component i. It panics if i is not 0 or 1.
func (lhs Vec2[T]) Get(i int) T {
	return lhs.lanes.Get(i)
}

func (lhs *Vec2[T]) Set(i int, value T) {
	lhs.lanes.Set(i, value)
}

func (lhs Vec2[T]) XY() (x, y T) {
	x = lhs.X()
	y = lhs.Y()
	return
}

func (lhs Vec2[T]) Array() [2]T {
	return lhs.lanes.Array()
}

func (lhs Vec2[T]) Add(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Add(rhs.lanes)}
}

func (lhs Vec2[T]) Sub(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Sub(rhs.lanes)}
}

// Mul multiplies component-wise.
func (lhs Vec2[T]) Mul(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Mul(rhs.lanes)}
}

// Div divides component-wise.
func (lhs Vec2[T]) Div(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Div(rhs.lanes)}
}

func (lhs Vec2[T]) MulScalar(s T) Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Scale(s)}
}

func (lhs Vec2[T]) DivScalar(s T) Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Div(simd.Splat[T, [2]T](s))}
}

func (lhs Vec2[T]) Neg() Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Neg()}
}

func (lhs Vec2[T]) Min(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Min(rhs.lanes)}
}

func (lhs Vec2[T]) Max(rhs Vec2[T]) Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Max(rhs.lanes)}
}

// Lerp interpolates linearly, t=0 returns lhs and t=1 returns rhs.
func (lhs Vec2[T]) Lerp(rhs Vec2[T], t T) Vec2[T] {
	return Vec2[T]{lanes: lhs.lanes.Lerp(rhs.lanes, t)}
}

func (lhs Vec2[T]) Dot(rhs Vec2[T]) T {
	return lhs.lanes.Dot(rhs.lanes, simd.MaskAll)
}

// Cross returns the z component of the 3D cross product with z=0.
func (lhs Vec2[T]) Cross(rhs Vec2[T]) T {
	return lhs.X()*rhs.Y() - lhs.Y()*rhs.X()
}

// Perp returns the vector rotated by 90 degrees counter-clockwise.
func (lhs Vec2[T]) Perp() Vec2[T] {
	return Vec2Of(-lhs.Y(), lhs.X())
}

// Length returns the euclidean norm. Integer vectors truncate the result.
func (lhs Vec2[T]) Length() T {
	return num.Sqrt(lhs.LengthSqr())
}

func (lhs Vec2[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

// Normalize returns a unit vector in the same direction.
// A zero length vector is returned unchanged.
func (lhs Vec2[T]) Normalize() Vec2[T] {
	length := lhs.Length()
	if length == 0 {
		return lhs
	}

	return lhs.DivScalar(length)
}

func (lhs Vec2[T]) Eq(rhs Vec2[T]) bool {
	return lhs.lanes.Eq(rhs.lanes, simd.MaskAll)
}

// ApproxEq reports whether all components differ by at most eps.
func (lhs Vec2[T]) ApproxEq(rhs Vec2[T], eps T) bool {
	return approxEq(lhs.X(), rhs.X(), eps) && approxEq(lhs.Y(), rhs.Y(), eps)
}

func (lhs Vec2[T]) IsZero() bool {
	return lhs.Eq(Vec2[T]{})
}

func (lhs Vec2[T]) Extend(z T) Vec3[T] {
	return Vec3[T]{lhs.X(), lhs.Y(), z}
}

// ToVec3 converts to a Vec3 with z set to zero.
func (lhs Vec2[T]) ToVec3() Vec3[T] {
	return lhs.Extend(num.Zero[T]())
}

func (lhs Vec2[T]) String() string {
	return fmt.Sprintf("Vec2(%v, %v)", lhs.X(), lhs.Y())
}

func approxEq[T numeric](a, b, eps T) bool {
	if a < b {
		return b-a <= eps
	}

	return a-b <= eps
}
