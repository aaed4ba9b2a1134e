package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/num"
	"github.com/oliverbestmann/geomalg/simd"
)

// Vec4 is a four component vector backed by a four lane simd.Simd.
type Vec4[T numeric] struct {
	lanes simd.Simd4[T]
}

func Vec4Of[T numeric](x, y, z, w T) Vec4[T] {
	return Vec4[T]{lanes: simd.New[T]([4]T{x, y, z, w})}
}

func SplatVec4[T numeric](value T) Vec4[T] {
	return Vec4[T]{lanes: simd.Splat[T, [4]T](value)}
}

func Vec4FromArray[T numeric](values [4]T) Vec4[T] {
	return Vec4[T]{lanes: simd.New[T](values)}
}

func (lhs Vec4[T]) X() T {
	return lhs.lanes.Get(0)
}

func (lhs Vec4[T]) Y() T {
	return lhs.lanes.Get(1)
}

func (lhs Vec4[T]) Z() T {
	return lhs.lanes.Get(2)
}

func (lhs Vec4[T]) W() T {
	return lhs.lanes.Get(3)
}

func (lhs *Vec4[T]) SetX(x T) {
	lhs.lanes.Set(0, x)
}

func (lhs *Vec4[T]) SetY(y T) {
	lhs.lanes.Set(1, y)
}

func (lhs *Vec4[T]) SetZ(z T) {
	lhs.lanes.Set(2, z)
}

func (lhs *Vec4[T]) SetW(w T) {
	lhs.lanes.Set(3, w)
}

func (lhs Vec4[T]) Get(i int) T {
	return lhs.lanes.Get(i)
}

func (lhs *Vec4[T]) Set(i int, value T) {
	lhs.lanes.Set(i, value)
}

func (lhs Vec4[T]) Array() [4]T {
	return lhs.lanes.Array()
}

func (lhs Vec4[T]) Add(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Add(rhs.lanes)}
}

func (lhs Vec4[T]) Sub(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Sub(rhs.lanes)}
}

func (lhs Vec4[T]) Mul(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Mul(rhs.lanes)}
}

func (lhs Vec4[T]) Div(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Div(rhs.lanes)}
}

func (lhs Vec4[T]) MulScalar(s T) Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Scale(s)}
}

func (lhs Vec4[T]) DivScalar(s T) Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Div(simd.Splat[T, [4]T](s))}
}

func (lhs Vec4[T]) Neg() Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Neg()}
}

func (lhs Vec4[T]) Min(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Min(rhs.lanes)}
}

func (lhs Vec4[T]) Max(rhs Vec4[T]) Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Max(rhs.lanes)}
}

func (lhs Vec4[T]) Lerp(rhs Vec4[T], t T) Vec4[T] {
	return Vec4[T]{lanes: lhs.lanes.Lerp(rhs.lanes, t)}
}

func (lhs Vec4[T]) Dot(rhs Vec4[T]) T {
	return lhs.lanes.Dot(rhs.lanes, simd.MaskAll)
}

func (lhs Vec4[T]) Length() T {
	return num.Sqrt(lhs.LengthSqr())
}

func (lhs Vec4[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

// Normalize returns a unit vector in the same direction.
// A zero length vector is returned unchanged.
func (lhs Vec4[T]) Normalize() Vec4[T] {
	length := lhs.Length()
	if length == 0 {
		return lhs
	}

	return lhs.DivScalar(length)
}

func (lhs Vec4[T]) Eq(rhs Vec4[T]) bool {
	return lhs.lanes.Eq(rhs.lanes, simd.MaskAll)
}

func (lhs Vec4[T]) ApproxEq(rhs Vec4[T], eps T) bool {
	for i := range 4 {
		if !approxEq(lhs.lanes.Get(i), rhs.lanes.Get(i), eps) {
			return false
		}
	}

	return true
}

func (lhs Vec4[T]) IsZero() bool {
	return lhs.Eq(Vec4[T]{})
}

func (lhs Vec4[T]) Truncate() Vec3[T] {
	return Vec3[T]{lhs.X(), lhs.Y(), lhs.Z()}
}

func (lhs Vec4[T]) XYZ() (x, y, z T) {
	x = lhs.X()
	y = lhs.Y()
	z = lhs.Z()
	return
}

func (lhs Vec4[T]) XYZW() (x, y, z, w T) {
	x = lhs.X()
	y = lhs.Y()
	z = lhs.Z()
	w = lhs.W()
	return
}

func (lhs Vec4[T]) String() string {
	return fmt.Sprintf("Vec4(%v, %v, %v, %v)", lhs.X(), lhs.Y(), lhs.Z(), lhs.W())
}
