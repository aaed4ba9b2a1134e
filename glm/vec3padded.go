package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/num"
	"github.com/oliverbestmann/geomalg/simd"
)

// lanes holding the x, y and z components of a Vec3Padded.
const xyzMask = simd.Mask(0b0111)

// Vec3Padded is a three component vector backed by a four lane
// simd.Simd. The fourth lane is padding. It is zero after every
// constructor and every operation, and is never observable through the
// public interface.
type Vec3Padded[T numeric] struct {
	lanes simd.Simd4[T]
}

func Vec3PaddedOf[T numeric](x, y, z T) Vec3Padded[T] {
	return Vec3Padded[T]{lanes: simd.New[T]([4]T{x, y, z, 0})}
}

func SplatVec3Padded[T numeric](value T) Vec3Padded[T] {
	return Vec3PaddedOf(value, value, value)
}

func Vec3PaddedFrom[T numeric](v Vec3[T]) Vec3Padded[T] {
	return Vec3PaddedOf(v[0], v[1], v[2])
}

// padded restores the padding invariant after a lane operation.
func padded[T numeric](lanes simd.Simd4[T]) Vec3Padded[T] {
	lanes.Set(3, num.Zero[T]())
	return Vec3Padded[T]{lanes: lanes}
}

func (lhs Vec3Padded[T]) X() T {
	return lhs.lanes.Get(0)
}

func (lhs Vec3Padded[T]) Y() T {
	return lhs.lanes.Get(1)
}

func (lhs Vec3Padded[T]) Z() T {
	return lhs.lanes.Get(2)
}

func (lhs *Vec3Padded[T]) SetX(x T) {
	lhs.lanes.Set(0, x)
}

func (lhs *Vec3Padded[T]) SetY(y T) {
	lhs.lanes.Set(1, y)
}

func (lhs *Vec3Padded[T]) SetZ(z T) {
	lhs.lanes.Set(2, z)
}

// Get returns component i. It panics if i is not in [0, 3).
func (lhs Vec3Padded[T]) Get(i int) T {
	checkComponent(i, 3)
	return lhs.lanes.Get(i)
}

// Set assigns component i. It panics if i is not in [0, 3); the
// padding lane can not be written.
func (lhs *Vec3Padded[T]) Set(i int, value T) {
	checkComponent(i, 3)
	lhs.lanes.Set(i, value)
}

func (lhs Vec3Padded[T]) XYZ() (x, y, z T) {
	x = lhs.X()
	y = lhs.Y()
	z = lhs.Z()
	return
}

// Packed converts to the storage representation.
func (lhs Vec3Padded[T]) Packed() Vec3[T] {
	return Vec3[T]{lhs.X(), lhs.Y(), lhs.Z()}
}

func (lhs Vec3Padded[T]) Add(rhs Vec3Padded[T]) Vec3Padded[T] {
	return padded(lhs.lanes.Add(rhs.lanes))
}

func (lhs Vec3Padded[T]) Sub(rhs Vec3Padded[T]) Vec3Padded[T] {
	return padded(lhs.lanes.Sub(rhs.lanes))
}

func (lhs Vec3Padded[T]) Mul(rhs Vec3Padded[T]) Vec3Padded[T] {
	return padded(lhs.lanes.Mul(rhs.lanes))
}

// Div divides component-wise. The padding lane divides by one, so it
// neither produces NaN for floats nor panics for integers.
func (lhs Vec3Padded[T]) Div(rhs Vec3Padded[T]) Vec3Padded[T] {
	divisor := rhs.lanes
	divisor.Set(3, num.One[T]())
	return padded(lhs.lanes.Div(divisor))
}

func (lhs Vec3Padded[T]) MulScalar(s T) Vec3Padded[T] {
	return padded(lhs.lanes.Scale(s))
}

func (lhs Vec3Padded[T]) DivScalar(s T) Vec3Padded[T] {
	divisor := simd.Splat[T, [4]T](s)
	divisor.Set(3, num.One[T]())
	return padded(lhs.lanes.Div(divisor))
}

func (lhs Vec3Padded[T]) Neg() Vec3Padded[T] {
	return padded(lhs.lanes.Neg())
}

func (lhs Vec3Padded[T]) Min(rhs Vec3Padded[T]) Vec3Padded[T] {
	return padded(lhs.lanes.Min(rhs.lanes))
}

func (lhs Vec3Padded[T]) Max(rhs Vec3Padded[T]) Vec3Padded[T] {
	return padded(lhs.lanes.Max(rhs.lanes))
}

func (lhs Vec3Padded[T]) Lerp(rhs Vec3Padded[T], t T) Vec3Padded[T] {
	return padded(lhs.lanes.Lerp(rhs.lanes, t))
}

func (lhs Vec3Padded[T]) Dot(rhs Vec3Padded[T]) T {
	return lhs.lanes.Dot(rhs.lanes, xyzMask)
}

func (lhs Vec3Padded[T]) Cross(rhs Vec3Padded[T]) Vec3Padded[T] {
	return Vec3PaddedFrom(lhs.Packed().Cross(rhs.Packed()))
}

func (lhs Vec3Padded[T]) Length() T {
	return num.Sqrt(lhs.LengthSqr())
}

func (lhs Vec3Padded[T]) LengthSqr() T {
	return lhs.Dot(lhs)
}

// Normalize returns a unit vector in the same direction.
// A zero length vector is returned unchanged.
func (lhs Vec3Padded[T]) Normalize() Vec3Padded[T] {
	length := lhs.Length()
	if length == 0 {
		return lhs
	}

	return lhs.DivScalar(length)
}

// Eq compares x, y and z.
func (lhs Vec3Padded[T]) Eq(rhs Vec3Padded[T]) bool {
	return lhs.lanes.Eq(rhs.lanes, xyzMask)
}

func (lhs Vec3Padded[T]) ApproxEq(rhs Vec3Padded[T], eps T) bool {
	return lhs.Packed().ApproxEq(rhs.Packed(), eps)
}

func (lhs Vec3Padded[T]) IsZero() bool {
	return lhs.Eq(Vec3Padded[T]{})
}

func (lhs Vec3Padded[T]) String() string {
	return fmt.Sprintf("Vec3Padded(%v, %v, %v)", lhs.X(), lhs.Y(), lhs.Z())
}

func checkComponent(i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("glm: component index %d out of range [0:%d]", i, n))
	}
}
