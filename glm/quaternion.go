package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/num"
	"github.com/oliverbestmann/geomalg/simd"
)

// Quaternion is r + i·I + j·J + k·K, backed by a four lane simd.Simd
// holding (r, i, j, k) in that order.
type Quaternion[T signed] struct {
	lanes simd.Simd4[T]
}

func QuaternionOf[T signed](r, i, j, k T) Quaternion[T] {
	return Quaternion[T]{lanes: simd.New[T]([4]T{r, i, j, k})}
}

func IdentityQuaternion[T signed]() Quaternion[T] {
	return QuaternionOf[T](1, 0, 0, 0)
}

// QuaternionFromAxisAngle returns the unit quaternion rotating by angle
// around axis, counter-clockwise when looking down the axis. The axis
// does not need to be normalized. A zero axis yields the identity.
func QuaternionFromAxisAngle[T float](axis Vec3[T], angle Rad) Quaternion[T] {
	if axis.IsZero() {
		return IdentityQuaternion[T]()
	}

	sin, cos := sincos[T](angle / 2)
	v := axis.Normalize().MulScalar(sin)
	return QuaternionOf(cos, v[0], v[1], v[2])
}

func (lhs Quaternion[T]) R() T {
	return lhs.lanes.Get(0)
}

func (lhs Quaternion[T]) I() T {
	return lhs.lanes.Get(1)
}

func (lhs Quaternion[T]) J() T {
	return lhs.lanes.Get(2)
}

func (lhs Quaternion[T]) K() T {
	return lhs.lanes.Get(3)
}

func (lhs *Quaternion[T]) SetR(r T) {
	lhs.lanes.Set(0, r)
}

func (lhs *Quaternion[T]) SetI(i T) {
	lhs.lanes.Set(1, i)
}

func (lhs *Quaternion[T]) SetJ(j T) {
	lhs.lanes.Set(2, j)
}

func (lhs *Quaternion[T]) SetK(k T) {
	lhs.lanes.Set(3, k)
}

func (lhs Quaternion[T]) RIJK() (r, i, j, k T) {
	r = lhs.R()
	i = lhs.I()
	j = lhs.J()
	k = lhs.K()
	return
}

// Vector returns the imaginary part (i, j, k).
func (lhs Quaternion[T]) Vector() Vec3[T] {
	return Vec3[T]{lhs.I(), lhs.J(), lhs.K()}
}

func (lhs Quaternion[T]) Add(rhs Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{lanes: lhs.lanes.Add(rhs.lanes)}
}

func (lhs Quaternion[T]) Sub(rhs Quaternion[T]) Quaternion[T] {
	return Quaternion[T]{lanes: lhs.lanes.Sub(rhs.lanes)}
}

func (lhs Quaternion[T]) Neg() Quaternion[T] {
	return Quaternion[T]{lanes: lhs.lanes.Neg()}
}

func (lhs Quaternion[T]) MulScalar(s T) Quaternion[T] {
	return Quaternion[T]{lanes: lhs.lanes.Scale(s)}
}

func (lhs Quaternion[T]) DivScalar(s T) Quaternion[T] {
	return Quaternion[T]{lanes: lhs.lanes.Div(simd.Splat[T, [4]T](s))}
}

// Mul returns the Hamilton product lhs·rhs. It is not commutative.
func (lhs Quaternion[T]) Mul(rhs Quaternion[T]) Quaternion[T] {
	r1, i1, j1, k1 := lhs.RIJK()
	r2, i2, j2, k2 := rhs.RIJK()

	return QuaternionOf(
		r1*r2-i1*i2-j1*j2-k1*k2,
		r1*i2+i1*r2+j1*k2-k1*j2,
		r1*j2-i1*k2+j1*r2+k1*i2,
		r1*k2+i1*j2-j1*i2+k1*r2,
	)
}

// Conj returns the conjugate r - i·I - j·J - k·K.
func (lhs Quaternion[T]) Conj() Quaternion[T] {
	return QuaternionOf(lhs.R(), -lhs.I(), -lhs.J(), -lhs.K())
}

func (lhs Quaternion[T]) Dot(rhs Quaternion[T]) T {
	return lhs.lanes.Dot(rhs.lanes, simd.MaskAll)
}

// NormSqr returns r² + i² + j² + k².
func (lhs Quaternion[T]) NormSqr() T {
	return lhs.Dot(lhs)
}

func (lhs Quaternion[T]) Length() T {
	return num.Sqrt(lhs.NormSqr())
}

// Normalize returns the unit quaternion with the same direction.
// The zero quaternion is returned unchanged.
func (lhs Quaternion[T]) Normalize() Quaternion[T] {
	length := lhs.Length()
	if length == 0 {
		return lhs
	}

	return lhs.DivScalar(length)
}

// Inverse returns the conjugate over the squared norm, so that
// lhs·lhs.Inverse() is the identity.
func (lhs Quaternion[T]) Inverse() Quaternion[T] {
	return lhs.Conj().DivScalar(lhs.NormSqr())
}

// Div returns the right quotient lhs·rhs⁻¹.
// Division by zero follows the semantics of T.
func (lhs Quaternion[T]) Div(rhs Quaternion[T]) Quaternion[T] {
	return lhs.Mul(rhs.Conj()).DivScalar(rhs.NormSqr())
}

// Rotate applies the rotation of a unit quaternion to v, computing
// q·v·q* without building the intermediate quaternions.
func (lhs Quaternion[T]) Rotate(v Vec3[T]) Vec3[T] {
	u := lhs.Vector()
	t := u.Cross(v).MulScalar(2)
	return v.Add(t.MulScalar(lhs.R())).Add(u.Cross(t))
}

func (lhs Quaternion[T]) Eq(rhs Quaternion[T]) bool {
	return lhs.lanes.Eq(rhs.lanes, simd.MaskAll)
}

func (lhs Quaternion[T]) ApproxEq(rhs Quaternion[T], eps T) bool {
	for i := range 4 {
		if !approxEq(lhs.lanes.Get(i), rhs.lanes.Get(i), eps) {
			return false
		}
	}

	return true
}

// String formats the quaternion as "1+2i+3j+4k".
func (lhs Quaternion[T]) String() string {
	r, i, j, k := lhs.RIJK()
	return fmt.Sprintf("%v%si%sj%sk", r, term(i), term(j), term(k))
}
