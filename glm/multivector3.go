package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/num"
	"github.com/oliverbestmann/geomalg/simd"
)

// blades of each grade of the three dimensional algebra
var grades3 = [...]simd.Mask{
	simd.MaskOf(0),
	simd.MaskOf(1, 2, 3),
	simd.MaskOf(4, 5, 6),
	simd.MaskOf(7),
}

// Multivector3 is an element of the geometric algebra of euclidean
// space, with basis {1, e1, e2, e3, e12, e13, e23, e123}. The lanes hold
// the coefficients (r, x, y, z, xy, xz, yz, xyz) in that order.
//
// The basis vectors square to one and anticommute. Every bivector and the
// pseudoscalar e123 square to minus one; e123 commutes with everything.
type Multivector3[T signed] struct {
	lanes simd.Simd8[T]
}

func Multivector3Of[T signed](r, x, y, z, xy, xz, yz, xyz T) Multivector3[T] {
	return Multivector3[T]{lanes: simd.New[T]([8]T{r, x, y, z, xy, xz, yz, xyz})}
}

func Multivector3FromScalar[T signed](r T) Multivector3[T] {
	return Multivector3Of(r, 0, 0, 0, 0, 0, 0, 0)
}

func Multivector3FromVec3[T signed](v Vec3[T]) Multivector3[T] {
	return Multivector3Of(0, v[0], v[1], v[2], 0, 0, 0, 0)
}

// Multivector3FromComplex maps the imaginary unit onto the pseudoscalar
// e123, mirroring the two dimensional case one grade up.
func Multivector3FromComplex[T signed](c Complex[T]) Multivector3[T] {
	return Multivector3Of(c.Real(), 0, 0, 0, 0, 0, 0, c.Imag())
}

// Multivector3FromQuaternion embeds the quaternion into the even
// subalgebra with I → -e12, J → -e13, K → -e23. The Hamilton product of
// two quaternions equals the geometric product of their embeddings.
func Multivector3FromQuaternion[T signed](q Quaternion[T]) Multivector3[T] {
	r, i, j, k := q.RIJK()
	return Multivector3Of(r, 0, 0, 0, -i, -j, -k, 0)
}

func (lhs Multivector3[T]) R() T {
	return lhs.lanes.Get(0)
}

func (lhs Multivector3[T]) X() T {
	return lhs.lanes.Get(1)
}

func (lhs Multivector3[T]) Y() T {
	return lhs.lanes.Get(2)
}

func (lhs Multivector3[T]) Z() T {
	return lhs.lanes.Get(3)
}

func (lhs Multivector3[T]) XY() T {
	return lhs.lanes.Get(4)
}

func (lhs Multivector3[T]) XZ() T {
	return lhs.lanes.Get(5)
}

func (lhs Multivector3[T]) YZ() T {
	return lhs.lanes.Get(6)
}

func (lhs Multivector3[T]) XYZ() T {
	return lhs.lanes.Get(7)
}

// Get returns the coefficient of blade i in basis order.
func (lhs Multivector3[T]) Get(i int) T {
	return lhs.lanes.Get(i)
}

// Set assigns the coefficient of blade i in basis order.
func (lhs *Multivector3[T]) Set(i int, value T) {
	lhs.lanes.Set(i, value)
}

func (lhs Multivector3[T]) Array() [8]T {
	return lhs.lanes.Array()
}

// Vector returns the grade one part.
func (lhs Multivector3[T]) Vector() Vec3[T] {
	return Vec3[T]{lhs.X(), lhs.Y(), lhs.Z()}
}

// Even returns the even subalgebra part as a quaternion. It is the
// inverse of Multivector3FromQuaternion.
func (lhs Multivector3[T]) Even() Quaternion[T] {
	return QuaternionOf(lhs.R(), -lhs.XY(), -lhs.XZ(), -lhs.YZ())
}

func (lhs Multivector3[T]) Add(rhs Multivector3[T]) Multivector3[T] {
	return Multivector3[T]{lanes: lhs.lanes.Add(rhs.lanes)}
}

func (lhs Multivector3[T]) Sub(rhs Multivector3[T]) Multivector3[T] {
	return Multivector3[T]{lanes: lhs.lanes.Sub(rhs.lanes)}
}

func (lhs Multivector3[T]) Neg() Multivector3[T] {
	return Multivector3[T]{lanes: lhs.lanes.Neg()}
}

func (lhs Multivector3[T]) MulScalar(s T) Multivector3[T] {
	return Multivector3[T]{lanes: lhs.lanes.Scale(s)}
}

func (lhs Multivector3[T]) DivScalar(s T) Multivector3[T] {
	return Multivector3[T]{lanes: lhs.lanes.Div(simd.Splat[T, [8]T](s))}
}

// Mul returns the geometric product lhs·rhs.
func (lhs Multivector3[T]) Mul(rhs Multivector3[T]) Multivector3[T] {
	a := lhs.lanes.Array()
	b := rhs.lanes.Array()

	// a[0]  a[1] a[2] a[3]  a[4] a[5] a[6]  a[7]
	//  1    e1   e2   e3    e12  e13  e23   e123
	return Multivector3Of(
		a[0]*b[0]+a[1]*b[1]+a[2]*b[2]+a[3]*b[3]-a[4]*b[4]-a[5]*b[5]-a[6]*b[6]-a[7]*b[7],
		a[0]*b[1]+a[1]*b[0]-a[2]*b[4]-a[3]*b[5]+a[4]*b[2]+a[5]*b[3]-a[6]*b[7]-a[7]*b[6],
		a[0]*b[2]+a[1]*b[4]+a[2]*b[0]-a[3]*b[6]-a[4]*b[1]+a[5]*b[7]+a[6]*b[3]+a[7]*b[5],
		a[0]*b[3]+a[1]*b[5]+a[2]*b[6]+a[3]*b[0]-a[4]*b[7]-a[5]*b[1]-a[6]*b[2]-a[7]*b[4],
		a[0]*b[4]+a[1]*b[2]-a[2]*b[1]+a[3]*b[7]+a[4]*b[0]-a[5]*b[6]+a[6]*b[5]+a[7]*b[3],
		a[0]*b[5]+a[1]*b[3]-a[2]*b[7]-a[3]*b[1]+a[4]*b[6]+a[5]*b[0]-a[6]*b[4]-a[7]*b[2],
		a[0]*b[6]+a[1]*b[7]+a[2]*b[3]-a[3]*b[2]-a[4]*b[5]+a[5]*b[4]+a[6]*b[0]+a[7]*b[1],
		a[0]*b[7]+a[1]*b[6]-a[2]*b[5]+a[3]*b[4]+a[4]*b[3]-a[5]*b[2]+a[6]*b[1]+a[7]*b[0],
	)
}

// Reverse reverses the order of the basis vectors in every blade, which
// negates the bivector and trivector parts.
func (lhs Multivector3[T]) Reverse() Multivector3[T] {
	a := lhs.lanes.Array()
	return Multivector3Of(a[0], a[1], a[2], a[3], -a[4], -a[5], -a[6], -a[7])
}

// Dual returns lhs·e123⁻¹, mapping vectors to their orthogonal planes
// and back.
func (lhs Multivector3[T]) Dual() Multivector3[T] {
	return lhs.Mul(Multivector3Of[T](0, 0, 0, 0, 0, 0, 0, -1))
}

// Grade returns the part of grade k. It panics if k is not in [0, 3].
func (lhs Multivector3[T]) Grade(k int) Multivector3[T] {
	checkComponent(k, len(grades3))

	var result Multivector3[T]
	for i := range 8 {
		if grades3[k].Has(i) {
			result.lanes.Set(i, lhs.lanes.Get(i))
		}
	}

	return result
}

// NormSqr returns the sum of the squared coefficients.
func (lhs Multivector3[T]) NormSqr() T {
	return lhs.lanes.Dot(lhs.lanes, simd.MaskAll)
}

func (lhs Multivector3[T]) Length() T {
	return num.Sqrt(lhs.NormSqr())
}

func (lhs Multivector3[T]) Eq(rhs Multivector3[T]) bool {
	return lhs.lanes.Eq(rhs.lanes, simd.MaskAll)
}

func (lhs Multivector3[T]) ApproxEq(rhs Multivector3[T], eps T) bool {
	for i := range 8 {
		if !approxEq(lhs.lanes.Get(i), rhs.lanes.Get(i), eps) {
			return false
		}
	}

	return true
}

// String formats the multivector as "1+2e1+3e2+4e3+5e12+6e13+7e23+8e123".
func (lhs Multivector3[T]) String() string {
	a := lhs.lanes.Array()
	return fmt.Sprintf("%v%se1%se2%se3%se12%se13%se23%se123",
		a[0], term(a[1]), term(a[2]), term(a[3]), term(a[4]), term(a[5]), term(a[6]), term(a[7]))
}
