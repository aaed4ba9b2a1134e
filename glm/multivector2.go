package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/num"
	"github.com/oliverbestmann/geomalg/simd"
)

// blades of each grade of the two dimensional algebra
var grades2 = [...]simd.Mask{
	simd.MaskOf(0),
	simd.MaskOf(1, 2),
	simd.MaskOf(3),
}

// Multivector2 is an element of the geometric algebra of the euclidean
// plane, with basis {1, e1, e2, e12}. The lanes hold the coefficients
// (r, x, y, xy) in that order.
//
// The basis vectors square to one and anticommute, e1e2 = -e2e1 = e12,
// so the pseudoscalar squares to minus one.
type Multivector2[T signed] struct {
	lanes simd.Simd4[T]
}

func Multivector2Of[T signed](r, x, y, xy T) Multivector2[T] {
	return Multivector2[T]{lanes: simd.New[T]([4]T{r, x, y, xy})}
}

func Multivector2FromScalar[T signed](r T) Multivector2[T] {
	return Multivector2Of(r, 0, 0, 0)
}

func Multivector2FromVec2[T signed](v Vec2[T]) Multivector2[T] {
	return Multivector2Of(0, v.X(), v.Y(), 0)
}

// Multivector2FromComplex maps the imaginary unit onto the pseudoscalar
// e12. Complex multiplication is the geometric product of the even
// subalgebra under this mapping.
func Multivector2FromComplex[T signed](c Complex[T]) Multivector2[T] {
	return Multivector2Of(c.Real(), 0, 0, c.Imag())
}

func (lhs Multivector2[T]) R() T {
	return lhs.lanes.Get(0)
}

func (lhs Multivector2[T]) X() T {
	return lhs.lanes.Get(1)
}

func (lhs Multivector2[T]) Y() T {
	return lhs.lanes.Get(2)
}

func (lhs Multivector2[T]) XY() T {
	return lhs.lanes.Get(3)
}

func (lhs *Multivector2[T]) SetR(r T) {
	lhs.lanes.Set(0, r)
}

func (lhs *Multivector2[T]) SetX(x T) {
	lhs.lanes.Set(1, x)
}

func (lhs *Multivector2[T]) SetY(y T) {
	lhs.lanes.Set(2, y)
}

func (lhs *Multivector2[T]) SetXY(xy T) {
	lhs.lanes.Set(3, xy)
}

// Vector returns the grade one part.
func (lhs Multivector2[T]) Vector() Vec2[T] {
	return Vec2Of(lhs.X(), lhs.Y())
}

// Even returns the even subalgebra part (r, xy) as a complex number.
func (lhs Multivector2[T]) Even() Complex[T] {
	return ComplexOf(lhs.R(), lhs.XY())
}

func (lhs Multivector2[T]) Add(rhs Multivector2[T]) Multivector2[T] {
	return Multivector2[T]{lanes: lhs.lanes.Add(rhs.lanes)}
}

func (lhs Multivector2[T]) Sub(rhs Multivector2[T]) Multivector2[T] {
	return Multivector2[T]{lanes: lhs.lanes.Sub(rhs.lanes)}
}

func (lhs Multivector2[T]) Neg() Multivector2[T] {
	return Multivector2[T]{lanes: lhs.lanes.Neg()}
}

func (lhs Multivector2[T]) MulScalar(s T) Multivector2[T] {
	return Multivector2[T]{lanes: lhs.lanes.Scale(s)}
}

func (lhs Multivector2[T]) DivScalar(s T) Multivector2[T] {
	return Multivector2[T]{lanes: lhs.lanes.Div(simd.Splat[T, [4]T](s))}
}

// Mul returns the geometric product lhs·rhs.
func (lhs Multivector2[T]) Mul(rhs Multivector2[T]) Multivector2[T] {
	r, x, y, xy := lhs.R(), lhs.X(), lhs.Y(), lhs.XY()
	rr, rx, ry, rxy := rhs.R(), rhs.X(), rhs.Y(), rhs.XY()

	return Multivector2Of(
		r*rr+x*rx+y*ry-xy*rxy,
		r*rx+x*rr-y*rxy+xy*ry,
		r*ry+y*rr+x*rxy-xy*rx,
		r*rxy+xy*rr+x*ry-y*rx,
	)
}

// Reverse reverses the order of the basis vectors in every blade, which
// negates the bivector part.
func (lhs Multivector2[T]) Reverse() Multivector2[T] {
	return Multivector2Of(lhs.R(), lhs.X(), lhs.Y(), -lhs.XY())
}

// Grade returns the part of grade k. It panics if k is not in [0, 2].
func (lhs Multivector2[T]) Grade(k int) Multivector2[T] {
	checkComponent(k, len(grades2))

	var result Multivector2[T]
	for i := range 4 {
		if grades2[k].Has(i) {
			result.lanes.Set(i, lhs.lanes.Get(i))
		}
	}

	return result
}

// NormSqr returns the sum of the squared coefficients.
func (lhs Multivector2[T]) NormSqr() T {
	return lhs.lanes.Dot(lhs.lanes, simd.MaskAll)
}

func (lhs Multivector2[T]) Length() T {
	return num.Sqrt(lhs.NormSqr())
}

func (lhs Multivector2[T]) Eq(rhs Multivector2[T]) bool {
	return lhs.lanes.Eq(rhs.lanes, simd.MaskAll)
}

func (lhs Multivector2[T]) ApproxEq(rhs Multivector2[T], eps T) bool {
	for i := range 4 {
		if !approxEq(lhs.lanes.Get(i), rhs.lanes.Get(i), eps) {
			return false
		}
	}

	return true
}

// String formats the multivector as "1+2e1+3e2+4e12".
func (lhs Multivector2[T]) String() string {
	return fmt.Sprintf("%v%se1%se2%se12", lhs.R(), term(lhs.X()), term(lhs.Y()), term(lhs.XY()))
}
