package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/num"
	"github.com/oliverbestmann/geomalg/simd"
)

// Complex is a complex number r + i·I, backed by a two lane simd.Simd
// holding (r, i) in that order.
type Complex[T signed] struct {
	lanes simd.Simd2[T]
}

func ComplexOf[T signed](r, i T) Complex[T] {
	return Complex[T]{lanes: simd.New[T]([2]T{r, i})}
}

// ComplexFromPolar returns magnitude·(cos(angle) + sin(angle)·I).
func ComplexFromPolar[T float](magnitude T, angle Rad) Complex[T] {
	sin, cos := sincos[T](angle)
	return ComplexOf(magnitude*cos, magnitude*sin)
}

func (lhs Complex[T]) Real() T {
	return lhs.lanes.Get(0)
}

func (lhs Complex[T]) Imag() T {
	return lhs.lanes.Get(1)
}

func (lhs *Complex[T]) SetReal(r T) {
	lhs.lanes.Set(0, r)
}

func (lhs *Complex[T]) SetImag(i T) {
	lhs.lanes.Set(1, i)
}

func (lhs Complex[T]) Add(rhs Complex[T]) Complex[T] {
	return Complex[T]{lanes: lhs.lanes.Add(rhs.lanes)}
}

func (lhs Complex[T]) Sub(rhs Complex[T]) Complex[T] {
	return Complex[T]{lanes: lhs.lanes.Sub(rhs.lanes)}
}

func (lhs Complex[T]) Neg() Complex[T] {
	return Complex[T]{lanes: lhs.lanes.Neg()}
}

func (lhs Complex[T]) MulScalar(s T) Complex[T] {
	return Complex[T]{lanes: lhs.lanes.Scale(s)}
}

func (lhs Complex[T]) DivScalar(s T) Complex[T] {
	return Complex[T]{lanes: lhs.lanes.Div(simd.Splat[T, [2]T](s))}
}

// Mul returns the complex product (a+bi)(c+di) = (ac-bd) + (ad+bc)i.
func (lhs Complex[T]) Mul(rhs Complex[T]) Complex[T] {
	a, b := lhs.Real(), lhs.Imag()
	c, d := rhs.Real(), rhs.Imag()

	return ComplexOf(
		a*c-b*d,
		a*d+b*c,
	)
}

// Conj returns the complex conjugate r - i·I.
func (lhs Complex[T]) Conj() Complex[T] {
	return ComplexOf(lhs.Real(), -lhs.Imag())
}

// NormSqr returns r² + i².
func (lhs Complex[T]) NormSqr() T {
	return lhs.lanes.Dot(lhs.lanes, simd.MaskAll)
}

// Abs returns the modulus.
func (lhs Complex[T]) Abs() T {
	return num.Sqrt(lhs.NormSqr())
}

// Inverse returns 1/lhs, computed as the conjugate over the squared norm.
func (lhs Complex[T]) Inverse() Complex[T] {
	return lhs.Conj().DivScalar(lhs.NormSqr())
}

// Div returns lhs/rhs = lhs·conj(rhs) / |rhs|².
// Division by zero follows the semantics of T.
func (lhs Complex[T]) Div(rhs Complex[T]) Complex[T] {
	return lhs.Mul(rhs.Conj()).DivScalar(rhs.NormSqr())
}

// Rotate multiplies the vector, read as a complex number, by lhs. For a
// unit complex number this is a rotation by its argument.
func (lhs Complex[T]) Rotate(v Vec2[T]) Vec2[T] {
	r := lhs.Mul(ComplexOf(v.X(), v.Y()))
	return Vec2Of(r.Real(), r.Imag())
}

func (lhs Complex[T]) Eq(rhs Complex[T]) bool {
	return lhs.lanes.Eq(rhs.lanes, simd.MaskAll)
}

func (lhs Complex[T]) ApproxEq(rhs Complex[T], eps T) bool {
	return approxEq(lhs.Real(), rhs.Real(), eps) && approxEq(lhs.Imag(), rhs.Imag(), eps)
}

// String formats the number as "2+3i".
func (lhs Complex[T]) String() string {
	return fmt.Sprintf("%v%si", lhs.Real(), term(lhs.Imag()))
}
