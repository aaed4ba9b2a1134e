package glm

import (
	"fmt"
)

// Mat2 is a 2x2 matrix stored as two column vectors.
type Mat2[T numeric] [2]Vec2[T]

func IdentityMat2[T numeric]() Mat2[T] {
	return Mat2[T]{
		Vec2Of[T](1, 0),
		Vec2Of[T](0, 1),
	}
}

// Mat2Of builds a matrix from its columns.
func Mat2Of[T numeric](cols [2][2]T) Mat2[T] {
	return Mat2[T]{
		Vec2FromArray(cols[0]),
		Vec2FromArray(cols[1]),
	}
}

func Mat2FromColumns[T numeric](c0, c1 Vec2[T]) Mat2[T] {
	return Mat2[T]{c0, c1}
}

func Mat2FromRows[T numeric](r0, r1 Vec2[T]) Mat2[T] {
	return Mat2[T]{r0, r1}.Transpose()
}

// RotationMat2 rotates counter-clockwise by angle.
func RotationMat2[T numeric](angle Rad) Mat2[T] {
	s, c := sincosAs[T](angle)

	return Mat2[T]{
		Vec2Of(c, s),
		Vec2Of(-s, c),
	}
}

func ScaleMat2[T numeric](x, y T) Mat2[T] {
	return Mat2[T]{
		Vec2Of(x, 0),
		Vec2Of(0, y),
	}
}

func (lhs Mat2[T]) Col(i int) Vec2[T] {
	return lhs[i]
}

func (lhs Mat2[T]) Row(i int) Vec2[T] {
	return Vec2Of(lhs[0].Get(i), lhs[1].Get(i))
}

// At returns the element in the given row and column.
func (lhs Mat2[T]) At(row, col int) T {
	return lhs[col].Get(row)
}

func (lhs Mat2[T]) Add(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{lhs[0].Add(rhs[0]), lhs[1].Add(rhs[1])}
}

func (lhs Mat2[T]) Sub(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{lhs[0].Sub(rhs[0]), lhs[1].Sub(rhs[1])}
}

func (lhs Mat2[T]) MulScalar(s T) Mat2[T] {
	return Mat2[T]{lhs[0].MulScalar(s), lhs[1].MulScalar(s)}
}

func (lhs Mat2[T]) Mul(rhs Mat2[T]) Mat2[T] {
	return Mat2[T]{
		lhs.Transform(rhs[0]),
		lhs.Transform(rhs[1]),
	}
}

func (lhs Mat2[T]) Transform(rhs Vec2[T]) Vec2[T] {
	return lhs[0].MulScalar(rhs.X()).Add(lhs[1].MulScalar(rhs.Y()))
}

func (lhs Mat2[T]) Transpose() Mat2[T] {
	return Mat2[T]{lhs.Row(0), lhs.Row(1)}
}

func (lhs Mat2[T]) Determinant() T {
	return lhs[0].Cross(lhs[1])
}

// Inverse returns the inverse matrix. A singular matrix yields the
// identity.
func (lhs Mat2[T]) Inverse() Mat2[T] {
	det := lhs.Determinant()
	if det == 0 {
		logSingular("Mat2")
		return IdentityMat2[T]()
	}

	a, b := lhs[0].XY()
	c, d := lhs[1].XY()

	return Mat2[T]{
		Vec2Of(d, -b),
		Vec2Of(-c, a),
	}.divScalar(det)
}

func (lhs Mat2[T]) divScalar(s T) Mat2[T] {
	return Mat2[T]{lhs[0].DivScalar(s), lhs[1].DivScalar(s)}
}

func (lhs Mat2[T]) Eq(rhs Mat2[T]) bool {
	return lhs[0].Eq(rhs[0]) && lhs[1].Eq(rhs[1])
}

func (lhs Mat2[T]) ApproxEq(rhs Mat2[T], eps T) bool {
	return lhs[0].ApproxEq(rhs[0], eps) && lhs[1].ApproxEq(rhs[1], eps)
}

func (lhs Mat2[T]) IsZero() bool {
	return lhs.Eq(Mat2[T]{})
}

// String formats the matrix row by row.
func (lhs Mat2[T]) String() string {
	return fmt.Sprintf("Mat2[%v %v; %v %v]",
		lhs.At(0, 0), lhs.At(0, 1),
		lhs.At(1, 0), lhs.At(1, 1),
	)
}
