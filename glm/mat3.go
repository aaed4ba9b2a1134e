package glm

import (
	"fmt"
)

// Mat3 is a 3x3 matrix stored as three packed column vectors.
type Mat3[T numeric] [3]Vec3[T]

func IdentityMat3[T numeric]() Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mat3Of builds a matrix from its columns.
func Mat3Of[T numeric](cols [3][3]T) Mat3[T] {
	return Mat3[T]{cols[0], cols[1], cols[2]}
}

func Mat3FromColumns[T numeric](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{c0, c1, c2}
}

func Mat3FromRows[T numeric](r0, r1, r2 Vec3[T]) Mat3[T] {
	return Mat3[T]{r0, r1, r2}.Transpose()
}

// Mat3FromMat2 embeds m into the upper left corner of an identity matrix.
func Mat3FromMat2[T numeric](m Mat2[T]) Mat3[T] {
	return Mat3[T]{
		m[0].Extend(0),
		m[1].Extend(0),
		{0, 0, 1},
	}
}

// Mat3FromQuaternion returns the rotation matrix of q. The quaternion is
// scaled by 2/|q|² on the fly, so it does not need to be normalized. The
// zero quaternion yields the identity.
func Mat3FromQuaternion[T float](q Quaternion[T]) Mat3[T] {
	return rotationColumns(q)
}

func rotationColumns[T float](q Quaternion[T]) Mat3[T] {
	r, i, j, k := q.RIJK()

	var s T
	if n := q.NormSqr(); n != 0 {
		s = 2 / n
	}

	ii := s * i * i
	jj := s * j * j
	kk := s * k * k

	ij := s * i * j
	ik := s * i * k
	jk := s * j * k

	ri := s * r * i
	rj := s * r * j
	rk := s * r * k

	return Mat3[T]{
		{1 - jj - kk, ij + rk, ik - rj},
		{ij - rk, 1 - ii - kk, jk + ri},
		{ik + rj, jk - ri, 1 - ii - jj},
	}
}

// TranslationMat3 is a translation in 2D homogeneous coordinates.
func TranslationMat3[T numeric](x, y T) Mat3[T] {
	return Mat3[T]{
		{1, 0, 0},
		{0, 1, 0},
		{x, y, 1},
	}
}

// RotationMat3 is a counter-clockwise rotation in 2D homogeneous
// coordinates.
func RotationMat3[T numeric](angle Rad) Mat3[T] {
	s, c := sincosAs[T](angle)

	return Mat3[T]{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// ScaleMat3 is a scale in 2D homogeneous coordinates.
func ScaleMat3[T numeric](x, y T) Mat3[T] {
	return Mat3[T]{
		{x, 0, 0},
		{0, y, 0},
		{0, 0, 1},
	}
}

func (lhs Mat3[T]) Translate(x, y T) Mat3[T] {
	return lhs.Mul(TranslationMat3(x, y))
}

func (lhs Mat3[T]) Rotate(angle Rad) Mat3[T] {
	return lhs.Mul(RotationMat3[T](angle))
}

func (lhs Mat3[T]) Scale(x, y T) Mat3[T] {
	return lhs.Mul(ScaleMat3(x, y))
}

func (lhs Mat3[T]) Add(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{
		lhs[0].Add(rhs[0]),
		lhs[1].Add(rhs[1]),
		lhs[2].Add(rhs[2]),
	}
}

func (lhs Mat3[T]) Sub(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{
		lhs[0].Sub(rhs[0]),
		lhs[1].Sub(rhs[1]),
		lhs[2].Sub(rhs[2]),
	}
}

func (lhs Mat3[T]) MulScalar(s T) Mat3[T] {
	return Mat3[T]{
		lhs[0].MulScalar(s),
		lhs[1].MulScalar(s),
		lhs[2].MulScalar(s),
	}
}

func (lhs Mat3[T]) Mul(rhs Mat3[T]) Mat3[T] {
	return Mat3[T]{
		lhs.Transform(rhs[0]),
		lhs.Transform(rhs[1]),
		lhs.Transform(rhs[2]),
	}
}

func (lhs Mat3[T]) Transform(rhs Vec3[T]) Vec3[T] {
	return Vec3[T]{
		lhs[0][0]*rhs[0] + lhs[1][0]*rhs[1] + lhs[2][0]*rhs[2],
		lhs[0][1]*rhs[0] + lhs[1][1]*rhs[1] + lhs[2][1]*rhs[2],
		lhs[0][2]*rhs[0] + lhs[1][2]*rhs[1] + lhs[2][2]*rhs[2],
	}
}

func (lhs Mat3[T]) IsZero() bool {
	return lhs == Mat3[T]{}
}

func (lhs Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		lhs.Row(0),
		lhs.Row(1),
		lhs.Row(2),
	}
}

func (lhs Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{
		lhs[0][i],
		lhs[1][i],
		lhs[2][i],
	}
}

func (lhs Mat3[T]) Col(i int) Vec3[T] {
	return lhs[i]
}

// At returns the element in the given row and column.
func (lhs Mat3[T]) At(row, col int) T {
	return lhs[col][row]
}

// Mat2 returns the upper left 2x2 block.
func (lhs Mat3[T]) Mat2() Mat2[T] {
	return Mat2[T]{
		lhs[0].Truncate(),
		lhs[1].Truncate(),
	}
}

// Padded converts to the lane backed representation.
func (lhs Mat3[T]) Padded() Mat3Padded[T] {
	return Mat3PaddedFrom(lhs)
}

// Determinant expands along the first column. For the matrix
//
//	| a d g |
//	| b e h |
//	| c f i |
//
// it is a(ei-fh) + b(fg-di) + c(dh-eg).
func (lhs Mat3[T]) Determinant() T {
	a, b, c := lhs[0].XYZ()
	d, e, f := lhs[1].XYZ()
	g, h, i := lhs[2].XYZ()

	return a*(e*i-f*h) + b*(f*g-d*i) + c*(d*h-e*g)
}

// Inverse returns the adjugate divided by the determinant. A singular
// matrix yields the identity.
func (lhs Mat3[T]) Inverse() Mat3[T] {
	inv, ok := lhs.inverse()
	if !ok {
		logSingular("Mat3")
		return IdentityMat3[T]()
	}

	return inv
}

func (lhs Mat3[T]) inverse() (Mat3[T], bool) {
	det := lhs.Determinant()
	if det == 0 {
		return Mat3[T]{}, false
	}

	a, b, c := lhs[0].XYZ()
	d, e, f := lhs[1].XYZ()
	g, h, i := lhs[2].XYZ()

	// columns of the adjugate are the rows of the cofactor matrix
	adj := Mat3[T]{
		{e*i - f*h, c*h - b*i, b*f - c*e},
		{f*g - d*i, a*i - c*g, c*d - a*f},
		{d*h - e*g, b*g - a*h, a*e - b*d},
	}

	return Mat3[T]{
		adj[0].DivScalar(det),
		adj[1].DivScalar(det),
		adj[2].DivScalar(det),
	}, true
}

func (lhs Mat3[T]) Eq(rhs Mat3[T]) bool {
	return lhs == rhs
}

func (lhs Mat3[T]) ApproxEq(rhs Mat3[T], eps T) bool {
	return lhs[0].ApproxEq(rhs[0], eps) &&
		lhs[1].ApproxEq(rhs[1], eps) &&
		lhs[2].ApproxEq(rhs[2], eps)
}

// String formats the matrix row by row.
func (lhs Mat3[T]) String() string {
	return formatMat3("Mat3", lhs)
}

func formatMat3[T numeric](name string, m Mat3[T]) string {
	return fmt.Sprintf("%s[%v %v %v; %v %v %v; %v %v %v]", name,
		m[0][0], m[1][0], m[2][0],
		m[0][1], m[1][1], m[2][1],
		m[0][2], m[1][2], m[2][2],
	)
}
