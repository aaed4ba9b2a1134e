package glm

import (
	"fmt"
	"strings"
)

// Mat4 is a 4x4 matrix stored as four column vectors.
type Mat4[T numeric] [4]Vec4[T]

// Mat4Of builds a matrix from its columns.
func Mat4Of[T numeric](cols [4][4]T) Mat4[T] {
	return Mat4[T]{
		Vec4FromArray(cols[0]),
		Vec4FromArray(cols[1]),
		Vec4FromArray(cols[2]),
		Vec4FromArray(cols[3]),
	}
}

func Mat4FromColumns[T numeric](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{c0, c1, c2, c3}
}

func Mat4FromRows[T numeric](r0, r1, r2, r3 Vec4[T]) Mat4[T] {
	return Mat4[T]{r0, r1, r2, r3}.Transpose()
}

// Mat4FromMat3 embeds m into the upper left corner of an identity matrix.
func Mat4FromMat3[T numeric](m Mat3[T]) Mat4[T] {
	return Mat4[T]{
		m[0].Extend(0),
		m[1].Extend(0),
		m[2].Extend(0),
		Vec4Of[T](0, 0, 0, 1),
	}
}

// Mat4FromQuaternion returns the homogeneous rotation matrix of q, see
// Mat3FromQuaternion.
func Mat4FromQuaternion[T float](quat Quaternion[T]) Mat4[T] {
	return Mat4FromMat3(rotationColumns(quat))
}

func IdentityMat4[T numeric]() Mat4[T] {
	return Mat4Of([4][4]T{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

func TranslationMat4[T numeric](x, y, z T) Mat4[T] {
	return Mat4Of([4][4]T{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{x, y, z, 1},
	})
}

func RotationZMat4[T numeric](angle Rad) Mat4[T] {
	s, c := sincosAs[T](angle)

	return Mat4Of([4][4]T{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

func RotationXMat4[T numeric](angle Rad) Mat4[T] {
	s, c := sincosAs[T](angle)

	return Mat4Of([4][4]T{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	})
}

func RotationYMat4[T numeric](angle Rad) Mat4[T] {
	s, c := sincosAs[T](angle)

	return Mat4Of([4][4]T{
		{c, 0, -s, 0},
		{0, 1, 0, 0},
		{s, 0, c, 0},
		{0, 0, 0, 1},
	})
}

func ScaleMat4[T numeric](x, y, z T) Mat4[T] {
	return Mat4Of([4][4]T{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	})
}

func (lhs Mat4[T]) RotateX(angle Rad) Mat4[T] {
	return lhs.Mul(RotationXMat4[T](angle))
}

func (lhs Mat4[T]) RotateY(angle Rad) Mat4[T] {
	return lhs.Mul(RotationYMat4[T](angle))
}

func (lhs Mat4[T]) RotateZ(angle Rad) Mat4[T] {
	return lhs.Mul(RotationZMat4[T](angle))
}

func (lhs Mat4[T]) Scale(x, y, z T) Mat4[T] {
	return lhs.Mul(ScaleMat4[T](x, y, z))
}

func (lhs Mat4[T]) Translate(x, y, z T) Mat4[T] {
	return lhs.Mul(TranslationMat4[T](x, y, z))
}

func (lhs Mat4[T]) IsZero() bool {
	return lhs.Eq(Mat4[T]{})
}

func (lhs Mat4[T]) Add(rhs Mat4[T]) Mat4[T] {
	for i := range lhs {
		lhs[i] = lhs[i].Add(rhs[i])
	}

	return lhs
}

func (lhs Mat4[T]) Sub(rhs Mat4[T]) Mat4[T] {
	for i := range lhs {
		lhs[i] = lhs[i].Sub(rhs[i])
	}

	return lhs
}

func (lhs Mat4[T]) MulScalar(s T) Mat4[T] {
	for i := range lhs {
		lhs[i] = lhs[i].MulScalar(s)
	}

	return lhs
}

func (lhs Mat4[T]) Mul(rhs Mat4[T]) Mat4[T] {
	return Mat4[T]{
		lhs.Transform(rhs[0]),
		lhs.Transform(rhs[1]),
		lhs.Transform(rhs[2]),
		lhs.Transform(rhs[3]),
	}
}

// Transform computes the matrix vector product as a lane-wise sum of the
// columns scaled by the components of rhs.
func (lhs Mat4[T]) Transform(rhs Vec4[T]) Vec4[T] {
	return lhs[0].MulScalar(rhs.X()).
		Add(lhs[1].MulScalar(rhs.Y())).
		Add(lhs[2].MulScalar(rhs.Z())).
		Add(lhs[3].MulScalar(rhs.W()))
}

// TransformPoint transforms p as a point (w=1) and drops w.
func (lhs Mat4[T]) TransformPoint(p Vec3[T]) Vec3[T] {
	return lhs.Transform(p.Extend(1)).Truncate()
}

func (lhs Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		lhs.Row(0),
		lhs.Row(1),
		lhs.Row(2),
		lhs.Row(3),
	}
}

func (lhs Mat4[T]) Row(i int) Vec4[T] {
	return Vec4Of(
		lhs[0].Get(i),
		lhs[1].Get(i),
		lhs[2].Get(i),
		lhs[3].Get(i),
	)
}

func (lhs Mat4[T]) Col(i int) Vec4[T] {
	return lhs[i]
}

// At returns the element in the given row and column.
func (lhs Mat4[T]) At(row, col int) T {
	return lhs[col].Get(row)
}

// Mat3 returns the upper left 3x3 block.
func (lhs Mat4[T]) Mat3() Mat3[T] {
	return Mat3[T]{
		lhs[0].Truncate(),
		lhs[1].Truncate(),
		lhs[2].Truncate(),
	}
}

// subfactors returns the 2x2 determinants of the upper two rows (s) and
// the lower two rows (c), as used by the Laplace expansion.
func (lhs Mat4[T]) subfactors() (s, c [6]T) {
	a := lhs.Transpose()

	s[0] = a[0].X()*a[1].Y() - a[1].X()*a[0].Y()
	s[1] = a[0].X()*a[1].Z() - a[1].X()*a[0].Z()
	s[2] = a[0].X()*a[1].W() - a[1].X()*a[0].W()
	s[3] = a[0].Y()*a[1].Z() - a[1].Y()*a[0].Z()
	s[4] = a[0].Y()*a[1].W() - a[1].Y()*a[0].W()
	s[5] = a[0].Z()*a[1].W() - a[1].Z()*a[0].W()

	c[5] = a[2].Z()*a[3].W() - a[3].Z()*a[2].W()
	c[4] = a[2].Y()*a[3].W() - a[3].Y()*a[2].W()
	c[3] = a[2].Y()*a[3].Z() - a[3].Y()*a[2].Z()
	c[2] = a[2].X()*a[3].W() - a[3].X()*a[2].W()
	c[1] = a[2].X()*a[3].Z() - a[3].X()*a[2].Z()
	c[0] = a[2].X()*a[3].Y() - a[3].X()*a[2].Y()

	return s, c
}

func (lhs Mat4[T]) Determinant() T {
	s, c := lhs.subfactors()
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// Inverse returns the adjugate divided by the determinant. A singular
// matrix yields the identity.
func (lhs Mat4[T]) Inverse() Mat4[T] {
	s, c := lhs.subfactors()

	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
	if det == 0 {
		logSingular("Mat4")
		return IdentityMat4[T]()
	}

	// rows of the input
	r0, r1, r2, r3 := lhs.Row(0), lhs.Row(1), lhs.Row(2), lhs.Row(3)

	adj := Mat4FromRows(
		Vec4Of(
			r1.Y()*c[5]-r1.Z()*c[4]+r1.W()*c[3],
			-r0.Y()*c[5]+r0.Z()*c[4]-r0.W()*c[3],
			r3.Y()*s[5]-r3.Z()*s[4]+r3.W()*s[3],
			-r2.Y()*s[5]+r2.Z()*s[4]-r2.W()*s[3],
		),
		Vec4Of(
			-r1.X()*c[5]+r1.Z()*c[2]-r1.W()*c[1],
			r0.X()*c[5]-r0.Z()*c[2]+r0.W()*c[1],
			-r3.X()*s[5]+r3.Z()*s[2]-r3.W()*s[1],
			r2.X()*s[5]-r2.Z()*s[2]+r2.W()*s[1],
		),
		Vec4Of(
			r1.X()*c[4]-r1.Y()*c[2]+r1.W()*c[0],
			-r0.X()*c[4]+r0.Y()*c[2]-r0.W()*c[0],
			r3.X()*s[4]-r3.Y()*s[2]+r3.W()*s[0],
			-r2.X()*s[4]+r2.Y()*s[2]-r2.W()*s[0],
		),
		Vec4Of(
			-r1.X()*c[3]+r1.Y()*c[1]-r1.Z()*c[0],
			r0.X()*c[3]-r0.Y()*c[1]+r0.Z()*c[0],
			-r3.X()*s[3]+r3.Y()*s[1]-r3.Z()*s[0],
			r2.X()*s[3]-r2.Y()*s[1]+r2.Z()*s[0],
		),
	)

	for i := range adj {
		adj[i] = adj[i].DivScalar(det)
	}

	return adj
}

func (lhs Mat4[T]) Eq(rhs Mat4[T]) bool {
	for i := range lhs {
		if !lhs[i].Eq(rhs[i]) {
			return false
		}
	}

	return true
}

func (lhs Mat4[T]) ApproxEq(rhs Mat4[T], eps T) bool {
	for i := range lhs {
		if !lhs[i].ApproxEq(rhs[i], eps) {
			return false
		}
	}

	return true
}

// String formats the matrix row by row.
func (lhs Mat4[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Mat4[")

	for row := range 4 {
		if row > 0 {
			sb.WriteString("; ")
		}

		r := lhs.Row(row)
		_, _ = fmt.Fprintf(&sb, "%v %v %v %v", r.X(), r.Y(), r.Z(), r.W())
	}

	sb.WriteByte(']')
	return sb.String()
}
