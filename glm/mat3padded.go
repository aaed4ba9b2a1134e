package glm

// Mat3Padded is a 3x3 matrix stored as Vec3Padded columns, plus a fourth
// padding column that is always zero. Like Vec3Padded it trades storage
// for lane-wise arithmetic.
type Mat3Padded[T numeric] struct {
	cols [4]Vec3Padded[T]
}

func IdentityMat3Padded[T numeric]() Mat3Padded[T] {
	return Mat3PaddedFromColumns(
		Vec3PaddedOf[T](1, 0, 0),
		Vec3PaddedOf[T](0, 1, 0),
		Vec3PaddedOf[T](0, 0, 1),
	)
}

// Mat3PaddedOf builds a matrix from its columns.
func Mat3PaddedOf[T numeric](cols [3][3]T) Mat3Padded[T] {
	return Mat3PaddedFromColumns(
		Vec3PaddedFrom(Vec3[T](cols[0])),
		Vec3PaddedFrom(Vec3[T](cols[1])),
		Vec3PaddedFrom(Vec3[T](cols[2])),
	)
}

func Mat3PaddedFromColumns[T numeric](c0, c1, c2 Vec3Padded[T]) Mat3Padded[T] {
	return Mat3Padded[T]{cols: [4]Vec3Padded[T]{c0, c1, c2}}
}

func Mat3PaddedFromRows[T numeric](r0, r1, r2 Vec3Padded[T]) Mat3Padded[T] {
	return Mat3PaddedFromColumns(r0, r1, r2).Transpose()
}

func Mat3PaddedFrom[T numeric](m Mat3[T]) Mat3Padded[T] {
	return Mat3PaddedFromColumns(
		Vec3PaddedFrom(m[0]),
		Vec3PaddedFrom(m[1]),
		Vec3PaddedFrom(m[2]),
	)
}

// Mat3PaddedFromQuaternion returns the rotation matrix of q, see
// Mat3FromQuaternion.
func Mat3PaddedFromQuaternion[T float](q Quaternion[T]) Mat3Padded[T] {
	return Mat3PaddedFrom(rotationColumns(q))
}

// Packed converts to the storage representation.
func (lhs Mat3Padded[T]) Packed() Mat3[T] {
	return Mat3[T]{
		lhs.cols[0].Packed(),
		lhs.cols[1].Packed(),
		lhs.cols[2].Packed(),
	}
}

// Col returns column i. It panics if i is not in [0, 3).
func (lhs Mat3Padded[T]) Col(i int) Vec3Padded[T] {
	checkComponent(i, 3)
	return lhs.cols[i]
}

// SetCol assigns column i. It panics if i is not in [0, 3); the padding
// column can not be written.
func (lhs *Mat3Padded[T]) SetCol(i int, col Vec3Padded[T]) {
	checkComponent(i, 3)
	lhs.cols[i] = col
}

func (lhs Mat3Padded[T]) Row(i int) Vec3Padded[T] {
	return Vec3PaddedOf(
		lhs.cols[0].Get(i),
		lhs.cols[1].Get(i),
		lhs.cols[2].Get(i),
	)
}

func (lhs Mat3Padded[T]) At(row, col int) T {
	return lhs.Col(col).Get(row)
}

func (lhs Mat3Padded[T]) Add(rhs Mat3Padded[T]) Mat3Padded[T] {
	return Mat3PaddedFromColumns(
		lhs.cols[0].Add(rhs.cols[0]),
		lhs.cols[1].Add(rhs.cols[1]),
		lhs.cols[2].Add(rhs.cols[2]),
	)
}

func (lhs Mat3Padded[T]) Sub(rhs Mat3Padded[T]) Mat3Padded[T] {
	return Mat3PaddedFromColumns(
		lhs.cols[0].Sub(rhs.cols[0]),
		lhs.cols[1].Sub(rhs.cols[1]),
		lhs.cols[2].Sub(rhs.cols[2]),
	)
}

func (lhs Mat3Padded[T]) MulScalar(s T) Mat3Padded[T] {
	return Mat3PaddedFromColumns(
		lhs.cols[0].MulScalar(s),
		lhs.cols[1].MulScalar(s),
		lhs.cols[2].MulScalar(s),
	)
}

func (lhs Mat3Padded[T]) Mul(rhs Mat3Padded[T]) Mat3Padded[T] {
	return Mat3PaddedFromColumns(
		lhs.Transform(rhs.cols[0]),
		lhs.Transform(rhs.cols[1]),
		lhs.Transform(rhs.cols[2]),
	)
}

// Transform computes the matrix vector product as a lane-wise sum of the
// columns scaled by the components of rhs.
func (lhs Mat3Padded[T]) Transform(rhs Vec3Padded[T]) Vec3Padded[T] {
	return lhs.cols[0].MulScalar(rhs.X()).
		Add(lhs.cols[1].MulScalar(rhs.Y())).
		Add(lhs.cols[2].MulScalar(rhs.Z()))
}

func (lhs Mat3Padded[T]) Transpose() Mat3Padded[T] {
	return Mat3PaddedFromColumns(lhs.Row(0), lhs.Row(1), lhs.Row(2))
}

func (lhs Mat3Padded[T]) Determinant() T {
	return lhs.Packed().Determinant()
}

// Inverse returns the adjugate divided by the determinant. A singular
// matrix yields the identity.
func (lhs Mat3Padded[T]) Inverse() Mat3Padded[T] {
	inv, ok := lhs.Packed().inverse()
	if !ok {
		logSingular("Mat3Padded")
		return IdentityMat3Padded[T]()
	}

	return Mat3PaddedFrom(inv)
}

func (lhs Mat3Padded[T]) Eq(rhs Mat3Padded[T]) bool {
	return lhs.cols[0].Eq(rhs.cols[0]) &&
		lhs.cols[1].Eq(rhs.cols[1]) &&
		lhs.cols[2].Eq(rhs.cols[2])
}

func (lhs Mat3Padded[T]) ApproxEq(rhs Mat3Padded[T], eps T) bool {
	return lhs.Packed().ApproxEq(rhs.Packed(), eps)
}

func (lhs Mat3Padded[T]) IsZero() bool {
	return lhs.Eq(Mat3Padded[T]{})
}

func (lhs Mat3Padded[T]) String() string {
	return formatMat3("Mat3Padded", lhs.Packed())
}
