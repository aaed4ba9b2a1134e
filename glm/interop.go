package glm

import (
	imagef32 "golang.org/x/image/math/f32"
	mobilef32 "golang.org/x/mobile/exp/f32"
)

// Conversions from and to the float32 types of golang.org/x/image/math/f32.
// Matrices on that side are flat and row major.

func Vec2FromImage(v imagef32.Vec2) Vec2f {
	return Vec2FromArray([2]float32(v))
}

func (lhs Vec2[T]) Image() imagef32.Vec2 {
	return imagef32.Vec2{float32(lhs.X()), float32(lhs.Y())}
}

func Vec3FromImage(v imagef32.Vec3) Vec3f {
	return Vec3f(v)
}

func (lhs Vec3[T]) Image() imagef32.Vec3 {
	return imagef32.Vec3{float32(lhs[0]), float32(lhs[1]), float32(lhs[2])}
}

func Vec4FromImage(v imagef32.Vec4) Vec4f {
	return Vec4FromArray([4]float32(v))
}

func (lhs Vec4[T]) Image() imagef32.Vec4 {
	return imagef32.Vec4{float32(lhs.X()), float32(lhs.Y()), float32(lhs.Z()), float32(lhs.W())}
}

func Mat3FromImage(m imagef32.Mat3) Mat3f {
	return Mat3FromRows(
		Vec3f{m[0], m[1], m[2]},
		Vec3f{m[3], m[4], m[5]},
		Vec3f{m[6], m[7], m[8]},
	)
}

func (lhs Mat3[T]) Image() imagef32.Mat3 {
	var m imagef32.Mat3
	for row := range 3 {
		for col := range 3 {
			m[row*3+col] = float32(lhs.At(row, col))
		}
	}

	return m
}

// Mat3FromAff3 returns the 2D homogeneous matrix of the affine transform.
func Mat3FromAff3(m imagef32.Aff3) Mat3f {
	return Mat3FromRows(
		Vec3f{m[0], m[1], m[2]},
		Vec3f{m[3], m[4], m[5]},
		Vec3f{0, 0, 1},
	)
}

// Aff3 returns the upper two rows of a 2D homogeneous matrix.
func (lhs Mat3[T]) Aff3() imagef32.Aff3 {
	var m imagef32.Aff3
	for row := range 2 {
		for col := range 3 {
			m[row*3+col] = float32(lhs.At(row, col))
		}
	}

	return m
}

func Mat4FromImage(m imagef32.Mat4) Mat4f {
	return Mat4FromRows(
		Vec4Of(m[0], m[1], m[2], m[3]),
		Vec4Of(m[4], m[5], m[6], m[7]),
		Vec4Of(m[8], m[9], m[10], m[11]),
		Vec4Of(m[12], m[13], m[14], m[15]),
	)
}

func (lhs Mat4[T]) Image() imagef32.Mat4 {
	var m imagef32.Mat4
	for row := range 4 {
		for col := range 4 {
			m[row*4+col] = float32(lhs.At(row, col))
		}
	}

	return m
}

// Conversions from and to the float32 types of golang.org/x/mobile/exp/f32.
// Matrices on that side are indexed m[row][col].

func Vec3FromMobile(v mobilef32.Vec3) Vec3f {
	return Vec3f(v)
}

func (lhs Vec3[T]) Mobile() mobilef32.Vec3 {
	return mobilef32.Vec3{float32(lhs[0]), float32(lhs[1]), float32(lhs[2])}
}

func Vec4FromMobile(v mobilef32.Vec4) Vec4f {
	return Vec4FromArray([4]float32(v))
}

func (lhs Vec4[T]) Mobile() mobilef32.Vec4 {
	return mobilef32.Vec4{float32(lhs.X()), float32(lhs.Y()), float32(lhs.Z()), float32(lhs.W())}
}

func Mat3FromMobile(m *mobilef32.Mat3) Mat3f {
	return Mat3FromRows(
		Vec3FromMobile(m[0]),
		Vec3FromMobile(m[1]),
		Vec3FromMobile(m[2]),
	)
}

func (lhs Mat3[T]) Mobile() mobilef32.Mat3 {
	t := lhs.Transpose()
	return mobilef32.Mat3{t[0].Mobile(), t[1].Mobile(), t[2].Mobile()}
}

func Mat4FromMobile(m *mobilef32.Mat4) Mat4f {
	return Mat4FromRows(
		Vec4FromMobile(m[0]),
		Vec4FromMobile(m[1]),
		Vec4FromMobile(m[2]),
		Vec4FromMobile(m[3]),
	)
}

func (lhs Mat4[T]) Mobile() mobilef32.Mat4 {
	t := lhs.Transpose()
	return mobilef32.Mat4{t[0].Mobile(), t[1].Mobile(), t[2].Mobile(), t[3].Mobile()}
}

// Mat3FromAffine returns the 2D homogeneous matrix of the affine transform.
func Mat3FromAffine(m *mobilef32.Affine) Mat3f {
	return Mat3FromRows(
		Vec3FromMobile(m[0]),
		Vec3FromMobile(m[1]),
		Vec3f{0, 0, 1},
	)
}

// Affine returns the upper two rows of a 2D homogeneous matrix.
func (lhs Mat3[T]) Affine() mobilef32.Affine {
	return mobilef32.Affine{lhs.Row(0).Mobile(), lhs.Row(1).Mobile()}
}
