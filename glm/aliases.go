package glm

type Mat2f = Mat2[float32]
type Mat3f = Mat3[float32]
type Mat3Paddedf = Mat3Padded[float32]
type Mat4f = Mat4[float32]

type Mat2d = Mat2[float64]
type Mat3d = Mat3[float64]
type Mat4d = Mat4[float64]

type Vec2f = Vec2[float32]
type Vec3f = Vec3[float32]
type Vec3Paddedf = Vec3Padded[float32]
type Vec4f = Vec4[float32]

type Vec2d = Vec2[float64]
type Vec3d = Vec3[float64]
type Vec4d = Vec4[float64]

type Vec2u = Vec2[uint32]
type Vec3u = Vec3[uint32]
type Vec4u = Vec4[uint32]

type Vec2uh = Vec2[uint16]
type Vec3uh = Vec3[uint16]
type Vec4uh = Vec4[uint16]

type Vec2i = Vec2[int32]
type Vec3i = Vec3[int32]
type Vec4i = Vec4[int32]

type Complexf = Complex[float32]
type Quaternionf = Quaternion[float32]
type Multivector2f = Multivector2[float32]
type Multivector3f = Multivector3[float32]

type Rect2f = Rect[float32]
type Rect2u = Rect[uint32]
