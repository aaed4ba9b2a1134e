package glm

import (
	"math/bits"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

// blade bitmaps of the lanes, bit n set for basis vector e(n+1)
var (
	blades2 = [4]uint{0b00, 0b01, 0b10, 0b11}
	blades3 = [8]uint{0b000, 0b001, 0b010, 0b100, 0b011, 0b101, 0b110, 0b111}
)

// bladeSign returns the sign of the product of two basis blades with
// euclidean metric, counting the swaps needed to bring the basis vectors
// into canonical order.
func bladeSign(a, b uint) float64 {
	var swaps int

	for a >>= 1; a != 0; a >>= 1 {
		swaps += bits.OnesCount(a & b)
	}

	if swaps%2 == 1 {
		return -1
	}

	return 1
}

// referenceProduct computes the geometric product blade by blade.
func referenceProduct(blades []uint, a, b []float64) []float64 {
	index := map[uint]int{}
	for i, blade := range blades {
		index[blade] = i
	}

	result := make([]float64, len(blades))
	for i, ba := range blades {
		for j, bb := range blades {
			result[index[ba^bb]] += bladeSign(ba, bb) * a[i] * b[j]
		}
	}

	return result
}

func randomMultivector3(rng *rand.Rand) Multivector3[float64] {
	var lanes [8]float64
	for i := range lanes {
		lanes[i] = float64(rng.IntN(21) - 10)
	}

	return Multivector3Of(lanes[0], lanes[1], lanes[2], lanes[3], lanes[4], lanes[5], lanes[6], lanes[7])
}

func randomMultivector2(rng *rand.Rand) Multivector2[float64] {
	return Multivector2Of(
		float64(rng.IntN(21)-10),
		float64(rng.IntN(21)-10),
		float64(rng.IntN(21)-10),
		float64(rng.IntN(21)-10),
	)
}

func TestMultivector2_Basis(t *testing.T) {
	one := Multivector2FromScalar[int32](1)
	e1 := Multivector2Of[int32](0, 1, 0, 0)
	e2 := Multivector2Of[int32](0, 0, 1, 0)
	e12 := Multivector2Of[int32](0, 0, 0, 1)

	tests := []struct {
		name     string
		lhs, rhs Multivector2[int32]
		want     Multivector2[int32]
	}{
		{"e1e1", e1, e1, one},
		{"e2e2", e2, e2, one},
		{"e12e12", e12, e12, one.Neg()},
		{"e1e2", e1, e2, e12},
		{"e2e1", e2, e1, e12.Neg()},
		{"e1e12", e1, e12, e2},
		{"e12e1", e12, e1, e2.Neg()},
		{"e2e12", e2, e12, e1.Neg()},
		{"e12e2", e12, e2, e1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lhs.Mul(tt.rhs))
		})
	}
}

func TestMultivector2_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))

	for range 100 {
		a, b := randomMultivector2(rng), randomMultivector2(rng)

		la, lb := a.lanes.Array(), b.lanes.Array()
		want := referenceProduct(blades2[:], la[:], lb[:])

		got := a.Mul(b).lanes.Array()
		assert.Equal(t, want, got[:], "%s * %s", a, b)
	}
}

func TestMultivector2_Associative(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))

	for range 50 {
		a, b, c := randomMultivector2(rng), randomMultivector2(rng), randomMultivector2(rng)
		assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
	}
}

func TestMultivector2_Complex(t *testing.T) {
	a := ComplexOf[int32](1, 2)
	b := ComplexOf[int32](3, -4)

	// the even subalgebra multiplies like the complex numbers
	prod := Multivector2FromComplex(a).Mul(Multivector2FromComplex(b))
	assert.Equal(t, a.Mul(b), prod.Even())
	assert.Equal(t, Vec2Of[int32](0, 0), prod.Vector())
}

func TestMultivector2_VectorProduct(t *testing.T) {
	a := Vec2Of[float64](1, 2)
	b := Vec2Of[float64](3, 4)

	// ab = a·b + a∧b
	prod := Multivector2FromVec2(a).Mul(Multivector2FromVec2(b))
	assert.Equal(t, Multivector2Of(a.Dot(b), 0, 0, a.Cross(b)), prod)
}

func TestMultivector2_Grades(t *testing.T) {
	m := Multivector2Of[int32](1, 2, 3, 4)

	assert.Equal(t, Multivector2Of[int32](1, 0, 0, 0), m.Grade(0))
	assert.Equal(t, Multivector2Of[int32](0, 2, 3, 0), m.Grade(1))
	assert.Equal(t, Multivector2Of[int32](0, 0, 0, 4), m.Grade(2))
	assert.Equal(t, Multivector2Of[int32](1, 2, 3, -4), m.Reverse())
	assert.Equal(t, int32(30), m.NormSqr())
	assert.Equal(t, "1+2e1+3e2+4e12", m.String())
	assert.Equal(t, "-1-2e1+0e2+0.5e12", Multivector2Of[float32](-1, -2, 0, 0.5).String())

	assert.PanicsWithValue(t, "glm: component index 3 out of range [0:3]", func() {
		m.Grade(3)
	})
}

func TestMultivector3_Basis(t *testing.T) {
	one := Multivector3FromScalar[int32](1)
	e1 := Multivector3Of[int32](0, 1, 0, 0, 0, 0, 0, 0)
	e2 := Multivector3Of[int32](0, 0, 1, 0, 0, 0, 0, 0)
	e3 := Multivector3Of[int32](0, 0, 0, 1, 0, 0, 0, 0)
	e12 := Multivector3Of[int32](0, 0, 0, 0, 1, 0, 0, 0)
	e13 := Multivector3Of[int32](0, 0, 0, 0, 0, 1, 0, 0)
	e23 := Multivector3Of[int32](0, 0, 0, 0, 0, 0, 1, 0)
	e123 := Multivector3Of[int32](0, 0, 0, 0, 0, 0, 0, 1)

	tests := []struct {
		name     string
		lhs, rhs Multivector3[int32]
		want     Multivector3[int32]
	}{
		{"e1e1", e1, e1, one},
		{"e3e3", e3, e3, one},
		{"e1e2", e1, e2, e12},
		{"e2e1", e2, e1, e12.Neg()},
		{"e1e3", e1, e3, e13},
		{"e2e3", e2, e3, e23},
		{"e3e2", e3, e2, e23.Neg()},
		{"e12e12", e12, e12, one.Neg()},
		{"e13e13", e13, e13, one.Neg()},
		{"e23e23", e23, e23, one.Neg()},
		{"e123e123", e123, e123, one.Neg()},
		{"e12e3", e12, e3, e123},
		{"e1e23", e1, e23, e123},
		{"e2e13", e2, e13, e123.Neg()},
		{"e12e23", e12, e23, e13},
		{"e123e1", e123, e1, e23},
		{"e1e123", e1, e123, e23},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.lhs.Mul(tt.rhs))
		})
	}
}

func TestMultivector3_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))

	for range 200 {
		a, b := randomMultivector3(rng), randomMultivector3(rng)

		la, lb := a.lanes.Array(), b.lanes.Array()
		want := referenceProduct(blades3[:], la[:], lb[:])

		got := a.Mul(b).Array()
		assert.Equal(t, want, got[:], "%s * %s", a, b)
	}
}

func TestMultivector3_Associative(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))

	for range 50 {
		a, b, c := randomMultivector3(rng), randomMultivector3(rng), randomMultivector3(rng)
		assert.Equal(t, a.Mul(b).Mul(c), a.Mul(b.Mul(c)))
	}
}

func TestMultivector3_Quaternion(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 18))

	for range 50 {
		p := QuaternionOf(float64(rng.IntN(9)-4), float64(rng.IntN(9)-4), float64(rng.IntN(9)-4), float64(rng.IntN(9)-4))
		q := QuaternionOf(float64(rng.IntN(9)-4), float64(rng.IntN(9)-4), float64(rng.IntN(9)-4), float64(rng.IntN(9)-4))

		// the embedding preserves the Hamilton product
		prod := Multivector3FromQuaternion(p).Mul(Multivector3FromQuaternion(q))
		assert.Equal(t, Multivector3FromQuaternion(p.Mul(q)), prod)
		assert.Equal(t, p.Mul(q), prod.Even())
	}
}

func TestMultivector3_Complex(t *testing.T) {
	a := ComplexOf[int32](2, 1)
	b := ComplexOf[int32](-1, 3)

	prod := Multivector3FromComplex(a).Mul(Multivector3FromComplex(b))
	assert.Equal(t, Multivector3FromComplex(a.Mul(b)), prod)
}

func TestMultivector3_VectorProduct(t *testing.T) {
	a := Vec3d{1, 2, 3}
	b := Vec3d{-2, 0.5, 4}

	prod := Multivector3FromVec3(a).Mul(Multivector3FromVec3(b))
	assert.Equal(t, a.Dot(b), prod.R())
	assert.True(t, prod.Vector().IsZero())
	assert.Zero(t, prod.XYZ())

	// the bivector part is the dual of the cross product
	cross := a.Cross(b)
	assert.Equal(t, Multivector3FromVec3(cross), prod.Grade(2).Dual())
}

func TestMultivector3_Dual(t *testing.T) {
	e1 := Multivector3Of[int32](0, 1, 0, 0, 0, 0, 0, 0)
	e23 := Multivector3Of[int32](0, 0, 0, 0, 0, 0, 1, 0)

	assert.Equal(t, e23.Neg(), e1.Dual())
	assert.Equal(t, e1, e23.Dual())
	assert.Equal(t, Multivector3Of[int32](0, 0, 0, 0, 0, 0, 0, -1), Multivector3FromScalar[int32](1).Dual())
}

func TestMultivector3_Grades(t *testing.T) {
	m := Multivector3Of[int32](1, 2, 3, 4, 5, 6, 7, 8)

	assert.Equal(t, Multivector3Of[int32](1, 0, 0, 0, 0, 0, 0, 0), m.Grade(0))
	assert.Equal(t, Multivector3Of[int32](0, 2, 3, 4, 0, 0, 0, 0), m.Grade(1))
	assert.Equal(t, Multivector3Of[int32](0, 0, 0, 0, 5, 6, 7, 0), m.Grade(2))
	assert.Equal(t, Multivector3Of[int32](0, 0, 0, 0, 0, 0, 0, 8), m.Grade(3))
	assert.Equal(t, Multivector3Of[int32](1, 2, 3, 4, -5, -6, -7, -8), m.Reverse())
	assert.Equal(t, Vec3[int32]{2, 3, 4}, m.Vector())
	assert.Equal(t, QuaternionOf[int32](1, -5, -6, -7), m.Even())
	assert.Equal(t, "1+2e1+3e2+4e3+5e12+6e13+7e23+8e123", m.String())
	assert.Equal(t, "1-2e1+3e2-4e3+5e12-6e13+7e23-8e123", Multivector3Of[int32](1, -2, 3, -4, 5, -6, 7, -8).String())

	m.Set(7, -1)
	assert.Equal(t, int32(-1), m.Get(7))

	assert.PanicsWithValue(t, "simd: lane index 8 out of range [0:8]", func() {
		m.Get(8)
	})
}

func TestMultivector3_ReverseProduct(t *testing.T) {
	rng := rand.New(rand.NewPCG(19, 20))

	for range 50 {
		a, b := randomMultivector3(rng), randomMultivector3(rng)
		assert.Equal(t, b.Reverse().Mul(a.Reverse()), a.Mul(b).Reverse())
	}
}
