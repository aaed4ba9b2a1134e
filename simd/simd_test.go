package simd

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplat(t *testing.T) {
	tests := []struct {
		name  string
		value float32
	}{
		{"zero", 0.0},
		{"one", 1.0},
		{"half", 0.5},
		{"negative", -1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Splat[float32, [8]float32](tt.value)
			for i, v := range s.Array() {
				assert.Equal(t, tt.value, v, "lane %d", i)
			}
		})
	}
}

func TestLen(t *testing.T) {
	assert.Equal(t, 2, Simd2[uint8]{}.Len())
	assert.Equal(t, 4, Simd4[int32]{}.Len())
	assert.Equal(t, 8, Simd8[float64]{}.Len())
	assert.Equal(t, 16, Simd16[float32]{}.Len())
	assert.Equal(t, 32, Simd32[uint16]{}.Len())
	assert.Equal(t, 64, Simd64[int64]{}.Len())
}

func TestGetSet(t *testing.T) {
	s := New[int32]([4]int32{1, 2, 3, 4})
	assert.Equal(t, int32(3), s.Get(2))

	s.Set(2, 30)
	assert.Equal(t, int32(30), s.Get(2))
	assert.Equal(t, [4]int32{1, 2, 30, 4}, s.Array())

	// values are copied, not aliased
	c := s
	c.Set(0, 100)
	assert.Equal(t, int32(1), s.Get(0))
}

func TestGetSet_OutOfRange(t *testing.T) {
	s := Simd4[float32]{}

	assert.PanicsWithValue(t, "simd: lane index 4 out of range [0:4]", func() {
		s.Get(4)
	})

	assert.PanicsWithValue(t, "simd: lane index -1 out of range [0:4]", func() {
		s.Set(-1, 1)
	})
}

func TestEq_Mask(t *testing.T) {
	a := New[float32]([4]float32{1, 2, 3, 0})
	b := New[float32]([4]float32{1, 2, 3, 99})

	assert.True(t, a.Eq(b, MaskFirst(3)), "lane 3 excluded by mask")
	assert.False(t, a.Eq(b, MaskAll), "lane 3 included by mask")
	assert.False(t, a.Eq(b, MaskOf(3)))
	assert.True(t, a.Eq(b, 0), "empty mask compares nothing")

	c := New[float32]([4]float32{1, -2, 3, 0})
	assert.False(t, a.Eq(c, MaskFirst(3)))
	assert.True(t, a.Eq(c, MaskOf(0, 2, 3)))
}

func TestEq_WideMask(t *testing.T) {
	a := Splat[uint8, [64]uint8](7)
	b := a
	b.Set(63, 8)

	assert.False(t, a.Eq(b, MaskAll))
	assert.True(t, a.Eq(b, MaskAll.Without(63)))
	assert.True(t, a.Eq(b, MaskFirst(63)))
}

func TestArithmetic(t *testing.T) {
	a := New[float64]([4]float64{1, 2, 3, 4})
	b := New[float64]([4]float64{4, 3, 2, 1})

	tests := []struct {
		name string
		got  Simd4[float64]
		want [4]float64
	}{
		{"add", a.Add(b), [4]float64{5, 5, 5, 5}},
		{"sub", a.Sub(b), [4]float64{-3, -1, 1, 3}},
		{"mul", a.Mul(b), [4]float64{4, 6, 6, 4}},
		{"div", a.Div(b), [4]float64{0.25, 2.0 / 3.0, 1.5, 4}},
		{"neg", a.Neg(), [4]float64{-1, -2, -3, -4}},
		{"scale", a.Scale(2), [4]float64{2, 4, 6, 8}},
		{"min", a.Min(b), [4]float64{1, 2, 2, 1}},
		{"max", a.Max(b), [4]float64{4, 3, 3, 4}},
		{"lerp", a.Lerp(b, 0.5), [4]float64{2.5, 2.5, 2.5, 2.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got.Array())
		})
	}

	// operands are untouched
	assert.Equal(t, [4]float64{1, 2, 3, 4}, a.Array())
}

func TestDiv_ByZero(t *testing.T) {
	a := New[float32]([2]float32{1, 0})
	got := a.Div(Simd2[float32]{})

	assert.True(t, math.IsInf(float64(got.Get(0)), 1))
	assert.True(t, math.IsNaN(float64(got.Get(1))))

	ints := New[int32]([2]int32{1, 2})
	assert.Panics(t, func() {
		ints.Div(Simd2[int32]{})
	})
}

func TestArithmetic_Integer(t *testing.T) {
	a := New[uint8]([8]uint8{250, 1, 2, 3, 4, 5, 6, 7})
	b := Splat[uint8, [8]uint8](10)

	assert.Equal(t, [8]uint8{4, 11, 12, 13, 14, 15, 16, 17}, a.Add(b).Array(), "wraps modulo 256")
	assert.Equal(t, [8]uint8{25, 0, 0, 0, 0, 0, 0, 0}, a.Div(b).Array())
	assert.Equal(t, uint8(6), New[uint8]([8]uint8{1, 2, 3}).Sum())
}

func TestDot(t *testing.T) {
	a := New[float32]([4]float32{1, 2, 3, 4})
	b := New[float32]([4]float32{5, 6, 7, 8})

	assert.Equal(t, float32(70), a.Dot(b, MaskAll))
	assert.Equal(t, float32(38), a.Dot(b, MaskFirst(3)))
	assert.Equal(t, float32(26), a.Dot(b, MaskOf(0, 2)))
}

func TestDot_LaneZeroAlwaysIncluded(t *testing.T) {
	a := New[int32]([4]int32{2, 3, 4, 5})
	b := New[int32]([4]int32{10, 1, 1, 1})

	// lane 0 contributes even though no bit is set
	assert.Equal(t, int32(20), a.Dot(b, 0))
	assert.Equal(t, int32(20), a.Dot(b, MaskAll.Without(0).Without(1).Without(2).Without(3)))
	assert.Equal(t, int32(25), a.Dot(b, MaskOf(3)))
}

func TestMask(t *testing.T) {
	assert.Equal(t, Mask(0b0111), MaskFirst(3))
	assert.Equal(t, Mask(0), MaskFirst(0))
	assert.Equal(t, MaskAll, MaskFirst(64))
	assert.Equal(t, Mask(0b1010), MaskOf(1, 3))

	m := MaskOf(2)
	require.True(t, m.Has(2))
	assert.False(t, m.Has(1))
	assert.True(t, m.With(5).Has(5))
	assert.False(t, m.Without(2).Has(2))
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1, 2.5]", New[float64]([2]float64{1, 2.5}).String())
	assert.Equal(t, "[0, 0, 0, 0]", Simd4[int]{}.String())
}

func TestGenericOverWidths(t *testing.T) {
	assert.Equal(t, 4, sumOfOnes[[4]int]())
	assert.Equal(t, 16, sumOfOnes[[16]int]())
	assert.Equal(t, 64, sumOfOnes[[64]int]())
}

func sumOfOnes[A Lanes[int]]() int {
	a := Splat[int, A](1)
	return a.Add(Simd[int, A]{}).Sum()
}
