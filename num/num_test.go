package num

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentities(t *testing.T) {
	assert.Equal(t, uint8(0), Zero[uint8]())
	assert.Equal(t, uint8(1), One[uint8]())
	assert.Equal(t, int64(0), Zero[int64]())
	assert.Equal(t, int64(1), One[int64]())
	assert.Equal(t, float32(0), Zero[float32]())
	assert.Equal(t, float64(1), One[float64]())

	// identities behave as such under the tier's operators
	x := 7.25
	assert.Equal(t, x, x+Zero[float64]())
	assert.Equal(t, x, x*One[float64]())
}

type meters float64

func TestIdentities_NamedType(t *testing.T) {
	assert.Equal(t, meters(0), Zero[meters]())
	assert.Equal(t, meters(1), One[meters]())
}

func TestSqrt(t *testing.T) {
	assert.Equal(t, float32(3), Sqrt[float32](9))
	assert.Equal(t, 1.5, Sqrt(2.25))
	assert.Equal(t, uint32(3), Sqrt[uint32](10))
	assert.Equal(t, meters(4), Sqrt[meters](16))
	assert.True(t, math.IsNaN(Sqrt(-1.0)))
}

func TestSincos(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		sin, cos float64
	}{
		{"zero", 0, 0, 1},
		{"quarter", math.Pi / 2, 1, 0},
		{"half", math.Pi, 0, -1},
		{"negative quarter", -math.Pi / 2, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, c := Sincos(tt.angle)
			assert.InDelta(t, tt.sin, s, 1e-12)
			assert.InDelta(t, tt.cos, c, 1e-12)

			s32, c32 := Sincos(float32(tt.angle))
			assert.InDelta(t, tt.sin, float64(s32), 1e-6)
			assert.InDelta(t, tt.cos, float64(c32), 1e-6)
		})
	}
}

func TestAbs(t *testing.T) {
	assert.Equal(t, int8(5), Abs[int8](-5))
	assert.Equal(t, int8(5), Abs[int8](5))
	assert.Equal(t, 2.5, Abs(-2.5))
	assert.Equal(t, float32(0), Abs[float32](0))
}

func TestRound(t *testing.T) {
	assert.Equal(t, float32(128), Round[float32](127.5))
	assert.Equal(t, -3.0, Round(-2.5))
	assert.Equal(t, 2.0, Round(2.49))
}

func TestApproxEqual(t *testing.T) {
	assert.True(t, ApproxEqual(1.0, 1.0+1e-9, 1e-6))
	assert.False(t, ApproxEqual(1.0, 1.1, 1e-6))
	assert.True(t, ApproxEqual[float32](-2, -2, 0))
}
