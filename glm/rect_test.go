package glm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Accessors(t *testing.T) {
	r := RectOf[float32](1, 2, 3, 4)

	assert.Equal(t, Vec2Of[float32](1, 2), r.Min())
	assert.Equal(t, Vec2Of[float32](4, 6), r.Max())
	assert.Equal(t, Vec2Of[float32](3, 4), r.Size())
	assert.Equal(t, Vec2Of[float32](2.5, 4), r.Center())
	assert.Equal(t, float32(3), r.Width())
	assert.Equal(t, float32(4), r.Height())
	assert.Equal(t, "Rect(1, 2, 3, 4)", r.String())

	x, y, w, h := r.XYWH()
	assert.Equal(t, []float32{1, 2, 3, 4}, []float32{x, y, w, h})
}

func TestRect_Contains(t *testing.T) {
	r := RectOf[float32](1, 2, 3, 4)

	tests := []struct {
		name  string
		point Vec2f
		want  bool
	}{
		{"origin", Vec2Of[float32](1, 2), true},
		{"inside", Vec2Of[float32](2, 3), true},
		{"just inside", Vec2Of[float32](3.999, 5.999), true},
		{"far corner", Vec2Of[float32](4, 6), false},
		{"right edge", Vec2Of[float32](4, 3), false},
		{"bottom edge", Vec2Of[float32](2, 6), false},
		{"left", Vec2Of[float32](0.5, 3), false},
		{"above", Vec2Of[float32](2, 1.5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.point))
		})
	}

	assert.False(t, RectOf[uint32](3, 3, 0, 0).Contains(Vec2Of[uint32](3, 3)), "empty rect contains nothing")
}

func TestRect_Combine(t *testing.T) {
	r := RectOf[int32](1, 2, 3, 4)

	assert.Equal(t, r, RectFromPoints(Vec2Of[int32](4, 6), Vec2Of[int32](1, 2)))
	assert.Equal(t, r, RectFromSize(Vec2Of[int32](1, 2), Vec2Of[int32](3, 4)))
	assert.Equal(t, RectOf[int32](0, 2, 4, 8), r.Extend(Vec2Of[int32](0, 10)))
	assert.Equal(t, r, r.Extend(Vec2Of[int32](2, 3)))
	assert.Equal(t, RectOf[int32](1, 2, 5, 4), r.Union(RectOf[int32](5, 5, 1, 1)))
	assert.Equal(t, RectOf[int32](3, 2, 3, 4), r.Translate(Vec2Of[int32](2, 0)))

	assert.True(t, r.Eq(RectOf[int32](1, 2, 3, 4)))
	assert.False(t, r.Eq(RectOf[int32](1, 2, 3, 5)))
}

func TestRect_Intersect(t *testing.T) {
	a := RectOf[uint32](0, 0, 4, 4)

	assert.Equal(t, RectOf[uint32](2, 1, 2, 2), a.Intersect(RectOf[uint32](2, 1, 4, 2)))
	assert.Equal(t, a, a.Intersect(a))

	disjoint := a.Intersect(RectOf[uint32](5, 5, 1, 1))
	assert.True(t, disjoint.IsEmpty())
	assert.Equal(t, RectOf[uint32](5, 5, 0, 0), disjoint)
}
