package glm

import (
	"fmt"

	"github.com/oliverbestmann/geomalg/simd"
)

// Rect is an axis aligned rectangle stored as origin and size in a four
// lane simd.Simd: (ox, oy, sx, sy).
type Rect[T numeric] struct {
	lanes simd.Simd4[T]
}

func RectOf[T numeric](ox, oy, sx, sy T) Rect[T] {
	return Rect[T]{lanes: simd.New[T]([4]T{ox, oy, sx, sy})}
}

func RectFromSize[T numeric](pos, size Vec2[T]) Rect[T] {
	return RectOf(pos.X(), pos.Y(), size.X(), size.Y())
}

// RectFromPoints returns the smallest rectangle spanning both corners.
func RectFromPoints[T numeric](a, b Vec2[T]) Rect[T] {
	lo := a.Min(b)
	hi := a.Max(b)
	return RectFromSize(lo, hi.Sub(lo))
}

func (r Rect[T]) OX() T {
	return r.lanes.Get(0)
}

func (r Rect[T]) OY() T {
	return r.lanes.Get(1)
}

func (r Rect[T]) SX() T {
	return r.lanes.Get(2)
}

func (r Rect[T]) SY() T {
	return r.lanes.Get(3)
}

func (r Rect[T]) Min() Vec2[T] {
	return Vec2Of(r.OX(), r.OY())
}

func (r Rect[T]) Max() Vec2[T] {
	return Vec2Of(r.OX()+r.SX(), r.OY()+r.SY())
}

func (r Rect[T]) Size() Vec2[T] {
	return Vec2Of(r.SX(), r.SY())
}

func (r Rect[T]) Center() Vec2[T] {
	return r.Min().Add(r.Size().DivScalar(2))
}

func (r Rect[T]) Width() T {
	return r.SX()
}

func (r Rect[T]) Height() T {
	return r.SY()
}

func (r Rect[T]) XYWH() (T, T, T, T) {
	x, y := r.Min().XY()
	w, h := r.Size().XY()
	return x, y, w, h
}

// Contains tests the half open intervals [origin, origin+size) on both axes.
func (r Rect[T]) Contains(point Vec2[T]) bool {
	x, y := point.XY()

	return x >= r.OX() && x < r.OX()+r.SX() &&
		y >= r.OY() && y < r.OY()+r.SY()
}

// Extend grows the rectangle to include the given point.
func (r Rect[T]) Extend(point Vec2[T]) Rect[T] {
	lo := r.Min().Min(point)
	hi := r.Max().Max(point)
	return RectFromSize(lo, hi.Sub(lo))
}

func (r Rect[T]) Union(other Rect[T]) Rect[T] {
	return r.Extend(other.Min()).Extend(other.Max())
}

// Intersect returns the overlapping area. Disjoint rectangles yield a
// rectangle of zero size.
func (r Rect[T]) Intersect(other Rect[T]) Rect[T] {
	lo := r.Min().Max(other.Min())
	hi := r.Max().Min(other.Max())

	// keep hi >= lo so unsigned sizes can not wrap around
	hi = hi.Max(lo)

	return RectFromSize(lo, hi.Sub(lo))
}

func (r Rect[T]) IsEmpty() bool {
	return r.SX() == 0 || r.SY() == 0
}

func (r Rect[T]) Translate(offset Vec2[T]) Rect[T] {
	return RectFromSize(r.Min().Add(offset), r.Size())
}

func (r Rect[T]) Eq(other Rect[T]) bool {
	return r.lanes.Eq(other.lanes, simd.MaskAll)
}

func (r Rect[T]) String() string {
	return fmt.Sprintf("Rect(%v, %v, %v, %v)", r.OX(), r.OY(), r.SX(), r.SY())
}
