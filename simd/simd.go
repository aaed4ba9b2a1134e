package simd

import (
	"fmt"
	"strings"

	"github.com/oliverbestmann/geomalg/num"
)

// Lanes is the set of array types a Simd can be backed by.
type Lanes[T num.Number] interface {
	~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

// Simd is a fixed-width sequence of lanes of scalar type T.
// The zero value holds zero in every lane.
type Simd[T num.Number, A Lanes[T]] struct {
	lanes A
}

type Simd2[T num.Number] = Simd[T, [2]T]
type Simd4[T num.Number] = Simd[T, [4]T]
type Simd8[T num.Number] = Simd[T, [8]T]
type Simd16[T num.Number] = Simd[T, [16]T]
type Simd32[T num.Number] = Simd[T, [32]T]
type Simd64[T num.Number] = Simd[T, [64]T]

// New creates a Simd holding the given values.
func New[T num.Number, A Lanes[T]](values A) Simd[T, A] {
	return Simd[T, A]{lanes: values}
}

// Splat creates a Simd with all lanes set to value.
func Splat[T num.Number, A Lanes[T]](value T) Simd[T, A] {
	var result Simd[T, A]
	for i := 0; i < len(result.lanes); i++ {
		result.lanes[i] = value
	}

	return result
}

// Len returns the number of lanes.
func (s Simd[T, A]) Len() int {
	return len(s.lanes)
}

// Array returns a copy of the lanes.
func (s Simd[T, A]) Array() A {
	return s.lanes
}

// Get returns lane i. It panics if i is not in [0, Len()).
func (s Simd[T, A]) Get(i int) T {
	s.check(i)
	return s.lanes[i]
}

// Set assigns value to lane i. It panics if i is not in [0, Len()).
func (s *Simd[T, A]) Set(i int, value T) {
	s.check(i)
	s.lanes[i] = value
}

func (s *Simd[T, A]) check(i int) {
	if i < 0 || i >= len(s.lanes) {
		panic(fmt.Sprintf("simd: lane index %d out of range [0:%d]", i, len(s.lanes)))
	}
}

// Eq reports whether all lanes selected by mask are equal.
// Lanes outside the mask are ignored.
func (s Simd[T, A]) Eq(other Simd[T, A], mask Mask) bool {
	for i := 0; i < len(s.lanes); i++ {
		if mask.Has(i) && s.lanes[i] != other.lanes[i] {
			return false
		}
	}

	return true
}

// Add performs element-wise addition.
func (s Simd[T, A]) Add(other Simd[T, A]) Simd[T, A] {
	for i := 0; i < len(s.lanes); i++ {
		s.lanes[i] += other.lanes[i]
	}

	return s
}

// Sub performs element-wise subtraction.
func (s Simd[T, A]) Sub(other Simd[T, A]) Simd[T, A] {
	for i := 0; i < len(s.lanes); i++ {
		s.lanes[i] -= other.lanes[i]
	}

	return s
}

// Mul performs element-wise multiplication.
func (s Simd[T, A]) Mul(other Simd[T, A]) Simd[T, A] {
	for i := 0; i < len(s.lanes); i++ {
		s.lanes[i] *= other.lanes[i]
	}

	return s
}

// Div performs element-wise division.
// Division by zero follows T: +Inf, -Inf or NaN for floats according to
// IEEE 754, a run-time panic for integers.
func (s Simd[T, A]) Div(other Simd[T, A]) Simd[T, A] {
	for i := 0; i < len(s.lanes); i++ {
		s.lanes[i] /= other.lanes[i]
	}

	return s
}

// Neg negates every lane. Unsigned lanes wrap around.
func (s Simd[T, A]) Neg() Simd[T, A] {
	for i := 0; i < len(s.lanes); i++ {
		s.lanes[i] = -s.lanes[i]
	}

	return s
}

// Scale multiplies every lane by factor.
func (s Simd[T, A]) Scale(factor T) Simd[T, A] {
	return s.Mul(Splat[T, A](factor))
}

// Min performs element-wise minimum.
func (s Simd[T, A]) Min(other Simd[T, A]) Simd[T, A] {
	for i := 0; i < len(s.lanes); i++ {
		s.lanes[i] = min(s.lanes[i], other.lanes[i])
	}

	return s
}

// Max performs element-wise maximum.
func (s Simd[T, A]) Max(other Simd[T, A]) Simd[T, A] {
	for i := 0; i < len(s.lanes); i++ {
		s.lanes[i] = max(s.lanes[i], other.lanes[i])
	}

	return s
}

// Lerp performs linear interpolation: s + (other - s) * t.
func (s Simd[T, A]) Lerp(other Simd[T, A], t T) Simd[T, A] {
	for i := 0; i < len(s.lanes); i++ {
		s.lanes[i] += (other.lanes[i] - s.lanes[i]) * t
	}

	return s
}

// Sum adds up all lanes.
func (s Simd[T, A]) Sum() T {
	var sum T
	for i := 0; i < len(s.lanes); i++ {
		sum += s.lanes[i]
	}

	return sum
}

// Dot returns the sum of the element-wise products of the lanes selected
// by mask. Lane 0 always contributes, whether or not its bit is set.
func (s Simd[T, A]) Dot(other Simd[T, A], mask Mask) T {
	sum := s.lanes[0] * other.lanes[0]
	for i := 1; i < len(s.lanes); i++ {
		if mask.Has(i) {
			sum += s.lanes[i] * other.lanes[i]
		}
	}

	return sum
}

func (s Simd[T, A]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < len(s.lanes); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}

		_, _ = fmt.Fprint(&sb, s.lanes[i])
	}

	sb.WriteByte(']')
	return sb.String()
}
