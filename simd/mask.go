package simd

// Mask selects lanes by bit position. Bit i selects lane i.
type Mask uint64

// MaskAll selects every lane of any width.
const MaskAll Mask = ^Mask(0)

// MaskFirst selects lanes 0 to n-1.
func MaskFirst(n int) Mask {
	if n >= 64 {
		return MaskAll
	}

	return Mask(1)<<n - 1
}

// MaskOf selects exactly the given lanes.
func MaskOf(indices ...int) Mask {
	var m Mask
	for _, idx := range indices {
		m = m.With(idx)
	}

	return m
}

// Has reports whether lane i is selected.
func (m Mask) Has(i int) bool {
	return m&(1<<i) != 0
}

func (m Mask) With(i int) Mask {
	return m | 1<<i
}

func (m Mask) Without(i int) Mask {
	return m &^ (1 << i)
}
