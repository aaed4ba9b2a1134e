// Package simd provides a portable fixed-width lane container.
//
// Simd holds N values of a scalar type in a fixed-size array, N being one
// of 2, 4, 8, 16, 32 or 64. All operations are simple loops over that
// array so the compiler is free to vectorize them; there is no assembly
// and no unsafe code.
//
// # Widths
//
// The width is carried by the array type parameter. Use the aliases to
// name a concrete width:
//
//	a := simd.New[float32]([4]float32{1, 2, 3, 4})
//	b := simd.Splat[float32, [4]float32](2)
//
//	var c simd.Simd4[float32] = a.Mul(b)
//
// # Masks
//
// Eq and Dot take a Mask. Bit i of the mask selects lane i. Lanes whose
// bit is clear are ignored, which lets wider containers carry padding
// lanes that never influence comparisons.
package simd
