// Package glm provides fixed dimension vectors, matrices, complex numbers,
// quaternions and multivectors of the two and three dimensional geometric
// algebras, generic over the scalar type.
//
// All types are plain values. Operations never modify their receiver and
// return a new value instead; only the Set* methods mutate in place.
//
// Matrices are stored column-major as arrays of column vectors, so m[i] is
// column i. Constructors named *Of take their arguments column by column,
// *FromRows transposes.
//
// Vec3 and Mat3 are packed and match the memory layout expected by
// interleaved vertex data. Vec3Padded and Mat3Padded use four lanes per
// column and route all arithmetic through package simd.
//
// Degenerate inputs never produce an error: normalizing a zero vector
// returns it unchanged and inverting a singular matrix returns the
// identity. The latter is logged at debug level, see SetLogger.
package glm
