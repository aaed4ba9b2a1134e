package glm

import (
	"encoding/binary"
	"unsafe"

	mobilef32 "golang.org/x/mobile/exp/f32"
)

// Bytes reinterprets the values as their raw in-memory bytes without
// copying. T must not contain pointers. The result aliases values.
func Bytes[T any](values []T) []byte {
	if len(values) == 0 {
		return nil
	}

	var zeroT T
	n := uintptr(len(values)) * unsafe.Sizeof(zeroT)

	ptr := (*byte)(unsafe.Pointer(unsafe.SliceData(values)))
	return unsafe.Slice(ptr, n)
}

// AsBytes returns the raw bytes of a single value, see Bytes.
func AsBytes[T any](value *T) []byte {
	var zeroT T

	n := unsafe.Sizeof(zeroT)
	ptr := (*byte)(unsafe.Pointer(value))

	return unsafe.Slice(ptr, n)
}

// EncodeVec3f writes the packed vectors in the given byte order, three
// float32 values per vector. The order must be little, big or native endian.
func EncodeVec3f(order binary.ByteOrder, values ...Vec3f) []byte {
	floats := make([]float32, 0, 3*len(values))
	for _, value := range values {
		floats = append(floats, value[:]...)
	}

	return mobilef32.Bytes(concreteOrder(order), floats...)
}

// concreteOrder resolves binary.NativeEndian to the matching fixed order.
func concreteOrder(order binary.ByteOrder) binary.ByteOrder {
	if order != binary.NativeEndian {
		return order
	}

	if binary.NativeEndian.Uint16([]byte{1, 0}) == 1 {
		return binary.LittleEndian
	}

	return binary.BigEndian
}
