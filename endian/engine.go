// Package endian provides byte order utilities for the pack container and the
// zero-copy polyface carrier.
//
// FlatBuffers and packs are always little-endian on the wire. Pack headers are
// written through GetLittleEndianEngine, and Alias reinterprets a wire vector
// as a typed slice when the host shares that order and the bytes are aligned.
//
// All functions in this package are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

var nativeLittle = CheckEndianness() == binary.LittleEndian

// CheckEndianness uses a fixed integer value to determine the host's byte order.
func CheckEndianness() binary.ByteOrder {
	// 0x0100 stores 0x01 first on big-endian hosts.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))

	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return nativeLittle
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// Number is the set of element types Alias can reinterpret.
type Number interface {
	constraints.Integer | constraints.Float
}

// Alias reinterprets the little-endian bytes in b as a slice of n values of T
// without copying.
//
// It returns false when the host is not little-endian, when b is too short,
// or when &b[0] is not aligned for T; callers must then decode element by
// element. The returned slice shares memory with b.
func Alias[T Number](b []byte, n int) ([]T, bool) {
	if n == 0 {
		return nil, true
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if !nativeLittle || n < 0 || len(b) < n*size {
		return nil, false
	}

	p := unsafe.Pointer(&b[0])
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, false
	}

	return unsafe.Slice((*T)(p), n), true
}
