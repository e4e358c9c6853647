package fbs

import (
	"math"

	flatbuffers "github.com/google/flatbuffers/go"
)

// Start begins a table with the given number of fields.
func Start(b *flatbuffers.Builder, fields int) {
	b.StartObject(fields)
}

// End finishes the current table and returns its offset.
func End(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	return b.EndObject()
}

// AddInt32 adds an int field; zero is the schema default and is not written.
func AddInt32(b *flatbuffers.Builder, slot int, v int32) {
	b.PrependInt32Slot(slot, v, 0)
}

// AddUint16 adds a ushort field.
func AddUint16(b *flatbuffers.Builder, slot int, v uint16) {
	b.PrependUint16Slot(slot, v, 0)
}

// AddByte adds a ubyte field.
func AddByte(b *flatbuffers.Builder, slot int, v byte) {
	b.PrependByteSlot(slot, v, 0)
}

// AddBool adds a bool field.
func AddBool(b *flatbuffers.Builder, slot int, v bool) {
	b.PrependBoolSlot(slot, v, false)
}

// AddFloat64 adds a double field. The default is compared bitwise so that
// -0.0 survives a round trip.
func AddFloat64(b *flatbuffers.Builder, slot int, v float64) {
	if math.Float64bits(v) == 0 {
		return
	}
	b.PrependFloat64(v)
	b.Slot(slot)
}

// AddOffset adds a reference field. A zero offset means absent.
func AddOffset(b *flatbuffers.Builder, slot int, off flatbuffers.UOffsetT) {
	b.PrependUOffsetTSlot(slot, off, 0)
}

// AddStruct writes a struct of doubles inline and records it in slot. It
// must be called between Start and End with nothing written in between.
func AddStruct(b *flatbuffers.Builder, slot int, vals []float64) {
	b.Prep(flatbuffers.SizeFloat64, flatbuffers.SizeFloat64*len(vals))
	for i := len(vals) - 1; i >= 0; i-- {
		b.PrependFloat64(vals[i])
	}
	b.PrependStructSlot(slot, b.Offset(), 0)
}

// CreateFloat64Vector writes a [double] vector. An empty input writes
// nothing and returns 0.
func CreateFloat64Vector(b *flatbuffers.Builder, v []float64) flatbuffers.UOffsetT {
	if len(v) == 0 {
		return 0
	}
	b.StartVector(flatbuffers.SizeFloat64, len(v), flatbuffers.SizeFloat64)
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependFloat64(v[i])
	}

	return b.EndVector(len(v))
}

// CreateInt32Vector writes an [int] vector. An empty input writes nothing.
func CreateInt32Vector(b *flatbuffers.Builder, v []int32) flatbuffers.UOffsetT {
	if len(v) == 0 {
		return 0
	}
	b.StartVector(flatbuffers.SizeInt32, len(v), flatbuffers.SizeInt32)
	for i := len(v) - 1; i >= 0; i-- {
		b.PrependInt32(v[i])
	}

	return b.EndVector(len(v))
}

// CreateOffsetVector writes a vector of table references.
func CreateOffsetVector(b *flatbuffers.Builder, offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	b.StartVector(flatbuffers.SizeUOffsetT, len(offs), flatbuffers.SizeUOffsetT)
	for i := len(offs) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offs[i])
	}

	return b.EndVector(len(offs))
}

// CreateBytes writes a [ubyte] vector. An empty input writes nothing.
func CreateBytes(b *flatbuffers.Builder, v []byte) flatbuffers.UOffsetT {
	if len(v) == 0 {
		return 0
	}

	return b.CreateByteVector(v)
}

// CreateString writes a string. The empty string writes nothing.
func CreateString(b *flatbuffers.Builder, s string) flatbuffers.UOffsetT {
	if s == "" {
		return 0
	}

	return b.CreateString(s)
}
