package fbs

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/geomcodec/errs"
)

// Vector locates a vector's elements inside a buffer. Len is the element
// count; Start is the byte offset of element 0.
type Vector struct {
	Start flatbuffers.UOffsetT
	Len   int
}

// Table is a flatbuffers table whose vtable and inline size have been
// checked against the buffer. Every accessor re-checks the field it reads,
// so a malformed buffer yields errs.ErrCorruptBuffer instead of an
// out-of-range read.
type Table struct {
	tab    flatbuffers.Table
	size   uint64 // inline object size from the vtable
	budget *budget
}

// minTableSize is the smallest footprint of a table: its vtable offset.
const minTableSize = flatbuffers.SizeSOffsetT

// budget bounds the work of one traversal by the size of its buffer. Tables
// of a well-formed buffer never overlap and each vector is copied once, so a
// traversal that opens more tables or copies more bytes than the buffer
// holds is following shared references.
type budget struct {
	tables int
	bytes  int
}

func newBudget(buf []byte) *budget {
	return &budget{tables: len(buf) / minTableSize, bytes: len(buf)}
}

func (b *budget) openTable() error {
	if b == nil {
		return nil
	}
	if b.tables <= 0 {
		return corrupt("table count exceeds buffer size")
	}
	b.tables--

	return nil
}

func (b *budget) copyBytes(n int) error {
	if b == nil {
		return nil
	}
	if n > b.bytes {
		return corrupt("vector bytes read exceed buffer size")
	}
	b.bytes -= n

	return nil
}

func corrupt(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{errs.ErrCorruptBuffer}, args...)...)
}

// Root opens the root table of a finished flatbuffer. Tables reached from
// the root share one traversal budget; exceeding it yields errs.ErrCorruptBuffer.
func Root(buf []byte) (Table, error) {
	if len(buf) < flatbuffers.SizeUOffsetT {
		return Table{}, corrupt("buffer too short for root offset: %d bytes", len(buf))
	}

	return open(buf, flatbuffers.GetUOffsetT(buf), newBudget(buf))
}

// open validates the table header at pos and charges it to b.
func open(buf []byte, pos flatbuffers.UOffsetT, b *budget) (Table, error) {
	if err := b.openTable(); err != nil {
		return Table{}, err
	}

	n := uint64(len(buf))
	p := uint64(pos)
	if p+flatbuffers.SizeSOffsetT > n {
		return Table{}, corrupt("table at %d beyond buffer of %d bytes", p, n)
	}
	vt := int64(p) - int64(flatbuffers.GetSOffsetT(buf[p:]))
	if vt < 0 || uint64(vt)+2*flatbuffers.SizeVOffsetT > n {
		return Table{}, corrupt("vtable of table %d at %d out of range", p, vt)
	}
	vtSize := uint64(flatbuffers.GetVOffsetT(buf[vt:]))
	objSize := uint64(flatbuffers.GetVOffsetT(buf[vt+flatbuffers.SizeVOffsetT:]))
	if vtSize < 4 || vtSize%2 != 0 || uint64(vt)+vtSize > n {
		return Table{}, corrupt("vtable size %d at %d invalid", vtSize, vt)
	}
	if objSize < flatbuffers.SizeSOffsetT || p+objSize > n {
		return Table{}, corrupt("table size %d at %d invalid", objSize, p)
	}

	return Table{tab: flatbuffers.Table{Bytes: buf, Pos: pos}, size: objSize, budget: b}, nil
}

// Has reports whether the field in slot is present.
func (t Table) Has(slot int) bool {
	return t.tab.Offset(flatbuffers.VOffsetT(4+2*slot)) != 0
}

// field returns the absolute position of a present field of the given inline size.
func (t Table) field(slot int, size int) (flatbuffers.UOffsetT, bool, error) {
	o := t.tab.Offset(flatbuffers.VOffsetT(4 + 2*slot))
	if o == 0 {
		return 0, false, nil
	}
	if uint64(o)+uint64(size) > t.size {
		return 0, false, corrupt("field %d of table %d exceeds table size", slot, t.tab.Pos)
	}

	return t.tab.Pos + flatbuffers.UOffsetT(o), true, nil
}

// Int32 reads an int field, returning 0 when absent.
func (t Table) Int32(slot int) (int32, error) {
	p, ok, err := t.field(slot, flatbuffers.SizeInt32)
	if !ok {
		return 0, err
	}

	return t.tab.GetInt32(p), nil
}

// Uint16 reads a ushort field, returning 0 when absent.
func (t Table) Uint16(slot int) (uint16, error) {
	p, ok, err := t.field(slot, flatbuffers.SizeUint16)
	if !ok {
		return 0, err
	}

	return t.tab.GetUint16(p), nil
}

// Byte reads a ubyte field, returning 0 when absent.
func (t Table) Byte(slot int) (byte, error) {
	p, ok, err := t.field(slot, flatbuffers.SizeByte)
	if !ok {
		return 0, err
	}

	return t.tab.GetByte(p), nil
}

// Bool reads a bool field, returning false when absent.
func (t Table) Bool(slot int) (bool, error) {
	p, ok, err := t.field(slot, flatbuffers.SizeBool)
	if !ok {
		return false, err
	}

	return t.tab.GetBool(p), nil
}

// Float64 reads a double field, returning 0 when absent.
func (t Table) Float64(slot int) (float64, error) {
	p, ok, err := t.field(slot, flatbuffers.SizeFloat64)
	if !ok {
		return 0, err
	}

	return t.tab.GetFloat64(p), nil
}

// Struct reads an inline struct of n doubles. ok is false when absent.
func (t Table) Struct(slot int, n int) ([]float64, bool, error) {
	p, ok, err := t.field(slot, n*flatbuffers.SizeFloat64)
	if !ok {
		return nil, false, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = t.tab.GetFloat64(p + flatbuffers.UOffsetT(i*flatbuffers.SizeFloat64))
	}

	return out, true, nil
}

// indirect follows the reference stored in slot.
func (t Table) indirect(slot int) (flatbuffers.UOffsetT, bool, error) {
	p, ok, err := t.field(slot, flatbuffers.SizeUOffsetT)
	if !ok {
		return 0, false, err
	}

	return t.follow(p)
}

// follow resolves the uoffset stored at p.
func (t Table) follow(p flatbuffers.UOffsetT) (flatbuffers.UOffsetT, bool, error) {
	target := uint64(p) + uint64(flatbuffers.GetUOffsetT(t.tab.Bytes[p:]))
	if target+flatbuffers.SizeUOffsetT > uint64(len(t.tab.Bytes)) {
		return 0, false, corrupt("reference at %d points outside buffer", p)
	}

	return flatbuffers.UOffsetT(target), true, nil
}

// Vector locates the vector in slot with the given element size. An absent
// vector has Len 0.
func (t Table) Vector(slot int, elemSize int) (Vector, error) {
	target, ok, err := t.indirect(slot)
	if !ok {
		return Vector{}, err
	}
	n := uint64(flatbuffers.GetUOffsetT(t.tab.Bytes[target:]))
	start := uint64(target) + flatbuffers.SizeUOffsetT
	if start+n*uint64(elemSize) > uint64(len(t.tab.Bytes)) {
		return Vector{}, corrupt("vector of %d elements at %d exceeds buffer", n, target)
	}

	return Vector{Start: flatbuffers.UOffsetT(start), Len: int(n)}, nil
}

// Float64s copies the [double] vector in slot. Absent vectors return nil.
func (t Table) Float64s(slot int) ([]float64, error) {
	v, err := t.Vector(slot, flatbuffers.SizeFloat64)
	if err != nil || v.Len == 0 {
		return nil, err
	}
	if err := t.budget.copyBytes(v.Len * flatbuffers.SizeFloat64); err != nil {
		return nil, err
	}
	out := make([]float64, v.Len)
	for i := range out {
		out[i] = t.tab.GetFloat64(v.Start + flatbuffers.UOffsetT(i*flatbuffers.SizeFloat64))
	}

	return out, nil
}

// Int32s copies the [int] vector in slot. Absent vectors return nil.
func (t Table) Int32s(slot int) ([]int32, error) {
	v, err := t.Vector(slot, flatbuffers.SizeInt32)
	if err != nil || v.Len == 0 {
		return nil, err
	}
	if err := t.budget.copyBytes(v.Len * flatbuffers.SizeInt32); err != nil {
		return nil, err
	}
	out := make([]int32, v.Len)
	for i := range out {
		out[i] = t.tab.GetInt32(v.Start + flatbuffers.UOffsetT(i*flatbuffers.SizeInt32))
	}

	return out, nil
}

// Bytes returns the [ubyte] vector in slot, aliasing the buffer.
func (t Table) Bytes(slot int) ([]byte, error) {
	v, err := t.Vector(slot, flatbuffers.SizeByte)
	if err != nil || v.Len == 0 {
		return nil, err
	}
	if err := t.budget.copyBytes(v.Len); err != nil {
		return nil, err
	}

	return t.tab.Bytes[v.Start : int(v.Start)+v.Len], nil
}

// String returns the string in slot, or "" when absent.
func (t Table) String(slot int) (string, error) {
	b, err := t.Bytes(slot)

	return string(b), err
}

// Child opens the table referenced by slot. ok is false when absent.
func (t Table) Child(slot int) (Table, bool, error) {
	target, ok, err := t.indirect(slot)
	if !ok {
		return Table{}, false, err
	}
	child, err := open(t.tab.Bytes, target, t.budget)
	if err != nil {
		return Table{}, false, err
	}

	return child, true, nil
}

// Tables locates the vector of table references in slot.
func (t Table) Tables(slot int) (Vector, error) {
	return t.Vector(slot, flatbuffers.SizeUOffsetT)
}

// TableAt opens element i of a vector of table references.
func (t Table) TableAt(v Vector, i int) (Table, error) {
	if i < 0 || i >= v.Len {
		return Table{}, corrupt("table index %d out of range [0,%d)", i, v.Len)
	}
	target, _, err := t.follow(v.Start + flatbuffers.UOffsetT(i*flatbuffers.SizeUOffsetT))
	if err != nil {
		return Table{}, err
	}

	return open(t.tab.Bytes, target, t.budget)
}

// Buffer returns the underlying flatbuffer bytes.
func (t Table) Buffer() []byte {
	return t.tab.Bytes
}
