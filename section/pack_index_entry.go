package section

import (
	"github.com/arloliu/geomcodec/endian"
	"github.com/arloliu/geomcodec/errs"
)

// IndexEntry locates one geometry inside the uncompressed data section.
// It is a fixed size of 16 bytes.
type IndexEntry struct {
	// KeyID is the xxHash64 hash of the entry key.
	//
	// Offset: 0, Size: 8 bytes
	KeyID uint64

	// Offset is the absolute byte offset of the BGFB buffer in the data section.
	//
	// Offset: 8, Size: 4 bytes
	Offset uint32

	// Size is the byte length of the BGFB buffer.
	//
	// Offset: 12, Size: 4 bytes
	Size uint32
}

// NewIndexEntry creates a new IndexEntry.
func NewIndexEntry(keyID uint64, offset, size uint32) IndexEntry {
	return IndexEntry{KeyID: keyID, Offset: offset, Size: size}
}

// End returns the byte offset just past the entry's buffer.
func (e IndexEntry) End() uint64 {
	return uint64(e.Offset) + uint64(e.Size)
}

// Bytes returns the index entry as a byte slice.
func (e IndexEntry) Bytes(engine endian.EndianEngine) []byte {
	var b [IndexEntrySize]byte
	e.WriteToSlice(b[:], 0, engine)

	return b[:]
}

// AppendTo appends the encoded entry to dst and returns the extended slice.
func (e IndexEntry) AppendTo(dst []byte, engine endian.EndianEngine) []byte {
	dst = engine.AppendUint64(dst, e.KeyID)
	dst = engine.AppendUint32(dst, e.Offset)

	return engine.AppendUint32(dst, e.Size)
}

// WriteToSlice writes to a pre-allocated slice and returns the next position.
//
// Parameters:
//   - data: Pre-allocated byte slice (must have space for 16 bytes at offset)
//   - offset: Starting position in data slice
//   - engine: Endian engine for byte order
//
// Returns:
//   - int: Next write position (offset + 16)
func (e IndexEntry) WriteToSlice(data []byte, offset int, engine endian.EndianEngine) int {
	engine.PutUint64(data[offset:offset+8], e.KeyID)
	engine.PutUint32(data[offset+8:offset+12], e.Offset)
	engine.PutUint32(data[offset+12:offset+16], e.Size)

	return offset + IndexEntrySize
}

// ParseIndexEntry parses an IndexEntry from a byte slice.
//
// Returns errs.ErrInvalidIndexSize if data is shorter than 16 bytes.
func ParseIndexEntry(data []byte, engine endian.EndianEngine) (IndexEntry, error) {
	if len(data) < IndexEntrySize {
		return IndexEntry{}, errs.ErrInvalidIndexSize
	}

	return IndexEntry{
		KeyID:  engine.Uint64(data[0:8]),
		Offset: engine.Uint32(data[8:12]),
		Size:   engine.Uint32(data[12:16]),
	}, nil
}
