package section

import (
	"github.com/arloliu/geomcodec/endian"
	"github.com/arloliu/geomcodec/errs"
)

// PackHeader represents the fixed-size header section at the start of a geometry pack.
type PackHeader struct {
	// Flag is a packed field for options, magic number and compression.
	Flag PackFlag // byte offset 0-2, byte 3 is reserved
	// EntryCount is the number of geometries stored in the pack, max to 65535.
	EntryCount uint32 // byte offset 4-7
	// KeyPayloadSize is the byte length of the key names payload, 0 when absent.
	KeyPayloadSize uint32 // byte offset 8-11
	// DataSize is the byte length of the stored (possibly compressed) data section.
	DataSize uint32 // byte offset 12-15
	// RawSize is the byte length of the data section after decompression.
	RawSize uint32 // byte offset 16-19
	// Checksum is the xxHash64 of the uncompressed data section.
	Checksum uint64 // byte offset 20-27
	// byte offset 28-31 is reserved and must be zero.
}

// NewPackHeader creates a new PackHeader with the default flag.
// Counts, sizes and the checksum are set when the encoder finishes.
func NewPackHeader() *PackHeader {
	return &PackHeader{Flag: NewPackFlag()}
}

// IndexOffset returns the byte offset of the index section.
func (h *PackHeader) IndexOffset() int {
	return KeyNamesOffset + int(h.KeyPayloadSize)
}

// DataOffset returns the byte offset of the data section.
func (h *PackHeader) DataOffset() int {
	return h.IndexOffset() + int(h.EntryCount)*IndexEntrySize
}

// TotalSize returns the byte length of the whole pack described by the header.
func (h *PackHeader) TotalSize() int {
	return h.DataOffset() + int(h.DataSize)
}

// Parse parses the header from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be exactly 32 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 32 bytes, or flag validation errors
func (h *PackHeader) Parse(data []byte) error {
	if len(data) != HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.Flag.Options = engine.Uint16(data[0:2])
	h.Flag.CompressionType = data[2]
	if err := h.Flag.Validate(); err != nil {
		return err
	}

	if data[3] != 0 || engine.Uint32(data[28:32]) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	h.EntryCount = engine.Uint32(data[4:8])
	h.KeyPayloadSize = engine.Uint32(data[8:12])
	h.DataSize = engine.Uint32(data[12:16])
	h.RawSize = engine.Uint32(data[16:20])
	h.Checksum = engine.Uint64(data[20:28])

	if h.EntryCount > MaxEntries {
		return errs.ErrTooManyEntries
	}

	if h.Flag.HasKeyNames() != (h.KeyPayloadSize > 0) {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// Bytes serializes the PackHeader into a byte slice.
func (h *PackHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)

	engine := endian.GetLittleEndianEngine()

	engine.PutUint16(b[0:2], h.Flag.Options)
	b[2] = h.Flag.CompressionType
	engine.PutUint32(b[4:8], h.EntryCount)
	engine.PutUint32(b[8:12], h.KeyPayloadSize)
	engine.PutUint32(b[12:16], h.DataSize)
	engine.PutUint32(b[16:20], h.RawSize)
	engine.PutUint64(b[20:28], h.Checksum)

	return b
}

// ParsePackHeader parses a PackHeader from a byte slice.
//
// Parameters:
//   - data: Byte slice containing header (must be at least 32 bytes)
//
// Returns:
//   - PackHeader: Parsed header struct
//   - error: ErrInvalidHeaderSize or flag validation errors
func ParsePackHeader(data []byte) (PackHeader, error) {
	if len(data) < HeaderSize {
		return PackHeader{}, errs.ErrInvalidHeaderSize
	}

	h := PackHeader{}
	if err := h.Parse(data[:HeaderSize]); err != nil {
		return PackHeader{}, err
	}

	return h, nil
}
