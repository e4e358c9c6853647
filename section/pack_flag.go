package section

import (
	"fmt"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/format"
)

// PackFlag represents the packed option and compression fields of a pack header.
type PackFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is the key names flag, 1 means the key names payload is present.
	// Bit 1-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number identifying the pack format:
	//   - 0xEC10 (0b1110_1100_0001_0000): geometry pack format v1
	Options uint16

	// CompressionType is the codec applied to the data section.
	CompressionType uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewPackFlag creates a new PackFlag with no key names and no compression.
func NewPackFlag() PackFlag {
	return PackFlag{
		Options:         MagicPackV1Opt,
		CompressionType: uint8(format.CompressionNone),
	}
}

// HasKeyNames returns whether the key names payload is present.
func (f PackFlag) HasKeyNames() bool {
	return (f.Options & KeyNamesMask) != 0
}

// SetHasKeyNames enables or disables the key names payload.
func (f *PackFlag) SetHasKeyNames(enabled bool) {
	if enabled {
		f.Options |= KeyNamesMask
	} else {
		f.Options &^= KeyNamesMask
	}
}

// Compression returns the data section compression type.
func (f PackFlag) Compression() format.CompressionType {
	return format.CompressionType(f.CompressionType)
}

// SetCompression sets the data section compression type.
func (f *PackFlag) SetCompression(c format.CompressionType) {
	f.CompressionType = uint8(c)
}

// GetMagicNumber returns the magic number from the Options field.
func (f PackFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber reports whether the Options field carries the pack magic number.
func (f PackFlag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicPackV1Opt
}

// Validate checks the magic number, the reserved bits and the compression type.
func (f PackFlag) Validate() error {
	if !f.IsValidMagicNumber() {
		return fmt.Errorf("%w: 0x%04x", errs.ErrInvalidPackMagic, f.GetMagicNumber())
	}

	if f.Options&ReservedBitsMask != 0 {
		return fmt.Errorf("%w: reserved bits 0x%04x", errs.ErrInvalidHeaderFlags, f.Options&ReservedBitsMask)
	}

	if _, ok := validCompressions[f.CompressionType]; !ok {
		return fmt.Errorf("%w: compression type %d", errs.ErrInvalidHeaderFlags, f.CompressionType)
	}

	return nil
}
