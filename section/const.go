package section

import "math"

const (
	// Bit masks for PackFlag.Options
	KeyNamesMask     = 0x0001 // Mask for key names payload bit (bit 0)
	ReservedBitsMask = 0x000E // Mask for reserved bits (bits 1-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicPackV1Opt is the version 1 magic number for the geometry pack format.
	MagicPackV1Opt = 0xEC10
)

// offset and section sizes in the pack
const (
	HeaderSize      = 32             // fixed header size in bytes
	IndexEntrySize  = 16             // fixed index entry size in bytes
	KeyNamesOffset  = HeaderSize     // byte offset where the key names payload starts
	MaxEntries      = math.MaxUint16 // maximum number of entries in one pack
	MaxSectionBytes = math.MaxUint32 // maximum size of the data section
)
