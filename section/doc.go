// Package section defines the fixed binary structures of a geometry pack.
//
// A pack is laid out as:
//
//	+----------------------+ 0
//	| PackHeader (32)      |
//	+----------------------+ HeaderSize
//	| key names payload    | KeyPayloadSize bytes, present when FlagKeyNames is set
//	+----------------------+
//	| index (16 per entry) | EntryCount × IndexEntrySize
//	+----------------------+
//	| data section         | DataSize bytes, compressed with CompressionType
//	+----------------------+
//
// All fields are little-endian. The data section holds the BGFB buffers of
// every entry back to back; index offsets point into its uncompressed form.
package section
