package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/geomcodec/endian"
	"github.com/arloliu/geomcodec/errs"
)

// EncodeKeyNames encodes a list of pack keys into a length-prefixed binary format.
// Format: [Count: uint16] [Len1: uint16][Key1: UTF-8] [Len2: uint16][Key2: UTF-8] ...
//
// Parameters:
//   - names: The ordered list of keys to encode
//   - engine: The endian engine to use for encoding length fields
//
// Returns:
//   - []byte: The encoded key names payload
//   - error: ErrTooManyEntries if count exceeds uint16, ErrInvalidKey if a key is empty or too long
func EncodeKeyNames(names []string, engine endian.EndianEngine) ([]byte, error) {
	if len(names) > math.MaxUint16 {
		return nil, fmt.Errorf("%w: key count %d exceeds maximum %d", errs.ErrTooManyEntries, len(names), math.MaxUint16)
	}

	totalSize := 2
	for _, name := range names {
		if name == "" || len(name) > math.MaxUint16 {
			return nil, fmt.Errorf("%w: key length %d", errs.ErrInvalidKey, len(name))
		}
		totalSize += 2 + len(name)
	}

	buf := make([]byte, 0, totalSize)
	buf = engine.AppendUint16(buf, uint16(len(names))) //nolint: gosec

	for _, name := range names {
		buf = engine.AppendUint16(buf, uint16(len(name))) //nolint: gosec
		buf = append(buf, name...)
	}

	return buf, nil
}

// DecodeKeyNames decodes a length-prefixed key names payload.
//
// Parameters:
//   - data: The raw byte slice containing the payload (starting from the count field)
//   - engine: The endian engine to use for decoding length fields
//
// Returns:
//   - []string: The decoded keys in order
//   - int: The total number of bytes consumed
//   - error: ErrInvalidKeyPayload if the payload is truncated
func DecodeKeyNames(data []byte, engine endian.EndianEngine) ([]string, int, error) {
	if len(data) < 2 {
		return nil, 0, fmt.Errorf("%w: cannot read key count (need 2 bytes, have %d)", errs.ErrInvalidKeyPayload, len(data))
	}

	count := int(engine.Uint16(data))
	offset := 2

	names := make([]string, count)
	for i := range count {
		if len(data) < offset+2 {
			return nil, 0, fmt.Errorf("%w: cannot read length of key %d at offset %d", errs.ErrInvalidKeyPayload, i, offset)
		}

		n := int(engine.Uint16(data[offset:]))
		offset += 2

		if len(data) < offset+n {
			return nil, 0, fmt.Errorf("%w: key %d needs %d bytes at offset %d, have %d total",
				errs.ErrInvalidKeyPayload, i, n, offset, len(data))
		}

		names[i] = string(data[offset : offset+n])
		offset += n
	}

	return names, offset, nil
}

// VerifyKeyHashes checks that hashFunc(names[i]) equals ids[i] for every entry.
//
// Returns ErrInvalidKeyPayload when the lengths differ and ErrHashMismatch
// on the first key whose hash does not match.
func VerifyKeyHashes(names []string, ids []uint64, hashFunc func(string) uint64) error {
	if len(names) != len(ids) {
		return fmt.Errorf("%w: key count %d does not match index count %d",
			errs.ErrInvalidKeyPayload, len(names), len(ids))
	}

	for i, name := range names {
		if want := hashFunc(name); want != ids[i] {
			return fmt.Errorf("%w: key %q at index %d: expected 0x%016x, got 0x%016x",
				errs.ErrHashMismatch, name, i, want, ids[i])
		}
	}

	return nil
}
