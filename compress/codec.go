package compress

import (
	"errors"
	"fmt"

	"github.com/arloliu/geomcodec/format"
)

// Compressor compresses the data section of a geometry pack.
//
// The input is the concatenation of BGFB buffers, which carry many repeated
// vtables and float64 coordinates, so general purpose codecs do well on it.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller unless documented otherwise
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a data section compressed by the matching Compressor.
//
// Example:
//
//	decompressor := NewZstdCompressor()
//	section, err := decompressor.Decompress(compressed)
//	if err != nil {
//	    return fmt.Errorf("decompression failed: %w", err)
//	}
//
// Decompressor implementations are safe for concurrent use.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Returns an error if the input is corrupted or was produced by a
	// different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// ErrSizeLimit reports decompressed output larger than the caller allows.
var ErrSizeLimit = errors.New("decompressed data exceeds size limit")

// BoundedDecompressor stops decompressing once the output would exceed limit
// bytes, so an untrusted section cannot expand past its declared size.
type BoundedDecompressor interface {
	DecompressLimit(data []byte, limit int) ([]byte, error)
}

// DecompressLimit decompresses data with d and fails with ErrSizeLimit when
// the output is longer than limit bytes. Decompressors that cannot stop early
// are checked once they finish.
func DecompressLimit(d Decompressor, data []byte, limit int) ([]byte, error) {
	if b, ok := d.(BoundedDecompressor); ok {
		return b.DecompressLimit(data, limit)
	}

	out, err := d.Decompress(data)
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrSizeLimit, len(out), limit)
	}

	return out, nil
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression of a pack data section.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm format.CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression. Returns 0 when the
// original size is zero.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec creates a Codec for the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
//
// Returns:
//   - Codec: Compressor instance for the specified type
//   - error: Invalid compression type error
func CreateCodec(compressionType format.CompressionType, target string) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
