package compress

import "fmt"

// NoOpCompressor stores pack data sections without compression.
//
// It is the default for packs that are mapped and read in place, since the
// decoder can then slice geometry buffers straight out of the input.
type NoOpCompressor struct{}

var (
	_ Codec               = (*NoOpCompressor)(nil)
	_ BoundedDecompressor = (*NoOpCompressor)(nil)
)

// NewNoOpCompressor creates a new no-operation compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input slice as-is.
//
// The returned slice shares memory with the input.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is.
//
// The returned slice shares memory with the input.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// DecompressLimit returns the input slice as-is when it fits in limit bytes.
func (c NoOpCompressor) DecompressLimit(data []byte, limit int) ([]byte, error) {
	if len(data) > limit {
		return nil, fmt.Errorf("%w: %d stored bytes, limit %d", ErrSizeLimit, len(data), limit)
	}

	return data, nil
}
