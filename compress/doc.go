// Package compress provides the codecs applied to the data section of a
// geometry pack.
//
// A pack data section is the concatenation of BGFB buffers. FlatBuffers
// repeat vtables and pad to alignment, and coordinates of neighbouring
// geometries share exponents, so general purpose codecs shrink it well.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): data is stored as-is and the decoder
//     slices geometry buffers straight out of the input
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// # Usage
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "data section")
//	compressed, err := codec.Compress(section)
//	original, err := codec.Decompress(compressed)
//
// GetCodec returns shared built-in instances. All codecs are safe for
// concurrent use; zstd encoders and decoders and LZ4 compressors are pooled.
package compress
