// Package geomcodec converts 2D/3D geometry between an in-memory tree, the
// BGFB FlatBuffers binary format, and the Common Geometry XML grammar.
//
// # Core Features
//
//   - Closed variant model of curves, curve vectors, solids, B-spline surfaces and meshes
//   - BGFB binary encoder and bounds-checked decoder ("bg0001fb" prefix)
//   - Zero-copy polyface carrier over decoded buffers
//   - Structured XML and compact token writers with configurable output policies
//   - Keyed geometry packs with optional compression (None, Zstd, S2, LZ4)
//
// # Basic Usage
//
//	import "github.com/arloliu/geomcodec"
//
//	line := &geometry.LineSegment{Start: a, End: b}
//
//	data, _ := geomcodec.ToBytes(line)
//	g, _ := geomcodec.FromBytes(data)
//
//	xmlText, _ := geomcodec.ToXML(g)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the fbgeom,
// cgxml and pack packages. For reuse of encoders, custom structured writers,
// or fine-grained control, use those packages directly.
package geomcodec

import (
	"bytes"
	"io"

	"github.com/arloliu/geomcodec/cgxml"
	"github.com/arloliu/geomcodec/fbgeom"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/hash"
	"github.com/arloliu/geomcodec/pack"
)

// ToBytes encodes g as a BGFB buffer.
//
// Parameters:
//   - g: Geometry to encode
//   - opts: Optional encoder options (logger, max depth)
//
// Returns:
//   - []byte: Buffer starting with the "bg0001fb" magic
//   - error: errs.ErrNilGeometry, errs.ErrUnsupportedGeometry or errs.ErrMaxDepthExceeded
func ToBytes(g geometry.Geometry, opts ...fbgeom.EncoderOption) ([]byte, error) {
	enc, err := fbgeom.NewEncoder(opts...)
	if err != nil {
		return nil, err
	}

	return enc.Encode(g)
}

// FromBytes decodes a BGFB buffer.
//
// Returns errs.ErrInvalidMagic when data lacks the magic prefix and an error
// wrapping errs.ErrCorruptBuffer for malformed input.
func FromBytes(data []byte, opts ...fbgeom.DecoderOption) (geometry.Geometry, error) {
	dec, err := fbgeom.NewDecoder(opts...)
	if err != nil {
		return nil, err
	}

	return dec.Decode(data)
}

// IsGeometryBuffer reports whether data starts with the BGFB magic prefix.
func IsGeometryBuffer(data []byte) bool {
	return fbgeom.HasMagic(data)
}

// WriteXML writes g as Common Geometry XML to w.
func WriteXML(w io.Writer, g geometry.Geometry, opts ...cgxml.WriterOption) error {
	cw, err := cgxml.NewWriter(opts...)
	if err != nil {
		return err
	}

	x := cgxml.NewXMLWriter(w)
	if err := cw.WriteGeometry(x, g); err != nil {
		return err
	}

	return x.Flush()
}

// ToXML returns g as Common Geometry XML text.
//
// Example:
//
//	s, _ := geomcodec.ToXML(line)
//	// <LineSegment xmlns="http://www.bentley.com/schemas/Bentley.Geometry.Common.1.0">...
func ToXML(g geometry.Geometry, opts ...cgxml.WriterOption) (string, error) {
	var buf bytes.Buffer
	if err := WriteXML(&buf, g, opts...); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// ToTokens returns g as a compact token stream; see cgxml.TokenWriter and
// cgxml.DecodeTokens.
func ToTokens(g geometry.Geometry, opts ...cgxml.WriterOption) ([]byte, error) {
	cw, err := cgxml.NewWriter(opts...)
	if err != nil {
		return nil, err
	}

	t := cgxml.NewTokenWriter()
	if err := cw.WriteGeometry(t, g); err != nil {
		return nil, err
	}

	return t.Bytes(), nil
}

// NewPackEncoder creates a pack encoder.
//
// With no options, key names are stored and the data section is uncompressed.
func NewPackEncoder(opts ...pack.EncoderOption) (*pack.Encoder, error) {
	return pack.NewEncoder(opts...)
}

// NewCompressedPackEncoder creates a pack encoder whose data section is
// compressed with Zstd.
func NewCompressedPackEncoder(opts ...pack.EncoderOption) (*pack.Encoder, error) {
	return pack.NewEncoder(append([]pack.EncoderOption{pack.WithCompression(format.CompressionZstd)}, opts...)...)
}

// DecodePack decodes a geometry pack.
func DecodePack(data []byte, opts ...pack.DecoderOption) (pack.Pack, error) {
	dec, err := pack.NewDecoder(data, opts...)
	if err != nil {
		return pack.Pack{}, err
	}

	return dec.Decode()
}

// KeyID returns the xxHash64 id a pack stores for key.
func KeyID(key string) uint64 {
	return hash.ID(key)
}
