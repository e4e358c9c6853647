// Package errs defines the sentinel errors returned by geomcodec packages.
//
// Callers should compare against these values with errors.Is, since most
// call sites wrap them with additional context.
package errs

import "errors"

// Binary format errors.
var (
	ErrInvalidMagic       = errors.New("buffer does not start with the geometry magic prefix")
	ErrCorruptBuffer      = errors.New("corrupt flatbuffer payload")
	ErrUnknownGeometryTag = errors.New("unknown geometry union tag")
	ErrUnexpectedGeometry = errors.New("decoded geometry has an unexpected kind")
	ErrIndexCountMismatch = errors.New("index array length does not match point index count")
	ErrInvalidStride      = errors.New("array length is not a multiple of its stride")
	ErrMaxDepthExceeded   = errors.New("geometry nesting exceeds maximum depth")
)

// Encoding and writing errors.
var (
	ErrNilGeometry         = errors.New("nil geometry")
	ErrUnsupportedGeometry = errors.New("unsupported geometry")
	ErrInvalidMaxDepth     = errors.New("max depth must be positive")
	ErrNilWriter           = errors.New("nil structured writer")
	ErrMisplacedAttribute  = errors.New("attribute must directly follow the start of a set")
	ErrInvalidTokenStream  = errors.New("malformed structured token stream")
)

// Pack container errors.
var (
	ErrInvalidPackMagic   = errors.New("invalid pack magic number")
	ErrInvalidHeaderSize  = errors.New("invalid pack header size")
	ErrInvalidHeaderFlags = errors.New("invalid pack header flags")
	ErrInvalidIndexSize   = errors.New("invalid pack index section size")
	ErrInvalidKeyPayload  = errors.New("invalid pack key names payload")
	ErrInvalidKey         = errors.New("invalid pack key")
	ErrDuplicateKey       = errors.New("pack key already added")
	ErrTooManyEntries     = errors.New("too many pack entries")
	ErrChecksumMismatch   = errors.New("pack data checksum mismatch")
	ErrEntryOutOfRange    = errors.New("pack entry exceeds data section")
	ErrEncoderFinished    = errors.New("pack encoder already finished")
	ErrHashMismatch       = errors.New("pack key does not match its index hash")
	ErrKeyNotFound        = errors.New("pack key not found")
)
