// Package fbgeom converts geometry values to and from the BGFB binary format.
//
// A BGFB buffer is the 8-byte magic "bg0001fb" followed by a FlatBuffer whose
// root table is a VariantGeometry: a union discriminant, a reference to the
// payload table, and an optional curve primitive tag. Curve vectors, solid
// sweeps and geometry lists nest further VariantGeometry or CurveVector tables
// depth-first.
//
// # Encoding
//
//	enc, err := fbgeom.NewEncoder()
//	data, err := enc.Encode(&geometry.LineSegment{Start: a, End: b})
//
// Encoding is deterministic: the same tree always yields the same bytes.
// Children the encoder cannot represent (nil entries, unknown implementations)
// are dropped from their parent array. Each drop is logged at warning level
// and counted in Stats().Dropped.
//
// # Decoding
//
//	dec, err := fbgeom.NewDecoder()
//	g, err := dec.Decode(data)
//
// The decoder checks the magic, then verifies every table, vector and struct
// against the buffer length before reading it. Malformed input yields an error
// wrapping errs.ErrCorruptBuffer; it never panics.
//
// # Carrier
//
// DecodePolyfaceCarrier returns a PolyfaceCarrier whose arrays are views into
// the caller's buffer rather than copies. The buffer must stay alive and
// unmodified while the carrier is in use.
//
// Encoder and Decoder are safe for concurrent use.
package fbgeom
