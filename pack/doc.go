// Package pack stores many BGFB geometry buffers in one keyed container.
//
// A pack is a fixed header, an optional key names payload, a 16-byte index
// entry per geometry, and a data section holding the buffers back to back.
// The data section may be compressed with any codec from package compress and
// is protected by an xxHash64 checksum of its uncompressed bytes.
//
// # Encoding
//
//	enc, err := pack.NewEncoder(pack.WithCompression(format.CompressionZstd))
//	err = enc.Add("road/centerline", curve)
//	err = enc.Add("building/footprint", region)
//	data, err := enc.Finish()
//
// Keys are hashed with xxHash64 for the index. Key names are stored by
// default; WithKeyNames(false) omits them unless two keys share a hash, in
// which case the encoder stores them anyway so every key stays resolvable.
//
// # Decoding
//
//	dec, err := pack.NewDecoder(data)
//	p, err := dec.Decode()
//	g, err := p.Geometry("road/centerline")
//
// Decode validates the header, the key hashes, the checksum and every index
// entry before returning. Geometry buffers are decoded on demand.
package pack
