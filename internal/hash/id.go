// Package hash provides the xxHash64 helpers used to key and checksum geometry packs.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a pack key.
func ID(key string) uint64 {
	return xxhash.Sum64String(key)
}

// Checksum computes the xxHash64 of a pack section.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Digest accumulates a checksum over several sections written in order.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// Write adds data to the running checksum.
func (d *Digest) Write(data []byte) {
	_, _ = d.d.Write(data)
}

// Sum64 returns the checksum of everything written so far.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
