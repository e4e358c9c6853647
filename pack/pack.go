package pack

import (
	"fmt"
	"iter"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/fbgeom"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/hash"
	"github.com/arloliu/geomcodec/section"
)

// Entry is one geometry of a pack as yielded by Pack.All.
type Entry struct {
	// Key is the entry key, empty when the pack carries no key names.
	Key string
	// ID is the xxHash64 of the key.
	ID uint64
	// Data is the BGFB buffer. It aliases the pack's data section.
	Data []byte
}

// Pack is a decoded geometry pack. It is read-only and safe for concurrent use.
type Pack struct {
	flag    section.PackFlag
	data    []byte
	entries []section.IndexEntry
	names   []string
	byName  map[string]int
	byID    map[uint64]int
	geom    *fbgeom.Decoder
}

// Len returns the number of geometries in the pack.
func (p Pack) Len() int {
	return len(p.entries)
}

// Compression returns the codec the data section was stored with.
func (p Pack) Compression() format.CompressionType {
	return p.flag.Compression()
}

// HasKeyNames reports whether the pack stores its key strings.
func (p Pack) HasKeyNames() bool {
	return p.names != nil
}

// Keys returns the keys in insertion order.
// Returns nil if the pack doesn't have a key names payload.
func (p Pack) Keys() []string {
	if p.names == nil {
		return nil
	}

	return append([]string(nil), p.names...)
}

// IDs returns the key ids in insertion order.
func (p Pack) IDs() []uint64 {
	ids := make([]uint64, len(p.entries))
	for i, e := range p.entries {
		ids[i] = e.KeyID
	}

	return ids
}

// Has reports whether the pack contains key.
func (p Pack) Has(key string) bool {
	_, ok := p.lookup(key)
	return ok
}

// Bytes returns the BGFB buffer stored under key.
//
// The returned slice aliases the pack's data section and must not be modified.
func (p Pack) Bytes(key string) ([]byte, bool) {
	i, ok := p.lookup(key)
	if !ok {
		return nil, false
	}

	return p.entryBytes(i), true
}

// Geometry decodes the geometry stored under key.
//
// Returns errs.ErrKeyNotFound if the key is absent, or the BGFB decoder error.
func (p Pack) Geometry(key string) (geometry.Geometry, error) {
	data, ok := p.Bytes(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrKeyNotFound, key)
	}

	g, err := p.geom.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", key, err)
	}

	return g, nil
}

// All returns an iterator over the entries in insertion order.
//
// Example:
//
//	for e := range p.All() {
//	    fmt.Printf("%s: %d bytes\n", e.Key, len(e.Data))
//	}
func (p Pack) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for i, entry := range p.entries {
			e := Entry{ID: entry.KeyID, Data: p.entryBytes(i)}
			if p.names != nil {
				e.Key = p.names[i]
			}

			if !yield(e) {
				return
			}
		}
	}
}

// lookup resolves by name when names are present, since distinct keys may share an id.
func (p Pack) lookup(key string) (int, bool) {
	if p.byName != nil {
		i, ok := p.byName[key]
		return i, ok
	}

	i, ok := p.byID[hash.ID(key)]

	return i, ok
}

func (p Pack) entryBytes(i int) []byte {
	e := p.entries[i]
	return p.data[e.Offset:e.End():e.End()]
}
