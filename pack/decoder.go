package pack

import (
	"errors"
	"fmt"

	"github.com/arloliu/geomcodec/compress"
	"github.com/arloliu/geomcodec/endian"
	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/fbgeom"
	ienc "github.com/arloliu/geomcodec/internal/encoding"
	"github.com/arloliu/geomcodec/internal/hash"
	"github.com/arloliu/geomcodec/internal/options"
	"github.com/arloliu/geomcodec/section"
)

// Decoder decodes an encoded pack and reconstructs a Pack.
//
// Note: The Decoder is NOT thread-safe. The Pack it returns is safe for
// concurrent reads.
type Decoder struct {
	*DecoderConfig
	data   []byte
	engine endian.EndianEngine
	header section.PackHeader
}

// NewDecoder creates a Decoder for the given pack and validates its header.
//
// Returns:
//   - *Decoder: New decoder instance ready for decoding
//   - error: Header parsing errors, or ErrInvalidIndexSize when data is shorter than the header claims
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	config := &DecoderConfig{}
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if config.geom == nil {
		geom, err := fbgeom.NewDecoder()
		if err != nil {
			return nil, err
		}
		config.geom = geom
	}

	header, err := section.ParsePackHeader(data)
	if err != nil {
		return nil, err
	}

	if len(data) < header.DataOffset() {
		return nil, fmt.Errorf("%w: need %d bytes for key names and index, have %d",
			errs.ErrInvalidIndexSize, header.DataOffset(), len(data))
	}

	if len(data) < header.TotalSize() {
		return nil, fmt.Errorf("%w: data section truncated (need %d bytes, have %d)",
			errs.ErrEntryOutOfRange, header.TotalSize(), len(data))
	}

	return &Decoder{
		DecoderConfig: config,
		data:          data,
		engine:        endian.GetLittleEndianEngine(),
		header:        header,
	}, nil
}

// Header returns the parsed pack header.
func (d *Decoder) Header() section.PackHeader {
	return d.header
}

// Decode decompresses the data section, verifies its checksum and builds the
// key index.
//
// With CompressionNone the returned Pack shares memory with the input.
func (d *Decoder) Decode() (Pack, error) {
	p := Pack{
		flag: d.header.Flag,
		geom: d.geom,
	}

	names, err := d.parseKeyNames()
	if err != nil {
		return Pack{}, err
	}

	entries, ids, err := d.parseIndexEntries()
	if err != nil {
		return Pack{}, err
	}

	raw, err := d.decompressData()
	if err != nil {
		return Pack{}, err
	}

	for i, entry := range entries {
		if entry.End() > uint64(len(raw)) {
			return Pack{}, fmt.Errorf("%w: entry %d ends at %d, data section is %d bytes",
				errs.ErrEntryOutOfRange, i, entry.End(), len(raw))
		}
	}

	p.data = raw
	p.entries = entries

	if names != nil {
		if err := ienc.VerifyKeyHashes(names, ids, hash.ID); err != nil {
			return Pack{}, fmt.Errorf("key name verification failed: %w", err)
		}

		p.names = names
		p.byName = make(map[string]int, len(names))
		for i, name := range names {
			if _, dup := p.byName[name]; dup {
				return Pack{}, fmt.Errorf("%w: %q", errs.ErrDuplicateKey, name)
			}
			p.byName[name] = i
		}

		return p, nil
	}

	p.byID = make(map[uint64]int, len(ids))
	for i, id := range ids {
		if _, dup := p.byID[id]; dup {
			return Pack{}, fmt.Errorf("%w: id 0x%016x without key names", errs.ErrDuplicateKey, id)
		}
		p.byID[id] = i
	}

	return p, nil
}

func (d *Decoder) parseKeyNames() ([]string, error) {
	if !d.header.Flag.HasKeyNames() {
		return nil, nil
	}

	payload := d.data[section.KeyNamesOffset:d.header.IndexOffset()]
	names, n, err := ienc.DecodeKeyNames(payload, d.engine)
	if err != nil {
		return nil, err
	}

	if n != len(payload) {
		return nil, fmt.Errorf("%w: payload has %d trailing bytes", errs.ErrInvalidKeyPayload, len(payload)-n)
	}

	if len(names) != int(d.header.EntryCount) {
		return nil, fmt.Errorf("%w: %d key names for %d entries", errs.ErrInvalidKeyPayload, len(names), d.header.EntryCount)
	}

	return names, nil
}

func (d *Decoder) parseIndexEntries() ([]section.IndexEntry, []uint64, error) {
	count := int(d.header.EntryCount)
	entries := make([]section.IndexEntry, count)
	ids := make([]uint64, count)

	offset := d.header.IndexOffset()
	for i := range count {
		entry, err := section.ParseIndexEntry(d.data[offset:], d.engine)
		if err != nil {
			return nil, nil, err
		}
		entries[i] = entry
		ids[i] = entry.KeyID
		offset += section.IndexEntrySize
	}

	return entries, ids, nil
}

func (d *Decoder) decompressData() ([]byte, error) {
	codec, err := compress.GetCodec(d.header.Flag.Compression())
	if err != nil {
		return nil, err
	}

	stored := d.data[d.header.DataOffset():d.header.TotalSize()]
	raw, err := compress.DecompressLimit(codec, stored, int(d.header.RawSize))
	if errors.Is(err, compress.ErrSizeLimit) {
		return nil, fmt.Errorf("%w: %w", errs.ErrChecksumMismatch, err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decompress data section: %w", err)
	}

	if len(raw) != int(d.header.RawSize) {
		return nil, fmt.Errorf("%w: data section is %d bytes, header says %d",
			errs.ErrChecksumMismatch, len(raw), d.header.RawSize)
	}

	if sum := hash.Checksum(raw); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: got 0x%016x, want 0x%016x", errs.ErrChecksumMismatch, sum, d.header.Checksum)
	}

	return raw, nil
}
