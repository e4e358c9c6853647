package pack

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/geomcodec/compress"
	"github.com/arloliu/geomcodec/endian"
	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/fbgeom"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/collision"
	ienc "github.com/arloliu/geomcodec/internal/encoding"
	"github.com/arloliu/geomcodec/internal/hash"
	"github.com/arloliu/geomcodec/internal/options"
	"github.com/arloliu/geomcodec/internal/pool"
	"github.com/arloliu/geomcodec/section"
)

// initialIndexCapacity is the initial capacity for index entries slice.
const initialIndexCapacity = 16

// Encoder builds a geometry pack.
//
// Note: The Encoder is NOT thread-safe and NOT reusable. After Finish, a new
// encoder must be created for further encoding.
type Encoder struct {
	*EncoderConfig
	engine   endian.EndianEngine
	tracker  *collision.Tracker
	entries  []section.IndexEntry
	data     *pool.ByteBuffer
	stats    compress.CompressionStats
	finished bool
}

// NewEncoder creates a pack Encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	if config.geom == nil {
		geom, err := fbgeom.NewEncoder(fbgeom.WithLogger(config.log))
		if err != nil {
			return nil, err
		}
		config.geom = geom
	}

	return &Encoder{
		EncoderConfig: config,
		engine:        endian.GetLittleEndianEngine(),
		tracker:       collision.NewTracker(),
		entries:       make([]section.IndexEntry, 0, initialIndexCapacity),
		data:          pool.GetPackBuffer(),
	}, nil
}

// Len returns the number of entries added so far.
func (e *Encoder) Len() int {
	return len(e.entries)
}

// Add encodes g and stores it under key.
//
// Returns errs.ErrInvalidKey for an empty key, errs.ErrDuplicateKey for a key
// already in the pack, and any error of the BGFB encoder.
func (e *Encoder) Add(key string, g geometry.Geometry) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	data, err := e.geom.Encode(g)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	return e.AddEncoded(key, data)
}

// AddEncoded stores an already encoded BGFB buffer under key.
//
// The buffer must start with the BGFB magic; its body is not verified.
func (e *Encoder) AddEncoded(key string, data []byte) error {
	if e.finished {
		return errs.ErrEncoderFinished
	}

	if !fbgeom.HasMagic(data) {
		return fmt.Errorf("%w: entry %q", errs.ErrInvalidMagic, key)
	}

	if len(e.entries) >= section.MaxEntries {
		return fmt.Errorf("%w: maximum %d", errs.ErrTooManyEntries, section.MaxEntries)
	}

	offset := e.data.Len()
	if uint64(offset)+uint64(len(data)) > section.MaxSectionBytes {
		return fmt.Errorf("%w: data section would exceed %d bytes", errs.ErrEntryOutOfRange, uint64(section.MaxSectionBytes))
	}

	id := hash.ID(key)
	if err := e.tracker.TrackKey(key, id); err != nil {
		return fmt.Errorf("%w: %q", err, key)
	}

	e.entries = append(e.entries, section.NewIndexEntry(id, uint32(offset), uint32(len(data)))) //nolint: gosec
	e.data.MustWrite(data)

	return nil
}

// Stats returns the compression statistics of the finished pack.
func (e *Encoder) Stats() compress.CompressionStats {
	return e.stats
}

// Finish assembles the pack and releases the encoder's buffers.
//
// Returns:
//   - []byte: Complete pack with header, key names, index entries and data section
//   - error: ErrEncoderFinished if called twice, or key names and compression errors
func (e *Encoder) Finish() ([]byte, error) {
	if e.finished {
		return nil, errs.ErrEncoderFinished
	}
	e.finished = true

	defer func() {
		pool.PutPackBuffer(e.data)
		e.data = nil
	}()

	header := section.NewPackHeader()
	header.Flag.SetCompression(e.compression)
	header.EntryCount = uint32(len(e.entries)) //nolint: gosec

	withNames := e.keyNames || e.tracker.HasCollision()
	if withNames && !e.keyNames {
		e.log.WithFields(logrus.Fields{
			"entries": len(e.entries),
		}).Debug("pack key hash collision, storing key names")
	}

	var keyPayload []byte
	if withNames {
		var err error
		keyPayload, err = ienc.EncodeKeyNames(e.tracker.Keys(), e.engine)
		if err != nil {
			return nil, fmt.Errorf("failed to encode key names: %w", err)
		}
		header.Flag.SetHasKeyNames(true)
		header.KeyPayloadSize = uint32(len(keyPayload)) //nolint: gosec
	}

	raw := e.data.Bytes()
	header.RawSize = uint32(len(raw)) //nolint: gosec
	header.Checksum = hash.Checksum(raw)

	stored, err := e.codec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to compress data section: %w", err)
	}
	if uint64(len(stored)) > section.MaxSectionBytes {
		return nil, fmt.Errorf("%w: compressed data section is %d bytes", errs.ErrEntryOutOfRange, len(stored))
	}
	header.DataSize = uint32(len(stored)) //nolint: gosec

	e.stats = compress.CompressionStats{
		Algorithm:      e.compression,
		OriginalSize:   int64(len(raw)),
		CompressedSize: int64(len(stored)),
	}

	out := make([]byte, header.TotalSize())
	offset := copy(out, header.Bytes())
	offset += copy(out[offset:], keyPayload)
	for _, entry := range e.entries {
		offset = entry.WriteToSlice(out, offset, e.engine)
	}
	copy(out[offset:], stored)

	return out, nil
}

// Compression returns the codec type the encoder applies to the data section.
func (e *Encoder) Compression() format.CompressionType {
	return e.compression
}
