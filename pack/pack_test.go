package pack

import (
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/geomcodec/compress"
	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/fbgeom"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/internal/geomtest"
	"github.com/arloliu/geomcodec/internal/hash"
	"github.com/arloliu/geomcodec/section"
)

var allCompressions = []format.CompressionType{
	format.CompressionNone,
	format.CompressionZstd,
	format.CompressionS2,
	format.CompressionLZ4,
}

func newTestEncoder(t *testing.T, opts ...EncoderOption) *Encoder {
	t.Helper()
	enc, err := NewEncoder(opts...)
	require.NoError(t, err)

	return enc
}

func buildSamplePack(t *testing.T, opts ...EncoderOption) []byte {
	t.Helper()
	enc := newTestEncoder(t, opts...)
	for _, s := range geomtest.Samples() {
		require.NoError(t, enc.Add(s.Name, s.Geometry))
	}

	data, err := enc.Finish()
	require.NoError(t, err)

	return data
}

func decodePack(t *testing.T, data []byte) Pack {
	t.Helper()
	dec, err := NewDecoder(data)
	require.NoError(t, err)

	p, err := dec.Decode()
	require.NoError(t, err)

	return p
}

func TestPack_RoundTrip(t *testing.T) {
	samples := geomtest.Samples()

	for _, c := range allCompressions {
		t.Run(c.String(), func(t *testing.T) {
			p := decodePack(t, buildSamplePack(t, WithCompression(c)))

			require.Equal(t, len(samples), p.Len())
			require.Equal(t, c, p.Compression())
			require.True(t, p.HasKeyNames())

			keys := make([]string, len(samples))
			for i, s := range samples {
				keys[i] = s.Name
			}
			require.Equal(t, keys, p.Keys())

			for _, s := range samples {
				require.True(t, p.Has(s.Name))

				g, err := p.Geometry(s.Name)
				require.NoError(t, err, s.Name)
				require.Equal(t, s.Geometry, g, s.Name)
			}
		})
	}
}

func TestPack_BytesMatchGeometryEncoder(t *testing.T) {
	geom, err := fbgeom.NewEncoder()
	require.NoError(t, err)

	line := geomtest.Line()
	want, err := geom.Encode(line)
	require.NoError(t, err)

	enc := newTestEncoder(t, WithGeometryEncoder(geom))
	require.NoError(t, enc.Add("line", line))
	data, err := enc.Finish()
	require.NoError(t, err)

	p := decodePack(t, data)
	got, ok := p.Bytes("line")
	require.True(t, ok)
	require.Equal(t, want, got)
	require.Equal(t, len(got), cap(got))

	_, ok = p.Bytes("missing")
	require.False(t, ok)
}

func TestPack_WithoutKeyNames(t *testing.T) {
	data := buildSamplePack(t, WithKeyNames(false), WithCompression(format.CompressionS2))

	dec, err := NewDecoder(data)
	require.NoError(t, err)
	require.False(t, dec.Header().Flag.HasKeyNames())
	require.Zero(t, dec.Header().KeyPayloadSize)

	p, err := dec.Decode()
	require.NoError(t, err)
	require.False(t, p.HasKeyNames())
	require.Nil(t, p.Keys())

	for _, s := range geomtest.Samples() {
		g, err := p.Geometry(s.Name)
		require.NoError(t, err)
		require.Equal(t, s.Geometry, g)
	}

	for e := range p.All() {
		require.Empty(t, e.Key)
		require.True(t, fbgeom.HasMagic(e.Data))
	}

	withNames := buildSamplePack(t, WithCompression(format.CompressionS2))
	require.Less(t, len(data), len(withNames))
}

func TestPack_All(t *testing.T) {
	enc := newTestEncoder(t)
	require.NoError(t, enc.Add("a", geomtest.Line()))
	require.NoError(t, enc.Add("b", geomtest.Arc()))
	require.NoError(t, enc.Add("c", geomtest.Cone()))
	require.Equal(t, 3, enc.Len())

	data, err := enc.Finish()
	require.NoError(t, err)
	p := decodePack(t, data)

	var keys []string
	for e := range p.All() {
		keys = append(keys, e.Key)
		require.Equal(t, hash.ID(e.Key), e.ID)
	}
	require.Equal(t, []string{"a", "b", "c"}, keys)
	require.Equal(t, []uint64{hash.ID("a"), hash.ID("b"), hash.ID("c")}, p.IDs())

	count := 0
	for range p.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestPack_Empty(t *testing.T) {
	for _, c := range allCompressions {
		t.Run(c.String(), func(t *testing.T) {
			enc := newTestEncoder(t, WithCompression(c))
			data, err := enc.Finish()
			require.NoError(t, err)

			p := decodePack(t, data)
			require.Zero(t, p.Len())
			require.Empty(t, p.Keys())
			require.False(t, p.Has("x"))
		})
	}
}

func TestPack_Compresses(t *testing.T) {
	enc := newTestEncoder(t, WithCompression(format.CompressionZstd))
	for i := range 50 {
		require.NoError(t, enc.Add(fmt.Sprintf("square-%03d", i), geomtest.Square(float64(i))))
	}

	_, err := enc.Finish()
	require.NoError(t, err)

	stats := enc.Stats()
	require.Equal(t, format.CompressionZstd, stats.Algorithm)
	require.Positive(t, stats.OriginalSize)
	require.Less(t, stats.CompressionRatio(), 1.0)
	require.Positive(t, stats.SpaceSavings())
}

func TestEncoder_Errors(t *testing.T) {
	t.Run("InvalidCompression", func(t *testing.T) {
		_, err := NewEncoder(WithCompression(format.CompressionType(0x7f)))
		require.Error(t, err)
	})

	t.Run("NilGeometryEncoder", func(t *testing.T) {
		_, err := NewEncoder(WithGeometryEncoder(nil))
		require.Error(t, err)
	})

	t.Run("NilGeometry", func(t *testing.T) {
		enc := newTestEncoder(t)
		require.ErrorIs(t, enc.Add("nil", nil), errs.ErrNilGeometry)
		require.Zero(t, enc.Len())
	})

	t.Run("EmptyKey", func(t *testing.T) {
		enc := newTestEncoder(t)
		require.ErrorIs(t, enc.Add("", geomtest.Line()), errs.ErrInvalidKey)
	})

	t.Run("DuplicateKey", func(t *testing.T) {
		enc := newTestEncoder(t)
		require.NoError(t, enc.Add("k", geomtest.Line()))
		require.ErrorIs(t, enc.Add("k", geomtest.Arc()), errs.ErrDuplicateKey)
		require.Equal(t, 1, enc.Len())
	})

	t.Run("MissingMagic", func(t *testing.T) {
		enc := newTestEncoder(t)
		require.ErrorIs(t, enc.AddEncoded("raw", []byte("not a geometry")), errs.ErrInvalidMagic)
	})

	t.Run("Finished", func(t *testing.T) {
		enc := newTestEncoder(t)
		_, err := enc.Finish()
		require.NoError(t, err)

		require.ErrorIs(t, enc.Add("k", geomtest.Line()), errs.ErrEncoderFinished)
		require.ErrorIs(t, enc.AddEncoded("k", nil), errs.ErrEncoderFinished)
		_, err = enc.Finish()
		require.ErrorIs(t, err, errs.ErrEncoderFinished)
	})
}

func TestEncoder_LoggerOption(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	enc := newTestEncoder(t, WithLogger(logger), WithKeyNames(false))
	require.NoError(t, enc.Add("a", geomtest.Line()))
	_, err := enc.Finish()
	require.NoError(t, err)

	// No collision, so nothing forces key names.
	require.Empty(t, hook.AllEntries())
	require.Equal(t, logger, enc.log)
}

func TestDecoder_DataLargerThanRawSize(t *testing.T) {
	enc, err := fbgeom.NewEncoder()
	require.NoError(t, err)
	line, err := enc.Encode(geomtest.Line())
	require.NoError(t, err)

	for _, c := range allCompressions {
		t.Run(c.String(), func(t *testing.T) {
			pe := newTestEncoder(t, WithCompression(c))
			for i := range 500 {
				require.NoError(t, pe.AddEncoded(fmt.Sprintf("line-%d", i), line))
			}
			data, err := pe.Finish()
			require.NoError(t, err)

			header, err := section.ParsePackHeader(data)
			require.NoError(t, err)

			for _, rawSize := range []uint32{header.RawSize - 1, 16, 0} {
				h := header
				h.RawSize = rawSize
				b := append(h.Bytes(), data[section.HeaderSize:]...)

				dec, err := NewDecoder(b)
				require.NoError(t, err)

				_, err = dec.Decode()
				require.ErrorIs(t, err, errs.ErrChecksumMismatch)
				require.ErrorIs(t, err, compress.ErrSizeLimit)
			}
		})
	}
}

func TestDecoder_Corruption(t *testing.T) {
	data := buildSamplePack(t, WithCompression(format.CompressionNone))
	header, err := section.ParsePackHeader(data)
	require.NoError(t, err)

	corrupt := func(fn func(b []byte) []byte) []byte {
		b := append([]byte(nil), data...)
		return fn(b)
	}

	t.Run("ShortHeader", func(t *testing.T) {
		_, err := NewDecoder(data[:section.HeaderSize-1])
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("BadMagic", func(t *testing.T) {
		b := corrupt(func(b []byte) []byte { b[1] = 0; return b })
		_, err := NewDecoder(b)
		require.ErrorIs(t, err, errs.ErrInvalidPackMagic)
	})

	t.Run("TruncatedIndex", func(t *testing.T) {
		_, err := NewDecoder(data[:header.DataOffset()-1])
		require.ErrorIs(t, err, errs.ErrInvalidIndexSize)
	})

	t.Run("TruncatedData", func(t *testing.T) {
		_, err := NewDecoder(data[:len(data)-1])
		require.ErrorIs(t, err, errs.ErrEntryOutOfRange)
	})

	t.Run("FlippedDataByte", func(t *testing.T) {
		b := corrupt(func(b []byte) []byte { b[len(b)-3] ^= 0xff; return b })
		dec, err := NewDecoder(b)
		require.NoError(t, err)

		_, err = dec.Decode()
		require.ErrorIs(t, err, errs.ErrChecksumMismatch)
	})

	t.Run("RenamedKey", func(t *testing.T) {
		// First key name starts after the uint16 count and its uint16 length.
		b := corrupt(func(b []byte) []byte { b[section.KeyNamesOffset+4] ^= 0x20; return b })
		dec, err := NewDecoder(b)
		require.NoError(t, err)

		_, err = dec.Decode()
		require.ErrorIs(t, err, errs.ErrHashMismatch)
	})

	t.Run("EntryOutOfRange", func(t *testing.T) {
		b := corrupt(func(b []byte) []byte {
			sizeAt := header.IndexOffset() + 12
			b[sizeAt+3] = 0x7f
			return b
		})
		dec, err := NewDecoder(b)
		require.NoError(t, err)

		_, err = dec.Decode()
		require.ErrorIs(t, err, errs.ErrEntryOutOfRange)
	})
}

func TestDecoder_CorruptCompressedData(t *testing.T) {
	data := buildSamplePack(t, WithCompression(format.CompressionLZ4))
	header, err := section.ParsePackHeader(data)
	require.NoError(t, err)

	b := append([]byte(nil), data...)
	for i := header.DataOffset(); i < len(b); i++ {
		b[i] = 0xff
	}

	dec, err := NewDecoder(b)
	require.NoError(t, err)

	_, err = dec.Decode()
	require.Error(t, err)
}

func TestPack_GeometryErrors(t *testing.T) {
	enc := newTestEncoder(t)
	corrupted := append([]byte(format.MagicPrefix), 0x01, 0x02)
	require.NoError(t, enc.AddEncoded("broken", corrupted))
	data, err := enc.Finish()
	require.NoError(t, err)

	p := decodePack(t, data)

	_, err = p.Geometry("missing")
	require.ErrorIs(t, err, errs.ErrKeyNotFound)

	_, err = p.Geometry("broken")
	require.ErrorIs(t, err, errs.ErrCorruptBuffer)
}

func TestDecoder_GeometryDecoderOption(t *testing.T) {
	_, err := NewDecoder(nil, WithGeometryDecoder(nil))
	require.Error(t, err)

	geom, err := fbgeom.NewDecoder(fbgeom.WithDecodeMaxDepth(1))
	require.NoError(t, err)

	dec, err := NewDecoder(buildSamplePack(t), WithGeometryDecoder(geom))
	require.NoError(t, err)
	p, err := dec.Decode()
	require.NoError(t, err)

	_, err = p.Geometry("LineSegment")
	require.NoError(t, err)

	_, err = p.Geometry("ParityRegion")
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)
}

func TestPack_ConcurrentReads(t *testing.T) {
	p := decodePack(t, buildSamplePack(t, WithCompression(format.CompressionZstd)))
	samples := geomtest.Samples()

	done := make(chan error, len(samples))
	for _, s := range samples {
		go func() {
			g, err := p.Geometry(s.Name)
			if err == nil && g == nil {
				err = fmt.Errorf("%s: nil geometry", s.Name)
			}
			done <- err
		}()
	}

	for range samples {
		require.NoError(t, <-done)
	}
}
