package fbgeom

import (
	"math"
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
	"github.com/arloliu/geomcodec/internal/geomtest"
)

func newTestEncoder(t *testing.T, opts ...EncoderOption) *Encoder {
	t.Helper()
	enc, err := NewEncoder(opts...)
	require.NoError(t, err)

	return enc
}

func TestNewEncoder(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		enc := newTestEncoder(t)
		require.Equal(t, DefaultMaxDepth, enc.maxDepth)
		require.NotNil(t, enc.log)
		require.Zero(t, enc.Stats().Encoded())
	})

	t.Run("InvalidMaxDepth", func(t *testing.T) {
		enc, err := NewEncoder(WithMaxDepth(0))
		require.ErrorIs(t, err, errs.ErrInvalidMaxDepth)
		require.Nil(t, enc)
	})
}

func TestEncoder_MagicPrefix(t *testing.T) {
	enc := newTestEncoder(t)

	for _, s := range geomtest.Samples() {
		t.Run(s.Name, func(t *testing.T) {
			data, err := enc.Encode(s.Geometry)
			require.NoError(t, err)
			require.True(t, HasMagic(data))
			require.Equal(t, format.MagicPrefix, string(data[:format.MagicSize]))
		})
	}
}

func TestEncoder_Deterministic(t *testing.T) {
	enc := newTestEncoder(t)
	dec := newTestDecoder(t)

	for _, s := range geomtest.Samples() {
		t.Run(s.Name, func(t *testing.T) {
			first, err := enc.Encode(s.Geometry)
			require.NoError(t, err)
			second, err := enc.Encode(s.Geometry)
			require.NoError(t, err)
			require.Equal(t, first, second)

			decoded, err := dec.Decode(first)
			require.NoError(t, err)
			again, err := enc.Encode(decoded)
			require.NoError(t, err)
			require.Equal(t, first, again, "encode(decode(b)) must reproduce b")
		})
	}
}

func TestEncoder_NilInput(t *testing.T) {
	enc := newTestEncoder(t)

	_, err := enc.Encode(nil)
	require.ErrorIs(t, err, errs.ErrNilGeometry)

	_, err = enc.EncodeCurveVector(nil)
	require.ErrorIs(t, err, errs.ErrNilGeometry)

	_, err = enc.EncodePolyface(nil)
	require.ErrorIs(t, err, errs.ErrNilGeometry)

	var line *geometry.LineSegment
	_, err = enc.EncodeCurvePrimitive(line)
	require.ErrorIs(t, err, errs.ErrNilGeometry)
}

func TestEncoder_UnsupportedRoot(t *testing.T) {
	enc := newTestEncoder(t)

	_, err := enc.Encode(&geometry.PartialCurve{FractionA: 0, FractionB: 1})
	require.ErrorIs(t, err, errs.ErrUnsupportedGeometry)

	_, err = enc.Encode(&geometry.DgnExtrusion{ExtrusionVector: geomtest.Vec(0, 0, 1)})
	require.ErrorIs(t, err, errs.ErrUnsupportedGeometry)
}

func TestEncoder_DropsUnsupportedChildren(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	enc := newTestEncoder(t, WithLogger(logger))
	dec := newTestDecoder(t)

	var missing *geometry.LineSegment
	cv := geometry.NewCurveVector(geometry.BoundaryOpen,
		geomtest.Line(),
		missing,
		&geometry.PartialCurve{FractionB: 1},
		geomtest.Arc(),
	)

	data, err := enc.EncodeCurveVector(cv)
	require.NoError(t, err)
	require.Equal(t, int64(2), enc.Stats().Dropped())

	got, err := dec.DecodeCurveVector(data)
	require.NoError(t, err)
	require.Equal(t, geometry.NewCurveVector(geometry.BoundaryOpen, geomtest.Line(), geomtest.Arc()), got)

	require.Len(t, hook.Entries, 2)
	entry := hook.LastEntry()
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, "CurveVector", entry.Data["parent"])
	require.Equal(t, 2, entry.Data["index"])
	require.Equal(t, "*geometry.PartialCurve", entry.Data["child"])
}

func TestEncoder_DropsFromGeometryList(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	enc := newTestEncoder(t, WithLogger(logger))
	dec := newTestDecoder(t)

	data, err := enc.EncodeGeometryList(geometry.GeometryList{nil, geomtest.Cylinder()})
	require.NoError(t, err)
	require.Len(t, hook.Entries, 1)

	list, err := dec.DecodeGeometryList(data)
	require.NoError(t, err)
	require.Equal(t, geometry.GeometryList{geomtest.Cylinder()}, list)
}

func TestEncoder_MaxDepth(t *testing.T) {
	nested := geometry.NewCurveVector(geometry.BoundaryOpen, geomtest.Line())
	for range 4 {
		nested = geometry.NewCurveVector(geometry.BoundaryUnionRegion, nested)
	}

	_, err := newTestEncoder(t, WithMaxDepth(3)).Encode(nested)
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)

	_, err = newTestEncoder(t).Encode(nested)
	require.NoError(t, err)

	// Depth errors are never swallowed as drops.
	_, err = newTestEncoder(t, WithMaxDepth(3)).EncodeGeometryList(geometry.GeometryList{nested})
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)
}

func TestEncoder_OmitsEmptyArrays(t *testing.T) {
	enc := newTestEncoder(t)

	mesh := geomtest.Polyface()
	mesh.Normals = nil
	mesh.NormalIndex = nil
	mesh.AuxData = nil

	data, err := enc.EncodePolyface(mesh)
	require.NoError(t, err)

	root, err := fbs.Root(data[format.MagicSize:])
	require.NoError(t, err)
	body, ok, err := root.Child(fbs.VariantGeometryGeometry)
	require.NoError(t, err)
	require.True(t, ok)

	require.False(t, body.Has(fbs.PolyfaceNormal), "has_normal must be false")
	require.False(t, body.Has(fbs.PolyfaceNormalIndex))
	require.False(t, body.Has(fbs.PolyfaceAuxData))
	require.True(t, body.Has(fbs.PolyfacePoint))
	require.True(t, body.Has(fbs.PolyfacePointIndex))
}

func TestEncoder_PrimitiveTagOnlyOnTaggedPrimitives(t *testing.T) {
	enc := newTestEncoder(t)

	tagged, err := enc.Encode(geomtest.Line())
	require.NoError(t, err)
	plain, err := enc.Encode(geomtest.Arc())
	require.NoError(t, err)

	hasTag := func(data []byte) bool {
		root, err := fbs.Root(data[format.MagicSize:])
		require.NoError(t, err)

		return root.Has(fbs.VariantGeometryTag)
	}
	require.True(t, hasTag(tagged))
	require.False(t, hasTag(plain))
}

func TestEncoder_NegativeZeroScalar(t *testing.T) {
	enc := newTestEncoder(t)
	dec := newTestDecoder(t)

	negZero := math.Copysign(0, -1)
	data, err := enc.Encode(&geometry.PartialCurve{Parent: geomtest.Arc(), FractionA: negZero, FractionB: 1})
	require.NoError(t, err)

	got, err := dec.DecodeCurvePrimitive(data)
	require.NoError(t, err)
	partial, ok := got.(*geometry.PartialCurve)
	require.True(t, ok)
	require.True(t, math.Signbit(partial.FractionA))
}

func TestEncoder_Stats(t *testing.T) {
	enc := newTestEncoder(t)

	for range 3 {
		_, err := enc.Encode(geomtest.Arc())
		require.NoError(t, err)
	}
	require.Equal(t, int64(3), enc.Stats().Encoded())

	enc.Stats().Reset()
	require.Zero(t, enc.Stats().Encoded())
}

func TestEncoder_Concurrent(t *testing.T) {
	enc := newTestEncoder(t)
	want, err := enc.Encode(geomtest.Polyface())
	require.NoError(t, err)

	done := make(chan []byte, 8)
	for range 8 {
		go func() {
			data, err := enc.Encode(geomtest.Polyface())
			if err != nil {
				done <- nil
				return
			}
			done <- data
		}()
	}
	for range 8 {
		require.Equal(t, want, <-done)
	}
}

// rawVariant builds a BGFB buffer whose root carries an arbitrary discriminant.
func rawVariant(tag byte) []byte {
	b := flatbuffers.NewBuilder(64)
	fbs.Start(b, 1)
	body := fbs.End(b)
	fbs.Start(b, fbs.VariantGeometryFields)
	fbs.AddOffset(b, fbs.VariantGeometryGeometry, body)
	fbs.AddByte(b, fbs.VariantGeometryGeometryType, tag)
	b.Finish(fbs.End(b))

	return append([]byte(format.MagicPrefix), b.FinishedBytes()...)
}

func BenchmarkEncoder_Polyface(b *testing.B) {
	enc, err := NewEncoder()
	require.NoError(b, err)
	mesh := geomtest.Polyface()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := enc.Encode(mesh); err != nil {
			b.Fatal(err)
		}
	}
}
