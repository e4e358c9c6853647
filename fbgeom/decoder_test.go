package fbgeom

import (
	"fmt"
	"math/rand"
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

func newTestDecoder(t *testing.T, opts ...DecoderOption) *Decoder {
	t.Helper()
	dec, err := NewDecoder(opts...)
	require.NoError(t, err)

	return dec
}

func TestDecoder_RoundTrip(t *testing.T) {
	enc := newTestEncoder(t)
	dec := newTestDecoder(t)

	for _, s := range geomtest.Samples() {
		t.Run(s.Name, func(t *testing.T) {
			data, err := enc.Encode(s.Geometry)
			require.NoError(t, err)

			got, err := dec.Decode(data)
			require.NoError(t, err)
			require.Equal(t, s.Geometry, got)
		})
	}
}

func TestDecoder_TypedEntryPoints(t *testing.T) {
	enc := newTestEncoder(t)
	dec := newTestDecoder(t)

	t.Run("CurvePrimitive", func(t *testing.T) {
		data, err := enc.EncodeCurvePrimitive(geomtest.Arc())
		require.NoError(t, err)
		got, err := dec.DecodeCurvePrimitive(data)
		require.NoError(t, err)
		require.Equal(t, geometry.CurvePrimitiveArc, got.CurvePrimitiveType())
	})

	t.Run("CurveVector", func(t *testing.T) {
		cv := geometry.NewCurveVector(geometry.BoundaryOuter, geomtest.Square(0))
		data, err := enc.EncodeCurveVector(cv)
		require.NoError(t, err)
		got, err := dec.DecodeCurveVector(data)
		require.NoError(t, err)
		require.Equal(t, cv, got)
		require.True(t, got.IsClosedPath())
	})

	t.Run("Solid", func(t *testing.T) {
		data, err := enc.EncodeSolid(geomtest.Cylinder())
		require.NoError(t, err)
		got, err := dec.DecodeSolid(data)
		require.NoError(t, err)
		require.Equal(t, geometry.SolidCone, got.SolidPrimitiveType())
		require.True(t, got.IsCapped())
	})

	t.Run("Surface", func(t *testing.T) {
		surface := &geometry.BsplineSurface{OrderU: 2, OrderV: 2, NumPolesU: 1, NumPolesV: 1,
			Poles: []geometry.Point3d{geomtest.Pt(1, 2, 3)}}
		data, err := enc.EncodeSurface(surface)
		require.NoError(t, err)
		got, err := dec.DecodeSurface(data)
		require.NoError(t, err)
		require.Equal(t, surface, got)
		require.False(t, got.IsRational())
	})

	t.Run("Polyface", func(t *testing.T) {
		data, err := enc.EncodePolyface(geomtest.Polyface())
		require.NoError(t, err)
		got, err := dec.DecodePolyface(data)
		require.NoError(t, err)
		require.Equal(t, geomtest.Polyface(), got)
	})

	t.Run("WrongKind", func(t *testing.T) {
		data, err := enc.Encode(geomtest.Line())
		require.NoError(t, err)

		_, err = dec.DecodeCurveVector(data)
		require.ErrorIs(t, err, errs.ErrUnexpectedGeometry)
		_, err = dec.DecodeSolid(data)
		require.ErrorIs(t, err, errs.ErrUnexpectedGeometry)
		_, err = dec.DecodePolyface(data)
		require.ErrorIs(t, err, errs.ErrUnexpectedGeometry)
	})
}

func TestDecoder_GeometryListSingletonFallback(t *testing.T) {
	enc := newTestEncoder(t)
	dec := newTestDecoder(t)

	data, err := enc.Encode(geomtest.Cone())
	require.NoError(t, err)

	list, err := dec.DecodeGeometryList(data)
	require.NoError(t, err)
	require.Equal(t, geometry.GeometryList{geomtest.Cone()}, list)

	data, err = enc.EncodeGeometryList(nil)
	require.NoError(t, err)
	list, err = dec.DecodeGeometryList(data)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestDecoder_MagicGate(t *testing.T) {
	dec := newTestDecoder(t)

	tests := []struct {
		name string
		data []byte
	}{
		{"Nil", nil},
		{"Short", []byte("bg00")},
		{"WrongMagic", []byte("bg0002fb\x00\x00\x00\x00")},
		{"NoMagic", []byte{0x0c, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.False(t, HasMagic(tt.data))

			g, err := dec.Decode(tt.data)
			require.ErrorIs(t, err, errs.ErrInvalidMagic)
			require.Nil(t, g)

			c, err := dec.DecodePolyfaceCarrier(tt.data)
			require.ErrorIs(t, err, errs.ErrInvalidMagic)
			require.Nil(t, c)
		})
	}
}

func TestDecoder_UnknownTag(t *testing.T) {
	dec := newTestDecoder(t)

	for _, tag := range []byte{byte(format.TagNone), byte(format.TagMax) + 1, 0xff} {
		_, err := dec.Decode(rawVariant(tag))
		require.ErrorIs(t, err, errs.ErrUnknownGeometryTag, "tag %d", tag)
	}
}

func TestDecoder_MissingDetail(t *testing.T) {
	dec := newTestDecoder(t)

	// A line segment table without its segment struct.
	_, err := dec.Decode(rawVariant(byte(format.TagLineSegment)))
	require.ErrorIs(t, err, errs.ErrCorruptBuffer)
}

func TestDecoder_Truncated(t *testing.T) {
	enc := newTestEncoder(t)
	dec := newTestDecoder(t)

	data, err := enc.Encode(geomtest.Line())
	require.NoError(t, err)

	for n := range len(data) {
		g, err := dec.Decode(data[:n])
		require.Error(t, err, "length %d", n)
		require.Nil(t, g)
	}
}

func TestDecoder_CorruptBytesNeverPanic(t *testing.T) {
	enc := newTestEncoder(t)
	dec := newTestDecoder(t)
	rng := rand.New(rand.NewSource(42))

	for _, s := range geomtest.Samples() {
		data, err := enc.Encode(s.Geometry)
		require.NoError(t, err)

		for range 50 {
			mutated := append([]byte(nil), data...)
			for range 4 {
				pos := format.MagicSize + rng.Intn(len(data)-format.MagicSize)
				mutated[pos] = byte(rng.Intn(256))
			}
			require.NotPanics(t, func() {
				_, _ = dec.Decode(mutated)
				_, _ = dec.DecodePolyfaceCarrier(mutated)
			}, s.Name)
		}
	}
}

func TestDecoder_MaxDepth(t *testing.T) {
	enc := newTestEncoder(t)

	nested := geometry.NewCurveVector(geometry.BoundaryOpen, geomtest.Line())
	for range 3 {
		nested = geometry.NewCurveVector(geometry.BoundaryUnionRegion, nested)
	}
	data, err := enc.Encode(nested)
	require.NoError(t, err)

	_, err = newTestDecoder(t, WithDecodeMaxDepth(2)).Decode(data)
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)

	got, err := newTestDecoder(t).Decode(data)
	require.NoError(t, err)
	require.Equal(t, nested, got)

	_, err = NewDecoder(WithDecodeMaxDepth(-1))
	require.ErrorIs(t, err, errs.ErrInvalidMaxDepth)
}

func writeVariant(b *flatbuffers.Builder, tag format.GeometryTag, body flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	fbs.Start(b, fbs.VariantGeometryFields)
	fbs.AddOffset(b, fbs.VariantGeometryGeometry, body)
	fbs.AddByte(b, fbs.VariantGeometryGeometryType, byte(tag))

	return fbs.End(b)
}

// writeCurveVector writes a curve vector variant whose members are the given variants.
func writeCurveVector(b *flatbuffers.Builder, boundary geometry.BoundaryType, members ...flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	var vec flatbuffers.UOffsetT
	if len(members) > 0 {
		vec = fbs.CreateOffsetVector(b, members)
	}
	fbs.Start(b, fbs.CurveVectorFields)
	fbs.AddOffset(b, fbs.CurveVectorCurves, vec)
	fbs.AddInt32(b, fbs.CurveVectorType, int32(boundary))

	return writeVariant(b, format.TagCurveVector, fbs.End(b))
}

func writeGeometryList(b *flatbuffers.Builder, members ...flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	vec := fbs.CreateOffsetVector(b, members)
	fbs.Start(b, fbs.VectorOfVariantGeometryFields)
	fbs.AddOffset(b, fbs.VectorOfVariantGeometryMembers, vec)

	return writeVariant(b, format.TagVectorOfVariantGeometry, fbs.End(b))
}

// writeUnknown writes a variant with a discriminant outside the union.
func writeUnknown(b *flatbuffers.Builder, tag byte) flatbuffers.UOffsetT {
	fbs.Start(b, 1)
	body := fbs.End(b)

	return writeVariant(b, format.GeometryTag(tag), body)
}

func finishRaw(b *flatbuffers.Builder, root flatbuffers.UOffsetT) []byte {
	b.Finish(root)

	return append([]byte(format.MagicPrefix), b.FinishedBytes()...)
}

func TestDecoder_SharedTablesBounded(t *testing.T) {
	dec := newTestDecoder(t)

	// Every level references the level below twice, so an unbounded walk
	// visits 2^levels tables from a buffer that grows linearly.
	for _, levels := range []int{8, 40} {
		t.Run(fmt.Sprint(levels), func(t *testing.T) {
			b := flatbuffers.NewBuilder(1024)
			inner := writeCurveVector(b, geometry.BoundaryOpen)
			for range levels {
				inner = writeCurveVector(b, geometry.BoundaryUnionRegion, inner, inner)
			}
			data := finishRaw(b, inner)

			g, err := dec.Decode(data)
			require.ErrorIs(t, err, errs.ErrCorruptBuffer)
			require.Nil(t, g)
		})
	}
}

func TestDecoder_SharedVectorsBounded(t *testing.T) {
	dec := newTestDecoder(t)

	pts := make([]float64, 3*1000)
	for i := range pts {
		pts[i] = float64(i)
	}

	// One large points table referenced by every member of a list.
	b := flatbuffers.NewBuilder(32 * 1024)
	vec := fbs.CreateFloat64Vector(b, pts)
	fbs.Start(b, fbs.PointsFields)
	fbs.AddOffset(b, fbs.PointsPoints, vec)
	shared := fbs.End(b)

	members := make([]flatbuffers.UOffsetT, 100)
	for i := range members {
		members[i] = writeVariant(b, format.TagLineString, shared)
	}
	data := finishRaw(b, writeGeometryList(b, members...))

	_, err := dec.Decode(data)
	require.ErrorIs(t, err, errs.ErrCorruptBuffer)

	// The same table referenced once decodes.
	b = flatbuffers.NewBuilder(32 * 1024)
	vec = fbs.CreateFloat64Vector(b, pts)
	fbs.Start(b, fbs.PointsFields)
	fbs.AddOffset(b, fbs.PointsPoints, vec)
	single := writeVariant(b, format.TagLineString, fbs.End(b))
	data = finishRaw(b, writeGeometryList(b, single))

	list, err := dec.DecodeGeometryList(data)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Len(t, list[0].(*geometry.LineString).Points, 1000)
}

func TestDecoder_LargeListWithinBudget(t *testing.T) {
	enc := newTestEncoder(t)
	dec := newTestDecoder(t)

	list := make(geometry.GeometryList, 0, 2000)
	for i := range 2000 {
		if i%2 == 0 {
			list = append(list, geomtest.Line())
		} else {
			list = append(list, geometry.NewCurveVector(geometry.BoundaryOuter, geomtest.Square(float64(i))))
		}
	}

	data, err := enc.EncodeGeometryList(list)
	require.NoError(t, err)

	got, err := dec.DecodeGeometryList(data)
	require.NoError(t, err)
	require.Equal(t, list, got)
}

func TestDecoder_SkipsUnknownMembers(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	dec := newTestDecoder(t, WithDecodeLogger(logger))

	b := flatbuffers.NewBuilder(256)
	first := writeCurveVector(b, geometry.BoundaryOpen)
	unknown := writeUnknown(b, 200)
	last := writeCurveVector(b, geometry.BoundaryOuter)
	data := finishRaw(b, writeGeometryList(b, first, unknown, last))

	list, err := dec.DecodeGeometryList(data)
	require.NoError(t, err)
	require.Equal(t, geometry.GeometryList{
		geometry.NewCurveVector(geometry.BoundaryOpen),
		geometry.NewCurveVector(geometry.BoundaryOuter),
	}, list)

	require.Len(t, hook.Entries, 1)
	entry := hook.LastEntry()
	require.Equal(t, logrus.WarnLevel, entry.Level)
	require.Equal(t, "GeometryList", entry.Data["parent"])
	require.Equal(t, 1, entry.Data["index"])
	require.ErrorIs(t, entry.Data[logrus.ErrorKey].(error), errs.ErrUnknownGeometryTag)

	// Inside a curve vector.
	hook.Reset()
	b = flatbuffers.NewBuilder(256)
	unknown = writeUnknown(b, 0xff)
	inner := writeCurveVector(b, geometry.BoundaryOpen)
	data = finishRaw(b, writeCurveVector(b, geometry.BoundaryUnionRegion, unknown, inner))

	cv, err := dec.DecodeCurveVector(data)
	require.NoError(t, err)
	require.Equal(t, geometry.NewCurveVector(geometry.BoundaryUnionRegion, geometry.NewCurveVector(geometry.BoundaryOpen)), cv)
	require.Len(t, hook.Entries, 1)
	require.Equal(t, "CurveVector", hook.LastEntry().Data["parent"])

	// An unknown root is still a failure of the call.
	_, err = dec.Decode(rawVariant(200))
	require.ErrorIs(t, err, errs.ErrUnknownGeometryTag)
}

func TestDecoder_PrimitiveIDBytesAreCopied(t *testing.T) {
	enc := newTestEncoder(t)
	dec := newTestDecoder(t)

	data, err := enc.Encode(geomtest.Line())
	require.NoError(t, err)
	got, err := dec.DecodeCurvePrimitive(data)
	require.NoError(t, err)

	for i := range data {
		data[i] = 0
	}
	require.True(t, geomtest.Line().PrimitiveID().Equal(got.PrimitiveID()))
}

func BenchmarkDecoder_Polyface(b *testing.B) {
	enc, err := NewEncoder()
	require.NoError(b, err)
	dec, err := NewDecoder()
	require.NoError(b, err)
	data, err := enc.Encode(geomtest.Polyface())
	require.NoError(b, err)

	b.ReportAllocs()
	for b.Loop() {
		if _, err := dec.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}
