package fbgeom

import (
	"errors"
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/sirupsen/logrus"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
	"github.com/arloliu/geomcodec/internal/options"
	"github.com/arloliu/geomcodec/internal/pool"
)

// Encoder converts geometry trees into BGFB buffers.
//
// An Encoder holds no per-call state; one instance may serve many goroutines.
type Encoder struct {
	*EncoderConfig
	stats *Stats
}

// NewEncoder creates an Encoder with the given options.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := newEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: config, stats: newStats()}, nil
}

// Stats returns the encoder's counters.
func (e *Encoder) Stats() *Stats {
	return e.stats
}

// Encode serializes any geometry value.
//
// Returns errs.ErrNilGeometry for a nil root, errs.ErrUnsupportedGeometry for
// a root the format cannot represent, and errs.ErrMaxDepthExceeded when the
// tree nests deeper than the configured limit.
func (e *Encoder) Encode(g geometry.Geometry) ([]byte, error) {
	if geometry.IsNil(g) {
		return nil, errs.ErrNilGeometry
	}

	b := pool.GetBuilder()
	defer pool.PutBuilder(b)

	s := &encodeState{b: b, enc: e}
	root, err := s.variant(g, 0)
	if err != nil {
		return nil, err
	}
	b.Finish(root)

	fb := b.FinishedBytes()
	out := make([]byte, format.MagicSize+len(fb))
	copy(out, magic)
	copy(out[format.MagicSize:], fb)

	e.stats.encoded.Inc()

	return out, nil
}

// EncodeCurvePrimitive serializes a single curve primitive.
func (e *Encoder) EncodeCurvePrimitive(c geometry.CurvePrimitive) ([]byte, error) {
	if geometry.IsNil(c) {
		return nil, errs.ErrNilGeometry
	}

	return e.Encode(c)
}

// EncodeCurveVector serializes a curve vector.
func (e *Encoder) EncodeCurveVector(cv *geometry.CurveVector) ([]byte, error) {
	if cv == nil {
		return nil, errs.ErrNilGeometry
	}

	return e.Encode(cv)
}

// EncodeSolid serializes a solid primitive.
func (e *Encoder) EncodeSolid(s geometry.SolidPrimitive) ([]byte, error) {
	if geometry.IsNil(s) {
		return nil, errs.ErrNilGeometry
	}

	return e.Encode(s)
}

// EncodeSurface serializes a B-spline surface.
func (e *Encoder) EncodeSurface(s *geometry.BsplineSurface) ([]byte, error) {
	if s == nil {
		return nil, errs.ErrNilGeometry
	}

	return e.Encode(s)
}

// EncodePolyface serializes a polyface.
func (e *Encoder) EncodePolyface(p *geometry.Polyface) ([]byte, error) {
	if p == nil {
		return nil, errs.ErrNilGeometry
	}

	return e.Encode(p)
}

// EncodeGeometryList serializes a list of geometries. Unsupported members are
// dropped; an empty list encodes to a list with no members.
func (e *Encoder) EncodeGeometryList(list geometry.GeometryList) ([]byte, error) {
	if list == nil {
		list = geometry.GeometryList{}
	}

	return e.Encode(list)
}

// encodeState carries the builder through one Encode call.
type encodeState struct {
	b   *flatbuffers.Builder
	enc *Encoder
}

// variant writes g as a VariantGeometry table.
func (s *encodeState) variant(g geometry.Geometry, depth int) (flatbuffers.UOffsetT, error) {
	if depth > s.enc.maxDepth {
		return 0, fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, s.enc.maxDepth)
	}
	if geometry.IsNil(g) {
		return 0, errs.ErrNilGeometry
	}

	tag, body, err := s.payload(g, depth)
	if err != nil {
		return 0, err
	}

	var tagOff flatbuffers.UOffsetT
	if cp, ok := g.(geometry.CurvePrimitive); ok && cp.PrimitiveID() != nil {
		tagOff = s.primitiveID(cp.PrimitiveID())
	}

	fbs.Start(s.b, fbs.VariantGeometryFields)
	fbs.AddOffset(s.b, fbs.VariantGeometryTag, tagOff)
	fbs.AddOffset(s.b, fbs.VariantGeometryGeometry, body)
	fbs.AddByte(s.b, fbs.VariantGeometryGeometryType, byte(tag))

	return fbs.End(s.b), nil
}

// payload writes the table for g and returns its discriminant.
func (s *encodeState) payload(g geometry.Geometry, depth int) (format.GeometryTag, flatbuffers.UOffsetT, error) {
	switch v := g.(type) {
	case *geometry.LineSegment:
		return format.TagLineSegment, s.lineSegment(v), nil
	case *geometry.EllipticArc:
		return format.TagEllipticArc, s.ellipticArc(v), nil
	case *geometry.LineString:
		return format.TagLineString, s.points(v.Points), nil
	case *geometry.PointString:
		return format.TagPointString, s.points(v.Points), nil
	case *geometry.AkimaCurve:
		return format.TagAkimaCurve, s.points(v.Points), nil
	case *geometry.BsplineCurve:
		return format.TagBsplineCurve, s.bsplineCurve(v), nil
	case *geometry.InterpolationCurve:
		return format.TagInterpolationCurve, s.interpolationCurve(v), nil
	case *geometry.TransitionSpiral:
		return format.TagTransitionSpiral, s.transitionSpiral(v), nil
	case *geometry.CatenaryCurve:
		return format.TagCatenaryCurve, s.catenary(v), nil
	case *geometry.PartialCurve:
		off, err := s.partialCurve(v, depth)
		return format.TagPartialCurve, off, err
	case *geometry.CurveVector:
		off, err := s.curveVector(v, depth)
		return format.TagCurveVector, off, err
	case *geometry.DgnBox:
		return format.TagDgnBox, s.dgnBox(v), nil
	case *geometry.DgnCone:
		return format.TagDgnCone, s.dgnCone(v), nil
	case *geometry.DgnSphere:
		return format.TagDgnSphere, s.dgnSphere(v), nil
	case *geometry.DgnTorusPipe:
		return format.TagDgnTorusPipe, s.dgnTorusPipe(v), nil
	case *geometry.DgnExtrusion:
		off, err := s.dgnExtrusion(v, depth)
		return format.TagDgnExtrusion, off, err
	case *geometry.DgnRotationalSweep:
		off, err := s.dgnRotationalSweep(v, depth)
		return format.TagDgnRotationalSweep, off, err
	case *geometry.DgnRuledSweep:
		off, err := s.dgnRuledSweep(v, depth)
		return format.TagDgnRuledSweep, off, err
	case *geometry.BsplineSurface:
		off, err := s.bsplineSurface(v, depth)
		return format.TagBsplineSurface, off, err
	case *geometry.Polyface:
		return format.TagPolyface, s.polyface(v), nil
	case geometry.GeometryList:
		off, err := s.geometryList(v, depth)
		return format.TagVectorOfVariantGeometry, off, err
	default:
		return format.TagNone, 0, fmt.Errorf("%w: %T", errs.ErrUnsupportedGeometry, g)
	}
}

func (s *encodeState) primitiveID(id *geometry.CurvePrimitiveID) flatbuffers.UOffsetT {
	bytesOff := fbs.CreateBytes(s.b, id.Bytes)

	fbs.Start(s.b, fbs.CurvePrimitiveIDFields)
	fbs.AddOffset(s.b, fbs.CurvePrimitiveIDBytes, bytesOff)
	fbs.AddUint16(s.b, fbs.CurvePrimitiveIDPartIndex, id.PartIndex)
	fbs.AddUint16(s.b, fbs.CurvePrimitiveIDGeomIndex, id.GeomIndex)
	fbs.AddUint16(s.b, fbs.CurvePrimitiveIDType, id.Type)

	return fbs.End(s.b)
}

// drop records a child that could not be written into its parent.
func (s *encodeState) drop(parent string, index int, child any, err error) {
	s.enc.stats.dropped.Inc()
	s.enc.log.WithFields(logrus.Fields{
		"parent": parent,
		"index":  index,
		"child":  fmt.Sprintf("%T", child),
	}).WithError(err).Warn("fbgeom: dropping child geometry")
}

// members writes each item with write and collects the offsets. Items that
// fail with anything other than a depth error are dropped from the result.
func members[T any](s *encodeState, parent string, items []T, write func(T) (flatbuffers.UOffsetT, error)) ([]flatbuffers.UOffsetT, error) {
	offs := make([]flatbuffers.UOffsetT, 0, len(items))
	for i, item := range items {
		off, err := write(item)
		if err != nil {
			if errors.Is(err, errs.ErrMaxDepthExceeded) {
				return nil, err
			}
			s.drop(parent, i, item, err)

			continue
		}
		offs = append(offs, off)
	}

	return offs, nil
}

func (s *encodeState) geometryList(list geometry.GeometryList, depth int) (flatbuffers.UOffsetT, error) {
	offs, err := members(s, "GeometryList", list, func(g geometry.Geometry) (flatbuffers.UOffsetT, error) {
		return s.variant(g, depth+1)
	})
	if err != nil {
		return 0, err
	}
	vec := s.offsetVector(offs)

	fbs.Start(s.b, fbs.VectorOfVariantGeometryFields)
	fbs.AddOffset(s.b, fbs.VectorOfVariantGeometryMembers, vec)

	return fbs.End(s.b), nil
}

// offsetVector writes offs, or nothing when it is empty.
func (s *encodeState) offsetVector(offs []flatbuffers.UOffsetT) flatbuffers.UOffsetT {
	if len(offs) == 0 {
		return 0
	}

	return fbs.CreateOffsetVector(s.b, offs)
}
