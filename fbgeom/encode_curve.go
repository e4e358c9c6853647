package fbgeom

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
)

func (s *encodeState) lineSegment(l *geometry.LineSegment) flatbuffers.UOffsetT {
	fbs.Start(s.b, fbs.LineSegmentFields)
	fbs.AddStruct(s.b, fbs.LineSegmentSegment, segmentDoubles(l))

	return fbs.End(s.b)
}

func (s *encodeState) ellipticArc(a *geometry.EllipticArc) flatbuffers.UOffsetT {
	fbs.Start(s.b, fbs.EllipticArcFields)
	fbs.AddStruct(s.b, fbs.EllipticArcArc, ellipseDoubles(a))

	return fbs.End(s.b)
}

// points writes the shared LineString/PointString/AkimaCurve layout.
func (s *encodeState) points(pts []geometry.Point3d) flatbuffers.UOffsetT {
	vec := tupleVector(s.b, pts, format.Point3dStride, fillPoint)

	fbs.Start(s.b, fbs.PointsFields)
	fbs.AddOffset(s.b, fbs.PointsPoints, vec)

	return fbs.End(s.b)
}

func (s *encodeState) bsplineCurve(c *geometry.BsplineCurve) flatbuffers.UOffsetT {
	poles := tupleVector(s.b, c.Poles, format.Point3dStride, fillPoint)
	weights := fbs.CreateFloat64Vector(s.b, c.Weights)
	knots := fbs.CreateFloat64Vector(s.b, c.Knots)

	fbs.Start(s.b, fbs.BsplineCurveFields)
	fbs.AddOffset(s.b, fbs.BsplineCurveKnots, knots)
	fbs.AddOffset(s.b, fbs.BsplineCurveWeights, weights)
	fbs.AddOffset(s.b, fbs.BsplineCurvePoles, poles)
	fbs.AddInt32(s.b, fbs.BsplineCurveOrder, int32(c.Order))
	fbs.AddBool(s.b, fbs.BsplineCurveClosed, c.Closed)

	return fbs.End(s.b)
}

func (s *encodeState) interpolationCurve(c *geometry.InterpolationCurve) flatbuffers.UOffsetT {
	fit := tupleVector(s.b, c.FitPoints, format.Point3dStride, fillPoint)
	knots := fbs.CreateFloat64Vector(s.b, c.Knots)

	fbs.Start(s.b, fbs.InterpolationCurveFields)
	fbs.AddStruct(s.b, fbs.InterpolationCurveEndTangent, vectorDoubles(c.EndTangent))
	fbs.AddStruct(s.b, fbs.InterpolationCurveStartTangent, vectorDoubles(c.StartTangent))
	fbs.AddOffset(s.b, fbs.InterpolationCurveKnots, knots)
	fbs.AddOffset(s.b, fbs.InterpolationCurveFitPoints, fit)
	fbs.AddInt32(s.b, fbs.InterpolationCurveOrder, int32(c.Order))
	fbs.AddInt32(s.b, fbs.InterpolationCurveIsChordLenKnots, int32(c.IsChordLenKnots))
	fbs.AddInt32(s.b, fbs.InterpolationCurveIsColinearTangents, int32(c.IsColinearTangents))
	fbs.AddInt32(s.b, fbs.InterpolationCurveIsChordLenTangents, int32(c.IsChordLenTangents))
	fbs.AddInt32(s.b, fbs.InterpolationCurveIsNaturalTangents, int32(c.IsNaturalTangents))
	fbs.AddBool(s.b, fbs.InterpolationCurvePeriodic, c.Periodic)

	return fbs.End(s.b)
}

func (s *encodeState) transitionSpiral(c *geometry.TransitionSpiral) flatbuffers.UOffsetT {
	fbs.Start(s.b, fbs.TransitionSpiralFields)
	fbs.AddStruct(s.b, fbs.TransitionSpiralDetail, spiralDoubles(c))
	fbs.AddInt32(s.b, fbs.TransitionSpiralSpiralType, int32(c.SpiralType))

	return fbs.End(s.b)
}

func (s *encodeState) catenary(c *geometry.CatenaryCurve) flatbuffers.UOffsetT {
	fbs.Start(s.b, fbs.CatenaryCurveFields)
	fbs.AddStruct(s.b, fbs.CatenaryCurveDetail, catenaryDoubles(c))

	return fbs.End(s.b)
}

func (s *encodeState) partialCurve(c *geometry.PartialCurve, depth int) (flatbuffers.UOffsetT, error) {
	if geometry.IsNil(c.Parent) {
		return 0, fmt.Errorf("%w: partial curve without parent", errs.ErrUnsupportedGeometry)
	}
	parent, err := s.variant(c.Parent, depth+1)
	if err != nil {
		return 0, err
	}

	fbs.Start(s.b, fbs.PartialCurveFields)
	fbs.AddFloat64(s.b, fbs.PartialCurveFractionB, c.FractionB)
	fbs.AddFloat64(s.b, fbs.PartialCurveFractionA, c.FractionA)
	fbs.AddOffset(s.b, fbs.PartialCurveTargetCurve, parent)

	return fbs.End(s.b), nil
}

// curveVector writes cv as a CurveVector table. Members are VariantGeometry
// tables so that nested vectors and primitive tags survive.
func (s *encodeState) curveVector(cv *geometry.CurveVector, depth int) (flatbuffers.UOffsetT, error) {
	if depth > s.enc.maxDepth {
		return 0, fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, s.enc.maxDepth)
	}

	offs, err := members(s, "CurveVector", cv.Children, func(c geometry.Curve) (flatbuffers.UOffsetT, error) {
		return s.variant(c, depth+1)
	})
	if err != nil {
		return 0, err
	}
	vec := s.offsetVector(offs)

	fbs.Start(s.b, fbs.CurveVectorFields)
	fbs.AddOffset(s.b, fbs.CurveVectorCurves, vec)
	fbs.AddInt32(s.b, fbs.CurveVectorType, int32(cv.Boundary))

	return fbs.End(s.b), nil
}
