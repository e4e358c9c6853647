package fbgeom

import (
	"fmt"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
)

func (d *Decoder) lineSegment(t fbs.Table) (*geometry.LineSegment, error) {
	vals, err := detail(t, fbs.LineSegmentSegment, fbs.DSegment3dDoubles, "line segment")
	if err != nil {
		return nil, err
	}
	l := &geometry.LineSegment{}
	segmentFrom(vals, l)

	return l, nil
}

func (d *Decoder) ellipticArc(t fbs.Table) (*geometry.EllipticArc, error) {
	vals, err := detail(t, fbs.EllipticArcArc, fbs.DEllipse3dDoubles, "elliptic arc")
	if err != nil {
		return nil, err
	}
	a := &geometry.EllipticArc{}
	ellipseFrom(vals, a)

	return a, nil
}

func (d *Decoder) points(t fbs.Table) ([]geometry.Point3d, error) {
	return pointVector(t, fbs.PointsPoints, "points")
}

func (d *Decoder) bsplineCurve(t fbs.Table) (*geometry.BsplineCurve, error) {
	c := &geometry.BsplineCurve{}
	if err := int32Field(t, fbs.BsplineCurveOrder, &c.Order); err != nil {
		return nil, err
	}
	if err := boolField(t, fbs.BsplineCurveClosed, &c.Closed); err != nil {
		return nil, err
	}

	var err error
	if c.Poles, err = pointVector(t, fbs.BsplineCurvePoles, "bspline poles"); err != nil {
		return nil, err
	}
	if c.Weights, err = t.Float64s(fbs.BsplineCurveWeights); err != nil {
		return nil, err
	}
	if c.Knots, err = t.Float64s(fbs.BsplineCurveKnots); err != nil {
		return nil, err
	}

	return c, nil
}

func (d *Decoder) interpolationCurve(t fbs.Table) (*geometry.InterpolationCurve, error) {
	c := &geometry.InterpolationCurve{}
	ints := []struct {
		slot int
		dst  *int
	}{
		{fbs.InterpolationCurveOrder, &c.Order},
		{fbs.InterpolationCurveIsChordLenKnots, &c.IsChordLenKnots},
		{fbs.InterpolationCurveIsColinearTangents, &c.IsColinearTangents},
		{fbs.InterpolationCurveIsChordLenTangents, &c.IsChordLenTangents},
		{fbs.InterpolationCurveIsNaturalTangents, &c.IsNaturalTangents},
	}
	for _, f := range ints {
		if err := int32Field(t, f.slot, f.dst); err != nil {
			return nil, err
		}
	}
	if err := boolField(t, fbs.InterpolationCurvePeriodic, &c.Periodic); err != nil {
		return nil, err
	}

	var err error
	if c.StartTangent, err = optionalVector(t, fbs.InterpolationCurveStartTangent); err != nil {
		return nil, err
	}
	if c.EndTangent, err = optionalVector(t, fbs.InterpolationCurveEndTangent); err != nil {
		return nil, err
	}
	if c.FitPoints, err = pointVector(t, fbs.InterpolationCurveFitPoints, "fit points"); err != nil {
		return nil, err
	}
	if c.Knots, err = t.Float64s(fbs.InterpolationCurveKnots); err != nil {
		return nil, err
	}

	return c, nil
}

func (d *Decoder) transitionSpiral(t fbs.Table) (*geometry.TransitionSpiral, error) {
	vals, err := detail(t, fbs.TransitionSpiralDetail, fbs.TransitionSpiralDetailDoubles, "transition spiral")
	if err != nil {
		return nil, err
	}
	s := &geometry.TransitionSpiral{}
	spiralFrom(vals, s)
	if err := int32Field(t, fbs.TransitionSpiralSpiralType, &s.SpiralType); err != nil {
		return nil, err
	}

	return s, nil
}

func (d *Decoder) catenary(t fbs.Table) (*geometry.CatenaryCurve, error) {
	vals, err := detail(t, fbs.CatenaryCurveDetail, fbs.CatenaryDetailDoubles, "catenary")
	if err != nil {
		return nil, err
	}
	c := &geometry.CatenaryCurve{}
	catenaryFrom(vals, c)

	return c, nil
}

func (d *Decoder) partialCurve(t fbs.Table, depth int) (*geometry.PartialCurve, error) {
	target, ok, err := t.Child(fbs.PartialCurveTargetCurve)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: partial curve without parent", errs.ErrCorruptBuffer)
	}
	g, err := d.variant(target, depth+1)
	if err != nil {
		return nil, err
	}
	parent, ok := g.(geometry.CurvePrimitive)
	if !ok {
		return nil, fmt.Errorf("%w: partial curve parent is a %s", errs.ErrUnexpectedGeometry, g.GeometryType())
	}

	c := &geometry.PartialCurve{Parent: parent}
	if c.FractionA, err = t.Float64(fbs.PartialCurveFractionA); err != nil {
		return nil, err
	}
	if c.FractionB, err = t.Float64(fbs.PartialCurveFractionB); err != nil {
		return nil, err
	}

	return c, nil
}

func (d *Decoder) curveVector(t fbs.Table, depth int) (*geometry.CurveVector, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, d.maxDepth)
	}

	raw, err := t.Int32(fbs.CurveVectorType)
	if err != nil {
		return nil, err
	}
	cv := &geometry.CurveVector{Boundary: geometry.BoundaryType(raw)}
	if !cv.Boundary.Valid() {
		return nil, fmt.Errorf("%w: boundary type %d", errs.ErrCorruptBuffer, raw)
	}

	err = each(t, fbs.CurveVectorCurves, func(i int, m fbs.Table) error {
		g, ok, err := d.member("CurveVector", i, m, depth+1)
		if !ok {
			return err
		}
		c, ok := g.(geometry.Curve)
		if !ok {
			return fmt.Errorf("%w: %s inside a curve vector", errs.ErrUnexpectedGeometry, g.GeometryType())
		}
		cv.Children = append(cv.Children, c)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return cv, nil
}
