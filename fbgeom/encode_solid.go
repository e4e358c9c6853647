package fbgeom

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
)

// detailSolid writes the layout shared by box, cone, sphere and torus.
func (s *encodeState) detailSolid(detail []float64, capped bool) flatbuffers.UOffsetT {
	fbs.Start(s.b, fbs.SolidFields)
	fbs.AddStruct(s.b, fbs.SolidDetail, detail)
	fbs.AddBool(s.b, fbs.SolidCapped, capped)

	return fbs.End(s.b)
}

func (s *encodeState) dgnBox(v *geometry.DgnBox) flatbuffers.UOffsetT {
	return s.detailSolid(boxDoubles(v), v.Capped)
}

func (s *encodeState) dgnCone(v *geometry.DgnCone) flatbuffers.UOffsetT {
	return s.detailSolid(coneDoubles(v), v.Capped)
}

func (s *encodeState) dgnSphere(v *geometry.DgnSphere) flatbuffers.UOffsetT {
	return s.detailSolid(sphereDoubles(v), v.Capped)
}

func (s *encodeState) dgnTorusPipe(v *geometry.DgnTorusPipe) flatbuffers.UOffsetT {
	return s.detailSolid(torusDoubles(v), v.Capped)
}

// baseCurve writes the curve vector a sweep is built from.
func (s *encodeState) baseCurve(cv *geometry.CurveVector, what string, depth int) (flatbuffers.UOffsetT, error) {
	if cv == nil {
		return 0, fmt.Errorf("%w: %s without base curve", errs.ErrUnsupportedGeometry, what)
	}

	return s.curveVector(cv, depth+1)
}

func (s *encodeState) dgnExtrusion(v *geometry.DgnExtrusion, depth int) (flatbuffers.UOffsetT, error) {
	base, err := s.baseCurve(v.BaseCurve, "extrusion", depth)
	if err != nil {
		return 0, err
	}

	fbs.Start(s.b, fbs.DgnExtrusionFields)
	fbs.AddStruct(s.b, fbs.DgnExtrusionExtrusionVector, vectorDoubles(v.ExtrusionVector))
	fbs.AddOffset(s.b, fbs.DgnExtrusionBaseCurve, base)
	fbs.AddBool(s.b, fbs.DgnExtrusionCapped, v.Capped)

	return fbs.End(s.b), nil
}

func (s *encodeState) dgnRotationalSweep(v *geometry.DgnRotationalSweep, depth int) (flatbuffers.UOffsetT, error) {
	base, err := s.baseCurve(v.BaseCurve, "rotational sweep", depth)
	if err != nil {
		return 0, err
	}

	fbs.Start(s.b, fbs.DgnRotationalSweepFields)
	fbs.AddStruct(s.b, fbs.DgnRotationalSweepAxis, rayDoubles(v.Axis))
	fbs.AddFloat64(s.b, fbs.DgnRotationalSweepSweepAngle, v.SweepAngle)
	fbs.AddOffset(s.b, fbs.DgnRotationalSweepBaseCurve, base)
	fbs.AddInt32(s.b, fbs.DgnRotationalSweepNumVRules, int32(v.NumVRules))
	fbs.AddBool(s.b, fbs.DgnRotationalSweepCapped, v.Capped)

	return fbs.End(s.b), nil
}

func (s *encodeState) dgnRuledSweep(v *geometry.DgnRuledSweep, depth int) (flatbuffers.UOffsetT, error) {
	offs, err := members(s, "DgnRuledSweep", v.Sections, func(cv *geometry.CurveVector) (flatbuffers.UOffsetT, error) {
		return s.baseCurve(cv, "ruled sweep section", depth)
	})
	if err != nil {
		return 0, err
	}
	vec := s.offsetVector(offs)

	fbs.Start(s.b, fbs.DgnRuledSweepFields)
	fbs.AddOffset(s.b, fbs.DgnRuledSweepCurves, vec)
	fbs.AddBool(s.b, fbs.DgnRuledSweepCapped, v.Capped)

	return fbs.End(s.b), nil
}

func (s *encodeState) bsplineSurface(v *geometry.BsplineSurface, depth int) (flatbuffers.UOffsetT, error) {
	var boundary flatbuffers.UOffsetT
	if v.Boundary != nil {
		var err error
		if boundary, err = s.curveVector(v.Boundary, depth+1); err != nil {
			return 0, err
		}
	}
	poles := tupleVector(s.b, v.Poles, format.Point3dStride, fillPoint)
	weights := fbs.CreateFloat64Vector(s.b, v.Weights)
	knotsU := fbs.CreateFloat64Vector(s.b, v.KnotsU)
	knotsV := fbs.CreateFloat64Vector(s.b, v.KnotsV)

	fbs.Start(s.b, fbs.BsplineSurfaceFields)
	fbs.AddOffset(s.b, fbs.BsplineSurfaceBoundary, boundary)
	fbs.AddOffset(s.b, fbs.BsplineSurfaceKnotsV, knotsV)
	fbs.AddOffset(s.b, fbs.BsplineSurfaceKnotsU, knotsU)
	fbs.AddOffset(s.b, fbs.BsplineSurfaceWeights, weights)
	fbs.AddOffset(s.b, fbs.BsplineSurfacePoles, poles)
	fbs.AddInt32(s.b, fbs.BsplineSurfaceOrderU, int32(v.OrderU))
	fbs.AddInt32(s.b, fbs.BsplineSurfaceOrderV, int32(v.OrderV))
	fbs.AddInt32(s.b, fbs.BsplineSurfaceNumPolesU, int32(v.NumPolesU))
	fbs.AddInt32(s.b, fbs.BsplineSurfaceNumPolesV, int32(v.NumPolesV))
	fbs.AddInt32(s.b, fbs.BsplineSurfaceNumRulesU, int32(v.NumRulesU))
	fbs.AddInt32(s.b, fbs.BsplineSurfaceNumRulesV, int32(v.NumRulesV))
	fbs.AddBool(s.b, fbs.BsplineSurfaceClosedU, v.ClosedU)
	fbs.AddBool(s.b, fbs.BsplineSurfaceClosedV, v.ClosedV)
	fbs.AddBool(s.b, fbs.BsplineSurfaceHoleOrigin, v.HoleOrigin)

	return fbs.End(s.b), nil
}
