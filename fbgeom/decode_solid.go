package fbgeom

import (
	"fmt"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
)

// detailSolid reads the detail struct and capped flag shared by box, cone,
// sphere and torus.
func detailSolid(t fbs.Table, n int, what string) ([]float64, bool, error) {
	vals, err := detail(t, fbs.SolidDetail, n, what)
	if err != nil {
		return nil, false, err
	}
	capped, err := t.Bool(fbs.SolidCapped)
	if err != nil {
		return nil, false, err
	}

	return vals, capped, nil
}

func (d *Decoder) dgnBox(t fbs.Table) (*geometry.DgnBox, error) {
	vals, capped, err := detailSolid(t, fbs.DgnBoxDetailDoubles, "box")
	if err != nil {
		return nil, err
	}
	b := &geometry.DgnBox{Capped: capped}
	boxFrom(vals, b)

	return b, nil
}

func (d *Decoder) dgnCone(t fbs.Table) (*geometry.DgnCone, error) {
	vals, capped, err := detailSolid(t, fbs.DgnConeDetailDoubles, "cone")
	if err != nil {
		return nil, err
	}
	c := &geometry.DgnCone{Capped: capped}
	coneFrom(vals, c)

	return c, nil
}

func (d *Decoder) dgnSphere(t fbs.Table) (*geometry.DgnSphere, error) {
	vals, capped, err := detailSolid(t, fbs.DgnSphereDetailDoubles, "sphere")
	if err != nil {
		return nil, err
	}
	s := &geometry.DgnSphere{Capped: capped}
	sphereFrom(vals, s)

	return s, nil
}

func (d *Decoder) dgnTorusPipe(t fbs.Table) (*geometry.DgnTorusPipe, error) {
	vals, capped, err := detailSolid(t, fbs.DgnTorusPipeDetailDoubles, "torus pipe")
	if err != nil {
		return nil, err
	}
	tp := &geometry.DgnTorusPipe{Capped: capped}
	torusFrom(vals, tp)

	return tp, nil
}

// baseCurve reads the required curve vector in slot.
func (d *Decoder) baseCurve(t fbs.Table, slot int, what string, depth int) (*geometry.CurveVector, error) {
	child, ok, err := t.Child(slot)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s without base curve", errs.ErrCorruptBuffer, what)
	}

	return d.curveVector(child, depth+1)
}

func (d *Decoder) dgnExtrusion(t fbs.Table, depth int) (*geometry.DgnExtrusion, error) {
	base, err := d.baseCurve(t, fbs.DgnExtrusionBaseCurve, "extrusion", depth)
	if err != nil {
		return nil, err
	}
	e := &geometry.DgnExtrusion{BaseCurve: base}
	if e.ExtrusionVector, err = optionalVector(t, fbs.DgnExtrusionExtrusionVector); err != nil {
		return nil, err
	}
	if err := boolField(t, fbs.DgnExtrusionCapped, &e.Capped); err != nil {
		return nil, err
	}

	return e, nil
}

func (d *Decoder) dgnRotationalSweep(t fbs.Table, depth int) (*geometry.DgnRotationalSweep, error) {
	base, err := d.baseCurve(t, fbs.DgnRotationalSweepBaseCurve, "rotational sweep", depth)
	if err != nil {
		return nil, err
	}
	axis, err := detail(t, fbs.DgnRotationalSweepAxis, fbs.DRay3dDoubles, "rotational sweep axis")
	if err != nil {
		return nil, err
	}

	s := &geometry.DgnRotationalSweep{BaseCurve: base, Axis: rayFrom(axis)}
	if s.SweepAngle, err = t.Float64(fbs.DgnRotationalSweepSweepAngle); err != nil {
		return nil, err
	}
	if err := int32Field(t, fbs.DgnRotationalSweepNumVRules, &s.NumVRules); err != nil {
		return nil, err
	}
	if err := boolField(t, fbs.DgnRotationalSweepCapped, &s.Capped); err != nil {
		return nil, err
	}

	return s, nil
}

func (d *Decoder) dgnRuledSweep(t fbs.Table, depth int) (*geometry.DgnRuledSweep, error) {
	s := &geometry.DgnRuledSweep{}
	err := each(t, fbs.DgnRuledSweepCurves, func(_ int, section fbs.Table) error {
		cv, err := d.curveVector(section, depth+1)
		if err != nil {
			return err
		}
		s.Sections = append(s.Sections, cv)

		return nil
	})
	if err != nil {
		return nil, err
	}
	if err := boolField(t, fbs.DgnRuledSweepCapped, &s.Capped); err != nil {
		return nil, err
	}

	return s, nil
}

func (d *Decoder) bsplineSurface(t fbs.Table, depth int) (*geometry.BsplineSurface, error) {
	s := &geometry.BsplineSurface{}
	ints := []struct {
		slot int
		dst  *int
	}{
		{fbs.BsplineSurfaceOrderU, &s.OrderU},
		{fbs.BsplineSurfaceOrderV, &s.OrderV},
		{fbs.BsplineSurfaceNumPolesU, &s.NumPolesU},
		{fbs.BsplineSurfaceNumPolesV, &s.NumPolesV},
		{fbs.BsplineSurfaceNumRulesU, &s.NumRulesU},
		{fbs.BsplineSurfaceNumRulesV, &s.NumRulesV},
	}
	for _, f := range ints {
		if err := int32Field(t, f.slot, f.dst); err != nil {
			return nil, err
		}
	}
	bools := []struct {
		slot int
		dst  *bool
	}{
		{fbs.BsplineSurfaceClosedU, &s.ClosedU},
		{fbs.BsplineSurfaceClosedV, &s.ClosedV},
		{fbs.BsplineSurfaceHoleOrigin, &s.HoleOrigin},
	}
	for _, f := range bools {
		if err := boolField(t, f.slot, f.dst); err != nil {
			return nil, err
		}
	}

	var err error
	if s.Poles, err = pointVector(t, fbs.BsplineSurfacePoles, "surface poles"); err != nil {
		return nil, err
	}
	if s.Weights, err = t.Float64s(fbs.BsplineSurfaceWeights); err != nil {
		return nil, err
	}
	if s.KnotsU, err = t.Float64s(fbs.BsplineSurfaceKnotsU); err != nil {
		return nil, err
	}
	if s.KnotsV, err = t.Float64s(fbs.BsplineSurfaceKnotsV); err != nil {
		return nil, err
	}

	boundary, ok, err := t.Child(fbs.BsplineSurfaceBoundary)
	if err != nil {
		return nil, err
	}
	if ok {
		if s.Boundary, err = d.curveVector(boundary, depth+1); err != nil {
			return nil, err
		}
	}

	return s, nil
}
