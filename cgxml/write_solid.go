package cgxml

import (
	"fmt"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/geometry"
)

func (k *walk) solid(s geometry.SolidPrimitive, depth int) error {
	switch sp := s.(type) {
	case *geometry.DgnBox:
		return k.box(sp, depth)
	case *geometry.DgnCone:
		return k.cone(sp, depth)
	case *geometry.DgnSphere:
		return k.sphere(sp, depth)
	case *geometry.DgnTorusPipe:
		return k.torus(sp, depth)
	case *geometry.DgnExtrusion:
		return k.extrusion(sp, depth)
	case *geometry.DgnRotationalSweep:
		return k.rotationalSweep(sp, depth)
	case *geometry.DgnRuledSweep:
		return k.ruledSweep(sp, depth)
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedGeometry, s)
	}
}

func (k *walk) box(b *geometry.DgnBox, depth int) error {
	if block, ok := b.IsBlock(); ok && k.preferCGSweeps {
		return k.set("Block", depth, func() error {
			return first(
				k.framePlacement(block.Frame),
				k.point("cornerA", geometry.Point3d{}),
				k.point("cornerB", block.CornerB),
				k.boolean("bSolidFlag", b.Capped),
			)
		})
	}

	return k.set("DgnBox", depth, func() error {
		return first(
			k.point("baseOrigin", b.BaseOrigin),
			k.point("topOrigin", b.TopOrigin),
			k.vector("vectorX", b.VectorX),
			k.vector("vectorY", b.VectorY),
			k.double("baseX", b.BaseX),
			k.double("baseY", b.BaseY),
			k.double("topX", b.TopX),
			k.double("topY", b.TopY),
			k.boolean("capped", b.Capped),
		)
	})
}

func (k *walk) cone(c *geometry.DgnCone, depth int) error {
	if k.preferCGSweeps {
		if shape, ok := c.IsCylinder(); ok {
			return k.set("CircularCylinder", depth, func() error {
				return first(
					k.framePlacement(shape.Frame),
					k.double("height", shape.Height),
					k.double("radius", shape.RadiusA),
					k.boolean("bSolidFlag", c.Capped),
				)
			})
		}
		if shape, ok := c.IsCircularCone(); ok {
			return k.set("CircularCone", depth, func() error {
				return first(
					k.framePlacement(shape.Frame),
					k.double("height", shape.Height),
					k.double("radiusA", shape.RadiusA),
					k.double("radiusB", shape.RadiusB),
					k.boolean("bSolidFlag", c.Capped),
				)
			})
		}
	}

	return k.set("DgnCone", depth, func() error {
		return first(
			k.point("centerA", c.CenterA),
			k.point("centerB", c.CenterB),
			k.vector("vector0", c.Vector0),
			k.vector("vector90", c.Vector90),
			k.double("radiusA", c.RadiusA),
			k.double("radiusB", c.RadiusB),
			k.boolean("capped", c.Capped),
		)
	})
}

func (k *walk) sphere(s *geometry.DgnSphere, depth int) error {
	if frame, radius, ok := s.TrueSphere(); ok && k.preferCGSweeps {
		return k.set("Sphere", depth, func() error {
			return first(k.framePlacement(frame), k.double("radius", radius))
		})
	}

	vectorX, radiusXY := s.LocalToWorld.Column(0).Normalize()
	vectorZ, radiusZ := s.LocalToWorld.Column(2).Normalize()

	return k.set("DgnSphere", depth, func() error {
		return first(
			k.point("center", s.LocalToWorld.Origin()),
			k.vector("vectorX", vectorX),
			k.vector("vectorZ", vectorZ),
			k.double("radiusXY", radiusXY),
			k.double("radiusZ", radiusZ),
			k.angle("startLatitude", s.StartLatitude),
			k.angle("latitudeSweep", s.LatitudeSweep),
			k.boolean("capped", s.Capped),
		)
	})
}

func (k *walk) torus(t *geometry.DgnTorusPipe, depth int) error {
	if frame, ok := t.IsCircularFrame(); ok && k.preferCGSweeps {
		return k.set("TorusPipe", depth, func() error {
			return first(
				k.framePlacement(frame),
				k.double("radiusA", t.MajorRadius),
				k.double("radiusB", t.MinorRadius),
				k.angle("startAngle", 0),
				k.angle("sweepAngle", t.SweepAngle),
				k.boolean("bSolidFlag", t.Capped),
			)
		})
	}

	return k.set("DgnTorusPipe", depth, func() error {
		return first(
			k.point("center", t.Center),
			k.vector("vectorX", t.VectorX),
			k.vector("vectorY", t.VectorY),
			k.double("majorRadius", t.MajorRadius),
			k.double("minorRadius", t.MinorRadius),
			k.angle("sweepAngle", t.SweepAngle),
			k.boolean("capped", t.Capped),
		)
	})
}

func (k *walk) extrusion(e *geometry.DgnExtrusion, depth int) error {
	if e.BaseCurve == nil {
		return fmt.Errorf("%w: extrusion without base curve", errs.ErrUnsupportedGeometry)
	}
	if k.preferCGSweeps {
		if start, ok := geometry.StartPoint(e.BaseCurve); ok {
			rail := &geometry.LineSegment{Start: start, End: start.Add(e.ExtrusionVector)}
			return k.swept(e.BaseCurve, rail, e.Capped, depth)
		}
	}

	return k.set("DgnExtrusion", depth, func() error {
		if err := k.vector("extrusionVector", e.ExtrusionVector); err != nil {
			return err
		}
		if err := k.baseGeometry(e.BaseCurve, depth); err != nil {
			return err
		}

		return k.boolean("capped", e.Capped)
	})
}

func (k *walk) rotationalSweep(r *geometry.DgnRotationalSweep, depth int) error {
	if r.BaseCurve == nil {
		return fmt.Errorf("%w: rotational sweep without base curve", errs.ErrUnsupportedGeometry)
	}
	if k.preferCGSweeps {
		if rail, ok := r.SweptArcRail(); ok {
			return k.swept(r.BaseCurve, rail, r.Capped, depth)
		}
	}

	return k.set("DgnRotationalSweep", depth, func() error {
		if err := first(
			k.point("center", r.Axis.Origin),
			k.vector("axis", r.Axis.Direction),
			k.angle("sweepAngle", r.SweepAngle),
			k.integer("numVRules", r.NumVRules),
		); err != nil {
			return err
		}
		if err := k.baseGeometry(r.BaseCurve, depth); err != nil {
			return err
		}

		return k.boolean("capped", r.Capped)
	})
}

// swept writes a base curve moved along a rail. Capped sweeps are solids.
func (k *walk) swept(base *geometry.CurveVector, rail geometry.CurvePrimitive, capped bool, depth int) error {
	name := "SurfaceBySweptCurve"
	if capped {
		name = "SolidBySweptSurface"
	}

	return k.set(name, depth, func() error {
		if err := k.baseGeometry(base, depth); err != nil {
			return err
		}

		return k.child("railCurve", func() error {
			return k.curvePrimitive(rail, depth+1)
		})
	})
}

func (k *walk) baseGeometry(base *geometry.CurveVector, depth int) error {
	return k.child("baseGeometry", func() error {
		return k.curveVector(base, depth+1)
	})
}

func (k *walk) ruledSweep(r *geometry.DgnRuledSweep, depth int) error {
	for i, s := range r.Sections {
		if s == nil {
			return fmt.Errorf("%w: ruled sweep section %d is nil", errs.ErrUnsupportedGeometry, i)
		}
	}
	if k.preferCGSweeps && len(r.Sections) >= 2 {
		return k.set("SolidByRuledSweep", depth, func() error {
			err := k.array("ListOfSection", "Section", func() error {
				return k.each(r.Sections, depth+1)
			})
			if err != nil {
				return err
			}

			return k.boolean("bSolidFlag", r.Capped)
		})
	}

	return k.set("DgnRuledSweep", depth, func() error {
		err := k.array("ListOfContour", "Contour", func() error {
			return k.each(r.Sections, depth+1)
		})
		if err != nil {
			return err
		}

		return k.boolean("capped", r.Capped)
	})
}
