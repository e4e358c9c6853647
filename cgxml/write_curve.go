package cgxml

import (
	"fmt"
	"math"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/geometry"
)

// dblEpsilon is the spacing of float64 values near 1.
const dblEpsilon = 2.220446049250313e-16

var spiralTypeNames = map[int]string{
	10: "Clothoid",
	11: "Bloss",
	12: "Biquadratic",
	13: "Cosine",
	14: "Sine",
	15: "Viennese",
	16: "WeightedViennese",
	50: "WesternAustralian",
	51: "Czech",
	52: "AustralianRailCorp",
	53: "Italian",
	54: "PolishCubic",
	55: "Arema",
	56: "MXCubicAlongArc",
	57: "MXCubicAlongTangent",
	58: "ChineseCubic",
	60: "DirectHalfCosine",
	61: "JapaneseCubic",
}

func spiralTypeName(code int) string {
	if name, ok := spiralTypeNames[code]; ok {
		return name
	}

	return "Unknown"
}

// spiralSlopeHeight is the rise of the spiral's length along the turned
// bearing. It is zero when the turn reaches a right angle or beyond.
func spiralSlopeHeight(s *geometry.TransitionSpiral) float64 {
	theta := s.EndBearing - s.StartBearing
	c := math.Cos(theta)
	if c <= dblEpsilon {
		return 0
	}

	return s.Length * math.Sin(theta) / c
}

// curvePrimitive writes c, inside an ExtendedObject envelope when the
// registry holds entries for it. The envelope does not add nesting depth.
func (k *walk) curvePrimitive(c geometry.CurvePrimitive, depth int) error {
	entries, ok := k.extended.Get(c)
	if !ok {
		return k.primitive(c, depth)
	}

	if err := k.sw.BeginSet("ExtendedObject"); err != nil {
		return err
	}
	if err := k.sw.Attribute("xmlns", ECSerializableNamespace); err != nil {
		return err
	}
	if err := k.primitive(c, depth); err != nil {
		return err
	}
	err := k.array("ExtendedData", "Entry", func() error {
		for _, e := range entries {
			err := k.child("Entry", func() error {
				return first(
					k.sw.Text("key", e.Key, false),
					k.sw.Text("typeCode", e.TypeCode, false),
					k.sw.Text("value", e.Value, false),
				)
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	return k.sw.EndSet("ExtendedObject")
}

func (k *walk) primitive(c geometry.CurvePrimitive, depth int) error {
	if depth > k.maxDepth {
		return errs.ErrMaxDepthExceeded
	}

	switch cp := c.(type) {
	case *geometry.LineSegment:
		return k.set("LineSegment", depth, func() error {
			return first(k.point("startPoint", cp.Start), k.point("endPoint", cp.End))
		})
	case *geometry.EllipticArc:
		return k.arc(cp, depth)
	case *geometry.LineString:
		return k.set("LineString", depth, func() error {
			return k.points("ListOfPoint", "xyz", cp.Points)
		})
	case *geometry.PointString:
		return k.set("PointChain", depth, func() error {
			return k.points("ListOfPoint", "xyz", cp.Points)
		})
	case *geometry.BsplineCurve:
		return k.set("BsplineCurve", depth, func() error {
			return k.bsplineCurve(cp)
		})
	case *geometry.InterpolationCurve:
		return k.set("InterpolatingCurve", depth, func() error {
			return k.interpolationCurve(cp)
		})
	case *geometry.AkimaCurve:
		return k.set("AkimaCurve", depth, func() error {
			return k.points("ListOfPoint", "xyz", cp.Points)
		})
	case *geometry.TransitionSpiral:
		return k.set("TransitionSpiral", depth, func() error {
			return k.spiral(cp)
		})
	case *geometry.CatenaryCurve:
		return k.set("Catenary", depth, func() error {
			return first(
				k.double("a", cp.A),
				k.point("origin", cp.Origin),
				k.vector("vectorU", cp.VectorU),
				k.vector("vectorV", cp.VectorV),
				k.double("x0", cp.X0),
				k.double("x1", cp.X1),
			)
		})
	case *geometry.PartialCurve:
		if geometry.IsNil(cp.Parent) {
			return fmt.Errorf("%w: partial curve without parent", errs.ErrUnsupportedGeometry)
		}

		return k.set("PartialCurve", depth, func() error {
			if err := first(k.double("fraction0", cp.FractionA), k.double("fraction1", cp.FractionB)); err != nil {
				return err
			}

			return k.child("parentCurve", func() error {
				return k.curvePrimitive(cp.Parent, depth+1)
			})
		})
	default:
		return fmt.Errorf("%w: %T", errs.ErrUnsupportedGeometry, c)
	}
}

// arcFrame is an arc expressed with perpendicular axes.
type arcFrame struct {
	center           geometry.Point3d
	vectorZ, vectorX geometry.Vector3d
	radiusA, radiusB float64
	start, sweep     float64
}

func newArcFrame(a *geometry.EllipticArc) arcFrame {
	p := *a
	if !a.IsCircular() {
		p = a.PerpendicularAxes()
	}
	ux, ra := p.Vector0.Normalize()
	_, rb := p.Vector90.Normalize()
	uz, _ := p.Vector0.Cross(p.Vector90).Normalize()

	return arcFrame{
		center:  p.Center,
		vectorZ: uz,
		vectorX: ux,
		radiusA: ra,
		radiusB: rb,
		start:   p.Start,
		sweep:   p.Sweep,
	}
}

func (k *walk) arc(a *geometry.EllipticArc, depth int) error {
	f := newArcFrame(a)
	if a.IsCircular() {
		return k.set("CircularArc", depth, func() error {
			return first(
				k.placement(f.center, f.vectorZ, f.vectorX),
				k.double("radius", f.radiusA),
				k.angle("startAngle", f.start),
				k.angle("sweepAngle", f.sweep),
			)
		})
	}

	return k.set("EllipticArc", depth, func() error {
		return first(
			k.placement(f.center, f.vectorZ, f.vectorX),
			k.double("radiusA", f.radiusA),
			k.double("radiusB", f.radiusB),
			k.angle("startAngle", f.start),
			k.angle("sweepAngle", f.sweep),
		)
	})
}

func (k *walk) bsplineCurve(c *geometry.BsplineCurve) error {
	if err := first(
		k.integer("order", c.Order),
		k.boolean("closed", c.Closed),
		k.points("ListOfControlPoint", "xyz", c.Poles),
	); err != nil {
		return err
	}
	if len(c.Weights) > 0 {
		if err := k.doubles("ListOfWeight", "weight", c.Weights); err != nil {
			return err
		}
	}

	return k.doubles("ListOfKnot", "knot", c.Knots)
}

func (k *walk) interpolationCurve(c *geometry.InterpolationCurve) error {
	if err := first(
		k.integer("order", c.Order),
		k.boolean("closed", c.Periodic),
		k.integer("isChordLenKnots", c.IsChordLenKnots),
		k.integer("isColinearTangents", c.IsColinearTangents),
		k.integer("isChordLenTangents", c.IsChordLenTangents),
		k.integer("isNaturalTangents", c.IsNaturalTangents),
		k.vector("startTangent", c.StartTangent),
		k.vector("endTangent", c.EndTangent),
		k.points("ListOfFitPoint", "xyz", c.FitPoints),
	); err != nil {
		return err
	}
	if len(c.Knots) == 0 {
		return nil
	}

	return k.doubles("ListOfKnot", "knot", c.Knots)
}

func (k *walk) spiral(s *geometry.TransitionSpiral) error {
	x, _ := s.Frame.Column(0).Normalize()
	z, _ := s.Frame.Column(2).Normalize()

	return first(
		k.placement(s.Frame.Origin(), z, x),
		k.sw.Text("spiralType", spiralTypeName(s.SpiralType), false),
		k.angle("startBearing", s.StartBearing),
		k.double("startCurvature", s.StartCurvature),
		k.angle("endBearing", s.EndBearing),
		k.double("endCurvature", s.EndCurvature),
		k.double("length", s.Length),
		k.double("activeStartFraction", s.FractionA),
		k.double("activeEndFraction", s.FractionB),
		k.double("slopeHeight", spiralSlopeHeight(s)),
	)
}
