// Package geomtest provides geometry fixtures shared by the codec tests.
//
// Fixtures use nil for absent arrays, so a decoded tree compares equal to its
// source with require.Equal.
package geomtest

import (
	"math"

	"github.com/arloliu/geomcodec/geometry"
)

// Sample is a named fixture.
type Sample struct {
	Name     string
	Geometry geometry.Geometry
}

// Pt is shorthand for a 3D point.
func Pt(x, y, z float64) geometry.Point3d { return geometry.Point3d{X: x, Y: y, Z: z} }

// Vec is shorthand for a 3D vector.
func Vec(x, y, z float64) geometry.Vector3d { return geometry.Vector3d{X: x, Y: y, Z: z} }

// Line returns a tagged line segment.
func Line() *geometry.LineSegment {
	l := &geometry.LineSegment{Start: Pt(0, 0, 0), End: Pt(3, 4, math.Copysign(0, -1))}
	l.SetPrimitiveID(&geometry.CurvePrimitiveID{Type: 2, GeomIndex: 7, PartIndex: 1, Bytes: []byte{0xde, 0xad}})

	return l
}

// Arc returns a full circle of radius 2 in the XY plane.
func Arc() *geometry.EllipticArc {
	return &geometry.EllipticArc{
		Center:   Pt(1, 1, 0),
		Vector0:  Vec(2, 0, 0),
		Vector90: Vec(0, 2, 0),
		Start:    0,
		Sweep:    2 * math.Pi,
	}
}

// Square returns a closed unit square line string.
func Square(offset float64) *geometry.LineString {
	return &geometry.LineString{Points: []geometry.Point3d{
		Pt(offset, offset, 0), Pt(offset+1, offset, 0), Pt(offset+1, offset+1, 0),
		Pt(offset, offset+1, 0), Pt(offset, offset, 0),
	}}
}

// Polyface returns a two-triangle mesh with every optional array populated.
func Polyface() *geometry.Polyface {
	return &geometry.Polyface{
		MeshStyle:       geometry.MeshStyleIndexed,
		NumPerFace:      3,
		TwoSided:        true,
		ExpectedClosure: 1,
		Points:          []geometry.Point3d{Pt(0, 0, 0), Pt(1, 0, 0), Pt(1, 1, 0), Pt(0, 1, 0)},
		Params:          []geometry.Point2d{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}},
		Normals:         []geometry.Vector3d{Vec(0, 0, 1)},
		IntColors:       []int32{0x00ff00},
		PointIndex:      []int32{1, 2, 3, 0, 1, 3, 4, 0},
		ParamIndex:      []int32{1, 2, 3, 0, 1, 3, 4, 0},
		NormalIndex:     []int32{1, 1, 1, 0, 1, 1, 1, 0},
		ColorIndex:      []int32{1, 1, 1, 0, 1, 1, 1, 0},
		FaceIndex:       []int32{1, 1, 1, 0, 2, 2, 2, 0},
		FaceData: []geometry.FaceData{
			{ParamDistanceHigh: geometry.Point2d{X: 1, Y: 1}, ParamHigh: geometry.Point2d{X: 1, Y: 1}},
			{ParamDistanceLow: geometry.Point2d{X: 0.5}, ParamDistanceHigh: geometry.Point2d{X: 1, Y: 1}},
		},
		AuxData: &geometry.PolyfaceAuxData{
			Indices: []int32{1, 2, 3, 0, 1, 3, 4, 0},
			Channels: []geometry.AuxChannel{{
				DataType:  1,
				Name:      "stress",
				InputName: "time",
				Data: []geometry.AuxChannelData{
					{Input: 0, Values: []float64{0, 0.1, 0.2, 0.3}},
					{Input: 1.5, Values: []float64{1, 1.1, 1.2, 1.3}},
				},
			}},
		},
	}
}

// Cylinder returns a capped right circular cylinder of radius 2 and height 5.
func Cylinder() *geometry.DgnCone {
	return &geometry.DgnCone{
		CenterA:  Pt(0, 0, 0),
		CenterB:  Pt(0, 0, 5),
		Vector0:  Vec(1, 0, 0),
		Vector90: Vec(0, 1, 0),
		RadiusA:  2,
		RadiusB:  2,
		Capped:   true,
	}
}

// Cone returns a capped right circular cone with radii 2 and 3 and height 5.
func Cone() *geometry.DgnCone {
	c := Cylinder()
	c.RadiusB = 3

	return c
}

// Samples returns one fixture for every geometry kind the format carries.
func Samples() []Sample {
	spiralFrame := geometry.NewTransform(Pt(10, 0, 0), Vec(1, 0, 0), Vec(0, 1, 0), Vec(0, 0, 1))

	bspline := &geometry.BsplineCurve{
		Order:   3,
		Poles:   []geometry.Point3d{Pt(0, 0, 0), Pt(1, 2, 0), Pt(3, 2, 0), Pt(4, 0, 0)},
		Weights: []float64{1, 0.5, 0.5, 1},
		Knots:   []float64{0, 0, 0, 0.5, 1, 1, 1},
	}

	region := geometry.NewCurveVector(geometry.BoundaryParityRegion,
		geometry.NewCurveVector(geometry.BoundaryOuter, Square(0)),
		geometry.NewCurveVector(geometry.BoundaryInner, &geometry.LineString{Points: []geometry.Point3d{
			Pt(0.25, 0.25, 0), Pt(0.75, 0.25, 0), Pt(0.75, 0.75, 0), Pt(0.25, 0.25, 0),
		}}),
	)

	return []Sample{
		{"LineSegment", Line()},
		{"EllipticArc", Arc()},
		{"LineString", Square(0)},
		{"PointString", &geometry.PointString{Points: []geometry.Point3d{Pt(1, 2, 3), Pt(4, 5, 6)}}},
		{"BsplineCurve", bspline},
		{"ClosedBsplineCurve", &geometry.BsplineCurve{
			Order: 2, Closed: true,
			Poles: []geometry.Point3d{Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0)},
			Knots: []float64{0, 1, 2, 3, 4},
		}},
		{"InterpolationCurve", &geometry.InterpolationCurve{
			Order: 4, IsChordLenKnots: 1, IsNaturalTangents: 1,
			StartTangent: Vec(1, 0, 0), EndTangent: Vec(0, 1, 0),
			FitPoints: []geometry.Point3d{Pt(0, 0, 0), Pt(1, 1, 0), Pt(2, 0, 0)},
			Knots:     []float64{0, 0.5, 1},
		}},
		{"AkimaCurve", &geometry.AkimaCurve{Points: []geometry.Point3d{
			Pt(0, 0, 0), Pt(1, 1, 0), Pt(2, 0, 0), Pt(3, 1, 0), Pt(4, 0, 0), Pt(5, 1, 0),
		}}},
		{"TransitionSpiral", &geometry.TransitionSpiral{
			SpiralType: 10, Frame: spiralFrame,
			StartBearing: 0, EndBearing: math.Pi / 8,
			StartCurvature: 0, EndCurvature: 0.01,
			Length: 100, FractionA: 0, FractionB: 1,
		}},
		{"CatenaryCurve", &geometry.CatenaryCurve{
			A: 2, Origin: Pt(0, 0, 0), VectorU: Vec(1, 0, 0), VectorV: Vec(0, 0, 1), X0: -1, X1: 1.5,
		}},
		{"PartialCurve", &geometry.PartialCurve{Parent: Line(), FractionA: math.Copysign(0, -1), FractionB: 0.75}},
		{"OpenPath", geometry.NewCurveVector(geometry.BoundaryOpen, Line(), Arc())},
		{"ParityRegion", region},
		{"UnionRegion", geometry.NewCurveVector(geometry.BoundaryUnionRegion,
			geometry.NewCurveVector(geometry.BoundaryOuter, Square(0)),
			geometry.NewCurveVector(geometry.BoundaryOuter, Square(5)),
		)},
		{"EmptyCurveVector", geometry.NewCurveVector(geometry.BoundaryNone)},
		{"DgnBox", &geometry.DgnBox{
			BaseOrigin: Pt(0, 0, 0), TopOrigin: Pt(0, 0, 2),
			VectorX: Vec(1, 0, 0), VectorY: Vec(0, 1, 0),
			BaseX: 3, BaseY: 4, TopX: 3, TopY: 4, Capped: true,
		}},
		{"DgnCone", Cone()},
		{"DgnSphere", &geometry.DgnSphere{
			LocalToWorld:  geometry.NewTransform(Pt(1, 2, 3), Vec(2, 0, 0), Vec(0, 2, 0), Vec(0, 0, 2)),
			StartLatitude: -math.Pi / 2, LatitudeSweep: math.Pi, Capped: true,
		}},
		{"DgnTorusPipe", &geometry.DgnTorusPipe{
			Center: Pt(0, 0, 0), VectorX: Vec(1, 0, 0), VectorY: Vec(0, 1, 0),
			MajorRadius: 5, MinorRadius: 1, SweepAngle: math.Pi, Capped: true,
		}},
		{"DgnExtrusion", &geometry.DgnExtrusion{
			BaseCurve:       geometry.NewCurveVector(geometry.BoundaryOuter, Square(0)),
			ExtrusionVector: Vec(0, 0, 3),
			Capped:          true,
		}},
		{"DgnRotationalSweep", &geometry.DgnRotationalSweep{
			BaseCurve:  geometry.NewCurveVector(geometry.BoundaryOuter, Square(2)),
			Axis:       geometry.Ray3d{Origin: Pt(0, 0, 0), Direction: Vec(0, 1, 0)},
			SweepAngle: math.Pi / 2,
			NumVRules:  4,
		}},
		{"DgnRuledSweep", &geometry.DgnRuledSweep{
			Sections: []*geometry.CurveVector{
				geometry.NewCurveVector(geometry.BoundaryOuter, Square(0)),
				geometry.NewCurveVector(geometry.BoundaryOuter, Square(1)),
			},
			Capped: true,
		}},
		{"BsplineSurface", &geometry.BsplineSurface{
			OrderU: 2, OrderV: 2, NumPolesU: 2, NumPolesV: 2, NumRulesU: 3, NumRulesV: 3,
			ClosedV: true, HoleOrigin: true,
			Poles:    []geometry.Point3d{Pt(0, 0, 0), Pt(1, 0, 0), Pt(0, 1, 0), Pt(1, 1, 1)},
			Weights:  []float64{1, 1, 1, 2},
			KnotsU:   []float64{0, 0, 1, 1},
			KnotsV:   []float64{0, 0, 1, 1},
			Boundary: geometry.NewCurveVector(geometry.BoundaryOuter, Square(0)),
		}},
		{"Polyface", Polyface()},
		{"GeometryList", geometry.GeometryList{Line(), Cylinder(), Polyface()}},
	}
}
