package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/geomtest"
)

func TestEllipticArc_Predicates(t *testing.T) {
	arc := geomtest.Arc()
	require.True(t, arc.IsFullEllipse())
	require.True(t, arc.IsCircular())
	require.InDelta(t, 3.0, arc.PointAtAngle(0).X, 1e-15)

	half := &geometry.EllipticArc{Vector0: geomtest.Vec(2, 0, 0), Vector90: geomtest.Vec(0, 1, 0), Sweep: -math.Pi}
	require.False(t, half.IsFullEllipse())
	require.False(t, half.IsCircular())

	reversed := *arc
	reversed.Sweep = -2 * math.Pi
	require.True(t, reversed.IsFullEllipse())
}

func TestEllipticArc_PerpendicularAxes(t *testing.T) {
	arc := &geometry.EllipticArc{
		Center:   geomtest.Pt(1, 2, 3),
		Vector0:  geomtest.Vec(2, 0, 0),
		Vector90: geomtest.Vec(1, 1, 0),
		Start:    0.3,
		Sweep:    1.2,
	}

	p := arc.PerpendicularAxes()
	require.True(t, p.Vector0.IsPerpendicular(p.Vector90))
	require.GreaterOrEqual(t, p.Vector0.Length(), p.Vector90.Length())
	require.Equal(t, arc.Sweep, p.Sweep)
	require.Equal(t, arc.Center, p.Center)

	for _, f := range []float64{0, 0.25, 0.5, 1} {
		want := arc.PointAtAngle(arc.Start + f*arc.Sweep)
		got := p.PointAtAngle(p.Start + f*p.Sweep)
		require.InDelta(t, 0, want.Sub(got).Length(), 1e-12, "fraction %v", f)
	}

	n0 := arc.Vector0.Cross(arc.Vector90)
	n1 := p.Vector0.Cross(p.Vector90)
	require.Positive(t, n0.Dot(n1), "orientation is preserved")
}

func TestFractionToPoint(t *testing.T) {
	tests := []struct {
		name string
		c    geometry.CurvePrimitive
		f    float64
		want geometry.Point3d
	}{
		{"Line", &geometry.LineSegment{End: geomtest.Pt(4, 0, 0)}, 0.25, geomtest.Pt(1, 0, 0)},
		{"Arc", geomtest.Arc(), 0.25, geomtest.Pt(1, 3, 0)},
		{"LineStringMid", geomtest.Square(0), 0.5, geomtest.Pt(1, 1, 0)},
		{"LineStringEnd", geomtest.Square(0), 1, geomtest.Pt(0, 0, 0)},
		{"Catenary", &geometry.CatenaryCurve{A: 1, VectorU: geomtest.Vec(1, 0, 0), VectorV: geomtest.Vec(0, 1, 0)}, 0.5, geomtest.Pt(0, 1, 0)},
		{"Partial", &geometry.PartialCurve{Parent: &geometry.LineSegment{End: geomtest.Pt(4, 0, 0)}, FractionA: 0.5, FractionB: 1}, 0.5, geomtest.Pt(3, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := geometry.FractionToPoint(tt.c, tt.f)
			require.True(t, ok)
			require.InDelta(t, 0, got.Sub(tt.want).Length(), 1e-12, "got %v", got)
		})
	}

	_, ok := geometry.FractionToPoint(&geometry.BsplineCurve{}, 0.5)
	require.False(t, ok)
	_, ok = geometry.FractionToPoint(&geometry.LineString{}, 0.5)
	require.False(t, ok)
	_, ok = geometry.FractionToPoint(&geometry.PartialCurve{}, 0.5)
	require.False(t, ok)
}

func TestEndpoints(t *testing.T) {
	start, end, ok := geometry.Endpoints(&geometry.BsplineCurve{
		Poles: []geometry.Point3d{geomtest.Pt(0, 0, 0), geomtest.Pt(1, 1, 0), geomtest.Pt(2, 0, 0)},
	})
	require.True(t, ok)
	require.Equal(t, geomtest.Pt(0, 0, 0), start)
	require.Equal(t, geomtest.Pt(2, 0, 0), end)

	akima := &geometry.AkimaCurve{Points: []geometry.Point3d{
		geomtest.Pt(0, 0, 0), geomtest.Pt(1, 0, 0), geomtest.Pt(2, 0, 0),
		geomtest.Pt(3, 0, 0), geomtest.Pt(4, 0, 0), geomtest.Pt(5, 0, 0),
	}}
	start, end, ok = geometry.Endpoints(akima)
	require.True(t, ok)
	require.Equal(t, geomtest.Pt(2, 0, 0), start, "akima curves skip two leading points")
	require.Equal(t, geomtest.Pt(3, 0, 0), end)

	_, _, ok = geometry.Endpoints(&geometry.PointString{Points: []geometry.Point3d{{}}})
	require.False(t, ok)
	_, _, ok = geometry.Endpoints(&geometry.AkimaCurve{})
	require.False(t, ok)
}

func TestCurveVector_Predicates(t *testing.T) {
	loop := geometry.NewCurveVector(geometry.BoundaryOuter, geomtest.Square(0))
	require.True(t, loop.IsClosedPath())
	require.True(t, loop.IsRegion())
	require.False(t, loop.IsOpenPath())
	require.True(t, loop.IsPhysicallyClosed())

	only, ok := loop.Singleton()
	require.True(t, ok)
	require.IsType(t, &geometry.LineString{}, only)

	open := geometry.NewCurveVector(geometry.BoundaryOpen, geomtest.Line(), geomtest.Arc())
	require.True(t, open.IsOpenPath())
	require.False(t, open.IsRegion())
	require.False(t, open.IsPhysicallyClosed())
	_, ok = open.Singleton()
	require.False(t, ok)

	region := geometry.NewCurveVector(geometry.BoundaryParityRegion, loop, geometry.NewCurveVector(geometry.BoundaryInner, geomtest.Square(0.25)))
	require.True(t, region.IsRegion())
	require.False(t, region.IsClosedPath())
	require.False(t, region.IsPhysicallyClosed())
	require.Equal(t, 2, region.PrimitiveCount())

	nested := geometry.NewCurveVector(geometry.BoundaryNone, region, geomtest.Line())
	require.Equal(t, 3, nested.PrimitiveCount())
	require.False(t, geometry.NewCurveVector(geometry.BoundaryNone).IsPhysicallyClosed())
}

func TestBoundaryType(t *testing.T) {
	require.Equal(t, "ParityRegion", geometry.BoundaryParityRegion.String())
	require.Equal(t, "Unknown", geometry.BoundaryType(9).String())
	require.True(t, geometry.BoundaryUnionRegion.Valid())
	require.False(t, geometry.BoundaryType(-1).Valid())
	require.False(t, geometry.BoundaryType(6).Valid())
}

func TestStartPoint(t *testing.T) {
	p, ok := geometry.StartPoint(geometry.NewCurveVector(geometry.BoundaryOpen,
		geometry.NewCurveVector(geometry.BoundaryOpen, geomtest.Square(2))))
	require.True(t, ok)
	require.Equal(t, geomtest.Pt(2, 2, 0), p)

	spiral := &geometry.TransitionSpiral{Frame: geometry.NewTransform(geomtest.Pt(10, 0, 0),
		geomtest.Vec(1, 0, 0), geomtest.Vec(0, 1, 0), geomtest.Vec(0, 0, 1))}
	p, ok = geometry.StartPoint(spiral)
	require.True(t, ok)
	require.Equal(t, geomtest.Pt(10, 0, 0), p)

	_, ok = geometry.StartPoint(geometry.NewCurveVector(geometry.BoundaryOpen))
	require.False(t, ok)
}

func TestIsNil(t *testing.T) {
	require.True(t, geometry.IsNil(nil))
	require.True(t, geometry.IsNil((*geometry.LineSegment)(nil)))
	require.True(t, geometry.IsNil((*geometry.CurveVector)(nil)))
	require.True(t, geometry.IsNil((*geometry.Polyface)(nil)))
	require.False(t, geometry.IsNil(geomtest.Line()))
	require.False(t, geometry.IsNil(geometry.GeometryList(nil)))
}

func TestCurvePrimitiveID_Equal(t *testing.T) {
	a := &geometry.CurvePrimitiveID{Type: 1, Bytes: []byte{1}}
	b := &geometry.CurvePrimitiveID{Type: 1, Bytes: []byte{1}}
	require.True(t, a.Equal(b))

	b.Bytes = []byte{2}
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))

	var none *geometry.CurvePrimitiveID
	require.True(t, none.Equal(nil))
}

func TestPolyface_ValidateIndices(t *testing.T) {
	require.NoError(t, geomtest.Polyface().ValidateIndices())

	bare := &geometry.Polyface{PointIndex: []int32{1, 2, 3, 0}}
	require.NoError(t, bare.ValidateIndices(), "absent arrays are not checked")

	for _, mutate := range []func(p *geometry.Polyface){
		func(p *geometry.Polyface) { p.NormalIndex = p.NormalIndex[:3] },
		func(p *geometry.Polyface) { p.ParamIndex = append(p.ParamIndex, 1) },
		func(p *geometry.Polyface) { p.ColorIndex = p.ColorIndex[1:] },
		func(p *geometry.Polyface) { p.FaceIndex = []int32{1} },
	} {
		p := geomtest.Polyface()
		mutate(p)
		require.ErrorIs(t, p.ValidateIndices(), errs.ErrIndexCountMismatch)
	}
}
