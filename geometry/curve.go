package geometry

import "math"

// LineSegment is a bounded line between two points.
type LineSegment struct {
	PrimitiveTag
	Start, End Point3d
}

// EllipticArc is an arc of the ellipse
// X(θ) = Center + Vector0·cos θ + Vector90·sin θ for θ in [Start, Start+Sweep].
type EllipticArc struct {
	PrimitiveTag
	Center   Point3d
	Vector0  Vector3d
	Vector90 Vector3d
	Start    float64
	Sweep    float64
}

// LineString is a polyline through its points.
type LineString struct {
	PrimitiveTag
	Points []Point3d
}

// PointString is a set of isolated points.
type PointString struct {
	PrimitiveTag
	Points []Point3d
}

// BsplineCurve is a (possibly rational) B-spline curve.
// Weights is nil for non-rational curves.
type BsplineCurve struct {
	PrimitiveTag
	Order   int
	Closed  bool
	Poles   []Point3d
	Weights []float64
	Knots   []float64
}

// InterpolationCurve is a curve defined by fit points and end conditions.
type InterpolationCurve struct {
	PrimitiveTag
	Order              int
	Periodic           bool
	IsChordLenKnots    int
	IsColinearTangents int
	IsChordLenTangents int
	IsNaturalTangents  int
	StartTangent       Vector3d
	EndTangent         Vector3d
	FitPoints          []Point3d
	Knots              []float64
}

// AkimaCurve is an Akima spline through its points. The first and last two
// points only shape the end tangents.
type AkimaCurve struct {
	PrimitiveTag
	Points []Point3d
}

// TransitionSpiral is a transition (clothoid family) curve placed by Frame.
type TransitionSpiral struct {
	PrimitiveTag
	SpiralType     int
	Frame          Transform
	StartBearing   float64
	StartCurvature float64
	EndBearing     float64
	EndCurvature   float64
	Length         float64
	FractionA      float64
	FractionB      float64
}

// CatenaryCurve is y = A·cosh(x/A) for x in [X0, X1], mapped to
// Origin + VectorU·x + VectorV·y.
type CatenaryCurve struct {
	PrimitiveTag
	A       float64
	Origin  Point3d
	VectorU Vector3d
	VectorV Vector3d
	X0      float64
	X1      float64
}

// PartialCurve is the fraction interval [FractionA, FractionB] of Parent.
// The parent is owned by the partial curve.
type PartialCurve struct {
	PrimitiveTag
	Parent    CurvePrimitive
	FractionA float64
	FractionB float64
}

func (*LineSegment) GeometryType() GeometryType        { return GeometryTypeCurvePrimitive }
func (*EllipticArc) GeometryType() GeometryType        { return GeometryTypeCurvePrimitive }
func (*LineString) GeometryType() GeometryType         { return GeometryTypeCurvePrimitive }
func (*PointString) GeometryType() GeometryType        { return GeometryTypeCurvePrimitive }
func (*BsplineCurve) GeometryType() GeometryType       { return GeometryTypeCurvePrimitive }
func (*InterpolationCurve) GeometryType() GeometryType { return GeometryTypeCurvePrimitive }
func (*AkimaCurve) GeometryType() GeometryType         { return GeometryTypeCurvePrimitive }
func (*TransitionSpiral) GeometryType() GeometryType   { return GeometryTypeCurvePrimitive }
func (*CatenaryCurve) GeometryType() GeometryType      { return GeometryTypeCurvePrimitive }
func (*PartialCurve) GeometryType() GeometryType       { return GeometryTypeCurvePrimitive }

func (*LineSegment) CurvePrimitiveType() CurvePrimitiveType  { return CurvePrimitiveLine }
func (*EllipticArc) CurvePrimitiveType() CurvePrimitiveType  { return CurvePrimitiveArc }
func (*LineString) CurvePrimitiveType() CurvePrimitiveType   { return CurvePrimitiveLineString }
func (*PointString) CurvePrimitiveType() CurvePrimitiveType  { return CurvePrimitivePointString }
func (*BsplineCurve) CurvePrimitiveType() CurvePrimitiveType { return CurvePrimitiveBsplineCurve }
func (*InterpolationCurve) CurvePrimitiveType() CurvePrimitiveType {
	return CurvePrimitiveInterpolationCurve
}
func (*AkimaCurve) CurvePrimitiveType() CurvePrimitiveType       { return CurvePrimitiveAkimaCurve }
func (*TransitionSpiral) CurvePrimitiveType() CurvePrimitiveType { return CurvePrimitiveSpiral }
func (*CatenaryCurve) CurvePrimitiveType() CurvePrimitiveType    { return CurvePrimitiveCatenary }
func (*PartialCurve) CurvePrimitiveType() CurvePrimitiveType     { return CurvePrimitivePartialCurve }

func (*LineSegment) isGeometry()        {}
func (*EllipticArc) isGeometry()        {}
func (*LineString) isGeometry()         {}
func (*PointString) isGeometry()        {}
func (*BsplineCurve) isGeometry()       {}
func (*InterpolationCurve) isGeometry() {}
func (*AkimaCurve) isGeometry()         {}
func (*TransitionSpiral) isGeometry()   {}
func (*CatenaryCurve) isGeometry()      {}
func (*PartialCurve) isGeometry()       {}

func (*LineSegment) isCurve()        {}
func (*EllipticArc) isCurve()        {}
func (*LineString) isCurve()         {}
func (*PointString) isCurve()        {}
func (*BsplineCurve) isCurve()       {}
func (*InterpolationCurve) isCurve() {}
func (*AkimaCurve) isCurve()         {}
func (*TransitionSpiral) isCurve()   {}
func (*CatenaryCurve) isCurve()      {}
func (*PartialCurve) isCurve()       {}

// PointAtAngle evaluates the ellipse at angle theta.
func (a *EllipticArc) PointAtAngle(theta float64) Point3d {
	return a.Center.Add(a.Vector0.Scale(math.Cos(theta))).Add(a.Vector90.Scale(math.Sin(theta)))
}

// IsFullEllipse reports whether the arc sweeps a full turn.
func (a *EllipticArc) IsFullEllipse() bool {
	return math.Abs(math.Abs(a.Sweep)-2*math.Pi) <= AngleTol
}

// IsCircular reports whether the two axis vectors are perpendicular and of
// equal length.
func (a *EllipticArc) IsCircular() bool {
	return a.Vector0.IsPerpendicular(a.Vector90) && almostEqual(a.Vector0.Length(), a.Vector90.Length())
}

// PerpendicularAxes returns the same arc reparameterized so that Vector0 and
// Vector90 are perpendicular and Vector0 is the major axis.
func (a *EllipticArc) PerpendicularAxes() EllipticArc {
	u, v := a.Vector0, a.Vector90
	t0 := 0.5 * math.Atan2(2*u.Dot(v), u.Dot(u)-v.Dot(v))
	c, s := math.Cos(t0), math.Sin(t0)
	u1 := u.Scale(c).Add(v.Scale(s))
	v1 := v.Scale(c).Sub(u.Scale(s))
	start := a.Start - t0
	if u1.Length() < v1.Length() {
		u1, v1 = v1, u1.Scale(-1)
		start -= math.Pi / 2
	}

	return EllipticArc{Center: a.Center, Vector0: u1, Vector90: v1, Start: start, Sweep: a.Sweep}
}

// FractionToPoint evaluates a curve at a fraction of its parameter range.
// Only curves with a closed-form evaluation are supported; ok is false otherwise.
func FractionToPoint(c CurvePrimitive, f float64) (Point3d, bool) {
	switch cp := c.(type) {
	case *LineSegment:
		return cp.Start.Add(cp.End.Sub(cp.Start).Scale(f)), true
	case *EllipticArc:
		return cp.PointAtAngle(cp.Start + f*cp.Sweep), true
	case *LineString:
		n := len(cp.Points)
		if n == 0 {
			return Point3d{}, false
		}
		if n == 1 {
			return cp.Points[0], true
		}
		s := f * float64(n-1)
		i := int(math.Floor(s))
		if i < 0 {
			i = 0
		}
		if i > n-2 {
			i = n - 2
		}
		t := s - float64(i)

		return cp.Points[i].Add(cp.Points[i+1].Sub(cp.Points[i]).Scale(t)), true
	case *CatenaryCurve:
		x := cp.X0 + f*(cp.X1-cp.X0)
		y := cp.A * math.Cosh(x/cp.A)

		return cp.Origin.Add(cp.VectorU.Scale(x)).Add(cp.VectorV.Scale(y)), true
	case *PartialCurve:
		if cp.Parent == nil {
			return Point3d{}, false
		}

		return FractionToPoint(cp.Parent, cp.FractionA+f*(cp.FractionB-cp.FractionA))
	default:
		return Point3d{}, false
	}
}

// Endpoints returns the start and end points of a curve primitive.
func Endpoints(c CurvePrimitive) (start, end Point3d, ok bool) {
	switch cp := c.(type) {
	case *LineString:
		if len(cp.Points) == 0 {
			return Point3d{}, Point3d{}, false
		}

		return cp.Points[0], cp.Points[len(cp.Points)-1], true
	case *BsplineCurve:
		if len(cp.Poles) == 0 {
			return Point3d{}, Point3d{}, false
		}
		if cp.Closed {
			return cp.Poles[0], cp.Poles[0], true
		}

		return cp.Poles[0], cp.Poles[len(cp.Poles)-1], true
	case *InterpolationCurve:
		if len(cp.FitPoints) == 0 {
			return Point3d{}, Point3d{}, false
		}

		return cp.FitPoints[0], cp.FitPoints[len(cp.FitPoints)-1], true
	case *AkimaCurve:
		if len(cp.Points) < 5 {
			return Point3d{}, Point3d{}, false
		}

		return cp.Points[2], cp.Points[len(cp.Points)-3], true
	case *TransitionSpiral, *PointString:
		return Point3d{}, Point3d{}, false
	}

	start, ok = FractionToPoint(c, 0)
	if !ok {
		return Point3d{}, Point3d{}, false
	}
	end, ok = FractionToPoint(c, 1)

	return start, end, ok
}
