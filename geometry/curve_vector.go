package geometry

// BoundaryType is the topological role of a CurveVector. The numeric values
// are the wire codes of the binary format.
type BoundaryType int32

const (
	BoundaryNone         BoundaryType = 0
	BoundaryOpen         BoundaryType = 1
	BoundaryOuter        BoundaryType = 2
	BoundaryInner        BoundaryType = 3
	BoundaryParityRegion BoundaryType = 4
	BoundaryUnionRegion  BoundaryType = 5
)

func (b BoundaryType) String() string {
	switch b {
	case BoundaryNone:
		return "None"
	case BoundaryOpen:
		return "Open"
	case BoundaryOuter:
		return "Outer"
	case BoundaryInner:
		return "Inner"
	case BoundaryParityRegion:
		return "ParityRegion"
	case BoundaryUnionRegion:
		return "UnionRegion"
	default:
		return "Unknown"
	}
}

// Valid reports whether b is one of the defined boundary types.
func (b BoundaryType) Valid() bool {
	return b >= BoundaryNone && b <= BoundaryUnionRegion
}

// CurveVector is an ordered collection of curves with a boundary type.
// Outer and Inner vectors are expected to be closed loops; the codecs
// preserve the boundary type without checking closure.
type CurveVector struct {
	Boundary BoundaryType
	Children []Curve
}

// NewCurveVector creates a curve vector holding the given children.
func NewCurveVector(boundary BoundaryType, children ...Curve) *CurveVector {
	return &CurveVector{Boundary: boundary, Children: children}
}

func (*CurveVector) GeometryType() GeometryType { return GeometryTypeCurveVector }
func (*CurveVector) isGeometry()                {}
func (*CurveVector) isCurve()                   {}

// IsClosedPath reports whether the vector is a single loop (Outer or Inner).
func (cv *CurveVector) IsClosedPath() bool {
	return cv.Boundary == BoundaryOuter || cv.Boundary == BoundaryInner
}

// IsOpenPath reports whether the vector is an open chain.
func (cv *CurveVector) IsOpenPath() bool {
	return cv.Boundary == BoundaryOpen
}

// IsRegion reports whether the vector bounds an area.
func (cv *CurveVector) IsRegion() bool {
	switch cv.Boundary {
	case BoundaryOuter, BoundaryInner, BoundaryParityRegion, BoundaryUnionRegion:
		return true
	default:
		return false
	}
}

// Singleton returns the only child when the vector has exactly one.
func (cv *CurveVector) Singleton() (Curve, bool) {
	if len(cv.Children) != 1 {
		return nil, false
	}

	return cv.Children[0], true
}

// IsPhysicallyClosed reports whether a path's first start point coincides
// with its last end point.
func (cv *CurveVector) IsPhysicallyClosed() bool {
	if len(cv.Children) == 0 {
		return false
	}
	first, ok := cv.Children[0].(CurvePrimitive)
	if !ok {
		return false
	}
	last, ok := cv.Children[len(cv.Children)-1].(CurvePrimitive)
	if !ok {
		return false
	}
	start, _, ok := Endpoints(first)
	if !ok {
		return false
	}
	_, end, ok := Endpoints(last)
	if !ok {
		return false
	}

	return start.AlmostEqual(end)
}

// PrimitiveCount returns the number of curve primitives in the tree.
func (cv *CurveVector) PrimitiveCount() int {
	n := 0
	for _, c := range cv.Children {
		if child, ok := c.(*CurveVector); ok {
			n += child.PrimitiveCount()
			continue
		}
		n++
	}

	return n
}

// StartPoint returns the start point of a curve or of the first member of a
// curve vector.
func StartPoint(c Curve) (Point3d, bool) {
	switch cv := c.(type) {
	case *CurveVector:
		if len(cv.Children) == 0 {
			return Point3d{}, false
		}

		return StartPoint(cv.Children[0])
	case *TransitionSpiral:
		return cv.Frame.Origin(), true
	case CurvePrimitive:
		start, _, ok := Endpoints(cv)
		return start, ok
	default:
		return Point3d{}, false
	}
}
