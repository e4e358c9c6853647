package geometry

import "bytes"

// GeometryType classifies the top-level payload of a Geometry value.
type GeometryType uint8

const (
	GeometryTypeCurvePrimitive GeometryType = iota + 1
	GeometryTypeCurveVector
	GeometryTypeSolidPrimitive
	GeometryTypeBsplineSurface
	GeometryTypePolyface
	GeometryTypeGeometryList
)

func (t GeometryType) String() string {
	switch t {
	case GeometryTypeCurvePrimitive:
		return "CurvePrimitive"
	case GeometryTypeCurveVector:
		return "CurveVector"
	case GeometryTypeSolidPrimitive:
		return "SolidPrimitive"
	case GeometryTypeBsplineSurface:
		return "BsplineSurface"
	case GeometryTypePolyface:
		return "Polyface"
	case GeometryTypeGeometryList:
		return "GeometryList"
	default:
		return "Unknown"
	}
}

// Geometry is any value of the variant geometry model.
type Geometry interface {
	GeometryType() GeometryType
	isGeometry()
}

// Curve is a member of a CurveVector: a curve primitive or a nested CurveVector.
type Curve interface {
	Geometry
	isCurve()
}

// CurvePrimitiveType identifies the concrete kind of a curve primitive.
type CurvePrimitiveType uint8

const (
	CurvePrimitiveLine CurvePrimitiveType = iota + 1
	CurvePrimitiveArc
	CurvePrimitiveLineString
	CurvePrimitivePointString
	CurvePrimitiveBsplineCurve
	CurvePrimitiveInterpolationCurve
	CurvePrimitiveAkimaCurve
	CurvePrimitiveSpiral
	CurvePrimitiveCatenary
	CurvePrimitivePartialCurve
)

// CurvePrimitive is a single parametric curve.
type CurvePrimitive interface {
	Curve
	CurvePrimitiveType() CurvePrimitiveType
	// PrimitiveID returns the attached tag, or nil.
	PrimitiveID() *CurvePrimitiveID
	SetPrimitiveID(id *CurvePrimitiveID)
}

// CurvePrimitiveID is an opaque tag attached to a curve primitive by the
// geometry stream that produced it. Codecs carry it through unchanged.
type CurvePrimitiveID struct {
	Type      uint16
	GeomIndex uint16
	PartIndex uint16
	Bytes     []byte
}

// Equal reports whether two tags are identical, byte payload included.
func (id *CurvePrimitiveID) Equal(other *CurvePrimitiveID) bool {
	if id == nil || other == nil {
		return id == other
	}

	return id.Type == other.Type && id.GeomIndex == other.GeomIndex &&
		id.PartIndex == other.PartIndex && bytes.Equal(id.Bytes, other.Bytes)
}

// PrimitiveTag is embedded by every curve primitive to hold its optional tag.
type PrimitiveTag struct {
	ID *CurvePrimitiveID
}

// PrimitiveID returns the attached tag, or nil.
func (t *PrimitiveTag) PrimitiveID() *CurvePrimitiveID { return t.ID }

// SetPrimitiveID attaches id, replacing any previous tag.
func (t *PrimitiveTag) SetPrimitiveID(id *CurvePrimitiveID) { t.ID = id }

// GeometryList is a heterogeneous ordered sequence of geometries.
type GeometryList []Geometry

func (GeometryList) GeometryType() GeometryType { return GeometryTypeGeometryList }
func (GeometryList) isGeometry()                {}
