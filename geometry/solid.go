package geometry

// SolidPrimitiveType identifies the concrete kind of a solid primitive.
type SolidPrimitiveType uint8

const (
	SolidBox SolidPrimitiveType = iota + 1
	SolidCone
	SolidSphere
	SolidTorusPipe
	SolidExtrusion
	SolidRotationalSweep
	SolidRuledSweep
)

// SolidPrimitive is one of the Dgn* solid primitive kinds.
type SolidPrimitive interface {
	Geometry
	SolidPrimitiveType() SolidPrimitiveType
	// IsCapped reports whether the solid is closed by end caps.
	IsCapped() bool
}

// DgnBox is a box whose base and top rectangles share the X/Y directions.
type DgnBox struct {
	BaseOrigin Point3d
	TopOrigin  Point3d
	VectorX    Vector3d
	VectorY    Vector3d
	BaseX      float64
	BaseY      float64
	TopX       float64
	TopY       float64
	Capped     bool
}

// DgnCone is a (possibly skewed, possibly elliptic) cone between two circles.
type DgnCone struct {
	CenterA  Point3d
	CenterB  Point3d
	Vector0  Vector3d
	Vector90 Vector3d
	RadiusA  float64
	RadiusB  float64
	Capped   bool
}

// DgnSphere is the image of the unit sphere under LocalToWorld, restricted to
// a latitude band.
type DgnSphere struct {
	LocalToWorld  Transform
	StartLatitude float64
	LatitudeSweep float64
	Capped        bool
}

// DgnTorusPipe is a circular pipe swept around a center.
type DgnTorusPipe struct {
	Center      Point3d
	VectorX     Vector3d
	VectorY     Vector3d
	MajorRadius float64
	MinorRadius float64
	SweepAngle  float64
	Capped      bool
}

// DgnExtrusion is a curve vector translated along ExtrusionVector.
type DgnExtrusion struct {
	BaseCurve       *CurveVector
	ExtrusionVector Vector3d
	Capped          bool
}

// DgnRotationalSweep is a curve vector rotated about Axis.
type DgnRotationalSweep struct {
	BaseCurve  *CurveVector
	Axis       Ray3d
	SweepAngle float64
	NumVRules  int
	Capped     bool
}

// DgnRuledSweep connects successive section curve vectors with ruled surfaces.
type DgnRuledSweep struct {
	Sections []*CurveVector
	Capped   bool
}

func (*DgnBox) GeometryType() GeometryType             { return GeometryTypeSolidPrimitive }
func (*DgnCone) GeometryType() GeometryType            { return GeometryTypeSolidPrimitive }
func (*DgnSphere) GeometryType() GeometryType          { return GeometryTypeSolidPrimitive }
func (*DgnTorusPipe) GeometryType() GeometryType       { return GeometryTypeSolidPrimitive }
func (*DgnExtrusion) GeometryType() GeometryType       { return GeometryTypeSolidPrimitive }
func (*DgnRotationalSweep) GeometryType() GeometryType { return GeometryTypeSolidPrimitive }
func (*DgnRuledSweep) GeometryType() GeometryType      { return GeometryTypeSolidPrimitive }

func (*DgnBox) SolidPrimitiveType() SolidPrimitiveType             { return SolidBox }
func (*DgnCone) SolidPrimitiveType() SolidPrimitiveType            { return SolidCone }
func (*DgnSphere) SolidPrimitiveType() SolidPrimitiveType          { return SolidSphere }
func (*DgnTorusPipe) SolidPrimitiveType() SolidPrimitiveType       { return SolidTorusPipe }
func (*DgnExtrusion) SolidPrimitiveType() SolidPrimitiveType       { return SolidExtrusion }
func (*DgnRotationalSweep) SolidPrimitiveType() SolidPrimitiveType { return SolidRotationalSweep }
func (*DgnRuledSweep) SolidPrimitiveType() SolidPrimitiveType      { return SolidRuledSweep }

func (s *DgnBox) IsCapped() bool             { return s.Capped }
func (s *DgnCone) IsCapped() bool            { return s.Capped }
func (s *DgnSphere) IsCapped() bool          { return s.Capped }
func (s *DgnTorusPipe) IsCapped() bool       { return s.Capped }
func (s *DgnExtrusion) IsCapped() bool       { return s.Capped }
func (s *DgnRotationalSweep) IsCapped() bool { return s.Capped }
func (s *DgnRuledSweep) IsCapped() bool      { return s.Capped }

func (*DgnBox) isGeometry()             {}
func (*DgnCone) isGeometry()            {}
func (*DgnSphere) isGeometry()          {}
func (*DgnTorusPipe) isGeometry()       {}
func (*DgnExtrusion) isGeometry()       {}
func (*DgnRotationalSweep) isGeometry() {}
func (*DgnRuledSweep) isGeometry()      {}
