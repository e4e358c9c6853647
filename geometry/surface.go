package geometry

// BsplineSurface is a tensor-product B-spline surface, optionally trimmed by
// a boundary curve vector. Poles are stored U-fastest; Weights is nil for
// non-rational surfaces.
type BsplineSurface struct {
	OrderU     int
	OrderV     int
	NumPolesU  int
	NumPolesV  int
	NumRulesU  int
	NumRulesV  int
	ClosedU    bool
	ClosedV    bool
	HoleOrigin bool
	Poles      []Point3d
	Weights    []float64
	KnotsU     []float64
	KnotsV     []float64
	Boundary   *CurveVector
}

func (*BsplineSurface) GeometryType() GeometryType { return GeometryTypeBsplineSurface }
func (*BsplineSurface) isGeometry()                {}

// IsRational reports whether the surface carries weights.
func (s *BsplineSurface) IsRational() bool {
	return len(s.Weights) > 0
}
