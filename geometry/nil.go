package geometry

// IsNil reports whether v is nil or a typed nil pointer.
func IsNil(v Geometry) bool {
	switch g := v.(type) {
	case nil:
		return true
	case *LineSegment:
		return g == nil
	case *EllipticArc:
		return g == nil
	case *LineString:
		return g == nil
	case *PointString:
		return g == nil
	case *AkimaCurve:
		return g == nil
	case *BsplineCurve:
		return g == nil
	case *InterpolationCurve:
		return g == nil
	case *TransitionSpiral:
		return g == nil
	case *CatenaryCurve:
		return g == nil
	case *PartialCurve:
		return g == nil
	case *CurveVector:
		return g == nil
	case *DgnBox:
		return g == nil
	case *DgnCone:
		return g == nil
	case *DgnSphere:
		return g == nil
	case *DgnTorusPipe:
		return g == nil
	case *DgnExtrusion:
		return g == nil
	case *DgnRotationalSweep:
		return g == nil
	case *DgnRuledSweep:
		return g == nil
	case *BsplineSurface:
		return g == nil
	case *Polyface:
		return g == nil
	default:
		return false
	}
}
