package format

// GeometryTag is the discriminant of the VariantGeometry union in the binary format.
type GeometryTag uint8

// CompressionType selects the codec applied to a pack data section.
type CompressionType uint8

const (
	TagNone                    GeometryTag = 0
	TagLineSegment             GeometryTag = 1
	TagEllipticArc             GeometryTag = 2
	TagBsplineCurve            GeometryTag = 3
	TagLineString              GeometryTag = 4
	TagPointString             GeometryTag = 5
	TagCurveVector             GeometryTag = 6
	TagPolyface                GeometryTag = 7
	TagBsplineSurface          GeometryTag = 8
	TagDgnBox                  GeometryTag = 9
	TagDgnSphere               GeometryTag = 10
	TagDgnCone                 GeometryTag = 11
	TagDgnTorusPipe            GeometryTag = 12
	TagDgnExtrusion            GeometryTag = 13
	TagDgnRotationalSweep      GeometryTag = 14
	TagDgnRuledSweep           GeometryTag = 15
	TagVectorOfVariantGeometry GeometryTag = 16
	TagInterpolationCurve      GeometryTag = 17
	TagAkimaCurve              GeometryTag = 18
	TagTransitionSpiral        GeometryTag = 19
	TagCatenaryCurve           GeometryTag = 20
	TagPartialCurve            GeometryTag = 21

	// TagMax is the largest discriminant this package understands.
	TagMax = TagPartialCurve
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone stores the data section as-is.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

var tagNames = [...]string{
	TagNone:                    "NONE",
	TagLineSegment:             "LineSegment",
	TagEllipticArc:             "EllipticArc",
	TagBsplineCurve:            "BsplineCurve",
	TagLineString:              "LineString",
	TagPointString:             "PointString",
	TagCurveVector:             "CurveVector",
	TagPolyface:                "Polyface",
	TagBsplineSurface:          "BsplineSurface",
	TagDgnBox:                  "DgnBox",
	TagDgnSphere:               "DgnSphere",
	TagDgnCone:                 "DgnCone",
	TagDgnTorusPipe:            "DgnTorusPipe",
	TagDgnExtrusion:            "DgnExtrusion",
	TagDgnRotationalSweep:      "DgnRotationalSweep",
	TagDgnRuledSweep:           "DgnRuledSweep",
	TagVectorOfVariantGeometry: "VectorOfVariantGeometry",
	TagInterpolationCurve:      "InterpolationCurve",
	TagAkimaCurve:              "AkimaCurve",
	TagTransitionSpiral:        "TransitionSpiral",
	TagCatenaryCurve:           "CatenaryCurve",
	TagPartialCurve:            "PartialCurve",
}

func (t GeometryTag) String() string {
	if t <= TagMax {
		return tagNames[t]
	}

	return "Unknown"
}

// Valid reports whether t is a known, non-empty discriminant.
func (t GeometryTag) Valid() bool {
	return t > TagNone && t <= TagMax
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
