package fbs

// Slot numbers and field counts of every table. Slot n is stored at vtable
// offset 4+2n.

const (
	VariantGeometryGeometryType = 0
	VariantGeometryGeometry     = 1
	VariantGeometryTag          = 2
	VariantGeometryFields       = 3
)

const (
	CurvePrimitiveIDType      = 0
	CurvePrimitiveIDGeomIndex = 1
	CurvePrimitiveIDPartIndex = 2
	CurvePrimitiveIDBytes     = 3
	CurvePrimitiveIDFields    = 4
)

const (
	LineSegmentSegment = 0
	LineSegmentFields  = 1

	EllipticArcArc    = 0
	EllipticArcFields = 1

	// LineString, PointString and AkimaCurve share this layout.
	PointsPoints = 0
	PointsFields = 1
)

const (
	BsplineCurveOrder   = 0
	BsplineCurveClosed  = 1
	BsplineCurvePoles   = 2
	BsplineCurveWeights = 3
	BsplineCurveKnots   = 4
	BsplineCurveFields  = 5
)

const (
	InterpolationCurveOrder              = 0
	InterpolationCurvePeriodic           = 1
	InterpolationCurveIsChordLenKnots    = 2
	InterpolationCurveIsColinearTangents = 3
	InterpolationCurveIsChordLenTangents = 4
	InterpolationCurveIsNaturalTangents  = 5
	InterpolationCurveStartTangent       = 6
	InterpolationCurveEndTangent         = 7
	InterpolationCurveFitPoints          = 8
	InterpolationCurveKnots              = 9
	InterpolationCurveFields             = 10
)

const (
	TransitionSpiralDetail     = 0
	TransitionSpiralSpiralType = 1
	TransitionSpiralFields     = 2

	CatenaryCurveDetail = 0
	CatenaryCurveFields = 1
)

const (
	PartialCurveTargetCurve = 0
	PartialCurveFractionA   = 1
	PartialCurveFractionB   = 2
	PartialCurveFields      = 3
)

const (
	CurveVectorType   = 0
	CurveVectorCurves = 1
	CurveVectorFields = 2

	VectorOfVariantGeometryMembers = 0
	VectorOfVariantGeometryFields  = 1
)

const (
	PolyfaceMeshStyle       = 0
	PolyfaceTwoSided        = 1
	PolyfaceNumPerFace      = 2
	PolyfaceNumPerRow       = 3
	PolyfaceExpectedClosure = 4
	PolyfacePoint           = 5
	PolyfaceParam           = 6
	PolyfaceNormal          = 7
	PolyfaceIntColor        = 8
	PolyfacePointIndex      = 9
	PolyfaceParamIndex      = 10
	PolyfaceNormalIndex     = 11
	PolyfaceColorIndex      = 12
	PolyfaceFaceIndex       = 13
	PolyfaceFaceData        = 14
	PolyfaceAuxData         = 15
	PolyfaceFields          = 16
)

const (
	PolyfaceAuxDataIndices  = 0
	PolyfaceAuxDataChannels = 1
	PolyfaceAuxDataFields   = 2

	PolyfaceAuxChannelDataType  = 0
	PolyfaceAuxChannelName      = 1
	PolyfaceAuxChannelInputName = 2
	PolyfaceAuxChannelData      = 3
	PolyfaceAuxChannelFields    = 4

	PolyfaceAuxChannelDataInput  = 0
	PolyfaceAuxChannelDataValues = 1
	PolyfaceAuxChannelDataFields = 2
)

const (
	BsplineSurfaceOrderU     = 0
	BsplineSurfaceOrderV     = 1
	BsplineSurfaceNumPolesU  = 2
	BsplineSurfaceNumPolesV  = 3
	BsplineSurfaceNumRulesU  = 4
	BsplineSurfaceNumRulesV  = 5
	BsplineSurfaceClosedU    = 6
	BsplineSurfaceClosedV    = 7
	BsplineSurfaceHoleOrigin = 8
	BsplineSurfacePoles      = 9
	BsplineSurfaceWeights    = 10
	BsplineSurfaceKnotsU     = 11
	BsplineSurfaceKnotsV     = 12
	BsplineSurfaceBoundary   = 13
	BsplineSurfaceFields     = 14
)

const (
	// DgnBox, DgnCone, DgnSphere and DgnTorusPipe share this layout.
	SolidDetail = 0
	SolidCapped = 1
	SolidFields = 2
)

const (
	DgnExtrusionBaseCurve       = 0
	DgnExtrusionExtrusionVector = 1
	DgnExtrusionCapped          = 2
	DgnExtrusionFields          = 3

	DgnRotationalSweepBaseCurve  = 0
	DgnRotationalSweepAxis       = 1
	DgnRotationalSweepSweepAngle = 2
	DgnRotationalSweepNumVRules  = 3
	DgnRotationalSweepCapped     = 4
	DgnRotationalSweepFields     = 5

	DgnRuledSweepCurves = 0
	DgnRuledSweepCapped = 1
	DgnRuledSweepFields = 2
)

// Struct sizes, in doubles.
const (
	DVec3dDoubles                 = 3
	DRay3dDoubles                 = 6
	DSegment3dDoubles             = 6
	DEllipse3dDoubles             = 11
	TransitionSpiralDetailDoubles = 19 // transform(12), startBearing, startCurvature, endBearing, endCurvature, length, fractionA, fractionB
	CatenaryDetailDoubles         = 12 // a, origin(3), vectorU(3), vectorV(3), x0, x1
	DgnBoxDetailDoubles           = 16 // baseOrigin(3), topOrigin(3), vectorX(3), vectorY(3), baseX, baseY, topX, topY
	DgnConeDetailDoubles          = 14 // centerA(3), centerB(3), vector0(3), vector90(3), radiusA, radiusB
	DgnSphereDetailDoubles        = 14 // localToWorld(12), startLatitude, latitudeSweep
	DgnTorusPipeDetailDoubles     = 12 // center(3), vectorX(3), vectorY(3), majorRadius, minorRadius, sweepAngle
)
