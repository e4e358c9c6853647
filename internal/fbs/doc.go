// Package fbs holds the FlatBuffers schema of the binary geometry format:
// field slot numbers for every table, builder helpers, and a bounds-checked
// table reader.
//
// The schema mirrors the following IDL (field order gives the slot number):
//
//	union VariantGeometryUnion { LineSegment, EllipticArc, BsplineCurve,
//	    LineString, PointString, CurveVector, Polyface, BsplineSurface,
//	    DgnBox, DgnSphere, DgnCone, DgnTorusPipe, DgnExtrusion,
//	    DgnRotationalSweep, DgnRuledSweep, VectorOfVariantGeometry,
//	    InterpolationCurve, AkimaCurve, TransitionSpiral, CatenaryCurve,
//	    PartialCurve }
//
//	table VariantGeometry { geometry: VariantGeometryUnion; tag: CurvePrimitiveId; }
//	table CurvePrimitiveId { type: ushort; geomIndex: ushort; partIndex: ushort; bytes: [ubyte]; }
//	table LineSegment { segment: DSegment3d; }
//	table EllipticArc { arc: DEllipse3d; }
//	table LineString { points: [double]; }
//	table PointString { points: [double]; }
//	table BsplineCurve { order: int; closed: bool; poles: [double]; weights: [double]; knots: [double]; }
//	table InterpolationCurve { order: int; periodic: bool; isChordLenKnots: int;
//	    isColinearTangents: int; isChordLenTangents: int; isNaturalTangents: int;
//	    startTangent: DVec3d; endTangent: DVec3d; fitPoints: [double]; knots: [double]; }
//	table AkimaCurve { points: [double]; }
//	table TransitionSpiral { detail: TransitionSpiralDetail; spiralType: int; }
//	table CatenaryCurve { detail: CatenaryDetail; }
//	table PartialCurve { targetCurve: VariantGeometry; fractionA: double; fractionB: double; }
//	table CurveVector { type: int; curves: [VariantGeometry]; }
//	table VectorOfVariantGeometry { members: [VariantGeometry]; }
//	table Polyface { meshStyle: int; twoSided: bool; numPerFace: int; numPerRow: int;
//	    expectedClosure: int; point: [double]; param: [double]; normal: [double];
//	    intColor: [int]; pointIndex: [int]; paramIndex: [int]; normalIndex: [int];
//	    colorIndex: [int]; faceIndex: [int]; faceData: [double]; auxData: PolyfaceAuxData; }
//	table PolyfaceAuxData { indices: [int]; channels: [PolyfaceAuxChannel]; }
//	table PolyfaceAuxChannel { dataType: int; name: string; inputName: string; data: [PolyfaceAuxChannelData]; }
//	table PolyfaceAuxChannelData { input: double; values: [double]; }
//	table BsplineSurface { orderU: int; orderV: int; numPolesU: int; numPolesV: int;
//	    numRulesU: int; numRulesV: int; closedU: bool; closedV: bool; holeOrigin: bool;
//	    poles: [double]; weights: [double]; knotsU: [double]; knotsV: [double];
//	    boundary: CurveVector; }
//	table DgnBox { detail: DgnBoxDetail; capped: bool; }
//	table DgnCone { detail: DgnConeDetail; capped: bool; }
//	table DgnSphere { detail: DgnSphereDetail; capped: bool; }
//	table DgnTorusPipe { detail: DgnTorusPipeDetail; capped: bool; }
//	table DgnExtrusion { baseCurve: CurveVector; extrusionVector: DVec3d; capped: bool; }
//	table DgnRotationalSweep { baseCurve: CurveVector; axis: DRay3d; sweepAngle: double;
//	    numVRules: int; capped: bool; }
//	table DgnRuledSweep { curves: [CurveVector]; capped: bool; }
//
// All structs consist of doubles only; their sizes are the *Doubles
// constants below.
package fbs
