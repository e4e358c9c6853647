// Package geometry defines the variant geometry model exchanged by the
// binary and structured codecs.
//
// The model is a closed tagged union. Every value implements Geometry and is
// exactly one of:
//
//   - a curve primitive (LineSegment, EllipticArc, LineString, PointString,
//     BsplineCurve, InterpolationCurve, AkimaCurve, TransitionSpiral,
//     CatenaryCurve, PartialCurve)
//   - a CurveVector, an ordered boundary-typed collection of curves
//   - a solid primitive (DgnBox, DgnCone, DgnSphere, DgnTorusPipe,
//     DgnExtrusion, DgnRotationalSweep, DgnRuledSweep)
//   - a BsplineSurface
//   - a Polyface (indexed mesh)
//   - a GeometryList of any of the above
//
// Values form a pure tree: each node owns its children, including the parent
// curve of a PartialCurve. Codecs never mutate a tree they are given.
//
// Consumers dispatch with type switches over the concrete pointer types; the
// marker methods keep the set of implementations closed to this package.
package geometry
