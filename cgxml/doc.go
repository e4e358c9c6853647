// Package cgxml writes geometry trees as Bentley common-geometry structured
// documents.
//
// A Writer walks a geometry tree and emits a sequence of calls on a
// StructuredWriter. Two back ends consume that sequence: XMLWriter produces
// the verbose XML form and TokenWriter produces a compact MessagePack token
// stream in which optional element names are omitted and repeated names are
// interned.
//
// The root element of every document carries the common-geometry namespace.
// Curve primitives that have entries in an ExtendedData registry are wrapped
// in an ExtendedObject element in the ECSerializable namespace.
//
// Writer output is controlled by four policies:
//   - WithTextualizeXYData writes points and vectors as comma-joined text
//     instead of blocked double arrays.
//   - WithCompactCurveVectors writes parity regions as SurfacePatch elements
//     with an exterior loop and a hole list.
//   - WithPreferCGSweeps writes solids that reduce to a named shape (Sphere,
//     CircularCylinder, CircularCone, Block, TorusPipe, swept solids) instead
//     of the generic Dgn element.
//   - WithPreferMostCompactPrimitives writes single-member loops holding a
//     full ellipse or a line string as CircularDisk, EllipticDisk or Polygon.
package cgxml
