package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tolerances used by the geometric predicates.
const (
	// RelTol is the relative tolerance for comparing lengths and coordinates.
	RelTol = 1.0e-12
	// AbsTol is the absolute floor under RelTol.
	AbsTol = 1.0e-14
	// AngleTol is the tolerance for angle comparisons, in radians.
	AngleTol = 1.0e-12
)

// Point2d is a 2D point, used for polyface texture parameters.
type Point2d struct {
	X, Y float64
}

// Point3d is a 3D point.
type Point3d struct {
	X, Y, Z float64
}

// Vector3d is a 3D direction or displacement.
type Vector3d struct {
	X, Y, Z float64
}

// Ray3d is an origin and a direction.
type Ray3d struct {
	Origin    Point3d
	Direction Vector3d
}

// Transform is a 3x4 affine matrix stored row-major:
//
//	[ Qxx Qxy Qxz Tx ]
//	[ Qyx Qyy Qyz Ty ]
//	[ Qzx Qzy Qzz Tz ]
type Transform [12]float64

// IdentityTransform returns the identity transform.
func IdentityTransform() Transform {
	return Transform{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0}
}

// NewTransform builds a transform from an origin and three column vectors.
func NewTransform(origin Point3d, x, y, z Vector3d) Transform {
	return Transform{
		x.X, y.X, z.X, origin.X,
		x.Y, y.Y, z.Y, origin.Y,
		x.Z, y.Z, z.Z, origin.Z,
	}
}

// Origin returns the translation column.
func (t Transform) Origin() Point3d {
	return Point3d{t[3], t[7], t[11]}
}

// Column returns matrix column i (0, 1 or 2).
func (t Transform) Column(i int) Vector3d {
	return Vector3d{t[i], t[4+i], t[8+i]}
}

func (p Point3d) vec() r3.Vec  { return r3.Vec{X: p.X, Y: p.Y, Z: p.Z} }
func (v Vector3d) vec() r3.Vec { return r3.Vec{X: v.X, Y: v.Y, Z: v.Z} }

func pointOf(v r3.Vec) Point3d   { return Point3d{v.X, v.Y, v.Z} }
func vectorOf(v r3.Vec) Vector3d { return Vector3d{v.X, v.Y, v.Z} }

// Sub returns the vector from q to p.
func (p Point3d) Sub(q Point3d) Vector3d {
	return vectorOf(r3.Sub(p.vec(), q.vec()))
}

// Add returns p displaced by v.
func (p Point3d) Add(v Vector3d) Point3d {
	return pointOf(r3.Add(p.vec(), v.vec()))
}

// AlmostEqual compares two points with RelTol.
func (p Point3d) AlmostEqual(q Point3d) bool {
	scale := math.Max(r3.Norm(p.vec()), r3.Norm(q.vec()))
	return r3.Norm(r3.Sub(p.vec(), q.vec())) <= AbsTol+RelTol*scale
}

// Length returns the Euclidean norm of v.
func (v Vector3d) Length() float64 {
	return r3.Norm(v.vec())
}

// Dot returns the dot product v·w.
func (v Vector3d) Dot(w Vector3d) float64 {
	return r3.Dot(v.vec(), w.vec())
}

// Cross returns the cross product v×w.
func (v Vector3d) Cross(w Vector3d) Vector3d {
	return vectorOf(r3.Cross(v.vec(), w.vec()))
}

// Add returns v + w.
func (v Vector3d) Add(w Vector3d) Vector3d {
	return vectorOf(r3.Add(v.vec(), w.vec()))
}

// Sub returns v - w.
func (v Vector3d) Sub(w Vector3d) Vector3d {
	return vectorOf(r3.Sub(v.vec(), w.vec()))
}

// Scale returns v scaled by f.
func (v Vector3d) Scale(f float64) Vector3d {
	return vectorOf(r3.Scale(f, v.vec()))
}

// Normalize returns the unit vector along v and the original length.
// A zero vector is returned unchanged with length 0.
func (v Vector3d) Normalize() (Vector3d, float64) {
	n := v.Length()
	if n == 0 {
		return v, 0
	}

	return vectorOf(r3.Unit(v.vec())), n
}

// IsPerpendicular reports whether v and w are perpendicular within RelTol.
func (v Vector3d) IsPerpendicular(w Vector3d) bool {
	a, b := v.Length(), w.Length()
	if a == 0 || b == 0 {
		return false
	}

	return math.Abs(v.Dot(w)) <= RelTol*a*b
}

// IsParallel reports whether v and w are parallel (or antiparallel) within RelTol.
func (v Vector3d) IsParallel(w Vector3d) bool {
	a, b := v.Length(), w.Length()
	if a == 0 || b == 0 {
		return false
	}

	return v.Cross(w).Length() <= RelTol*a*b
}

// Magnitude returns the Euclidean norm of the 2D point.
func (p Point2d) Magnitude() float64 {
	return math.Hypot(p.X, p.Y)
}

// almostEqual compares two scalars with the package tolerances.
func almostEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, AbsTol, RelTol)
}
