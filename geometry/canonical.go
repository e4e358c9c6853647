package geometry

import "math"

// Frame is an origin with a right-handed orthonormal triad.
type Frame struct {
	Origin  Point3d
	VectorX Vector3d
	VectorY Vector3d
	VectorZ Vector3d
}

// BlockShape is a DgnBox recognized as a rectangular block.
type BlockShape struct {
	Frame
	// CornerB is the far corner in local coordinates; the near corner is the origin.
	CornerB Point3d
}

// IsBlock reports whether the box is a right rectangular block: perpendicular
// X/Y directions, equal base and top rectangles, and the top origin directly
// above the base origin.
func (b *DgnBox) IsBlock() (BlockShape, bool) {
	ux, lx := b.VectorX.Normalize()
	uy, ly := b.VectorY.Normalize()
	if lx == 0 || ly == 0 || !ux.IsPerpendicular(uy) {
		return BlockShape{}, false
	}
	if !almostEqual(b.BaseX, b.TopX) || !almostEqual(b.BaseY, b.TopY) {
		return BlockShape{}, false
	}
	uz := ux.Cross(uy)
	rise := b.TopOrigin.Sub(b.BaseOrigin)
	height := rise.Dot(uz)
	if height == 0 || !rise.IsParallel(uz) {
		return BlockShape{}, false
	}

	return BlockShape{
		Frame:   Frame{Origin: b.BaseOrigin, VectorX: ux, VectorY: uy, VectorZ: uz},
		CornerB: Point3d{b.BaseX * lx, b.BaseY * ly, height},
	}, true
}

// ConeShape is a DgnCone recognized as a right circular cone or cylinder.
type ConeShape struct {
	Frame
	Height  float64
	RadiusA float64
	RadiusB float64
}

// IsCylinder reports whether the cone is a right circular cylinder.
func (c *DgnCone) IsCylinder() (ConeShape, bool) {
	shape, ok := c.rightCircular()
	if !ok || !almostEqual(c.RadiusA, c.RadiusB) {
		return ConeShape{}, false
	}

	return shape, true
}

// IsCircularCone reports whether the cone is a right circular cone with
// distinct radii.
func (c *DgnCone) IsCircularCone() (ConeShape, bool) {
	shape, ok := c.rightCircular()
	if !ok || almostEqual(c.RadiusA, c.RadiusB) {
		return ConeShape{}, false
	}

	return shape, true
}

// rightCircular checks for orthonormal section vectors and an axis whose
// height along the section normal equals the axial distance.
func (c *DgnCone) rightCircular() (ConeShape, bool) {
	if !almostEqual(c.Vector0.Length(), 1) || !almostEqual(c.Vector90.Length(), 1) ||
		!c.Vector0.IsPerpendicular(c.Vector90) {
		return ConeShape{}, false
	}
	normal := c.Vector0.Cross(c.Vector90)
	axis := c.CenterB.Sub(c.CenterA)
	distance := axis.Length()
	height := axis.Dot(normal)
	if distance == 0 || !almostEqual(math.Abs(height), distance) {
		return ConeShape{}, false
	}
	vectorZ := normal
	vectorY := c.Vector90
	if height < 0 {
		vectorZ = normal.Scale(-1)
		vectorY = c.Vector90.Scale(-1)
	}

	return ConeShape{
		Frame:   Frame{Origin: c.CenterA, VectorX: c.Vector0, VectorY: vectorY, VectorZ: vectorZ},
		Height:  distance,
		RadiusA: c.RadiusA,
		RadiusB: c.RadiusB,
	}, true
}

// TrueSphere extracts the sphere's frame and reports whether it is a true,
// full sphere: mutually perpendicular axes of equal length and a full
// latitude range.
func (s *DgnSphere) TrueSphere() (Frame, float64, bool) {
	x, y, z := s.LocalToWorld.Column(0), s.LocalToWorld.Column(1), s.LocalToWorld.Column(2)
	ux, r := x.Normalize()
	uy, ry := y.Normalize()
	uz, rz := z.Normalize()
	if r == 0 || !almostEqual(r, ry) || !almostEqual(r, rz) {
		return Frame{}, 0, false
	}
	if !ux.IsPerpendicular(uy) || !uy.IsPerpendicular(uz) || !ux.IsPerpendicular(uz) {
		return Frame{}, 0, false
	}
	if math.Abs(s.StartLatitude+math.Pi/2) > AngleTol || math.Abs(s.LatitudeSweep-math.Pi) > AngleTol {
		return Frame{}, 0, false
	}

	return Frame{Origin: s.LocalToWorld.Origin(), VectorX: ux, VectorY: uy, VectorZ: uz}, r, true
}

// IsCircularFrame reports whether the torus axes are orthonormal.
func (t *DgnTorusPipe) IsCircularFrame() (Frame, bool) {
	if !almostEqual(t.VectorX.Length(), 1) || !almostEqual(t.VectorY.Length(), 1) ||
		!t.VectorX.IsPerpendicular(t.VectorY) {
		return Frame{}, false
	}

	return Frame{Origin: t.Center, VectorX: t.VectorX, VectorY: t.VectorY, VectorZ: t.VectorX.Cross(t.VectorY)}, true
}

// SweptArcRail returns the circular arc traced by the start point of the base
// curve as it rotates about the axis. ok is false when that point lies on the
// axis or the base curve has no start point.
func (s *DgnRotationalSweep) SweptArcRail() (*EllipticArc, bool) {
	if s.BaseCurve == nil {
		return nil, false
	}
	start, ok := StartPoint(s.BaseCurve)
	if !ok {
		return nil, false
	}
	axis, n := s.Axis.Direction.Normalize()
	if n == 0 {
		return nil, false
	}
	offset := start.Sub(s.Axis.Origin)
	along := offset.Dot(axis)
	radial := offset.Sub(axis.Scale(along))
	r := radial.Length()
	if r <= AbsTol+RelTol*offset.Length() {
		return nil, false
	}

	return &EllipticArc{
		Center:   s.Axis.Origin.Add(axis.Scale(along)),
		Vector0:  radial,
		Vector90: axis.Cross(radial),
		Start:    0,
		Sweep:    s.SweepAngle,
	}, true
}
