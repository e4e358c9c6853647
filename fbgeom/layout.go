package fbgeom

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
)

// Struct layouts shared by the encoder and the decoder. Each pair flattens a
// fixed-size detail into the doubles of its FlatBuffer struct and back.

func point3(v []float64) geometry.Point3d   { return geometry.Point3d{X: v[0], Y: v[1], Z: v[2]} }
func vector3(v []float64) geometry.Vector3d { return geometry.Vector3d{X: v[0], Y: v[1], Z: v[2]} }

func appendPoint(dst []float64, p geometry.Point3d) []float64   { return append(dst, p.X, p.Y, p.Z) }
func appendVector(dst []float64, v geometry.Vector3d) []float64 { return append(dst, v.X, v.Y, v.Z) }

func segmentDoubles(l *geometry.LineSegment) []float64 {
	out := make([]float64, 0, format.SegmentStride)
	out = appendPoint(out, l.Start)

	return appendPoint(out, l.End)
}

func segmentFrom(v []float64, l *geometry.LineSegment) {
	l.Start = point3(v[0:3])
	l.End = point3(v[3:6])
}

func ellipseDoubles(a *geometry.EllipticArc) []float64 {
	out := make([]float64, 0, format.EllipseStride)
	out = appendPoint(out, a.Center)
	out = appendVector(out, a.Vector0)
	out = appendVector(out, a.Vector90)

	return append(out, a.Start, a.Sweep)
}

func ellipseFrom(v []float64, a *geometry.EllipticArc) {
	a.Center = point3(v[0:3])
	a.Vector0 = vector3(v[3:6])
	a.Vector90 = vector3(v[6:9])
	a.Start = v[9]
	a.Sweep = v[10]
}

func spiralDoubles(s *geometry.TransitionSpiral) []float64 {
	out := make([]float64, 0, format.TransformStride+7)
	out = append(out, s.Frame[:]...)

	return append(out, s.StartBearing, s.StartCurvature, s.EndBearing, s.EndCurvature,
		s.Length, s.FractionA, s.FractionB)
}

func spiralFrom(v []float64, s *geometry.TransitionSpiral) {
	copy(s.Frame[:], v[:format.TransformStride])
	rest := v[format.TransformStride:]
	s.StartBearing = rest[0]
	s.StartCurvature = rest[1]
	s.EndBearing = rest[2]
	s.EndCurvature = rest[3]
	s.Length = rest[4]
	s.FractionA = rest[5]
	s.FractionB = rest[6]
}

func catenaryDoubles(c *geometry.CatenaryCurve) []float64 {
	out := make([]float64, 0, 12)
	out = append(out, c.A)
	out = appendPoint(out, c.Origin)
	out = appendVector(out, c.VectorU)
	out = appendVector(out, c.VectorV)

	return append(out, c.X0, c.X1)
}

func catenaryFrom(v []float64, c *geometry.CatenaryCurve) {
	c.A = v[0]
	c.Origin = point3(v[1:4])
	c.VectorU = vector3(v[4:7])
	c.VectorV = vector3(v[7:10])
	c.X0 = v[10]
	c.X1 = v[11]
}

func boxDoubles(b *geometry.DgnBox) []float64 {
	out := make([]float64, 0, 16)
	out = appendPoint(out, b.BaseOrigin)
	out = appendPoint(out, b.TopOrigin)
	out = appendVector(out, b.VectorX)
	out = appendVector(out, b.VectorY)

	return append(out, b.BaseX, b.BaseY, b.TopX, b.TopY)
}

func boxFrom(v []float64, b *geometry.DgnBox) {
	b.BaseOrigin = point3(v[0:3])
	b.TopOrigin = point3(v[3:6])
	b.VectorX = vector3(v[6:9])
	b.VectorY = vector3(v[9:12])
	b.BaseX, b.BaseY, b.TopX, b.TopY = v[12], v[13], v[14], v[15]
}

func coneDoubles(c *geometry.DgnCone) []float64 {
	out := make([]float64, 0, 14)
	out = appendPoint(out, c.CenterA)
	out = appendPoint(out, c.CenterB)
	out = appendVector(out, c.Vector0)
	out = appendVector(out, c.Vector90)

	return append(out, c.RadiusA, c.RadiusB)
}

func coneFrom(v []float64, c *geometry.DgnCone) {
	c.CenterA = point3(v[0:3])
	c.CenterB = point3(v[3:6])
	c.Vector0 = vector3(v[6:9])
	c.Vector90 = vector3(v[9:12])
	c.RadiusA, c.RadiusB = v[12], v[13]
}

func sphereDoubles(s *geometry.DgnSphere) []float64 {
	out := make([]float64, 0, format.TransformStride+2)
	out = append(out, s.LocalToWorld[:]...)

	return append(out, s.StartLatitude, s.LatitudeSweep)
}

func sphereFrom(v []float64, s *geometry.DgnSphere) {
	copy(s.LocalToWorld[:], v[:format.TransformStride])
	s.StartLatitude = v[format.TransformStride]
	s.LatitudeSweep = v[format.TransformStride+1]
}

func torusDoubles(t *geometry.DgnTorusPipe) []float64 {
	out := make([]float64, 0, 12)
	out = appendPoint(out, t.Center)
	out = appendVector(out, t.VectorX)
	out = appendVector(out, t.VectorY)

	return append(out, t.MajorRadius, t.MinorRadius, t.SweepAngle)
}

func torusFrom(v []float64, t *geometry.DgnTorusPipe) {
	t.Center = point3(v[0:3])
	t.VectorX = vector3(v[3:6])
	t.VectorY = vector3(v[6:9])
	t.MajorRadius, t.MinorRadius, t.SweepAngle = v[9], v[10], v[11]
}

func rayDoubles(r geometry.Ray3d) []float64 {
	out := make([]float64, 0, format.RayStride)
	out = appendPoint(out, r.Origin)

	return appendVector(out, r.Direction)
}

func rayFrom(v []float64) geometry.Ray3d {
	return geometry.Ray3d{Origin: point3(v[0:3]), Direction: vector3(v[3:6])}
}

func vectorDoubles(v geometry.Vector3d) []float64 {
	return []float64{v.X, v.Y, v.Z}
}

// tupleVector writes items as one flat [double] vector of stride doubles per
// item, without an intermediate slice. Nothing is written for an empty input.
func tupleVector[T any](b *flatbuffers.Builder, items []T, stride int, fill func(T, []float64)) flatbuffers.UOffsetT {
	if len(items) == 0 {
		return 0
	}

	var scratch [format.FaceDataStride]float64
	tuple := scratch[:stride]
	n := len(items) * stride
	b.StartVector(flatbuffers.SizeFloat64, n, flatbuffers.SizeFloat64)
	for i := len(items) - 1; i >= 0; i-- {
		fill(items[i], tuple)
		for j := stride - 1; j >= 0; j-- {
			b.PrependFloat64(tuple[j])
		}
	}

	return b.EndVector(n)
}

// inflate groups a flat vector into stride-sized tuples.
func inflate[T any](what string, vals []float64, stride int, build func([]float64) T) ([]T, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	if len(vals)%stride != 0 {
		return nil, fmt.Errorf("%w: %s has %d doubles, not a multiple of %d",
			errs.ErrInvalidStride, what, len(vals), stride)
	}

	out := make([]T, len(vals)/stride)
	for i := range out {
		out[i] = build(vals[i*stride : (i+1)*stride])
	}

	return out, nil
}

func fillPoint(p geometry.Point3d, dst []float64) {
	dst[0], dst[1], dst[2] = p.X, p.Y, p.Z
}

func fillVector(v geometry.Vector3d, dst []float64) {
	dst[0], dst[1], dst[2] = v.X, v.Y, v.Z
}

func fillPoint2(p geometry.Point2d, dst []float64) {
	dst[0], dst[1] = p.X, p.Y
}

func fillFaceData(f geometry.FaceData, dst []float64) {
	fillPoint2(f.ParamDistanceLow, dst[0:2])
	fillPoint2(f.ParamDistanceHigh, dst[2:4])
	fillPoint2(f.ParamLow, dst[4:6])
	fillPoint2(f.ParamHigh, dst[6:8])
}

func point2(v []float64) geometry.Point2d { return geometry.Point2d{X: v[0], Y: v[1]} }

func faceData(v []float64) geometry.FaceData {
	return geometry.FaceData{
		ParamDistanceLow:  point2(v[0:2]),
		ParamDistanceHigh: point2(v[2:4]),
		ParamLow:          point2(v[4:6]),
		ParamHigh:         point2(v[6:8]),
	}
}
