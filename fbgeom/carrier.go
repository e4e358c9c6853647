package fbgeom

import (
	"fmt"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/geomcodec/endian"
	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
)

// DoubleView is a read-only view of a [double] vector inside a BGFB buffer.
type DoubleView struct {
	raw []byte
	n   int
}

// Len returns the number of doubles in the view.
func (v DoubleView) Len() int { return v.n }

// At returns element i. It panics if i is out of range.
func (v DoubleView) At(i int) float64 {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("fbgeom: double view index %d out of range [0,%d)", i, v.n))
	}

	return flatbuffers.GetFloat64(v.raw[i*format.Float64Size:])
}

// Float64s returns the elements as a slice. On little-endian hosts with an
// aligned buffer the slice aliases the buffer and must not be modified;
// otherwise it is a fresh copy.
func (v DoubleView) Float64s() []float64 {
	if s, ok := endian.Alias[float64](v.raw, v.n); ok {
		return s
	}
	out := make([]float64, v.n)
	for i := range out {
		out[i] = v.At(i)
	}

	return out
}

// Int32View is a read-only view of an [int] vector inside a BGFB buffer.
type Int32View struct {
	raw []byte
	n   int
}

// Len returns the number of ints in the view.
func (v Int32View) Len() int { return v.n }

// At returns element i. It panics if i is out of range.
func (v Int32View) At(i int) int32 {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("fbgeom: int32 view index %d out of range [0,%d)", i, v.n))
	}

	return flatbuffers.GetInt32(v.raw[i*format.Int32Size:])
}

// Int32s returns the elements as a slice, aliasing the buffer when possible.
// See DoubleView.Float64s.
func (v Int32View) Int32s() []int32 {
	if s, ok := endian.Alias[int32](v.raw, v.n); ok {
		return s
	}
	out := make([]int32, v.n)
	for i := range out {
		out[i] = v.At(i)
	}

	return out
}

// PolyfaceCarrier exposes a serialized polyface without copying its arrays.
//
// Every view borrows the buffer passed to DecodePolyfaceCarrier. The caller
// must keep that buffer alive and unmodified for as long as the carrier or
// any slice obtained from it is in use.
type PolyfaceCarrier struct {
	MeshStyle       int
	NumPerFace      int
	NumPerRow       int
	TwoSided        bool
	ExpectedClosure int

	Points    DoubleView // format.Point3dStride doubles per point
	Params    DoubleView // format.Point2dStride doubles per param
	Normals   DoubleView // format.Vector3dStride doubles per normal
	FaceData  DoubleView // format.FaceDataStride doubles per face
	IntColors Int32View

	PointIndex  Int32View
	ParamIndex  Int32View
	NormalIndex Int32View
	ColorIndex  Int32View
	FaceIndex   Int32View
}

// PointCount returns the number of points.
func (c *PolyfaceCarrier) PointCount() int {
	return c.Points.Len() / format.Point3dStride
}

// Point returns point i.
func (c *PolyfaceCarrier) Point(i int) geometry.Point3d {
	base := i * format.Point3dStride

	return geometry.Point3d{X: c.Points.At(base), Y: c.Points.At(base + 1), Z: c.Points.At(base + 2)}
}

// NormalCount returns the number of normals.
func (c *PolyfaceCarrier) NormalCount() int {
	return c.Normals.Len() / format.Vector3dStride
}

// Normal returns normal i.
func (c *PolyfaceCarrier) Normal(i int) geometry.Vector3d {
	base := i * format.Vector3dStride

	return geometry.Vector3d{X: c.Normals.At(base), Y: c.Normals.At(base + 1), Z: c.Normals.At(base + 2)}
}

// ParamCount returns the number of params.
func (c *PolyfaceCarrier) ParamCount() int {
	return c.Params.Len() / format.Point2dStride
}

// Param returns param i.
func (c *PolyfaceCarrier) Param(i int) geometry.Point2d {
	base := i * format.Point2dStride

	return geometry.Point2d{X: c.Params.At(base), Y: c.Params.At(base + 1)}
}

// DecodePolyfaceCarrier opens a buffer whose root is a polyface and returns
// views into it.
//
// Returns errs.ErrIndexCountMismatch when a populated param, normal, color or
// face index array differs in length from the point index array, and
// errs.ErrInvalidStride when a tuple array is not a whole number of tuples.
func (d *Decoder) DecodePolyfaceCarrier(data []byte) (c *PolyfaceCarrier, err error) {
	fb, err := payload(data)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			c = nil
			err = fmt.Errorf("%w: %v", errs.ErrCorruptBuffer, r)
		}
	}()

	root, err := fbs.Root(fb)
	if err != nil {
		return nil, err
	}
	raw, err := root.Byte(fbs.VariantGeometryGeometryType)
	if err != nil {
		return nil, err
	}
	if tag := format.GeometryTag(raw); tag != format.TagPolyface {
		return nil, fmt.Errorf("%w: want polyface, got %s", errs.ErrUnexpectedGeometry, tag)
	}
	t, ok, err := root.Child(fbs.VariantGeometryGeometry)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: polyface node without payload", errs.ErrCorruptBuffer)
	}

	return newCarrier(t)
}

func newCarrier(t fbs.Table) (*PolyfaceCarrier, error) {
	c := &PolyfaceCarrier{}

	ints := []struct {
		slot int
		dst  *int
	}{
		{fbs.PolyfaceMeshStyle, &c.MeshStyle},
		{fbs.PolyfaceNumPerFace, &c.NumPerFace},
		{fbs.PolyfaceNumPerRow, &c.NumPerRow},
		{fbs.PolyfaceExpectedClosure, &c.ExpectedClosure},
	}
	for _, f := range ints {
		if err := int32Field(t, f.slot, f.dst); err != nil {
			return nil, err
		}
	}
	if err := boolField(t, fbs.PolyfaceTwoSided, &c.TwoSided); err != nil {
		return nil, err
	}

	doubles := []struct {
		slot   int
		stride int
		what   string
		dst    *DoubleView
	}{
		{fbs.PolyfacePoint, format.Point3dStride, "points", &c.Points},
		{fbs.PolyfaceParam, format.Point2dStride, "params", &c.Params},
		{fbs.PolyfaceNormal, format.Vector3dStride, "normals", &c.Normals},
		{fbs.PolyfaceFaceData, format.FaceDataStride, "face data", &c.FaceData},
	}
	for _, f := range doubles {
		raw, n, err := vectorBytes(t, f.slot, format.Float64Size)
		if err != nil {
			return nil, err
		}
		if n%f.stride != 0 {
			return nil, fmt.Errorf("%w: %s has %d doubles, not a multiple of %d",
				errs.ErrInvalidStride, f.what, n, f.stride)
		}
		*f.dst = DoubleView{raw: raw, n: n}
	}

	ints32 := []struct {
		slot int
		dst  *Int32View
	}{
		{fbs.PolyfaceIntColor, &c.IntColors},
		{fbs.PolyfacePointIndex, &c.PointIndex},
		{fbs.PolyfaceParamIndex, &c.ParamIndex},
		{fbs.PolyfaceNormalIndex, &c.NormalIndex},
		{fbs.PolyfaceColorIndex, &c.ColorIndex},
		{fbs.PolyfaceFaceIndex, &c.FaceIndex},
	}
	for _, f := range ints32 {
		raw, n, err := vectorBytes(t, f.slot, format.Int32Size)
		if err != nil {
			return nil, err
		}
		*f.dst = Int32View{raw: raw, n: n}
	}

	if err := c.validateIndices(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *PolyfaceCarrier) validateIndices() error {
	n := c.PointIndex.Len()
	checks := []struct {
		name string
		view Int32View
	}{
		{"param index", c.ParamIndex},
		{"normal index", c.NormalIndex},
		{"color index", c.ColorIndex},
		{"face index", c.FaceIndex},
	}
	for _, chk := range checks {
		if chk.view.Len() != 0 && chk.view.Len() != n {
			return fmt.Errorf("%w: %s has %d entries, point index has %d",
				errs.ErrIndexCountMismatch, chk.name, chk.view.Len(), n)
		}
	}

	return nil
}

// vectorBytes returns the raw bytes and element count of the vector in slot.
func vectorBytes(t fbs.Table, slot int, elemSize int) ([]byte, int, error) {
	v, err := t.Vector(slot, elemSize)
	if err != nil || v.Len == 0 {
		return nil, 0, err
	}
	start := int(v.Start)

	return t.Buffer()[start : start+v.Len*elemSize], v.Len, nil
}

// Polyface copies the carrier into an owned geometry.Polyface. Auxiliary
// channel data is not part of the carrier and is left nil.
func (c *PolyfaceCarrier) Polyface() *geometry.Polyface {
	p := &geometry.Polyface{
		MeshStyle:       c.MeshStyle,
		NumPerFace:      c.NumPerFace,
		NumPerRow:       c.NumPerRow,
		TwoSided:        c.TwoSided,
		ExpectedClosure: c.ExpectedClosure,
	}

	p.Points, _ = inflate("points", c.Points.Float64s(), format.Point3dStride, point3)
	p.Params, _ = inflate("params", c.Params.Float64s(), format.Point2dStride, point2)
	p.Normals, _ = inflate("normals", c.Normals.Float64s(), format.Vector3dStride, vector3)
	p.FaceData, _ = inflate("face data", c.FaceData.Float64s(), format.FaceDataStride, faceData)
	p.IntColors = copyInts(c.IntColors)
	p.PointIndex = copyInts(c.PointIndex)
	p.ParamIndex = copyInts(c.ParamIndex)
	p.NormalIndex = copyInts(c.NormalIndex)
	p.ColorIndex = copyInts(c.ColorIndex)
	p.FaceIndex = copyInts(c.FaceIndex)

	return p
}

func copyInts(v Int32View) []int32 {
	if v.Len() == 0 {
		return nil
	}

	return append([]int32(nil), v.Int32s()...)
}
