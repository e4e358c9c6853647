package fbgeom

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/arloliu/geomcodec/errs"
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
	"github.com/arloliu/geomcodec/internal/options"
)

// Decoder rebuilds geometry trees from BGFB buffers.
//
// Decoded values never alias the input buffer; see DecodePolyfaceCarrier for
// the zero-copy alternative. A Decoder may serve many goroutines.
type Decoder struct {
	*DecoderConfig
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts ...DecoderOption) (*Decoder, error) {
	config := newDecoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Decoder{DecoderConfig: config}, nil
}

// Decode reads any geometry value.
//
// Returns errs.ErrInvalidMagic when data lacks the BGFB prefix,
// errs.ErrUnknownGeometryTag for a discriminant outside the union, and an
// error wrapping errs.ErrCorruptBuffer for structurally invalid input.
func (d *Decoder) Decode(data []byte) (g geometry.Geometry, err error) {
	fb, err := payload(data)
	if err != nil {
		return nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			g = nil
			err = fmt.Errorf("%w: %v", errs.ErrCorruptBuffer, r)
		}
	}()

	root, err := fbs.Root(fb)
	if err != nil {
		return nil, err
	}

	return d.variant(root, 0)
}

// DecodeCurvePrimitive reads a buffer whose root is a curve primitive.
func (d *Decoder) DecodeCurvePrimitive(data []byte) (geometry.CurvePrimitive, error) {
	return decodeAs[geometry.CurvePrimitive](d, data, "curve primitive")
}

// DecodeCurveVector reads a buffer whose root is a curve vector.
func (d *Decoder) DecodeCurveVector(data []byte) (*geometry.CurveVector, error) {
	return decodeAs[*geometry.CurveVector](d, data, "curve vector")
}

// DecodeSolid reads a buffer whose root is a solid primitive.
func (d *Decoder) DecodeSolid(data []byte) (geometry.SolidPrimitive, error) {
	return decodeAs[geometry.SolidPrimitive](d, data, "solid primitive")
}

// DecodeSurface reads a buffer whose root is a B-spline surface.
func (d *Decoder) DecodeSurface(data []byte) (*geometry.BsplineSurface, error) {
	return decodeAs[*geometry.BsplineSurface](d, data, "bspline surface")
}

// DecodePolyface reads a buffer whose root is a polyface.
func (d *Decoder) DecodePolyface(data []byte) (*geometry.Polyface, error) {
	return decodeAs[*geometry.Polyface](d, data, "polyface")
}

// DecodeGeometryList reads a buffer whose root is a geometry list. A buffer
// holding a single geometry of any other kind yields a one-element list.
func (d *Decoder) DecodeGeometryList(data []byte) (geometry.GeometryList, error) {
	g, err := d.Decode(data)
	if err != nil {
		return nil, err
	}
	if list, ok := g.(geometry.GeometryList); ok {
		return list, nil
	}

	return geometry.GeometryList{g}, nil
}

func decodeAs[T geometry.Geometry](d *Decoder, data []byte, want string) (T, error) {
	var zero T

	g, err := d.Decode(data)
	if err != nil {
		return zero, err
	}
	v, ok := g.(T)
	if !ok {
		return zero, fmt.Errorf("%w: want %s, got %s", errs.ErrUnexpectedGeometry, want, g.GeometryType())
	}

	return v, nil
}

// variant reads a VariantGeometry table.
func (d *Decoder) variant(t fbs.Table, depth int) (geometry.Geometry, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: limit %d", errs.ErrMaxDepthExceeded, d.maxDepth)
	}

	raw, err := t.Byte(fbs.VariantGeometryGeometryType)
	if err != nil {
		return nil, err
	}
	tag := format.GeometryTag(raw)
	if !tag.Valid() || tag == format.TagNone {
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownGeometryTag, raw)
	}

	body, ok, err := t.Child(fbs.VariantGeometryGeometry)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s node without payload", errs.ErrCorruptBuffer, tag)
	}

	g, err := d.payload(tag, body, depth)
	if err != nil {
		return nil, err
	}

	if cp, ok := g.(geometry.CurvePrimitive); ok {
		id, err := d.primitiveID(t)
		if err != nil {
			return nil, err
		}
		cp.SetPrimitiveID(id)
	}

	return g, nil
}

func (d *Decoder) payload(tag format.GeometryTag, t fbs.Table, depth int) (geometry.Geometry, error) {
	switch tag {
	case format.TagLineSegment:
		return d.lineSegment(t)
	case format.TagEllipticArc:
		return d.ellipticArc(t)
	case format.TagLineString:
		pts, err := d.points(t)
		if err != nil {
			return nil, err
		}
		return &geometry.LineString{Points: pts}, nil
	case format.TagPointString:
		pts, err := d.points(t)
		if err != nil {
			return nil, err
		}
		return &geometry.PointString{Points: pts}, nil
	case format.TagAkimaCurve:
		pts, err := d.points(t)
		if err != nil {
			return nil, err
		}
		return &geometry.AkimaCurve{Points: pts}, nil
	case format.TagBsplineCurve:
		return d.bsplineCurve(t)
	case format.TagInterpolationCurve:
		return d.interpolationCurve(t)
	case format.TagTransitionSpiral:
		return d.transitionSpiral(t)
	case format.TagCatenaryCurve:
		return d.catenary(t)
	case format.TagPartialCurve:
		return d.partialCurve(t, depth)
	case format.TagCurveVector:
		return d.curveVector(t, depth)
	case format.TagDgnBox:
		return d.dgnBox(t)
	case format.TagDgnCone:
		return d.dgnCone(t)
	case format.TagDgnSphere:
		return d.dgnSphere(t)
	case format.TagDgnTorusPipe:
		return d.dgnTorusPipe(t)
	case format.TagDgnExtrusion:
		return d.dgnExtrusion(t, depth)
	case format.TagDgnRotationalSweep:
		return d.dgnRotationalSweep(t, depth)
	case format.TagDgnRuledSweep:
		return d.dgnRuledSweep(t, depth)
	case format.TagBsplineSurface:
		return d.bsplineSurface(t, depth)
	case format.TagPolyface:
		return d.polyface(t)
	case format.TagVectorOfVariantGeometry:
		return d.geometryList(t, depth)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownGeometryTag, uint8(tag))
	}
}

func (d *Decoder) primitiveID(t fbs.Table) (*geometry.CurvePrimitiveID, error) {
	tt, ok, err := t.Child(fbs.VariantGeometryTag)
	if err != nil || !ok {
		return nil, err
	}

	id := &geometry.CurvePrimitiveID{}
	if id.Type, err = tt.Uint16(fbs.CurvePrimitiveIDType); err != nil {
		return nil, err
	}
	if id.GeomIndex, err = tt.Uint16(fbs.CurvePrimitiveIDGeomIndex); err != nil {
		return nil, err
	}
	if id.PartIndex, err = tt.Uint16(fbs.CurvePrimitiveIDPartIndex); err != nil {
		return nil, err
	}
	raw, err := tt.Bytes(fbs.CurvePrimitiveIDBytes)
	if err != nil {
		return nil, err
	}
	if len(raw) > 0 {
		id.Bytes = append([]byte(nil), raw...)
	}

	return id, nil
}

// each opens every table in the vector at slot and passes it to fn.
func each(t fbs.Table, slot int, fn func(int, fbs.Table) error) error {
	v, err := t.Tables(slot)
	if err != nil {
		return err
	}
	for i := range v.Len {
		child, err := t.TableAt(v, i)
		if err != nil {
			return err
		}
		if err := fn(i, child); err != nil {
			return err
		}
	}

	return nil
}

// member decodes element i of a parent's member vector. ok is false when
// the member carries an unknown discriminant and was skipped.
func (d *Decoder) member(parent string, i int, m fbs.Table, depth int) (g geometry.Geometry, ok bool, err error) {
	g, err = d.variant(m, depth)
	if errors.Is(err, errs.ErrUnknownGeometryTag) {
		d.log.WithFields(logrus.Fields{
			"parent": parent,
			"index":  i,
		}).WithError(err).Warn("fbgeom: skipping member with unknown geometry tag")

		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return g, true, nil
}

func (d *Decoder) geometryList(t fbs.Table, depth int) (geometry.GeometryList, error) {
	list := geometry.GeometryList{}
	err := each(t, fbs.VectorOfVariantGeometryMembers, func(i int, m fbs.Table) error {
		g, ok, err := d.member("GeometryList", i, m, depth+1)
		if !ok {
			return err
		}
		list = append(list, g)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return list, nil
}

// detail reads a required struct of n doubles.
func detail(t fbs.Table, slot int, n int, what string) ([]float64, error) {
	vals, ok, err := t.Struct(slot, n)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s without detail", errs.ErrCorruptBuffer, what)
	}

	return vals, nil
}

// optionalVector reads an optional struct of 3 doubles as a vector.
func optionalVector(t fbs.Table, slot int) (geometry.Vector3d, error) {
	vals, ok, err := t.Struct(slot, fbs.DVec3dDoubles)
	if err != nil || !ok {
		return geometry.Vector3d{}, err
	}

	return vector3(vals), nil
}

func int32Field(t fbs.Table, slot int, dst *int) error {
	v, err := t.Int32(slot)
	*dst = int(v)

	return err
}

func boolField(t fbs.Table, slot int, dst *bool) error {
	v, err := t.Bool(slot)
	*dst = v

	return err
}

func pointVector(t fbs.Table, slot int, what string) ([]geometry.Point3d, error) {
	vals, err := t.Float64s(slot)
	if err != nil {
		return nil, err
	}

	return inflate(what, vals, format.Point3dStride, point3)
}
