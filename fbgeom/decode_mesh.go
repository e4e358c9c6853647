package fbgeom

import (
	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
)

func (d *Decoder) polyface(t fbs.Table) (*geometry.Polyface, error) {
	p := &geometry.Polyface{}
	ints := []struct {
		slot int
		dst  *int
	}{
		{fbs.PolyfaceMeshStyle, &p.MeshStyle},
		{fbs.PolyfaceNumPerFace, &p.NumPerFace},
		{fbs.PolyfaceNumPerRow, &p.NumPerRow},
		{fbs.PolyfaceExpectedClosure, &p.ExpectedClosure},
	}
	for _, f := range ints {
		if err := int32Field(t, f.slot, f.dst); err != nil {
			return nil, err
		}
	}
	if err := boolField(t, fbs.PolyfaceTwoSided, &p.TwoSided); err != nil {
		return nil, err
	}

	var err error
	if p.Points, err = pointVector(t, fbs.PolyfacePoint, "polyface points"); err != nil {
		return nil, err
	}

	params, err := t.Float64s(fbs.PolyfaceParam)
	if err != nil {
		return nil, err
	}
	if p.Params, err = inflate("polyface params", params, format.Point2dStride, point2); err != nil {
		return nil, err
	}

	normals, err := t.Float64s(fbs.PolyfaceNormal)
	if err != nil {
		return nil, err
	}
	if p.Normals, err = inflate("polyface normals", normals, format.Vector3dStride, vector3); err != nil {
		return nil, err
	}

	faces, err := t.Float64s(fbs.PolyfaceFaceData)
	if err != nil {
		return nil, err
	}
	if p.FaceData, err = inflate("face data", faces, format.FaceDataStride, faceData); err != nil {
		return nil, err
	}

	indices := []struct {
		slot int
		dst  *[]int32
	}{
		{fbs.PolyfaceIntColor, &p.IntColors},
		{fbs.PolyfacePointIndex, &p.PointIndex},
		{fbs.PolyfaceParamIndex, &p.ParamIndex},
		{fbs.PolyfaceNormalIndex, &p.NormalIndex},
		{fbs.PolyfaceColorIndex, &p.ColorIndex},
		{fbs.PolyfaceFaceIndex, &p.FaceIndex},
	}
	for _, f := range indices {
		if *f.dst, err = t.Int32s(f.slot); err != nil {
			return nil, err
		}
	}

	aux, ok, err := t.Child(fbs.PolyfaceAuxData)
	if err != nil {
		return nil, err
	}
	if ok {
		if p.AuxData, err = auxData(aux); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func auxData(t fbs.Table) (*geometry.PolyfaceAuxData, error) {
	indices, err := t.Int32s(fbs.PolyfaceAuxDataIndices)
	if err != nil {
		return nil, err
	}

	a := &geometry.PolyfaceAuxData{Indices: indices}
	err = each(t, fbs.PolyfaceAuxDataChannels, func(_ int, ct fbs.Table) error {
		ch, err := auxChannel(ct)
		if err != nil {
			return err
		}
		a.Channels = append(a.Channels, ch)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

func auxChannel(t fbs.Table) (geometry.AuxChannel, error) {
	var ch geometry.AuxChannel
	if err := int32Field(t, fbs.PolyfaceAuxChannelDataType, &ch.DataType); err != nil {
		return ch, err
	}

	var err error
	if ch.Name, err = t.String(fbs.PolyfaceAuxChannelName); err != nil {
		return ch, err
	}
	if ch.InputName, err = t.String(fbs.PolyfaceAuxChannelInputName); err != nil {
		return ch, err
	}

	err = each(t, fbs.PolyfaceAuxChannelData, func(_ int, dt fbs.Table) error {
		input, err := dt.Float64(fbs.PolyfaceAuxChannelDataInput)
		if err != nil {
			return err
		}
		values, err := dt.Float64s(fbs.PolyfaceAuxChannelDataValues)
		if err != nil {
			return err
		}
		ch.Data = append(ch.Data, geometry.AuxChannelData{Input: input, Values: values})

		return nil
	})

	return ch, err
}
