package fbgeom

import (
	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/arloliu/geomcodec/format"
	"github.com/arloliu/geomcodec/geometry"
	"github.com/arloliu/geomcodec/internal/fbs"
)

// polyface writes a Polyface table. Arrays that are empty are left out of the
// table entirely, so a reader sees them as absent rather than empty.
func (s *encodeState) polyface(p *geometry.Polyface) flatbuffers.UOffsetT {
	var aux flatbuffers.UOffsetT
	if p.AuxData != nil {
		aux = s.auxData(p.AuxData)
	}
	points := tupleVector(s.b, p.Points, format.Point3dStride, fillPoint)
	params := tupleVector(s.b, p.Params, format.Point2dStride, fillPoint2)
	normals := tupleVector(s.b, p.Normals, format.Vector3dStride, fillVector)
	faceData := tupleVector(s.b, p.FaceData, format.FaceDataStride, fillFaceData)
	colors := fbs.CreateInt32Vector(s.b, p.IntColors)
	pointIndex := fbs.CreateInt32Vector(s.b, p.PointIndex)
	paramIndex := fbs.CreateInt32Vector(s.b, p.ParamIndex)
	normalIndex := fbs.CreateInt32Vector(s.b, p.NormalIndex)
	colorIndex := fbs.CreateInt32Vector(s.b, p.ColorIndex)
	faceIndex := fbs.CreateInt32Vector(s.b, p.FaceIndex)

	fbs.Start(s.b, fbs.PolyfaceFields)
	fbs.AddOffset(s.b, fbs.PolyfaceAuxData, aux)
	fbs.AddOffset(s.b, fbs.PolyfaceFaceData, faceData)
	fbs.AddOffset(s.b, fbs.PolyfaceFaceIndex, faceIndex)
	fbs.AddOffset(s.b, fbs.PolyfaceColorIndex, colorIndex)
	fbs.AddOffset(s.b, fbs.PolyfaceNormalIndex, normalIndex)
	fbs.AddOffset(s.b, fbs.PolyfaceParamIndex, paramIndex)
	fbs.AddOffset(s.b, fbs.PolyfacePointIndex, pointIndex)
	fbs.AddOffset(s.b, fbs.PolyfaceIntColor, colors)
	fbs.AddOffset(s.b, fbs.PolyfaceNormal, normals)
	fbs.AddOffset(s.b, fbs.PolyfaceParam, params)
	fbs.AddOffset(s.b, fbs.PolyfacePoint, points)
	fbs.AddInt32(s.b, fbs.PolyfaceMeshStyle, int32(p.MeshStyle))
	fbs.AddInt32(s.b, fbs.PolyfaceNumPerFace, int32(p.NumPerFace))
	fbs.AddInt32(s.b, fbs.PolyfaceNumPerRow, int32(p.NumPerRow))
	fbs.AddInt32(s.b, fbs.PolyfaceExpectedClosure, int32(p.ExpectedClosure))
	fbs.AddBool(s.b, fbs.PolyfaceTwoSided, p.TwoSided)

	return fbs.End(s.b)
}

func (s *encodeState) auxData(a *geometry.PolyfaceAuxData) flatbuffers.UOffsetT {
	channels := make([]flatbuffers.UOffsetT, len(a.Channels))
	for i := range a.Channels {
		channels[i] = s.auxChannel(&a.Channels[i])
	}
	channelVec := s.offsetVector(channels)
	indices := fbs.CreateInt32Vector(s.b, a.Indices)

	fbs.Start(s.b, fbs.PolyfaceAuxDataFields)
	fbs.AddOffset(s.b, fbs.PolyfaceAuxDataChannels, channelVec)
	fbs.AddOffset(s.b, fbs.PolyfaceAuxDataIndices, indices)

	return fbs.End(s.b)
}

func (s *encodeState) auxChannel(c *geometry.AuxChannel) flatbuffers.UOffsetT {
	data := make([]flatbuffers.UOffsetT, len(c.Data))
	for i := range c.Data {
		values := fbs.CreateFloat64Vector(s.b, c.Data[i].Values)
		fbs.Start(s.b, fbs.PolyfaceAuxChannelDataFields)
		fbs.AddFloat64(s.b, fbs.PolyfaceAuxChannelDataInput, c.Data[i].Input)
		fbs.AddOffset(s.b, fbs.PolyfaceAuxChannelDataValues, values)
		data[i] = fbs.End(s.b)
	}
	dataVec := s.offsetVector(data)
	name := fbs.CreateString(s.b, c.Name)
	inputName := fbs.CreateString(s.b, c.InputName)

	fbs.Start(s.b, fbs.PolyfaceAuxChannelFields)
	fbs.AddOffset(s.b, fbs.PolyfaceAuxChannelData, dataVec)
	fbs.AddOffset(s.b, fbs.PolyfaceAuxChannelInputName, inputName)
	fbs.AddOffset(s.b, fbs.PolyfaceAuxChannelName, name)
	fbs.AddInt32(s.b, fbs.PolyfaceAuxChannelDataType, int32(c.DataType))

	return fbs.End(s.b)
}
