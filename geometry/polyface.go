package geometry

import (
	"fmt"

	"github.com/arloliu/geomcodec/errs"
)

// Mesh styles.
const (
	MeshStyleIndexed  = 1
	MeshStyleQuadGrid = 2
	MeshStyleTriGrid  = 3
)

// FaceData is the per-face parameter range block: the distance-scaled
// parameter range followed by the raw parameter range.
type FaceData struct {
	ParamDistanceLow  Point2d
	ParamDistanceHigh Point2d
	ParamLow          Point2d
	ParamHigh         Point2d
}

// Polyface is an indexed mesh. Index arrays are one-based with zero as the
// face terminator, as in the producing geometry library; the codecs copy
// them without interpretation.
type Polyface struct {
	MeshStyle       int
	NumPerFace      int
	NumPerRow       int
	TwoSided        bool
	ExpectedClosure int

	Points    []Point3d
	Params    []Point2d
	Normals   []Vector3d
	IntColors []int32

	PointIndex  []int32
	ParamIndex  []int32
	NormalIndex []int32
	ColorIndex  []int32
	FaceIndex   []int32

	FaceData []FaceData
	AuxData  *PolyfaceAuxData
}

// PolyfaceAuxData holds named per-vertex data channels.
type PolyfaceAuxData struct {
	Indices  []int32
	Channels []AuxChannel
}

// AuxChannel is one named channel of auxiliary data.
type AuxChannel struct {
	DataType  int
	Name      string
	InputName string
	Data      []AuxChannelData
}

// AuxChannelData is one block of channel values at an input value
// (for example a time step).
type AuxChannelData struct {
	Input  float64
	Values []float64
}

func (*Polyface) GeometryType() GeometryType { return GeometryTypePolyface }
func (*Polyface) isGeometry()                {}

// ValidateIndices checks that every populated index array has the same
// length as PointIndex.
func (p *Polyface) ValidateIndices() error {
	n := len(p.PointIndex)
	check := func(name string, idx []int32) error {
		if len(idx) != 0 && len(idx) != n {
			return fmt.Errorf("%w: %s has %d entries, point index has %d",
				errs.ErrIndexCountMismatch, name, len(idx), n)
		}

		return nil
	}
	if err := check("param index", p.ParamIndex); err != nil {
		return err
	}
	if err := check("normal index", p.NormalIndex); err != nil {
		return err
	}
	if err := check("color index", p.ColorIndex); err != nil {
		return err
	}

	return check("face index", p.FaceIndex)
}
