package format

// Array multiplicities of the binary format. Encoder and decoder must agree on
// every one of these; a mismatch silently corrupts coordinates.
const (
	Point3dStride   = 3  // doubles per 3D point
	Point2dStride   = 2  // doubles per 2D point (polyface params)
	Vector3dStride  = 3  // doubles per 3D vector (polyface normals)
	FaceDataStride  = 8  // doubles per per-face data block
	TransformStride = 12 // doubles per 3x4 transform
	SegmentStride   = 6  // doubles per DSegment3d struct
	EllipseStride   = 11 // doubles per DEllipse3d struct
	RayStride       = 6  // doubles per DRay3d struct
)

// Sizes in bytes of the scalar element types stored in vectors.
const (
	Float64Size = 8
	Int32Size   = 4
	ByteSize    = 1
)

// MagicPrefix is the literal prefix of every binary geometry buffer.
const MagicPrefix = "bg0001fb"

// MagicSize is the length in bytes of MagicPrefix.
const MagicSize = len(MagicPrefix)
