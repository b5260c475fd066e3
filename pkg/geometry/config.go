package geometry

// FaceIndex identifies the slot of each direction inside a
// CoordinateConfig's face table and inside the meshers' quad buffers. The
// order matches the strides the algorithms precompute: the three negative
// directions first, then the three positive ones.
const (
	FaceNegX = iota
	FaceNegY
	FaceNegZ
	FacePosX
	FacePosY
	FacePosZ
	NumFaces
)

// CoordinateConfig fixes a coordinate system for meshing: the oriented face
// table plus the texture flip rule that goes with it. It is a plain value
// passed explicitly to each call, so multiple conventions can coexist in one
// process.
type CoordinateConfig struct {
	// Faces holds the six oriented faces indexed by FaceNegX..FacePosZ.
	Faces [NumFaces]Face

	// UFlipFace names the axis whose faces mirror their U texture
	// coordinate. For a given coordinate system, one of the two axes that
	// is not up must be flipped or textures mirror between opposing faces.
	UFlipFace Axis
}

// FaceIndexOf returns the config slot for an outward direction.
func FaceIndexOf(normal SignedAxis) int {
	switch normal {
	case NegX:
		return FaceNegX
	case NegY:
		return FaceNegY
	case NegZ:
		return FaceNegZ
	case PosX:
		return FacePosX
	case PosY:
		return FacePosY
	default:
		return FacePosZ
	}
}

// RightHandedYUp is the config for a right-handed coordinate system with +Y
// up, the convention of OpenGL and most engines. Y is the V axis on every
// face where it is not the normal; right-handedness forces the YZX
// permutation when Y is the normal.
func RightHandedYUp() CoordinateConfig {
	return CoordinateConfig{
		Faces: [NumFaces]Face{
			FaceNegX: NewFace(-1, PermXZY),
			FaceNegY: NewFace(-1, PermYZX),
			FaceNegZ: NewFace(-1, PermZXY),
			FacePosX: NewFace(1, PermXZY),
			FacePosY: NewFace(1, PermYZX),
			FacePosZ: NewFace(1, PermZXY),
		},
		UFlipFace: AxisX,
	}
}

// LeftHandedYUp is the mirrored convention with +Z into the screen. Flipping
// handedness reverses which winding reads as counter-clockwise from outside,
// so every face uses the permutation of opposite parity; the U and V tangent
// axes swap accordingly and the meshers' width/height follow them.
func LeftHandedYUp() CoordinateConfig {
	return CoordinateConfig{
		Faces: [NumFaces]Face{
			FaceNegX: NewFace(-1, PermXYZ),
			FaceNegY: NewFace(-1, PermYXZ),
			FaceNegZ: NewFace(-1, PermZYX),
			FacePosX: NewFace(1, PermXYZ),
			FacePosY: NewFace(1, PermYXZ),
			FacePosZ: NewFace(1, PermZYX),
		},
		UFlipFace: AxisX,
	}
}
