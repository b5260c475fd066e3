// Package geometry defines the axes, face orientations and quads shared by
// the meshing algorithms.
//
// A cube face lives in "{N, U, V} space": N is the normal axis, U and V are
// the two tangent axes spanning the face plane. An AxisPermutation fixes the
// {N, U, V} -> {X, Y, Z} mapping and a sign on N completes a Face. Six faces
// plus a texture-flip rule form a CoordinateConfig, which implicitly picks
// the handedness and up axis of the coordinate system.
package geometry

// Axis is one of the X, Y or Z coordinate axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Index is the position of this axis' component in a coordinate triple.
func (a Axis) Index() int {
	return int(a)
}

// UnitVector returns the positive unit vector along the axis.
func (a Axis) UnitVector() [3]uint32 {
	var v [3]uint32
	v[a.Index()] = 1
	return v
}

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "invalid"
	}
}

// AxisPermutation is one of the six {N, U, V} -> {X, Y, Z} mappings. The name
// lists the X, Y, Z axes in N, U, V order, so PermXZY maps N to X, U to Z and
// V to Y.
type AxisPermutation uint8

const (
	// Even permutations.
	PermXYZ AxisPermutation = iota
	PermZXY
	PermYZX
	// Odd permutations.
	PermZYX
	PermXZY
	PermYXZ
)

// EvenPermutationWithNormal returns the even permutation whose N axis is the
// given axis.
func EvenPermutationWithNormal(a Axis) AxisPermutation {
	switch a {
	case AxisY:
		return PermYZX
	case AxisZ:
		return PermZXY
	default:
		return PermXYZ
	}
}

// OddPermutationWithNormal returns the odd permutation whose N axis is the
// given axis.
func OddPermutationWithNormal(a Axis) AxisPermutation {
	switch a {
	case AxisY:
		return PermYXZ
	case AxisZ:
		return PermZYX
	default:
		return PermXZY
	}
}

// Sign is +1 for even permutations and -1 for odd ones. Combined with the
// normal sign it decides the triangle winding of a face.
func (p AxisPermutation) Sign() int {
	switch p {
	case PermXYZ, PermZXY, PermYZX:
		return 1
	default:
		return -1
	}
}

// Axes returns the {N, U, V} axes in order.
func (p AxisPermutation) Axes() [3]Axis {
	switch p {
	case PermXYZ:
		return [3]Axis{AxisX, AxisY, AxisZ}
	case PermZXY:
		return [3]Axis{AxisZ, AxisX, AxisY}
	case PermYZX:
		return [3]Axis{AxisY, AxisZ, AxisX}
	case PermZYX:
		return [3]Axis{AxisZ, AxisY, AxisX}
	case PermXZY:
		return [3]Axis{AxisX, AxisZ, AxisY}
	default:
		return [3]Axis{AxisY, AxisX, AxisZ}
	}
}

// SignedAxis is one of the six axis-aligned directions.
type SignedAxis uint8

const (
	NegX SignedAxis = iota
	PosX
	NegY
	PosY
	NegZ
	PosZ
)

// NewSignedAxis combines a nonzero sign with an axis.
func NewSignedAxis(sign int, a Axis) SignedAxis {
	switch {
	case sign > 0 && a == AxisX:
		return PosX
	case sign <= 0 && a == AxisX:
		return NegX
	case sign > 0 && a == AxisY:
		return PosY
	case sign <= 0 && a == AxisY:
		return NegY
	case sign > 0:
		return PosZ
	default:
		return NegZ
	}
}

// Axis strips the sign.
func (s SignedAxis) Axis() Axis {
	switch s {
	case NegX, PosX:
		return AxisX
	case NegY, PosY:
		return AxisY
	default:
		return AxisZ
	}
}

// Signum is -1 for the negative directions and +1 for the positive ones.
func (s SignedAxis) Signum() int {
	switch s {
	case NegX, NegY, NegZ:
		return -1
	default:
		return 1
	}
}

// UnitVector returns the signed unit vector for the direction.
func (s SignedAxis) UnitVector() [3]int32 {
	var v [3]int32
	v[s.Axis().Index()] = int32(s.Signum())
	return v
}
