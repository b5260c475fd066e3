package geometry

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Face carries the metadata needed for geometric calculations on one of the
// six cube faces: the sign of its normal and the {N, U, V} -> {X, Y, Z}
// permutation, plus the three positive unit vectors in permutation order.
type Face struct {
	nSign       int
	permutation AxisPermutation

	n [3]uint32
	u [3]uint32
	v [3]uint32
}

// NewFace builds a face from a normal sign and an axis permutation.
func NewFace(nSign int, permutation AxisPermutation) Face {
	axes := permutation.Axes()
	return Face{
		nSign:       nSign,
		permutation: permutation,
		n:           axes[0].UnitVector(),
		u:           axes[1].UnitVector(),
		v:           axes[2].UnitVector(),
	}
}

// CanonicalFace is the face for a direction using an even permutation.
func CanonicalFace(normal SignedAxis) Face {
	return NewFace(normal.Signum(), EvenPermutationWithNormal(normal.Axis()))
}

// NSign is the sign of the face normal.
func (f Face) NSign() int {
	return f.nSign
}

// Permutation is the face's {N, U, V} -> {X, Y, Z} mapping.
func (f Face) Permutation() AxisPermutation {
	return f.permutation
}

// SignedNormal is the outward unit normal of the face.
func (f Face) SignedNormal() [3]int32 {
	return [3]int32{
		int32(f.n[0]) * int32(f.nSign),
		int32(f.n[1]) * int32(f.nSign),
		int32(f.n[2]) * int32(f.nSign),
	}
}

// Normal is the outward unit normal as a float vector.
func (f Face) Normal() mgl32.Vec3 {
	n := f.SignedNormal()
	return mgl32.Vec3{float32(n[0]), float32(n[1]), float32(n[2])}
}

// UnitU and UnitV are the positive tangent axes spanning the face plane.
func (f Face) UnitU() [3]uint32 { return f.u }
func (f Face) UnitV() [3]uint32 { return f.v }

// QuadCorners returns the four corners of a quad in grid coordinates, in
// this order:
//
//	2 ---- 3
//	|      |      ^ +V
//	0 ---- 1      |  --> +U
//
// with +N pointing out of the page. Faces with a positive normal sit on the
// far side of their voxel, so their corners are shifted one step along N.
func (f Face) QuadCorners(q Quad) [4][3]uint32 {
	var minCorner [3]uint32
	for i := 0; i < 3; i++ {
		minCorner[i] = q.Minimum[i]
		if f.nSign > 0 {
			minCorner[i] += f.n[i]
		}
	}

	var corners [4][3]uint32
	for i := 0; i < 3; i++ {
		w := f.u[i] * q.Width
		h := f.v[i] * q.Height
		corners[0][i] = minCorner[i]
		corners[1][i] = minCorner[i] + w
		corners[2][i] = minCorner[i] + h
		corners[3][i] = minCorner[i] + w + h
	}
	return corners
}

// QuadMeshPositions scales the quad corners into model space.
func (f Face) QuadMeshPositions(q Quad, voxelSize float32) [4]mgl32.Vec3 {
	corners := f.QuadCorners(q)
	var out [4]mgl32.Vec3
	for i, c := range corners {
		out[i] = mgl32.Vec3{
			voxelSize * float32(c[0]),
			voxelSize * float32(c[1]),
			voxelSize * float32(c[2]),
		}
	}
	return out
}

// QuadMeshNormals returns the per-vertex normals, one per corner.
func (f Face) QuadMeshNormals() [4]mgl32.Vec3 {
	n := f.Normal()
	return [4]mgl32.Vec3{n, n, n, n}
}

// QuadMeshIndices returns the six vertex indices forming the quad's two
// triangles, offset by start. Front faces wind counter-clockwise, which
// depends on both the normal sign and the permutation parity.
func (f Face) QuadMeshIndices(start uint32) [6]uint32 {
	if f.nSign*f.permutation.Sign() > 0 {
		return [6]uint32{start, start + 1, start + 2, start + 1, start + 3, start + 2}
	}
	return [6]uint32{start, start + 2, start + 1, start + 1, start + 2, start + 3}
}

// TexCoords returns UV coordinates for the quad corners, in the same order
// as QuadCorners. It assumes one wrapping tile texture per material, with
// the whole tile shown on each unit face.
//
// uFlipFace comes from the CoordinateConfig: one of the two non-up axes must
// have its U coordinate mirrored to avoid texture mirroring between opposing
// faces. Set flipV when UV (0,0) is the top-left corner instead of the
// bottom-left.
func (f Face) TexCoords(uFlipFace Axis, flipV bool, q Quad) [4]mgl32.Vec2 {
	normalAxis := f.permutation.Axes()[0]
	var flipU bool
	if f.nSign < 0 {
		flipU = uFlipFace != normalAxis
	} else {
		flipU = uFlipFace == normalAxis
	}

	w := float32(q.Width)
	h := float32(q.Height)
	switch {
	case !flipU && !flipV:
		return [4]mgl32.Vec2{{0, 0}, {w, 0}, {0, h}, {w, h}}
	case flipU && !flipV:
		return [4]mgl32.Vec2{{w, 0}, {0, 0}, {w, h}, {0, h}}
	case !flipU && flipV:
		return [4]mgl32.Vec2{{0, h}, {w, h}, {0, 0}, {w, 0}}
	default:
		return [4]mgl32.Vec2{{w, h}, {0, h}, {w, 0}, {0, 0}}
	}
}
