package meshing

import (
	"github.com/pkg/errors"

	"blockmesh/pkg/shape"
	"blockmesh/pkg/voxel"
)

// TranslucencyPolicy decides what happens at a face shared by two
// translucent voxels. Everything else about the occlusion rule is fixed:
// empty voxels emit nothing, opaque neighbors always hide a face, and a
// translucent neighbor never hides an opaque face.
type TranslucencyPolicy uint8

const (
	// SkipTranslucentInterfaces emits no face between two translucent
	// voxels, avoiding double-rendered coincident surfaces. This is the
	// default.
	SkipTranslucentInterfaces TranslucencyPolicy = iota

	// MeshTranslucentInterfaces emits the face on both sides, for renderers
	// that sort and blend every translucent surface.
	MeshTranslucentInterfaces
)

// faceVisible is the occlusion rule shared by both algorithms. v must be
// non-Empty; nb is how the neighbor along the face normal classifies.
func faceVisible(v, nb voxel.Visibility, policy TranslucencyPolicy) bool {
	switch nb {
	case voxel.Empty:
		return true
	case voxel.Opaque:
		return false
	default:
		if v == voxel.Opaque {
			return true
		}
		return policy == MeshTranslucentInterfaces
	}
}

// checkBounds validates the shape against the voxel buffer and the meshing
// region against the shape. The meshers index neighbors without bounds
// checks, so these contracts must hold before any voxel is touched.
func checkBounds(numVoxels int, s shape.Shape, min, max [3]uint32) error {
	if s == nil {
		return errors.New("nil shape")
	}
	if int(s.Size()) > numVoxels {
		return errors.Errorf(
			"voxel buffer holds %d values but shape %v addresses %d",
			numVoxels, s.Dims(), s.Size())
	}
	dims := s.Dims()
	for i := 0; i < 3; i++ {
		if min[i] > max[i] {
			return errors.Errorf("invalid bounds: min %v exceeds max %v on axis %d", min, max, i)
		}
		if max[i] >= dims[i] {
			return errors.Errorf("bounds max %v falls outside shape %v", max, dims)
		}
	}
	return nil
}
