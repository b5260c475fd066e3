// Package meshing converts flat voxel grids into renderable quad sets using
// either per-face visibility culling (VisibleFaces) or greedy quad merging
// (GreedyQuads).
//
// Both algorithms mesh the voxels strictly inside [min, max]: callers must
// supply a one-voxel halo of already-classified voxels around the region of
// interest so every meshed voxel has all six neighbors resolvable by plain
// indexing. Neither algorithm allocates beyond output buffer growth, and
// both are deterministic: identical input yields an identical quad set in
// identical order.
package meshing

import (
	"blockmesh/pkg/geometry"
	"blockmesh/pkg/shape"
	"blockmesh/pkg/voxel"
)

// VisibleFaces emits one unit quad for every visible face of every voxel on
// the interior of [min, max]. It is faster than GreedyQuads but produces many
// more quads.
func VisibleFaces[T voxel.Voxel](
	voxels []T,
	s shape.Shape,
	min, max [3]uint32,
	cfg *geometry.CoordinateConfig,
	out *UnitQuadBuffer,
) error {
	return VisibleFacesWithPolicy(voxels, s, min, max, cfg, SkipTranslucentInterfaces, out)
}

// VisibleFacesWithPolicy is VisibleFaces with an explicit translucency
// policy.
func VisibleFacesWithPolicy[T voxel.Voxel](
	voxels []T,
	s shape.Shape,
	min, max [3]uint32,
	cfg *geometry.CoordinateConfig,
	policy TranslucencyPolicy,
	out *UnitQuadBuffer,
) error {
	if err := checkBounds(len(voxels), s, min, max); err != nil {
		return err
	}

	// One linearized offset per face direction. Negative normals wrap on
	// uint32, which turns into a subtraction when added to an index.
	var strides [geometry.NumFaces]uint32
	for i := range cfg.Faces {
		n := cfg.Faces[i].SignedNormal()
		strides[i] = s.Linearize([3]uint32{uint32(n[0]), uint32(n[1]), uint32(n[2])})
	}

	for z := min[2] + 1; z < max[2]; z++ {
		for y := min[1] + 1; y < max[1]; y++ {
			for x := min[0] + 1; x < max[0]; x++ {
				p := [3]uint32{x, y, z}
				idx := s.Linearize(p)
				vis := voxels[idx].Visibility()
				if vis == voxel.Empty {
					continue
				}
				for face, stride := range strides {
					nb := voxels[idx+stride].Visibility()
					if faceVisible(vis, nb, policy) {
						out.Groups[face] = append(out.Groups[face], geometry.UnitQuad{Minimum: p})
					}
				}
			}
		}
	}
	return nil
}
