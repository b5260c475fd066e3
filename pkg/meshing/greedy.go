package meshing

import (
	"blockmesh/pkg/geometry"
	"blockmesh/pkg/shape"
	"blockmesh/pkg/voxel"
)

// GreedyQuads merges runs of equal, face-compatible voxels into maximal
// rectangles, the "greedy meshing" algorithm described by Mikola Lysenko.
// Every face VisibleFaces would emit on the interior of [min, max] ends up
// covered by exactly one quad; coherent voxel data produces far fewer quads
// than one per face.
//
// The buffer is reset before meshing, so its previous content is discarded.
// K is the merge key type; all voxels of one quad share the same MergeValue
// and see neighbors with the same MergeValueFacingNeighbor.
func GreedyQuads[K comparable, T voxel.MergeVoxel[K]](
	voxels []T,
	s shape.Shape,
	min, max [3]uint32,
	cfg *geometry.CoordinateConfig,
	out *GreedyBuffer,
) error {
	return GreedyQuadsWithPolicy[K](voxels, s, min, max, cfg, SkipTranslucentInterfaces, out)
}

// GreedyQuadsWithPolicy is GreedyQuads with an explicit translucency policy.
func GreedyQuadsWithPolicy[K comparable, T voxel.MergeVoxel[K]](
	voxels []T,
	s shape.Shape,
	min, max [3]uint32,
	cfg *geometry.CoordinateConfig,
	policy TranslucencyPolicy,
	out *GreedyBuffer,
) error {
	if err := checkBounds(len(voxels), s, min, max); err != nil {
		return err
	}
	out.Reset(len(voxels))

	for i := range cfg.Faces {
		greedyQuadsForFace[K](voxels, s, min, max, cfg.Faces[i], policy, out.visited, &out.Quads.Groups[i])
	}
	return nil
}

// faceStrides are the linearized offsets needed while sweeping one face
// direction. All arithmetic wraps on uint32, so a negative step is just an
// additive stride.
type faceStrides struct {
	nStride uint32
	uStride uint32
	vStride uint32
	// visibilityOffset reaches the voxel sharing the cube face: +nStride
	// for positive normals, -nStride for negative ones.
	visibilityOffset uint32
}

// greedyQuadsForFace sweeps the interior of [min, max] as a stack of 2D
// slices perpendicular to the face normal and greedily tiles each slice's
// visible cells into maximal rectangles.
func greedyQuadsForFace[K comparable, T voxel.MergeVoxel[K]](
	voxels []T,
	s shape.Shape,
	min, max [3]uint32,
	face geometry.Face,
	policy TranslucencyPolicy,
	visited []bool,
	quads *[]geometry.Quad,
) {
	for i := range visited {
		visited[i] = false
	}

	axes := face.Permutation().Axes()
	iN := axes[0].Index()
	iU := axes[1].Index()
	iV := axes[2].Index()

	// Interior extent: one voxel in from every side of [min, max].
	var interiorMin, interiorDims [3]uint32
	for i := 0; i < 3; i++ {
		if max[i]-min[i] < 2 {
			return
		}
		interiorMin[i] = min[i] + 1
		interiorDims[i] = max[i] - min[i] - 1
	}

	numSlices := interiorDims[iN]
	uUpper := interiorMin[iU] + interiorDims[iU]
	vUpper := interiorMin[iV] + interiorDims[iV]

	nStride := s.Linearize(axes[0].UnitVector())
	st := faceStrides{
		nStride: nStride,
		uStride: s.Linearize(axes[1].UnitVector()),
		vStride: s.Linearize(axes[2].UnitVector()),
	}
	if face.NSign() > 0 {
		st.visibilityOffset = nStride
	} else {
		st.visibilityOffset = -nStride
	}

	// Slice extents have thickness 1 along N. Cells scan in a fixed
	// row-major order (X fastest), which together with the grow-U-first
	// rule makes the output deterministic.
	sliceMin := interiorMin
	sliceDims := interiorDims
	sliceDims[iN] = 1

	for slice := uint32(0); slice < numSlices; slice++ {
		for dz := uint32(0); dz < sliceDims[2]; dz++ {
			for dy := uint32(0); dy < sliceDims[1]; dy++ {
				for dx := uint32(0); dx < sliceDims[0]; dx++ {
					p := [3]uint32{sliceMin[0] + dx, sliceMin[1] + dy, sliceMin[2] + dz}
					idx := s.Linearize(p)
					if !faceNeedsMesh(voxels, visited, idx, st.visibilityOffset, policy) {
						continue
					}

					// Grow the face into the biggest quad that fits in the
					// slice.
					maxWidth := uUpper - p[iU]
					maxHeight := vUpper - p[iV]
					width, height := findQuad(voxels, visited, idx, maxWidth, maxHeight, st, policy)

					// Mark the covered cells so no later scan revisits them.
					for dv := uint32(0); dv < height; dv++ {
						rowIdx := idx + dv*st.vStride
						for du := uint32(0); du < width; du++ {
							visited[rowIdx+du*st.uStride] = true
						}
					}

					*quads = append(*quads, geometry.Quad{Minimum: p, Width: width, Height: height})
				}
			}
		}
		sliceMin[iN]++
	}
}

// faceNeedsMesh reports whether the face of the voxel at idx must be meshed:
// not yet visited, non-empty, and not occluded by the voxel across the face.
func faceNeedsMesh[T voxel.Voxel](
	voxels []T,
	visited []bool,
	idx, visibilityOffset uint32,
	policy TranslucencyPolicy,
) bool {
	vis := voxels[idx].Visibility()
	if vis == voxel.Empty || visited[idx] {
		return false
	}
	nb := voxels[idx+visibilityOffset].Visibility()
	return faceVisible(vis, nb, policy)
}

// findQuad greedily searches for the biggest visible quad anchored at
// minIdx where every cell shares the quad's merge values: first the widest
// run along U, then as many full-width rows along V as possible.
func findQuad[K comparable, T voxel.MergeVoxel[K]](
	voxels []T,
	visited []bool,
	minIdx uint32,
	maxWidth, maxHeight uint32,
	st faceStrides,
	policy TranslucencyPolicy,
) (width, height uint32) {
	quadValue := voxels[minIdx].MergeValue()
	neighborValue := voxels[minIdx+st.visibilityOffset].MergeValueFacingNeighbor()

	width = rowWidth(voxels, visited, quadValue, neighborValue, st, minIdx, maxWidth, policy)

	rowStart := minIdx + st.vStride
	height = 1
	for height < maxHeight {
		w := rowWidth(voxels, visited, quadValue, neighborValue, st, rowStart, width, policy)
		if w < width {
			break
		}
		height++
		rowStart += st.vStride
	}
	return width, height
}

// rowWidth counts how many consecutive cells along U, starting at start,
// still need meshing and match the quad's merge values.
func rowWidth[K comparable, T voxel.MergeVoxel[K]](
	voxels []T,
	visited []bool,
	quadValue, neighborValue K,
	st faceStrides,
	start, maxWidth uint32,
	policy TranslucencyPolicy,
) uint32 {
	var width uint32
	idx := start
	for width < maxWidth {
		if !faceNeedsMesh(voxels, visited, idx, st.visibilityOffset, policy) {
			break
		}
		if voxels[idx].MergeValue() != quadValue ||
			voxels[idx+st.visibilityOffset].MergeValueFacingNeighbor() != neighborValue {
			break
		}
		width++
		idx += st.uStride
	}
	return width
}
