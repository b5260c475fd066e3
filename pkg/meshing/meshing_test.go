package meshing

import (
	"math/rand"

	"blockmesh/pkg/shape"
	"blockmesh/pkg/voxel"
)

// testVoxel is the block palette the meshing tests run against. The merge
// key is the value itself.
type testVoxel uint8

const (
	air testVoxel = iota
	stone
	dirt
	glass
	water
)

func (v testVoxel) Visibility() voxel.Visibility {
	switch v {
	case air:
		return voxel.Empty
	case glass, water:
		return voxel.Translucent
	default:
		return voxel.Opaque
	}
}

func (v testVoxel) MergeValue() testVoxel { return v }

func (v testVoxel) MergeValueFacingNeighbor() testVoxel { return v }

// newGrid allocates an all-air voxel buffer for the shape.
func newGrid(s shape.Shape) []testVoxel {
	return make([]testVoxel, s.Size())
}

// set places a voxel, failing loudly on out-of-range coordinates.
func set(grid []testVoxel, s shape.Shape, p [3]uint32, v testVoxel) {
	if !s.InBounds(p) {
		panic("test voxel out of bounds")
	}
	grid[s.Linearize(p)] = v
}

// fillBox fills the inclusive coordinate box [lo, hi].
func fillBox(grid []testVoxel, s shape.Shape, lo, hi [3]uint32, v testVoxel) {
	for z := lo[2]; z <= hi[2]; z++ {
		for y := lo[1]; y <= hi[1]; y++ {
			for x := lo[0]; x <= hi[0]; x++ {
				set(grid, s, [3]uint32{x, y, z}, v)
			}
		}
	}
}

// randomGrid fills the interior of the shape with a reproducible mix of all
// palette values, leaving the halo empty.
func randomGrid(s shape.Shape, seed int64) []testVoxel {
	r := rand.New(rand.NewSource(seed))
	grid := newGrid(s)
	dims := s.Dims()
	for z := uint32(1); z < dims[2]-1; z++ {
		for y := uint32(1); y < dims[1]-1; y++ {
			for x := uint32(1); x < dims[0]-1; x++ {
				set(grid, s, [3]uint32{x, y, z}, testVoxel(r.Intn(5)))
			}
		}
	}
	return grid
}

// sphereGrid fills a Padded34 chunk with a solid sphere, the workload the
// benchmarks and merge-quality tests run on.
func sphereGrid(radius float64) []testVoxel {
	var s shape.Padded34
	grid := newGrid(s)
	c := float64(shape.Padded34Dim) / 2
	for i := uint32(0); i < s.Size(); i++ {
		p := s.Delinearize(i)
		dx := float64(p[0]) + 0.5 - c
		dy := float64(p[1]) + 0.5 - c
		dz := float64(p[2]) + 0.5 - c
		if dx*dx+dy*dy+dz*dz < radius*radius {
			grid[i] = stone
		}
	}
	return grid
}

func fullBounds(s shape.Shape) (min, max [3]uint32) {
	d := s.Dims()
	return [3]uint32{0, 0, 0}, [3]uint32{d[0] - 1, d[1] - 1, d[2] - 1}
}
