package meshing

import (
	"blockmesh/pkg/geometry"
)

// UnitQuadBuffer collects the output of VisibleFaces: one unit quad per
// visible block face, grouped by direction. Interpret each group with the
// matching Face of the CoordinateConfig the call was made with.
//
// Buffers are meant to be reused across invocations: Reset keeps the backing
// storage so steady-state meshing does not allocate.
type UnitQuadBuffer struct {
	Groups [geometry.NumFaces][]geometry.UnitQuad
}

// Reset clears every group without releasing capacity.
func (b *UnitQuadBuffer) Reset() {
	for i := range b.Groups {
		b.Groups[i] = b.Groups[i][:0]
	}
}

// NumQuads is the total quad count across all groups.
func (b *UnitQuadBuffer) NumQuads() int {
	n := 0
	for i := range b.Groups {
		n += len(b.Groups[i])
	}
	return n
}

// QuadBuffer holds merged quads grouped by direction.
type QuadBuffer struct {
	Groups [geometry.NumFaces][]geometry.Quad
}

// Reset clears every group without releasing capacity.
func (b *QuadBuffer) Reset() {
	for i := range b.Groups {
		b.Groups[i] = b.Groups[i][:0]
	}
}

// NumQuads is the total quad count across all groups.
func (b *QuadBuffer) NumQuads() int {
	n := 0
	for i := range b.Groups {
		n += len(b.Groups[i])
	}
	return n
}

// GreedyBuffer is the output buffer for GreedyQuads. Besides the quads it
// owns the visited mask, sized and strided like the voxel array so the
// algorithm can index both with the same offsets using one allocation.
type GreedyBuffer struct {
	Quads QuadBuffer

	visited []bool
}

// NewGreedyBuffer sizes the visited mask for a voxel array of the given
// length. GreedyQuads resizes as needed, so the size is just a preallocation
// hint.
func NewGreedyBuffer(size int) *GreedyBuffer {
	return &GreedyBuffer{visited: make([]bool, size)}
}

// Reset clears the quads and resizes the visited mask, reallocating only
// when the voxel array length changed.
func (b *GreedyBuffer) Reset(size int) {
	b.Quads.Reset()
	if size != len(b.visited) {
		b.visited = make([]bool, size)
	}
}
