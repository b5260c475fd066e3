package meshing

import (
	"testing"

	"blockmesh/pkg/geometry"
	"blockmesh/pkg/shape"
)

func BenchmarkVisibleFaces_Sphere(b *testing.B) {
	var s shape.Padded34
	grid := sphereGrid(15)
	min, max := fullBounds(s)
	cfg := geometry.RightHandedYUp()
	var out UnitQuadBuffer

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out.Reset()
		if err := VisibleFaces(grid, s, min, max, &cfg, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGreedyQuads_Sphere(b *testing.B) {
	var s shape.Padded34
	grid := sphereGrid(15)
	min, max := fullBounds(s)
	cfg := geometry.RightHandedYUp()
	out := NewGreedyBuffer(len(grid))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := GreedyQuads[testVoxel](grid, s, min, max, &cfg, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGreedyQuads_FullSurface(b *testing.B) {
	// A flat top surface is the best case for merging: one slab of stone
	// one voxel thick across the whole chunk.
	var s shape.Padded18
	grid := newGrid(s)
	fillBox(grid, s, [3]uint32{1, 8, 1}, [3]uint32{16, 8, 16}, stone)
	min, max := fullBounds(s)
	cfg := geometry.RightHandedYUp()
	out := NewGreedyBuffer(len(grid))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := GreedyQuads[testVoxel](grid, s, min, max, &cfg, out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMeshBufferAppend(b *testing.B) {
	var s shape.Padded34
	grid := sphereGrid(15)
	min, max := fullBounds(s)
	cfg := geometry.RightHandedYUp()
	quads := NewGreedyBuffer(len(grid))
	if err := GreedyQuads[testVoxel](grid, s, min, max, &cfg, quads); err != nil {
		b.Fatal(err)
	}
	var mesh MeshBuffer

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mesh.Reset()
		mesh.AppendQuadBuffer(&cfg, &quads.Quads, 1)
	}
}
