package meshing

import (
	"math"
	"testing"

	"blockmesh/pkg/geometry"
	"blockmesh/pkg/shape"
)

func TestMeshBufferSingleVoxel(t *testing.T) {
	var s shape.Padded18
	grid := newGrid(s)
	set(grid, s, [3]uint32{8, 8, 8}, stone)
	min, max := fullBounds(s)
	cfg := geometry.RightHandedYUp()

	var quads UnitQuadBuffer
	if err := VisibleFaces(grid, s, min, max, &cfg, &quads); err != nil {
		t.Fatal(err)
	}

	var mesh MeshBuffer
	mesh.AppendUnitQuadBuffer(&cfg, &quads, 1)

	if mesh.NumVertices() != 24 {
		t.Fatalf("got %d vertices, want 24", mesh.NumVertices())
	}
	if mesh.NumTriangles() != 12 {
		t.Fatalf("got %d triangles, want 12", mesh.NumTriangles())
	}
	if area := mesh.SurfaceArea(); math.Abs(area-6) > 1e-5 {
		t.Fatalf("surface area %f, want 6", area)
	}
	if got := len(mesh.Interleaved()); got != 24*VertexStride {
		t.Fatalf("interleaved length %d, want %d", got, 24*VertexStride)
	}
}

func TestMeshSurfaceAreaMatchesActiveCells(t *testing.T) {
	// Triangulating any quad set must reproduce the exposed surface area
	// counted in unit cells, whether or not the quads were merged.
	var s shape.Padded18
	grid := randomGrid(s, 123)
	min, max := fullBounds(s)
	cfg := geometry.RightHandedYUp()

	var unit UnitQuadBuffer
	if err := VisibleFaces(grid, s, min, max, &cfg, &unit); err != nil {
		t.Fatal(err)
	}
	greedy := NewGreedyBuffer(len(grid))
	if err := GreedyQuads[testVoxel](grid, s, min, max, &cfg, greedy); err != nil {
		t.Fatal(err)
	}

	wantArea := float64(unit.NumQuads())

	var unitMesh, greedyMesh MeshBuffer
	unitMesh.AppendUnitQuadBuffer(&cfg, &unit, 1)
	greedyMesh.AppendQuadBuffer(&cfg, &greedy.Quads, 1)

	if area := unitMesh.SurfaceArea(); math.Abs(area-wantArea) > 1e-3 {
		t.Fatalf("visible-face mesh area %f, want %f", area, wantArea)
	}
	if area := greedyMesh.SurfaceArea(); math.Abs(area-wantArea) > 1e-3 {
		t.Fatalf("greedy mesh area %f, want %f", area, wantArea)
	}
}

func TestMeshBufferScalesByVoxelSize(t *testing.T) {
	var s shape.Padded18
	grid := newGrid(s)
	set(grid, s, [3]uint32{8, 8, 8}, stone)
	min, max := fullBounds(s)
	cfg := geometry.RightHandedYUp()

	var quads UnitQuadBuffer
	if err := VisibleFaces(grid, s, min, max, &cfg, &quads); err != nil {
		t.Fatal(err)
	}

	var mesh MeshBuffer
	mesh.AppendUnitQuadBuffer(&cfg, &quads, 0.5)
	if area := mesh.SurfaceArea(); math.Abs(area-1.5) > 1e-5 {
		t.Fatalf("surface area %f, want 1.5 at voxel size 0.5", area)
	}
}

func TestMeshBufferReset(t *testing.T) {
	var s shape.Padded18
	grid := newGrid(s)
	set(grid, s, [3]uint32{8, 8, 8}, stone)
	min, max := fullBounds(s)
	cfg := geometry.RightHandedYUp()

	var quads UnitQuadBuffer
	if err := VisibleFaces(grid, s, min, max, &cfg, &quads); err != nil {
		t.Fatal(err)
	}

	var mesh MeshBuffer
	mesh.AppendUnitQuadBuffer(&cfg, &quads, 1)
	mesh.Reset()
	if mesh.NumVertices() != 0 || mesh.NumTriangles() != 0 || len(mesh.UVs) != 0 {
		t.Fatal("reset buffer still holds data")
	}

	mesh.AppendUnitQuadBuffer(&cfg, &quads, 1)
	if mesh.NumVertices() != 24 {
		t.Fatalf("reused buffer has %d vertices, want 24", mesh.NumVertices())
	}
}
