package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"blockmesh/pkg/geometry"
)

// VertexStride is the number of float32 per interleaved vertex
// (pos.xyz + normal.xyz + uv).
const VertexStride = 8

// MeshBuffer accumulates triangle mesh attributes built from quads: one
// entry of Positions, Normals and UVs per quad corner, plus two
// counter-clockwise triangles of Indices per quad. The result is directly
// usable by a rendering pipeline.
type MeshBuffer struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Indices   []uint32

	// FlipV mirrors the V texture coordinate, for pipelines whose UV origin
	// is the top-left corner of the texture.
	FlipV bool
}

// Reset clears all attributes without releasing capacity.
func (m *MeshBuffer) Reset() {
	m.Positions = m.Positions[:0]
	m.Normals = m.Normals[:0]
	m.UVs = m.UVs[:0]
	m.Indices = m.Indices[:0]
}

// NumVertices is the number of vertices appended so far.
func (m *MeshBuffer) NumVertices() int {
	return len(m.Positions)
}

// NumTriangles is the number of triangles appended so far.
func (m *MeshBuffer) NumTriangles() int {
	return len(m.Indices) / 3
}

// AppendQuad triangulates one quad from the given face slot of cfg and
// appends its four vertices and six indices.
func (m *MeshBuffer) AppendQuad(cfg *geometry.CoordinateConfig, faceIndex int, q geometry.Quad, voxelSize float32) {
	face := cfg.Faces[faceIndex]
	start := uint32(len(m.Positions))

	positions := face.QuadMeshPositions(q, voxelSize)
	normals := face.QuadMeshNormals()
	uvs := face.TexCoords(cfg.UFlipFace, m.FlipV, q)
	indices := face.QuadMeshIndices(start)

	m.Positions = append(m.Positions, positions[:]...)
	m.Normals = append(m.Normals, normals[:]...)
	m.UVs = append(m.UVs, uvs[:]...)
	m.Indices = append(m.Indices, indices[:]...)
}

// AppendQuadBuffer appends every group of a greedy quad buffer.
func (m *MeshBuffer) AppendQuadBuffer(cfg *geometry.CoordinateConfig, quads *QuadBuffer, voxelSize float32) {
	for i := range quads.Groups {
		for _, q := range quads.Groups[i] {
			m.AppendQuad(cfg, i, q, voxelSize)
		}
	}
}

// AppendUnitQuadBuffer appends every group of a visible-faces buffer.
func (m *MeshBuffer) AppendUnitQuadBuffer(cfg *geometry.CoordinateConfig, quads *UnitQuadBuffer, voxelSize float32) {
	for i := range quads.Groups {
		for _, q := range quads.Groups[i] {
			m.AppendQuad(cfg, i, q.Quad(), voxelSize)
		}
	}
}

// Interleaved packs the mesh into pos+normal+uv interleaved float32s with
// stride VertexStride, the layout the render helpers upload.
func (m *MeshBuffer) Interleaved() []float32 {
	out := make([]float32, 0, len(m.Positions)*VertexStride)
	for i := range m.Positions {
		p := m.Positions[i]
		n := m.Normals[i]
		uv := m.UVs[i]
		out = append(out, p.X(), p.Y(), p.Z(), n.X(), n.Y(), n.Z(), uv.X(), uv.Y())
	}
	return out
}

// SurfaceArea sums the area of every triangle in the buffer.
func (m *MeshBuffer) SurfaceArea() float64 {
	var area float64
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := m.Positions[m.Indices[i]]
		b := m.Positions[m.Indices[i+1]]
		c := m.Positions[m.Indices[i+2]]
		area += float64(b.Sub(a).Cross(c.Sub(a)).Len()) / 2
	}
	return area
}
