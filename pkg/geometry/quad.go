package geometry

// Quad is the minimum voxel and extent of a merged face, without an
// orientation. Combine it with the matching Face of a CoordinateConfig to
// recover corner positions, normals, UVs and indices. Quads are plain values
// and are never mutated after being emitted.
type Quad struct {
	// Minimum is the grid coordinate of the quad's minimum voxel.
	Minimum [3]uint32
	// Width is the extent along the face's U axis, in voxels.
	Width uint32
	// Height is the extent along the face's V axis, in voxels.
	Height uint32
}

// UnitQuad is a quad covering a single block face.
type UnitQuad struct {
	// Minimum is the grid coordinate of the voxel owning the face.
	Minimum [3]uint32
}

// Quad widens a unit quad into the general form.
func (u UnitQuad) Quad() Quad {
	return Quad{Minimum: u.Minimum, Width: 1, Height: 1}
}
