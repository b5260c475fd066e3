package shape

// The fixed shapes cover the common chunk sizes of a voxel engine: a 16 or 32
// voxel cube plus the one-voxel halo the meshers require on every side. Their
// dimensions are untyped constants, so index math on them constant-folds and
// inlines where a Box has to load strides from memory. X varies fastest.

const (
	// Padded18Dim is the edge length of Padded18 (16 + 2 halo voxels).
	Padded18Dim = 18
	// Padded34Dim is the edge length of Padded34 (32 + 2 halo voxels).
	Padded34Dim = 34
)

// Padded18 indexes an 18x18x18 volume: a 16^3 chunk with a one-voxel halo.
type Padded18 struct{}

func (Padded18) Linearize(p [3]uint32) uint32 {
	return p[0] + Padded18Dim*p[1] + Padded18Dim*Padded18Dim*p[2]
}

func (Padded18) Delinearize(i uint32) [3]uint32 {
	z := i / (Padded18Dim * Padded18Dim)
	i -= z * Padded18Dim * Padded18Dim
	return [3]uint32{i % Padded18Dim, i / Padded18Dim, z}
}

func (Padded18) Size() uint32 {
	return Padded18Dim * Padded18Dim * Padded18Dim
}

func (Padded18) Dims() [3]uint32 {
	return [3]uint32{Padded18Dim, Padded18Dim, Padded18Dim}
}

func (Padded18) InBounds(p [3]uint32) bool {
	return p[0] < Padded18Dim && p[1] < Padded18Dim && p[2] < Padded18Dim
}

// Padded34 indexes a 34x34x34 volume: a 32^3 chunk with a one-voxel halo.
type Padded34 struct{}

func (Padded34) Linearize(p [3]uint32) uint32 {
	return p[0] + Padded34Dim*p[1] + Padded34Dim*Padded34Dim*p[2]
}

func (Padded34) Delinearize(i uint32) [3]uint32 {
	z := i / (Padded34Dim * Padded34Dim)
	i -= z * Padded34Dim * Padded34Dim
	return [3]uint32{i % Padded34Dim, i / Padded34Dim, z}
}

func (Padded34) Size() uint32 {
	return Padded34Dim * Padded34Dim * Padded34Dim
}

func (Padded34) Dims() [3]uint32 {
	return [3]uint32{Padded34Dim, Padded34Dim, Padded34Dim}
}

func (Padded34) InBounds(p [3]uint32) bool {
	return p[0] < Padded34Dim && p[1] < Padded34Dim && p[2] < Padded34Dim
}
