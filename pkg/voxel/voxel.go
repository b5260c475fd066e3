package voxel

// Visibility classifies how a voxel value participates in mesh generation.
type Visibility uint8

const (
	// Empty voxels produce no geometry.
	Empty Visibility = iota
	// Translucent voxels produce geometry that light can pass through.
	Translucent
	// Opaque voxels produce geometry and fully occlude adjacent faces.
	Opaque
)

func (v Visibility) String() string {
	switch v {
	case Empty:
		return "empty"
	case Translucent:
		return "translucent"
	case Opaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Voxel is the contract a voxel value must satisfy for face culling.
// The meshers never inspect voxel values beyond this interface.
type Voxel interface {
	Visibility() Visibility
}

// MergeVoxel extends Voxel with the equality class used by greedy merging.
// Two face-adjacent voxels may share one quad only when their merge values
// are equal, the merge values of the voxels their faces are seen through are
// equal, and both faces pass the same visibility test.
type MergeVoxel[K comparable] interface {
	Voxel

	// MergeValue is constant for every voxel in a merged quad. Typically a
	// material identifier so a single texture can cover the whole quad.
	MergeValue() K

	// MergeValueFacingNeighbor is the value this voxel contributes when it is
	// the neighbor a face is rendered against. It keeps faces seen through
	// different translucent media (say clear versus tinted glass) from being
	// merged into one quad.
	MergeValueFacingNeighbor() K
}
