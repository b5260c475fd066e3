// Package shape maps 3D voxel coordinates to offsets in a flat buffer.
//
// Both meshing algorithms address voxels exclusively through the Shape
// interface, so the same algorithm works against any compatible flat storage.
// Index arithmetic is defined to wrap on uint32 overflow; the meshers rely on
// this to turn a negative unit step into an additive stride.
package shape

// Shape describes a 3D axis-aligned extent and its linearization scheme.
//
// Linearize and Delinearize are inverses of each other over the coordinate
// range [0, Dims). Out-of-range coordinates are a caller error: Linearize
// wraps rather than rejects, so callers must check InBounds first.
type Shape interface {
	// Linearize maps a coordinate to its flat buffer offset using wrapping
	// uint32 arithmetic.
	Linearize(p [3]uint32) uint32

	// Delinearize maps an in-range flat offset back to its coordinate.
	Delinearize(i uint32) [3]uint32

	// Size is the total number of voxels addressed by the shape.
	Size() uint32

	// Dims returns the extent along X, Y and Z, including any padding.
	Dims() [3]uint32

	// InBounds reports whether p addresses a voxel inside the shape.
	InBounds(p [3]uint32) bool
}

// Order selects which axis owns which stride in a linearized buffer. The
// name lists axes from outermost (largest stride) to innermost (stride 1),
// so OrderXYZ keeps runs of Z contiguous in memory and OrderZYX keeps runs
// of X contiguous.
type Order uint8

const (
	OrderXYZ Order = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

func (o Order) String() string {
	switch o {
	case OrderXYZ:
		return "XYZ"
	case OrderXZY:
		return "XZY"
	case OrderYXZ:
		return "YXZ"
	case OrderYZX:
		return "YZX"
	case OrderZXY:
		return "ZXY"
	case OrderZYX:
		return "ZYX"
	default:
		return "invalid"
	}
}

// axes returns the axis indices from outermost to innermost.
func (o Order) axes() ([3]int, bool) {
	switch o {
	case OrderXYZ:
		return [3]int{0, 1, 2}, true
	case OrderXZY:
		return [3]int{0, 2, 1}, true
	case OrderYXZ:
		return [3]int{1, 0, 2}, true
	case OrderYZX:
		return [3]int{1, 2, 0}, true
	case OrderZXY:
		return [3]int{2, 0, 1}, true
	case OrderZYX:
		return [3]int{2, 1, 0}, true
	default:
		return [3]int{}, false
	}
}
