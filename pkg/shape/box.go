package shape

import (
	"math"

	"github.com/pkg/errors"
)

// Box is a runtime-sized shape with a configurable axis order. Use it when
// chunk dimensions are only known at runtime; prefer one of the fixed shapes
// when they are known up front.
type Box struct {
	dims    [3]uint32
	strides [3]uint32
	outer   [3]int
}

// NewBox builds a shape for the given extent. The order decides the memory
// layout, i.e. which axis varies fastest in the flat buffer.
func NewBox(dims [3]uint32, order Order) (*Box, error) {
	axes, ok := order.axes()
	if !ok {
		return nil, errors.Errorf("invalid axis order %d", order)
	}
	size := uint64(1)
	for i, d := range dims {
		if d == 0 {
			return nil, errors.Errorf("shape extent must be positive on every axis, got %v", dims)
		}
		size *= uint64(d)
		if size > math.MaxUint32 {
			return nil, errors.Errorf("shape %v with %d voxels overflows uint32 indexing", dims, size)
		}
		_ = i
	}

	b := &Box{dims: dims, outer: axes}
	stride := uint32(1)
	for i := 2; i >= 0; i-- {
		a := axes[i]
		b.strides[a] = stride
		stride *= dims[a]
	}
	return b, nil
}

func (b *Box) Linearize(p [3]uint32) uint32 {
	return p[0]*b.strides[0] + p[1]*b.strides[1] + p[2]*b.strides[2]
}

func (b *Box) Delinearize(i uint32) [3]uint32 {
	var p [3]uint32
	for _, a := range b.outer {
		p[a] = i / b.strides[a]
		i -= p[a] * b.strides[a]
	}
	return p
}

func (b *Box) Size() uint32 {
	return b.dims[0] * b.dims[1] * b.dims[2]
}

func (b *Box) Dims() [3]uint32 {
	return b.dims
}

func (b *Box) InBounds(p [3]uint32) bool {
	return p[0] < b.dims[0] && p[1] < b.dims[1] && p[2] < b.dims[2]
}
