package shape

import (
	"testing"
)

func TestBoxRoundTripAllOrders(t *testing.T) {
	dims := [3]uint32{4, 3, 5}
	orders := []Order{OrderXYZ, OrderXZY, OrderYXZ, OrderYZX, OrderZXY, OrderZYX}

	for _, order := range orders {
		b, err := NewBox(dims, order)
		if err != nil {
			t.Fatalf("NewBox(%v, %v): %v", dims, order, err)
		}
		if b.Size() != 60 {
			t.Fatalf("order %v: size = %d, want 60", order, b.Size())
		}

		seen := make(map[uint32]bool, b.Size())
		for z := uint32(0); z < dims[2]; z++ {
			for y := uint32(0); y < dims[1]; y++ {
				for x := uint32(0); x < dims[0]; x++ {
					p := [3]uint32{x, y, z}
					i := b.Linearize(p)
					if i >= b.Size() {
						t.Fatalf("order %v: Linearize(%v) = %d out of range", order, p, i)
					}
					if seen[i] {
						t.Fatalf("order %v: index %d mapped twice", order, i)
					}
					seen[i] = true
					if got := b.Delinearize(i); got != p {
						t.Fatalf("order %v: Delinearize(%d) = %v, want %v", order, i, got, p)
					}
				}
			}
		}
	}
}

func TestBoxOrderPicksInnermostAxis(t *testing.T) {
	dims := [3]uint32{8, 8, 8}

	// The innermost axis must have stride 1.
	cases := []struct {
		order Order
		step  [3]uint32
	}{
		{OrderXYZ, [3]uint32{0, 0, 1}},
		{OrderZYX, [3]uint32{1, 0, 0}},
		{OrderXZY, [3]uint32{0, 1, 0}},
	}
	for _, tc := range cases {
		b, err := NewBox(dims, tc.order)
		if err != nil {
			t.Fatal(err)
		}
		if got := b.Linearize(tc.step); got != 1 {
			t.Fatalf("order %v: stride of %v = %d, want 1", tc.order, tc.step, got)
		}
	}
}

func TestBoxRejectsBadExtents(t *testing.T) {
	if _, err := NewBox([3]uint32{0, 4, 4}, OrderXYZ); err == nil {
		t.Fatal("zero extent: expected error")
	}
	if _, err := NewBox([3]uint32{1 << 12, 1 << 12, 1 << 12}, OrderXYZ); err == nil {
		t.Fatal("uint32 overflow: expected error")
	}
	if _, err := NewBox([3]uint32{4, 4, 4}, Order(42)); err == nil {
		t.Fatal("bogus order: expected error")
	}
}

func TestBoxInBounds(t *testing.T) {
	b, err := NewBox([3]uint32{4, 3, 5}, OrderXYZ)
	if err != nil {
		t.Fatal(err)
	}
	if !b.InBounds([3]uint32{3, 2, 4}) {
		t.Fatal("max corner should be in bounds")
	}
	for _, p := range [][3]uint32{{4, 0, 0}, {0, 3, 0}, {0, 0, 5}} {
		if b.InBounds(p) {
			t.Fatalf("%v should be out of bounds", p)
		}
	}
}

func TestWrappingStrideActsAsSubtraction(t *testing.T) {
	// The meshers linearize signed normals by casting to uint32 and relying
	// on wraparound; adding that stride must step one voxel backwards.
	b, err := NewBox([3]uint32{6, 7, 8}, OrderXYZ)
	if err != nil {
		t.Fatal(err)
	}
	minusOne := int32(-1)
	negY := b.Linearize([3]uint32{0, uint32(minusOne), 0})
	at := b.Linearize([3]uint32{2, 3, 4})
	want := b.Linearize([3]uint32{2, 2, 4})
	if got := at + negY; got != want {
		t.Fatalf("wrapped -Y stride: got %d, want %d", got, want)
	}
}

func TestFixedShapesMatchBox(t *testing.T) {
	box18, err := NewBox([3]uint32{18, 18, 18}, OrderZYX)
	if err != nil {
		t.Fatal(err)
	}
	box34, err := NewBox([3]uint32{34, 34, 34}, OrderZYX)
	if err != nil {
		t.Fatal(err)
	}

	fixed := []struct {
		name string
		s    Shape
		box  *Box
	}{
		{"Padded18", Padded18{}, box18},
		{"Padded34", Padded34{}, box34},
	}
	for _, tc := range fixed {
		if tc.s.Size() != tc.box.Size() {
			t.Fatalf("%s: size %d != box %d", tc.name, tc.s.Size(), tc.box.Size())
		}
		dims := tc.s.Dims()
		for z := uint32(0); z < dims[2]; z += 5 {
			for y := uint32(0); y < dims[1]; y += 3 {
				for x := uint32(0); x < dims[0]; x++ {
					p := [3]uint32{x, y, z}
					i := tc.s.Linearize(p)
					if j := tc.box.Linearize(p); i != j {
						t.Fatalf("%s: Linearize(%v) = %d, box says %d", tc.name, p, i, j)
					}
					if got := tc.s.Delinearize(i); got != p {
						t.Fatalf("%s: Delinearize(%d) = %v, want %v", tc.name, i, got, p)
					}
				}
			}
		}
	}
}
