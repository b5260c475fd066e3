package meshing

import (
	"reflect"
	"testing"

	"github.com/edaniels/golog"

	"blockmesh/pkg/geometry"
	"blockmesh/pkg/shape"
)

func TestPoolMatchesSerialMeshing(t *testing.T) {
	var s shape.Padded18
	cfg := geometry.RightHandedYUp()
	logger := golog.NewTestLogger(t)

	const jobs = 8
	grids := make([][]testVoxel, jobs)
	for i := range grids {
		grids[i] = randomGrid(s, int64(i))
	}
	min, max := fullBounds(s)

	pool := NewPool[testVoxel, testVoxel](3, jobs, &cfg, SkipTranslucentInterfaces, logger)
	defer pool.Shutdown()

	results := make(chan Result, jobs)
	for i := range grids {
		pool.SubmitWait(Job[testVoxel, testVoxel]{
			Chunk:  [3]int32{int32(i), 0, 0},
			Voxels: grids[i],
			Shape:  s,
			Min:    min,
			Max:    max,
			Result: results,
		})
	}

	serial := NewGreedyBuffer(int(s.Size()))
	for i := 0; i < jobs; i++ {
		res := <-results
		if res.Err != nil {
			t.Fatalf("chunk %v: %v", res.Chunk, res.Err)
		}
		if err := GreedyQuads[testVoxel](grids[res.Chunk[0]], s, min, max, &cfg, serial); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res.Quads, serial.Quads) {
			t.Fatalf("chunk %v: pooled quads differ from serial meshing", res.Chunk)
		}
	}
}

func TestPoolReportsContractViolations(t *testing.T) {
	var s shape.Padded18
	cfg := geometry.RightHandedYUp()
	pool := NewPool[testVoxel, testVoxel](1, 1, &cfg, SkipTranslucentInterfaces, golog.NewTestLogger(t))
	defer pool.Shutdown()

	results := make(chan Result, 1)
	pool.SubmitWait(Job[testVoxel, testVoxel]{
		Voxels: newGrid(s),
		Shape:  s,
		Min:    [3]uint32{0, 0, 0},
		Max:    [3]uint32{44, 17, 17},
		Result: results,
	})
	if res := <-results; res.Err == nil {
		t.Fatal("out-of-shape bounds: expected an error result")
	}
}

func TestPoolShutdownStopsIntake(t *testing.T) {
	var s shape.Padded18
	cfg := geometry.RightHandedYUp()
	pool := NewPool[testVoxel, testVoxel](1, 1, &cfg, SkipTranslucentInterfaces, golog.NewTestLogger(t))
	pool.Shutdown()

	if pool.Submit(Job[testVoxel, testVoxel]{Voxels: newGrid(s), Shape: s}) {
		t.Fatal("Submit succeeded after Shutdown")
	}
}
