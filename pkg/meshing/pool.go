package meshing

import (
	"context"
	"sync"

	"github.com/edaniels/golog"

	"blockmesh/pkg/geometry"
	"blockmesh/pkg/shape"
	"blockmesh/pkg/voxel"
)

// Job is a request to greedy-mesh one chunk. Every job must reference an
// independent voxel buffer; the pool supplies the output buffers.
type Job[K comparable, T voxel.MergeVoxel[K]] struct {
	// Chunk identifies the job in its Result, typically a chunk coordinate
	// hashed by the caller.
	Chunk [3]int32

	Voxels   []T
	Shape    shape.Shape
	Min, Max [3]uint32

	// Result receives exactly one Result when the job finishes.
	Result chan Result
}

// Result carries the meshed quads for one job. Quads is a deep copy, so it
// stays valid after the worker reuses its buffer for the next job.
type Result struct {
	Chunk [3]int32
	Quads QuadBuffer
	Err   error
}

// Pool meshes chunks on a fixed set of workers. Each worker owns one
// GreedyBuffer that it reuses across jobs, so steady-state meshing does not
// reallocate the visited mask. Jobs are independent; output per job is as
// deterministic as a direct GreedyQuads call.
type Pool[K comparable, T voxel.MergeVoxel[K]] struct {
	jobQueue chan Job[K, T]
	cfg      geometry.CoordinateConfig
	policy   TranslucencyPolicy
	logger   golog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewPool starts workers goroutines consuming a queue of queueSize jobs.
func NewPool[K comparable, T voxel.MergeVoxel[K]](
	workers, queueSize int,
	cfg *geometry.CoordinateConfig,
	policy TranslucencyPolicy,
	logger golog.Logger,
) *Pool[K, T] {
	ctx, cancel := context.WithCancel(context.Background())
	p := &Pool[K, T]{
		jobQueue: make(chan Job[K, T], queueSize),
		cfg:      *cfg,
		policy:   policy,
		logger:   logger,
		ctx:      ctx,
		cancel:   cancel,
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	return p
}

// Submit queues a job without blocking. It returns false when the queue is
// full or the pool is shut down.
func (p *Pool[K, T]) Submit(job Job[K, T]) bool {
	if p.ctx.Err() != nil {
		return false
	}
	select {
	case p.jobQueue <- job:
		return true
	default:
		return false
	}
}

// SubmitWait queues a job, blocking until there is room or the pool shuts
// down.
func (p *Pool[K, T]) SubmitWait(job Job[K, T]) {
	select {
	case p.jobQueue <- job:
	case <-p.ctx.Done():
	}
}

// QueueLen is the number of jobs waiting to be picked up.
func (p *Pool[K, T]) QueueLen() int {
	return len(p.jobQueue)
}

// Shutdown stops the workers and waits for in-flight jobs to finish.
func (p *Pool[K, T]) Shutdown() {
	p.cancel()
	p.wg.Wait()
}

func (p *Pool[K, T]) worker(id int) {
	defer p.wg.Done()

	buf := NewGreedyBuffer(0)
	p.logger.Debugf("mesh worker %d started", id)

	for {
		select {
		case job := <-p.jobQueue:
			err := GreedyQuadsWithPolicy[K](job.Voxels, job.Shape, job.Min, job.Max, &p.cfg, p.policy, buf)
			result := Result{Chunk: job.Chunk, Err: err}
			if err != nil {
				p.logger.Errorw("meshing failed", "chunk", job.Chunk, "error", err)
			} else {
				copyQuads(&result.Quads, &buf.Quads)
			}

			select {
			case job.Result <- result:
			case <-p.ctx.Done():
				return
			}
		case <-p.ctx.Done():
			return
		}
	}
}

func copyQuads(dst, src *QuadBuffer) {
	for i := range src.Groups {
		dst.Groups[i] = append(dst.Groups[i][:0], src.Groups[i]...)
	}
}
