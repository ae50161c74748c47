package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile   *Tile
	TaskID int         // For deterministic ordering
	Image  *image.RGBA // Shared image to write to
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID   int
	WorkerID int
	Stats    RenderStats
	Elapsed  time.Duration
	Error    error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	taskQueue   chan TileTask
	resultQueue chan TileResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
	ctx         context.Context
	logger      core.Logger

	mu      sync.Mutex
	started bool
	stopped bool
}

// Worker handles individual tile rendering tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	ctx         context.Context
	logger      core.Logger
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Each worker owns a raytracer configured with the same sampling settings; the scene is shared read-only.
func NewWorkerPool(ctx context.Context, scene Scene, width, height int, config SamplingConfig, numWorkers, queueSize int, logger core.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	wp := &WorkerPool{
		taskQueue:   make(chan TileTask, queueSize),   // Buffer for all tiles
		resultQueue: make(chan TileResult, queueSize), // Buffer for all results
		numWorkers:  numWorkers,
		ctx:         ctx,
		logger:      logger,
	}

	for i := 0; i < numWorkers; i++ {
		raytracer := NewRaytracer(scene, width, height)
		raytracer.SetSamplingConfig(config)
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   raytracer,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
			ctx:         ctx,
			logger:      logger,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	wp.mu.Lock()
	defer wp.mu.Unlock()
	if wp.started {
		return
	}
	wp.started = true

	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop gracefully shuts down all workers. It is safe to call more than once.
func (wp *WorkerPool) Stop() {
	wp.mu.Lock()
	if wp.stopped {
		wp.mu.Unlock()
		return
	}
	wp.stopped = true
	wp.mu.Unlock()

	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) error {
	wp.mu.Lock()
	stopped := wp.stopped
	wp.mu.Unlock()
	if stopped {
		return ErrPoolClosed
	}

	select {
	case wp.taskQueue <- task:
		return nil
	case <-wp.ctx.Done():
		return wp.ctx.Err()
	}
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Drain remaining tasks without rendering once cancelled
		if err := w.ctx.Err(); err != nil {
			w.resultQueue <- TileResult{TaskID: task.TaskID, WorkerID: w.ID, Error: err}
			continue
		}

		start := time.Now()

		// Each tile has non-overlapping bounds, so writing to the shared image is safe
		stats, err := w.raytracer.RenderBounds(w.ctx, task.Tile.Bounds, task.Image, task.Tile.Sampler)
		if err != nil {
			w.resultQueue <- TileResult{TaskID: task.TaskID, WorkerID: w.ID, Error: err}
			continue
		}
		stats.Tiles = 1

		elapsed := time.Since(start)
		w.logger.Printf("worker %d: tile %d %v done in %v\n", w.ID, task.Tile.ID, task.Tile.Bounds, elapsed)

		w.resultQueue <- TileResult{
			TaskID:   task.TaskID,
			WorkerID: w.ID,
			Stats:    stats,
			Elapsed:  elapsed,
		}
	}
}
