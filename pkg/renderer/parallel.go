package renderer

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// ParallelConfig contains configuration for tiled parallel rendering
type ParallelConfig struct {
	TileSize   int // Size of each tile (32x32 recommended)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// ParallelRenderer splits the image into tiles and renders them on a worker pool.
// The scene and camera are shared read-only between workers.
type ParallelRenderer struct {
	scene         Scene
	width, height int
	sampling      SamplingConfig
	config        ParallelConfig
	logger        core.Logger
}

// NewParallelRenderer creates a new parallel renderer
func NewParallelRenderer(scene Scene, width, height int, sampling SamplingConfig, config ParallelConfig, logger core.Logger) *ParallelRenderer {
	if config.TileSize <= 0 {
		config.TileSize = DefaultParallelConfig().TileSize
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = core.NopLogger{}
	}

	return &ParallelRenderer{
		scene:    scene,
		width:    width,
		height:   height,
		sampling: sampling,
		config:   config,
		logger:   logger,
	}
}

// Render renders the whole image, blocking until every tile is done or ctx is cancelled.
// On cancellation the returned error wraps both ErrInterrupted and ctx.Err().
func (pr *ParallelRenderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if pr.width <= 0 || pr.height <= 0 {
		return nil, RenderStats{}, ErrInvalidSize
	}

	startTime := time.Now()
	tiles := NewTileGrid(pr.width, pr.height, pr.config.TileSize, pr.sampling.Seed)
	img := image.NewRGBA(image.Rect(0, 0, pr.width, pr.height))

	pool := NewWorkerPool(ctx, pr.scene, pr.width, pr.height, pr.sampling, pr.config.NumWorkers, len(tiles), pr.logger)
	pool.Start()
	defer pool.Stop()

	pr.logger.Printf("Rendering %dx%d at %d spp: %d tiles on %d workers\n",
		pr.width, pr.height, pr.sampling.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	submitted := 0
	for i, tile := range tiles {
		if err := pool.SubmitTask(TileTask{Tile: tile, TaskID: i, Image: img}); err != nil {
			break
		}
		submitted++
	}

	stats := RenderStats{Workers: make([]WorkerStats, pool.GetNumWorkers())}
	for i := range stats.Workers {
		stats.Workers[i].ID = i
	}

	// Wait for all submitted tiles; cancelled tiles come back with an error
	for i := 0; i < submitted; i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, ErrPoolClosed
		}
		if result.Error != nil {
			continue
		}

		stats.Merge(result.Stats)
		w := &stats.Workers[result.WorkerID]
		w.Tiles++
		w.Pixels += result.Stats.TotalPixels
		w.Samples += result.Stats.TotalSamples
		w.RenderTime += result.Elapsed
	}

	stats.RenderTime = time.Since(startTime)
	stats.Finalize()

	if err := ctx.Err(); err != nil {
		pr.logger.Printf("Rendering cancelled after %d of %d tiles\n", stats.Tiles, len(tiles))
		return nil, stats, fmt.Errorf("%w: %w", ErrInterrupted, err)
	}

	pr.logger.Printf("Render completed in %v (%.1f samples/pixel)\n", stats.RenderTime, stats.AverageSamples)
	return img, stats, nil
}
