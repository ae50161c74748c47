package cmd

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"os/signal"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	out := ctx.String("out")
	toStdout := out == "-"
	if toStdout {
		// Keep stdout clean for the image data
		log.SetSink(os.Stderr)
	}
	setupLogging(ctx)

	// Fail on a bad output path before spending time rendering
	format := output.PPM
	if !toStdout {
		var err error
		if format, err = output.FormatFromPath(out); err != nil {
			return err
		}
	}

	sc, err := scene.Create(ctx.String("scene"), ctx.Int("width"), ctx.Int("height"), ctx.Int64("seed"),
		renderer.CameraConfig{
			VFov:          ctx.Float64("vfov"),
			Aperture:      ctx.Float64("aperture"),
			FocusDistance: ctx.Float64("focus-distance"),
		})
	if err != nil {
		return err
	}

	sampling := renderer.MergeSamplingConfig(sc.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: ctx.Int("spp"),
		MaxDepth:        ctx.Int("max-depth"),
		Seed:            ctx.Int64("seed"),
	})
	if ctx.Bool("no-jitter") {
		sampling.Jitter = false
	}

	logger.Noticef("rendering scene %q at %dx%d, %d spp, max depth %d",
		sc.Name, sc.Width, sc.Height, sampling.SamplesPerPixel, sampling.MaxDepth)

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := render(renderCtx, sc, sampling, renderer.ParallelConfig{
		TileSize:   ctx.Int("tile-size"),
		NumWorkers: ctx.Int("workers"),
	})
	if err != nil {
		if errors.Is(err, renderer.ErrInterrupted) {
			logger.Warning("render interrupted, no image written")
		}
		return err
	}

	if toStdout {
		err = output.EncodeImage(os.Stdout, format, img)
	} else {
		err = output.WriteFile(out, img)
	}
	if err != nil {
		return err
	}

	displayFrameStats(stats)
	if !toStdout {
		logger.Noticef("image saved as %s", out)
	}
	return nil
}

// render runs the single-threaded loop for one worker and the tiled renderer otherwise
func render(ctx context.Context, sc *scene.Scene, sampling renderer.SamplingConfig, parallel renderer.ParallelConfig) (*image.RGBA, renderer.RenderStats, error) {
	if parallel.NumWorkers == 1 {
		raytracer := renderer.NewRaytracer(sc, sc.Width, sc.Height)
		raytracer.SetSamplingConfig(sampling)

		start := time.Now()
		img, stats, err := raytracer.RenderPass(ctx)
		stats.RenderTime = time.Since(start)
		return img, stats, err
	}

	pr := renderer.NewParallelRenderer(sc, sc.Width, sc.Height, sampling, parallel, log.NewPrintfLogger("renderer"))
	return pr.Render(ctx)
}

func displayFrameStats(stats renderer.RenderStats) {
	logger.Noticef("frame statistics\n%s", renderer.FormatStats(stats))
}

// List built-in scenes and scene files.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	scenes, err := scene.List(ctx.String("dir"))
	if err != nil {
		return err
	}

	fmt.Fprint(ctx.App.Writer, formatSceneList(scenes))
	return nil
}
