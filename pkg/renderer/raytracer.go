package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Jitter          bool  // Randomly offset each sample within its pixel
	Seed            int64 // Seed for the random samplers
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
		Jitter:          true,
		Seed:            42,
	}
}

// MergeSamplingConfig overlays the non-zero fields of override onto base.
// Jitter is a bool and is always taken from base.
func MergeSamplingConfig(base, override SamplingConfig) SamplingConfig {
	result := base
	if override.SamplesPerPixel > 0 {
		result.SamplesPerPixel = override.SamplesPerPixel
	}
	if override.MaxDepth > 0 {
		result.MaxDepth = override.MaxDepth
	}
	if override.Seed != 0 {
		result.Seed = override.Seed
	}
	return result
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackground() integrator.Background
	GetWorld() geometry.Shape
}

// Raytracer samples pixels of a scene through an integrator
type Raytracer struct {
	scene      Scene
	world      geometry.Shape
	camera     *Camera
	width      int
	height     int
	config     SamplingConfig
	integrator integrator.Integrator
	sampler    core.Sampler
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	rt := &Raytracer{
		scene:  scene,
		world:  scene.GetWorld(),
		camera: scene.GetCamera(),
		width:  width,
		height: height,
	}
	rt.SetSamplingConfig(DefaultSamplingConfig())
	return rt
}

// SetSamplingConfig updates the sampling configuration and reseeds the raytracer's own sampler
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
	rt.integrator = integrator.NewPathTracingIntegrator(config.MaxDepth, rt.scene.GetBackground())
	rt.sampler = core.NewSeededSampler(config.Seed)
}

// MergeSamplingConfig applies the non-zero fields of config to the current configuration
func (rt *Raytracer) MergeSamplingConfig(config SamplingConfig) {
	rt.SetSamplingConfig(MergeSamplingConfig(rt.config, config))
}

// SetIntegrator replaces the light transport algorithm
func (rt *Raytracer) SetIntegrator(integ integrator.Integrator) {
	rt.integrator = integ
}

// SamplingConfig returns the current sampling configuration
func (rt *Raytracer) SamplingConfig() SamplingConfig {
	return rt.config
}

// Size returns the image dimensions
func (rt *Raytracer) Size() (width, height int) {
	return rt.width, rt.height
}

// SamplePixel averages SamplesPerPixel radiance estimates for pixel (x, y).
// y = 0 is the bottom row of the image plane.
func (rt *Raytracer) SamplePixel(x, y int, sampler core.Sampler) core.Vec3 {
	samples := max(1, rt.config.SamplesPerPixel)
	colorAccum := core.Vec3{}

	for sample := 0; sample < samples; sample++ {
		jx, jy := 0.5, 0.5
		if rt.config.Jitter {
			j := sampler.Get2D()
			jx, jy = j.X, j.Y
		}

		// Convert pixel coordinates to normalized image-plane coordinates
		s := (float64(x) + jx) / float64(rt.width)
		t := (float64(y) + jy) / float64(rt.height)

		ray := rt.camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, sampler))
	}

	return colorAccum.Multiply(1.0 / float64(samples))
}

// Pixel returns the tone-mapped color of pixel (x, y) using the raytracer's own sampler.
// It is the pixel function handed to image encoders and is not safe for concurrent use.
func (rt *Raytracer) Pixel(x, y int) color.RGBA {
	return ToColor(rt.SamplePixel(x, y, rt.sampler))
}

// ToColor converts a linear Vec3 color to RGBA with gamma 2 correction and clamping
func ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp negatives before the square root, then clamp to the displayable range
	colorVec = colorVec.Clamp(0.0, 1.0).Sqrt().Clamp(0.0, 1.0)

	return color.RGBA{
		R: uint8(255.99 * colorVec.X),
		G: uint8(255.99 * colorVec.Y),
		B: uint8(255.99 * colorVec.Z),
		A: 255,
	}
}

// RenderBounds renders the image-space rectangle bounds into img.
// Image rows run top to bottom, so image row j maps to image-plane row height-1-j.
// ctx is checked before each row; on cancellation the error wraps ErrInterrupted and ctx.Err().
func (rt *Raytracer) RenderBounds(ctx context.Context, bounds image.Rectangle, img *image.RGBA, sampler core.Sampler) (RenderStats, error) {
	stats := RenderStats{}
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		if err := ctx.Err(); err != nil {
			stats.Finalize()
			return stats, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			pixelColor := ToColor(rt.SamplePixel(i, rt.height-1-j, sampler))
			img.SetRGBA(i, j, pixelColor)
			stats.AddPixel(max(1, rt.config.SamplesPerPixel))
		}
	}
	stats.Finalize()
	return stats, nil
}

// RenderPass renders the whole image on the calling goroutine.
// A cancelled render returns no image.
func (rt *Raytracer) RenderPass(ctx context.Context) (*image.RGBA, RenderStats, error) {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))
	stats, err := rt.RenderBounds(ctx, img.Bounds(), img, rt.sampler)
	if err != nil {
		return nil, stats, err
	}
	return img, stats, nil
}
