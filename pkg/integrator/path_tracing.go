package integrator

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

const (
	// DefaultMaxDepth is the bounce limit after which no more light is gathered
	DefaultMaxDepth = 50

	// ShadowEpsilon is the minimum hit distance, suppressing self-intersection at the ray origin
	ShadowEpsilon = 0.001
)

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	MaxDepth   int
	Background Background
}

// NewPathTracingIntegrator creates a new path tracing integrator.
// A non-positive maxDepth selects DefaultMaxDepth.
func NewPathTracingIntegrator(maxDepth int, background Background) *PathTracingIntegrator {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// RayColor computes the color for a single ray.
// The recurrence color = attenuation ⊙ RayColor(scattered, depth+1) is unrolled into a loop
// carrying the accumulated attenuation.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	throughput := core.NewVec3(1, 1, 1)

	for depth := 0; depth < pt.MaxDepth; depth++ {
		hit, isHit := world.Hit(ray, ShadowEpsilon, math.Inf(1))
		if !isHit {
			return throughput.MultiplyVec(pt.Background.Color(ray))
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray
			return core.Vec3{}
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// Exceeded the bounce limit
	return core.Vec3{}
}
