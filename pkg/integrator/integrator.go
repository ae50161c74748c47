package integrator

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the linear radiance carried back along ray
	RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3
}

// Background is the vertical sky gradient returned for rays that escape the scene
type Background struct {
	Horizon core.Vec3 // Color for rays pointing straight down
	Zenith  core.Vec3 // Color for rays pointing straight up
}

// DefaultBackground returns the white-to-sky-blue gradient
func DefaultBackground() Background {
	return Background{
		Horizon: core.NewVec3(1.0, 1.0, 1.0),
		Zenith:  core.NewVec3(0.5, 0.7, 1.0),
	}
}

// Color returns the gradient color for the ray direction
func (b Background) Color(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return b.Horizon.Lerp(b.Zenith, t)
}
