package material

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo    core.Vec3 // Metal color
	Fuzziness float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzziness float64) *Metal {
	// Clamp fuzziness to valid range
	if fuzziness > 1.0 {
		fuzziness = 1.0
	}
	if fuzziness < 0.0 {
		fuzziness = 0.0
	}
	return &Metal{Albedo: albedo, Fuzziness: fuzziness}
}

// Scatter implements the Material interface for metal scattering
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Calculate perfect reflection direction
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)

	// Add fuzziness by perturbing the reflection direction
	if m.Fuzziness > 0 {
		perturbation := core.RandomInUnitSphere(sampler).Multiply(min(m.Fuzziness, 1.0))
		reflected = reflected.Add(perturbation)
	}

	scattered := core.NewRay(hit.Point, reflected)

	// Rays scattered into the surface are absorbed
	scatters := scattered.Direction.Dot(hit.Normal) > 0

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, scatters
}
