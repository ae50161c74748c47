package material

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Exactly one of the reflected or refracted rays is returned, chosen with Schlick's probability.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	// Determine if we're entering or exiting the material
	var outwardNormal core.Vec3
	var niOverNt float64
	exiting := rayIn.Direction.Dot(hit.Normal) > 0
	if exiting {
		outwardNormal = hit.Normal.Negate()
		niOverNt = d.RefractiveIndex // glass to air
	} else {
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex // air to glass
	}

	reflected := Reflect(rayIn.Direction, hit.Normal)
	refracted, canRefract := Refract(rayIn.Direction, outwardNormal, niOverNt)

	var direction core.Vec3
	if !canRefract {
		// Total internal reflection
		direction = reflected
	} else {
		// Schlick needs the angle on the air side: incident when entering, transmitted when exiting
		cosine := -rayIn.Direction.Normalize().Dot(outwardNormal)
		if exiting {
			cosine = -refracted.Normalize().Dot(outwardNormal)
		}
		if Reflectance(math.Min(cosine, 1.0), d.RefractiveIndex) > sampler.Get1D() {
			direction = reflected
		} else {
			direction = refracted
		}
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractiveIndex float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractiveIndex) / (1 + refractiveIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
