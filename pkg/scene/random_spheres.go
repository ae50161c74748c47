package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewRandomSpheresScene creates the classic cover scene: a field of small random
// spheres around three large ones. The layout is fully determined by seed.
func NewRandomSpheresScene(width, height int, seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:        core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	s, err := newScene("random-spheres", width, height, cameraConfig, cameraOverrides...)
	if err != nil {
		return nil, err
	}
	s.SamplingConfig.SamplesPerPixel = 50
	s.SamplingConfig.Seed = seed

	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))

	sampler := core.NewSeededSampler(seed)
	clearing := core.NewVec3(4, 0.2, 0)
	glass := material.NewDielectric(1.5)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			offset := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*offset.X, 0.2, float64(b)+0.9*offset.Y)

			// Keep the area around the big metal sphere clear
			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				s.AddSphere(center, 0.2, material.NewLambertian(albedo))
			case chooseMat < 0.95:
				albedo := sampler.Get3D().Multiply(0.5).Add(core.NewVec3(0.5, 0.5, 0.5))
				fuzz := 0.5 * sampler.Get1D()
				s.AddSphere(center, 0.2, material.NewMetal(albedo, fuzz))
			default:
				s.AddSphere(center, 0.2, glass)
			}
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, glass)
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))

	return s, nil
}
