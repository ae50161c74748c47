package scene

import (
	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewDefaultScene creates the six sphere scene: a green ball on a grey ground between two
// metal balls, with a solid and a hollow glass bead in front, seen through a wide aperture.
func NewDefaultScene(width, height int, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	lookFrom := core.NewVec3(-2, 3, 1.5)
	lookAt := core.NewVec3(0, 0, -1)

	cameraConfig := renderer.CameraConfig{
		Center:        lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          45.0,
		Aperture:      1.1,                                // Strong depth of field blur
		FocusDistance: lookFrom.Subtract(lookAt).Length(), // Focus on the green ball
	}

	s, err := newScene("default", width, height, cameraConfig, cameraOverrides...)
	if err != nil {
		return nil, err
	}
	s.SamplingConfig.SamplesPerPixel = 100

	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2)))
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s.AddSphere(core.NewVec3(1.3, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3))
	s.AddSphere(core.NewVec3(-1.3, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.2), 1.0))
	s.AddSphere(core.NewVec3(-0.5, 0.15, -0.5), 0.15, material.NewDielectric(1.5))

	// Negative radius turns the normals inward: a bubble of glass
	s.AddSphere(core.NewVec3(0.3, -0.15, -0.5), -0.20, material.NewDielectric(1.3))

	return s, nil
}

// NewHollowGlassScene creates a glass shell around a diffuse core, built from a
// positive and a negative radius sphere sharing one dielectric material.
func NewHollowGlassScene(width, height int, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center:   core.NewVec3(0, 0.5, 1.5),
		LookAt:   core.NewVec3(0, 0, -1),
		Up:       core.NewVec3(0, 1, 0),
		VFov:     40.0,
		Aperture: 0.0,
	}

	s, err := newScene("hollow-glass", width, height, cameraConfig, cameraOverrides...)
	if err != nil {
		return nil, err
	}
	s.SamplingConfig.SamplesPerPixel = 200

	glass := material.NewDielectric(1.5)
	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, glass)
	s.AddSphere(core.NewVec3(0, 0, -1), -0.45, glass)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.25, material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	s.AddSphere(core.NewVec3(1.1, 0, -1.2), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.0))
	s.AddSphere(core.NewVec3(-1.1, 0, -1.2), 0.5, material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2)))

	return s, nil
}

// NewEmptyScene creates a scene with no surfaces and a pinhole camera.
// Every pixel is the background gradient.
func NewEmptyScene(width, height int, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	cameraConfig := renderer.CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   90.0,
	}

	s, err := newScene("empty", width, height, cameraConfig, cameraOverrides...)
	if err != nil {
		return nil, err
	}
	s.SamplingConfig.SamplesPerPixel = 1
	s.SamplingConfig.Jitter = false
	return s, nil
}
