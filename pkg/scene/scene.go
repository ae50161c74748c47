package scene

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Default image size, matching the original 2:1 output
const (
	DefaultWidth  = 400
	DefaultHeight = 200
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Shapes         []geometry.Shape // Objects in the scene
	Background     integrator.Background
	SamplingConfig renderer.SamplingConfig
	Width          int
	Height         int
}

// newScene builds the camera for a scene, deriving the aspect ratio from the image size
func newScene(name string, width, height int, cameraConfig renderer.CameraConfig, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("scene %q: %w", name, renderer.ErrInvalidSize)
	}

	cameraConfig.AspectRatio = float64(width) / float64(height)
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	camera, err := renderer.NewCamera(cameraConfig)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", name, err)
	}

	return &Scene{
		Name:           name,
		Camera:         camera,
		CameraConfig:   cameraConfig,
		Shapes:         make([]geometry.Shape, 0),
		Background:     integrator.DefaultBackground(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
		Width:          width,
		Height:         height,
	}, nil
}

// AddSphere adds a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, mat material.Material) {
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius, mat))
}

// World returns the scene's shapes as a single hittable list
func (s *Scene) World() *geometry.ShapeList {
	return geometry.NewShapeList(s.Shapes...)
}

// GetWorld implements renderer.Scene
func (s *Scene) GetWorld() geometry.Shape {
	return s.World()
}

// GetCamera implements renderer.Scene
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackground implements renderer.Scene
func (s *Scene) GetBackground() integrator.Background {
	return s.Background
}
