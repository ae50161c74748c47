package scene

import (
	"fmt"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/loaders"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// NewJSONScene creates a scene from a JSON scene file.
// A positive width or height overrides the size stored in the file.
func NewJSONScene(filepath string, width, height int, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	jsonScene, err := loaders.LoadJSONScene(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene file: %w", err)
	}
	return FromJSON(jsonScene, width, height, cameraOverrides...)
}

// FromJSON converts a parsed scene description into a renderable scene.
// Spheres naming the same material share a single material instance.
func FromJSON(jsonScene *loaders.JSONScene, width, height int, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	width = firstPositive(width, jsonScene.Width, DefaultWidth)
	height = firstPositive(height, jsonScene.Height, DefaultHeight)

	s, err := newScene(jsonScene.Name, width, height, convertCamera(jsonScene.Camera), cameraOverrides...)
	if err != nil {
		return nil, err
	}

	if bg := jsonScene.Background; bg != nil {
		s.Background = integrator.Background{Horizon: bg.Horizon.Vec3(), Zenith: bg.Zenith.Vec3()}
	}
	s.SamplingConfig = renderer.MergeSamplingConfig(s.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: jsonScene.SamplesPerPixel,
		MaxDepth:        jsonScene.MaxDepth,
		Seed:            jsonScene.Seed,
	})

	// Convert all materials first
	materials := make(map[string]material.Material, len(jsonScene.Materials))
	for name, def := range jsonScene.Materials {
		mat, err := convertMaterial(def)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	for i, sphere := range jsonScene.Spheres {
		mat, ok := materials[sphere.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: %q", i, loaders.ErrUnknownMaterial, sphere.Material)
		}
		s.AddSphere(sphere.Center.Vec3(), sphere.Radius, mat)
	}

	return s, nil
}

func convertCamera(cam loaders.JSONCamera) renderer.CameraConfig {
	up := core.NewVec3(0, 1, 0)
	if cam.Up != nil {
		up = cam.Up.Vec3()
	}
	return renderer.CameraConfig{
		Center:        cam.LookFrom.Vec3(),
		LookAt:        cam.LookAt.Vec3(),
		Up:            up,
		VFov:          cam.VFov,
		Aperture:      cam.Aperture,
		FocusDistance: cam.FocusDistance,
	}
}

func convertMaterial(def loaders.JSONMaterial) (material.Material, error) {
	switch def.Type {
	case loaders.MaterialLambertian:
		return material.NewLambertian(def.Albedo.Vec3()), nil
	case loaders.MaterialMetal:
		return material.NewMetal(def.Albedo.Vec3(), def.Fuzziness), nil
	case loaders.MaterialDielectric:
		return material.NewDielectric(def.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("%w: %q", loaders.ErrUnknownMaterialType, def.Type)
	}
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}
