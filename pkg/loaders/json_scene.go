package loaders

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// Material types understood by the JSON scene format
const (
	MaterialLambertian = "lambertian"
	MaterialMetal      = "metal"
	MaterialDielectric = "dielectric"
)

// JSONVec is a 3-component vector written as a JSON array [x, y, z]
type JSONVec [3]float64

// Vec3 converts the array to a core.Vec3
func (v JSONVec) Vec3() core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

// JSONCamera describes the camera placement and lens
type JSONCamera struct {
	LookFrom      JSONVec  `json:"lookFrom"`
	LookAt        JSONVec  `json:"lookAt"`
	Up            *JSONVec `json:"up,omitempty"` // Defaults to +Y
	VFov          float64  `json:"vfov"`
	Aperture      float64  `json:"aperture,omitempty"`
	FocusDistance float64  `json:"focusDistance,omitempty"` // 0 = distance to lookAt
}

// JSONBackground describes the sky gradient
type JSONBackground struct {
	Horizon JSONVec `json:"horizon"`
	Zenith  JSONVec `json:"zenith"`
}

// JSONMaterial is a named material definition
type JSONMaterial struct {
	Type            string  `json:"type"`
	Albedo          JSONVec `json:"albedo,omitempty"`
	Fuzziness       float64 `json:"fuzziness,omitempty"`
	RefractiveIndex float64 `json:"refractiveIndex,omitempty"`
}

// JSONSphere places a sphere with a material referenced by name
type JSONSphere struct {
	Center   JSONVec `json:"center"`
	Radius   float64 `json:"radius"` // Negative radius flips the normal (hollow glass)
	Material string  `json:"material"`
}

// JSONScene is the parsed, validated contents of a scene file
type JSONScene struct {
	Name            string                  `json:"name,omitempty"`
	Description     string                  `json:"description,omitempty"`
	Width           int                     `json:"width,omitempty"`
	Height          int                     `json:"height,omitempty"`
	SamplesPerPixel int                     `json:"samplesPerPixel,omitempty"`
	MaxDepth        int                     `json:"maxDepth,omitempty"`
	Seed            int64                   `json:"seed,omitempty"`
	Camera          JSONCamera              `json:"camera"`
	Background      *JSONBackground         `json:"background,omitempty"`
	Materials       map[string]JSONMaterial `json:"materials"`
	Spheres         []JSONSphere            `json:"spheres"`
}

// ParseJSONScene parses and validates a JSON scene from an io.Reader
func ParseJSONScene(reader io.Reader) (*JSONScene, error) {
	decoder := json.NewDecoder(reader)
	decoder.DisallowUnknownFields()

	var scene JSONScene
	if err := decoder.Decode(&scene); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}

	if err := scene.validate(); err != nil {
		return nil, err
	}
	return &scene, nil
}

// LoadJSONScene loads and parses a JSON scene file
func LoadJSONScene(filename string) (*JSONScene, error) {
	if err := validateFilePath(filename); err != nil {
		return nil, err
	}

	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	scene, err := ParseJSONScene(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	if scene.Name == "" {
		base := filepath.Base(filename)
		scene.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return scene, nil
}

func (s *JSONScene) validate() error {
	if s.Width < 0 || s.Height < 0 {
		return fmt.Errorf("%w: negative image size %dx%d", ErrInvalidScene, s.Width, s.Height)
	}

	for name, mat := range s.Materials {
		switch mat.Type {
		case MaterialLambertian, MaterialMetal:
		case MaterialDielectric:
			if mat.RefractiveIndex <= 0 {
				return fmt.Errorf("%w: material %q needs a positive refractiveIndex", ErrInvalidScene, name)
			}
		default:
			return fmt.Errorf("%w: %q (material %q)", ErrUnknownMaterialType, mat.Type, name)
		}
	}

	for i, sphere := range s.Spheres {
		if sphere.Radius == 0 {
			return fmt.Errorf("%w: sphere %d", ErrZeroRadius, i)
		}
		if _, ok := s.Materials[sphere.Material]; !ok {
			return fmt.Errorf("%w: %q (sphere %d)", ErrUnknownMaterial, sphere.Material, i)
		}
	}

	return nil
}

// validateFilePath rejects paths that cannot be scene files
func validateFilePath(filename string) error {
	if filename == "" {
		return fmt.Errorf("%w: filename cannot be empty", ErrInvalidPath)
	}

	// Check for null bytes (could indicate path manipulation)
	if strings.Contains(filename, "\x00") {
		return fmt.Errorf("%w: null bytes not allowed", ErrInvalidPath)
	}

	if !strings.HasSuffix(strings.ToLower(filepath.Clean(filename)), ".json") {
		return fmt.Errorf("%w: only .json files are allowed", ErrInvalidPath)
	}

	return nil
}
