package scene

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-weekend-raytracer/pkg/loaders"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, passed to Create
	Name        string `json:"name"`        // Scene name
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "json"
	FilePath    string `json:"filePath"`    // Path to JSON file (json type only)
}

// builtinScenes lists the scenes compiled into the program, in display order
var builtinScenes = []SceneInfo{
	{
		ID:          "default",
		Name:        "Default Scene",
		DisplayName: "Default Scene",
		Description: "Six spheres: diffuse, two metals, solid and hollow glass, wide aperture",
		Type:        "builtin",
	},
	{
		ID:          "hollow-glass",
		Name:        "Hollow Glass",
		DisplayName: "Hollow Glass",
		Description: "Glass shell around a diffuse core between metal and diffuse spheres",
		Type:        "builtin",
	},
	{
		ID:          "random-spheres",
		Name:        "Random Spheres",
		DisplayName: "Random Spheres",
		Description: "Field of small random spheres around three large ones",
		Type:        "builtin",
	},
	{
		ID:          "empty",
		Name:        "Empty",
		DisplayName: "Empty",
		Description: "Background gradient only",
		Type:        "builtin",
	},
}

// Create builds a scene by ID or from a path ending in .json.
// seed only affects procedurally generated scenes. Non-zero fields of
// cameraOverrides replace the scene's own camera settings.
func Create(name string, width, height int, seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return NewJSONScene(name, width, height, cameraOverrides...)
	}

	width = firstPositive(width, DefaultWidth)
	height = firstPositive(height, DefaultHeight)

	switch name {
	case "default", "":
		return NewDefaultScene(width, height, cameraOverrides...)
	case "hollow-glass":
		return NewHollowGlassScene(width, height, cameraOverrides...)
	case "random-spheres":
		return NewRandomSpheresScene(width, height, seed, cameraOverrides...)
	case "empty":
		return NewEmptyScene(width, height, cameraOverrides...)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
}

// List returns the built-in scenes followed by JSON scenes found in dir, if any
func List(dir string) ([]SceneInfo, error) {
	scenes := append([]SceneInfo(nil), builtinScenes...)
	if dir == "" {
		return scenes, nil
	}

	jsonScenes, err := ListJSONScenes(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list JSON scenes: %w", err)
	}
	return append(scenes, jsonScenes...), nil
}

// ListJSONScenes scans dir for scene files and returns their metadata sorted by display name.
// Files that fail to parse are skipped.
func ListJSONScenes(dir string) ([]SceneInfo, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		jsonScene, err := loaders.LoadJSONScene(filePath)
		if err != nil {
			continue
		}

		base := filepath.Base(filePath)
		nameWithoutExt := strings.TrimSuffix(base, filepath.Ext(base))
		name := jsonScene.Name
		if name == nameWithoutExt {
			name = titleCase(nameWithoutExt)
		}

		scenes = append(scenes, SceneInfo{
			ID:          filePath,
			Name:        name,
			DisplayName: name,
			Description: jsonScene.Description,
			Type:        "json",
			FilePath:    filePath,
		})
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].DisplayName < scenes[j].DisplayName
	})

	return scenes, nil
}

// titleCase converts a filename-style string to title case
// e.g., "cornell-empty" -> "Cornell Empty"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
