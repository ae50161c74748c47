package scene

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"cornell-empty", "Cornell Empty"},
		{"three_balls", "Three Balls"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func TestCreate_Builtins(t *testing.T) {
	for _, info := range builtinScenes {
		t.Run(info.ID, func(t *testing.T) {
			s, err := Create(info.ID, 40, 20, 1)
			if err != nil {
				t.Fatalf("Create(%q) error: %v", info.ID, err)
			}
			if s.Camera == nil {
				t.Error("Expected a camera")
			}
			if s.Width != 40 || s.Height != 20 {
				t.Errorf("Expected 40x20, got %dx%d", s.Width, s.Height)
			}
		})
	}
}

func TestCreate_DefaultSize(t *testing.T) {
	s, err := Create("", 0, 0, 0)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if s.Name != "default" || s.Width != DefaultWidth || s.Height != DefaultHeight {
		t.Errorf("Expected default scene at %dx%d, got %q at %dx%d", DefaultWidth, DefaultHeight, s.Name, s.Width, s.Height)
	}
}

func TestCreate_CameraOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ball.json")
	content := `{"camera": {"lookFrom": [0, 0, 0], "lookAt": [0, 0, -1], "vfov": 90},
		"materials": {"red": {"type": "lambertian", "albedo": [0.8, 0.1, 0.1]}},
		"spheres": [{"center": [0, 0, -1], "radius": 0.5, "material": "red"}]}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write scene: %v", err)
	}

	for _, name := range []string{"default", "random-spheres", "empty", path} {
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, 20, 10, 3, renderer.CameraConfig{VFov: 25, Aperture: 0.4})
			if err != nil {
				t.Fatalf("Create(%q) error: %v", name, err)
			}
			if s.CameraConfig.VFov != 25 || s.Camera.LensRadius() != 0.2 {
				t.Errorf("Expected overrides to apply, got %+v", s.CameraConfig)
			}
			if s.CameraConfig.AspectRatio != 2 {
				t.Errorf("Expected aspect ratio from the image size, got %f", s.CameraConfig.AspectRatio)
			}
		})
	}
}

func TestCreate_UnknownScene(t *testing.T) {
	s, err := Create("cornell-box", 10, 10, 0)
	if !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
	if s != nil {
		t.Error("Expected nil scene")
	}
}

func TestListJSONScenes(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"b-scene.json": `{"materials": {}, "spheres": []}`,
		"a.json":       `{"name": "Alpha", "description": "first", "materials": {}, "spheres": []}`,
		"broken.json":  `{"spheres": [`,
		"notes.txt":    `not a scene`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}

	scenes, err := ListJSONScenes(dir)
	if err != nil {
		t.Fatalf("ListJSONScenes() error: %v", err)
	}
	if len(scenes) != 2 {
		t.Fatalf("Expected 2 scenes (broken file skipped), got %d: %+v", len(scenes), scenes)
	}

	if scenes[0].DisplayName != "Alpha" || scenes[0].Description != "first" {
		t.Errorf("Unexpected first scene %+v", scenes[0])
	}
	if scenes[1].DisplayName != "B Scene" || scenes[1].Type != "json" {
		t.Errorf("Unexpected second scene %+v", scenes[1])
	}
	if scenes[1].ID != filepath.Join(dir, "b-scene.json") {
		t.Errorf("Expected ID to be the file path, got %q", scenes[1].ID)
	}
}

func TestList(t *testing.T) {
	scenes, err := List("")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(scenes) != len(builtinScenes) {
		t.Errorf("Expected %d built-in scenes, got %d", len(builtinScenes), len(scenes))
	}

	// A missing directory is simply empty
	scenes, err = List(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(scenes) != len(builtinScenes) {
		t.Errorf("Expected only built-in scenes, got %d", len(scenes))
	}
}
