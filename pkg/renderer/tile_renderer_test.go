package renderer

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// MockIntegrator for testing
type MockIntegrator struct {
	returnColor core.Vec3
	callCount   int
}

func (m *MockIntegrator) RayColor(ray core.Ray, world geometry.Shape, sampler core.Sampler) core.Vec3 {
	m.callCount++
	return m.returnColor
}

func TestNewTileGrid(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		tileSize      int
		expectedTiles int
	}{
		{"exact fit", 64, 64, 32, 4},
		{"ragged edges", 100, 50, 32, 8},
		{"single tile", 10, 10, 64, 1},
		{"one pixel", 1, 1, 32, 1},
		{"default tile size", 64, 32, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, tt.tileSize, 42)
			if len(tiles) != tt.expectedTiles {
				t.Fatalf("Expected %d tiles, got %d", tt.expectedTiles, len(tiles))
			}

			// Every pixel is covered exactly once
			covered := make([]int, tt.width*tt.height)
			for i, tile := range tiles {
				if tile.ID != i {
					t.Errorf("Expected tile ID %d, got %d", i, tile.ID)
				}
				if tile.Bounds.Empty() {
					t.Errorf("Tile %d has empty bounds", tile.ID)
				}
				for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
					for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
						covered[y*tt.width+x]++
					}
				}
			}
			for i, n := range covered {
				if n != 1 {
					t.Fatalf("Pixel (%d,%d) covered %d times", i%tt.width, i/tt.width, n)
				}
			}
		})
	}
}

func TestNewTile_SamplerSeededByID(t *testing.T) {
	a := NewTile(3, image.Rect(0, 0, 1, 1), 42)
	b := NewTile(3, image.Rect(0, 0, 1, 1), 42)
	c := NewTile(4, image.Rect(0, 0, 1, 1), 42)

	va, vb, vc := a.Sampler.Get1D(), b.Sampler.Get1D(), c.Sampler.Get1D()
	if va != vb {
		t.Errorf("Tiles with the same ID and seed should draw the same samples: %f vs %f", va, vb)
	}
	if va == vc {
		t.Errorf("Tiles with different IDs should draw different samples")
	}
}

func TestRenderBounds_OnlyWritesTile(t *testing.T) {
	scene := newMockScene(t, 1.0)
	raytracer := NewRaytracer(scene, 4, 4)
	raytracer.SetSamplingConfig(SamplingConfig{SamplesPerPixel: 3, Jitter: true, Seed: 1})

	mockIntegrator := &MockIntegrator{returnColor: core.NewVec3(1, 1, 1)}
	raytracer.SetIntegrator(mockIntegrator)

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	bounds := image.Rect(1, 1, 3, 4)
	stats, err := raytracer.RenderBounds(context.Background(), bounds, img, core.NewSeededSampler(42))
	if err != nil {
		t.Fatalf("RenderBounds failed: %v", err)
	}

	if mockIntegrator.callCount != bounds.Dx()*bounds.Dy()*3 {
		t.Errorf("Expected %d integrator calls, got %d", bounds.Dx()*bounds.Dy()*3, mockIntegrator.callCount)
	}
	if stats.TotalPixels != 6 || stats.TotalSamples != 18 || stats.AverageSamples != 3 {
		t.Errorf("Unexpected stats %+v", stats)
	}

	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			got := img.RGBAAt(x, y)
			inside := image.Pt(x, y).In(bounds)
			if inside && got != white {
				t.Errorf("Pixel (%d,%d) inside the tile should be white, got %v", x, y, got)
			}
			if !inside && got != (color.RGBA{}) {
				t.Errorf("Pixel (%d,%d) outside the tile should be untouched, got %v", x, y, got)
			}
		}
	}
}
