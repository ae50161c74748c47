package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

var testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)

	tests := []struct {
		name string
		ray  core.Ray
	}{
		{"passes beside", core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))},
		{"points away from outside", core.NewRay(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 1))},
		{"points away diagonally", core.NewRay(core.NewVec3(2, 2, 2), core.NewVec3(1, 1, 1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, 0, math.Inf(1))
			if isHit {
				t.Errorf("Expected miss, but got hit at t=%f", hit.T)
			}
			if hit != nil {
				t.Errorf("Expected nil hit record on miss")
			}
		})
	}
}

func TestSphere_Hit_NearRootFirst(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name           string
		tMin, tMax     float64
		expectHit      bool
		expectedT      float64
		expectedPoint  core.Vec3
		expectedNormal core.Vec3
	}{
		{"first root", 0, 2, true, 1, core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)},
		{"skip first root", 2, 4, true, 3, core.NewVec3(0, 0, -3), core.NewVec3(0, 0, -1)},
		{"skip both roots", 4, 10, false, 0, core.Vec3{}, core.Vec3{}},
		{"bounds are exclusive", 1, 3, false, 0, core.Vec3{}, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, isHit)
			}
			if !tt.expectHit {
				return
			}
			if hit.T != tt.expectedT {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !hit.Point.Equals(tt.expectedPoint) {
				t.Errorf("Expected point %v, got %v", tt.expectedPoint, hit.Point)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.Material != testMaterial {
				t.Errorf("Hit record should reference the sphere material")
			}
		})
	}
}

func TestSphere_Hit_FromInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit from inside")
	}
	if math.Abs(hit.T-1) > 1e-12 {
		t.Errorf("Expected t=1, got %f", hit.T)
	}
	// Outward normal is not flipped toward the ray
	if !hit.Normal.ApproxEquals(core.NewVec3(0, 0, 1), 1e-12) {
		t.Errorf("Expected outward normal (0,0,1), got %v", hit.Normal)
	}
}

func TestSphere_Hit_NegativeRadiusFlipsNormal(t *testing.T) {
	center := core.NewVec3(0, 0, -2)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	positive, okP := NewSphere(center, 1.0, testMaterial).Hit(ray, 0, math.Inf(1))
	negative, okN := NewSphere(center, -1.0, testMaterial).Hit(ray, 0, math.Inf(1))
	if !okP || !okN {
		t.Fatal("Both spheres should be hit")
	}

	if !positive.Point.Equals(negative.Point) {
		t.Errorf("Hit points should coincide: %v vs %v", positive.Point, negative.Point)
	}
	if !negative.Normal.Equals(positive.Normal.Negate()) {
		t.Errorf("Negative radius should negate the normal: %v vs %v", negative.Normal, positive.Normal)
	}
}
