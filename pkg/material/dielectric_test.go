package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// incidentRay returns a unit ray hitting the origin at angle theta (radians) from the +Y normal
func incidentRay(theta float64, fromInside bool) core.Ray {
	dir := core.NewVec3(math.Sin(theta), -math.Cos(theta), 0)
	if fromInside {
		dir = core.NewVec3(math.Sin(theta), math.Cos(theta), 0)
	}
	return core.NewRay(dir.Negate(), dir)
}

func TestDielectricBasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		T:        1.0,
		Material: glass,
	}
	ray := incidentRay(math.Pi/4, false)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 100; i++ {
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		expected := core.NewVec3(1.0, 1.0, 1.0)
		if result.Attenuation != expected {
			t.Fatalf("Expected attenuation %v, got %v", expected, result.Attenuation)
		}
	}
}

func TestDielectricSnellRefraction(t *testing.T) {
	theta := math.Pi / 4
	refracted, ok := Refract(incidentRay(theta, false).Direction, core.NewVec3(0, 1, 0), 1.0/1.5)
	if !ok {
		t.Fatal("Refraction from air into glass must always be possible")
	}

	// sin(theta_t) = sin(theta_i) / n
	sinT := refracted.Normalize().X
	expected := math.Sin(theta) / 1.5
	if math.Abs(sinT-expected) > 1e-10 {
		t.Errorf("Expected sin(theta_t) = %f, got %f", expected, sinT)
	}
	if refracted.Y >= 0 {
		t.Errorf("Refracted ray should continue into the surface, got %v", refracted)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Shallow ray leaving the glass: outward normal points up and the ray travels up
	rayDirection := core.NewVec3(1, 0.1, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 0, 0), rayDirection)
	hit := HitRecord{
		Point:    core.NewVec3(0, 0, 0),
		Normal:   core.NewVec3(0, 1, 0),
		Material: glass,
	}

	sinTheta := math.Sqrt(1 - rayDirection.Y*rayDirection.Y)
	if 1.5*sinTheta <= 1.0 {
		t.Fatalf("Test setup error: this angle should cause total internal reflection")
	}

	for i := 0; i < 100; i++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(int64(i))))
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		expected := core.NewVec3(rayDirection.X, -rayDirection.Y, 0)
		if !result.Scattered.Direction.ApproxEquals(expected, 1e-10) {
			t.Fatalf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
		}
	}
}

func TestDielectricSchlickConvergence(t *testing.T) {
	const trials = 10000
	const tolerance = 0.02

	tests := []struct {
		name       string
		theta      float64
		fromInside bool
		cosine     func(theta float64) float64
	}{
		{
			name:  "Entering at 80 degrees",
			theta: 80 * math.Pi / 180,
			cosine: func(theta float64) float64 {
				return math.Cos(theta)
			},
		},
		{
			name:  "Entering at 60 degrees",
			theta: 60 * math.Pi / 180,
			cosine: func(theta float64) float64 {
				return math.Cos(theta)
			},
		},
		{
			name:       "Exiting at 40 degrees",
			theta:      40 * math.Pi / 180,
			fromInside: true,
			cosine: func(theta float64) float64 {
				// Transmitted angle on the air side
				sinT := 1.5 * math.Sin(theta)
				return math.Sqrt(1 - sinT*sinT)
			},
		},
		{
			name:       "Exiting at normal incidence",
			theta:      0,
			fromInside: true,
			cosine: func(theta float64) float64 {
				return 1.0
			},
		},
	}

	glass := NewDielectric(1.5)
	normal := core.NewVec3(0, 1, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := incidentRay(tt.theta, tt.fromInside)
			hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: normal, Material: glass}
			sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

			reflections := 0
			for i := 0; i < trials; i++ {
				result, _ := glass.Scatter(ray, hit, sampler)
				// A reflection stays on the incident side of the surface
				sameSide := (result.Scattered.Direction.Dot(normal) > 0) != tt.fromInside
				if sameSide {
					reflections++
				}
			}

			expected := Reflectance(math.Min(tt.cosine(tt.theta), 1.0), 1.5)
			observed := float64(reflections) / trials
			if math.Abs(observed-expected) > tolerance {
				t.Errorf("Reflection fraction %.4f, Schlick predicts %.4f", observed, expected)
			}
		})
	}
}

func TestReflectanceFunction(t *testing.T) {
	// Normal incidence: r0 = ((1-1.5)/(1+1.5))^2 = 0.04
	if r := Reflectance(1.0, 1.5); math.Abs(r-0.04) > 1e-12 {
		t.Errorf("Normal incidence reflectance = %f, expected 0.04", r)
	}

	// Grazing incidence approaches total reflection
	if r := Reflectance(0.0, 1.5); math.Abs(r-1.0) > 1e-12 {
		t.Errorf("Grazing reflectance = %f, expected 1", r)
	}

	// Index and its reciprocal share r0
	if math.Abs(Reflectance(0.5, 1.5)-Reflectance(0.5, 1/1.5)) > 1e-12 {
		t.Error("Reflectance should be symmetric in the index ratio")
	}

	// Monotonically decreasing in cosine
	prev := Reflectance(0, 1.5)
	for c := 0.1; c <= 1.0; c += 0.1 {
		r := Reflectance(c, 1.5)
		if r > prev {
			t.Errorf("Reflectance should decrease with cosine: R(%.1f)=%f > %f", c, r, prev)
		}
		prev = r
	}
}
