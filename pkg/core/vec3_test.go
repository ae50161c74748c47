package core

import (
	"errors"
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Cross anticommutes", NewVec3(0, 1, 0).Cross(NewVec3(1, 0, 0)), NewVec3(0, 0, -1)},
		{"Sqrt", NewVec3(4, 9, 0.25).Sqrt(), NewVec3(2, 3, 0.5)},
		{"Clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
		{"Lerp midpoint", NewVec3(0, 0, 0).Lerp(NewVec3(2, 4, 6), 0.5), NewVec3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(3, 4, 12)

	if v.Dot(NewVec3(1, 1, 1)) != 19 {
		t.Errorf("Expected dot 19, got %f", v.Dot(NewVec3(1, 1, 1)))
	}
	if v.LengthSquared() != 169 {
		t.Errorf("Expected squared length 169, got %f", v.LengthSquared())
	}
	if v.Length() != 13 {
		t.Errorf("Expected length 13, got %f", v.Length())
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := NewVec3(0, 3, 4).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}
	if !n.ApproxEquals(NewVec3(0, 0.6, 0.8), 1e-12) {
		t.Errorf("Expected (0, 0.6, 0.8), got %v", n)
	}
}

func TestVec3_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Expected panic when normalizing zero vector")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrZeroLength) {
			t.Errorf("Expected ErrZeroLength, got %v", r)
		}
	}()
	NewVec3(0, 0, 0).Normalize()
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 1, 0))
	if got := ray.At(4); !got.Equals(NewVec3(0, 4, 0)) {
		t.Errorf("Expected (0,4,0), got %v", got)
	}

	ray = NewRay(NewVec3(5, 5, 5), NewVec3(-1, -1, -1))
	if got := ray.At(2); !got.Equals(NewVec3(3, 3, 3)) {
		t.Errorf("Expected (3,3,3), got %v", got)
	}
}
