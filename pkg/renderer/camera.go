package renderer

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// CameraConfig contains the placement and lens parameters of a camera
type CameraConfig struct {
	Center        core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // Up direction, must not be parallel to the view direction
	VFov          float64   // Vertical field of view in degrees
	AspectRatio   float64   // Width / height
	Aperture      float64   // Lens diameter, 0 for a pinhole camera
	FocusDistance float64   // Distance to the plane in perfect focus, 0 = distance to LookAt
}

// MergeCameraConfig overlays the non-zero fields of override onto base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base
	if !override.Center.IsZero() {
		result.Center = override.Center
	}
	if !override.LookAt.IsZero() {
		result.LookAt = override.LookAt
	}
	if !override.Up.IsZero() {
		result.Up = override.Up
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.Aperture != 0 {
		result.Aperture = override.Aperture
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}
	return result
}

// Camera generates rays through a thin lens.
// It is immutable after construction and safe for concurrent use.
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3
	lensRadius      float64
}

// NewCamera creates a camera from config, validating the view geometry
func NewCamera(config CameraConfig) (*Camera, error) {
	// Comparisons are written so that NaN fails them
	if !(config.VFov > 0 && config.VFov < 180) {
		return nil, ErrInvalidFov
	}
	if !(config.AspectRatio > 0 && !math.IsInf(config.AspectRatio, 1)) {
		return nil, ErrInvalidAspect
	}
	if !(config.Aperture >= 0 && !math.IsInf(config.Aperture, 1)) {
		return nil, ErrInvalidAperture
	}

	view := config.Center.Subtract(config.LookAt)
	if view.IsZero() || !isFinite(view) {
		return nil, ErrDegenerateView
	}

	focusDistance := config.FocusDistance
	if focusDistance == 0 {
		focusDistance = view.Length()
	}
	if !(focusDistance > 0 && !math.IsInf(focusDistance, 1)) {
		return nil, ErrInvalidFocus
	}

	w := view.Normalize()
	side := config.Up.Cross(w)
	if !(side.LengthSquared() >= 1e-24) {
		return nil, ErrParallelUp
	}
	u := side.Normalize()
	v := w.Cross(u)

	theta := config.VFov * math.Pi / 180
	halfHeight := math.Tan(theta / 2)
	halfWidth := config.AspectRatio * halfHeight

	origin := config.Center
	lowerLeftCorner := origin.
		Subtract(u.Multiply(halfWidth * focusDistance)).
		Subtract(v.Multiply(halfHeight * focusDistance)).
		Subtract(w.Multiply(focusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Multiply(2 * halfWidth * focusDistance),
		vertical:        v.Multiply(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
	}, nil
}

func isFinite(v core.Vec3) bool {
	for _, c := range []float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// GetRay generates a ray for image-plane coordinates (s, t) where 0 <= s,t <= 1.
// (0, 0) is the lower-left corner. Ray origins are spread over the lens disk.
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	offset := core.Vec3{}
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	origin := c.origin.Add(offset)
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}

// Basis returns the camera's orthonormal basis: right, up and backward
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// LensRadius returns half the aperture
func (c *Camera) LensRadius() float64 {
	return c.lensRadius
}
