package renderer

import "errors"

var (
	ErrDegenerateView  = errors.New("renderer: camera center and look-at point must be distinct finite points")
	ErrParallelUp      = errors.New("renderer: camera up vector is parallel to the view direction")
	ErrInvalidFov      = errors.New("renderer: vertical field of view must be in (0, 180) degrees")
	ErrInvalidAspect   = errors.New("renderer: aspect ratio must be positive")
	ErrInvalidFocus    = errors.New("renderer: focus distance must be positive")
	ErrInvalidAperture = errors.New("renderer: aperture must be non-negative")
	ErrInvalidSize     = errors.New("renderer: image width and height must be positive")
	ErrInterrupted     = errors.New("renderer: interrupted while rendering")
	ErrPoolClosed      = errors.New("renderer: worker pool closed unexpectedly")
)
