package loaders

import "errors"

var (
	ErrInvalidScene        = errors.New("loaders: invalid scene file")
	ErrInvalidPath         = errors.New("loaders: invalid scene path")
	ErrUnknownMaterial     = errors.New("loaders: sphere references an undefined material")
	ErrUnknownMaterialType = errors.New("loaders: unknown material type")
	ErrZeroRadius          = errors.New("loaders: sphere radius must be non-zero")
)
