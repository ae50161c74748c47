package output

import "errors"

var (
	ErrUnknownFormat = errors.New("output: unknown image format")
	ErrInvalidSize   = errors.New("output: image width and height must be positive")
)
