package core

import "errors"

var (
	ErrZeroLength = errors.New("core: cannot normalize a zero-length vector")
)
