package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrEmptyInput        = errors.New("empty input")
)
