package swizzle

import "errors"

// Engine errors. Use errors.Is to check.
var (
	// ErrUnsupportedFormat is returned when a format string is not in the closed set.
	ErrUnsupportedFormat = errors.New("swizzle: unsupported format")
	// ErrInvalidBuffer is returned when a byte slice length is not a multiple of
	// bytes-per-tile, or is smaller than the size required by the image descriptor.
	ErrInvalidBuffer = errors.New("swizzle: invalid buffer length")
	// ErrInvalidDimensions is returned when width or height is not a supported
	// power-of-two tile grid for the requested format.
	ErrInvalidDimensions = errors.New("swizzle: invalid image dimensions")
	// ErrInvalidContainer is returned when a container's magic or header
	// fields don't parse.
	ErrInvalidContainer = errors.New("swizzle: invalid container header")
	// ErrTruncatedContainer is returned when a container's declared payload
	// length exceeds the bytes actually available.
	ErrTruncatedContainer = errors.New("swizzle: truncated container payload")
)
