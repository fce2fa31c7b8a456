package codec

import "errors"

var (
	// ErrCodecNotFound is returned when a codec is not found in the registry
	ErrCodecNotFound = errors.New("codec not found")

	// ErrInvalidParameter is returned when encoding/decoding parameters are invalid
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInvalidDimensions is returned when an image has non-positive dimensions
	ErrInvalidDimensions = errors.New("invalid image dimensions")

	// ErrInvalidBitDepth is returned when the bit depth is out of range
	ErrInvalidBitDepth = errors.New("invalid bit depth")

	// ErrInvalidComponents is returned when the component count is unsupported
	ErrInvalidComponents = errors.New("invalid number of components")
)
