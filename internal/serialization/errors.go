package serialization

import "errors"

// Serialization errors.
var (
	// ErrParamCount indicates the stored parameter count does not match
	// the live model's parameter count.
	ErrParamCount = errors.New("parameter count mismatch")

	// ErrShapeMismatch indicates a stored parameter's shape does not
	// match the corresponding live parameter's shape.
	ErrShapeMismatch = errors.New("parameter shape mismatch")

	// ErrSizeMismatch indicates a stored parameter's data length does
	// not match its own stored shape.
	ErrSizeMismatch = errors.New("parameter data length mismatch")
)
