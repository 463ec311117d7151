package expression

import "errors"

// Sentinel kinds for synthesis errors.
var (
	ErrNoVariables       = errors.New("at least one variable is required")
	ErrSeparatorCount    = errors.New("separator count must be one less than variable count")
	ErrInvalidBounds     = errors.New("scale bounds must be positive")
	ErrInvalidMode       = errors.New("invalid mode")
	ErrUnsupportedTarget = errors.New("no synthesis pattern for target")
)
