package config

import "errors"

var (
	// ErrInvalidConfig marks a setting rejected by Validate.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrLoadConfig marks a file or environment source that could not be read.
	ErrLoadConfig = errors.New("load config failed")
	// ErrUnknownMode marks a pattern_mode or image_scale_mode outside its set.
	ErrUnknownMode = errors.New("unknown mode")
)
