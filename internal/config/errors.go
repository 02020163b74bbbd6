package config

import "errors"

var (
	// ErrInvalid indicates a configuration value outside its valid range.
	ErrInvalid = errors.New("config: invalid value")

	// ErrUnknownPreset indicates a preset name that is not defined.
	ErrUnknownPreset = errors.New("config: unknown preset")
)
