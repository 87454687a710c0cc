package config

import "errors"

var (
	ErrFailedToLoadConfig     = errors.New("failed to load config")
	ErrFailedToValidateConfig = errors.New("failed to validate config")
	ErrUnsupportedFormat      = errors.New("unsupported config format")
	ErrNoSourceProvided       = errors.New("no source data provided to loader")
)
