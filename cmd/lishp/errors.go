package main

import "errors"

// Sentinel errors
var (
	ErrConfigValidation        = errors.New("invalid configuration")
	ErrUnsupportedConfigFormat = errors.New("unsupported configuration file format")
	ErrUnknownFormat           = errors.New("unknown output format")
	ErrCheckFailed             = errors.New("check failed")
)
