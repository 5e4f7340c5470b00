package config

import "errors"

// Sentinel errors wrapped by Load so callers can errors.Is on the cause
// class without parsing messages.
var (
	// ErrInvalidConfig marks a config that loaded but failed validation.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrLoadConfig marks a failure reading or decoding a config source.
	ErrLoadConfig = errors.New("load config failed")
)
