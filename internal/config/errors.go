package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was
	// provided by any configuration source. The server refuses to start
	// without one.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")

	// ErrInvalidServerConfigs indicates invalid HTTP server settings
	// (for example, a non-positive body size cap).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidClientConfigs indicates invalid client settings
	// (for example, a non-positive local storage quota or debounce).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
