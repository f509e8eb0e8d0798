package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidPortalConfigs indicates invalid portal transport settings
	// (for example, missing base URL or request timeout).
	ErrInvalidPortalConfigs = errors.New("invalid portal configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero refresh interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
