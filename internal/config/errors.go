package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token signing key for a configured server).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCaptureConfigs indicates invalid capture gate settings
	// (for example, a waste level threshold outside 0-100).
	ErrInvalidCaptureConfigs = errors.New("invalid capture configuration")
	// ErrInvalidConsoleConfigs indicates invalid console settings
	// (for example, missing server URL or request timeout).
	ErrInvalidConsoleConfigs = errors.New("invalid console configuration")
)
