// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Most settings have service-level fallbacks, so the server-side config is
// permissive. The one hard requirement is a signing key for session tokens
// whenever an HTTP server address is configured.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress != "" && cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Capture.WasteLevelThreshold < 0 || cfg.Capture.WasteLevelThreshold > 100 {
		return ErrInvalidCaptureConfigs
	}

	return nil
}

func (cfg *ConsoleConfig) validate() error {
	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidConsoleConfigs
	}

	return nil
}
