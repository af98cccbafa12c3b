package config

import (
	"fmt"
	"time"
)

// ConsoleAdapter holds network settings used by the console transport layer.
type ConsoleAdapter struct {
	// ServerURL is the base URL of the wastesentry server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound console requests.
	RequestTimeout time.Duration
}

// ConsoleConfig is the top-level console configuration assembled from
// [StructuredConfig].
type ConsoleConfig struct {
	// Adapter contains console transport addresses and timeouts.
	Adapter ConsoleAdapter
}

// GetConsoleConfig builds and validates a console-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the console runtime, applies fallbacks for the unset ones, and
// validates the resulting [ConsoleConfig].
func GetConsoleConfig() (*ConsoleConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	consoleCfg := &ConsoleConfig{
		Adapter: ConsoleAdapter{
			ServerURL:      cfg.Console.ServerURL,
			RequestTimeout: cfg.Console.RequestTimeout,
		},
	}

	if consoleCfg.Adapter.ServerURL == "" {
		consoleCfg.Adapter.ServerURL = "http://localhost:8080"
	}
	if consoleCfg.Adapter.RequestTimeout == 0 {
		consoleCfg.Adapter.RequestTimeout = 15 * time.Second
	}

	return consoleCfg, consoleCfg.validate()
}
