// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// wastesentry application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as session token
	// parameters, the simulated login delay, and the feed-stop PIN hashes.
	App App `envPrefix:"APP_"`

	// Analyzer holds the external scene analyzer endpoint settings.
	Analyzer Analyzer `envPrefix:"ANALYZER_"`

	// Capture holds detection gate and custody workflow settings.
	Capture Capture `envPrefix:"CAPTURE_"`

	// Sentry holds the autonomous scan loop settings.
	Sentry Sentry `envPrefix:"SENTRY_"`

	// Feed holds the simulated camera feed settings.
	Feed Feed `envPrefix:"FEED_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Console holds settings for the terminal operations console.
	Console Console `envPrefix:"CONSOLE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values controlling the session
// token lifecycle and the simulated security gates.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWTs.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued session token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid
	// (e.g. "8h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// LoginDelay is the fixed simulated "security check" delay applied to
	// every login attempt. The gate accepts any non-empty credentials; the
	// delay is the only thing that makes it feel like one.
	// Env: APP_LOGIN_DELAY
	LoginDelay time.Duration `env:"LOGIN_DELAY"`

	// FeedStopPINHashes are bcrypt hashes of the PIN values accepted by the
	// stop-feed confirmation. A deliberately weak secondary check, not a
	// security boundary.
	// Env: APP_FEED_STOP_PIN_HASHES (comma-separated)
	FeedStopPINHashes []string `env:"FEED_STOP_PIN_HASHES" envSeparator:","`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Analyzer holds the connection settings for the external multimodal scene
// analyzer.
type Analyzer struct {
	// BaseURL is the root URL of the analyzer API.
	// Env: ANALYZER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey authenticates requests to the analyzer API.
	// Env: ANALYZER_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the analyzer model identifier (e.g. "gemini-2.5-flash").
	// Env: ANALYZER_MODEL
	Model string `env:"MODEL"`

	// Timeout bounds a single analysis call.
	// Env: ANALYZER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Capture holds the detection gate thresholds and custody workflow knobs.
type Capture struct {
	// WasteLevelThreshold is the saturation percentage above which a frame
	// is vaulted even without an active dumping detection.
	// Env: CAPTURE_WASTE_LEVEL_THRESHOLD
	WasteLevelThreshold int `env:"WASTE_LEVEL_THRESHOLD"`

	// Location is the label stamped on evidence and alerts originating from
	// the live feed.
	// Env: CAPTURE_LOCATION
	Location string `env:"LOCATION"`

	// AllowRerequest re-opens the request-access transition for DENIED
	// evidence items. The original workflow never exercised this path, so
	// it stays off by default.
	// Env: CAPTURE_ALLOW_REREQUEST
	AllowRerequest bool `env:"ALLOW_REREQUEST"`

	// VerifyLatency is the simulated delay before an integrity verification
	// commits.
	// Env: CAPTURE_VERIFY_LATENCY
	VerifyLatency time.Duration `env:"VERIFY_LATENCY"`
}

// Sentry holds the autonomous capture loop settings.
type Sentry struct {
	// ScanInterval is the period between automatic scan ticks.
	// Env: SENTRY_SCAN_INTERVAL
	ScanInterval time.Duration `env:"SCAN_INTERVAL"`

	// AutoStart arms the scan loop at server startup instead of waiting
	// for an operator to arm it over the API.
	// Env: SENTRY_AUTO_START
	AutoStart bool `env:"AUTO_START"`
}

// Feed holds the simulated camera settings.
type Feed struct {
	// FrameInterval is how often the simulated camera refreshes its
	// current frame.
	// Env: FEED_FRAME_INTERVAL
	FrameInterval time.Duration `env:"FRAME_INTERVAL"`

	// AutoStart acquires the camera at server startup.
	// Env: FEED_AUTO_START
	AutoStart bool `env:"AUTO_START"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC server listens,
	// in "host:port" format (e.g. "0.0.0.0:9090").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Console holds settings for the terminal operations console binary.
type Console struct {
	// ServerURL is the base URL of the wastesentry server the console
	// connects to.
	// Env: CONSOLE_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout for outbound console requests.
	// Env: CONSOLE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
