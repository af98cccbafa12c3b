// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

// Sentinel errors returned by the services. Callers should use [errors.Is]
// to match against these values; the HTTP layer maps them to status codes.
var (
	// ErrInvalidCredentials is returned by Login when the username or
	// password is empty. Those are the only credentials the simulated gate
	// rejects.
	ErrInvalidCredentials = errors.New("invalid credentials provided")

	// ErrInvalidPIN is returned when the stop-feed confirmation PIN does not
	// match any of the accepted values.
	ErrInvalidPIN = errors.New("access denied: invalid credentials")

	// ErrTokenIsExpired is returned by ParseToken when the session token's
	// "exp" claim is in the past.
	ErrTokenIsExpired = errors.New("session token is expired")

	// ErrAdminRequired is returned when an operator without the admin
	// capability attempts an admin-gated custody transition.
	ErrAdminRequired = errors.New("admin capability required")

	// ErrInvalidTransition is returned when a custody action is attempted
	// from a state that does not allow it. The state machine defends itself
	// regardless of what any interface exposes.
	ErrInvalidTransition = errors.New("invalid custody state transition")

	// ErrChecksumMismatch is returned by the integrity check when the
	// recomputed content checksum differs from the one recorded at capture
	// time. The item keeps its unchecked status.
	ErrChecksumMismatch = errors.New("evidence checksum mismatch")

	// ErrCaptureInProgress is returned when a capture is requested while
	// another pipeline run is in flight. Requests are rejected, never queued.
	ErrCaptureInProgress = errors.New("capture pipeline is already in progress")

	// ErrEmptyFrame is returned when a capture is requested with no frame
	// and no active feed to grab one from.
	ErrEmptyFrame = errors.New("no frame available for capture")

	// ErrStaleAnalysis is reported when an analysis result arrives after the
	// feed it was scanned from has been stopped. The result is discarded.
	ErrStaleAnalysis = errors.New("analysis result is stale, feed no longer active")

	// ErrVersionIsNotSpecified is returned at startup when no application
	// version was provided through the build or the configuration.
	ErrVersionIsNotSpecified = errors.New("application version is not specified")
)
