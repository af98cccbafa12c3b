// SPDX-License-Identifier: Apache-2.0

// Package validators provides input validation for the custody workflow
// payloads, decoupled from the transport layer so the same rules guard the
// HTTP handlers and any internal caller.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
