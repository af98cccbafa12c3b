// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

// Sentinel errors returned by store methods. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrEvidenceNotFound is returned when a lookup or update targets an
	// evidence ID that is not present in the vault.
	ErrEvidenceNotFound = errors.New("evidence item was not found")
)
