// SPDX-License-Identifier: Apache-2.0

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEvidenceID = errors.New("evidence id is required")
	ErrEmptyRequester  = errors.New("requester name is required")
	ErrEmptyReason     = errors.New("request reason is required")
	ErrEmptyAdmin      = errors.New("admin name is required")
)
