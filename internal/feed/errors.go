// SPDX-License-Identifier: Apache-2.0

package feed

import "errors"

// Sentinel errors returned by frame sources. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrFeedAlreadyActive is returned by Start when the camera is already
	// producing frames. The running feed is left untouched.
	ErrFeedAlreadyActive = errors.New("camera feed is already active")

	// ErrDeviceAccess is returned when the camera device cannot be acquired.
	// The feed stays inactive and the caller should surface a blocking notice.
	ErrDeviceAccess = errors.New("camera access denied or unavailable")

	// ErrFeedInactive is returned by CurrentFrame when the source is stopped
	// or holds no frame yet.
	ErrFeedInactive = errors.New("camera feed is not active")
)
