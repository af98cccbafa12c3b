// SPDX-License-Identifier: Apache-2.0

// Package feed provides the camera frame sources the capture pipeline
// consumes. The simulated camera stands in for real hardware and produces
// synthetic street-scene frames on a ticker; a static image source wraps a
// single officer-uploaded frame.
package feed

import (
	"context"

	"github.com/verdantlabs/wastesentry/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/frame_source_mock.go -package=mock

// FrameSource yields the most recent frame from a feed.
type FrameSource interface {
	// CurrentFrame returns the latest frame. It returns ErrFeedInactive when
	// the source has no frame to offer.
	CurrentFrame() (models.Frame, error)

	// Active reports whether the source is currently producing frames.
	Active() bool
}

// Camera is a FrameSource with an explicit device lifecycle. Every exit
// path must release the device: a stopped camera holds no goroutines and
// no frames.
type Camera interface {
	FrameSource

	// Start acquires the device and begins producing frames. Starting an
	// already active camera returns ErrFeedAlreadyActive; an acquisition
	// failure returns ErrDeviceAccess and leaves the camera inactive.
	Start(ctx context.Context) error

	// Stop releases the device and blocks until the frame goroutine has
	// exited. Safe to call when the camera is not running.
	Stop()
}
