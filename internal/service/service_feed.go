// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/verdantlabs/wastesentry/internal/feed"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/models"
)

// feedService is the concrete implementation of FeedService. It multiplexes
// between the live camera and a static uploaded image: an upload releases
// the camera, a feed start clears the upload.
type feedService struct {
	camera feed.Camera
	auth   AuthService

	mu     sync.Mutex
	static feed.FrameSource

	// sentry, when attached, is disarmed on every teardown path so no scan
	// timer outlives its feed.
	sentry SentryService

	logger *logger.Logger
}

// NewFeedService constructs the feed lifecycle service. Attach the sentry
// controller with [feedService.AttachSentry] once it exists; the two
// services reference each other.
func NewFeedService(camera feed.Camera, auth AuthService, logger *logger.Logger) *feedService {
	return &feedService{camera: camera, auth: auth, logger: logger}
}

// AttachSentry wires the sentry controller for teardown propagation.
func (f *feedService) AttachSentry(sentry SentryService) {
	f.sentry = sentry
}

// Start implements [FeedService].
func (f *feedService) Start(ctx context.Context) error {
	f.mu.Lock()
	f.static = nil
	f.mu.Unlock()

	if err := f.camera.Start(ctx); err != nil {
		return fmt.Errorf("feed start failed: %w", err)
	}
	return nil
}

// Stop implements [FeedService]. The PIN gate runs first; a rejected PIN
// leaves the feed untouched.
func (f *feedService) Stop(ctx context.Context, pin string) error {
	if err := f.auth.AuthorizeFeedStop(ctx, pin); err != nil {
		return err
	}

	f.teardown()
	logger.FromContext(ctx).Info().Msg("feed stopped by operator")
	return nil
}

// UploadFrame implements [FeedService]. Switching to a static image ends the
// live session, so the camera and any scan loop are released first.
func (f *feedService) UploadFrame(ctx context.Context, data []byte, source string) error {
	static, err := feed.NewStaticImage(data, source)
	if err != nil {
		return err
	}

	f.teardown()

	f.mu.Lock()
	f.static = static
	f.mu.Unlock()

	logger.FromContext(ctx).Info().Str("source", source).Int("bytes", len(data)).Msg("static frame uploaded")
	return nil
}

// CurrentFrame implements [FeedService].
func (f *feedService) CurrentFrame() (models.Frame, error) {
	f.mu.Lock()
	static := f.static
	f.mu.Unlock()

	if static != nil {
		return static.CurrentFrame()
	}
	return f.camera.CurrentFrame()
}

// Active implements [FeedService].
func (f *feedService) Active() bool {
	f.mu.Lock()
	static := f.static
	f.mu.Unlock()

	return static != nil || f.camera.Active()
}

// teardown releases every feed resource: scan loop first so no tick races
// the camera shutdown, then the camera, then the static override.
func (f *feedService) teardown() {
	if f.sentry != nil {
		f.sentry.Stop()
	}
	f.camera.Stop()

	f.mu.Lock()
	f.static = nil
	f.mu.Unlock()
}
