package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/wastesentry/internal/feed"
	"github.com/verdantlabs/wastesentry/internal/logger"
)

// stubSentry records Stop calls for teardown propagation checks.
type stubSentry struct {
	SentryService
	stops int
}

func (s *stubSentry) Stop() { s.stops++ }

func newFeedFixture(t *testing.T) (*feedService, *stubSentry) {
	t.Helper()

	camera := feed.NewSimulatedCamera("", 50*time.Millisecond, logger.Nop())
	auth := NewAuthService(testAppConfig(), logger.Nop())

	svc := NewFeedService(camera, auth, logger.Nop())
	sentry := &stubSentry{}
	svc.AttachSentry(sentry)

	t.Cleanup(func() { camera.Stop() })
	return svc, sentry
}

func TestFeedService_StartStopLifecycle(t *testing.T) {
	svc, sentry := newFeedFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx))
	assert.True(t, svc.Active())

	frame, err := svc.CurrentFrame()
	require.NoError(t, err)
	assert.Equal(t, feed.DefaultCameraLabel, frame.Source)

	require.NoError(t, svc.Stop(ctx, "1234"))
	assert.False(t, svc.Active())
	assert.Equal(t, 1, sentry.stops, "stopping the feed must disarm the sentry")

	_, err = svc.CurrentFrame()
	assert.ErrorIs(t, err, feed.ErrFeedInactive)
}

func TestFeedService_StopRejectsBadPIN(t *testing.T) {
	svc, sentry := newFeedFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx))

	err := svc.Stop(ctx, "0000")
	assert.ErrorIs(t, err, ErrInvalidPIN)
	assert.True(t, svc.Active(), "a rejected PIN must leave the feed running")
	assert.Zero(t, sentry.stops)
}

func TestFeedService_DoubleStart(t *testing.T) {
	svc, _ := newFeedFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx))
	assert.ErrorIs(t, svc.Start(ctx), feed.ErrFeedAlreadyActive)
}

func TestFeedService_UploadReleasesCamera(t *testing.T) {
	svc, sentry := newFeedFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Start(ctx))
	live, err := svc.CurrentFrame()
	require.NoError(t, err)

	require.NoError(t, svc.UploadFrame(ctx, live.Data, "Officer Upload"))
	assert.Equal(t, 1, sentry.stops, "switching to a static image ends the live session")

	frame, err := svc.CurrentFrame()
	require.NoError(t, err)
	assert.Equal(t, "Officer Upload", frame.Source)
	assert.True(t, svc.Active())

	// restarting the live feed clears the upload
	require.NoError(t, svc.Start(ctx))
	frame, err = svc.CurrentFrame()
	require.NoError(t, err)
	assert.Equal(t, feed.DefaultCameraLabel, frame.Source)
}

func TestFeedService_UploadRejectsNonImage(t *testing.T) {
	svc, _ := newFeedFixture(t)

	err := svc.UploadFrame(context.Background(), []byte("not an image"), "upload")
	assert.ErrorIs(t, err, feed.ErrDeviceAccess)
	assert.False(t, svc.Active())
}
