package feed

import (
	"bytes"
	"context"
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/wastesentry/internal/logger"
)

func TestSimulatedCamera_StartProducesDecodableFrame(t *testing.T) {
	cam := NewSimulatedCamera("", 50*time.Millisecond, logger.Nop())
	require.NoError(t, cam.Start(context.Background()))
	defer cam.Stop()

	assert.True(t, cam.Active())

	frame, err := cam.CurrentFrame()
	require.NoError(t, err)
	assert.Equal(t, DefaultCameraLabel, frame.Source)
	assert.False(t, frame.CapturedAt.IsZero())

	cfg, format, err := image.DecodeConfig(bytes.NewReader(frame.Data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, frameWidth, cfg.Width)
	assert.Equal(t, frameHeight, cfg.Height)
}

func TestSimulatedCamera_DoubleStartReturnsAlreadyActive(t *testing.T) {
	cam := NewSimulatedCamera("Camera 02 - Depot", time.Second, logger.Nop())
	require.NoError(t, cam.Start(context.Background()))
	defer cam.Stop()

	err := cam.Start(context.Background())
	assert.ErrorIs(t, err, ErrFeedAlreadyActive)
}

func TestSimulatedCamera_StopReleasesFeed(t *testing.T) {
	cam := NewSimulatedCamera("", time.Second, logger.Nop())
	require.NoError(t, cam.Start(context.Background()))

	cam.Stop()

	assert.False(t, cam.Active())
	_, err := cam.CurrentFrame()
	assert.ErrorIs(t, err, ErrFeedInactive)

	// idempotent
	cam.Stop()
}

func TestSimulatedCamera_RestartAfterStop(t *testing.T) {
	cam := NewSimulatedCamera("", time.Second, logger.Nop())
	require.NoError(t, cam.Start(context.Background()))
	cam.Stop()

	require.NoError(t, cam.Start(context.Background()))
	defer cam.Stop()
	assert.True(t, cam.Active())
}

func TestSimulatedCamera_FramesVaryOverTime(t *testing.T) {
	cam := NewSimulatedCamera("", 10*time.Millisecond, logger.Nop())
	require.NoError(t, cam.Start(context.Background()))
	defer cam.Stop()

	first, err := cam.CurrentFrame()
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		next, err := cam.CurrentFrame()
		return err == nil && !bytes.Equal(next.Data, first.Data)
	}, 2*time.Second, 20*time.Millisecond, "expected a later frame with different content")
}

func TestSimulatedCamera_InactiveCurrentFrame(t *testing.T) {
	cam := NewSimulatedCamera("", time.Second, logger.Nop())

	_, err := cam.CurrentFrame()
	assert.ErrorIs(t, err, ErrFeedInactive)
	assert.False(t, cam.Active())
}

func TestStaticImage_WrapsUploadedFrame(t *testing.T) {
	cam := NewSimulatedCamera("", time.Second, logger.Nop())
	require.NoError(t, cam.Start(context.Background()))
	frame, err := cam.CurrentFrame()
	require.NoError(t, err)
	cam.Stop()

	src, err := NewStaticImage(frame.Data, "")
	require.NoError(t, err)
	assert.True(t, src.Active())

	got, err := src.CurrentFrame()
	require.NoError(t, err)
	assert.Equal(t, "Uploaded Image", got.Source)
	assert.Equal(t, frame.Data, got.Data)
}

func TestStaticImage_RejectsNonImageUpload(t *testing.T) {
	_, err := NewStaticImage([]byte("not an image"), "upload")
	assert.ErrorIs(t, err, ErrDeviceAccess)
}
