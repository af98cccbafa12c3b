// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"sync"
	"time"

	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/models"
)

// DefaultCameraLabel identifies the simulated street camera on every frame
// and in the evidence records derived from it.
const DefaultCameraLabel = "Camera 01 - Main St"

const (
	defaultFrameInterval = 2 * time.Second
	frameWidth           = 320
	frameHeight          = 240
)

type simulatedCamera struct {
	label    string
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	frame  models.Frame
	seq    int
}

// NewSimulatedCamera creates an idle [Camera] that renders synthetic street
// frames every interval once started. A non-positive interval falls back to
// 2 seconds. An empty label falls back to [DefaultCameraLabel].
func NewSimulatedCamera(label string, interval time.Duration, logger *logger.Logger) Camera {
	if label == "" {
		label = DefaultCameraLabel
	}
	if interval <= 0 {
		interval = defaultFrameInterval
	}
	return &simulatedCamera{label: label, interval: interval, logger: logger}
}

// Start implements [Camera]. It renders the first frame synchronously so an
// acquisition failure surfaces before any goroutine is spawned.
func (c *simulatedCamera) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return ErrFeedAlreadyActive
	}

	first, err := c.render()
	if err != nil {
		c.mu.Unlock()
		return fmt.Errorf("%w: %w", ErrDeviceAccess, err)
	}
	c.frame = first

	feedCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	c.logger.Info().Str("camera", c.label).Dur("interval", c.interval).Msg("camera feed started")

	go func() {
		defer c.wg.Done()
		t := time.NewTicker(c.interval)
		defer t.Stop()

		for {
			select {
			case <-feedCtx.Done():
				return
			case <-t.C:
				next, err := c.render()
				if err != nil {
					c.logger.Err(err).Str("camera", c.label).Msg("frame render failed, keeping previous frame")
					continue
				}
				c.mu.Lock()
				c.frame = next
				c.mu.Unlock()
			}
		}
	}()

	return nil
}

// Stop implements [Camera]. After Stop returns, the frame goroutine has
// exited and the last frame is discarded.
func (c *simulatedCamera) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	c.wg.Wait()

	c.mu.Lock()
	c.frame = models.Frame{}
	c.mu.Unlock()

	c.logger.Info().Str("camera", c.label).Msg("camera feed stopped")
}

func (c *simulatedCamera) CurrentFrame() (models.Frame, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel == nil || c.frame.Empty() {
		return models.Frame{}, ErrFeedInactive
	}
	return c.frame, nil
}

func (c *simulatedCamera) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cancel != nil
}

// render produces the next synthetic frame: a dusk gradient over a roadway
// band with a few bins whose fill drifts with the sequence number, enough
// visual variation that consecutive frames hash differently.
func (c *simulatedCamera) render() (models.Frame, error) {
	c.seq++
	img := image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight))

	horizon := frameHeight * 2 / 3
	for y := 0; y < frameHeight; y++ {
		for x := 0; x < frameWidth; x++ {
			if y < horizon {
				shade := uint8(40 + y/3)
				img.Set(x, y, color.RGBA{R: shade, G: shade, B: uint8(70 + y/3), A: 255})
			} else {
				img.Set(x, y, color.RGBA{R: 60, G: 60, B: 62, A: 255})
			}
		}
	}

	for bin := 0; bin < 3; bin++ {
		left := 40 + bin*100
		fill := (c.seq*7 + bin*31) % 40
		for y := horizon - 30 - fill; y < horizon; y++ {
			for x := left; x < left+32 && x < frameWidth; x++ {
				if y >= 0 {
					img.Set(x, y, color.RGBA{R: 30, G: uint8(110 + bin*20), B: 40, A: 255})
				}
			}
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return models.Frame{}, fmt.Errorf("encode frame: %w", err)
	}

	return models.Frame{
		Data:       buf.Bytes(),
		Source:     c.label,
		CapturedAt: time.Now(),
	}, nil
}
