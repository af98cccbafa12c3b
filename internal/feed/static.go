// SPDX-License-Identifier: Apache-2.0

package feed

import (
	"bytes"
	"fmt"
	"image"
	"time"

	"github.com/verdantlabs/wastesentry/models"
)

type staticImage struct {
	frame models.Frame
}

// NewStaticImage wraps a single officer-uploaded image as a [FrameSource].
// The data must decode as an image; anything else returns ErrDeviceAccess.
func NewStaticImage(data []byte, source string) (FrameSource, error) {
	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDeviceAccess, err)
	}
	if source == "" {
		source = "Uploaded Image"
	}

	return &staticImage{frame: models.Frame{
		Data:       data,
		Source:     source,
		CapturedAt: time.Now(),
	}}, nil
}

func (s *staticImage) CurrentFrame() (models.Frame, error) {
	return s.frame, nil
}

func (s *staticImage) Active() bool {
	return true
}
