package models

import "time"

// Frame is a single raw image grabbed from a feed or uploaded by an operator.
type Frame struct {
	// Data is the JPEG-encoded image.
	Data []byte `json:"data"`

	// Source labels the originating camera or upload,
	// e.g. "Camera 01 - Main St".
	Source string `json:"source"`

	CapturedAt time.Time `json:"capturedAt"`
}

// Empty reports whether the frame carries no image data.
func (f Frame) Empty() bool {
	return len(f.Data) == 0
}
