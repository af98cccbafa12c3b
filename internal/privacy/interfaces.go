// SPDX-License-Identifier: Apache-2.0

// Package privacy produces anonymized evidence previews.
//
// Raw frames may contain faces or licence plates, so the dashboard never
// shows them while an item is locked. The anonymizer renders a heavily
// downscaled stand-in that is always safe to display.
package privacy

//go:generate mockgen -source=interfaces.go -destination=../mock/anonymizer_mock.go -package=mock

// Anonymizer turns a raw JPEG frame into a privacy-preserving preview.
type Anonymizer interface {
	// Anonymize decodes the frame, downscales it past the point where
	// identifying detail survives and re-encodes it as JPEG.
	Anonymize(frame []byte) ([]byte, error)
}
