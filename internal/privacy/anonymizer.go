// SPDX-License-Identifier: Apache-2.0

package privacy

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"
)

const defaultScaleFactor = 20

type pixelAnonymizer struct {
	factor int
}

// NewAnonymizer returns an [Anonymizer] that shrinks frames by the given
// factor using nearest-neighbour sampling. A factor below 2 falls back to
// the default of 20, which reduces a 1080p frame to under 100px wide.
func NewAnonymizer(factor int) Anonymizer {
	if factor < 2 {
		factor = defaultScaleFactor
	}
	return &pixelAnonymizer{factor: factor}
}

// Anonymize implements [Anonymizer]. The output is always at least 1x1 even
// for frames smaller than the scale factor.
func (p *pixelAnonymizer) Anonymize(frame []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(frame))
	if err != nil {
		return nil, fmt.Errorf("anonymize decode: %w", err)
	}

	bounds := src.Bounds()
	w := max(bounds.Dx()/p.factor, 1)
	h := max(bounds.Dy()/p.factor, 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 60}); err != nil {
		return nil, fmt.Errorf("anonymize encode: %w", err)
	}
	return buf.Bytes(), nil
}
