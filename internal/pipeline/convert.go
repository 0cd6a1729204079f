/*
DESCRIPTION
  convert.go scales a decoded frame to the matcher's required (W,H) and
  PNG-encodes it, the last two steps of the decoder contract in
  spec.md §4.3.

LICENSE
  Copyright (C) 2026 the Hawkeye Authors.

  This is free software: you can redistribute it and/or modify it
  under the terms of the GNU General Public License as published by
  the Free Software Foundation, either version 3 of the License, or
  (at your option) any later version.

  This is distributed in the hope that it will be useful, but WITHOUT
  ANY WARRANTY; without even the implied warranty of MERCHANTABILITY
  or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public
  License for more details.

  You should have received a copy of the GNU General Public License
  in gpl.txt. If not, see http://www.gnu.org/licenses/.
*/

package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// scaleAndEncode scales img to exactly (width, height) and PNG-encodes
// the result. The scaler is golang.org/x/image/draw's bilinear
// interpolator: cheap enough to run per-frame and good enough for the
// matcher's structural comparison, which does not need photographic
// fidelity.
func scaleAndEncode(img image.Image, width, height int) ([]byte, error) {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("pipeline: encode frame: %w", err)
	}
	return buf.Bytes(), nil
}
