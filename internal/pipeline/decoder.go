/*
DESCRIPTION
  decoder.go defines Decoder: the per-(container, codec) frame source
  spec.md §4.3 describes, and the factory that picks an implementation
  for a Source.

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

// Package pipeline ingests one UDP/RTP flow, terminates it to a stream
// of PNG-encoded stills sized to the slate matcher's contract, and
// drives the mode-event channel consumed by internal/actions, per
// spec.md §4.3.
package pipeline

import (
	"context"
	"fmt"
	"image"

	"github.com/ausocean/utils/logging"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

// ErrUnsupported is returned by NewDecoder for any (container, codec)
// pair other than the two spec.md §4.3 names.
var ErrUnsupported = fmt.Errorf("pipeline: unsupported container/codec combination")

// Decoder is a running ingest of one RTP flow, converted to pictures.
// Frames returns the channel of raw decoded pictures at their native
// resolution; convert.go scales and PNG-encodes each one before it
// reaches the matcher and the latest-frame cell.
type Decoder interface {
	Frames() <-chan image.Image
	// Err returns the first fatal decode error, valid only after Frames
	// has been closed.
	Err() error
	Close() error
}

// NewDecoder builds the Decoder for src's (Container, Codec), per
// spec.md §4.3's decoder contract. width/height are the slate
// matcher's required_image_size(): every emitted picture is scaled to
// exactly that size before it reaches Frames. Construction fails fast
// with ErrUnsupported for any other (container, codec) combination.
func NewDecoder(ctx context.Context, src model.Source, width, height int, log logging.Logger) (Decoder, error) {
	switch {
	case src.Container == model.ContainerMpegTS && src.Codec == model.CodecH264:
		return newMpegTSH264Decoder(ctx, src, width, height, log)
	case src.Container == model.ContainerRawVideo && src.Codec == model.CodecH264:
		return newRawH264Decoder(ctx, src, width, height, log)
	default:
		return nil, fmt.Errorf("%w: (%s, %s)", ErrUnsupported, src.Container, src.Codec)
	}
}
