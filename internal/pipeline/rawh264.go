/*
DESCRIPTION
  rawh264.go implements the (RawVideo, H264) Decoder: RTP/H264
  payloads are depacketized with pion's H264 codec, reassembled into
  Annex-B access units, and logged via ausocean/av/codec/h264's NAL
  type classification before being handed to ffmpeg (spec.md §4.3).

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
	"context"
	"image"

	"github.com/ausocean/av/codec/h264"
	"github.com/ausocean/utils/logging"
	"github.com/pion/rtp/codecs"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

var annexBStartCode = []byte{0, 0, 0, 1}

type rawH264Decoder struct {
	source    *rtpSource
	ff        *ffmpegPictureSource
	frames    chan image.Image
	errCh     chan error
	err       error
	log       logging.Logger
	depayload codecs.H264Packet
}

func newRawH264Decoder(ctx context.Context, src model.Source, width, height int, log logging.Logger) (Decoder, error) {
	ff, err := newFFmpegPictureSource(ctx, "h264", width, height, log)
	if err != nil {
		return nil, err
	}

	rs, err := newRTPSource(src.IngestPort, log)
	if err != nil {
		ff.Close()
		return nil, err
	}

	d := &rawH264Decoder{
		source: rs,
		ff:     ff,
		frames: make(chan image.Image, 1),
		errCh:  make(chan error, 2),
		log:    log,
	}

	go d.pump(ctx)
	go d.readLoop()
	return d, nil
}

func (d *rawH264Decoder) pump(ctx context.Context) {
	d.source.run(ctx, func(payload []byte) {
		nal, err := d.depayload.Unmarshal(payload)
		if err != nil {
			d.log.Warning("could not depacketize rtp/h264 payload", "error", err)
			return
		}
		if len(nal) == 0 {
			return
		}

		if h264.NALType(nal[0]) == h264.NALTypeIDR {
			d.log.Debug("observed IDR frame")
		}

		if _, err := d.ff.Write(annexBStartCode); err != nil {
			d.trySendErr(err)
			return
		}
		if _, err := d.ff.Write(nal); err != nil {
			d.trySendErr(err)
		}
	}, d.errCh)
}

func (d *rawH264Decoder) trySendErr(err error) {
	select {
	case d.errCh <- err:
	default:
	}
}

func (d *rawH264Decoder) readLoop() {
	defer close(d.frames)
	for {
		img, err := d.ff.ReadPicture()
		if err != nil {
			d.err = err
			return
		}
		d.frames <- img
	}
}

func (d *rawH264Decoder) Frames() <-chan image.Image { return d.frames }
func (d *rawH264Decoder) Err() error                 { return d.err }
func (d *rawH264Decoder) Close() error {
	d.source.Close()
	return d.ff.Close()
}
