/*
DESCRIPTION
  ffmpeg.go decodes an Annex-B/MPEG-TS elementary stream into a series
  of raw RGBA pictures at a fixed size, by shelling out to a locally
  installed ffmpeg binary. No pack dependency implements a pure-Go H264
  decoder, so this follows the same os/exec adapter shape used
  elsewhere in the ecosystem for exactly this gap (see DESIGN.md).

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
	"bufio"
	"context"
	"fmt"
	"image"
	"io"
	"os/exec"

	"github.com/ausocean/utils/logging"
)

// ffmpegBin is overridable in tests; production always uses the
// binary resolved from PATH.
var ffmpegBin = "ffmpeg"

// ffmpegPictureSource runs ffmpeg as a child process, feeding it an
// elementary stream on stdin and reading back raw RGBA pictures,
// already scaled to (width, height), on stdout.
type ffmpegPictureSource struct {
	cmd     *exec.Cmd
	stdin   io.WriteCloser
	stdout  *bufio.Reader
	width   int
	height  int
	log     logging.Logger
}

// newFFmpegPictureSource starts ffmpeg configured to demux inputFormat
// (e.g. "mpegts" or "h264") from stdin and emit rawvideo rgba frames of
// exactly (width, height) on stdout.
func newFFmpegPictureSource(ctx context.Context, inputFormat string, width, height int, log logging.Logger) (*ffmpegPictureSource, error) {
	args := []string{
		"-loglevel", "error",
		"-f", inputFormat,
		"-i", "pipe:0",
		"-vf", fmt.Sprintf("scale=%d:%d", width, height),
		"-pix_fmt", "rgba",
		"-f", "rawvideo",
		"pipe:1",
	}
	cmd := exec.CommandContext(ctx, ffmpegBin, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("pipeline: ffmpeg stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("pipeline: ffmpeg stdout pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("pipeline: start ffmpeg: %w", err)
	}

	return &ffmpegPictureSource{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReaderSize(stdout, width*height*4),
		width:  width,
		height: height,
		log:    log,
	}, nil
}

// Write feeds one access unit / TS payload chunk to ffmpeg's stdin.
func (s *ffmpegPictureSource) Write(b []byte) (int, error) {
	return s.stdin.Write(b)
}

// ReadPicture blocks until one full RGBA frame has been read back.
func (s *ffmpegPictureSource) ReadPicture() (*image.RGBA, error) {
	frameSize := s.width * s.height * 4
	buf := make([]byte, frameSize)
	if _, err := io.ReadFull(s.stdout, buf); err != nil {
		return nil, err
	}
	img := &image.RGBA{
		Pix:    buf,
		Stride: s.width * 4,
		Rect:   image.Rect(0, 0, s.width, s.height),
	}
	return img, nil
}

func (s *ffmpegPictureSource) Close() error {
	s.stdin.Close()
	return s.cmd.Wait()
}
