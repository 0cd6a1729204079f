/*
DESCRIPTION
  framecell.go implements FrameCell: the single-writer/many-reader
  latest-frame publication point spec.md §4.3 step 3 requires. Readers
  must never observe a torn buffer, so publication swaps an
  atomic.Pointer rather than mutating shared memory in place.

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

import "sync/atomic"

// FrameCell publishes the most recent PNG-encoded still. It is safe for
// concurrent use by one writer and any number of readers.
type FrameCell struct {
	ptr atomic.Pointer[[]byte]
}

// Publish stores a new frame. The caller must pass an owned copy: the
// cell never mutates or retains a reference back to the caller's buffer
// beyond what was handed to it.
func (c *FrameCell) Publish(frame []byte) {
	c.ptr.Store(&frame)
}

// Latest returns the most recently published frame, or nil if none has
// been published yet.
func (c *FrameCell) Latest() []byte {
	p := c.ptr.Load()
	if p == nil {
		return nil
	}
	return *p
}
