/*
DESCRIPTION
  event.go defines the Event stream produced by the frame pipeline and
  consumed by the action Runtime (spec.md §4.4, §5).

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

// Package actions implements the rate-limited action runtime: it
// consumes a stream of mode-change events and fires per-transition
// HTTP callbacks, subject to a per-executor cooldown.
package actions

import "github.com/hawkeye-video/hawkeye/internal/model"

// EventKind discriminates the two Event variants.
type EventKind int

const (
	EventMode EventKind = iota
	EventTerminate
)

// Event is a single item in the mode-event stream: either a classified
// frame (Mode) or a pipeline shutdown signal (Terminate).
type Event struct {
	Kind EventKind
	Mode model.VideoMode
}

// ModeEvent constructs a Mode event.
func ModeEvent(m model.VideoMode) Event { return Event{Kind: EventMode, Mode: m} }

// TerminateEvent constructs a Terminate event.
func TerminateEvent() Event { return Event{Kind: EventTerminate} }
