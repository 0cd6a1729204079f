/*
DESCRIPTION
  types.go defines the Watcher resource and its nested types: the
  declarative description of a video stream, its mode transitions and
  the actions fired on each transition.

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

// Package model defines the Watcher resource, its validation rules and
// its JSON wire format.
package model

// Status is the externally visible, derived status of a Watcher.
// It is never accepted on input; see statemachine.DeriveStatus.
type Status string

const (
	StatusRunning Status = "running"
	StatusReady   Status = "ready"
	StatusPending Status = "pending"
	StatusError   Status = "error"
)

// Container is the container format of the ingest stream.
type Container string

const (
	ContainerMpegTS    Container = "mpeg-ts"
	ContainerRawVideo  Container = "raw-video"
	ContainerFmp4      Container = "fmp4" // accepted for round-trip, never wired to a decoder.
)

// Codec is the video codec carried by the ingest stream.
type Codec string

const (
	CodecH264 Codec = "h264"
	CodecH265 Codec = "h265" // accepted for round-trip, never wired to a decoder.
)

// VideoMode classifies a single decoded frame.
type VideoMode string

const (
	ModeSlate   VideoMode = "slate"
	ModeContent VideoMode = "content"
)

// Watcher is the declarative resource describing one stream to observe
// and the actions to fire on slate/content transitions.
type Watcher struct {
	ID                 *string      `json:"id,omitempty"`
	Description        *string      `json:"description,omitempty"`
	SlateURL           string       `json:"slate_url"`
	Status             Status       `json:"status,omitempty"`
	StatusDescription  *string      `json:"status_description,omitempty"`
	Source             Source       `json:"source"`
	Transitions        []Transition `json:"transitions"`
}

// Source describes the ingest stream: port, container, codec and transport.
type Source struct {
	IngestPort int       `json:"ingest_port"`
	Container  Container `json:"container"`
	Codec      Codec     `json:"codec"`
	Transport  Transport `json:"transport"`
	IngestIP   *string   `json:"ingest_ip,omitempty"`
}

// Transport is presently fixed to RTP. It round-trips through a nested
// {"protocol":"rtp"} object, matching the wire shape of the original
// Rust model's internally-tagged Protocol enum.
type Transport struct{}

// Transition is an ordered pair of video modes plus the actions to fire
// when the last observed mode equals From and the new mode equals To.
type Transition struct {
	From    VideoMode `json:"from"`
	To      VideoMode `json:"to"`
	Actions []Action  `json:"actions"`
}
