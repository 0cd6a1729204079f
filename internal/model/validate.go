/*
DESCRIPTION
  validate.go enforces the Watcher invariants: slate_url scheme,
  ingest_port range, and action URL validity.

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

package model

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalid is returned when a Watcher fails validation.
var ErrInvalid = errors.New("invalid watcher")

const (
	minIngestPort = 1024 // exclusive
	maxIngestPort = 60000 // exclusive
)

var slateSchemes = map[string]bool{"http": true, "https": true, "file": true}

// Validate enforces the invariants of spec.md §3: a recognised slate_url
// scheme, an ingest_port strictly between 1024 and 60000, and a valid URL
// on every HttpCall action.
func Validate(w *Watcher) error {
	if err := validateSlateURL(w.SlateURL); err != nil {
		return err
	}
	if w.Source.IngestPort <= minIngestPort || w.Source.IngestPort >= maxIngestPort {
		return fmt.Errorf("%w: ingest_port %d out of range (%d,%d)", ErrInvalid, w.Source.IngestPort, minIngestPort, maxIngestPort)
	}
	for i, t := range w.Transitions {
		for j, a := range t.Actions {
			if err := validateAction(a); err != nil {
				return fmt.Errorf("%w: transitions[%d].actions[%d]: %v", ErrInvalid, i, j, err)
			}
		}
	}
	return nil
}

func validateSlateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: slate_url: %v", ErrInvalid, err)
	}
	if !slateSchemes[strings.ToLower(u.Scheme)] {
		return fmt.Errorf("%w: slate_url has unrecognised scheme %q", ErrInvalid, u.Scheme)
	}
	return nil
}

func validateAction(a Action) error {
	switch a.Kind {
	case ActionKindHTTPCall:
		if a.HTTPCall == nil {
			return fmt.Errorf("%w: http_call action missing body", ErrInvalid)
		}
		u, err := url.Parse(a.HTTPCall.URL)
		if err != nil || u.Scheme == "" {
			return fmt.Errorf("%w: action url %q missing scheme", ErrInvalid, a.HTTPCall.URL)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown action kind %q", ErrInvalid, a.Kind)
	}
}
