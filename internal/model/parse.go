/*
DESCRIPTION
  parse.go implements JSON parsing and serialisation of a Watcher.

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
	"bytes"
	"encoding/json"
	"fmt"
)

// Parse decodes a Watcher from its JSON wire format and validates it.
// Callers that construct a Watcher from an API create request must clear
// Status, StatusDescription and Source.IngestIP themselves, since those
// are server-derived and Parse has no notion of "coming from the API"
// versus "coming from a stored config".
func Parse(data []byte) (*Watcher, error) {
	var w Watcher
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&w); err != nil {
		return nil, fmt.Errorf("%w: could not decode watcher: %v", ErrInvalid, err)
	}
	if err := Validate(&w); err != nil {
		return nil, err
	}
	return &w, nil
}

// Serialise encodes a Watcher to its JSON wire format. Omitted optional
// fields are absent from the output, not null.
func Serialise(w *Watcher) ([]byte, error) {
	b, err := json.Marshal(w)
	if err != nil {
		return nil, fmt.Errorf("model: could not serialise watcher: %w", err)
	}
	return b, nil
}
