/*
DESCRIPTION
  apperr.go is the error taxonomy shared by the control plane and the
  worker (spec.md §7), and the mapping from that taxonomy to HTTP status
  codes used by internal/api.

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

// Package apperr is the shared error taxonomy of spec.md §7.
package apperr

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalid: config model rejects a Watcher. Surfaces as 400.
	ErrInvalid = errors.New("invalid")
	// ErrNotFound: no workload or config for the requested id. Surfaces as 404.
	ErrNotFound = errors.New("not found")
	// ErrConflict: Start/Stop called in an incompatible status. Surfaces as 409.
	ErrConflict = errors.New("conflict")
	// ErrError: Start/Stop called while the watcher is in Error status. Surfaces as 406.
	ErrErrorState = errors.New("watcher in error state")
	// ErrUpstream: an orchestrator RPC or pod-frame fetch failed. Surfaces as 500 (417 for the frame proxy).
	ErrUpstream = errors.New("upstream failure")
	// ErrFetch: the reference slate could not be downloaded. Fatal at worker startup.
	ErrFetch = errors.New("could not fetch slate")
	// ErrPipeline: the decoder reported a bus error. Fatal; the supervisor tears the pipeline down.
	ErrPipeline = errors.New("pipeline error")
	// ErrAuth: missing or wrong bearer token. Surfaces as 401.
	ErrAuth = errors.New("unauthorized")
)

// StatusCode maps an error in the taxonomy to the HTTP status code
// spec.md §6/§7 assigns it. Errors outside the taxonomy map to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalid):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrErrorState):
		return http.StatusNotAcceptable
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrUpstream):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
