/*
DESCRIPTION
  recoverable_mux.go implements RecoverableMux: an http.ServeMux that
  recovers from handler panics and reports them through a callback, so
  a panic in one handler returns a response instead of killing the
  API server (spec.md §6).

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

// Package httpx carries the small HTTP plumbing shared by the API
// server: panic recovery and the auth middleware live here so
// internal/api stays focused on routing and handlers.
package httpx

import "net/http"

// RecoveryFunc is invoked with the panic value when a handler panics.
// It must write a response to w and return true if it fully handled
// the panic (no further action taken by the mux).
type RecoveryFunc func(w http.ResponseWriter, recovered any) bool

// RecoverableMux is an http.ServeMux that recovers panics in its
// registered handlers and hands the recovered value to a RecoveryFunc.
type RecoverableMux struct {
	*http.ServeMux
	recover RecoveryFunc
}

// NewRecoverableMux builds a RecoverableMux. If recover is nil, a
// default handler logs nothing and responds 500.
func NewRecoverableMux(recover RecoveryFunc) *RecoverableMux {
	if recover == nil {
		recover = func(w http.ResponseWriter, _ any) bool {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return true
		}
	}
	return &RecoverableMux{ServeMux: http.NewServeMux(), recover: recover}
}

// Handle registers handler for pattern, wrapped in panic recovery.
func (m *RecoverableMux) Handle(pattern string, handler http.Handler) {
	m.ServeMux.Handle(pattern, m.wrap(handler))
}

// HandleFunc registers handler for pattern, wrapped in panic recovery.
func (m *RecoverableMux) HandleFunc(pattern string, handler http.HandlerFunc) {
	m.ServeMux.Handle(pattern, m.wrap(handler))
}

func (m *RecoverableMux) wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.recover(w, rec)
			}
		}()
		handler.ServeHTTP(w, r)
	})
}
