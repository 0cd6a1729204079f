/*
DESCRIPTION
  middleware.go implements bearer-token auth and the error-to-status
  translation every handler funnels its errors through (spec.md §6,
  §7).

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

// Package api implements the control plane's REST surface (spec.md §6).
package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/hawkeye-video/hawkeye/internal/apperr"
)

// requireBearer rejects any request whose Authorization header does
// not carry exactly the configured token, per spec.md §6.
func requireBearer(token string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
			writeError(w, apperr.ErrAuth)
			return
		}
		next(w, r)
	}
}

// writeError translates err through apperr.StatusCode and writes the
// {"message": ...} body spec.md §7 names.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperr.StatusCode(err))
	json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
}
