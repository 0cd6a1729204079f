/*
DESCRIPTION
  server.go wires the REST route table of spec.md §6 onto a
  httpx.RecoverableMux, with bearer auth and a 16KiB request body cap.

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

package api

import (
	"net/http"

	"github.com/ausocean/utils/logging"

	"github.com/hawkeye-video/hawkeye/internal/control"
	"github.com/hawkeye-video/hawkeye/internal/httpx"
)

// maxRequestBody is the 16KiB cap spec.md §6 imposes on request bodies.
const maxRequestBody = 16 * 1024

// Server is the control plane's REST API.
type Server struct {
	control   *control.Service
	namespace string
	token     string
	log       logging.Logger
}

// NewServer builds a Server. token is the bearer credential every
// non-healthcheck route requires.
func NewServer(ctrl *control.Service, namespace, token string, log logging.Logger) *Server {
	return &Server{control: ctrl, namespace: namespace, token: token, log: log}
}

// Handler builds the route table, wrapped in panic recovery and bearer
// auth, per spec.md §6's table and rejection mapping.
func (s *Server) Handler() http.Handler {
	mux := httpx.NewRecoverableMux(func(w http.ResponseWriter, rec any) bool {
		s.log.Error("api handler panicked", "recovered", rec)
		http.Error(w, `{"message":"internal server error"}`, http.StatusInternalServerError)
		return true
	})

	auth := func(h http.HandlerFunc) http.HandlerFunc {
		return requireBearer(s.token, func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
			h(w, r)
		})
	}

	mux.HandleFunc("GET /v1/watchers", auth(s.listWatchers))
	mux.HandleFunc("POST /v1/watchers", auth(s.createWatcher))
	mux.HandleFunc("GET /v1/watchers/{id}", auth(s.getWatcher))
	mux.HandleFunc("DELETE /v1/watchers/{id}", auth(s.deleteWatcher))
	mux.HandleFunc("POST /v1/watchers/{id}/start", auth(s.startWatcher))
	mux.HandleFunc("POST /v1/watchers/{id}/stop", auth(s.stopWatcher))
	mux.HandleFunc("GET /v1/watchers/{id}/video_frame", auth(s.videoFrameProxy))
	mux.HandleFunc("GET /healthcheck", s.healthcheck)

	return mux
}
