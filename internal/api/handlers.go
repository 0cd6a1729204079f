/*
DESCRIPTION
  handlers.go implements the REST handlers of spec.md §6: watcher
  CRUD/lifecycle, the latest-frame proxy, and the healthcheck.

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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hawkeye-video/hawkeye/internal/apperr"
	"github.com/hawkeye-video/hawkeye/internal/model"
	"github.com/hawkeye-video/hawkeye/internal/orchestrator"
)

func (s *Server) listWatchers(w http.ResponseWriter, r *http.Request) {
	watchers, err := s.control.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, watchers)
}

func (s *Server) createWatcher(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", apperr.ErrInvalid, err))
		return
	}
	watcher, err := model.Parse(body)
	if err != nil {
		writeError(w, fmt.Errorf("%w: %v", apperr.ErrInvalid, err))
		return
	}

	created, err := s.control.Create(r.Context(), *watcher)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) getWatcher(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	watcher, err := s.control.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, watcher)
}

func (s *Server) deleteWatcher(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.control.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}

func (s *Server) startWatcher(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.control.Start(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "started"})
}

func (s *Server) stopWatcher(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.control.Stop(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "stopped"})
}

// videoFrameProxy implements the supplemented /video_frame route: it
// forwards the request to the worker pod's own latest-frame server,
// translating unreachability into the 417 spec.md §6 names specifically
// for this route (rather than the control plane's default 500).
func (s *Server) videoFrameProxy(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	watcher, err := s.control.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if watcher.Status != model.StatusRunning {
		writeError(w, fmt.Errorf("%w: watcher is not running", apperr.ErrErrorState))
		return
	}

	addr := fmt.Sprintf("http://%s.%s.svc.cluster.local:%d/latest_frame",
		orchestrator.ServiceName(id), s.namespace, orchestrator.MetricsPort)

	client := http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(addr)
	if err != nil {
		w.WriteHeader(http.StatusExpectationFailed)
		json.NewEncoder(w).Encode(map[string]string{"message": "pod not reachable"})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		w.WriteHeader(http.StatusExpectationFailed)
		json.NewEncoder(w).Encode(map[string]string{"message": "pod not reachable"})
		return
	}

	w.Header().Set("Content-Type", "image/png")
	io.Copy(w, resp.Body)
}

func (s *Server) healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
