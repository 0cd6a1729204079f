/*
DESCRIPTION
  server.go exposes the pipeline's latest-frame and metrics HTTP
  surfaces the control plane relies on (spec.md §4.3).

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

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultServerPort is the fixed port spec.md §4.3 names for the
// latest-frame and metrics surfaces.
const DefaultServerPort = 3030

// NewServerMux builds the handler serving GET /latest_frame and
// GET /metrics, per spec.md §4.3.
func NewServerMux(p *Pipeline) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /latest_frame", func(w http.ResponseWriter, r *http.Request) {
		frame := p.LatestFrame()
		if frame == nil {
			http.Error(w, "no frame published yet", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(frame)
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	return mux
}

// ListenAndServe starts the latest-frame/metrics server on
// DefaultServerPort, blocking until it returns an error.
func ListenAndServe(p *Pipeline) error {
	addr := fmt.Sprintf(":%d", DefaultServerPort)
	return http.ListenAndServe(addr, NewServerMux(p))
}
