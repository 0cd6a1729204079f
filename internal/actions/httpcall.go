/*
DESCRIPTION
  httpcall.go implements the HttpCall action: an outbound webhook fired
  on a matching transition, with a 500ms connect timeout and an optional
  overall timeout (spec.md §4.4).

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

package actions

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/ausocean/utils/logging"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

const httpCallConnectTimeout = 500 * time.Millisecond

// HTTPCallAction fires a single HTTP request per execution. It does not
// retry on transport errors: spec.md §4.4 leaves HttpCall.Retries
// accepted by the schema but unhonoured by the current execution path
// (see DESIGN.md's resolution of that open question).
type HTTPCallAction struct {
	cfg model.HTTPCallAction
	log logging.Logger
}

// NewHTTPCallAction builds an Action from a parsed HttpCall config.
func NewHTTPCallAction(cfg model.HTTPCallAction, log logging.Logger) *HTTPCallAction {
	return &HTTPCallAction{cfg: cfg, log: log}
}

func (a *HTTPCallAction) Execute(ctx context.Context) error {
	start := time.Now()
	err := a.execute(ctx)

	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	httpCallLatency.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
	httpCallTotal.WithLabelValues(outcome).Inc()
	return err
}

func (a *HTTPCallAction) execute(ctx context.Context) error {
	var body string
	if a.cfg.Body != nil {
		body = *a.cfg.Body
	}

	req, err := http.NewRequestWithContext(ctx, string(a.cfg.Method), a.cfg.URL, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("actions: could not build request: %w", err)
	}
	for k, v := range a.cfg.Headers {
		req.Header.Set(k, v)
	}
	if a.cfg.Auth != nil {
		req.SetBasicAuth(a.cfg.Auth.Username, a.cfg.Auth.Password)
	}

	client := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: httpCallConnectTimeout}).DialContext,
		},
	}
	if a.cfg.Timeout != nil {
		client.Timeout = time.Duration(*a.cfg.Timeout) * time.Second
	}

	resp, err := client.Do(req)
	if err != nil {
		if a.log != nil {
			a.log.Warning("http call transport error", "url", a.cfg.URL, "error", err)
		}
		return fmt.Errorf("actions: http call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if a.log != nil {
			a.log.Debug("http call succeeded", "url", a.cfg.URL, "status", resp.StatusCode)
		}
		return nil
	}
	if a.log != nil {
		a.log.Warning("http call returned non-2xx", "url", a.cfg.URL, "status", resp.StatusCode)
	}
	return fmt.Errorf("actions: http call to %s returned status %d", a.cfg.URL, resp.StatusCode)
}
