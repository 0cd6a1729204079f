/*
DESCRIPTION
  fetch.go retrieves the reference slate image bytes referenced by a
  Watcher's slate_url, over http(s) or from the local filesystem.

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
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// ErrFetch is returned when the reference slate could not be retrieved.
var ErrFetch = errors.New("could not fetch slate")

const (
	slateConnectTimeout = 500 * time.Millisecond
	slateOverallTimeout = 10 * time.Second
)

// FetchSlate retrieves the bytes of the Watcher's reference slate image.
// http(s) URLs are fetched with a 500ms connect timeout and a 10s overall
// timeout; a non-2xx response is an error. file:// URLs are opened from
// the local filesystem.
func FetchSlate(ctx context.Context, w *Watcher) ([]byte, error) {
	u, err := url.Parse(w.SlateURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return fetchHTTP(ctx, w.SlateURL)
	case "file":
		return fetchFile(u)
	default:
		return nil, fmt.Errorf("%w: unsupported slate_url scheme %q", ErrFetch, u.Scheme)
	}
}

func fetchHTTP(ctx context.Context, rawURL string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, slateOverallTimeout)
	defer cancel()

	client := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{Timeout: slateConnectTimeout}).DialContext,
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: slate fetch returned status %d", ErrFetch, resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return b, nil
}

func fetchFile(u *url.URL) ([]byte, error) {
	path := u.Path
	if path == "" {
		path = u.Opaque
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return b, nil
}
