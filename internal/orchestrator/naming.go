/*
DESCRIPTION
  naming.go centralises the deterministic object names and labels
  spec.md §4.6 requires the orchestrator adapter to derive from a
  Watcher id.

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

// Package orchestrator adapts the Watcher resource to the three
// Kubernetes objects that back it: a ConfigMap carrying watcher.json, a
// Deployment running the worker, and a Service fronting its ingest
// port (spec.md §4.6). internal/control drives this package; it never
// talks to the Kubernetes API directly.
package orchestrator

import "fmt"

const (
	// AppLabel is the value of the "app" label every object created by
	// this package carries.
	AppLabel = "hawkeye"

	// MetricsPort is the fixed TCP port every workload exposes for
	// /latest_frame and /metrics (spec.md §4.3, §4.6).
	MetricsPort = 3030
)

// ConfigName is the deterministic ConfigMap name for a watcher id.
func ConfigName(id string) string { return fmt.Sprintf("hawkeye-config-%s", id) }

// DeploymentName is the deterministic Deployment name for a watcher id.
func DeploymentName(id string) string { return fmt.Sprintf("hawkeye-deploy-%s", id) }

// ServiceName is the deterministic Service (spec.md's "ingress") name
// for a watcher id.
func ServiceName(id string) string { return fmt.Sprintf("hawkeye-vid-svc-%s", id) }

// Labels returns the {app, watcher_id} label set every object for id
// carries.
func Labels(id string) map[string]string {
	return map[string]string{
		"app":        AppLabel,
		"watcher_id": id,
	}
}

// SelectorLabels returns the subset of Labels used to select a
// workload's pods and to join List results across object kinds.
func SelectorLabels(id string) map[string]string {
	return Labels(id)
}
