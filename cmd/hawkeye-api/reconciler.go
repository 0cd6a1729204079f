/*
DESCRIPTION
  reconciler.go implements the supplemented periodic sweep: every ten
  minutes it lists the ConfigMap/Deployment/Service triple for every
  watcher and logs any watcher whose triple is incomplete. It never
  mutates cluster state; repair is left to an operator.

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

package main

import (
	"context"

	"github.com/ausocean/utils/logging"

	"github.com/hawkeye-video/hawkeye/internal/orchestrator"
)

// reconcileSweep lists every ConfigMap and Deployment known to the
// orchestrator and logs a warning for every watcher ID that does not
// have both. It is read-only: spec.md names no repair action, so none
// is taken here. The backing Service is not independently listable
// through Client, so this sweep checks the two object kinds that drive
// status derivation.
func reconcileSweep(ctx context.Context, client orchestrator.Client, log logging.Logger) {
	configs, err := client.ListConfigMaps(ctx)
	if err != nil {
		log.Error("reconcile: could not list config maps", "error", err)
		return
	}
	deployments, err := client.ListDeployments(ctx)
	if err != nil {
		log.Error("reconcile: could not list deployments", "error", err)
		return
	}

	haveConfig := make(map[string]bool, len(configs))
	for _, c := range configs {
		if id, ok := c.Labels["watcher_id"]; ok {
			haveConfig[id] = true
		}
	}
	haveDeployment := make(map[string]bool, len(deployments))
	for _, d := range deployments {
		if id, ok := d.Labels["watcher_id"]; ok {
			haveDeployment[id] = true
		}
	}

	seen := make(map[string]bool)
	for id := range haveConfig {
		seen[id] = true
	}
	for id := range haveDeployment {
		seen[id] = true
	}

	for id := range seen {
		if haveConfig[id] && haveDeployment[id] {
			continue
		}
		log.Warning("reconcile: incomplete watcher object pair",
			"watcher_id", id,
			"config", haveConfig[id],
			"deployment", haveDeployment[id])
	}
}
