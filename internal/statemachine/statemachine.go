/*
DESCRIPTION
  statemachine.go implements DeriveStatus: the pure function joining an
  orchestrator's observed replica count with a workload's declarative
  target_status label into the externally visible Watcher status
  (spec.md §4.5).

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

// Package statemachine derives a Watcher's externally visible status
// from the workload object's observed and declared state, per spec.md
// §4.5's table. It holds no state of its own and talks to no cluster:
// callers in internal/control are responsible for fetching the inputs.
package statemachine

import "github.com/hawkeye-video/hawkeye/internal/model"

// TargetStatus is the declarative label an operator sets via Start/Stop.
// It is a narrower vocabulary than model.Status: a workload is never
// directly told to be Pending or Error, those are always derived.
type TargetStatus string

const (
	TargetReady   TargetStatus = "Ready"
	TargetRunning TargetStatus = "Running"
)

// Observation is the subset of orchestrator-observed workload state
// DeriveStatus needs. A nil field means the corresponding input was not
// present (spec.md §4.5's "no status present" / "target_status label
// missing" rows), not that it was observed to be zero or empty.
type Observation struct {
	// Replicas is the workload's observed available_replicas. Nil means
	// the workload had no reportable status at all.
	Replicas *int
	// Target is the workload's target_status label. Nil means the label
	// was missing entirely.
	Target *TargetStatus
}

// DeriveStatus implements the table in spec.md §4.5: it joins an
// observed replica count against a declared target_status to produce
// the externally visible status. It is pure and total: every
// combination of inputs, including missing ones, maps to a status.
func DeriveStatus(obs Observation) model.Status {
	if obs.Replicas == nil || obs.Target == nil {
		return model.StatusError
	}

	running := *obs.Replicas > 0

	switch *obs.Target {
	case TargetRunning:
		if running {
			return model.StatusRunning
		}
		return model.StatusPending // converging up
	case TargetReady:
		if !running {
			return model.StatusReady
		}
		return model.StatusPending // converging down
	default:
		return model.StatusError
	}
}
