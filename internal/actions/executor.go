/*
DESCRIPTION
  executor.go implements ActionExecutor: the per-(Transition, Action)
  state machine that decides, on every mode event, whether to fire its
  action (spec.md §4.4).

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
	"time"

	"github.com/ausocean/utils/logging"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

// cooldown is the design constant from spec.md §4.4: an executor will
// not re-fire within this long of its last successful execution.
const cooldown = 5 * time.Second

// Transition is the (from, to) pair an ActionExecutor fires on.
type Transition struct {
	From model.VideoMode
	To   model.VideoMode
}

// ActionExecutor tracks one (Transition, Action) pair expanded from a
// Watcher's transitions. It is not safe for concurrent use: the Runtime
// drives all executors from a single goroutine, per spec.md §5.
type ActionExecutor struct {
	transition Transition
	action     Action
	log        logging.Logger

	lastMode    *model.VideoMode
	lastCall    time.Time
	hasLastCall bool

	// now is overridable for deterministic cooldown tests.
	now func() time.Time
}

// NewActionExecutor builds an ActionExecutor for the given transition
// and action.
func NewActionExecutor(transition Transition, action Action, log logging.Logger) *ActionExecutor {
	return &ActionExecutor{
		transition: transition,
		action:     action,
		log:        log,
		now:        time.Now,
	}
}

// Process handles a single mode event, per spec.md §4.4's per-event
// algorithm:
//  1. If last_mode is absent, record it and do nothing (first-mode
//     silence, invariant 5).
//  2. If (last_mode, mode) matches the transition and the executor is
//     allowed to run, execute the action. On success, reset the
//     cooldown clock. On failure, log and continue.
//  3. Always update last_mode afterwards.
func (e *ActionExecutor) Process(ctx context.Context, mode model.VideoMode) {
	if e.lastMode == nil {
		m := mode
		e.lastMode = &m
		return
	}

	if *e.lastMode == e.transition.From && mode == e.transition.To && e.allowedToRun() {
		if err := e.action.Execute(ctx); err != nil {
			if e.log != nil {
				e.log.Error("action execution failed", "from", e.transition.From, "to", e.transition.To, "error", err)
			}
		} else {
			e.lastCall = e.now()
			e.hasLastCall = true
		}
	}

	m := mode
	e.lastMode = &m
}

// allowedToRun implements invariant 3 (cooldown monotonicity): true iff
// no successful execution happened within the last 5 seconds.
func (e *ActionExecutor) allowedToRun() bool {
	if !e.hasLastCall {
		return true
	}
	return e.now().Sub(e.lastCall) > cooldown
}
