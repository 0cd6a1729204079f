/*
DESCRIPTION
  runtime.go implements Runtime: the single consumer of the mode-event
  channel, driving every registered ActionExecutor in registration order
  (spec.md §4.4, §5).

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

	"github.com/ausocean/utils/logging"
)

// Runtime consumes the mode-event channel and drives every registered
// ActionExecutor. It is the single consumer described in spec.md §5.
type Runtime struct {
	executors []*ActionExecutor
	events    <-chan Event
	log       logging.Logger
}

// NewRuntime builds a Runtime over an immutable list of executors.
func NewRuntime(executors []*ActionExecutor, events <-chan Event, log logging.Logger) *Runtime {
	return &Runtime{executors: executors, events: events, log: log}
}

// Run blocks, processing events until a Terminate event arrives or ctx
// is cancelled. Every executor observes every Mode event in the order
// it was emitted (spec.md §5 ordering guarantee), since a single
// goroutine drives all of them against one channel.
func (r *Runtime) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-r.events:
			if !ok {
				return
			}
			switch ev.Kind {
			case EventTerminate:
				if r.log != nil {
					r.log.Info("action runtime received terminate event")
				}
				return
			case EventMode:
				for _, e := range r.executors {
					e.Process(ctx, ev.Mode)
				}
			}
		}
	}
}
