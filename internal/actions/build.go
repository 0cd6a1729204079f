package actions

import (
	"github.com/ausocean/utils/logging"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

// BuildExecutors expands a Watcher's transitions into one ActionExecutor
// per (Transition, Action) pair, in declaration order, per spec.md §4.4.
func BuildExecutors(w *model.Watcher, log logging.Logger) []*ActionExecutor {
	var out []*ActionExecutor
	for _, t := range w.Transitions {
		transition := Transition{From: t.From, To: t.To}
		for _, a := range t.Actions {
			action := buildAction(a, log)
			if action == nil {
				continue
			}
			out = append(out, NewActionExecutor(transition, action, log))
		}
	}
	return out
}

func buildAction(a model.Action, log logging.Logger) Action {
	switch a.Kind {
	case model.ActionKindHTTPCall:
		if a.HTTPCall == nil {
			return nil
		}
		return NewHTTPCallAction(*a.HTTPCall, log)
	default:
		return nil
	}
}
