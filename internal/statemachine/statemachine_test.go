package statemachine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hawkeye-video/hawkeye/internal/model"
	"github.com/hawkeye-video/hawkeye/internal/statemachine"
)

func ptr[T any](v T) *T { return &v }

// TestDeriveStatus is an exhaustive table-driven test over spec.md
// §4.5's derivation table, implementing the suite's Testable Property
// 2 (status derivation is a pure function of observed state).
func TestDeriveStatus(t *testing.T) {
	running := statemachine.TargetRunning
	ready := statemachine.TargetReady

	cases := []struct {
		name string
		obs  statemachine.Observation
		want model.Status
	}{
		{
			name: "running observed, target running -> running",
			obs:  statemachine.Observation{Replicas: ptr(1), Target: &running},
			want: model.StatusRunning,
		},
		{
			name: "ready observed (zero replicas), target ready -> ready",
			obs:  statemachine.Observation{Replicas: ptr(0), Target: &ready},
			want: model.StatusReady,
		},
		{
			name: "ready observed, target running -> pending (converging up)",
			obs:  statemachine.Observation{Replicas: ptr(0), Target: &running},
			want: model.StatusPending,
		},
		{
			name: "running observed, target ready -> pending (converging down)",
			obs:  statemachine.Observation{Replicas: ptr(2), Target: &ready},
			want: model.StatusPending,
		},
		{
			name: "no status present -> error",
			obs:  statemachine.Observation{Replicas: nil, Target: &ready},
			want: model.StatusError,
		},
		{
			name: "target_status label missing -> error",
			obs:  statemachine.Observation{Replicas: ptr(1), Target: nil},
			want: model.StatusError,
		},
		{
			name: "both missing -> error",
			obs:  statemachine.Observation{},
			want: model.StatusError,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, statemachine.DeriveStatus(c.obs))
		})
	}
}

// TestDeriveStatusMultipleReplicasStillCountsAsRunning verifies the
// "replicas > 0" predicate, not an equality check against 1.
func TestDeriveStatusMultipleReplicasStillCountsAsRunning(t *testing.T) {
	running := statemachine.TargetRunning
	got := statemachine.DeriveStatus(statemachine.Observation{Replicas: ptr(5), Target: &running})
	assert.Equal(t, model.StatusRunning, got)
}
