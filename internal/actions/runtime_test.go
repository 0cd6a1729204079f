package actions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

// TestRuntimeDrivesExecutorsInOrderAndStopsOnTerminate exercises the
// full Event -> Runtime -> ActionExecutor path end to end.
func TestRuntimeDrivesExecutorsInOrderAndStopsOnTerminate(t *testing.T) {
	f1 := &fakeAction{}
	f2 := &fakeAction{}
	c := &clock{t: time.Unix(0, 0)}
	e1 := newTestExecutor(f1, c)
	e2 := NewActionExecutor(Transition{From: model.ModeSlate, To: model.ModeContent}, f2, nil)
	e2.now = c.now

	events := make(chan Event)
	rt := NewRuntime([]*ActionExecutor{e1, e2}, events, nil)

	done := make(chan struct{})
	go func() {
		rt.Run(context.Background())
		close(done)
	}()

	events <- ModeEvent(model.ModeContent)
	events <- ModeEvent(model.ModeSlate)
	events <- ModeEvent(model.ModeContent)
	events <- TerminateEvent()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runtime did not stop after terminate event")
	}

	assert.Equal(t, 1, f1.calls, "content->slate executor should fire once")
	assert.Equal(t, 1, f2.calls, "slate->content executor should fire once")
}

// TestRuntimeStopsOnContextCancellation verifies Run returns promptly
// when its context is cancelled, without requiring a Terminate event.
func TestRuntimeStopsOnContextCancellation(t *testing.T) {
	events := make(chan Event)
	rt := NewRuntime(nil, events, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		rt.Run(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("runtime did not stop after context cancellation")
	}
}
