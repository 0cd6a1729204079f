package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hawkeye-video/hawkeye/internal/model"
)

// fakeAction counts invocations and can be told to fail on its next call.
type fakeAction struct {
	calls    int
	failNext bool
}

func (f *fakeAction) Execute(ctx context.Context) error {
	f.calls++
	if f.failNext {
		f.failNext = false
		return errors.New("fake action failure")
	}
	return nil
}

// clock lets tests control an ActionExecutor's notion of "now".
type clock struct{ t time.Time }

func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestExecutor(f *fakeAction, c *clock) *ActionExecutor {
	e := NewActionExecutor(Transition{From: model.ModeContent, To: model.ModeSlate}, f, nil)
	e.now = c.now
	return e
}

// TestFirstModeSilence implements invariant 5: the first mode event
// after start never triggers an action.
func TestFirstModeSilence(t *testing.T) {
	f := &fakeAction{}
	c := &clock{t: time.Unix(0, 0)}
	e := newTestExecutor(f, c)

	e.Process(context.Background(), model.ModeSlate)
	assert.Equal(t, 0, f.calls)
}

// TestS1ContentToSlateFiresOnce implements spec.md §8 scenario S1.
func TestS1ContentToSlateFiresOnce(t *testing.T) {
	f := &fakeAction{}
	c := &clock{t: time.Unix(0, 0)}
	e := newTestExecutor(f, c)

	for _, m := range []model.VideoMode{model.ModeContent, model.ModeSlate, model.ModeSlate, model.ModeSlate} {
		e.Process(context.Background(), m)
	}
	assert.Equal(t, 1, f.calls)
}

// TestS2CooldownBlocksSecondFire implements spec.md §8 scenario S2.
func TestS2CooldownBlocksSecondFire(t *testing.T) {
	f := &fakeAction{}
	c := &clock{t: time.Unix(0, 0)}
	e := newTestExecutor(f, c)

	e.Process(context.Background(), model.ModeContent)
	e.Process(context.Background(), model.ModeSlate)
	c.advance(500 * time.Millisecond)
	e.Process(context.Background(), model.ModeContent)
	c.advance(500 * time.Millisecond)
	e.Process(context.Background(), model.ModeSlate)

	assert.Equal(t, 1, f.calls)
}

// TestS3CooldownElapses implements spec.md §8 scenario S3.
func TestS3CooldownElapses(t *testing.T) {
	f := &fakeAction{}
	c := &clock{t: time.Unix(0, 0)}
	e := newTestExecutor(f, c)

	e.Process(context.Background(), model.ModeContent)
	e.Process(context.Background(), model.ModeSlate)
	c.advance(11 * time.Second)
	e.Process(context.Background(), model.ModeContent)
	e.Process(context.Background(), model.ModeSlate)

	assert.Equal(t, 2, f.calls)
}

// TestCooldownMonotonicity implements invariant 3: for last_call = t0,
// no execution occurs for any event whose wall time is in (t0, t0+5s].
func TestCooldownMonotonicity(t *testing.T) {
	f := &fakeAction{}
	c := &clock{t: time.Unix(0, 0)}
	e := newTestExecutor(f, c)

	e.Process(context.Background(), model.ModeContent)
	e.Process(context.Background(), model.ModeSlate) // fires, lastCall = t0
	assert.Equal(t, 1, f.calls)

	for _, delta := range []time.Duration{time.Millisecond, time.Second, 5 * time.Second} {
		c.t = time.Unix(0, 0).Add(delta)
		e.Process(context.Background(), model.ModeContent)
		e.Process(context.Background(), model.ModeSlate)
	}
	assert.Equal(t, 1, f.calls, "no execution should occur within (t0, t0+5s]")

	c.t = time.Unix(0, 0).Add(5*time.Second + time.Nanosecond)
	e.Process(context.Background(), model.ModeContent)
	e.Process(context.Background(), model.ModeSlate)
	assert.Equal(t, 2, f.calls)
}

// TestTransitionSpecificity implements invariant 4: an executor for
// (a->b) fires only when the immediately preceding mode was a and the
// current mode is b.
func TestTransitionSpecificity(t *testing.T) {
	f := &fakeAction{}
	c := &clock{t: time.Unix(0, 0)}
	e := newTestExecutor(f, c)

	e.Process(context.Background(), model.ModeSlate)
	e.Process(context.Background(), model.ModeSlate) // slate->slate
	assert.Equal(t, 0, f.calls)

	e.Process(context.Background(), model.ModeContent) // slate->content
	assert.Equal(t, 0, f.calls)

	e.Process(context.Background(), model.ModeSlate) // content->slate, matches
	assert.Equal(t, 1, f.calls)
}

// TestExecutorRetriesAfterFailure verifies that a failed execution does
// not consume the cooldown, so the next matching event can fire again.
func TestExecutorRetriesAfterFailure(t *testing.T) {
	f := &fakeAction{failNext: true}
	c := &clock{t: time.Unix(0, 0)}
	e := newTestExecutor(f, c)

	e.Process(context.Background(), model.ModeContent)
	e.Process(context.Background(), model.ModeSlate) // fails, cooldown clock untouched
	assert.Equal(t, 1, f.calls)

	c.advance(time.Millisecond)
	e.Process(context.Background(), model.ModeContent)
	e.Process(context.Background(), model.ModeSlate)
	assert.Equal(t, 2, f.calls)
}
