package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCanceller records Cancel calls and unblocks the operation.
type fakeCanceller struct {
	cancelled chan struct{}
}

func (f *fakeCanceller) Cancel() {
	close(f.cancelled)
}

func singleReq(input string) Request {
	return Request{Inputs: []string{input}}
}

func TestSingleRunner_Success(t *testing.T) {
	op := func(input, _ string) (string, error) {
		return "Success (out.mp4)", nil
	}
	r := NewSingleRunner(singleReq("in.mp4"), op, nil, testLogger())
	r.Start()

	c := collect(t, r.Events())
	require.True(t, c.done)
	require.Len(t, c.items, 1)
	assert.Equal(t, KindSuccess, c.items[0].Kind)

	var started bool
	for _, ev := range c.order {
		if _, ok := ev.(StartedEvent); ok {
			started = true
		}
	}
	assert.True(t, started, "StartedEvent must be emitted once the operation begins")
}

func TestSingleRunner_Failure(t *testing.T) {
	op := func(input, _ string) (string, error) {
		return "", Errf(ReasonToolFailure, "ffmpeg failed (exit status 1)")
	}
	r := NewSingleRunner(singleReq("in.mp4"), op, nil, testLogger())
	r.Start()

	c := collect(t, r.Events())
	require.Len(t, c.items, 1)
	assert.Equal(t, KindFailure, c.items[0].Kind)
	assert.Equal(t, ReasonToolFailure, c.items[0].Reason)
	assert.Contains(t, c.items[0].Detail, "ffmpeg failed")
}

func TestSingleRunner_Cancel(t *testing.T) {
	fc := &fakeCanceller{cancelled: make(chan struct{})}
	running := make(chan struct{})
	op := func(input, _ string) (string, error) {
		close(running)
		<-fc.cancelled // behaves like a killed process: returns once cancelled
		return "", Errf(ReasonCancelled, "terminated")
	}
	r := NewSingleRunner(singleReq("in.mp4"), op, fc, testLogger())
	r.Start()

	<-running
	r.Stop()

	c := collect(t, r.Events())
	require.Len(t, c.items, 1)
	assert.Equal(t, KindCancelled, c.items[0].Kind)
	assert.Equal(t, "Cancelled", c.items[0].Detail)

	done, ok := c.order[len(c.order)-1].(DoneEvent)
	require.True(t, ok)
	assert.Equal(t, "Cancelled", done.Status)
}

func TestSingleRunner_StopSuppressesLateResult(t *testing.T) {
	// the operation completes successfully but a stop arrived first; the
	// terminal status must still read Cancelled
	hold := make(chan struct{})
	op := func(input, _ string) (string, error) {
		<-hold
		return "Success", nil
	}
	r := NewSingleRunner(singleReq("img.png"), op, nil, testLogger())
	r.Start()
	r.Stop()
	close(hold)

	c := collect(t, r.Events())
	require.Len(t, c.items, 1)
	assert.Equal(t, KindCancelled, c.items[0].Kind)
}
