package task

import "github.com/google/uuid"

// Event is a notification from a runner to its consumer. For a given runner,
// events arrive in item order and DoneEvent is always last, after which the
// channel is closed.
type Event interface{ event() }

// StartedEvent is emitted once the run has actually begun executing.
type StartedEvent struct {
	RunID uuid.UUID
	Total int
}

// ItemEvent carries the outcome for one input. Emitted exactly once per input
// in a batch run.
type ItemEvent struct {
	Outcome Outcome
}

// ProgressEvent reports completed items out of the total. Completed is
// monotonically non-decreasing within one run.
type ProgressEvent struct {
	Completed int
	Total     int
}

// DoneEvent is the terminal notification. Status is the final status string
// for single-item runs; batch consumers read the controller's Aggregate
// instead.
type DoneEvent struct {
	RunID  uuid.UUID
	Status string
}

func (StartedEvent) event()  {}
func (ItemEvent) event()     {}
func (ProgressEvent) event() {}
func (DoneEvent) event()     {}
