package task

import (
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Canceller is implemented by operations that can interrupt in-flight work,
// such as killing an external process. Cancel must be safe to call from a
// goroutine other than the one running the operation.
type Canceller interface {
	Cancel()
}

// SingleRunner executes one operation on exactly one input. Same shape as
// BatchRunner with a fixed item count of one: a StartedEvent once the
// operation has actually begun, then a terminal DoneEvent carrying the final
// status string.
type SingleRunner struct {
	id        uuid.UUID
	req       Request
	op        Operation
	canceller Canceller
	log       zerolog.Logger

	stopping atomic.Bool
	started  atomic.Bool
	events   chan Event
}

// NewSingleRunner builds a runner for a one-input request. canceller may be
// nil for operations that cannot be interrupted; Stop then only suppresses
// the success status.
func NewSingleRunner(req Request, op Operation, canceller Canceller, log zerolog.Logger) *SingleRunner {
	id := uuid.New()
	return &SingleRunner{
		id:        id,
		req:       req,
		op:        op,
		canceller: canceller,
		log:       log.With().Str("run_id", id.String()).Logger(),
		events:    make(chan Event, 4),
	}
}

// Events returns the notification channel, closed after the terminal event.
func (r *SingleRunner) Events() <-chan Event { return r.events }

// ID identifies the run in logs and events.
func (r *SingleRunner) ID() uuid.UUID { return r.id }

// Start launches the worker goroutine. Valid exactly once.
func (r *SingleRunner) Start() {
	if r.started.Swap(true) {
		return
	}
	go r.run()
}

// Stop requests best-effort interruption: the cancellation flag is set and
// the canceller, if any, is asked to stop the underlying work.
func (r *SingleRunner) Stop() {
	r.stopping.Store(true)
	if r.canceller != nil {
		r.canceller.Cancel()
	}
}

func (r *SingleRunner) run() {
	defer close(r.events)

	input := r.req.Inputs[0]
	r.log.Debug().Str("input", input).Msg("run started")
	r.events <- StartedEvent{RunID: r.id, Total: 1}

	detail, err := r.op(input, r.req.OutputDir)

	var outcome Outcome
	switch {
	case r.stopping.Load():
		outcome = cancelledOutcome(input)
	case err != nil:
		outcome = failureOutcome(input, err)
	default:
		outcome = successOutcome(input, detail)
	}

	r.log.Debug().Str("kind", outcome.Kind.String()).Msg(outcome.Detail)
	r.events <- ItemEvent{Outcome: outcome}
	r.events <- DoneEvent{RunID: r.id, Status: outcome.Detail}
}
