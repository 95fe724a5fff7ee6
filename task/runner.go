package task

import (
	"os"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BatchRunner processes an ordered list of inputs through one operation on a
// single worker goroutine. One instance per invocation; it is not reusable.
//
// Cancellation is cooperative: Stop only flips a flag, observed at the start
// of each loop iteration. An in-flight operation finishes normally; every
// remaining item is individually reported as cancelled so the per-item
// accounting stays complete.
type BatchRunner struct {
	id  uuid.UUID
	req Request
	op  Operation
	log zerolog.Logger

	stopping atomic.Bool
	started  atomic.Bool
	events   chan Event

	// output dir state, touched only by the worker goroutine
	dirChecked bool
	dirErr     error
}

// NewBatchRunner builds a runner for the given request. The request must
// already be a snapshot; the controller takes care of that.
func NewBatchRunner(req Request, op Operation, log zerolog.Logger) *BatchRunner {
	id := uuid.New()
	return &BatchRunner{
		id:     id,
		req:    req,
		op:     op,
		log:    log.With().Str("run_id", id.String()).Logger(),
		events: make(chan Event, len(req.Inputs)*2+2),
	}
}

// Events returns the notification channel. It is closed after the terminal
// DoneEvent.
func (r *BatchRunner) Events() <-chan Event { return r.events }

// ID identifies the run in logs and events.
func (r *BatchRunner) ID() uuid.UUID { return r.id }

// Start launches the worker goroutine. Valid exactly once.
func (r *BatchRunner) Start() {
	if r.started.Swap(true) {
		return
	}
	go r.run()
}

// Stop requests cancellation. It never interrupts the item currently being
// processed; the effect is observed from the next iteration on.
func (r *BatchRunner) Stop() {
	r.stopping.Store(true)
}

func (r *BatchRunner) run() {
	defer close(r.events)

	total := len(r.req.Inputs)
	r.log.Debug().Int("total", total).Str("output_dir", r.req.OutputDir).Msg("batch run started")

	r.events <- StartedEvent{RunID: r.id, Total: total}
	r.events <- ProgressEvent{Completed: 0, Total: total}

	for i, input := range r.req.Inputs {
		var outcome Outcome
		switch {
		case r.stopping.Load():
			outcome = cancelledOutcome(input)
		default:
			outcome = r.processItem(input)
		}

		r.log.Debug().Str("input", input).Str("kind", outcome.Kind.String()).Msg(outcome.Detail)
		r.events <- ItemEvent{Outcome: outcome}
		r.events <- ProgressEvent{Completed: i + 1, Total: total}
	}

	r.log.Debug().Msg("batch run completed")
	r.events <- DoneEvent{RunID: r.id}
}

func (r *BatchRunner) processItem(input string) Outcome {
	if err := r.ensureOutputDir(); err != nil {
		return failureOutcome(input, err)
	}
	detail, err := r.op(input, r.req.OutputDir)
	if err != nil {
		return failureOutcome(input, err)
	}
	return successOutcome(input, detail)
}

// ensureOutputDir creates the output directory on first need. A creation
// failure is remembered and reported per item rather than aborting the batch.
func (r *BatchRunner) ensureOutputDir() error {
	if r.req.OutputDir == "" {
		return nil
	}
	if !r.dirChecked {
		r.dirChecked = true
		if err := os.MkdirAll(r.req.OutputDir, 0o755); err != nil {
			r.dirErr = Errf(ReasonOutputDir, "cannot create output directory %s: %v", r.req.OutputDir, err)
		}
	}
	return r.dirErr
}
