package task

import (
	"errors"

	"github.com/rs/zerolog"
)

// ErrBusy is returned when a start request arrives while a run is active.
// Requests are rejected, never queued.
var ErrBusy = errors.New("a run is already active")

// ErrNoInputs is returned when a start request carries no input files.
var ErrNoInputs = errors.New("no input files provided")

// runner is the controller's view of either runner flavor.
type runner interface {
	Stop()
}

// Controller owns the lifecycle of at most one active runner. All methods
// must be called from the same goroutine (the UI event loop); the runner's
// events are delivered to that goroutine, which feeds each one back through
// HandleEvent. This single-writer discipline is what makes the controller
// lock-free.
type Controller struct {
	log    zerolog.Logger
	active runner
	agg    Aggregate
}

// NewController builds a controller logging through log.
func NewController(log zerolog.Logger) *Controller {
	return &Controller{log: log}
}

// StartBatch validates the request, snapshots it, and launches a batch
// runner. The returned channel delivers the run's events; pass each one to
// HandleEvent.
func (c *Controller) StartBatch(req Request, op Operation) (<-chan Event, error) {
	if c.active != nil {
		return nil, ErrBusy
	}
	if len(req.Inputs) == 0 {
		return nil, ErrNoInputs
	}
	req = req.snapshot()
	c.agg.Reset(len(req.Inputs))

	r := NewBatchRunner(req, op, c.log)
	c.active = r
	c.log.Info().Str("run_id", r.ID().String()).Int("inputs", len(req.Inputs)).Msg("starting batch run")
	r.Start()
	return r.Events(), nil
}

// StartSingle launches a single-item runner for a one-input request.
func (c *Controller) StartSingle(req Request, op Operation, canceller Canceller) (<-chan Event, error) {
	if c.active != nil {
		return nil, ErrBusy
	}
	if len(req.Inputs) != 1 {
		return nil, errors.New("exactly one input file required")
	}
	req = req.snapshot()
	c.agg.Reset(1)

	r := NewSingleRunner(req, op, canceller, c.log)
	c.active = r
	c.log.Info().Str("run_id", r.ID().String()).Str("input", req.Inputs[0]).Msg("starting run")
	r.Start()
	return r.Events(), nil
}

// Cancel relays a user cancel gesture to the active runner. It does not
// itself alter any state; the runner's events drive everything else.
func (c *Controller) Cancel() {
	if c.active != nil {
		c.log.Info().Msg("cancellation requested")
		c.active.Stop()
	}
}

// HandleEvent applies one notification: item outcomes feed the aggregate and
// the terminal event releases the runner. Releasing only here guarantees a
// new run cannot start while a stale runner's events are still in flight.
func (c *Controller) HandleEvent(ev Event) {
	switch ev := ev.(type) {
	case ItemEvent:
		c.agg.Observe(ev.Outcome)
	case DoneEvent:
		c.active = nil
	}
}

// Busy reports whether a runner is currently live.
func (c *Controller) Busy() bool { return c.active != nil }

// Aggregate returns the current outcome counts for this run.
func (c *Controller) Aggregate() Aggregate { return c.agg }
