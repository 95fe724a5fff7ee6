package task

import "fmt"

// Aggregate accumulates per-item outcomes during a run. It is owned by the
// controller and only ever touched from the control goroutine.
type Aggregate struct {
	total     int
	success   int
	failure   int
	cancelled int
}

// Reset clears the counters for a new run of total items.
func (a *Aggregate) Reset(total int) {
	*a = Aggregate{total: total}
}

// Observe records one item outcome.
func (a *Aggregate) Observe(o Outcome) {
	switch o.Kind {
	case KindSuccess:
		a.success++
	case KindFailure:
		a.failure++
	case KindCancelled:
		a.cancelled++
	}
}

func (a Aggregate) Total() int     { return a.total }
func (a Aggregate) Success() int   { return a.success }
func (a Aggregate) Failure() int   { return a.failure }
func (a Aggregate) Cancelled() int { return a.cancelled }

// Pending is how many items have not reported an outcome yet. It reaches zero
// by the time the terminal notification arrives.
func (a Aggregate) Pending() int {
	return a.total - a.success - a.failure - a.cancelled
}

// Summary renders the end-of-run notice.
func (a Aggregate) Summary() string {
	s := fmt.Sprintf("Finished: %d succeeded, %d failed", a.success, a.failure)
	if a.cancelled > 0 {
		s += fmt.Sprintf(", %d cancelled", a.cancelled)
	}
	return s
}
