package task

import (
	"errors"
	"fmt"
)

// Reason classifies why an operation failed. Reasons are the only structured
// error information that crosses the runner boundary; everything else is a
// human-readable message.
type Reason string

const (
	ReasonInputNotFound Reason = "input not found"
	ReasonUnreadable    Reason = "unreadable or corrupt input"
	ReasonUnsupported   Reason = "unsupported format"
	ReasonOutputDir     Reason = "output directory unavailable"
	ReasonEncodeFailure Reason = "encode failure"
	ReasonToolMissing   Reason = "external tool missing"
	ReasonToolFailure   Reason = "external tool failure"
	ReasonCancelled     Reason = "cancelled"
)

// OpError is the failure type operations return. Operations must not let any
// other fault escape their boundary.
type OpError struct {
	Reason Reason
	Msg    string
}

func (e *OpError) Error() string {
	if e.Msg == "" {
		return string(e.Reason)
	}
	return e.Msg
}

// Errf builds an OpError with a formatted message.
func Errf(reason Reason, format string, args ...any) *OpError {
	return &OpError{Reason: reason, Msg: fmt.Sprintf(format, args...)}
}

// ReasonOf extracts the Reason from an operation error. Errors that are not
// OpErrors count as encode failures; the operation adapters are expected to
// have converted everything else already.
func ReasonOf(err error) Reason {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Reason
	}
	return ReasonEncodeFailure
}

// Kind tags a per-item outcome.
type Kind int

const (
	KindSuccess Kind = iota
	KindFailure
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindFailure:
		return "failure"
	case KindCancelled:
		return "cancelled"
	}
	return "unknown"
}

// Outcome is the per-input result of a run. Input carries the original path
// so the consumer can correlate it to a UI row without relying on ordering.
type Outcome struct {
	Input  string
	Kind   Kind
	Detail string // success detail or failure message
	Reason Reason // set for failures and cancellations
}

func successOutcome(input, detail string) Outcome {
	return Outcome{Input: input, Kind: KindSuccess, Detail: detail}
}

func failureOutcome(input string, err error) Outcome {
	return Outcome{Input: input, Kind: KindFailure, Detail: "Error: " + err.Error(), Reason: ReasonOf(err)}
}

func cancelledOutcome(input string) Outcome {
	return Outcome{Input: input, Kind: KindCancelled, Detail: "Cancelled", Reason: ReasonCancelled}
}
