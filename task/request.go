package task

// Operation is a single-item media transform. It receives the input path and
// the run's output directory (empty means "next to the input") and returns a
// human-readable success detail, or an *OpError describing the failure.
//
// Operations are invoked sequentially on the runner goroutine and must be
// safe to call there; they carry their own parameters, snapshotted before the
// run starts.
type Operation func(input, outputDir string) (detail string, err error)

// Request is the immutable description of one run. The controller snapshots
// UI-editable values into it before launch; nothing mutates it afterwards.
type Request struct {
	Inputs    []string
	OutputDir string // empty = write next to each input
}

// snapshot returns a copy with its own backing array so later edits to the
// caller's slice never affect an in-flight run.
func (r Request) snapshot() Request {
	inputs := make([]string, len(r.Inputs))
	copy(inputs, r.Inputs)
	r.Inputs = inputs
	return r
}
