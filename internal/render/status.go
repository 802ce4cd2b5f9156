package render

// Status tracks a render request through its lifecycle. A request
// starts Idle, enters Rendering when the compiler is invoked, and ends
// in exactly one of Succeeded or Failed. There are no automatic
// retries; a failed request is reported and the caller may re-invoke.
type Status int

const (
	StatusIdle Status = iota
	StatusRendering
	StatusSucceeded
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRendering:
		return "rendering"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}
