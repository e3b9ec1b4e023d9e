package remove

import "github.com/lakshaymaurya-felt/officemole/internal/config"

// Target is a concrete filesystem path that existed at resolution time.
type Target struct {
	Path  string
	Scope config.Scope
}

// Outcome classifies one removal attempt. Targets are attempted exactly
// once — there is no retry policy.
type Outcome int

const (
	// OutcomeRemoved means the privileged removal reported success.
	OutcomeRemoved Outcome = iota

	// OutcomeFailed covers every non-success from the privileged removal,
	// including a target that vanished between resolution and deletion.
	OutcomeFailed

	// OutcomeSkipped means resolution matched nothing. Not an error.
	OutcomeSkipped
)

// String returns the outcome label used in debug logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeRemoved:
		return "removed"
	case OutcomeFailed:
		return "failed"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Tally holds the running counters for one removal run. It is owned
// exclusively by the orchestrator, reset each invocation, never persisted.
type Tally struct {
	BundlesRemoved int
	SupportRemoved int
	Errors         int
}
