package domain

// Unknown is the default inconclusive sentinel written to the result surface.
const Unknown = "unknown"

// Status is the externally visible result of a traversal.
type Status string

const (
	StatusResolved     Status = "resolved"
	StatusInconclusive Status = "inconclusive"
	StatusPending      Status = "pending" // Only from partial replays
)

// Outcome is the result of a guessing run.
type Outcome struct {
	Topic     string `json:"topic"`
	Status    Status `json:"status"`
	Entity    string `json:"entity,omitempty"`
	Candidate string `json:"candidate,omitempty"`
	Prompt    string `json:"prompt,omitempty"`
	Path      []Step `json:"path"`
	Reason    error  `json:"-"`
}

// Resolved reports whether an entity was confirmed.
func (o Outcome) Resolved() bool {
	return o.Status == StatusResolved
}

// Result returns the resolved entity name, or the sentinel otherwise.
func (o Outcome) Result(sentinel string) string {
	if o.Resolved() {
		return o.Entity
	}
	return sentinel
}

// ReasonText returns the reason as a string ("" when none).
func (o Outcome) ReasonText() string {
	if o.Reason == nil {
		return ""
	}
	return o.Reason.Error()
}

// Inconclusive builds an inconclusive outcome for a failure that happened
// before any traversal started (e.g. unknown topic).
func Inconclusive(topic string, reason error) Outcome {
	return Outcome{Topic: topic, Status: StatusInconclusive, Reason: reason}
}
