package domain

// Phase is the logical state of a traversal.
type Phase string

const (
	PhaseAtNode               Phase = "at_node"               // Pointer on a Question (or a Leaf not yet inspected)
	PhaseAwaitingConfirmation Phase = "awaiting_confirmation" // Pointer on a Leaf, confirmation pending
	PhaseResolved             Phase = "resolved"              // Sink: entity confirmed
	PhaseInconclusive         Phase = "inconclusive"          // Sink: no entity could be confirmed
)

// Step records one consumed token: an answered question, or the final
// confirmation of a candidate (Confirmation set, Question holds the candidate name).
type Step struct {
	Question     string `json:"question"`
	Token        string `json:"token"`
	Answer       string `json:"answer"`
	Confirmation bool   `json:"confirmation,omitempty"`
}

// State represents the current snapshot of a traversal.
type State struct {
	// Topic is the name of the tree being traversed (informational).
	Topic string

	// Phase indicates if the traversal is still running or has reached a sink.
	Phase Phase

	// Current is the node under the pointer. Nil once the traversal has ended
	// without reaching a leaf.
	Current *Node

	// Path holds the answered questions, in order.
	Path []Step

	// Candidate is the entity of the leaf reached, if any.
	Candidate *Entity

	// Reason explains an inconclusive sink (ErrInputExhausted, ErrUnrecognizedAnswer...).
	Reason error
}

// NewState creates a traversal state positioned at the root of a tree.
func NewState(topic string, root *Node) *State {
	return &State{
		Topic:   topic,
		Phase:   PhaseAtNode,
		Current: root,
	}
}

// Terminal reports whether the state is a sink.
func (s *State) Terminal() bool {
	return s.Phase == PhaseResolved || s.Phase == PhaseInconclusive
}

// Prompt returns the text the host should show before the next token is read:
// the question, or the candidate name when awaiting confirmation.
func (s *State) Prompt() string {
	switch s.Phase {
	case PhaseAtNode:
		if s.Current != nil {
			return s.Current.Question()
		}
	case PhaseAwaitingConfirmation:
		if s.Candidate != nil {
			return s.Candidate.Name
		}
	}
	return ""
}

// Outcome summarizes the state for callers. Non-terminal states yield StatusPending.
func (s *State) Outcome() Outcome {
	out := Outcome{
		Topic:  s.Topic,
		Path:   append([]Step(nil), s.Path...),
		Reason: s.Reason,
	}
	if s.Candidate != nil {
		out.Candidate = s.Candidate.Name
	}
	switch s.Phase {
	case PhaseResolved:
		out.Status = StatusResolved
		out.Entity = out.Candidate
	case PhaseInconclusive:
		out.Status = StatusInconclusive
	default:
		out.Status = StatusPending
		out.Prompt = s.Prompt()
	}
	return out
}
