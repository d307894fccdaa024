package domain

import "time"

// Play is a journal record of one finished guessing run.
// Recording plays never modifies any tree.
type Play struct {
	ID       string    `json:"id"`
	Topic    string    `json:"topic"`
	Answers  []string  `json:"answers"`
	Status   Status    `json:"status"`
	Entity   string    `json:"entity,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	PlayedAt time.Time `json:"played_at"`
}

// NewPlay builds a journal record from an outcome.
func NewPlay(o Outcome, at time.Time) *Play {
	answers := make([]string, 0, len(o.Path))
	for _, s := range o.Path {
		answers = append(answers, s.Token)
	}
	return &Play{
		Topic:    o.Topic,
		Answers:  answers,
		Status:   o.Status,
		Entity:   o.Entity,
		Reason:   o.ReasonText(),
		PlayedAt: at.UTC(),
	}
}
