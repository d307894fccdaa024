package domain

import "strings"

// Answer is the normalized meaning of an answer token.
type Answer int

const (
	AnswerUnrecognized Answer = iota
	AnswerYes
	AnswerNo
)

func (a Answer) String() string {
	switch a {
	case AnswerYes:
		return "yes"
	case AnswerNo:
		return "no"
	default:
		return "unrecognized"
	}
}

// Affirmative and Negative are the accepted spellings, compared case-insensitively.
var (
	Affirmative = []string{"da", "d", "y", "yes"}
	Negative    = []string{"nu", "n", "no"}
)

// ParseAnswer normalizes a token into an Answer.
func ParseAnswer(token string) Answer {
	clean := strings.ToLower(strings.TrimSpace(token))
	for _, s := range Affirmative {
		if clean == s {
			return AnswerYes
		}
	}
	for _, s := range Negative {
		if clean == s {
			return AnswerNo
		}
	}
	return AnswerUnrecognized
}

// MarshalText encodes the answer by name in JSON and YAML.
func (a Answer) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
