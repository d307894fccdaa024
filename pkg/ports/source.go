package ports

import "context"

// AnswerSource is an ordered stream of answer tokens.
type AnswerSource interface {
	// Next returns the next token.
	// When the stream is over it returns an error wrapping domain.ErrInputExhausted.
	Next(ctx context.Context) (string, error)
}
