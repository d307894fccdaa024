package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/arbor/pkg/domain"
)

// TokenSource reads whitespace-separated tokens from a reader.
// Line breaks carry no meaning: "animale da\nda" is three tokens.
type TokenSource struct {
	scanner *bufio.Scanner
	read    int
}

// NewTokenSource creates a token source. A nil reader means stdin.
func NewTokenSource(r io.Reader) *TokenSource {
	if r == nil {
		r = os.Stdin
	}
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanWords)
	return &TokenSource{scanner: s}
}

// Next returns the next token, or domain.ErrInputExhausted at end of input.
func (s *TokenSource) Next(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInputExhausted, err)
	}
	if s.scanner.Scan() {
		s.read++
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInputExhausted, err)
	}
	return "", domain.ErrInputExhausted
}

// Read returns how many tokens were consumed so far.
func (s *TokenSource) Read() int {
	return s.read
}

// SliceSource serves tokens from a fixed list.
type SliceSource struct {
	tokens []string
	pos    int
}

// NewSliceSource creates a source over tokens.
func NewSliceSource(tokens ...string) *SliceSource {
	return &SliceSource{tokens: tokens}
}

// Next returns the next token, or domain.ErrInputExhausted.
func (s *SliceSource) Next(ctx context.Context) (string, error) {
	if s.pos >= len(s.tokens) {
		return "", domain.ErrInputExhausted
	}
	tok := s.tokens[s.pos]
	s.pos++
	return tok, nil
}

// Remaining returns the tokens not consumed yet.
func (s *SliceSource) Remaining() []string {
	return s.tokens[s.pos:]
}
