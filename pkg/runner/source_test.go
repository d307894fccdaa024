package runner

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(t *testing.T, src interface {
	Next(context.Context) (string, error)
}) ([]string, error) {
	t.Helper()
	var out []string
	for {
		tok, err := src.Next(context.Background())
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
}

func TestTokenSource_SplitsOnAnyWhitespace(t *testing.T) {
	src := NewTokenSource(strings.NewReader("animale da\n\tnu  \r\nda\n"))
	got, err := drain(t, src)
	assert.ErrorIs(t, err, domain.ErrInputExhausted)
	assert.Equal(t, []string{"animale", "da", "nu", "da"}, got)
	assert.Equal(t, 4, src.Read())
}

func TestTokenSource_Empty(t *testing.T) {
	_, err := NewTokenSource(strings.NewReader("   \n")).Next(context.Background())
	assert.ErrorIs(t, err, domain.ErrInputExhausted)
}

func TestTokenSource_ReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewTokenSource(iotest.ErrReader(boom)).Next(context.Background())
	assert.ErrorIs(t, err, domain.ErrInputExhausted)
	assert.ErrorIs(t, err, boom)
}

func TestTokenSource_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewTokenSource(strings.NewReader("da")).Next(ctx)
	assert.ErrorIs(t, err, domain.ErrInputExhausted)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSliceSource(t *testing.T) {
	src := NewSliceSource("tari", "da")
	tok, err := src.Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tari", tok)
	assert.Equal(t, []string{"da"}, src.Remaining())

	got, err := drain(t, src)
	assert.ErrorIs(t, err, domain.ErrInputExhausted)
	assert.Equal(t, []string{"da"}, got)
	assert.Empty(t, src.Remaining())
}
