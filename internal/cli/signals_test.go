package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/arbor/pkg/domain"
)

func TestContextReader(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	r := NewContextReader(ctx, strings.NewReader("animale da"))

	buf := make([]byte, 7)
	n, err := r.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "animale", string(buf[:n]))

	cancel()
	_, err = r.Read(buf)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSignalContext_CancelWithoutSignal(t *testing.T) {
	sc := NewSignalContext(context.Background())
	sc.Cancel()
	<-sc.Done()
	assert.Nil(t, sc.Signal())
}

func TestIsInterrupted(t *testing.T) {
	assert.True(t, isInterrupted(fmt.Errorf("%w: %w", domain.ErrInputExhausted, context.Canceled)))
	assert.False(t, isInterrupted(domain.ErrInputExhausted))
	assert.False(t, isInterrupted(nil))
}

func TestPlay_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var prompt bytes.Buffer
	out, err := Play(ctx, newEngine(t), PlayOptions{
		Input:  NewContextReader(ctx, strings.NewReader("animale da da")),
		Output: io.Discard,
		Prompt: &prompt,
		Brief:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusInconclusive, out.Status)
	assert.Contains(t, prompt.String(), "Interrupted.")
}
