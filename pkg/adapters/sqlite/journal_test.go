package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	contract "github.com/aretw0/arbor/pkg/ports/tests"
	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "plays", "journal.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestJournal_Contract(t *testing.T) {
	contract.JournalContractTest(t, newTestJournal(t))
}

func TestJournal_AssignsID(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	play := domain.NewPlay(domain.Outcome{
		Topic:  "animale",
		Status: domain.StatusResolved,
		Entity: "vultur",
		Path:   []domain.Step{{Question: "zboara?", Token: "da", Answer: "yes"}, {Question: "vultur", Token: "da", Answer: "yes", Confirmation: true}},
	}, time.Now())
	require.NoError(t, j.Record(ctx, play))

	_, err := ulid.Parse(play.ID)
	require.NoError(t, err, "expected a ULID, got %q", play.ID)

	got, err := j.Recent(ctx, "animale", 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, play.ID, got[0].ID)
	assert.Equal(t, []string{"da", "da"}, got[0].Answers)
}

func TestJournal_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	ctx := context.Background()

	j, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, j.Record(ctx, &domain.Play{Topic: "tari", Status: domain.StatusInconclusive, Reason: "input exhausted", Answers: []string{}}))
	require.NoError(t, j.Close())

	j, err = Open(path)
	require.NoError(t, err)
	defer j.Close()

	got, err := j.Recent(ctx, "tari", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "input exhausted", got[0].Reason)
	assert.Empty(t, got[0].Entity)
}
