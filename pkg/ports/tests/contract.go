package tests

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/ports"
	"github.com/aretw0/arbor/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TopicLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.TopicLoader.
// expected maps each topic to the node count of its decoded tree.
func TopicLoaderContractTest(t *testing.T, loader ports.TopicLoader, expected map[string]int) {
	t.Helper()
	ctx := context.Background()

	// 1. GetDocument (Success)
	t.Run("GetDocument_Success", func(t *testing.T) {
		for topic, nodes := range expected {
			doc, err := loader.GetDocument(ctx, topic)
			require.NoError(t, err, "topic %s", topic)

			tree, err := schema.DecodeTree(topic, doc)
			require.NoError(t, err, "topic %s", topic)
			assert.Equal(t, nodes, tree.NodeCount(), "node count for %s", topic)
		}
	})

	// 2. GetDocument (NotFound)
	t.Run("GetDocument_NotFound", func(t *testing.T) {
		_, err := loader.GetDocument(ctx, "non-existent-topic")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrSourceUnavailable)
	})

	// 3. ListTopics
	t.Run("ListTopics", func(t *testing.T) {
		topics, err := loader.ListTopics(ctx)
		require.NoError(t, err)
		assert.Len(t, topics, len(expected))
		for topic := range expected {
			assert.Contains(t, topics, topic)
		}
	})
}

// JournalContractTest verifies that a Journal implementation records plays
// and returns them newest first.
func JournalContractTest(t *testing.T, journal ports.Journal) {
	t.Helper()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	plays := []domain.Play{
		{ID: "01", Topic: "animale", Answers: []string{"da", "da"}, Status: domain.StatusResolved, Entity: "vultur", PlayedAt: base},
		{ID: "02", Topic: "animale", Answers: []string{"nu", "da"}, Status: domain.StatusResolved, Entity: "pisica", PlayedAt: base.Add(time.Minute)},
		{ID: "03", Topic: "animale", Answers: []string{"nu", "nu"}, Status: domain.StatusInconclusive, Reason: domain.ErrConfirmationRejected.Error(), PlayedAt: base.Add(2 * time.Minute)},
		{ID: "04", Topic: "animale", Answers: []string{"da", "y"}, Status: domain.StatusResolved, Entity: "vultur", PlayedAt: base.Add(3 * time.Minute)},
		{ID: "05", Topic: "tari", Answers: []string{"da"}, Status: domain.StatusInconclusive, Reason: domain.ErrInputExhausted.Error(), PlayedAt: base.Add(4 * time.Minute)},
	}
	for i := range plays {
		require.NoError(t, journal.Record(ctx, &plays[i]), "record %s", plays[i].ID)
	}

	t.Run("Recent_Limit", func(t *testing.T) {
		got, err := journal.Recent(ctx, "animale", 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "04", got[0].ID)
		assert.Equal(t, "03", got[1].ID)
		assert.Equal(t, []string{"nu", "nu"}, got[1].Answers)
		assert.Equal(t, domain.StatusInconclusive, got[1].Status)
		assert.Equal(t, domain.ErrConfirmationRejected.Error(), got[1].Reason)
		assert.True(t, base.Add(2*time.Minute).Equal(got[1].PlayedAt), "played_at %v", got[1].PlayedAt)
	})

	t.Run("Recent_All", func(t *testing.T) {
		got, err := journal.Recent(ctx, "animale", 0)
		require.NoError(t, err)
		ids := make([]string, 0, len(got))
		for _, p := range got {
			ids = append(ids, p.ID)
		}
		assert.Equal(t, []string{"04", "03", "02", "01"}, ids)
	})

	t.Run("Recent_UnknownTopic", func(t *testing.T) {
		got, err := journal.Recent(ctx, fmt.Sprintf("missing-%d", time.Now().UnixNano()), 5)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("Tally", func(t *testing.T) {
		tally, err := journal.Tally(ctx, "animale")
		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"vultur": 2, "pisica": 1}, tally)

		tally, err = journal.Tally(ctx, "tari")
		require.NoError(t, err)
		assert.Empty(t, tally)
	})
}
