package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/aretw0/arbor/pkg/domain"
)

// Journal implements ports.Journal in memory.
// Safe for concurrent use.
type Journal struct {
	mu    sync.RWMutex
	plays map[string][]domain.Play
}

// NewJournal creates a new in-memory journal.
func NewJournal() *Journal {
	return &Journal{
		plays: make(map[string][]domain.Play),
	}
}

// Record appends a copy of the play.
func (j *Journal) Record(ctx context.Context, play *domain.Play) error {
	if play.ID == "" {
		return fmt.Errorf("play missing ID")
	}
	copied := *play
	copied.Answers = append([]string(nil), play.Answers...)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.plays[play.Topic] = append(j.plays[play.Topic], copied)
	return nil
}

// Recent returns the latest plays of a topic, newest first.
func (j *Journal) Recent(ctx context.Context, topic string, limit int) ([]domain.Play, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	all := j.plays[topic]
	n := len(all)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Play, 0, n)
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		p := all[i]
		p.Answers = append([]string(nil), p.Answers...)
		out = append(out, p)
	}
	return out, nil
}

// Tally counts resolved plays per entity.
func (j *Journal) Tally(ctx context.Context, topic string) (map[string]int64, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()

	tally := make(map[string]int64)
	for _, p := range j.plays[topic] {
		if p.Status == domain.StatusResolved {
			tally[p.Entity]++
		}
	}
	return tally, nil
}
