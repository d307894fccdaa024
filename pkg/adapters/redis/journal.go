package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/arbor/pkg/domain"
	backend "github.com/redis/go-redis/v9"
)

// Journal implements ports.Journal using Redis.
//
// Keys:
//
//	<prefix>plays:<topic>  list of JSON plays, newest at the head
//	<prefix>tally:<topic>  sorted set of resolved entities scored by count
type Journal struct {
	client     backend.UniversalClient
	prefix     string
	ttl        time.Duration
	maxEntries int64
}

// Option configures the Redis journal.
type Option func(*Journal)

// WithPrefix sets the key prefix (default "arbor:").
func WithPrefix(prefix string) Option {
	return func(j *Journal) {
		j.prefix = prefix
	}
}

// WithTTL sets an expiration on the keys of a topic, refreshed on every record.
// Zero means the keys never expire.
func WithTTL(ttl time.Duration) Option {
	return func(j *Journal) {
		j.ttl = ttl
	}
}

// WithMaxEntries caps the play list of each topic. Zero keeps everything.
func WithMaxEntries(n int64) Option {
	return func(j *Journal) {
		j.maxEntries = n
	}
}

// New connects to Redis and returns a journal.
func New(ctx context.Context, addr, password string, db int, opts ...Option) (*Journal, error) {
	client := backend.NewClient(&backend.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}
	return NewFromClient(client, opts...), nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client backend.UniversalClient, opts ...Option) *Journal {
	j := &Journal{
		client: client,
		prefix: "arbor:",
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

func (j *Journal) playsKey(topic string) string { return j.prefix + "plays:" + topic }
func (j *Journal) tallyKey(topic string) string { return j.prefix + "tally:" + topic }

// Record pushes the play and bumps the entity tally in one transaction.
func (j *Journal) Record(ctx context.Context, play *domain.Play) error {
	if play.ID == "" {
		return fmt.Errorf("play missing ID")
	}
	data, err := json.Marshal(play)
	if err != nil {
		return fmt.Errorf("failed to marshal play: %w", err)
	}

	plays, tally := j.playsKey(play.Topic), j.tallyKey(play.Topic)
	_, err = j.client.TxPipelined(ctx, func(pipe backend.Pipeliner) error {
		pipe.LPush(ctx, plays, data)
		if j.maxEntries > 0 {
			pipe.LTrim(ctx, plays, 0, j.maxEntries-1)
		}
		if play.Status == domain.StatusResolved {
			pipe.ZIncrBy(ctx, tally, 1, play.Entity)
		}
		if j.ttl > 0 {
			pipe.Expire(ctx, plays, j.ttl)
			pipe.Expire(ctx, tally, j.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record play %s: %w", play.ID, err)
	}
	return nil
}

// Recent returns the latest plays of a topic, newest first.
func (j *Journal) Recent(ctx context.Context, topic string, limit int) ([]domain.Play, error) {
	stop := int64(-1)
	if limit > 0 {
		stop = int64(limit) - 1
	}
	raw, err := j.client.LRange(ctx, j.playsKey(topic), 0, stop).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read plays for %s: %w", topic, err)
	}

	plays := make([]domain.Play, 0, len(raw))
	for _, item := range raw {
		var p domain.Play
		if err := json.Unmarshal([]byte(item), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal play: %w", err)
		}
		plays = append(plays, p)
	}
	return plays, nil
}

// Tally returns how often each entity was resolved.
func (j *Journal) Tally(ctx context.Context, topic string) (map[string]int64, error) {
	scores, err := j.client.ZRangeWithScores(ctx, j.tallyKey(topic), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read tally for %s: %w", topic, err)
	}
	tally := make(map[string]int64, len(scores))
	for _, z := range scores {
		name, _ := z.Member.(string)
		tally[name] = int64(z.Score)
	}
	return tally, nil
}

// Close releases the underlying client.
func (j *Journal) Close() error {
	return j.client.Close()
}
