// Package sqlite implements the play journal on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/aretw0/arbor/pkg/domain"
)

// timeLayout is fixed-width so that text ordering matches time ordering.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Journal implements ports.Journal using SQLite.
type Journal struct {
	db *sql.DB

	mu      sync.Mutex // guards entropy
	entropy *rand.Rand
}

// Open opens or creates a SQLite database at the given path.
func Open(dbPath string) (*Journal, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	j := &Journal{
		db:      db,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS plays (
		id         TEXT PRIMARY KEY,
		topic      TEXT NOT NULL,
		answers    TEXT NOT NULL,
		status     TEXT NOT NULL,
		entity     TEXT,
		reason     TEXT,
		played_at  TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_plays_topic_played ON plays(topic, played_at DESC);
	CREATE INDEX IF NOT EXISTS idx_plays_topic_status ON plays(topic, status);
	`
	_, err := j.db.Exec(schema)
	return err
}

// NewID returns a fresh ULID.
func (j *Journal) NewID(at time.Time) string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(at), j.entropy).String()
}

// Record inserts a play. A play without ID gets a ULID assigned.
func (j *Journal) Record(ctx context.Context, play *domain.Play) error {
	if play.PlayedAt.IsZero() {
		play.PlayedAt = time.Now().UTC()
	}
	if play.ID == "" {
		play.ID = j.NewID(play.PlayedAt)
	}

	answers, err := json.Marshal(play.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}

	_, err = j.db.ExecContext(ctx,
		`INSERT INTO plays (id, topic, answers, status, entity, reason, played_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		play.ID, play.Topic, string(answers), string(play.Status),
		nullIfEmpty(play.Entity), nullIfEmpty(play.Reason),
		play.PlayedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("insert play %s: %w", play.ID, err)
	}
	return nil
}

// Recent returns the latest plays of a topic, newest first.
func (j *Journal) Recent(ctx context.Context, topic string, limit int) ([]domain.Play, error) {
	query := `SELECT id, topic, answers, status, entity, reason, played_at
		FROM plays WHERE topic = ? ORDER BY played_at DESC, rowid DESC`
	args := []any{topic}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query plays: %w", err)
	}
	defer rows.Close()

	plays := []domain.Play{}
	for rows.Next() {
		p, err := scanPlay(rows)
		if err != nil {
			return nil, err
		}
		plays = append(plays, p)
	}
	return plays, rows.Err()
}

// Tally counts resolved plays per entity.
func (j *Journal) Tally(ctx context.Context, topic string) (map[string]int64, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT entity, COUNT(*) FROM plays WHERE topic = ? AND status = ? GROUP BY entity`,
		topic, string(domain.StatusResolved))
	if err != nil {
		return nil, fmt.Errorf("query tally: %w", err)
	}
	defer rows.Close()

	tally := make(map[string]int64)
	for rows.Next() {
		var entity sql.NullString
		var count int64
		if err := rows.Scan(&entity, &count); err != nil {
			return nil, fmt.Errorf("scan tally: %w", err)
		}
		tally[entity.String] = count
	}
	return tally, rows.Err()
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}

func scanPlay(rows *sql.Rows) (domain.Play, error) {
	var (
		p               domain.Play
		answers, status string
		entity, reason  sql.NullString
		playedAt        string
	)
	if err := rows.Scan(&p.ID, &p.Topic, &answers, &status, &entity, &reason, &playedAt); err != nil {
		return p, fmt.Errorf("scan play: %w", err)
	}
	if err := json.Unmarshal([]byte(answers), &p.Answers); err != nil {
		return p, fmt.Errorf("unmarshal answers of %s: %w", p.ID, err)
	}
	t, err := time.Parse(timeLayout, playedAt)
	if err != nil {
		return p, fmt.Errorf("parse played_at of %s: %w", p.ID, err)
	}
	p.Status = domain.Status(status)
	p.Entity = entity.String
	p.Reason = reason.String
	p.PlayedAt = t
	return p, nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
