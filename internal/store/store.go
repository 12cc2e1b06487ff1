// Package store persists the application state in a local SQLite database:
// the user profile, the chat transcript, the latest risk assessment, and an
// append-only mood journal. Everything lives on the user's machine.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mindwell/internal/logging"
	"mindwell/internal/wellness"
)

// ErrNotFound is returned when a requested record does not exist yet.
var ErrNotFound = errors.New("record not found")

const schema = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS mood_entries (
	id         TEXT PRIMARY KEY,
	mood       TEXT NOT NULL,
	intensity  INTEGER NOT NULL,
	sentiment  TEXT NOT NULL DEFAULT '',
	note       TEXT NOT NULL DEFAULT '',
	reason     TEXT NOT NULL DEFAULT '',
	source     TEXT NOT NULL,
	language   TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMP NOT NULL
);
`

// Keys of the singleton records in the kv table.
const (
	keyUser = "user_profile"
	keyChat = "chat_history"
	keyRisk = "risk_assessment"
)

// Store wraps the SQLite handle. Safe for concurrent use; database/sql
// serializes access to the single connection modernc.org/sqlite hands out.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates the database file (and parent directory) if needed and runs
// the schema.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	logging.Store("database ready at %s", path)
	return &Store{db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) putJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *Store) getJSON(ctx context.Context, key string, v any) error {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNotFound
	case err != nil:
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SaveUser stores the onboarding profile.
func (s *Store) SaveUser(ctx context.Context, profile wellness.UserProfile) error {
	return s.putJSON(ctx, keyUser, profile)
}

// User loads the onboarding profile. ErrNotFound before onboarding.
func (s *Store) User(ctx context.Context) (wellness.UserProfile, error) {
	var profile wellness.UserProfile
	err := s.getJSON(ctx, keyUser, &profile)
	return profile, err
}

// AppendMood records one check-in. Entries are never updated or deleted
// outside Reset.
func (s *Store) AppendMood(ctx context.Context, entry wellness.MoodEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO mood_entries (id, mood, intensity, sentiment, note, reason, source, language, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Mood, entry.Intensity, string(entry.Sentiment), entry.Note, entry.Reason,
		string(entry.Source), string(entry.Language), entry.Timestamp.UTC())
	if err != nil {
		return fmt.Errorf("append mood entry: %w", err)
	}
	return nil
}

// MoodHistory returns all check-ins oldest first.
func (s *Store) MoodHistory(ctx context.Context) ([]wellness.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, mood, intensity, sentiment, note, reason, source, language, created_at
		 FROM mood_entries ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("load mood history: %w", err)
	}
	defer rows.Close()

	var entries []wellness.MoodEntry
	for rows.Next() {
		var (
			e                           wellness.MoodEntry
			sentiment, source, language string
			ts                          time.Time
		)
		if err := rows.Scan(&e.ID, &e.Mood, &e.Intensity, &sentiment, &e.Note, &e.Reason, &source, &language, &ts); err != nil {
			return nil, fmt.Errorf("scan mood entry: %w", err)
		}
		e.Sentiment = wellness.Sentiment(sentiment)
		e.Source = wellness.MoodSource(source)
		e.Language = wellness.Language(language)
		e.Timestamp = ts
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// SaveChat stores the full chat transcript snapshot.
func (s *Store) SaveChat(ctx context.Context, messages []wellness.ChatMessage) error {
	return s.putJSON(ctx, keyChat, messages)
}

// ChatHistory loads the chat transcript. An empty history is not an error.
func (s *Store) ChatHistory(ctx context.Context) ([]wellness.ChatMessage, error) {
	var messages []wellness.ChatMessage
	err := s.getJSON(ctx, keyChat, &messages)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	return messages, err
}

// SaveRisk stores the latest risk assessment.
func (s *Store) SaveRisk(ctx context.Context, assessment wellness.RiskAssessment) error {
	return s.putJSON(ctx, keyRisk, assessment)
}

// LatestRisk loads the most recent assessment. ErrNotFound if none was saved.
func (s *Store) LatestRisk(ctx context.Context) (wellness.RiskAssessment, error) {
	var assessment wellness.RiskAssessment
	err := s.getJSON(ctx, keyRisk, &assessment)
	return assessment, err
}

// Reset wipes every record. Used by the privacy "delete my data" path.
func (s *Store) Reset(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return fmt.Errorf("reset kv: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM mood_entries`); err != nil {
		return fmt.Errorf("reset mood entries: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reset: %w", err)
	}

	logging.StoreWarn("all local data erased")
	return nil
}
