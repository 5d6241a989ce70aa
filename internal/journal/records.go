package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultRecentLimit caps Recent when no positive limit is given.
const DefaultRecentLimit = 20

// Run identifies one invocation of the title command.
type Run struct {
	SessionID string
	StartedAt time.Time
	Simulate  bool
}

// Entry is one processed file.
type Entry struct {
	ID         int64
	SessionID  string
	Path       string
	Title      string
	Outcome    string
	Detail     string
	RecordedAt time.Time
}

// BeginRun opens a new run with a fresh session id.
func (s *Store) BeginRun(ctx context.Context, simulate bool) (Run, error) {
	run := Run{
		SessionID: uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Simulate:  simulate,
	}
	if err := s.execWithRetry(ctx,
		`INSERT INTO runs (session_id, started_at, simulate) VALUES (?, ?, ?)`,
		run.SessionID,
		run.StartedAt.Format(time.RFC3339Nano),
		boolToInt(simulate),
	); err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

// Record stores the outcome of one file. RecordedAt defaults to now.
func (s *Store) Record(ctx context.Context, entry Entry) error {
	if strings.TrimSpace(entry.SessionID) == "" {
		return errors.New("journal entry requires a session id")
	}
	if strings.TrimSpace(entry.Path) == "" {
		return errors.New("journal entry requires a path")
	}
	if entry.RecordedAt.IsZero() {
		entry.RecordedAt = time.Now().UTC()
	}
	if err := s.execWithRetry(ctx,
		`INSERT INTO outcomes (session_id, path, title, outcome, detail, recorded_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		entry.SessionID,
		entry.Path,
		nullableString(entry.Title),
		entry.Outcome,
		nullableString(entry.Detail),
		entry.RecordedAt.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return fmt.Errorf("insert outcome: %w", err)
	}
	return nil
}

// Recent returns the newest entries first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	rows, err := s.db.QueryContext(ensureContext(ctx),
		`SELECT id, session_id, path, title, outcome, detail, recorded_at
         FROM outcomes ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query outcomes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outcomes: %w", err)
	}
	return entries, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (Entry, error) {
	var (
		entry       Entry
		title       sql.NullString
		detail      sql.NullString
		recordedRaw string
	)
	if err := scanner.Scan(&entry.ID, &entry.SessionID, &entry.Path, &title, &entry.Outcome, &detail, &recordedRaw); err != nil {
		return Entry{}, fmt.Errorf("scan outcome: %w", err)
	}
	entry.Title = title.String
	entry.Detail = detail.String
	if ts, err := time.Parse(time.RFC3339Nano, recordedRaw); err == nil {
		entry.RecordedAt = ts
	}
	return entry, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
