// Package store persists extraction history in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/schoolware/timetab/dbopen"
	"github.com/schoolware/timetab/idgen"
	"github.com/schoolware/timetab/schedule"
	"github.com/schoolware/timetab/shield"
)

// DDL creates the extraction history schema. All statements are
// idempotent.
const DDL = `
CREATE TABLE IF NOT EXISTS extractions (
    id             TEXT PRIMARY KEY,
    file_name      TEXT NOT NULL,
    file_type      TEXT NOT NULL,
    document_type  TEXT NOT NULL,
    total_sessions INTEGER NOT NULL DEFAULT 0,
    needs_ocr      INTEGER NOT NULL DEFAULT 0,
    record_json    TEXT NOT NULL,
    created_at     TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_extractions_created ON extractions(created_at);
`

// Store wraps the SQLite database holding extraction history. The
// shield rate_limits table lives in the same database so limits can be
// tuned without a deploy.
type Store struct {
	db    *sql.DB
	newID idgen.Generator
}

// Open opens (or creates) the database at path and runs migrations.
func Open(path string) (*Store, error) {
	db, err := dbopen.Open(path, dbopen.WithMkdirAll(), dbopen.WithSchema(shield.Schema), dbopen.WithSchema(DDL))
	if err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	return New(db), nil
}

// New wraps an already-opened database. The schema must be in place.
func New(db *sql.DB) *Store {
	return &Store{
		db:    db,
		newID: idgen.Prefixed("ext_", idgen.UUIDv7()),
	}
}

// DB returns the underlying *sql.DB for sharing with the rate limiter.
func (s *Store) DB() *sql.DB { return s.db }

// Close closes the underlying database connection.
func (s *Store) Close() error { return s.db.Close() }

// Extraction is one stored extraction result. Record is the full parsed
// timetable, persisted as JSON.
type Extraction struct {
	ID            string                   `json:"id"`
	FileName      string                   `json:"fileName"`
	FileType      string                   `json:"fileType"`
	DocumentType  string                   `json:"documentType"`
	TotalSessions int                      `json:"totalSessions"`
	NeedsOCR      bool                     `json:"needsOcr"`
	Record        *schedule.ScheduleRecord `json:"record,omitempty"`
	CreatedAt     string                   `json:"createdAt"`
}

// Insert stores an extraction and fills in its ID and CreatedAt.
// The write runs in a transaction and retries on SQLITE_BUSY.
func (s *Store) Insert(ctx context.Context, e *Extraction) error {
	if e.ID == "" {
		e.ID = s.newID()
	}
	if e.CreatedAt == "" {
		e.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	recordJSON, err := json.Marshal(e.Record)
	if err != nil {
		return fmt.Errorf("store: marshal record: %w", err)
	}

	needsOCR := 0
	if e.NeedsOCR {
		needsOCR = 1
	}
	err = dbopen.RunTx(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO extractions (id, file_name, file_type, document_type, total_sessions, needs_ocr, record_json, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, e.FileName, e.FileType, e.DocumentType, e.TotalSessions, needsOCR, string(recordJSON), e.CreatedAt,
		)
		return err
	})
	if err != nil {
		return fmt.Errorf("store: insert extraction: %w", err)
	}
	return nil
}

// Get returns an extraction by ID, record included. Returns nil, nil if
// not found.
func (s *Store) Get(ctx context.Context, id string) (*Extraction, error) {
	e := &Extraction{}
	var needsOCR int
	var recordJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, file_name, file_type, document_type, total_sessions, needs_ocr, record_json, created_at
		 FROM extractions WHERE id = ?`, id,
	).Scan(&e.ID, &e.FileName, &e.FileType, &e.DocumentType, &e.TotalSessions, &needsOCR, &recordJSON, &e.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.NeedsOCR = needsOCR == 1

	var rec schedule.ScheduleRecord
	if err := json.Unmarshal([]byte(recordJSON), &rec); err != nil {
		return nil, fmt.Errorf("store: unmarshal record %s: %w", id, err)
	}
	e.Record = &rec
	return e, nil
}

// ListRecent returns the most recent extractions, newest first, without
// their records.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*Extraction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, file_name, file_type, document_type, total_sessions, needs_ocr, created_at
		 FROM extractions ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Extraction
	for rows.Next() {
		e := &Extraction{}
		var needsOCR int
		if err := rows.Scan(&e.ID, &e.FileName, &e.FileType, &e.DocumentType, &e.TotalSessions, &needsOCR, &e.CreatedAt); err != nil {
			return nil, err
		}
		e.NeedsOCR = needsOCR == 1
		out = append(out, e)
	}
	return out, rows.Err()
}
