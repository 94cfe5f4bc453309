// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package archive keeps a local SQLite history of parsed resumes so past
// conversions can be listed, searched by name, title or skill, and
// re-exported without re-reading the PDF.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// DBFile is the database file name inside the archive directory.
const DBFile = "resumes.db"

// timeLayout keeps parsed_at fixed-width so it sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ErrNotFound is returned by Get for an unknown record id.
var ErrNotFound = errors.New("resume not found")

// Store manages the archive database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
	now        func() time.Time
}

// NewStore opens or creates the archive at cfg.Dir/resumes.db and creates
// the schema if it does not exist.
func NewStore(cfg types.ArchiveConfig) (*Store, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = types.DefaultArchiveDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	dbPath := filepath.Join(dir, DBFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = types.DefaultMaxResults
	}

	s := &Store{
		db:         db,
		dir:        dir,
		maxResults: maxResults,
		now:        time.Now,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, DBFile)
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS resumes (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source_pdf TEXT NOT NULL,
			name TEXT,
			title TEXT,
			parsed_at TEXT NOT NULL,
			data TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS skills (
			resume_id TEXT NOT NULL REFERENCES resumes(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			skill TEXT NOT NULL,
			PRIMARY KEY (resume_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_resumes_parsed_at ON resumes(parsed_at)`,
		`CREATE INDEX IF NOT EXISTS idx_skills_skill ON skills(skill)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save records one parse of pdfPath and returns the new record id.
func (s *Store) Save(ctx context.Context, pdfPath string, data types.ResumeData) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("encoding resume: %w", err)
	}

	id := uuid.NewString()
	parsedAt := s.now().UTC().Format(timeLayout)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO resumes (id, source_pdf, name, title, parsed_at, data)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, pdfPath, data.Basics.Name, data.Basics.Title, parsedAt, string(payload),
	)
	if err != nil {
		return "", fmt.Errorf("inserting resume: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO skills (resume_id, position, skill) VALUES (?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, skill := range data.Skills {
		if _, err := stmt.ExecContext(ctx, id, i, skill); err != nil {
			return "", fmt.Errorf("inserting skill %q: %w", skill, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing resume: %w", err)
	}
	return id, nil
}

// Delete removes a record and its skills.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM resumes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting resume: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
