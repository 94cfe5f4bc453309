// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// Record is one archived parse.
type Record struct {
	ID        string           `json:"id" yaml:"id"`
	SourcePDF string           `json:"source_pdf" yaml:"source_pdf"`
	Name      string           `json:"name" yaml:"name"`
	Title     string           `json:"title" yaml:"title"`
	ParsedAt  time.Time        `json:"parsed_at" yaml:"parsed_at"`
	Data      types.ResumeData `json:"data" yaml:"data"`
}

// QueryOptions holds parameters for List and Search.
type QueryOptions struct {
	// Query matches a case-insensitive substring of the name, the title
	// or any skill. Empty lists everything.
	Query string

	// MaxResults limits result count. Zero uses the store default.
	MaxResults int
}

const selectRecords = `SELECT r.id, r.source_pdf, r.name, r.title, r.parsed_at, r.data FROM resumes r`

// List returns the most recent records, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	return s.Search(ctx, QueryOptions{MaxResults: limit})
}

// Search returns records whose name, title or skills contain the query,
// newest first.
func (s *Store) Search(ctx context.Context, opts QueryOptions) ([]Record, error) {
	maxResults := opts.MaxResults
	if maxResults <= 0 {
		maxResults = s.maxResults
	}

	var (
		qb   strings.Builder
		args []any
	)
	qb.WriteString(selectRecords)

	if q := strings.TrimSpace(opts.Query); q != "" {
		pattern := "%" + escapeLike(q) + "%"
		qb.WriteString(` WHERE r.name LIKE ? ESCAPE '\' OR r.title LIKE ? ESCAPE '\'
			OR EXISTS (SELECT 1 FROM skills k WHERE k.resume_id = r.id AND k.skill LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern, pattern)
	}

	qb.WriteString(` ORDER BY r.parsed_at DESC, r.rowid DESC LIMIT ?`)
	args = append(args, maxResults)

	rows, err := s.db.QueryContext(ctx, qb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("querying archive: %w", err)
	}
	defer rows.Close()

	results := []Record{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, selectRecords+` WHERE r.id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return rec, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec      Record
		name     sql.NullString
		title    sql.NullString
		parsedAt string
		payload  string
	)
	if err := sc.Scan(&rec.ID, &rec.SourcePDF, &name, &title, &parsedAt, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, err
		}
		return Record{}, fmt.Errorf("scanning row: %w", err)
	}
	rec.Name = name.String
	rec.Title = title.String

	t, err := time.Parse(timeLayout, parsedAt)
	if err != nil {
		return Record{}, fmt.Errorf("record %s: parsing timestamp: %w", rec.ID, err)
	}
	rec.ParsedAt = t

	rec.Data = types.NewResumeData()
	if err := json.Unmarshal([]byte(payload), &rec.Data); err != nil {
		return Record{}, fmt.Errorf("record %s: decoding resume: %w", rec.ID, err)
	}
	return rec, nil
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
