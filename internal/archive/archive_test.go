// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(types.ArchiveConfig{Dir: filepath.Join(t.TempDir(), "archive"), MaxResults: 20})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	clock := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	store.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return store
}

func resume(name, title string, skills ...string) types.ResumeData {
	data := types.NewResumeData()
	data.Basics.Name = name
	data.Basics.Title = title
	data.Skills = append(data.Skills, skills...)
	return data
}

func seed(t *testing.T, s *Store) []string {
	t.Helper()
	ctx := context.Background()
	var ids []string
	for _, r := range []struct {
		pdf  string
		data types.ResumeData
	}{
		{"ada.pdf", resume("Ada Lovelace", "Analyst", "Mathematics", "Go")},
		{"grace.pdf", resume("Grace Hopper", "Rear Admiral", "COBOL", "Compilers")},
		{"linus.pdf", resume("Linus T", "Kernel Maintainer", "C", "Git")},
	} {
		id, err := s.Save(ctx, r.pdf, r.data)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func names(records []Record) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Name
	}
	return out
}

// --- tests ---

func TestNewStore_CreatesDatabase(t *testing.T) {
	s := testStore(t)
	_, err := os.Stat(s.Path())
	assert.NoError(t, err)
}

func TestNewStore_Reopen(t *testing.T) {
	dir := t.TempDir()
	cfg := types.ArchiveConfig{Dir: dir}

	s1, err := NewStore(cfg)
	require.NoError(t, err)
	id, err := s1.Save(context.Background(), "a.pdf", resume("Ada", ""))
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := NewStore(cfg)
	require.NoError(t, err)
	defer s2.Close()
	rec, err := s2.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ada", rec.Name)
}

func TestSaveAndGet(t *testing.T) {
	s := testStore(t)
	data := resume("Jane Doe", "Staff Engineer", "Go", "SQL")
	data.Experience = []types.Job{{Title: "Engineer", Company: "Acme", Start: "2020", Bullets: []string{"Shipped"}}}

	id, err := s.Save(context.Background(), "/tmp/Profile.pdf", data)
	require.NoError(t, err)
	assert.Len(t, id, 36)

	rec, err := s.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "/tmp/Profile.pdf", rec.SourcePDF)
	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "Staff Engineer", rec.Title)
	assert.Equal(t, time.Date(2026, 3, 1, 9, 1, 0, 0, time.UTC), rec.ParsedAt)
	assert.Equal(t, data, rec.Data)
}

func TestGet_NotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Get(context.Background(), "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestList_NewestFirst(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	records, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Linus T", "Grace Hopper", "Ada Lovelace"}, names(records))

	records, err = s.List(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Linus T", "Grace Hopper"}, names(records))
}

func TestList_Empty(t *testing.T) {
	s := testStore(t)
	records, err := s.List(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSearch(t *testing.T) {
	s := testStore(t)
	seed(t, s)

	tests := []struct {
		query string
		want  []string
	}{
		{query: "grace", want: []string{"Grace Hopper"}},
		{query: "admiral", want: []string{"Grace Hopper"}},
		{query: "git", want: []string{"Linus T"}},
		{query: "go", want: []string{"Ada Lovelace"}},
		{query: "a", want: []string{"Linus T", "Grace Hopper", "Ada Lovelace"}},
		{query: "%", want: []string{}},
		{query: "rust", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			records, err := s.Search(context.Background(), QueryOptions{Query: tt.query})
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(records))
		})
	}
}

func TestDelete(t *testing.T) {
	s := testStore(t)
	ids := seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, ids[0]))
	_, err := s.Get(ctx, ids[0])
	assert.True(t, errors.Is(err, ErrNotFound))

	records, err := s.Search(ctx, QueryOptions{Query: "mathematics"})
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.True(t, errors.Is(s.Delete(ctx, ids[0]), ErrNotFound))
}

func TestExport(t *testing.T) {
	s := testStore(t)
	seed(t, s)
	ctx := context.Background()

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(ctx, &buf, types.OutputJSON, QueryOptions{Query: "hopper"}))
		var got []Record
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, []string{"COBOL", "Compilers"}, got[0].Data.Skills)
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, s.Export(ctx, &buf, types.OutputYAML, QueryOptions{}))
		var got []Record
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Len(t, got, 3)
	})

	t.Run("unsupported", func(t *testing.T) {
		err := s.Export(ctx, &bytes.Buffer{}, types.OutputPDF, QueryOptions{})
		assert.Error(t, err)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c\\d`, escapeLike(`c\d`))
}
