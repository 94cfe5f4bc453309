// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/resume-from-linkedin/internal/archive"
	"github.com/pdiddy/resume-from-linkedin/internal/render"
	"github.com/pdiddy/resume-from-linkedin/internal/schema"
	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

func TestLoadConvertConfig_Defaults(t *testing.T) {
	cfg, err := loadConvertConfig(viper.New(), "Profile.pdf")
	require.NoError(t, err)

	assert.Equal(t, "Profile.pdf", cfg.PDFPath)
	assert.Equal(t, types.DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, types.DefaultTemplatesDir, cfg.TemplatesDir)
	assert.Equal(t, types.OutputMarkdown, cfg.Format)
	assert.Equal(t, types.BackendNative, cfg.Backend)
	assert.Equal(t, types.DuplicatesConcat, cfg.Parse.Duplicates)
	assert.Equal(t, types.DefaultArchiveDir, cfg.Archive.Dir)
	assert.False(t, cfg.Archive.Enabled)
}

func TestLoadConvertConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume-from-linkedin.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`out: cv.md
format: json
backend: poppler
frontmatter: true
parse:
  duplicates: last
archive:
  enabled: true
  dir: /var/lib/resumes
  max_results: 5
`), 0o644))

	v := viper.New()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())
	v.Set("format", "yaml")

	cfg, err := loadConvertConfig(v, "in.pdf")
	require.NoError(t, err)
	assert.Equal(t, "cv.md", cfg.OutputPath)
	assert.Equal(t, types.OutputYAML, cfg.Format)
	assert.Equal(t, types.BackendPoppler, cfg.Backend)
	assert.True(t, cfg.FrontMatter)
	assert.Equal(t, types.DuplicatesLast, cfg.Parse.Duplicates)
	assert.Equal(t, types.ArchiveConfig{Enabled: true, Dir: "/var/lib/resumes", MaxResults: 5}, cfg.Archive)

	ac, err := loadArchiveConfig(v)
	require.NoError(t, err)
	assert.Equal(t, cfg.Archive, ac)
}

func TestBindFlags(t *testing.T) {
	v := viper.New()
	require.NoError(t, convertCmd.Flags().Set("format", "pdf"))
	t.Cleanup(func() { _ = convertCmd.Flags().Set("format", "markdown") })

	require.NoError(t, bindFlags(v, convertCmd, map[string]string{"format": "format"}))
	assert.Equal(t, "pdf", v.GetString("format"))

	err := bindFlags(v, convertCmd, map[string]string{"x": "no-such-flag"})
	assert.Error(t, err)
}

func TestFormatHistory(t *testing.T) {
	records := []archive.Record{{
		ID:        "0b7c9a52-6d1e-4c1b-9a55-3f4ad0a1d2e3",
		SourcePDF: "Profile.pdf",
		Name:      "Jane Doe",
		Title:     "Principal Site Reliability Engineer, Platform",
		ParsedAt:  time.Date(2026, 2, 3, 4, 5, 0, 0, time.UTC),
	}}

	var buf bytes.Buffer
	require.NoError(t, formatHistory(&buf, records, false))
	out := buf.String()
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "Principal Site Reliability ...")
	assert.Contains(t, out, "1 results")

	buf.Reset()
	require.NoError(t, formatHistory(&buf, nil, false))
	assert.Equal(t, "No conversions found.\n", buf.String())

	buf.Reset()
	require.NoError(t, formatHistory(&buf, records, true))
	assert.True(t, strings.HasPrefix(buf.String(), "["))
	assert.Contains(t, buf.String(), `"source_pdf": "Profile.pdf"`)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "Zoë Ångs...", truncate("Zoë Ångström-Lee", 11))
}

func TestWriteDefaultTemplate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")

	path, err := writeDefaultTemplate(dir, false)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, render.DefaultTemplate(), data)

	_, err = writeDefaultTemplate(dir, false)
	assert.ErrorContains(t, err, "already exists")

	_, err = writeDefaultTemplate(dir, true)
	assert.NoError(t, err)
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "validation failed: 1. basics.name: too short",
		oneLine(errors.New("validation failed:\n  1. basics.name: too short\n")))
}

func testStore(t *testing.T) *archive.Store {
	t.Helper()
	store, err := archive.NewStore(types.ArchiveConfig{Dir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func savedResume(t *testing.T, store *archive.Store, name string, skills ...string) string {
	t.Helper()
	data := types.NewResumeData()
	data.Basics.Name = name
	data.Skills = append(data.Skills, skills...)
	id, err := store.Save(context.Background(), name+".pdf", data)
	require.NoError(t, err)
	return id
}

func TestHistoryRecords(t *testing.T) {
	store := testStore(t)
	savedResume(t, store, "Ada", "Go")
	savedResume(t, store, "Grace", "COBOL")
	ctx := context.Background()

	all, err := historyRecords(ctx, store, archive.QueryOptions{MaxResults: 10})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	blank, err := historyRecords(ctx, store, archive.QueryOptions{Query: "  ", MaxResults: 10})
	require.NoError(t, err)
	assert.Len(t, blank, 2)

	hits, err := historyRecords(ctx, store, archive.QueryOptions{Query: "cobol", MaxResults: 10})
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Grace", hits[0].Name)
}

func TestDeleteRecord(t *testing.T) {
	store := testStore(t)
	id := savedResume(t, store, "Ada")
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, deleteRecord(ctx, &buf, store, id))
	assert.Equal(t, "Deleted "+id+"\n", buf.String())

	_, err := store.Get(ctx, id)
	assert.ErrorIs(t, err, archive.ErrNotFound)

	err = deleteRecord(ctx, &buf, store, id)
	assert.ErrorIs(t, err, archive.ErrNotFound)
}

func TestCheckDocument(t *testing.T) {
	dir := t.TempDir()

	data := types.NewResumeData()
	data.Basics.Name = "Jane Doe"
	doc, err := render.JSON(data)
	require.NoError(t, err)
	good := filepath.Join(dir, "good.json")
	require.NoError(t, os.WriteFile(good, doc, 0o644))

	var buf bytes.Buffer
	require.NoError(t, checkDocument(&buf, good))
	assert.Equal(t, good+": valid\n", buf.String())

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"basics": {}}`), 0o644))
	err = checkDocument(&buf, bad)
	var ve *schema.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Fields())

	err = checkDocument(&buf, filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConsoleWriter_RFC3339(t *testing.T) {
	var buf bytes.Buffer
	at := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	logger := zerolog.New(consoleWriter(&buf)).With().Time(zerolog.TimestampFieldName, at).Logger()

	logger.Info().Msg("rendering")
	assert.True(t, strings.HasPrefix(buf.String(), at.Local().Format(time.RFC3339)+" INF rendering"), buf.String())
}
