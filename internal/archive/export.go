// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

const exportLimit = 100000

// ExportYAML writes every record matching opts to w as a YAML list.
func (s *Store) ExportYAML(ctx context.Context, w io.Writer, opts QueryOptions) error {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes every record matching opts to w as a JSON array.
func (s *Store) ExportJSON(ctx context.Context, w io.Writer, opts QueryOptions) error {
	records, err := s.exportRecords(ctx, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return nil
}

// Export writes records in the given format (yaml or json).
func (s *Store) Export(ctx context.Context, w io.Writer, format types.OutputFormat, opts QueryOptions) error {
	switch format {
	case types.OutputYAML:
		return s.ExportYAML(ctx, w, opts)
	case types.OutputJSON:
		return s.ExportJSON(ctx, w, opts)
	default:
		return fmt.Errorf("unsupported export format %q: use yaml or json", format)
	}
}

func (s *Store) exportRecords(ctx context.Context, opts QueryOptions) ([]Record, error) {
	opts.MaxResults = exportLimit
	records, err := s.Search(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}
	return records, nil
}
