// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-from-linkedin/internal/archive"
	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history [query]",
	Short: "List or search archived conversions",
	Long: `History reads the local archive written by "convert --archive". Without
a query it lists the most recent conversions; with a query it matches a
substring of the name, the headline, or any skill.

Use --id to print the full data of one record, --delete to remove one, or
--export to dump every matching record as YAML or JSON.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	if err := bindFlags(viper.GetViper(), cmd, map[string]string{
		"archive.dir":         "archive-dir",
		"archive.max_results": "limit",
	}); err != nil {
		return err
	}
	cfg, err := loadArchiveConfig(viper.GetViper())
	if err != nil {
		return err
	}

	store, err := archive.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Debug().Str("db", store.Path()).Msg("opened archive")

	ctx := cmd.Context()
	jsonOutput, _ := cmd.Flags().GetBool("json")
	opts := archive.QueryOptions{Query: strings.Join(args, " "), MaxResults: cfg.MaxResults}

	if id, _ := cmd.Flags().GetString("id"); id != "" {
		rec, err := store.Get(ctx, id)
		if err != nil {
			return err
		}
		return writeResumeData(rec.Data, jsonOutput)
	}

	if id, _ := cmd.Flags().GetString("delete"); id != "" {
		return deleteRecord(ctx, os.Stdout, store, id)
	}

	if format, _ := cmd.Flags().GetString("export"); format != "" {
		return store.Export(ctx, os.Stdout, types.OutputFormat(format), opts)
	}

	records, err := historyRecords(ctx, store, opts)
	if err != nil {
		return err
	}
	return formatHistory(os.Stdout, records, jsonOutput)
}

// historyRecords lists the newest records, or searches when a query is set.
func historyRecords(ctx context.Context, store *archive.Store, opts archive.QueryOptions) ([]archive.Record, error) {
	if strings.TrimSpace(opts.Query) == "" {
		return store.List(ctx, opts.MaxResults)
	}
	return store.Search(ctx, opts)
}

func deleteRecord(ctx context.Context, w io.Writer, store *archive.Store, id string) error {
	if err := store.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(w, "Deleted %s\n", id)
	return nil
}

func formatHistory(w io.Writer, records []archive.Record, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(w, "No conversions found.")
		return nil
	}

	fmt.Fprintf(w, "%-36s  %-16s  %-24s  %-30s  %s\n",
		"ID", "Parsed", "Name", "Title", "Source")
	fmt.Fprintln(w, strings.Repeat("-", 130))

	for _, r := range records {
		fmt.Fprintf(w, "%-36s  %-16s  %-24s  %-30s  %s\n",
			r.ID, r.ParsedAt.Local().Format("2006-01-02 15:04"),
			truncate(r.Name, 24), truncate(r.Title, 30), r.SourcePDF)
	}

	fmt.Fprintf(w, "\n%d results\n", len(records))
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func init() {
	historyCmd.Flags().String("archive-dir", "archive", "directory holding the archive database")
	historyCmd.Flags().Int("limit", 20, "maximum number of results")
	historyCmd.Flags().Bool("json", false, "output results as JSON")
	historyCmd.Flags().String("id", "", "print the data of one archived record")
	historyCmd.Flags().String("delete", "", "remove one archived record")
	historyCmd.Flags().String("export", "", "export matching records: yaml or json")

	rootCmd.AddCommand(historyCmd)
}
