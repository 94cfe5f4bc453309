// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-from-linkedin/internal/schema"
)

var schemaCmd = &cobra.Command{
	Use:   "schema [resume.json]",
	Short: "Print the resume JSON Schema or check a document against it",
	Long: `Schema prints the JSON Schema that parsed resumes are checked against.
Given a JSON file, such as the output of "parse --json", it validates the
file instead and lists every violation.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			_, err := os.Stdout.Write(schema.Source())
			return err
		}
		return checkDocument(os.Stdout, args[0])
	},
}

func checkDocument(w io.Writer, path string) error {
	doc, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := schema.ValidateJSON(doc); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(w, "%s: valid\n", path)
	return nil
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
