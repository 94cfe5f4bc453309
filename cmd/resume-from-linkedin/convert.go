// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-from-linkedin/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert <pdf> [pdf...]",
	Short: "Convert a LinkedIn PDF export to a Markdown resume",
	Long: `Convert reads a LinkedIn profile PDF, extracts its sections, and writes
the result through the resume.md.tmpl template in the templates directory.
When the template is missing the built-in one is used.

With --format yaml, json or pdf the structured data is written instead.
Given several PDFs, each is converted into --out-dir and named after its
input; existing outputs are skipped unless --force is set.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := bindFlags(viper.GetViper(), cmd, map[string]string{
		"out":              "out",
		"templates":        "templates",
		"format":           "format",
		"backend":          "backend",
		"frontmatter":      "frontmatter",
		"parse.duplicates": "duplicates",
		"archive.enabled":  "archive",
		"archive.dir":      "archive-dir",
	}); err != nil {
		return err
	}

	cfg, err := loadConvertConfig(viper.GetViper(), args[0])
	if err != nil {
		return err
	}
	p := convert.New(log.Logger)

	if len(args) > 1 {
		outDir, _ := cmd.Flags().GetString("out-dir")
		force, _ := cmd.Flags().GetBool("force")
		result := p.RunBatch(cmd.Context(), cfg, args, outDir, force, os.Stdout)
		if result.HasFailures() {
			return fmt.Errorf("%d of %d PDF(s) failed conversion", result.Failed, result.Total())
		}
		return nil
	}

	res, err := p.Run(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	if len(res.Warnings) > 0 {
		log.Warn().Int("count", len(res.Warnings)).Msg("extraction incomplete; review the output")
	}
	if res.ArchiveID != "" {
		log.Info().Str("id", res.ArchiveID).Msg("archived")
	}
	fmt.Fprintf(os.Stdout, "Wrote %s\n", res.OutputPath)
	return nil
}

func init() {
	convertCmd.Flags().StringP("out", "o", "resume.md", "output file")
	convertCmd.Flags().StringP("templates", "t", "templates", "directory containing resume.md.tmpl")
	convertCmd.Flags().String("format", "markdown", "output format: markdown, yaml, json, or pdf")
	convertCmd.Flags().String("backend", "native", "PDF text extraction backend: native or poppler")
	convertCmd.Flags().Bool("frontmatter", false, "prepend YAML front matter to Markdown output")
	convertCmd.Flags().String("duplicates", "concat", "repeated section policy: concat, first, or last")
	convertCmd.Flags().Bool("archive", false, "record the conversion in the local archive")
	convertCmd.Flags().String("archive-dir", "archive", "directory holding the archive database")
	convertCmd.Flags().String("out-dir", ".", "output directory when converting several PDFs")
	convertCmd.Flags().Bool("force", false, "overwrite existing outputs when converting several PDFs")

	rootCmd.AddCommand(convertCmd)
}
