// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-from-linkedin/internal/convert"
	"github.com/pdiddy/resume-from-linkedin/internal/render"
	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

var parseCmd = &cobra.Command{
	Use:   "parse <pdf>",
	Short: "Print the data extracted from a LinkedIn PDF export",
	Long: `Parse extracts the resume data from a LinkedIn profile PDF and prints it
to stdout as YAML, or as JSON with --json. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	if err := bindFlags(viper.GetViper(), cmd, map[string]string{
		"backend":          "backend",
		"parse.duplicates": "duplicates",
	}); err != nil {
		return err
	}
	cfg, err := loadConvertConfig(viper.GetViper(), args[0])
	if err != nil {
		return err
	}

	p := convert.New(log.Logger)
	if cfg, err = p.Validate(cfg); err != nil {
		return err
	}
	data, _, err := p.Parse(cmd.Context(), cfg.PDFPath, cfg.Backend, cfg.Parse)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return writeResumeData(data, jsonOutput)
}

func writeResumeData(data types.ResumeData, jsonOutput bool) error {
	var (
		out []byte
		err error
	)
	if jsonOutput {
		out, err = render.JSON(data)
	} else {
		out, err = render.YAML(data)
	}
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	if err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func init() {
	parseCmd.Flags().Bool("json", false, "print JSON instead of YAML")
	parseCmd.Flags().String("backend", "native", "PDF text extraction backend: native or poppler")
	parseCmd.Flags().String("duplicates", "concat", "repeated section policy: concat, first, or last")

	rootCmd.AddCommand(parseCmd)
}
