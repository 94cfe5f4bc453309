// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-from-linkedin/internal/render"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Write the built-in Markdown template for editing",
	Long: `Template writes the built-in resume.md.tmpl into the templates directory
so it can be customised. An existing file is kept unless --force is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("templates")
		force, _ := cmd.Flags().GetBool("force")
		path, err := writeDefaultTemplate(dir, force)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
		return nil
	},
}

func writeDefaultTemplate(dir string, force bool) (string, error) {
	path := filepath.Join(dir, render.TemplateName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists: use --force to overwrite", path)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s: %w", dir, err)
	}
	if err := os.WriteFile(path, render.DefaultTemplate(), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func init() {
	templateCmd.Flags().StringP("templates", "t", "templates", "templates directory")
	templateCmd.Flags().Bool("force", false, "overwrite an existing template")

	rootCmd.AddCommand(templateCmd)
}
