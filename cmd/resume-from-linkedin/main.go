// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the resume-from-linkedin CLI, which
// converts a LinkedIn "Save to PDF" export into Markdown or structured data.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

const appName = "resume-from-linkedin"

// rootCmd is the base command for the resume-from-linkedin CLI.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Convert a LinkedIn profile PDF export into a Markdown resume",
	Long: `resume-from-linkedin reads the PDF produced by LinkedIn's "Save to PDF"
profile export, extracts the contact details, summary, experience,
education, skills and certifications, and renders them through an
editable Markdown template.

Subcommands: convert writes a resume, parse prints the extracted data,
history lists and searches previously archived conversions, and template
writes the default template for editing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")
		setupLogging(verbose)
		if cfg := viper.ConfigFileUsed(); cfg != "" {
			log.Debug().Str("file", cfg).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(loadDotEnv, initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./resume-from-linkedin.yaml or ~/.config/resume-from-linkedin/resume-from-linkedin.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// loadDotEnv reads .env from the working directory if present so its
// variables are visible to viper.
func loadDotEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: reading .env: %v\n", err)
	}
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", appName))
		}
	}

	viper.SetEnvPrefix("RESUME_FROM_LINKEDIN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}
}

func setupLogging(verbose bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(consoleWriter(os.Stderr))
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func consoleWriter(w io.Writer) zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: w != os.Stderr}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, oneLine(err))
		os.Exit(1)
	}
}

// oneLine flattens multi-line error text such as schema reports.
func oneLine(err error) string {
	return strings.Join(strings.Fields(err.Error()), " ")
}
