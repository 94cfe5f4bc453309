// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/resume-from-linkedin/pkg/types"
)

// bindFlags binds config keys to the named flags of cmd. Binding happens
// per invocation because several commands share keys such as "backend".
func bindFlags(v *viper.Viper, cmd *cobra.Command, keys map[string]string) error {
	for key, flag := range keys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			return fmt.Errorf("binding %s: no flag --%s", key, flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding %s: %w", key, err)
		}
	}
	return nil
}

// loadConvertConfig builds a ConvertConfig from v, layering flags over
// environment over the config file, and applies defaults.
func loadConvertConfig(v *viper.Viper, pdfPath string) (types.ConvertConfig, error) {
	var cfg types.ConvertConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("reading configuration: %w", err)
	}
	cfg.PDFPath = pdfPath
	return cfg.WithDefaults(), nil
}

// loadArchiveConfig builds an ArchiveConfig from the archive.* keys of v.
func loadArchiveConfig(v *viper.Viper) (types.ArchiveConfig, error) {
	cfg, err := loadConvertConfig(v, "")
	if err != nil {
		return types.ArchiveConfig{}, err
	}
	return cfg.Archive, nil
}
