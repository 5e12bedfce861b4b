/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/orien/modref/internal/assembly"
	"github.com/orien/modref/internal/config"
	"github.com/orien/modref/internal/config/file"
	"github.com/orien/modref/internal/format"
	"github.com/orien/modref/internal/output"
	"github.com/orien/modref/internal/resolve"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// configProvider, assembler and formatter can be injected for testing
	configProvider config.ConfigProvider
	assembler      assembly.Assembler
	formatter      format.Formatter
)

// SetConfigProvider allows injection of a config provider (for testing)
func SetConfigProvider(p config.ConfigProvider) {
	configProvider = p
}

// SetAssembler allows injection of an assembler (for testing)
func SetAssembler(a assembly.Assembler) {
	assembler = a
}

// SetFormatter allows injection of a formatter (for testing)
func SetFormatter(f format.Formatter) {
	formatter = f
}

// loadConfig validates and loads the configuration named by the --config flag
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	provider := configProvider
	if provider == nil {
		configFile, _ := cmd.Flags().GetString("config")
		provider = file.NewProvider(configFile)
	}

	if err := provider.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	cfg, err := provider.LoadConfig(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// getAssembler returns the injected assembler or one built from cfg
func getAssembler(cfg *config.Config) assembly.Assembler {
	if assembler != nil {
		return assembler
	}
	return assembly.NewFileAssembler(
		cfg,
		resolve.NewDefaultFileSystemResolver(),
		resolve.NewSprigTemplateProcessor(),
		logrus.StandardLogger(),
	)
}

// getFormatter returns the injected formatter or one built from cfg
func getFormatter(cfg *config.Config) format.Formatter {
	if formatter != nil {
		return formatter
	}
	return format.NewModuleFormatter(cfg, resolve.NewDefaultFileSystemResolver(), logrus.StandardLogger())
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout())
}

// stringFlagOr returns the flag value, or fallback when the flag is empty
func stringFlagOr(cmd *cobra.Command, name, fallback string) string {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return fallback
	}
	return value
}

// assemblyBesideModules resolves a relative assembly path against the parent of
// the modules directory: with the default layout, <docs>/modules pairs with
// <docs>/assemblies/assembly-cli-command-reference.adoc. Subdirectories of a
// custom relative path are kept; an absolute path is returned as is.
func assemblyBesideModules(modulesDir, assemblyFile string) string {
	if filepath.IsAbs(assemblyFile) {
		return assemblyFile
	}
	return filepath.Join(filepath.Dir(modulesDir), assemblyFile)
}
