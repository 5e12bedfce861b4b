/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/orien/modref/internal/config"
	"github.com/orien/modref/internal/format"
	"github.com/spf13/cobra"
)

// formatCmd represents the format command
var formatCmd = &cobra.Command{
	Use:   "format [modules-dir]",
	Short: "Format CLI command reference modules",
	Long: `Format generated CLI command reference pages as reference modules and add
the preview note to the assembly.

Only files named with the module prefix and extension (ref-cli*.adoc by
default) are rewritten. When a modules directory is given, the assembly is
looked up next to it, e.g. docs/modules pairs with
docs/assemblies/assembly-cli-command-reference.adoc.

Examples:
  modref format
  modref format ../modules
  modref format docs/modules --skip-preview`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		modulesDir := cfg.Modules.Directory
		if len(args) == 1 {
			modulesDir = args[0]
		}
		modulesDir, err = filepath.Abs(modulesDir)
		if err != nil {
			return fmt.Errorf("failed to resolve modules directory: %w", err)
		}

		assemblyPath := stringFlagOr(cmd, "assembly", cfg.Assembly.File)
		if len(args) == 1 && !cmd.Flags().Changed("assembly") {
			assemblyPath = assemblyBesideModules(modulesDir, cfg.Assembly.File)
		}

		skipPreview, _ := cmd.Flags().GetBool("skip-preview")
		_, err = runFormat(cmd, cfg, modulesDir, assemblyPath, cfg.Preview.Enabled && !skipPreview)
		return err
	},
}

// runFormat formats the modules and, when preview is set, adds the preview note to the assembly
func runFormat(cmd *cobra.Command, cfg *config.Config, modulesDir, assemblyPath string, preview bool) ([]format.Result, error) {
	printer := newPrinter(cmd)

	printer.StepPath("Formatting CLI command reference modules in", modulesDir)
	results, err := getFormatter(cfg).FormatModules(cmd.Context(), modulesDir)
	for _, result := range results {
		if result.Changed {
			printer.Done(result.Module.Name)
		} else {
			printer.Unchanged(result.Module.Name)
		}
	}
	if err != nil {
		return results, err
	}

	if !preview {
		return results, nil
	}

	printer.StepPath("Adding dev preview note to", filepath.Base(assemblyPath))
	if _, err := getAssembler(cfg).AddPreviewNote(cmd.Context(), assemblyPath); err != nil {
		return results, err
	}
	return results, nil
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().String("assembly", "", "assembly file that receives the preview note")
	formatCmd.Flags().Bool("skip-preview", false, "do not add the preview note to the assembly")
}
