/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the assembly and format every module",
	Long: `Run the whole CLI reference pipeline:

  1. generate the assembly from the modules directory
  2. format every command reference module
  3. add the preview note to the assembly (unless disabled in the config)

Examples:
  modref build
  modref build --config docs/modref.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		modulesDir, err := filepath.Abs(stringFlagOr(cmd, "modules", cfg.Modules.Directory))
		if err != nil {
			return fmt.Errorf("failed to resolve modules directory: %w", err)
		}
		assemblyPath := stringFlagOr(cmd, "assembly", cfg.Assembly.File)

		newPrinter(cmd).Step("Generating CLI command ref assembly")
		if err := getAssembler(cfg).Generate(cmd.Context(), modulesDir, assemblyPath); err != nil {
			return err
		}

		results, err := runFormat(cmd, cfg, modulesDir, assemblyPath, cfg.Preview.Enabled)
		if err != nil {
			return err
		}

		changed := 0
		for _, result := range results {
			if result.Changed {
				changed++
			}
		}
		newPrinter(cmd).Done(fmt.Sprintf("%d module(s) formatted, %d unchanged", changed, len(results)-changed))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().String("modules", "", "directory containing the command reference modules (default from config)")
	buildCmd.Flags().String("assembly", "", "assembly file to write (default from config)")
}
