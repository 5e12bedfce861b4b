/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// assembleCmd represents the assemble command
var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Generate the CLI command reference assembly",
	Long: `Generate the assembly file that includes every command reference module.

The assembly is overwritten with the configured ID, title and abstract,
followed by one include directive per module in name order. Each include
shifts the module's headings down one level.

Examples:
  modref assemble
  modref assemble --modules docs/modules --assembly docs/assemblies/cli.adoc`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		modulesDir := stringFlagOr(cmd, "modules", cfg.Modules.Directory)
		assemblyPath := stringFlagOr(cmd, "assembly", cfg.Assembly.File)

		newPrinter(cmd).Step("Generating CLI command ref assembly")
		return getAssembler(cfg).Generate(cmd.Context(), modulesDir, assemblyPath)
	},
}

func init() {
	rootCmd.AddCommand(assembleCmd)

	assembleCmd.Flags().String("modules", "", "directory containing the command reference modules (default from config)")
	assembleCmd.Flags().String("assembly", "", "assembly file to write (default from config)")
}
