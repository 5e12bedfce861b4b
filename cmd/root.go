/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"github.com/orien/modref/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "modref",
	Short: "Turn generated CLI reference pages into modular documentation",
	Long: `Modref post-processes generated AsciiDoc CLI reference pages into reference
modules that follow the modular documentation guidelines:

• Command titles become level one headings with an abstract
• Subsection headings are promoted and marked discrete
• Option listings become definition lists
• Links between command pages become cross references
• An assembly file includes every command module in order

Run "modref build" to regenerate the assembly and format every module in one go.`,
	Version:           version.Short(),
	SilenceUsage:      true,
	PersistentPreRunE: configureLogging,
}

// RootCommand returns the root command, e.g. for generating CLI documentation
func RootCommand() *cobra.Command {
	return rootCmd
}

// configureLogging sends diagnostic logs to stderr, at debug level with --verbose
func configureLogging(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")

	logrus.SetOutput(cmd.ErrOrStderr())
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
		logrus.WithFields(version.Fields()).Debug("modref build")
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
	return nil
}

func init() {
	rootCmd.SetVersionTemplate(version.Info() + "\n")

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "modref.yaml", "configuration file (optional)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
