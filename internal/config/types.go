/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"
)

// Default values used when no configuration file is present or a key is unset
const (
	DefaultProduct          = "rhoas"
	DefaultModulesDir       = "modules"
	DefaultModulePrefix     = "ref-cli"
	DefaultExtension        = ".adoc"
	DefaultAssemblyFile     = "assemblies/assembly-cli-command-reference.adoc"
	DefaultAssemblyID       = "cli-command-reference_{context}"
	DefaultAssemblyTitle    = "CLI command reference"
	DefaultAssemblyAbstract = "You use the `rhoas` CLI to manage your application services from the command line."
	DefaultIncludePath      = "../{rhoas-module}"
	DefaultLevelOffset      = "+1"
	DefaultPreviewLabel     = "IMPORTANT"
	DefaultPreviewNote      = "The `rhoas` command-line interface (CLI) is currently available for Development Preview. " +
		"Development Preview releases provide early access to a limited set of features that might not be fully tested and that might change in the final GA version. " +
		"Users should not use Development Preview software in production or for business-critical workloads. " +
		"Limited documentation is available for Development Preview releases and is typically focused on fundamental user goals."
)

// ConfigProvider defines the interface for loading and validating configuration
type ConfigProvider interface {
	// LoadConfig loads the resolved configuration, applying defaults
	LoadConfig(ctx context.Context) (*Config, error)

	// Validate checks the configuration for consistency and errors
	Validate() error
}

// Config represents the resolved modref configuration
type Config struct {
	Product  string // Product command that prefixes every reference page title
	Modules  *ModulesConfig
	Assembly *AssemblyConfig
	Preview  *PreviewConfig
}

// ModulesConfig describes where command reference modules live and how they are named
type ModulesConfig struct {
	Directory string
	Prefix    string
	Extension string
}

// AssemblyConfig describes the generated assembly file
type AssemblyConfig struct {
	File        string
	ID          string
	Title       string
	Abstract    string
	IncludePath string
	LevelOffset string
}

// PreviewConfig describes the admonition added to the assembly
type PreviewConfig struct {
	Enabled bool
	Label   string
	Note    string
}

// Default returns the configuration used for the rhoas CLI reference
func Default() *Config {
	return &Config{
		Product: DefaultProduct,
		Modules: &ModulesConfig{
			Directory: DefaultModulesDir,
			Prefix:    DefaultModulePrefix,
			Extension: DefaultExtension,
		},
		Assembly: &AssemblyConfig{
			File:        DefaultAssemblyFile,
			ID:          DefaultAssemblyID,
			Title:       DefaultAssemblyTitle,
			Abstract:    DefaultAssemblyAbstract,
			IncludePath: DefaultIncludePath,
			LevelOffset: DefaultLevelOffset,
		},
		Preview: &PreviewConfig{
			Enabled: true,
			Label:   DefaultPreviewLabel,
			Note:    DefaultPreviewNote,
		},
	}
}
