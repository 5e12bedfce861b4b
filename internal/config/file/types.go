/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package file contains the file-based configuration provider.
// These types represent the raw YAML structure before defaults are applied.
package file

// Config represents the raw YAML configuration file structure
type Config struct {
	Product  string    `yaml:"product"`
	Modules  *Modules  `yaml:"modules"`
	Assembly *Assembly `yaml:"assembly"`
	Preview  *Preview  `yaml:"preview"`
}

// Modules represents module discovery settings as they appear in YAML
type Modules struct {
	Directory string `yaml:"directory"`
	Prefix    string `yaml:"prefix"`
	Extension string `yaml:"extension"`
}

// Assembly represents assembly settings as they appear in YAML
type Assembly struct {
	File        string `yaml:"file"`
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Abstract    string `yaml:"abstract"`
	IncludePath string `yaml:"include_path"`
	LevelOffset string `yaml:"level_offset"`
}

// Preview represents the preview admonition settings as they appear in YAML
type Preview struct {
	Enabled *bool  `yaml:"enabled"` // nil means enabled
	Label   string `yaml:"label"`
	Note    string `yaml:"note"`
}
