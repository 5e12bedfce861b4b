/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package model

import (
	"path/filepath"
	"strings"
)

// Module is a command reference module file on disk
type Module struct {
	Name string // File name, e.g. "ref-cli-rhoas-login.adoc"
	Path string // Path including the directory the module was found in
}

// ModuleFilter selects module files by name
type ModuleFilter struct {
	Prefix    string // Required file name prefix; empty matches every name
	Extension string // Required extension including the dot, e.g. ".adoc"
}

// Matches reports whether a file name has the filter's extension and its stem
// starts with the filter's prefix
func (f ModuleFilter) Matches(name string) bool {
	ext := filepath.Ext(name)
	if ext != f.Extension {
		return false
	}
	return strings.HasPrefix(strings.TrimSuffix(name, ext), f.Prefix)
}

// Names returns the file names of the given modules in order
func Names(modules []*Module) []string {
	names := make([]string, len(modules))
	for i, m := range modules {
		names[i] = m.Name
	}
	return names
}
