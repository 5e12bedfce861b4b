/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/orien/modref/internal/model"
)

// FileSystemResolver defines the interface for discovering, reading and writing module files
type FileSystemResolver interface {
	ListModules(dir string, filter model.ModuleFilter) ([]*model.Module, error)
	ReadFile(path string) (string, error)
	WriteFile(path, content string) error
}

// DefaultFileSystemResolver implements FileSystemResolver on the local file system
type DefaultFileSystemResolver struct{}

// NewDefaultFileSystemResolver creates a resolver for the local file system
func NewDefaultFileSystemResolver() *DefaultFileSystemResolver {
	return &DefaultFileSystemResolver{}
}

// ListModules returns the regular files in dir matched by filter, sorted by name
func (fsr *DefaultFileSystemResolver) ListModules(dir string, filter model.ModuleFilter) ([]*model.Module, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read module directory %s: %w", dir, err)
	}

	modules := make([]*model.Module, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !filter.Matches(entry.Name()) {
			continue
		}
		modules = append(modules, &model.Module{
			Name: entry.Name(),
			Path: filepath.Join(dir, entry.Name()),
		})
	}

	sort.Slice(modules, func(i, j int) bool {
		return modules[i].Name < modules[j].Name
	})
	return modules, nil
}

// ReadFile reads the whole file into memory
func (fsr *DefaultFileSystemResolver) ReadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return string(content), nil
}

// WriteFile truncates the file and writes content, creating parent directories as needed
func (fsr *DefaultFileSystemResolver) WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
