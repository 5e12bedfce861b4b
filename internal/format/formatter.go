/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package format

import (
	"context"
	"fmt"

	"github.com/orien/modref/internal/adoc"
	"github.com/orien/modref/internal/config"
	"github.com/orien/modref/internal/model"
	"github.com/orien/modref/internal/resolve"
	"github.com/sirupsen/logrus"
)

// Formatter rewrites command reference files into reference modules
type Formatter interface {
	FormatModules(ctx context.Context, dir string) ([]Result, error)
}

// Result records the outcome of formatting one module
type Result struct {
	Module  *model.Module
	Changed bool
}

// ModuleFormatter implements Formatter, rewriting each module file in place
type ModuleFormatter struct {
	filter   model.ModuleFilter
	rewriter *adoc.Rewriter
	fs       resolve.FileSystemResolver
	log      logrus.FieldLogger
}

// NewModuleFormatter creates a formatter for the modules described by cfg
func NewModuleFormatter(cfg *config.Config, fs resolve.FileSystemResolver, log logrus.FieldLogger) *ModuleFormatter {
	return &ModuleFormatter{
		filter: model.ModuleFilter{
			Prefix:    cfg.Modules.Prefix,
			Extension: cfg.Modules.Extension,
		},
		rewriter: adoc.NewRewriter(cfg.Product),
		fs:       fs,
		log:      log,
	}
}

// FormatModules formats every module in dir, one file at a time in name order.
// Files are only written when their content changes.
func (f *ModuleFormatter) FormatModules(ctx context.Context, dir string) ([]Result, error) {
	modules, err := f.fs.ListModules(dir, f.filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list modules: %w", err)
	}

	results := make([]Result, 0, len(modules))
	for _, module := range modules {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		changed, err := f.formatModule(module)
		if err != nil {
			return results, err
		}
		results = append(results, Result{Module: module, Changed: changed})
	}

	return results, nil
}

func (f *ModuleFormatter) formatModule(module *model.Module) (bool, error) {
	content, err := f.fs.ReadFile(module.Path)
	if err != nil {
		return false, fmt.Errorf("failed to format module %s: %w", module.Name, err)
	}

	formatted := f.rewriter.Rewrite(content)
	changed := formatted != content

	f.log.WithFields(logrus.Fields{
		"file":    module.Path,
		"changed": changed,
	}).Debug("module formatted")

	if !changed {
		return false, nil
	}

	if err := f.fs.WriteFile(module.Path, formatted); err != nil {
		return false, fmt.Errorf("failed to format module %s: %w", module.Name, err)
	}
	return true, nil
}
