/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package assembly

import (
	"context"
	"fmt"

	"github.com/orien/modref/internal/adoc"
	"github.com/orien/modref/internal/config"
	"github.com/orien/modref/internal/model"
	"github.com/orien/modref/internal/resolve"
	"github.com/sirupsen/logrus"
)

// assemblyTemplate renders the assembly header followed by one include per module.
// {context} and {rhoas-module} style attributes are left for Asciidoctor to resolve.
const assemblyTemplate = `[id="{{ .ID }}"]
= {{ .Title | trim }}

{{ .AbstractRole }}
{{ .Abstract | trim }}

{{ range .Modules }}include::{{ $.IncludePath | trimSuffix "/" }}/{{ . }}[leveloffset={{ $.LevelOffset }}]
{{ end }}`

// Assembler generates the command reference assembly and maintains its preview note
type Assembler interface {
	// Generate writes the assembly at assemblyPath, including every module found in modulesDir
	Generate(ctx context.Context, modulesDir, assemblyPath string) error

	// AddPreviewNote inserts the preview admonition unless the assembly already has it.
	// It reports whether the file was changed.
	AddPreviewNote(ctx context.Context, assemblyPath string) (bool, error)
}

// FileAssembler implements Assembler on top of a FileSystemResolver
type FileAssembler struct {
	assembly  *config.AssemblyConfig
	preview   *config.PreviewConfig
	filter    model.ModuleFilter
	fs        resolve.FileSystemResolver
	templates resolve.TemplateProcessor
	log       logrus.FieldLogger
}

// NewFileAssembler creates an assembler for the given configuration
func NewFileAssembler(
	cfg *config.Config,
	fs resolve.FileSystemResolver,
	templates resolve.TemplateProcessor,
	log logrus.FieldLogger,
) *FileAssembler {
	return &FileAssembler{
		assembly: cfg.Assembly,
		preview:  cfg.Preview,
		// Every document with the module extension is included, whatever its prefix
		filter:    model.ModuleFilter{Extension: cfg.Modules.Extension},
		fs:        fs,
		templates: templates,
		log:       log,
	}
}

// Generate truncates and rewrites the assembly file
func (a *FileAssembler) Generate(ctx context.Context, modulesDir, assemblyPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	modules, err := a.fs.ListModules(modulesDir, a.filter)
	if err != nil {
		return fmt.Errorf("failed to list modules: %w", err)
	}

	content, err := a.Render(model.Names(modules))
	if err != nil {
		return err
	}

	if err := a.fs.WriteFile(assemblyPath, content); err != nil {
		return fmt.Errorf("failed to write assembly: %w", err)
	}

	a.log.WithFields(logrus.Fields{
		"file":    assemblyPath,
		"modules": len(modules),
	}).Debug("assembly generated")
	return nil
}

// Render returns the assembly content including the named module files in the given order
func (a *FileAssembler) Render(moduleNames []string) (string, error) {
	content, err := a.templates.Process(assemblyTemplate, map[string]interface{}{
		"ID":           a.assembly.ID,
		"Title":        a.assembly.Title,
		"AbstractRole": adoc.AbstractRole,
		"Abstract":     a.assembly.Abstract,
		"IncludePath":  a.assembly.IncludePath,
		"LevelOffset":  a.assembly.LevelOffset,
		"Modules":      moduleNames,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render assembly: %w", err)
	}
	return content, nil
}

// AddPreviewNote inserts the preview admonition before the assembly abstract
func (a *FileAssembler) AddPreviewNote(ctx context.Context, assemblyPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	content, err := a.fs.ReadFile(assemblyPath)
	if err != nil {
		return false, fmt.Errorf("failed to read assembly: %w", err)
	}

	updated, inserted := adoc.InsertBeforeAbstract(content, a.PreviewNote())
	if !inserted {
		a.log.WithField("file", assemblyPath).Debug("preview note already present or no abstract found")
		return false, nil
	}

	if err := a.fs.WriteFile(assemblyPath, updated); err != nil {
		return false, fmt.Errorf("failed to write assembly: %w", err)
	}

	a.log.WithField("file", assemblyPath).Debug("preview note added")
	return true, nil
}

// PreviewNote returns the admonition block inserted into the assembly
func (a *FileAssembler) PreviewNote() string {
	return adoc.Admonition(a.preview.Label, a.preview.Note)
}
