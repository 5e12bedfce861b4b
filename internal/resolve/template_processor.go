/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// TemplateProcessor defines the interface for rendering document templates
type TemplateProcessor interface {
	Process(templateContent string, variables map[string]interface{}) (string, error)
}

// SprigTemplateProcessor implements TemplateProcessor using Go's text/template with Sprig functions
type SprigTemplateProcessor struct{}

// NewSprigTemplateProcessor creates a new document template processor
func NewSprigTemplateProcessor() *SprigTemplateProcessor {
	return &SprigTemplateProcessor{}
}

// Process renders the template with the provided variables using Go templates and Sprig functions
func (tp *SprigTemplateProcessor) Process(templateContent string, variables map[string]interface{}) (string, error) {
	tmpl, err := template.New("document").
		Funcs(sprig.TxtFuncMap()).
		Parse(templateContent)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, variables); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}
