/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"fmt"
	"io"
)

// Printer writes progress lines for the user
type Printer struct {
	out    io.Writer
	styles *Styles
}

// NewPrinter creates a printer for w, enabling colour when w is a terminal
func NewPrinter(w io.Writer) *Printer {
	return NewPrinterWithStyles(w, NewStyles(ShouldUseColour(w)))
}

// NewPrinterWithStyles creates a printer with explicit styles
func NewPrinterWithStyles(w io.Writer, styles *Styles) *Printer {
	return &Printer{out: w, styles: styles}
}

// Step announces a pipeline step, e.g. "Generating CLI command ref assembly"
func (p *Printer) Step(message string) {
	_, _ = fmt.Fprintln(p.out, p.styles.Step.Render(message))
}

// StepPath announces a pipeline step that acts on a path
func (p *Printer) StepPath(message, path string) {
	_, _ = fmt.Fprintf(p.out, "%s %s\n", p.styles.Step.Render(message), p.styles.Path.Render(path))
}

// Done reports a completed item
func (p *Printer) Done(item string) {
	_, _ = fmt.Fprintf(p.out, "  %s %s\n", p.styles.Success.Render("✓"), item)
}

// Unchanged reports an item that needed no changes
func (p *Printer) Unchanged(item string) {
	_, _ = fmt.Fprintf(p.out, "  %s %s\n", p.styles.Skipped.Render("-"), p.styles.Skipped.Render(item+" (unchanged)"))
}
