/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
)

// Styles contains the styles for rendering progress output
type Styles struct {
	Step    lipgloss.Style
	Path    lipgloss.Style
	Success lipgloss.Style
	Skipped lipgloss.Style

	// Whether colours are enabled
	UseColour bool
}

// NewStyles creates progress styles. Colours are optimised based on terminal background (dark vs light).
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if !useColour {
		// An empty style renders text unchanged
		plainStyle := lipgloss.NewStyle()
		s.Step = plainStyle
		s.Path = plainStyle
		s.Success = plainStyle
		s.Skipped = plainStyle
		return s
	}

	var (
		stepText    string
		pathText    string
		successText string
		subtleText  string
	)

	if lipgloss.HasDarkBackground(os.Stdin, os.Stdout) {
		stepText = "12"    // Bright Blue
		pathText = "14"    // Cyan
		successText = "10" // Green
		subtleText = "8"   // Dark Grey
	} else {
		stepText = "4"    // Blue
		pathText = "6"    // Cyan
		successText = "2" // Green
		subtleText = "8"  // Grey
	}

	s.Step = lipgloss.NewStyle().
		Foreground(lipgloss.Color(stepText)).
		Bold(true)

	s.Path = lipgloss.NewStyle().
		Foreground(lipgloss.Color(pathText))

	s.Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color(successText))

	s.Skipped = lipgloss.NewStyle().
		Foreground(lipgloss.Color(subtleText))

	return s
}

// ShouldUseColour determines if coloured output should be written to w
func ShouldUseColour(w io.Writer) bool {
	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}

	// Check if it's a character device (terminal)
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
