/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package adoc rewrites generated AsciiDoc command reference pages into
// modular documentation reference modules.
package adoc

import (
	"regexp"
	"strings"
)

// Kind identifies how a single line takes part in the rewrite
type Kind int

const (
	// KindText is any line without special meaning
	KindText Kind = iota
	// KindBlank is an empty or whitespace-only line
	KindBlank
	// KindHeading is a section title such as "=== Options"
	KindHeading
	// KindLink is a "* link:anchor{suffix}[text] description" bullet
	KindLink
	// KindDelimiter opens or closes a literal block ("....")
	KindDelimiter
	// KindOption is an indented command-line flag with its description
	KindOption
	// KindContinuation is free text inside an options block
	KindContinuation
)

// String returns a readable name for the kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBlank:
		return "blank"
	case KindHeading:
		return "heading"
	case KindLink:
		return "link"
	case KindDelimiter:
		return "delimiter"
	case KindOption:
		return "option"
	case KindContinuation:
		return "continuation"
	default:
		return "unknown"
	}
}

// LiteralDelimiter opens and closes a literal block
const LiteralDelimiter = "...."

var (
	headingPattern = regexp.MustCompile(`^(={2,})\s+(.*\S)\s*$`)

	// * link:rhoas_kafka_create{relfilesuffix}[rhoas kafka create]	 - Create a Kafka instance
	linkPattern = regexp.MustCompile(`^\*\slink:([\w-]+)(\{\w+\})(\[.+\])(.+)$`)

	//   -n, --name string     Name of the Kafka instance
	//       --use             Set the new instance as current
	//   -o, --output string[] Output formats
	optionPattern = regexp.MustCompile(`^[ \t]{2,}(-\w, --[\w-]+|--[\w-]+)(?: ([\w\[\]]+))?(?:\s+(.*?))?\s*$`)
)

// Line is a classified source line
type Line struct {
	Kind Kind
	Raw  string

	// Heading
	Level int
	Text  string

	// Link
	Anchor string
	Suffix string
	Label  string

	// Option
	Flag      string
	ValueType string

	// Link and option
	Description string
}

// Classify determines the kind of a line on its own, without looking at the
// lines around it. Continuations only exist inside options blocks, so they are
// produced by ClassifyOption instead.
func Classify(raw string) Line {
	line := Line{Kind: KindText, Raw: raw}

	trimmed := strings.TrimSpace(raw)
	switch {
	case trimmed == "":
		line.Kind = KindBlank
		return line
	case strings.TrimRight(raw, " \t") == LiteralDelimiter:
		line.Kind = KindDelimiter
		return line
	}

	if m := headingPattern.FindStringSubmatch(raw); m != nil {
		line.Kind = KindHeading
		line.Level = len(m[1])
		line.Text = m[2]
		return line
	}

	if m := linkPattern.FindStringSubmatch(raw); m != nil {
		line.Kind = KindLink
		line.Anchor = m[1]
		line.Suffix = m[2]
		line.Label = m[3]
		line.Description = m[4]
		return line
	}

	if m := optionPattern.FindStringSubmatch(raw); m != nil {
		line.Kind = KindOption
		line.Flag = m[1]
		line.ValueType = m[2]
		line.Description = m[3]
		return line
	}

	return line
}

// ClassifyOption classifies a line that sits inside an options block, where
// every line is an option, a blank separator or a continuation of the
// previous option's description.
func ClassifyOption(raw string) Line {
	line := Classify(raw)
	switch line.Kind {
	case KindOption, KindBlank:
		return line
	default:
		return Line{Kind: KindContinuation, Raw: raw, Text: strings.TrimSpace(raw)}
	}
}

// indented reports whether a line starts with at least two columns of whitespace
func indented(raw string) bool {
	return strings.HasPrefix(raw, "  ") || strings.HasPrefix(raw, "\t") || strings.HasPrefix(raw, " \t")
}
