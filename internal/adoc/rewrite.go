/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package adoc

import (
	"strings"
	"unicode"
)

const (
	// AbstractRole marks the paragraph that follows as the module abstract
	AbstractRole = `[role="_abstract"]`

	// DiscreteRole keeps the heading that follows out of the table of contents
	DiscreteRole = "[discrete]"
)

// Rewriter converts generated command reference pages into reference modules.
//
// Rewriting is a single forward pass: each line is classified once and the
// output is emitted in document order, so identical lines in different places
// are always rewritten independently.
type Rewriter struct {
	product string
}

// NewRewriter creates a rewriter for reference pages of the given product
// command, e.g. "rhoas"
func NewRewriter(product string) *Rewriter {
	return &Rewriter{product: product}
}

// Rewrite returns the reference module form of a command reference page
func (r *Rewriter) Rewrite(content string) string {
	lines, trailingNewline := splitLines(content)
	out := make([]string, 0, len(lines)+16)

	titleSeen := false
	for i := 0; i < len(lines); i++ {
		line := Classify(lines[i])

		switch line.Kind {
		case KindHeading:
			if !titleSeen {
				titleSeen = true
				if next, promoted := r.promoteTitle(lines, i, &out); promoted {
					i = next
					continue
				}
			}
			if line.Level >= 3 {
				out = appendDiscreteHeading(out, line)
				continue
			}
			out = append(out, line.Raw)

		case KindLink:
			out = append(out, line.xref())

		case KindDelimiter:
			end := closingDelimiter(lines, i+1)
			if startsWithOption(lines[i+1 : end]) {
				out = append(out, optionList(lines[i+1:end])...)
			} else {
				// Literal content is copied verbatim, delimiters included
				out = append(out, lines[i:min(end+1, len(lines))]...)
			}
			i = end

		case KindOption:
			end := optionRunEnd(lines, i)
			out = append(out, optionList(lines[i:end])...)
			i = end - 1

		default:
			out = append(out, line.Raw)
		}
	}

	return joinLines(out, trailingNewline)
}

// promoteTitle turns "== rhoas <command>" followed by a description paragraph
// into a level one title with the description marked as the abstract. A title
// followed by a heading, link or block has no description and is left for the
// other rules. It returns the index of the last consumed line.
func (r *Rewriter) promoteTitle(lines []string, i int, out *[]string) (int, bool) {
	line := Classify(lines[i])
	if line.Level != 2 || !r.isProductTitle(line.Text) {
		return i, false
	}

	desc := i + 1
	for desc < len(lines) && strings.TrimSpace(lines[desc]) == "" {
		desc++
	}
	if desc >= len(lines) || Classify(lines[desc]).Kind != KindText {
		return i, false
	}

	*out = append(*out, line.Raw[1:], "", AbstractRole, lines[desc])
	return desc, true
}

func (r *Rewriter) isProductTitle(text string) bool {
	if r.product == "" {
		return false
	}
	return text == r.product || strings.HasPrefix(text, r.product+" ")
}

// appendDiscreteHeading promotes a heading by one level, capitalizes it and
// marks it discrete
func appendDiscreteHeading(out []string, line Line) []string {
	if len(out) == 0 || out[len(out)-1] != DiscreteRole {
		out = append(out, DiscreteRole)
	}
	return append(out, strings.Repeat("=", line.Level-1)+" "+Capitalize(line.Text))
}

// xref converts a link bullet into a cross reference to the anchor generated
// for the linked command's title
func (l Line) xref() string {
	anchor := "_" + strings.ReplaceAll(l.Anchor, "-", "_")
	desc := strings.TrimLeftFunc(l.Description, unicode.IsSpace)
	if desc == "" {
		return "* xref:" + anchor + l.Label
	}
	return "* xref:" + anchor + l.Label + " " + desc
}

// term renders an option as a definition list term
func (l Line) term() string {
	if l.ValueType == "" {
		return "`" + l.Flag + "`::"
	}
	return "`" + l.Flag + " _" + l.ValueType + "_`::"
}

// optionList converts the lines of an options block into a definition list
func optionList(block []string) []string {
	out := make([]string, 0, len(block)*2)
	pendingBlank := false

	for _, raw := range block {
		line := ClassifyOption(raw)
		if line.Kind == KindBlank {
			pendingBlank = len(out) > 0
			continue
		}
		if pendingBlank {
			out = append(out, "")
			pendingBlank = false
		}

		switch line.Kind {
		case KindOption:
			out = append(out, line.term())
			if desc := strings.TrimSpace(line.Description); desc != "" {
				out = append(out, desc)
			}
		case KindContinuation:
			out = append(out, "+", line.Text)
		}
	}

	return out
}

// closingDelimiter returns the index of the delimiter closing a literal block
// whose content starts at from, or len(lines) when the block is unterminated
func closingDelimiter(lines []string, from int) int {
	for j := from; j < len(lines); j++ {
		if Classify(lines[j]).Kind == KindDelimiter {
			return j
		}
	}
	return len(lines)
}

// startsWithOption reports whether the first non-blank line of a block is an option
func startsWithOption(block []string) bool {
	for _, raw := range block {
		switch Classify(raw).Kind {
		case KindBlank:
			continue
		case KindOption:
			return true
		default:
			return false
		}
	}
	return false
}

// optionRunEnd returns the end (exclusive) of an undelimited options run that
// starts at i. The run continues over indented lines and blank separators;
// trailing blank lines are left to the surrounding document.
func optionRunEnd(lines []string, i int) int {
	end := i + 1
	for j := i + 1; j < len(lines); j++ {
		line := Classify(lines[j])
		if line.Kind == KindBlank {
			continue
		}
		if line.Kind == KindDelimiter || !indented(lines[j]) {
			break
		}
		end = j + 1
	}
	return end
}

func splitLines(content string) ([]string, bool) {
	if content == "" {
		return nil, false
	}
	trailingNewline := strings.HasSuffix(content, "\n")
	return strings.Split(strings.TrimSuffix(content, "\n"), "\n"), trailingNewline
}

func joinLines(lines []string, trailingNewline bool) string {
	joined := strings.Join(lines, "\n")
	if trailingNewline {
		joined += "\n"
	}
	return joined
}
