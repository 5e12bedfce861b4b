/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package adoc

import "strings"

// Admonition renders a delimited admonition block, e.g.
//
//	[IMPORTANT]
//	====
//	text
//	====
func Admonition(label, text string) string {
	return "[" + label + "]\n====\n" + strings.TrimSpace(text) + "\n===="
}

// InsertBeforeAbstract places block, followed by a blank line, directly before
// the first abstract role line. Content that already contains block, or has no
// abstract, is returned unchanged with inserted set to false.
func InsertBeforeAbstract(content, block string) (result string, inserted bool) {
	if block == "" || strings.Contains(content, block) {
		return content, false
	}

	lines, trailingNewline := splitLines(content)
	for i, raw := range lines {
		if strings.TrimSpace(raw) != AbstractRole {
			continue
		}
		out := make([]string, 0, len(lines)+2)
		out = append(out, lines[:i]...)
		out = append(out, block, "")
		out = append(out, lines[i:]...)
		return joinLines(out, trailingNewline), true
	}

	return content, false
}
