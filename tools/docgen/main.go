/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Command docgen writes the reference documentation of the modref CLI itself:
// Markdown pages under docs/reference/cli and man pages under docs/man.
package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/orien/modref/cmd"
	"github.com/orien/modref/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

var (
	markdownDir = filepath.Join("docs", "reference", "cli")
	manDir      = filepath.Join("docs", "man")
)

func main() {
	root := cmd.RootCommand()
	disableAutoGenTag(root)

	if err := regenerate(markdownDir, ".md", func(dir string) error {
		return doc.GenMarkdownTreeCustom(root, dir, filePrepender, linkHandler)
	}); err != nil {
		logrus.WithError(err).Fatal("generate markdown documentation")
	}

	header := &doc.GenManHeader{
		Title:   "MODREF",
		Section: "1",
		Source:  "modref " + version.Short(),
	}
	if err := regenerate(manDir, ".1", func(dir string) error {
		return doc.GenManTree(root, header, dir)
	}); err != nil {
		logrus.WithError(err).Fatal("generate man pages")
	}

	logrus.WithFields(logrus.Fields{
		"markdown": markdownDir,
		"man":      manDir,
	}).Info("CLI documentation generated")
}

// regenerate clears files with the given extension from dir, then runs gen
// so pages of removed commands do not linger
func regenerate(dir, ext string, gen func(dir string) error) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}

	return gen(dir)
}

func disableAutoGenTag(c *cobra.Command) {
	c.DisableAutoGenTag = true
	for _, child := range c.Commands() {
		disableAutoGenTag(child)
	}
}

func filePrepender(filename string) string {
	return ""
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ToLower(strings.ReplaceAll(base, " ", "-"))
}
