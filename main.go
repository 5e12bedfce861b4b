/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/orien/modref/cmd"
	"github.com/orien/modref/internal/version"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.RootCommand(), fang.WithVersion(version.Short())); err != nil {
		os.Exit(1)
	}
}
