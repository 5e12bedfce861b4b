/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"
)

// Name is the binary name shown in version output
const Name = "modref"

// Set at build time, e.g.
//
//	go build -ldflags "-X github.com/orien/modref/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Short returns the version. Binaries built without ldflags, such as those
// installed with "go install github.com/orien/modref@v1.2.0", report the module
// version instead of "dev".
func Short() string {
	info, ok := debug.ReadBuildInfo()
	return resolve(Version, info, ok)
}

func resolve(version string, info *debug.BuildInfo, ok bool) string {
	if version != "dev" || !ok || info == nil {
		return version
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return version
}

// Info returns the build description printed by "modref version" and --version
func Info() string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "%s %s", Name, Short())
	for _, d := range details() {
		_, _ = fmt.Fprintf(&b, "\n  %-11s %s", d.label+":", d.value)
	}
	return b.String()
}

// Fields returns the build description as log fields
func Fields() logrus.Fields {
	fields := logrus.Fields{"version": Short()}
	for _, d := range details() {
		fields[d.key] = d.value
	}
	return fields
}

type detail struct {
	key   string
	label string
	value string
}

func details() []detail {
	return []detail{
		{key: "commit", label: "Git commit", value: GitCommit},
		{key: "build_date", label: "Build date", value: BuildDate},
		{key: "go", label: "Go version", value: runtime.Version()},
		{key: "platform", label: "Platform", value: runtime.GOOS + "/" + runtime.GOARCH},
	}
}
