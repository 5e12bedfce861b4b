/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package cmd

import (
	"path/filepath"
	"testing"

	"github.com/orien/modref/internal/config"
	"github.com/orien/modref/internal/format"
	"github.com/orien/modref/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// useFormatter injects a mock formatter for the duration of the test
func useFormatter(t *testing.T) *format.MockFormatter {
	t.Helper()
	mockFormatter := &format.MockFormatter{}
	old := formatter
	SetFormatter(mockFormatter)
	t.Cleanup(func() { SetFormatter(old) })
	return mockFormatter
}

func formatResults(changed map[string]bool) []format.Result {
	var results []format.Result
	for _, name := range []string{"ref-cli-rhoas.adoc", "ref-cli-rhoas-kafka.adoc", "ref-cli-rhoas-login.adoc"} {
		value, ok := changed[name]
		if !ok {
			continue
		}
		results = append(results, format.Result{
			Module:  &model.Module{Name: name, Path: filepath.Join("modules", name)},
			Changed: value,
		})
	}
	return results
}

func TestFormatCommand_Exists(t *testing.T) {
	formatCmd := findCommand(rootCmd, "format [modules-dir]")
	require.NotNil(t, formatCmd, "format command should be registered")

	assert.NotNil(t, formatCmd.Args, "format command should validate its arguments")
	assert.NotNil(t, formatCmd.Flags().Lookup("assembly"))
	assert.NotNil(t, formatCmd.Flags().Lookup("skip-preview"))
}

func TestFormatCommand_DefaultPaths(t *testing.T) {
	useDefaultConfig(t, nil)
	modulesDir, err := filepath.Abs("modules")
	require.NoError(t, err)

	mockFormatter := useFormatter(t)
	mockFormatter.On("FormatModules", mock.Anything, modulesDir).
		Return(formatResults(map[string]bool{"ref-cli-rhoas.adoc": true}), nil)
	mockAssembler := useAssembler(t)
	mockAssembler.On("AddPreviewNote", mock.Anything, "assemblies/assembly-cli-command-reference.adoc").Return(true, nil)

	output, err := executeCommand(t, "format")
	require.NoError(t, err)

	expected := "Formatting CLI command reference modules in " + modulesDir + "\n" +
		"  ✓ ref-cli-rhoas.adoc\n" +
		"Adding dev preview note to assembly-cli-command-reference.adoc\n"
	assert.Equal(t, expected, output)
	mockFormatter.AssertExpectations(t)
	mockAssembler.AssertExpectations(t)
}

func TestFormatCommand_AssemblyNextToModulesArgument(t *testing.T) {
	useDefaultConfig(t, nil)
	docsDir := t.TempDir()
	modulesDir := filepath.Join(docsDir, "modules")

	mockFormatter := useFormatter(t)
	mockFormatter.On("FormatModules", mock.Anything, modulesDir).Return(formatResults(nil), nil)
	mockAssembler := useAssembler(t)
	mockAssembler.On("AddPreviewNote", mock.Anything, filepath.Join(docsDir, "assemblies", "assembly-cli-command-reference.adoc")).
		Return(false, nil)

	output, err := executeCommand(t, "format", modulesDir)
	require.NoError(t, err)

	assert.Contains(t, output, "Formatting CLI command reference modules in "+modulesDir)
	mockFormatter.AssertExpectations(t)
	mockAssembler.AssertExpectations(t)
}

func TestFormatCommand_CustomAssemblyNextToModulesArgument(t *testing.T) {
	cfg := config.Default()
	cfg.Assembly.File = "book/cli.adoc"
	useDefaultConfig(t, cfg)
	docsDir := t.TempDir()
	modulesDir := filepath.Join(docsDir, "modules")

	mockFormatter := useFormatter(t)
	mockFormatter.On("FormatModules", mock.Anything, modulesDir).Return(formatResults(nil), nil)
	mockAssembler := useAssembler(t)
	mockAssembler.On("AddPreviewNote", mock.Anything, filepath.Join(docsDir, "book", "cli.adoc")).Return(true, nil)

	output, err := executeCommand(t, "format", modulesDir)
	require.NoError(t, err)

	assert.Contains(t, output, "Adding dev preview note to cli.adoc")
	mockAssembler.AssertExpectations(t)
}

func TestFormatCommand_AssemblyFlagWins(t *testing.T) {
	useDefaultConfig(t, nil)
	modulesDir := filepath.Join(t.TempDir(), "modules")

	mockFormatter := useFormatter(t)
	mockFormatter.On("FormatModules", mock.Anything, modulesDir).Return(formatResults(nil), nil)
	mockAssembler := useAssembler(t)
	mockAssembler.On("AddPreviewNote", mock.Anything, "book/cli.adoc").Return(true, nil)

	output, err := executeCommand(t, "format", modulesDir, "--assembly", "book/cli.adoc")
	require.NoError(t, err)

	assert.Contains(t, output, "Adding dev preview note to cli.adoc")
	mockAssembler.AssertExpectations(t)
}

func TestFormatCommand_ReportsEachModule(t *testing.T) {
	useDefaultConfig(t, nil)
	modulesDir := filepath.Join(t.TempDir(), "modules")

	mockFormatter := useFormatter(t)
	mockFormatter.On("FormatModules", mock.Anything, modulesDir).
		Return(formatResults(map[string]bool{"ref-cli-rhoas-kafka.adoc": true, "ref-cli-rhoas-login.adoc": false}), nil)

	output, err := executeCommand(t, "format", modulesDir, "--skip-preview")
	require.NoError(t, err)

	assert.Equal(t, "Formatting CLI command reference modules in "+modulesDir+"\n"+
		"  ✓ ref-cli-rhoas-kafka.adoc\n"+
		"  - ref-cli-rhoas-login.adoc (unchanged)\n", output)
}

func TestFormatCommand_SkipPreview(t *testing.T) {
	useDefaultConfig(t, nil)
	modulesDir := filepath.Join(t.TempDir(), "modules")

	mockFormatter := useFormatter(t)
	mockFormatter.On("FormatModules", mock.Anything, modulesDir).Return(formatResults(nil), nil)
	mockAssembler := useAssembler(t)

	output, err := executeCommand(t, "format", modulesDir, "--skip-preview")
	require.NoError(t, err)

	assert.NotContains(t, output, "Adding dev preview note")
	mockAssembler.AssertNotCalled(t, "AddPreviewNote", mock.Anything, mock.Anything)
}

func TestFormatCommand_PreviewDisabledInConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Preview.Enabled = false
	useDefaultConfig(t, cfg)
	modulesDir := filepath.Join(t.TempDir(), "modules")

	mockFormatter := useFormatter(t)
	mockFormatter.On("FormatModules", mock.Anything, modulesDir).Return(formatResults(nil), nil)
	mockAssembler := useAssembler(t)

	_, err := executeCommand(t, "format", modulesDir)
	require.NoError(t, err)

	mockAssembler.AssertNotCalled(t, "AddPreviewNote", mock.Anything, mock.Anything)
}

func TestFormatCommand_FormatterErrorStopsBeforePreview(t *testing.T) {
	useDefaultConfig(t, nil)
	modulesDir := filepath.Join(t.TempDir(), "modules")

	mockFormatter := useFormatter(t)
	mockFormatter.On("FormatModules", mock.Anything, modulesDir).Return(nil, assert.AnError)
	mockAssembler := useAssembler(t)

	_, err := executeCommand(t, "format", modulesDir)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)

	mockAssembler.AssertNotCalled(t, "AddPreviewNote", mock.Anything, mock.Anything)
}

func TestFormatCommand_PreviewError(t *testing.T) {
	useDefaultConfig(t, nil)
	modulesDir := filepath.Join(t.TempDir(), "modules")

	mockFormatter := useFormatter(t)
	mockFormatter.On("FormatModules", mock.Anything, modulesDir).Return(formatResults(nil), nil)
	mockAssembler := useAssembler(t)
	mockAssembler.On("AddPreviewNote", mock.Anything, mock.Anything).Return(false, assert.AnError)

	_, err := executeCommand(t, "format", modulesDir)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestFormatCommand_TooManyArguments(t *testing.T) {
	useDefaultConfig(t, nil)
	mockFormatter := useFormatter(t)

	_, err := executeCommand(t, "format", "one", "two")
	assert.Error(t, err)

	mockFormatter.AssertNotCalled(t, "FormatModules", mock.Anything, mock.Anything)
}
