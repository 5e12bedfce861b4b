/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/orien/modref/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "modref.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestFileProvider_LoadConfig_UsesDefaultsWhenFileNotFound(t *testing.T) {
	// A missing config file is not an error; the rhoas defaults apply
	provider := NewProvider(filepath.Join(t.TempDir(), "nonexistent.yaml"))

	cfg, err := provider.LoadConfig(context.Background())

	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestFileProvider_LoadConfig_ParsesConfiguration(t *testing.T) {
	configContent := `
product: acme
modules:
  directory: docs/modules
  prefix: ref-acme
assembly:
  file: docs/assemblies/acme.adoc
  title: ACME command reference
  abstract: |
    You use the acme CLI.
  level_offset: "+2"
preview:
  enabled: false
`
	provider := NewProvider(createTempConfigFile(t, configContent))

	cfg, err := provider.LoadConfig(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "acme", cfg.Product)
	assert.Equal(t, "docs/modules", cfg.Modules.Directory)
	assert.Equal(t, "ref-acme", cfg.Modules.Prefix)
	assert.Equal(t, ".adoc", cfg.Modules.Extension, "unset keys keep their default")
	assert.Equal(t, "docs/assemblies/acme.adoc", cfg.Assembly.File)
	assert.Equal(t, "ACME command reference", cfg.Assembly.Title)
	assert.Equal(t, "You use the acme CLI.", cfg.Assembly.Abstract)
	assert.Equal(t, "+2", cfg.Assembly.LevelOffset)
	assert.Equal(t, config.DefaultAssemblyID, cfg.Assembly.ID)
	assert.False(t, cfg.Preview.Enabled)
	assert.Equal(t, config.DefaultPreviewNote, cfg.Preview.Note)
}

func TestFileProvider_LoadConfig_PreviewEnabledByDefault(t *testing.T) {
	configContent := `
preview:
  label: WARNING
  note: Beta software.
`
	provider := NewProvider(createTempConfigFile(t, configContent))

	cfg, err := provider.LoadConfig(context.Background())
	require.NoError(t, err)

	assert.True(t, cfg.Preview.Enabled)
	assert.Equal(t, "WARNING", cfg.Preview.Label)
	assert.Equal(t, "Beta software.", cfg.Preview.Note)
}

func TestFileProvider_LoadConfig_InvalidYAML(t *testing.T) {
	path := createTempConfigFile(t, "modules: [unclosed")
	provider := NewProvider(path)

	cfg, err := provider.LoadConfig(context.Background())

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse YAML config file")
	assert.Contains(t, err.Error(), path)
}

func TestFileProvider_LoadConfig_ReadError(t *testing.T) {
	// A directory cannot be read as a config file
	provider := NewProvider(t.TempDir())

	_, err := provider.LoadConfig(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestFileProvider_Validate(t *testing.T) {
	tests := []struct {
		name          string
		content       string
		expectedError string
	}{
		{
			name:    "defaults are valid",
			content: "",
		},
		{
			name: "extension without dot",
			content: `
modules:
  extension: adoc
`,
			expectedError: "must start with '.'",
		},
		{
			name: "blank product",
			content: `
product: "   "
`,
			expectedError: "product must not be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := NewProvider(createTempConfigFile(t, tt.content))

			err := provider.Validate()

			if tt.expectedError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestNewDefaultProvider(t *testing.T) {
	provider := NewDefaultProvider()

	assert.Equal(t, "modref.yaml", provider.filename)
}
