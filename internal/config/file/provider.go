/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/orien/modref/internal/config"
	"gopkg.in/yaml.v3"
)

// Provider implements config.ConfigProvider by reading from a YAML file.
// A missing file is not an error: the defaults are used instead.
type Provider struct {
	filename  string
	rawConfig *Config
}

// NewProvider creates a new file-based ConfigProvider for the given filename
func NewProvider(filename string) *Provider {
	return &Provider{
		filename: filename,
	}
}

// NewDefaultProvider creates a provider reading modref.yaml from the working directory
func NewDefaultProvider() *Provider {
	return NewProvider("modref.yaml")
}

// LoadConfig loads the configuration and fills unset values with defaults
func (fp *Provider) LoadConfig(ctx context.Context) (*config.Config, error) {
	if err := fp.ensureLoaded(); err != nil {
		return nil, err
	}

	return fp.resolve(), nil
}

// Validate checks the configuration for consistency and errors
func (fp *Provider) Validate() error {
	if err := fp.ensureLoaded(); err != nil {
		return err
	}

	cfg := fp.resolve()

	if strings.TrimSpace(cfg.Product) == "" {
		return fmt.Errorf("product must not be empty in '%s'", fp.filename)
	}
	if !strings.HasPrefix(cfg.Modules.Extension, ".") {
		return fmt.Errorf("module extension '%s' must start with '.'", cfg.Modules.Extension)
	}
	if strings.TrimSpace(cfg.Assembly.File) == "" {
		return fmt.Errorf("assembly file must not be empty in '%s'", fp.filename)
	}

	return nil
}

// ensureLoaded loads the raw configuration from file if not already loaded
func (fp *Provider) ensureLoaded() error {
	if fp.rawConfig != nil {
		return nil // Already loaded
	}

	data, err := os.ReadFile(fp.filename)
	if errors.Is(err, fs.ErrNotExist) {
		fp.rawConfig = &Config{}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", fp.filename, err)
	}

	var rawConfig Config
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to parse YAML config file '%s': %w", fp.filename, err)
	}

	fp.rawConfig = &rawConfig
	return nil
}

// resolve overlays the raw configuration onto the defaults
func (fp *Provider) resolve() *config.Config {
	cfg := config.Default()
	raw := fp.rawConfig

	cfg.Product = valueOr(raw.Product, cfg.Product)

	if raw.Modules != nil {
		cfg.Modules.Directory = valueOr(raw.Modules.Directory, cfg.Modules.Directory)
		cfg.Modules.Prefix = valueOr(raw.Modules.Prefix, cfg.Modules.Prefix)
		cfg.Modules.Extension = valueOr(raw.Modules.Extension, cfg.Modules.Extension)
	}

	if raw.Assembly != nil {
		cfg.Assembly.File = valueOr(raw.Assembly.File, cfg.Assembly.File)
		cfg.Assembly.ID = valueOr(raw.Assembly.ID, cfg.Assembly.ID)
		cfg.Assembly.Title = valueOr(raw.Assembly.Title, cfg.Assembly.Title)
		cfg.Assembly.Abstract = valueOr(strings.TrimSpace(raw.Assembly.Abstract), cfg.Assembly.Abstract)
		cfg.Assembly.IncludePath = valueOr(raw.Assembly.IncludePath, cfg.Assembly.IncludePath)
		cfg.Assembly.LevelOffset = valueOr(raw.Assembly.LevelOffset, cfg.Assembly.LevelOffset)
	}

	if raw.Preview != nil {
		if raw.Preview.Enabled != nil {
			cfg.Preview.Enabled = *raw.Preview.Enabled
		}
		cfg.Preview.Label = valueOr(raw.Preview.Label, cfg.Preview.Label)
		cfg.Preview.Note = valueOr(strings.TrimSpace(raw.Preview.Note), cfg.Preview.Note)
	}

	return cfg
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
