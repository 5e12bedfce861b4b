/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package resolve

import (
	"github.com/orien/modref/internal/model"
	"github.com/stretchr/testify/mock"
)

// MockFileSystemResolver implements FileSystemResolver for testing
type MockFileSystemResolver struct {
	mock.Mock
}

func (m *MockFileSystemResolver) ListModules(dir string, filter model.ModuleFilter) ([]*model.Module, error) {
	args := m.Called(dir, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Module), args.Error(1)
}

func (m *MockFileSystemResolver) ReadFile(path string) (string, error) {
	args := m.Called(path)
	return args.String(0), args.Error(1)
}

func (m *MockFileSystemResolver) WriteFile(path, content string) error {
	args := m.Called(path, content)
	return args.Error(0)
}

// MockTemplateProcessor implements TemplateProcessor for testing
type MockTemplateProcessor struct {
	mock.Mock
}

func (m *MockTemplateProcessor) Process(templateContent string, variables map[string]interface{}) (string, error) {
	args := m.Called(templateContent, variables)
	return args.String(0), args.Error(1)
}
