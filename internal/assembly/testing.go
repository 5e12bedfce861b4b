/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package assembly

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockAssembler is a mock implementation of Assembler for testing
type MockAssembler struct {
	mock.Mock
}

// Generate mocks the Generate method
func (m *MockAssembler) Generate(ctx context.Context, modulesDir, assemblyPath string) error {
	args := m.Called(ctx, modulesDir, assemblyPath)
	return args.Error(0)
}

// AddPreviewNote mocks the AddPreviewNote method
func (m *MockAssembler) AddPreviewNote(ctx context.Context, assemblyPath string) (bool, error) {
	args := m.Called(ctx, assemblyPath)
	return args.Bool(0), args.Error(1)
}
