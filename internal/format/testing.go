/*
Copyright © 2025 Modref Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package format

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockFormatter is a mock implementation of Formatter for testing
type MockFormatter struct {
	mock.Mock
}

// FormatModules mocks the FormatModules method
func (m *MockFormatter) FormatModules(ctx context.Context, dir string) ([]Result, error) {
	args := m.Called(ctx, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Result), args.Error(1)
}
