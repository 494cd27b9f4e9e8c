package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockModelClient implements services.ModelClient for testing
type MockModelClient struct {
	mock.Mock
}

func (m *MockModelClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockModelClient) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

// MockChatNotifier implements services.ChatNotifier for testing
type MockChatNotifier struct {
	mock.Mock
}

func (m *MockChatNotifier) Send(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

func (m *MockChatNotifier) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}
