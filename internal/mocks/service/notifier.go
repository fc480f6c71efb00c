package service

import (
	"context"

	"directorio/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockNotifier is a mock of service.Notifier.
type MockNotifier struct {
	mock.Mock
}

var _ service.Notifier = (*MockNotifier)(nil)

// NewMockNotifier creates a mock whose expectations are asserted when the test ends.
func NewMockNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockNotifier) Send(ctx context.Context, to, subject, body string) error {
	args := m.Called(ctx, to, subject, body)

	return args.Error(0)
}
