package service

import (
	"context"
	"io"

	"directorio/internal/domain/service"

	"github.com/stretchr/testify/mock"
)

// MockFileStorage is a mock of service.FileStorage.
type MockFileStorage struct {
	mock.Mock
}

var _ service.FileStorage = (*MockFileStorage)(nil)

// NewMockFileStorage creates a mock whose expectations are asserted when the test ends.
func NewMockFileStorage(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFileStorage {
	m := &MockFileStorage{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockFileStorage) Save(ctx context.Context, key, contentType string, content io.Reader) (string, error) {
	args := m.Called(ctx, key, contentType, content)

	return args.String(0), args.Error(1)
}

func (m *MockFileStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	args := m.Called(ctx, key)

	rc, _ := args.Get(0).(io.ReadCloser)

	return rc, args.String(1), args.Error(2)
}
